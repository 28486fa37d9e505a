package fx

import (
	"github.com/arindama-pkmk/ta-server-sub000/internal/domain/evaluation"
	"github.com/arindama-pkmk/ta-server-sub000/internal/domain/hierarchy"
	"github.com/arindama-pkmk/ta-server-sub000/internal/domain/ratio"
	"github.com/arindama-pkmk/ta-server-sub000/internal/domain/transaction"
	"github.com/arindama-pkmk/ta-server-sub000/internal/domain/user"
	"github.com/arindama-pkmk/ta-server-sub000/internal/infrastructure"

	"go.uber.org/fx"
)

// DomainModule provides every domain service.
var DomainModule = fx.Module("domain",
	fx.Provide(
		newUserService,
		newHierarchyService,
		newTransactionService,
		newRatioService,
		newAggregator,
		newEvaluationService,
	),
)

func newUserService(repo *infrastructure.UserRepository) *user.Service {
	return user.NewService(repo)
}

func newHierarchyService(repo *infrastructure.HierarchyRepository) *hierarchy.Service {
	return hierarchy.NewService(repo)
}

func newTransactionService(
	repo *infrastructure.TransactionRepository,
	hierarchySvc *hierarchy.Service,
	userSvc *user.Service,
) *transaction.Service {
	return transaction.NewService(repo, hierarchySvc, userSvc)
}

func newRatioService(repo *infrastructure.RatioRepository) *ratio.Service {
	return ratio.NewService(repo)
}

func newAggregator(transactionRepo *infrastructure.TransactionRepository) *evaluation.Aggregator {
	return evaluation.NewAggregator(transactionRepo)
}

func newEvaluationService(
	repo *infrastructure.EvaluationRepository,
	transactionRepo *infrastructure.TransactionRepository,
	ratioSvc *ratio.Service,
	userSvc *user.Service,
	aggregator *evaluation.Aggregator,
) *evaluation.Service {
	return evaluation.NewService(repo, transactionRepo, ratioSvc, userSvc, aggregator)
}
