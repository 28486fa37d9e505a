package fx

import (
	"context"
	"time"

	"github.com/arindama-pkmk/ta-server-sub000/internal/domain/evaluation"
	"github.com/arindama-pkmk/ta-server-sub000/internal/domain/hierarchy"
	"github.com/arindama-pkmk/ta-server-sub000/internal/domain/ratio"
	"github.com/arindama-pkmk/ta-server-sub000/internal/domain/transaction"
	"github.com/arindama-pkmk/ta-server-sub000/internal/domain/user"
	"github.com/arindama-pkmk/ta-server-sub000/internal/middleware"
	"github.com/arindama-pkmk/ta-server-sub000/internal/routes"

	"go.uber.org/fx"
)

// RoutesModule provides the HTTP handler and rate limiter.
var RoutesModule = fx.Module("routes",
	fx.Provide(
		newHandler,
		newRateLimiter,
	),
)

func newHandler(
	userSvc *user.Service,
	transactionSvc *transaction.Service,
	hierarchySvc *hierarchy.Service,
	ratioSvc *ratio.Service,
	evaluationSvc *evaluation.Service,
) *routes.Handler {
	return &routes.Handler{
		UserService:        userSvc,
		TransactionService: transactionSvc,
		HierarchyService:   hierarchySvc,
		RatioService:       ratioSvc,
		EvaluationService:  evaluationSvc,
	}
}

func newRateLimiter(lc fx.Lifecycle) *middleware.RateLimiter {
	limiter := middleware.NewRateLimiter(100, time.Minute)

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			limiter.Stop()
			return nil
		},
	})

	return limiter
}
