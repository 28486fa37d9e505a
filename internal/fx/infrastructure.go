package fx

import (
	"github.com/arindama-pkmk/ta-server-sub000/config"
	"github.com/arindama-pkmk/ta-server-sub000/internal/infrastructure"

	"go.uber.org/fx"
	"gorm.io/gorm"
)

var InfrastructureModule = fx.Module("infrastructure",
	fx.Provide(
		newDatabase,
		newUserRepository,
		newHierarchyRepository,
		newTransactionRepository,
		newRatioRepository,
		newEvaluationRepository,
	),
)

func newDatabase(cfg *config.Config) (*gorm.DB, error) {
	return infrastructure.NewDb(cfg)
}

func newUserRepository(db *gorm.DB) *infrastructure.UserRepository {
	return &infrastructure.UserRepository{DB: db}
}

func newHierarchyRepository(db *gorm.DB) *infrastructure.HierarchyRepository {
	return &infrastructure.HierarchyRepository{DB: db}
}

func newTransactionRepository(db *gorm.DB) *infrastructure.TransactionRepository {
	return &infrastructure.TransactionRepository{DB: db}
}

func newRatioRepository(db *gorm.DB) *infrastructure.RatioRepository {
	return &infrastructure.RatioRepository{DB: db}
}

func newEvaluationRepository(db *gorm.DB) *infrastructure.EvaluationRepository {
	return &infrastructure.EvaluationRepository{DB: db}
}
