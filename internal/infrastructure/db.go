package infrastructure

import (
	"github.com/arindama-pkmk/ta-server-sub000/config"
	"github.com/arindama-pkmk/ta-server-sub000/internal/logger"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func NewDb(cfg *config.Config) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{})
	if err != nil {
		logger.Error().
			Err(err).
			Str("host", cfg.Database.Host).
			Int("port", cfg.Database.Port).
			Str("database", cfg.Database.DBName).
			Msg("gagal terhubung ke basis data")
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		logger.Error().Err(err).Msg("gagal mengambil koneksi basis data")
		return nil, err
	}

	sqlDB.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)

	logger.Info().
		Str("host", cfg.Database.Host).
		Int("port", cfg.Database.Port).
		Str("database", cfg.Database.DBName).
		Msg("koneksi basis data berhasil dibuat")

	if err := runMigrations(db); err != nil {
		return nil, err
	}

	if err := seedDefaults(db); err != nil {
		return nil, err
	}

	return db, nil
}

func runMigrations(db *gorm.DB) error {
	logger.Info().Msg("menjalankan migrasi...")

	entities := []interface{}{
		&userDB{},
		&accountTypeDB{},
		&categoryDB{},
		&subcategoryDB{},
		&transactionDB{},
		&ratioDB{},
		&ratioComponentDB{},
		&evaluationResultDB{},
	}

	for _, entity := range entities {
		if err := db.AutoMigrate(entity); err != nil {
			logger.Error().Err(err).Msg("gagal memigrasi entitas")
			return err
		}
	}

	logger.Info().Msg("migrasi selesai")
	return nil
}
