package fx

import (
	"github.com/arindama-pkmk/ta-server-sub000/config"
	"github.com/arindama-pkmk/ta-server-sub000/internal/logger"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.Load,
	),
	fx.Invoke(
		initLogger,
	),
)

func initLogger(cfg *config.Config) {
	logger.Setup(cfg.App.Environment, cfg.Log.Level)
}
