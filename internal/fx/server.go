package fx

import (
	"context"

	"github.com/arindama-pkmk/ta-server-sub000/config"
	"github.com/arindama-pkmk/ta-server-sub000/internal/logger"
	"github.com/arindama-pkmk/ta-server-sub000/internal/middleware"
	"github.com/arindama-pkmk/ta-server-sub000/internal/routes"

	docs "github.com/arindama-pkmk/ta-server-sub000/docs"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"go.uber.org/fx"
)

// ServerModule provides the HTTP server wiring.
var ServerModule = fx.Module("server",
	fx.Provide(
		newRouter,
	),
	fx.Invoke(
		setupRoutes,
	),
)

func newRouter(cfg *config.Config) *gin.Engine {
	if cfg.App.Environment != "development" {
		gin.SetMode(gin.ReleaseMode)
	}
	return gin.Default()
}

func setupRoutes(
	lc fx.Lifecycle,
	cfg *config.Config,
	router *gin.Engine,
	handler *routes.Handler,
	rateLimiter *middleware.RateLimiter,
) {
	router.Use(middleware.CORSMiddleware())

	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	api := router.Group("/api")
	api.Use(middleware.RateLimit(rateLimiter))
	{
		api.GET("/hierarchy", handler.GetHierarchy)

		ratios := api.Group("/ratios")
		{
			ratios.GET("", handler.ListRatios)
			ratios.GET("/:id", handler.GetRatio)
		}

		transactions := api.Group("/transactions")
		{
			transactions.POST("", handler.CreateTransaction)
			transactions.GET("", handler.GetTransactions)
			transactions.GET("/:id", handler.GetTransaction)
			transactions.PATCH("/:id", handler.UpdateTransaction)
			transactions.DELETE("/:id", handler.DeleteTransaction)
			transactions.POST("/:id/bookmark", handler.ToggleTransactionBookmark)
		}

		evaluations := api.Group("/evaluations")
		{
			evaluations.POST("/calculate", handler.CalculateEvaluations)
			evaluations.GET("", handler.GetEvaluationHistory)
			evaluations.GET("/:id", handler.GetEvaluationDetail)
		}

		api.DELETE("/users/me", handler.DeleteUser)
	}

	serverAddr := ":" + cfg.Server.Port
	logger.Info().
		Str("address", serverAddr).
		Str("environment", cfg.App.Environment).
		Msg("server dimulai")

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				if err := router.Run(serverAddr); err != nil {
					logger.Fatal().Err(err).Msg("gagal menjalankan server")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info().Msg("server berhenti...")
			return nil
		},
	})
}
