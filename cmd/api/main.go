package main

import (
	"fmt"
	"os"

	"github.com/gin-gonic/gin"

	"momoapi/internal/config"
	"momoapi/internal/logger"
	"momoapi/internal/middleware"
	"momoapi/internal/server"
	"momoapi/internal/services"
)

// @title           MoMo Transactions API
// @version         1.0
// @description     Stores and retrieves mobile money transactions parsed from SMS exports.

// @host      localhost:8000
// @BasePath  /

// @securityDefinitions.basic BasicAuth

func main() {
	// Initialize logger (use ENV var if available, default to development)
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	log := logger.Get()

	// Load configuration
	appConfig, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if appConfig.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Open and load the transaction store
	transactionStore, closeStore, err := server.OpenStore(appConfig)
	if err != nil {
		return err
	}
	defer func() {
		if err := closeStore(); err != nil {
			log.Warnf("failed to close store backend: %v", err)
		}
	}()

	credentials, err := middleware.NewCredentials(
		appConfig.AuthUsername,
		appConfig.AuthPassword,
		appConfig.AuthPasswordHash,
		appConfig.AuthRealm,
	)
	if err != nil {
		return fmt.Errorf("failed to configure basic auth: %w", err)
	}

	rateLimiter, err := middleware.NewLimiter(appConfig.RateLimit)
	if err != nil {
		return fmt.Errorf("failed to configure rate limiter: %w", err)
	}

	router := server.NewRouter(server.Deps{
		Service:     services.NewTransactionService(transactionStore),
		Store:       transactionStore,
		Credentials: credentials,
		Limiter:     rateLimiter,
		CORSOrigins: appConfig.CORSOrigins,
	})

	log.Infof("Starting MoMo transactions API on port %s", appConfig.Port)
	log.Infof("Swagger documentation available at http://localhost:%s/swagger/index.html", appConfig.Port)
	return router.Run(":" + appConfig.Port)
}
