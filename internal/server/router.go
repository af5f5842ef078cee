// Package server assembles the HTTP router and its persistence backend.
package server

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/ulule/limiter/v3"

	_ "momoapi/internal/docs" // swagger docs
	apperrors "momoapi/internal/errors"
	"momoapi/internal/handlers"
	"momoapi/internal/middleware"
	"momoapi/internal/services"
)

// Deps are the collaborators the router wires into its handlers.
type Deps struct {
	Service     services.TransactionServicer
	Store       handlers.PersistenceStatus
	Credentials middleware.Credentials
	Limiter     *limiter.Limiter
	CORSOrigins []string
}

// NewRouter builds the gin engine: public health, metrics and docs routes and
// the Basic-auth protected transaction collection.
func NewRouter(d Deps) *gin.Engine {
	transactionHandler := handlers.NewTransactionHandler(d.Service)
	healthHandler := handlers.NewHealthHandler(d.Store)

	router := gin.New()
	router.HandleMethodNotAllowed = true
	router.Use(corsMiddleware(d.CORSOrigins))
	router.Use(middleware.RequestLogging())
	router.Use(middleware.Metrics())
	router.Use(middleware.ErrorHandler())
	router.Use(middleware.Recovery())
	router.Use(middleware.RateLimit(d.Limiter))

	router.NoRoute(func(c *gin.Context) {
		_ = c.Error(apperrors.ErrNotFound)
	})
	router.NoMethod(func(c *gin.Context) {
		_ = c.Error(apperrors.ErrMethodNotAllowed)
	})

	// Public routes
	router.GET("/api/health", healthHandler.Health)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Protected routes
	transactions := router.Group("/transactions")
	transactions.Use(middleware.BasicAuth(d.Credentials))
	transactions.GET("", transactionHandler.ListTransactions)
	transactions.POST("", transactionHandler.CreateTransaction)
	transactions.GET("/:id", transactionHandler.GetTransactionByID)
	transactions.PUT("/:id", transactionHandler.UpdateTransaction)
	transactions.DELETE("/:id", transactionHandler.DeleteTransaction)

	return router
}

func corsMiddleware(origins []string) gin.HandlerFunc {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders: []string{"X-Request-ID", "WWW-Authenticate"},
		MaxAge:        12 * time.Hour,
	}
	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	return cors.New(cfg)
}
