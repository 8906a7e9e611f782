package app

import (
	"github.com/gin-gonic/gin"
	"github.com/newrelic/go-agent/v3/integrations/nrgin"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/redis/go-redis/v9"

	"easypark/internal/domain"
	"easypark/internal/handler"
	"easypark/internal/middleware"
	"easypark/internal/security"
)

// RouterDeps contains all dependencies needed for the router.
type RouterDeps struct {
	AuthHandler       *handler.AuthHandler
	VehicleHandler    *handler.VehicleHandler
	OperationsHandler *handler.OperationsHandler
	DebtHandler       *handler.DebtHandler
	AccountingHandler *handler.AccountingHandler
	SubscriberHandler *handler.SubscriberHandler
	IncidentHandler   *handler.IncidentHandler
	AnalyticsHandler  *handler.AnalyticsHandler
	SettingsHandler   *handler.SettingsHandler
	TokenManager      security.TokenManager
	RedisClient       *redis.Client
	NewRelicApp       *newrelic.Application
}

// NewRouter creates a new Gin router with all routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	router := gin.New()

	// Global middleware.
	router.Use(gin.Recovery())
	router.Use(gin.Logger())
	router.Use(middleware.CORSMiddleware())

	// Add New Relic middleware if enabled.
	if deps.NewRelicApp != nil {
		router.Use(nrgin.Middleware(deps.NewRelicApp))
	}

	// Health check.
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// API v1 routes.
	v1 := router.Group("/v1")

	// Auth routes are the only unauthenticated part of the API.
	auth := v1.Group("/auth")
	{
		auth.POST("/register", deps.AuthHandler.Register)
		auth.POST("/login", deps.AuthHandler.Login)
	}

	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(deps.TokenManager))
	// After auth: the idempotency cache key is scoped by the
	// authenticated business.
	protected.Use(middleware.IdempotencyMiddleware(deps.RedisClient))
	{
		// Vehicle registry and exit flow.
		vehicles := protected.Group("/vehicles")
		{
			vehicles.GET("", deps.VehicleHandler.ListVehicles)
			vehicles.POST("", deps.VehicleHandler.RegisterEntry)
			vehicles.GET("/:id", deps.VehicleHandler.GetVehicle)
			vehicles.POST("/:id/exit/preview", deps.VehicleHandler.PreviewExit)
			vehicles.POST("/:id/exit", deps.VehicleHandler.ConfirmExit)
		}
		protected.GET("/capacity", deps.VehicleHandler.Capacity)

		// Day lifecycle.
		operations := protected.Group("/operations")
		{
			operations.POST("/start", deps.OperationsHandler.StartDay)
			operations.POST("/close", deps.OperationsHandler.CloseDay)
			operations.GET("", deps.OperationsHandler.History)
			operations.GET("/current", deps.OperationsHandler.CurrentDay)
			operations.GET("/:id", deps.OperationsHandler.GetDay)
		}

		// Debts.
		debts := protected.Group("/debts")
		{
			debts.GET("", deps.DebtHandler.ListDebts)
			debts.POST("/:id/pay", deps.DebtHandler.PayDebt)
		}

		// Accounting ledger and exports.
		accounting := protected.Group("/accounting")
		{
			accounting.GET("", deps.AccountingHandler.ListRecords)
			accounting.POST("", deps.AccountingHandler.CreateManualEntry)
			accounting.GET("/summary", deps.AccountingHandler.Summary)
			accounting.GET("/:id/ticket.pdf", deps.AccountingHandler.SettlementTicket)
		}
		protected.GET("/reports/accounting.xlsx", deps.AccountingHandler.AccountingReport)

		// Subscribers.
		subscribers := protected.Group("/subscribers")
		{
			subscribers.GET("", deps.SubscriberHandler.List)
			subscribers.POST("", deps.SubscriberHandler.Create)
			subscribers.GET("/:id", deps.SubscriberHandler.Get)
			subscribers.PATCH("/:id", deps.SubscriberHandler.Update)
			subscribers.DELETE("/:id", deps.SubscriberHandler.Delete)
		}

		// Incidents.
		incidents := protected.Group("/incidents")
		{
			incidents.GET("", deps.IncidentHandler.List)
			incidents.GET("/pending", deps.IncidentHandler.ListPending)
			incidents.POST("", deps.IncidentHandler.Report)
			incidents.PATCH("/:id", deps.IncidentHandler.Resolve)
		}

		// Analytics.
		protected.GET("/analytics/overview", deps.AnalyticsHandler.Overview)

		// Settings: reads for everyone, writes for admins.
		protected.GET("/settings", deps.SettingsHandler.Get)
		protected.PUT("/settings", middleware.RequireRole(domain.RoleAdmin), deps.SettingsHandler.Update)
	}

	return router
}
