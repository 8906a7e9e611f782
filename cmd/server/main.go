package main

import (
	"context"
	"database/sql"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/redis/go-redis/v9"

	"easypark/internal/app"
	"easypark/internal/config"
	"easypark/internal/handler"
	internalRedis "easypark/internal/redis"
	"easypark/internal/repository/postgres"
	"easypark/internal/scheduler"
	"easypark/internal/security"
	"easypark/internal/service"
)

func main() {
	// Load configuration.
	cfg := config.Load()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Initialize New Relic FIRST (before database so we can instrument DB).
	var nrApp *newrelic.Application
	var err error
	if cfg.NewRelic.Enabled && cfg.NewRelic.LicenseKey != "" {
		nrApp, err = newrelic.NewApplication(
			newrelic.ConfigAppName(cfg.NewRelic.AppName),
			newrelic.ConfigLicense(cfg.NewRelic.LicenseKey),
			newrelic.ConfigDistributedTracerEnabled(true),
			newrelic.ConfigAppLogForwardingEnabled(true),
		)
		if err != nil {
			log.Printf("failed to initialize New Relic: %v", err)
		} else {
			log.Printf("New Relic enabled: app=%s (with DB instrumentation)", cfg.NewRelic.AppName)
		}
	}

	// Initialize database with New Relic instrumentation.
	db, err := app.NewDatabase(ctx, cfg.Database, nrApp)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	defer db.Close()
	log.Println("Connected to PostgreSQL")

	// Initialize Redis with New Relic instrumentation.
	redisClient, err := app.NewRedisClient(ctx, cfg.Redis, nrApp)
	if err != nil {
		log.Fatalf("failed to connect to redis: %v", err)
	}
	defer redisClient.Close()
	log.Println("Connected to Redis")

	// Wire dependencies.
	server, sched := wireServer(db, redisClient, nrApp, cfg)

	if sched != nil {
		sched.Start()
		defer sched.Stop()
	}

	// Start server in goroutine.
	go func() {
		log.Printf("Starting server on port %s", cfg.Server.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	// Graceful shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("server forced to shutdown: %v", err)
	}

	log.Println("Server exited")
}

// wireServer wires all dependencies and returns the HTTP server plus
// the optional cron scheduler.
func wireServer(db *sql.DB, redisClient *redis.Client, nrApp *newrelic.Application, cfg *config.Config) (*http.Server, *scheduler.Scheduler) {
	// Initialize Redis stores.
	cacheStore := internalRedis.NewCacheStore(redisClient)
	lockStore := internalRedis.NewLockStore(redisClient)

	// Initialize repositories.
	vehicleRepo := postgres.NewVehicleRepository(db)
	settingsRepo := postgres.NewSettingsRepository(db)
	operationsRepo := postgres.NewOperationsRepository(db)
	debtRepo := postgres.NewDebtRepository(db)
	accountingRepo := postgres.NewAccountingRepository(db)
	subscriberRepo := postgres.NewSubscriberRepository(db)
	incidentRepo := postgres.NewIncidentRepository(db)
	userRepo := postgres.NewUserRepository(db)
	businessRepo := postgres.NewBusinessRepository(db)

	// Initialize services.
	tokenManager := security.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
	notificationService := service.NewNotificationService()
	settingsService := service.NewSettingsService(settingsRepo, cacheStore)
	vehicleService := service.NewVehicleService(vehicleRepo, settingsService, notificationService)
	settlementService := service.NewSettlementService(db, vehicleRepo, debtRepo, accountingRepo, settingsService, notificationService)
	operationsService := service.NewOperationsService(db, operationsRepo, debtRepo, vehicleRepo, settingsService, lockStore, notificationService)
	debtService := service.NewDebtService(db, debtRepo, settingsService, notificationService)
	accountingService := service.NewAccountingService(accountingRepo, settingsService)
	reportService := service.NewReportService(accountingService, settingsService)
	subscriberService := service.NewSubscriberService(subscriberRepo)
	incidentService := service.NewIncidentService(incidentRepo, notificationService)
	analyticsService := service.NewAnalyticsService(vehicleRepo, accountingRepo, incidentRepo, debtRepo, settingsService, cacheStore)
	authService := service.NewAuthService(db, userRepo, businessRepo, settingsRepo, tokenManager)

	// Initialize handlers.
	authHandler := handler.NewAuthHandler(authService)
	vehicleHandler := handler.NewVehicleHandler(vehicleService, settlementService)
	operationsHandler := handler.NewOperationsHandler(operationsService)
	debtHandler := handler.NewDebtHandler(debtService)
	accountingHandler := handler.NewAccountingHandler(accountingService, reportService)
	subscriberHandler := handler.NewSubscriberHandler(subscriberService)
	incidentHandler := handler.NewIncidentHandler(incidentService)
	analyticsHandler := handler.NewAnalyticsHandler(analyticsService)
	settingsHandler := handler.NewSettingsHandler(settingsService)

	// Create router.
	router := app.NewRouter(app.RouterDeps{
		AuthHandler:       authHandler,
		VehicleHandler:    vehicleHandler,
		OperationsHandler: operationsHandler,
		DebtHandler:       debtHandler,
		AccountingHandler: accountingHandler,
		SubscriberHandler: subscriberHandler,
		IncidentHandler:   incidentHandler,
		AnalyticsHandler:  analyticsHandler,
		SettingsHandler:   settingsHandler,
		TokenManager:      tokenManager,
		RedisClient:       redisClient,
		NewRelicApp:       nrApp,
	})

	// Optional auto-close scheduler.
	var sched *scheduler.Scheduler
	if cfg.Scheduler.Enabled {
		var err error
		sched, err = scheduler.New(cfg.Scheduler, operationsService, settingsService)
		if err != nil {
			log.Printf("failed to initialize scheduler: %v", err)
			sched = nil
		}
	}

	// Create HTTP server.
	return &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}, sched
}
