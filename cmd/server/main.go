package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"time"

	"kaidan-backend/internal/cache"
	"kaidan-backend/internal/config"
	"kaidan-backend/internal/database"
	"kaidan-backend/internal/db"
	"kaidan-backend/internal/handlers"
	"kaidan-backend/internal/health"
	httpx "kaidan-backend/internal/http"
	"kaidan-backend/internal/logger"
	"kaidan-backend/internal/middleware"
	"kaidan-backend/internal/monitoring"
	"kaidan-backend/internal/repositories"
	"kaidan-backend/internal/services"
	"kaidan-backend/migrations"
)

func main() {
	port := flag.Int("port", 0, "listen port, overrides config")
	flag.Parse()

	cfg := config.Load()
	if err := logger.Setup(logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	}); err != nil {
		// fall back to defaults rather than refusing to start
		logger.Setup(logger.DefaultConfig())
		logger.Error(err, "invalid log config, using defaults")
	}
	log := logger.WithComponent("main")

	pool, err := db.Connect(cfg)
	if err != nil {
		logger.Fatal(err, "database connection failed")
	}
	defer pool.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	if err := database.NewMigrator(pool, migrations.FS, ".").Run(ctx); err != nil {
		cancel()
		logger.Fatal(err, "migrations failed")
	}
	cancel()

	// Redis is optional; everything works uncached without it.
	if err := cache.Init(cfg.Redis.Addr, cfg.Redis.Password); err != nil {
		log.Warn().Err(err).Msg("redis unavailable, reference caching disabled")
	}

	settingRepo := repositories.NewSettingRepository(pool)
	customerRepo := repositories.NewCustomerRepository(pool)
	productRepo := repositories.NewProductRepository(pool)
	vehicleRepo := repositories.NewVehicleRepository(pool)
	invoiceRepo := repositories.NewInvoiceRepository(pool)

	settingService := services.NewSettingService(settingRepo)
	referenceService := services.NewReferenceService(customerRepo, productRepo, vehicleRepo, logger.WithComponent("reference"))
	learnerService := services.NewLearnerService(customerRepo, productRepo, vehicleRepo, logger.WithComponent("learner"))
	invoiceService := services.NewInvoiceService(invoiceRepo, referenceService, learnerService, logger.WithComponent("invoice"))
	statsService := services.NewStatsService(invoiceRepo)
	exportService := services.NewExportService(cfg.Export.FontPath, cfg.Export.FontName, settingService, logger.WithComponent("export"))
	recognitionService := services.NewRecognitionService(settingService, cfg.AI.APIKey, logger.WithComponent("recognition"))
	backupService := services.NewBackupService(pool, cfg, logger.WithComponent("backup"))

	router := httpx.NewRouter(
		handlers.NewInvoiceHandler(invoiceService, exportService),
		handlers.NewReferenceHandler(referenceService),
		handlers.NewStatsHandler(statsService, exportService),
		handlers.NewSettingHandler(settingService),
		handlers.NewRecognitionHandler(recognitionService, referenceService),
		handlers.NewBackupHandler(backupService),
		handlers.NewHealthHandler(health.NewHealthChecker(pool)),
		handlers.NewMonitoringHandler(monitoring.NewSampler(pool)),
	)

	handler := middleware.PanicRecovery(
		middleware.MetricsMiddleware(
			middleware.NewCORS(cfg)(router),
		),
	)

	listenPort := cfg.Server.Port
	if *port != 0 {
		listenPort = *port
	}
	addr := fmt.Sprintf(":%d", listenPort)

	server := &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	log.Info().Str("addr", addr).Msg("server listening")
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatal(err, "server failed")
	}
}
