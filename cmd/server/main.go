package main

import (
	"database/sql"
	"flag"
	"log"
	"net/http"

	httpapi "bikeshop-backend/internal/api/http"
	"bikeshop-backend/internal/config"
	"bikeshop-backend/internal/jobs"
	"bikeshop-backend/internal/logger"
	"bikeshop-backend/internal/repository/postgres"
	"bikeshop-backend/internal/scheduler"
	"bikeshop-backend/internal/security"
	"bikeshop-backend/internal/service"

	_ "github.com/lib/pq"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting Bikeshop Backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress())
	logger.Info("Database configuration", "host", cfg.Database.Host, "port", cfg.Database.Port, "database", cfg.Database.Database, "user", cfg.Database.User)

	// Initialize Database
	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Test database connection
	if err := db.Ping(); err != nil {
		logger.Error("Failed to ping database", "error", err)
		log.Fatalf("Failed to ping database: %v", err)
	}
	logger.Info("Database connection established")

	// Initialize Repositories
	store := postgres.NewStore(db)

	// Initialize Security
	tokenManager := security.NewTokenManager(cfg.JWT.Secret, cfg.JWT.TokenExpiryHours)

	// Initialize Email Service
	emailSvc := service.NewEmailService(
		cfg.Sendgrid.APIKey,
		cfg.Sendgrid.FromEmail,
		cfg.Sendgrid.FromName,
	)

	// Initialize Services
	invoiceSvc := service.NewInvoiceService(store.AccountingRepository)
	catalogSvc := service.NewCatalogService(
		store.BikeRepository,
		store.ContractRepository,
		store.SequenceRepository,
		store.AuditLogRepository,
	)
	categorySvc := service.NewCategoryService(store.CategoryRepository)
	pricingSvc := service.NewPricingService(store.PricingRepository, store.CategoryRepository)
	customerSvc := service.NewCustomerService(store.CustomerRepository)
	contractSvc := service.NewContractService(
		store.ContractRepository,
		store.BikeRepository,
		store.CustomerRepository,
		store.SequenceRepository,
		store.AuditLogRepository,
		invoiceSvc,
		emailSvc,
	)

	// Start the background job scheduler
	if cfg.Scheduler.Enabled {
		jobRunner := jobs.NewJobRunner(db, store, &jobs.Services{Email: emailSvc}, cfg)
		sched := scheduler.NewScheduler(jobRunner)
		sched.Start()
		defer sched.Stop()
	} else {
		logger.Info("Scheduler disabled by configuration")
	}

	// Set up HTTP API
	router := httpapi.NewRouter(&httpapi.Services{
		Catalog:  catalogSvc,
		Category: categorySvc,
		Pricing:  pricingSvc,
		Customer: customerSvc,
		Contract: contractSvc,
	}, tokenManager)

	logger.Info("HTTP server listening", "address", cfg.GetServerAddress())
	if err := http.ListenAndServe(cfg.GetServerAddress(), router); err != nil {
		logger.Error("HTTP server error", "error", err)
		log.Fatalf("Failed to serve: %v", err)
	}
}
