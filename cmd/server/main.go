package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/ezbillify/mills-mitra-market-bloom-sub000/internal"
	"github.com/ezbillify/mills-mitra-market-bloom-sub000/internal/handler/api"
	"github.com/ezbillify/mills-mitra-market-bloom-sub000/internal/middleware"
	"github.com/ezbillify/mills-mitra-market-bloom-sub000/internal/repository"
	"github.com/ezbillify/mills-mitra-market-bloom-sub000/internal/router"
	"github.com/ezbillify/mills-mitra-market-bloom-sub000/internal/routes"
	"github.com/ezbillify/mills-mitra-market-bloom-sub000/internal/service"
	"github.com/ezbillify/mills-mitra-market-bloom-sub000/internal/shipping"
	"github.com/ezbillify/mills-mitra-market-bloom-sub000/internal/tax"
	"github.com/ezbillify/mills-mitra-market-bloom-sub000/internal/telemetry"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"
)

func run() error {
	ctx := context.Background()

	// Load configuration
	cfg, err := internal.NewConfig()
	if err != nil {
		return fmt.Errorf("config initialization failed: %w", err)
	}

	// Configure logger
	logger := internal.NewLogger(os.Stdout, cfg.Env, cfg.LogLevel)

	// Initialize database/sql connection for migrations
	logger.Info("Connecting to database...")
	sqlDB, err := sql.Open("pgx", cfg.DatabaseUrl)
	if err != nil {
		return fmt.Errorf("database connection failed: %w", err)
	}
	defer sqlDB.Close()

	if err := sqlDB.Ping(); err != nil {
		return fmt.Errorf("database ping failed: %w", err)
	}
	logger.Info("Database connection established")

	// Run migrations
	logger.Info("Running database migrations...")
	if err := internal.RunMigrations(sqlDB); err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}
	logger.Info("Database migrations completed successfully")

	// Initialize pgx connection pool for application
	pool, err := pgxpool.New(ctx, cfg.DatabaseUrl)
	if err != nil {
		return fmt.Errorf("failed to create connection pool: %w", err)
	}
	defer pool.Close()

	// Initialize repository
	repo := repository.New(pool)

	// Business metrics
	telemetry.InitBusinessMetrics(cfg.MetricsNamespace)

	// The single tax calculator shared by checkout and reporting.
	calculator := tax.NewGSTCalculator()

	// Shipping provider (flat rate with a free-delivery threshold)
	shippingProvider := shipping.NewFlatRateProvider(cfg.Delivery.FlatRate, cfg.Delivery.FreeAbove)
	logger.Info("Shipping provider initialized",
		"flat_rate", cfg.Delivery.FlatRate,
		"free_above", cfg.Delivery.FreeAbove,
	)

	// Initialize services
	catalogService := service.NewCatalogService(repo)
	checkoutService := service.NewCheckoutService(repo, calculator, shippingProvider)
	reportService := service.NewReportService(repo, calculator)
	logger.Info("Services initialized")

	// HTTP metrics
	metrics := middleware.NewMetrics(cfg.MetricsNamespace)

	// Router with the global middleware chain
	r := router.New(
		router.Recovery(logger),
		middleware.RequestID,
		metrics.Middleware,
		middleware.MaxBodySize(middleware.DefaultMaxBodySize),
		middleware.WithRequestLogger(logger),
		router.Logger(logger),
	)

	// Metrics endpoint (protect via firewall in production)
	r.Get("/metrics", func(w http.ResponseWriter, req *http.Request) {
		metrics.Handler().ServeHTTP(w, req)
	})

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	apiHandler := api.NewHandler(logger, catalogService, checkoutService, reportService)
	routes.RegisterAPIRoutes(r, routes.APIDeps{Handler: apiHandler})

	addr := fmt.Sprintf(":%d", cfg.Port)
	logger.Info("Starting server", "address", addr, "env", cfg.Env)

	if err := http.ListenAndServe(addr, r); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}
