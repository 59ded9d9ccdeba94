package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/dsanchezmx/shelfstock-backend/api/routes"
	"github.com/dsanchezmx/shelfstock-backend/internal/abcanalysis"
	"github.com/dsanchezmx/shelfstock-backend/internal/auth"
	"github.com/dsanchezmx/shelfstock-backend/internal/inventory"
	"github.com/dsanchezmx/shelfstock-backend/internal/products"
	"github.com/dsanchezmx/shelfstock-backend/internal/replenishment"
	"github.com/dsanchezmx/shelfstock-backend/internal/sales"
	"github.com/dsanchezmx/shelfstock-backend/internal/stores"
	"github.com/dsanchezmx/shelfstock-backend/internal/users"
	"github.com/dsanchezmx/shelfstock-backend/pkg/config"
	"github.com/dsanchezmx/shelfstock-backend/pkg/db"
	"github.com/dsanchezmx/shelfstock-backend/pkg/logger"
	"github.com/dsanchezmx/shelfstock-backend/pkg/metrics"
	"github.com/dsanchezmx/shelfstock-backend/pkg/migrate"
	"github.com/dsanchezmx/shelfstock-backend/pkg/redis"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	dbClient, err := db.New(context.Background(), cfg.DB, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap database", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing database", err)
		}
	}()

	if err := migrate.MaybeRunDev(context.Background(), cfg, logg, dbClient); err != nil {
		logg.Error(context.Background(), "failed to run dev migrations", err)
		os.Exit(1)
	}

	redisClient, err := redis.New(context.Background(), cfg.Redis)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap redis", err)
		os.Exit(1)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing redis", err)
		}
	}()

	registry := prometheus.NewRegistry()
	replenishmentMetrics := metrics.NewReplenishmentMetrics(registry)

	userRepo := users.NewRepository(dbClient.DB())
	storeRepo := stores.NewRepository(dbClient.DB())
	productRepo := products.NewRepository(dbClient.DB())
	inventoryRepo := inventory.NewRepository(dbClient.DB())
	salesRepo := sales.NewRepository(dbClient.DB())
	recommendationRepo := replenishment.NewRepository(dbClient.DB())

	authService, err := auth.NewService(userRepo, cfg.JWT)
	if err != nil {
		logg.Error(context.Background(), "failed to create auth service", err)
		os.Exit(1)
	}

	storeService, err := stores.NewService(storeRepo)
	if err != nil {
		logg.Error(context.Background(), "failed to create store service", err)
		os.Exit(1)
	}

	productService, err := products.NewService(productRepo)
	if err != nil {
		logg.Error(context.Background(), "failed to create product service", err)
		os.Exit(1)
	}

	inventoryService, err := inventory.NewService(inventoryRepo, storeRepo)
	if err != nil {
		logg.Error(context.Background(), "failed to create inventory service", err)
		os.Exit(1)
	}

	salesService, err := sales.NewService(salesRepo, productRepo, storeRepo, inventoryRepo)
	if err != nil {
		logg.Error(context.Background(), "failed to create sales service", err)
		os.Exit(1)
	}

	replenishmentService, err := replenishment.NewService(
		recommendationRepo,
		storeRepo,
		productRepo,
		inventoryRepo,
		salesRepo,
		replenishment.NewPlanner(cfg.Replenishment),
		logg,
		replenishmentMetrics,
	)
	if err != nil {
		logg.Error(context.Background(), "failed to create replenishment service", err)
		os.Exit(1)
	}

	abcService, err := abcanalysis.NewService(storeRepo, productRepo, salesRepo, cfg.Abc)
	if err != nil {
		logg.Error(context.Background(), "failed to create abc analysis service", err)
		os.Exit(1)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port
	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":  cfg.App.Env,
		"addr": addr,
	})
	logg.Info(ctx, "starting api server")

	server := &http.Server{
		Addr: addr,
		Handler: routes.NewRouter(
			cfg,
			logg,
			dbClient,
			redisClient,
			registry,
			authService,
			storeService,
			productService,
			inventoryService,
			salesService,
			replenishmentService,
			abcService,
		),
	}

	runCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.ListenAndServe()
	}()

	select {
	case <-runCtx.Done():
		logg.Info(ctx, "shutdown signal received")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logg.Error(ctx, "error during server shutdown", err)
			os.Exit(1)
		}
	case err := <-errCh:
		if err != nil && err != http.ErrServerClosed {
			logg.Error(ctx, "api server stopped unexpectedly", err)
			os.Exit(1)
		}
	}
}
