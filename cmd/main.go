package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	httpadapter "campaign-pricing/internal/adapter/http"
	"campaign-pricing/internal/adapter/postgres"
	rediscache "campaign-pricing/internal/adapter/redis"
	"campaign-pricing/internal/adapter/usecase"
	"campaign-pricing/internal/config"
	"campaign-pricing/internal/core/port"
	"campaign-pricing/internal/db"
	"campaign-pricing/internal/metrics"
)

// main is the entry point of the campaign pricing service. It loads
// configuration, optionally runs database migrations and the demo seed,
// wires the pricing engine, invoice scheduler and billing use case, then
// starts the HTTP server. On receiving a termination signal it gracefully
// shuts down the server.
func main() {
	exitCode := 1
	defer func() {
		if r := recover(); r != nil {
			panic(r)
		} else {
			os.Exit(exitCode)
		}
	}()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		return
	}
	logger := cfg.Log.NewLogger(os.Stdout)

	if cfg.Psql.RunMigrations {
		if err = db.Migrate(cfg.Psql.Addr.String()); err != nil {
			logger.Error("migration error", slog.Any("error", err))
			return
		}
		logger.Info("migrations applied successfully")
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	pool, err := db.NewPostgresPool(ctx, cfg.Psql)
	if err != nil {
		logger.Error("database connection error", slog.Any("error", err))
		return
	}
	defer pool.Close()

	if cfg.Psql.Seed {
		if err = db.Seed(ctx, pool); err != nil {
			logger.Error("seed error", slog.Any("error", err))
			return
		}
		logger.Info("demo data seeded")
	}

	var m *metrics.Metrics
	if cfg.Metrics.Enabled {
		reg := prometheus.NewRegistry()
		reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
		m = metrics.NewMetrics(cfg.Metrics.Namespace, reg)
	}

	var geo port.GeoRegistry = postgres.NewGeoRegistry(pool)
	if cfg.Redis.Enabled {
		client, err := db.NewRedisClient(ctx, cfg.Redis)
		if err != nil {
			// pricing still works against postgres alone
			logger.Warn("redis unavailable, geo cache disabled", slog.Any("error", err))
		} else {
			defer client.Close()
			geo = rediscache.NewGeoCache(geo, client, cfg.Redis.TTL, m, logger)
			logger.Info("geo cache enabled", slog.String("addr", cfg.Redis.Addr))
		}
	}

	engine := usecase.NewPricingEngine(geo, postgres.NewRateMatrix(pool), cfg.Pricing.RadiusDensity)
	scheduler := usecase.NewInvoiceScheduler(geo, nil)
	billing := usecase.NewBillingUseCase(
		postgres.NewCampaignRepository(pool),
		postgres.NewInvoiceRepository(pool),
		engine,
		scheduler,
		m,
		logger,
	)

	handler := httpadapter.NewHandler(engine, billing, m, cfg.Metrics.Path, logger)
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler: handler.Router(),
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("server listening", slog.Int("port", int(cfg.HTTP.Port)))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	select {
	case <-ctx.Done():
		exitCode = 0
	case err = <-serverErr:
		logger.Error("server error", slog.Any("error", err))
		return
	}

	shutdownCtx, stop := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer stop()
	if err = srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
		exitCode = 1
	} else {
		logger.Info("server gracefully stopped")
	}
}
