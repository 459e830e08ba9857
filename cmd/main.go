package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	httpadapter "clipmarket/internal/adapter/http"
	"clipmarket/internal/adapter/gormstore"
	"clipmarket/internal/adapter/metrics"
	"clipmarket/internal/adapter/postgres"
	redisguard "clipmarket/internal/adapter/redis"
	"clipmarket/internal/adapter/scheduler"
	"clipmarket/internal/adapter/sink"
	"clipmarket/internal/adapter/supplier"
	"clipmarket/internal/adapter/usecase"
	"clipmarket/internal/config"
	"clipmarket/internal/config/configs"
	"clipmarket/internal/core/port"
	"clipmarket/internal/db"
)

// main is the entry point of the payout service. It loads configuration,
// opens the configured store, wires the payout engine and view tracker, then
// serves the HTTP triggers and runs the scheduler until a termination signal
// arrives.
func main() {
	os.Exit(run())
}

type store struct {
	repo  port.PayoutRepository
	views port.ViewLedger
	close func()
}

func run() int {
	// Load configuration from environment variables.
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		return 1
	}

	var logger *slog.Logger
	{
		// Initialise structured logger based on configuration.
		var handler slog.Handler
		level := cfg.Log.SlogLevel()
		switch cfg.Log.SlogFormat() {
		case "json":
			handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
		default:
			handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level})
		}
		logger = slog.New(handler).With(slog.String("env", cfg.Env))
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	st, err := openStore(ctx, cfg, logger)
	if err != nil {
		logger.Error("store initialisation error", slog.String("driver", cfg.Store.Driver), slog.Any("error", err))
		return 1
	}
	defer st.close()

	disbursement, err := newSink(cfg.Sink, logger)
	if err != nil {
		logger.Error("sink initialisation error", slog.Any("error", err))
		return 1
	}
	if c, ok := disbursement.(io.Closer); ok {
		defer c.Close()
	}

	viewSupplier, err := supplier.NewHTTPSupplier(cfg.Supplier)
	if err != nil {
		logger.Error("supplier initialisation error", slog.Any("error", err))
		return 1
	}

	var guard port.RunGuard = usecase.NewLocalRunGuard()
	if cfg.Redis.Address != "" {
		client, err := redisguard.Connect(ctx, cfg.Redis.Address)
		if err != nil {
			logger.Error("redis connection error", slog.Any("error", err))
			return 1
		}
		defer client.Close()
		guard = redisguard.NewRunGuard(client)
		logger.Info("run leases shared through redis")
	}

	engineMetrics := metrics.NewEngineMetrics(prometheus.DefaultRegisterer)
	opts := []usecase.Option{
		usecase.WithLogger(logger),
		usecase.WithMetrics(engineMetrics),
		usecase.WithRunGuard(guard, cfg.Redis.LeaseTTL),
		usecase.WithConcurrency(cfg.Engine.Concurrency),
		usecase.WithPendingPolicy(cfg.Engine.PendingMinAge, cfg.Engine.PendingBatchSize),
	}
	engine := usecase.NewPayoutUseCase(st.repo, st.views, disbursement, opts...)
	tracker := usecase.NewViewTracker(st.repo, st.views, viewSupplier, opts...)

	handler := httpadapter.NewHandler(engine, tracker, logger,
		httpadapter.WithTriggerToken(cfg.HTTP.TriggerToken),
		httpadapter.WithMetricsHandler(promhttp.Handler()))
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler:           handler.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	var sched *scheduler.Scheduler
	if cfg.Scheduler.Enabled {
		sched = scheduler.New(logger,
			scheduler.Job{Name: "track", Interval: cfg.Scheduler.TrackInterval, Run: func(ctx context.Context) error {
				_, err := tracker.TrackViews(ctx)
				return err
			}},
			scheduler.Job{Name: "calculate", Interval: cfg.Scheduler.CalculateInterval, Run: func(ctx context.Context) error {
				_, err := engine.CalculateAllCampaignPayouts(ctx)
				return err
			}},
			scheduler.Job{Name: "disburse", Interval: cfg.Scheduler.ProcessInterval, Run: engine.ProcessPendingPayouts},
		)
		sched.Start(ctx)
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("server listening", slog.Int("port", int(cfg.HTTP.Port)))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
	}()

	exitCode := 0
	select {
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	case err = <-serveErr:
		logger.Error("server error", slog.Any("error", err))
		exitCode = 1
	}
	cancel()

	shutdownCtx, stop := context.WithTimeout(context.Background(), 5*time.Second)
	defer stop()
	if err = srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
	} else {
		logger.Info("server gracefully stopped")
	}
	if sched != nil {
		sched.Wait()
	}
	return exitCode
}

func openStore(ctx context.Context, cfg config.Config, logger *slog.Logger) (*store, error) {
	switch strings.ToLower(cfg.Store.Driver) {
	case configs.StoreDriverSQLite:
		gdb, err := gormstore.OpenSQLite(cfg.Store.SQLitePath)
		if err != nil {
			return nil, err
		}
		if cfg.Store.Seed {
			if err = gormstore.Seed(ctx, gdb); err != nil {
				return nil, fmt.Errorf("seed: %w", err)
			}
			logger.Info("demo data seeded")
		}
		s := gormstore.New(gdb)
		return &store{repo: s, views: s, close: func() {
			if sqlDB, err := gdb.DB(); err == nil {
				_ = sqlDB.Close()
			}
		}}, nil
	default:
		// Optionally run migrations if configured.
		if cfg.Psql.RunMigrations {
			if err := db.Migrate(cfg.Psql.Addr.String()); err != nil {
				return nil, fmt.Errorf("migrate: %w", err)
			}
			logger.Info("migrations applied successfully")
		}
		pool, err := db.NewPostgresPool(ctx, cfg.Psql)
		if err != nil {
			return nil, err
		}
		if cfg.Store.Seed {
			if err = db.Seed(ctx, pool); err != nil {
				pool.Close()
				return nil, fmt.Errorf("seed: %w", err)
			}
			logger.Info("demo data seeded")
		}
		return &store{
			repo:  postgres.NewPayoutRepository(pool),
			views: postgres.NewViewLedger(pool),
			close: pool.Close,
		}, nil
	}
}

func newSink(cfg configs.Sink, logger *slog.Logger) (port.DisbursementSink, error) {
	switch strings.ToLower(cfg.Driver) {
	case configs.SinkDriverKafka:
		return sink.NewKafkaSink(cfg.KafkaBrokers, cfg.KafkaTopic)
	default:
		return sink.NewLogSink(logger), nil
	}
}
