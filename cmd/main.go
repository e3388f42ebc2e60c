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

	"pagecast/internal/adapter/http"
	"pagecast/internal/adapter/messenger"
	"pagecast/internal/adapter/postgres"
	"pagecast/internal/adapter/redis"
	"pagecast/internal/adapter/usecase"
	"pagecast/internal/config"
	"pagecast/internal/core/port"
	"pagecast/internal/db"
	"pagecast/internal/scheduler"
)

// main loads configuration, prepares the database, wires adapters and use
// cases, then serves HTTP and runs the dispatch schedule until SIGINT or
// SIGTERM.
func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		os.Exit(1)
	}
	logger := cfg.Log.New(os.Stdout).With(slog.String("env", cfg.Env))
	slog.SetDefault(logger)

	if err = run(cfg, logger); err != nil {
		logger.Error("fatal", slog.Any("error", err))
		os.Exit(1)
	}
}

func run(cfg config.Config, logger *slog.Logger) error {
	if cfg.Psql.RunMigrations {
		if err := db.Migrate(cfg.Psql.Addr.String()); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
		logger.Info("migrations applied successfully")
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	pool, err := db.NewPostgresPool(ctx, cfg.Psql)
	if err != nil {
		return fmt.Errorf("database connection: %w", err)
	}
	defer pool.Close()

	if cfg.Psql.Seed {
		if err = db.Seed(ctx, pool, cfg.Psql.SeedAccessToken); err != nil {
			return fmt.Errorf("seed: %w", err)
		}
		logger.Info("demo data seeded", slog.String("account_id", db.DemoAccountID.String()))
	}

	campaigns := postgres.NewCampaignRepository(pool)
	conversations := postgres.NewConversationRepository(pool)
	client := messenger.NewClient(cfg.Messenger, logger.With(slog.String("component", "messenger")))

	var (
		events   port.EventPublisher
		progress httpadapter.ProgressReader
	)
	if cfg.Redis.Enabled {
		rdb, err := redis.NewClient(ctx, cfg.Redis)
		if err != nil {
			return err
		}
		defer rdb.Close()
		pub := redis.NewEventPublisher(rdb, cfg.Redis.Channel, cfg.Redis.SnapshotTTL)
		events, progress = pub, pub
		logger.Info("campaign events enabled", slog.String("channel", cfg.Redis.Channel))
	}

	resolver := usecase.NewAudienceResolver(conversations, cfg.Dispatch.ActiveWindow)
	dispatcher := usecase.NewDispatcher(campaigns, resolver, client, events,
		logger.With(slog.String("component", "dispatcher")), cfg.Dispatch.CheckpointEvery)
	reconciler := usecase.NewReconciler(campaigns, events, logger, cfg.Dispatch.StaleAfter)

	handler := httpadapter.NewHandler(httpadapter.Deps{
		Campaigns: usecase.NewCampaignUseCase(campaigns, resolver, events, logger),
		Messages:  usecase.NewMessageUseCase(conversations, client, logger, cfg.Dispatch.ActiveWindow),
		Inbound:   usecase.NewInboundUseCase(conversations, logger),
		Dispatch:  dispatcher,
		Progress:  progress,
		Webhook:   cfg.Messenger,
	}, logger)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler:           handler.Router(),
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
	}

	var sched *scheduler.Scheduler
	if cfg.Dispatch.Enabled {
		sched = scheduler.New(cfg.Dispatch, dispatcher, reconciler, logger.With(slog.String("component", "scheduler")))
		sched.Start(ctx)
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("server listening", slog.Int("port", int(cfg.HTTP.Port)))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	case err = <-serveErr:
		logger.Error("server error", slog.Any("error", err))
	}

	if sched != nil {
		sched.Stop(cfg.HTTP.ShutdownTimeout)
	}

	shutdownCtx, stop := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer stop()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}
	logger.Info("server gracefully stopped")
	return err
}
