package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"album_syncer/internal/config"
	"album_syncer/internal/domain"
	"album_syncer/internal/exiftool"
	"album_syncer/internal/notify"
	"album_syncer/internal/pipeline"
	"album_syncer/internal/scheduler"
	"album_syncer/internal/service"
	"album_syncer/internal/source/micloud"
	"album_syncer/internal/storage/postgres"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	flag.Parse()

	// Setup logger
	logger := setupLogger("info")

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger = setupLogger(cfg.LogLevel)

	db, err := sqlx.Connect("postgres", cfg.Database.DSN())
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		logger.Error("failed to ping database", "error", err)
		os.Exit(1)
	}
	logger.Info("connected to database")

	// Run-summary notifications are optional.
	var notifier service.Notifier
	if cfg.RabbitMQ.Enabled {
		rabbitMQ, err := notify.NewRabbitMQ(notify.Config{
			URL:        cfg.RabbitMQ.URL,
			Exchange:   cfg.RabbitMQ.Exchange,
			RoutingKey: cfg.RabbitMQ.RoutingKey,
			QueueName:  cfg.RabbitMQ.QueueName,
		}, logger)
		if err != nil {
			logger.Error("failed to connect to rabbitmq", "error", err)
			os.Exit(1)
		}
		defer rabbitMQ.Close()
		notifier = rabbitMQ
	}

	// Initialize stores
	albumStore := postgres.NewAlbumStore(db)
	assetStore := postgres.NewAssetStore(db)
	workItemStore := postgres.NewWorkItemStore(db)
	runStore := postgres.NewRunStore(db)
	txManager := postgres.NewTransactionManager(db)

	// Initialize the remote gallery client
	accounts := make([]micloud.Account, len(cfg.Accounts))
	for i, a := range cfg.Accounts {
		accounts[i] = micloud.Account{ID: a.ID, UserID: a.UserID, PassToken: a.PassToken}
	}
	httpClient := micloud.NewHTTPClient(cfg.API.Timeout)
	tokens := micloud.NewTokenManager(httpClient, cfg.API.AccountBase, cfg.API.AccountBase, accounts, logger)
	catalog := micloud.New(micloud.Config{
		BaseURL:        cfg.API.BaseURL,
		Timeout:        cfg.API.Timeout,
		MaxAttempts:    cfg.API.Retry.MaxAttempts,
		InitialBackoff: cfg.API.Retry.InitialBackoff,
		MaxBackoff:     cfg.API.Retry.MaxBackoff,
	}, httpClient, tokens, logger)

	refresher := service.NewRefresher(catalog, albumStore, assetStore, txManager, logger)

	jobs := make([]scheduler.Job, 0, len(cfg.Jobs))
	for _, job := range cfg.Jobs {
		runCfg := job.ToRunConfig()

		rewriter := exiftool.New(cfg.Exiftool.Path, cfg.Exiftool.Timeout, jobLocation(runCfg.TimeZone, logger), logger)
		factory := func(run domain.RunContext, cfg domain.RunConfig) service.Processor {
			return pipeline.New(run, cfg, pipeline.Deps{
				Assets:     assetStore,
				Items:      workItemStore,
				Downloader: catalog,
				Rewriter:   rewriter,
				Logger:     logger,
			})
		}

		runService := service.NewRunService(
			job.ID,
			job.Name,
			job.AccountID,
			runCfg,
			runStore,
			refresher,
			factory,
			notifier,
			logger,
		)

		jobs = append(jobs, scheduler.Job{
			Name:     job.Name,
			Interval: job.Interval,
			Runner:   runService,
		})
	}

	sched := scheduler.New(jobs, logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigCh
		logger.Info("received shutdown signal", "signal", sig)
		cancel()
	}()

	logger.Info("starting album syncer",
		"jobs", len(jobs),
		"accounts", len(accounts),
	)

	if err := sched.Start(ctx); err != nil && err != context.Canceled {
		logger.Error("scheduler error", "error", err)
		os.Exit(1)
	}
}

func jobLocation(name string, logger *slog.Logger) *time.Location {
	if name == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		logger.Warn("bad time zone, exiftool uses UTC", "time_zone", name, "error", err)
		return time.UTC
	}
	return loc
}

func setupLogger(level string) *slog.Logger {
	var logLevel slog.Level
	switch level {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: logLevel}
	handler := slog.NewJSONHandler(os.Stdout, opts)
	return slog.New(handler)
}
