// Command worker runs the background job processor: the due-article
// publisher and the session sweeper, both on cron schedules.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/hibiken/asynq"

	"github.com/xnn-portal/xnn-portal/internal/app"
	"github.com/xnn-portal/xnn-portal/internal/auth"
	"github.com/xnn-portal/xnn-portal/internal/identity"
	jobmetrics "github.com/xnn-portal/xnn-portal/internal/jobs"
	"github.com/xnn-portal/xnn-portal/internal/newsroom"
	"github.com/xnn-portal/xnn-portal/internal/platform/cache"
	"github.com/xnn-portal/xnn-portal/internal/platform/db"
	"github.com/xnn-portal/xnn-portal/internal/shared"
	"github.com/xnn-portal/xnn-portal/jobs"
)

func main() {
	if app.InTestMode() {
		slog.Default().Info("test mode detected, skipping worker startup")
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := app.LoadConfig()
	if err != nil {
		slog.Default().Error("load config", slog.Any("error", err))
		os.Exit(1)
	}
	logger := app.NewLogger(cfg)

	pool, err := db.New(ctx, cfg.PGDSN)
	if err != nil {
		logger.Error("connect postgres", slog.Any("error", err))
		os.Exit(1)
	}
	defer pool.Close()

	redisClient, err := cache.New(ctx, cfg.RedisAddr)
	if err != nil {
		logger.Error("connect redis", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			logger.Warn("redis close", slog.Any("error", err))
		}
	}()

	entries, staff := identity.SeedDirectory()
	directory := identity.NewMemoryDirectory(entries, staff)

	repo := newsroom.NewPGRepository(pool)
	activity := shared.NewPGActivityRecorder(pool)
	newsroomService := newsroom.NewService(repo, directory, activity, shared.SystemClock{}, logger)

	sessionStore := auth.NewRedisStore(redisClient, cfg.SessionTTL)
	authService := auth.NewService(directory, sessionStore, shared.SystemClock{}, logger, auth.ServiceConfig{
		SessionTTL: cfg.SessionTTL,
	})

	metrics := jobmetrics.NewMetrics(nil)
	publishJob := jobs.NewPublishDueJob(newsroomService, logger, metrics)
	sweepJob := jobs.NewSessionSweepJob(authService, logger, metrics)

	publishTask, err := jobs.NewPublishDueTask("cron")
	if err != nil {
		logger.Error("build publish task", slog.Any("error", err))
		os.Exit(1)
	}
	sweepTask, err := jobs.NewSessionsSweepTask()
	if err != nil {
		logger.Error("build sweep task", slog.Any("error", err))
		os.Exit(1)
	}

	worker, err := jobs.NewWorker(jobs.WorkerConfig{
		RedisOpts: asynq.RedisClientOpt{Addr: cfg.RedisAddr},
		Logger:    logger,
		Handlers: []jobs.TaskHandler{
			{Type: jobs.TaskNewsroomPublishDue, Handler: publishJob.Handle},
			{Type: jobs.TaskSessionsSweep, Handler: sweepJob.Handle},
		},
		Cron: []jobs.CronRegistration{
			{Spec: cfg.PublishDueCron, Task: publishTask},
			{Spec: cfg.SessionSweepCron, Task: sweepTask},
		},
	})
	if err != nil {
		logger.Error("init worker", slog.Any("error", err))
		os.Exit(1)
	}

	logger.Info("worker started", slog.String("redis", cfg.RedisAddr))
	if err := worker.Run(ctx); err != nil && ctx.Err() == nil {
		logger.Error("worker stopped", slog.Any("error", err))
		os.Exit(1)
	}
}
