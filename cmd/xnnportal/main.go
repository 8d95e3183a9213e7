// Command xnnportal is the operator console for the portal core: inspect the
// editorial queue, run the due publisher once, resolve session tokens, and
// manage background jobs. There is no network surface; everything runs
// against the configured stores directly.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"text/tabwriter"

	"github.com/xnn-portal/xnn-portal/cmd/xnnportal/cli"
	"github.com/xnn-portal/xnn-portal/internal/app"
	"github.com/xnn-portal/xnn-portal/internal/auth"
	"github.com/xnn-portal/xnn-portal/internal/identity"
	"github.com/xnn-portal/xnn-portal/internal/newsroom"
	"github.com/xnn-portal/xnn-portal/internal/platform/cache"
	"github.com/xnn-portal/xnn-portal/internal/platform/db"
	"github.com/xnn-portal/xnn-portal/internal/shared"
	"github.com/xnn-portal/xnn-portal/jobs"
)

func main() {
	if app.InTestMode() {
		slog.Default().Info("test mode detected, skipping runtime startup")
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

	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	switch os.Args[1] {
	case "queue":
		err = runQueue(ctx, cfg, logger, tailArg(2))
	case "publish-due":
		err = runPublishDue(ctx, cfg, logger)
	case "whoami":
		if len(os.Args) < 3 {
			usage()
			os.Exit(2)
		}
		err = runWhoami(ctx, cfg, logger, os.Args[2])
	case "seed":
		err = runSeed(ctx, cfg, logger)
	case "jobs":
		err = runJobs(ctx, cfg, tailArg(2))
	default:
		usage()
		os.Exit(2)
	}
	if err != nil {
		logger.Error("command failed", slog.String("command", os.Args[1]), slog.Any("error", err))
		os.Exit(1)
	}
}

func tailArg(i int) string {
	if len(os.Args) > i {
		return os.Args[i]
	}
	return ""
}

func usage() {
	fmt.Fprintln(os.Stderr, `usage: xnnportal <command>

  queue [STATUS]      print the editorial queue, optionally filtered
  publish-due         publish all due scheduled articles once
  whoami TOKEN        resolve a session token to its principal
  seed                load the demo content into postgres
  jobs trigger NAME   enqueue a background job
  jobs stats          show queue statistics`)
}

func newsroomService(logger *slog.Logger) (*newsroom.Service, identity.DirectoryPort) {
	entries, staff := identity.SeedDirectory()
	directory := identity.NewMemoryDirectory(entries, staff)
	repo := newsroom.NewMemoryRepository()
	articles, queue := newsroom.SeedContent(entries)
	if err := newsroom.LoadSeed(context.Background(), repo, articles, queue); err != nil {
		logger.Warn("load seed", slog.Any("error", err))
	}
	activity := shared.NewMemoryActivityRecorder()
	return newsroom.NewService(repo, directory, activity, shared.SystemClock{}, logger), directory
}

func runQueue(ctx context.Context, cfg *app.Config, logger *slog.Logger, status string) error {
	svc, _ := newsroomService(logger)
	items, err := svc.Queue(ctx, newsroom.ArticleStatus(status))
	if err != nil {
		return err
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ITEM\tARTICLE\tSTATUS\tPRIORITY\tASSIGNEE\tCOMMENTS")
	for _, item := range items {
		assignee := "-"
		if item.AssignedTo != nil {
			assignee = item.AssignedTo.Username
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%d\n",
			item.ID, item.ArticleID, item.Status, item.Priority, assignee, len(item.Comments))
	}
	return w.Flush()
}

func runPublishDue(ctx context.Context, cfg *app.Config, logger *slog.Logger) error {
	svc, _ := newsroomService(logger)
	published, err := svc.PublishDue(ctx)
	if err != nil {
		return err
	}
	fmt.Printf("published %d article(s)\n", published)
	return nil
}

func runWhoami(ctx context.Context, cfg *app.Config, logger *slog.Logger, token string) error {
	redisClient, err := cache.New(ctx, cfg.RedisAddr)
	if err != nil {
		return err
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			logger.Warn("redis close", slog.Any("error", err))
		}
	}()

	entries, staff := identity.SeedDirectory()
	directory := identity.NewMemoryDirectory(entries, staff)
	store := auth.NewRedisStore(redisClient, cfg.SessionTTL)
	authService := auth.NewService(directory, store, shared.SystemClock{}, logger, auth.ServiceConfig{
		SessionTTL: cfg.SessionTTL,
	})

	principal, err := authService.Authenticate(ctx, token)
	if err != nil {
		return err
	}
	if principal == nil {
		fmt.Println("anonymous (unknown or expired token)")
		return nil
	}
	fmt.Printf("%s (%s, role=%s clearance=%d)\n",
		principal.Username, principal.DisplayName(), principal.Role, principal.Clearance)
	return nil
}

func runSeed(ctx context.Context, cfg *app.Config, logger *slog.Logger) error {
	pool, err := db.New(ctx, cfg.PGDSN)
	if err != nil {
		return err
	}
	defer pool.Close()

	repo := newsroom.NewPGRepository(pool)
	entries, _ := identity.SeedDirectory()
	articles, queue := newsroom.SeedContent(entries)
	if err := newsroom.LoadSeed(ctx, repo, articles, queue); err != nil {
		return err
	}
	logger.Info("seeded postgres", slog.Int("articles", len(articles)), slog.Int("queue", len(queue)))
	return nil
}

func runJobs(ctx context.Context, cfg *app.Config, sub string) error {
	jobsCLI, err := cli.NewJobsCLI(cfg.RedisAddr)
	if err != nil {
		return err
	}
	defer func() { _ = jobsCLI.Close() }()

	switch sub {
	case "trigger":
		name := tailArg(3)
		if name == "" {
			name = jobs.TaskNewsroomPublishDue
		}
		info, err := jobsCLI.Trigger(ctx, name)
		if err != nil {
			return err
		}
		fmt.Printf("enqueued %s (%s)\n", info.Type, info.ID)
		return nil
	case "stats":
		stats, err := jobsCLI.InspectQueue(ctx)
		if err != nil {
			return err
		}
		fmt.Printf("queue=%s pending=%d active=%d scheduled=%d retry=%d\n",
			stats.Queue, stats.Pending, stats.Active, stats.Scheduled, stats.Retry)
		return nil
	default:
		usage()
		return fmt.Errorf("unknown jobs subcommand %q", sub)
	}
}
