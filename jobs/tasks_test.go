package jobs

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/require"

	"github.com/xnn-portal/xnn-portal/internal/auth"
	"github.com/xnn-portal/xnn-portal/internal/identity"
	"github.com/xnn-portal/xnn-portal/internal/newsroom"
	"github.com/xnn-portal/xnn-portal/internal/shared"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestPublishDueJob(t *testing.T) {
	entries, staff := identity.SeedDirectory()
	directory := identity.NewMemoryDirectory(entries, staff)
	repo := newsroom.NewMemoryRepository()
	clock := &shared.FixedClock{Instant: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)}
	svc := newsroom.NewService(repo, directory, nil, clock, discardLogger())

	editor, err := directory.Principal(context.Background(), "edit-001")
	require.NoError(t, err)
	ctx := identity.ContextWithActor(context.Background(), &editor)

	article, err := svc.CreateArticle(ctx, newsroom.DraftInput{
		Headline:     "Council Approves Night Bus Expansion",
		CategorySlug: "national",
	})
	require.NoError(t, err)
	for _, status := range []newsroom.ArticleStatus{newsroom.StatusSubmitted, newsroom.StatusInReview, newsroom.StatusScheduled} {
		_, err = svc.Transition(ctx, article.ID, status, "")
		require.NoError(t, err)
	}
	due := clock.Now().Add(-time.Minute)
	scheduled, err := repo.GetArticle(ctx, article.ID)
	require.NoError(t, err)
	scheduled.ScheduledAt = &due
	require.NoError(t, repo.SaveArticle(ctx, scheduled))

	task, err := NewPublishDueTask("cron")
	require.NoError(t, err)
	job := NewPublishDueJob(svc, discardLogger(), nil)
	require.NoError(t, job.Handle(context.Background(), task))

	got, err := repo.GetArticle(context.Background(), article.ID)
	require.NoError(t, err)
	require.Equal(t, newsroom.StatusPublished, got.Status)
	require.NotNil(t, got.PublishedAt)
}

func TestPublishDueJobRejectsBadPayload(t *testing.T) {
	job := NewPublishDueJob(nil, discardLogger(), nil)
	task := asynq.NewTask(TaskNewsroomPublishDue, []byte("{broken"))
	err := job.Handle(context.Background(), task)
	require.ErrorIs(t, err, asynq.SkipRetry)
}

func TestSessionSweepJob(t *testing.T) {
	entries, staff := identity.SeedDirectory()
	directory := identity.NewMemoryDirectory(entries, staff)
	clock := &shared.FixedClock{Instant: time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)}
	store := auth.NewMemoryStore()
	authSvc := auth.NewService(directory, store, clock, discardLogger(), auth.ServiceConfig{SessionTTL: time.Hour})

	sess, _, err := authSvc.Login(context.Background(), auth.Credentials{Username: "editor.test", Secret: "test123"})
	require.NoError(t, err)

	clock.Advance(2 * time.Hour)
	task, err := NewSessionsSweepTask()
	require.NoError(t, err)
	job := NewSessionSweepJob(authSvc, discardLogger(), nil)
	require.NoError(t, job.Handle(context.Background(), task))

	_, ok, err := store.Get(context.Background(), sess.Token)
	require.NoError(t, err)
	require.False(t, ok)
}
