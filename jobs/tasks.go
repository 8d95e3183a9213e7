package jobs

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/hibiken/asynq"

	"github.com/xnn-portal/xnn-portal/internal/auth"
	jobmetrics "github.com/xnn-portal/xnn-portal/internal/jobs"
	"github.com/xnn-portal/xnn-portal/internal/newsroom"
)

const (
	// QueueDefault is the default queue name for background jobs.
	QueueDefault = "default"
	// TaskNewsroomPublishDue publishes SCHEDULED articles that are due.
	TaskNewsroomPublishDue = "newsroom:publish_due"
	// TaskSessionsSweep purges expired sessions from the session store.
	TaskSessionsSweep = "sessions:sweep"
)

// PublishDuePayload scopes one publish run. Empty means everything due.
type PublishDuePayload struct {
	Reason string `json:"reason,omitempty"`
}

// NewPublishDueTask constructs the publish-due task.
func NewPublishDueTask(reason string) (*asynq.Task, error) {
	data, err := json.Marshal(PublishDuePayload{Reason: reason})
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskNewsroomPublishDue, data), nil
}

// NewSessionsSweepTask constructs the session-sweep task.
func NewSessionsSweepTask() (*asynq.Task, error) {
	return asynq.NewTask(TaskSessionsSweep, nil), nil
}

// PublishDueJob transitions due SCHEDULED articles to PUBLISHED through the
// workflow engine. This is the only timer-driven transition in the system.
type PublishDueJob struct {
	newsroom *newsroom.Service
	logger   *slog.Logger
	metrics  *jobmetrics.Metrics
}

// NewPublishDueJob constructs the job.
func NewPublishDueJob(svc *newsroom.Service, logger *slog.Logger, metrics *jobmetrics.Metrics) *PublishDueJob {
	return &PublishDueJob{newsroom: svc, logger: logger, metrics: metrics}
}

// Handle processes a publish-due task.
func (j *PublishDueJob) Handle(ctx context.Context, t *asynq.Task) error {
	tracker := j.metrics.Track(TaskNewsroomPublishDue)
	var payload PublishDuePayload
	if len(t.Payload()) > 0 {
		if err := json.Unmarshal(t.Payload(), &payload); err != nil {
			return asynq.SkipRetry
		}
	}
	published, err := j.newsroom.PublishDue(ctx)
	if err != nil {
		j.logger.Error("publish due", slog.Any("error", err))
		return tracker.End(err)
	}
	if published > 0 {
		j.logger.Info("published due articles", slog.Int("count", published), slog.String("reason", payload.Reason))
	}
	return tracker.End(nil)
}

// SessionSweepJob removes expired sessions.
type SessionSweepJob struct {
	auth    *auth.Service
	logger  *slog.Logger
	metrics *jobmetrics.Metrics
}

// NewSessionSweepJob constructs the job.
func NewSessionSweepJob(svc *auth.Service, logger *slog.Logger, metrics *jobmetrics.Metrics) *SessionSweepJob {
	return &SessionSweepJob{auth: svc, logger: logger, metrics: metrics}
}

// Handle processes a session-sweep task.
func (j *SessionSweepJob) Handle(ctx context.Context, t *asynq.Task) error {
	tracker := j.metrics.Track(TaskSessionsSweep)
	removed, err := j.auth.SweepExpired(ctx)
	if err != nil {
		j.logger.Error("session sweep", slog.Any("error", err))
		return tracker.End(err)
	}
	if removed > 0 {
		j.logger.Info("swept expired sessions", slog.Int("count", removed))
	}
	return tracker.End(nil)
}
