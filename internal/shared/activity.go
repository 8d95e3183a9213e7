package shared

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// ActivityEntry records a single newsroom action for the activity feed.
type ActivityEntry struct {
	ID        string
	ActorID   string
	ActorName string
	Action    string
	Target    string
	At        time.Time
}

// ActivityRecorder collects activity entries. Entries are append-only.
type ActivityRecorder interface {
	Record(ctx context.Context, entry ActivityEntry) error
	Recent(ctx context.Context, limit int) ([]ActivityEntry, error)
}

// MemoryActivityRecorder keeps entries in process memory.
type MemoryActivityRecorder struct {
	mu      sync.Mutex
	entries []ActivityEntry
}

// NewMemoryActivityRecorder constructs an empty recorder.
func NewMemoryActivityRecorder() *MemoryActivityRecorder {
	return &MemoryActivityRecorder{}
}

// Record appends an entry.
func (r *MemoryActivityRecorder) Record(ctx context.Context, entry ActivityEntry) error {
	if entry.Action == "" {
		return errors.New("activity: action required")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, entry)
	return nil
}

// Recent returns up to limit entries, newest first.
func (r *MemoryActivityRecorder) Recent(ctx context.Context, limit int) ([]ActivityEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if limit <= 0 || limit > len(r.entries) {
		limit = len(r.entries)
	}
	out := make([]ActivityEntry, 0, limit)
	for i := len(r.entries) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, r.entries[i])
	}
	return out, nil
}

// PGActivityRecorder persists entries into activity_log.
type PGActivityRecorder struct {
	pool *pgxpool.Pool
}

// NewPGActivityRecorder returns a recorder backed by postgres.
func NewPGActivityRecorder(pool *pgxpool.Pool) *PGActivityRecorder {
	return &PGActivityRecorder{pool: pool}
}

// Record persists the entry.
func (r *PGActivityRecorder) Record(ctx context.Context, entry ActivityEntry) error {
	if r == nil || r.pool == nil {
		return errors.New("activity: recorder not initialised")
	}
	if entry.Action == "" {
		return errors.New("activity: action required")
	}
	_, err := r.pool.Exec(ctx, `INSERT INTO activity_log (id, actor_id, actor_name, action, target, at)
VALUES ($1, $2, $3, $4, $5, COALESCE($6, NOW()))`,
		entry.ID, entry.ActorID, entry.ActorName, entry.Action, entry.Target, entry.At)
	return err
}

// Recent returns up to limit entries, newest first.
func (r *PGActivityRecorder) Recent(ctx context.Context, limit int) ([]ActivityEntry, error) {
	if r == nil || r.pool == nil {
		return nil, errors.New("activity: recorder not initialised")
	}
	if limit <= 0 {
		limit = 50
	}
	rows, err := r.pool.Query(ctx, `SELECT id, actor_id, actor_name, action, target, at
FROM activity_log ORDER BY at DESC LIMIT $1`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var entries []ActivityEntry
	for rows.Next() {
		var e ActivityEntry
		if err := rows.Scan(&e.ID, &e.ActorID, &e.ActorName, &e.Action, &e.Target, &e.At); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
