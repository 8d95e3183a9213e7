package studio

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

const snapshotKey = "studio:state"

// SnapshotStore persists the control-panel state so a restarted panel can
// pick up where it left off.
type SnapshotStore interface {
	Save(ctx context.Context, state State) error
	Load(ctx context.Context) (State, bool, error)
}

// RedisSnapshotStore keeps the snapshot in redis.
type RedisSnapshotStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisSnapshotStore constructs a RedisSnapshotStore.
func NewRedisSnapshotStore(client *redis.Client, ttl time.Duration) *RedisSnapshotStore {
	return &RedisSnapshotStore{client: client, ttl: ttl}
}

// Save writes the snapshot.
func (s *RedisSnapshotStore) Save(ctx context.Context, state State) error {
	data, err := json.Marshal(state)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, snapshotKey, data, s.ttl).Err()
}

// Load reads the snapshot, reporting whether one exists.
func (s *RedisSnapshotStore) Load(ctx context.Context) (State, bool, error) {
	data, err := s.client.Get(ctx, snapshotKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return State{}, false, nil
		}
		return State{}, false, err
	}
	var state State
	if err := json.Unmarshal(data, &state); err != nil {
		return State{}, false, err
	}
	return state, true, nil
}
