package auth

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisStore persists sessions in redis under "session:<token>". The TTL
// mirrors the session expiry so redis reaps stale entries on its own;
// DeleteExpired is therefore a no-op here.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisStore constructs a RedisStore.
func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, ttl: ttl}
}

func (s *RedisStore) key(token string) string {
	return "session:" + token
}

// Put stores the session as a JSON payload.
func (s *RedisStore) Put(ctx context.Context, sess Session) error {
	data, err := json.Marshal(sess)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, s.key(sess.Token), data, s.ttl).Err()
}

// Get fetches a session by token.
func (s *RedisStore) Get(ctx context.Context, token string) (Session, bool, error) {
	payload, err := s.client.Get(ctx, s.key(token)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return Session{}, false, nil
		}
		return Session{}, false, err
	}
	var sess Session
	if err := json.Unmarshal(payload, &sess); err != nil {
		return Session{}, false, err
	}
	return sess, true, nil
}

// Delete removes a session. Removing an absent token is not an error.
func (s *RedisStore) Delete(ctx context.Context, token string) error {
	if err := s.client.Del(ctx, s.key(token)).Err(); err != nil && !errors.Is(err, redis.Nil) {
		return err
	}
	return nil
}

// DeleteExpired is a no-op; redis expires keys via TTL.
func (s *RedisStore) DeleteExpired(ctx context.Context, now time.Time) (int, error) {
	return 0, nil
}
