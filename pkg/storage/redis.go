package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	pkgredis "github.com/esonge/storefront-backend/pkg/redis"
)

// snapshotKV is the slice of the redis client the snapshot store needs.
type snapshotKV interface {
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	Get(ctx context.Context, key string) (string, error)
	Del(ctx context.Context, keys ...string) error
	SnapshotKey(namespace string) string
	Ping(ctx context.Context) error
}

// RedisStore persists snapshots as namespaced redis strings without expiry.
type RedisStore struct {
	kv snapshotKV
}

// NewRedisStore wraps the shared redis client.
func NewRedisStore(client *pkgredis.Client) (*RedisStore, error) {
	if client == nil {
		return nil, fmt.Errorf("redis client is required")
	}
	return &RedisStore{kv: client}, nil
}

func (s *RedisStore) Load(ctx context.Context, namespace string) ([]byte, error) {
	raw, err := s.kv.Get(ctx, s.kv.SnapshotKey(namespace))
	if err != nil {
		if errors.Is(err, pkgredis.ErrNil) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return []byte(raw), nil
}

func (s *RedisStore) Save(ctx context.Context, namespace string, payload []byte) error {
	return s.kv.Set(ctx, s.kv.SnapshotKey(namespace), payload, 0)
}

func (s *RedisStore) Delete(ctx context.Context, namespace string) error {
	return s.kv.Del(ctx, s.kv.SnapshotKey(namespace))
}

func (s *RedisStore) Ping(ctx context.Context) error {
	return s.kv.Ping(ctx)
}
