package storage

import (
	"context"
	"errors"
	"testing"
	"time"

	pkgredis "github.com/esonge/storefront-backend/pkg/redis"
)

type stubKV struct {
	values map[string]string
}

func (s *stubKV) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	switch v := value.(type) {
	case []byte:
		s.values[key] = string(v)
	case string:
		s.values[key] = v
	}
	return nil
}

func (s *stubKV) Get(ctx context.Context, key string) (string, error) {
	if v, ok := s.values[key]; ok {
		return v, nil
	}
	return "", pkgredis.ErrNil
}

func (s *stubKV) Del(ctx context.Context, keys ...string) error {
	for _, key := range keys {
		delete(s.values, key)
	}
	return nil
}

func (s *stubKV) SnapshotKey(namespace string) string {
	return "esonge:snapshot:" + namespace
}

func (s *stubKV) Ping(ctx context.Context) error {
	return nil
}

func TestRedisStoreRoundTrip(t *testing.T) {
	t.Parallel()

	store := &RedisStore{kv: &stubKV{values: map[string]string{}}}
	ctx := context.Background()

	if _, err := store.Load(ctx, NamespaceAuth); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound on empty store, got %v", err)
	}

	if err := store.Save(ctx, NamespaceAuth, []byte(`{"user":null}`)); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	got, err := store.Load(ctx, NamespaceAuth)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if string(got) != `{"user":null}` {
		t.Fatalf("payload mismatch: %s", got)
	}

	if err := store.Delete(ctx, NamespaceAuth); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if _, err := store.Load(ctx, NamespaceAuth); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
}

func TestNewRedisStoreRequiresClient(t *testing.T) {
	t.Parallel()

	if _, err := NewRedisStore(nil); err == nil {
		t.Fatal("expected error for nil client")
	}
}
