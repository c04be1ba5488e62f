package storage

import (
	"context"
	"errors"
)

// Store snapshot namespaces. Each state container persists its mutable state
// as one JSON payload under its own namespace; the filter store is
// intentionally absent because it is rebuilt fresh every session.
const (
	NamespaceCart     = "cart"
	NamespaceWishlist = "wishlist"
	NamespaceAuth     = "auth"
)

// ErrNotFound reports that no snapshot exists for the namespace yet.
var ErrNotFound = errors.New("storage: snapshot not found")

// Snapshots persists opaque per-store state payloads. Save is called
// synchronously after every mutation; Load hydrates a store at construction.
type Snapshots interface {
	Load(ctx context.Context, namespace string) ([]byte, error)
	Save(ctx context.Context, namespace string, payload []byte) error
	Delete(ctx context.Context, namespace string) error
	Ping(ctx context.Context) error
}
