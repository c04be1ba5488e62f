package storage

import (
	"context"
	"errors"
	"testing"
)

func TestMemoryRoundTrip(t *testing.T) {
	t.Parallel()

	store := NewMemory()
	ctx := context.Background()

	if _, err := store.Load(ctx, NamespaceCart); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound before first save, got %v", err)
	}

	payload := []byte(`{"items":[]}`)
	if err := store.Save(ctx, NamespaceCart, payload); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	got, err := store.Load(ctx, NamespaceCart)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if string(got) != string(payload) {
		t.Fatalf("payload mismatch: %s", got)
	}

	// Mutating the returned slice must not corrupt the stored copy.
	got[0] = 'X'
	again, err := store.Load(ctx, NamespaceCart)
	if err != nil {
		t.Fatalf("reload failed: %v", err)
	}
	if string(again) != string(payload) {
		t.Fatalf("stored payload was aliased: %s", again)
	}
}

func TestMemoryNamespacesAreIndependent(t *testing.T) {
	t.Parallel()

	store := NewMemory()
	ctx := context.Background()

	if err := store.Save(ctx, NamespaceCart, []byte("cart")); err != nil {
		t.Fatalf("save cart failed: %v", err)
	}
	if err := store.Save(ctx, NamespaceWishlist, []byte("wishlist")); err != nil {
		t.Fatalf("save wishlist failed: %v", err)
	}

	if err := store.Delete(ctx, NamespaceCart); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if _, err := store.Load(ctx, NamespaceCart); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected cart namespace cleared, got %v", err)
	}
	if got, err := store.Load(ctx, NamespaceWishlist); err != nil || string(got) != "wishlist" {
		t.Fatalf("wishlist namespace should be untouched: %s %v", got, err)
	}
}
