package wishlist

import (
	"context"
	"testing"

	"github.com/esonge/storefront-backend/pkg/storage"
)

func newTestService(t *testing.T) Service {
	t.Helper()
	svc, err := NewService(context.Background(), ServiceParams{Snapshots: storage.NewMemory()})
	if err != nil {
		t.Fatalf("NewService failed: %v", err)
	}
	return svc
}

func TestAddItemIsIdempotent(t *testing.T) {
	t.Parallel()

	svc := newTestService(t)
	ctx := context.Background()

	svc.AddItem(ctx, "pg-001")
	svc.AddItem(ctx, "pg-001")
	svc.AddItem(ctx, "pg-001")

	if got := svc.TotalItems(); got != 1 {
		t.Fatalf("expected 1 item after repeated adds, got %d", got)
	}
	if !svc.IsInWishlist("pg-001") {
		t.Fatal("expected pg-001 to be in wishlist")
	}
}

func TestAddItemKeepsInsertionOrder(t *testing.T) {
	t.Parallel()

	svc := newTestService(t)
	ctx := context.Background()

	svc.AddItem(ctx, "b")
	svc.AddItem(ctx, "a")
	svc.AddItem(ctx, "c")
	svc.AddItem(ctx, "a")

	got := svc.ProductIDs()
	want := []string{"b", "a", "c"}
	if len(got) != len(want) {
		t.Fatalf("expected %d ids, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected id %q at position %d, got %q", want[i], i, got[i])
		}
	}
}

func TestRemoveItemAbsentIsNoop(t *testing.T) {
	t.Parallel()

	svc := newTestService(t)
	ctx := context.Background()

	svc.AddItem(ctx, "a")
	svc.RemoveItem(ctx, "ghost")

	if got := svc.TotalItems(); got != 1 {
		t.Fatalf("expected wishlist untouched, got %d items", got)
	}
}

func TestToggleItemFlipsMembership(t *testing.T) {
	t.Parallel()

	svc := newTestService(t)
	ctx := context.Background()

	if present := svc.ToggleItem(ctx, "a"); !present {
		t.Fatal("first toggle must add the item")
	}
	if !svc.IsInWishlist("a") {
		t.Fatal("expected a in wishlist after first toggle")
	}
	if present := svc.ToggleItem(ctx, "a"); present {
		t.Fatal("second toggle must remove the item")
	}
	if svc.IsInWishlist("a") {
		t.Fatal("expected a removed after second toggle")
	}
	if got := svc.TotalItems(); got != 0 {
		t.Fatalf("toggle twice must restore the empty state, got %d items", got)
	}
}

func TestClearEmptiesWishlist(t *testing.T) {
	t.Parallel()

	svc := newTestService(t)
	ctx := context.Background()

	svc.AddItem(ctx, "a")
	svc.AddItem(ctx, "b")
	svc.Clear(ctx)

	if got := svc.TotalItems(); got != 0 {
		t.Fatalf("expected empty wishlist, got %d items", got)
	}
	if svc.IsInWishlist("a") {
		t.Fatal("expected a removed by clear")
	}
}

func TestRehydrateFromSnapshot(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	snaps := storage.NewMemory()

	first, err := NewService(ctx, ServiceParams{Snapshots: snaps})
	if err != nil {
		t.Fatalf("NewService failed: %v", err)
	}
	first.AddItem(ctx, "a")
	first.AddItem(ctx, "b")

	second, err := NewService(ctx, ServiceParams{Snapshots: snaps})
	if err != nil {
		t.Fatalf("NewService failed: %v", err)
	}
	if got := second.TotalItems(); got != 2 {
		t.Fatalf("expected 2 items after rehydrate, got %d", got)
	}
	if !second.IsInWishlist("a") || !second.IsInWishlist("b") {
		t.Fatal("expected a and b to survive rehydration")
	}
}

func TestCorruptSnapshotStartsEmpty(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	snaps := storage.NewMemory()
	if err := snaps.Save(ctx, storage.NamespaceWishlist, []byte("{not json")); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	svc, err := NewService(ctx, ServiceParams{Snapshots: snaps})
	if err != nil {
		t.Fatalf("NewService failed: %v", err)
	}
	if got := svc.TotalItems(); got != 0 {
		t.Fatalf("expected empty wishlist from corrupt snapshot, got %d items", got)
	}
}

func TestSnapshotDuplicatesDropped(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	snaps := storage.NewMemory()
	payload := []byte(`{"product_ids":["a","a","","b"]}`)
	if err := snaps.Save(ctx, storage.NamespaceWishlist, payload); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	svc, err := NewService(ctx, ServiceParams{Snapshots: snaps})
	if err != nil {
		t.Fatalf("NewService failed: %v", err)
	}
	if got := svc.TotalItems(); got != 2 {
		t.Fatalf("expected duplicates and blanks dropped, got %d items", got)
	}
}

func TestNewServiceRequiresStorage(t *testing.T) {
	t.Parallel()

	if _, err := NewService(context.Background(), ServiceParams{}); err == nil {
		t.Fatal("expected error when snapshot storage is missing")
	}
}
