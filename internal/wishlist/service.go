package wishlist

import (
	"context"
	"encoding/json"
	"errors"
	"sync"

	pkgerrors "github.com/esonge/storefront-backend/pkg/errors"
	"github.com/esonge/storefront-backend/pkg/logger"
	"github.com/esonge/storefront-backend/pkg/metrics"
	"github.com/esonge/storefront-backend/pkg/storage"
)

// ServiceParams groups dependencies for the wishlist store.
type ServiceParams struct {
	Snapshots storage.Snapshots
	Logger    *logger.Logger
	Metrics   *metrics.StoreMetrics
}

// Service owns the saved-products set. Entries keep insertion order and never
// duplicate; every operation on an unknown id is a silent no-op.
type Service interface {
	AddItem(ctx context.Context, productID string)
	RemoveItem(ctx context.Context, productID string)
	ToggleItem(ctx context.Context, productID string) bool
	Clear(ctx context.Context)

	IsInWishlist(productID string) bool
	TotalItems() int
	ProductIDs() []string
}

// snapshot is the persisted shape.
type snapshot struct {
	ProductIDs []string `json:"product_ids"`
}

type service struct {
	mu        sync.Mutex
	ids       []string
	snapshots storage.Snapshots
	logg      *logger.Logger
	metrics   *metrics.StoreMetrics
}

// NewService hydrates the wishlist from its snapshot namespace.
func NewService(ctx context.Context, params ServiceParams) (Service, error) {
	if params.Snapshots == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "snapshot storage is required")
	}
	s := &service{
		snapshots: params.Snapshots,
		logg:      params.Logger,
		metrics:   params.Metrics,
	}
	s.hydrate(ctx)
	return s, nil
}

func (s *service) hydrate(ctx context.Context) {
	payload, err := s.snapshots.Load(ctx, storage.NamespaceWishlist)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			s.warn(ctx, "wishlist snapshot unreadable, starting empty")
		}
		return
	}
	var snap snapshot
	if err := json.Unmarshal(payload, &snap); err != nil {
		s.warn(ctx, "wishlist snapshot corrupt, starting empty")
		return
	}
	s.ids = dedupe(snap.ProductIDs)
}

// AddItem appends the id if absent; repeated adds never grow the set.
func (s *service) AddItem(ctx context.Context, productID string) {
	if productID == "" {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.indexOf(productID) >= 0 {
		return
	}
	s.ids = append(s.ids, productID)
	s.persist(ctx, "add_item")
}

// RemoveItem deletes the id if present.
func (s *service) RemoveItem(ctx context.Context, productID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(productID)
	if i < 0 {
		return
	}
	s.ids = append(s.ids[:i], s.ids[i+1:]...)
	s.persist(ctx, "remove_item")
}

// ToggleItem flips membership with a single check and reports the resulting
// state: true when the id is now present.
func (s *service) ToggleItem(ctx context.Context, productID string) bool {
	if productID == "" {
		return false
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if i := s.indexOf(productID); i >= 0 {
		s.ids = append(s.ids[:i], s.ids[i+1:]...)
		s.persist(ctx, "toggle_item")
		return false
	}
	s.ids = append(s.ids, productID)
	s.persist(ctx, "toggle_item")
	return true
}

// Clear empties the wishlist unconditionally.
func (s *service) Clear(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.ids = nil
	s.persist(ctx, "clear")
}

func (s *service) IsInWishlist(productID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.indexOf(productID) >= 0
}

func (s *service) TotalItems() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.ids)
}

func (s *service) ProductIDs() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.ids))
	copy(out, s.ids)
	return out
}

func (s *service) indexOf(productID string) int {
	for i, id := range s.ids {
		if id == productID {
			return i
		}
	}
	return -1
}

func (s *service) persist(ctx context.Context, op string) {
	s.metrics.IncMutation(storage.NamespaceWishlist, op)

	payload, err := json.Marshal(snapshot{ProductIDs: s.ids})
	if err != nil {
		s.saveFailed(ctx, err)
		return
	}
	if err := s.snapshots.Save(ctx, storage.NamespaceWishlist, payload); err != nil {
		s.saveFailed(ctx, err)
	}
}

func (s *service) saveFailed(ctx context.Context, err error) {
	s.metrics.IncSaveFailure(storage.NamespaceWishlist)
	if s.logg != nil {
		s.logg.Error(s.logg.WithStore(ctx, storage.NamespaceWishlist), "snapshot save failed", err)
	}
}

func (s *service) warn(ctx context.Context, msg string) {
	if s.logg != nil {
		s.logg.Warn(s.logg.WithStore(ctx, storage.NamespaceWishlist), msg)
	}
}

func dedupe(ids []string) []string {
	seen := map[string]struct{}{}
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if id == "" {
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
