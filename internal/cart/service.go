package cart

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/esonge/storefront-backend/internal/catalog"
	pkgerrors "github.com/esonge/storefront-backend/pkg/errors"
	"github.com/esonge/storefront-backend/pkg/logger"
	"github.com/esonge/storefront-backend/pkg/metrics"
	"github.com/esonge/storefront-backend/pkg/storage"
)

const (
	// Orders at or above this total ship free; a single free-shipping
	// product also exempts the whole order. Merchant policy, encoded once.
	freeShippingThreshold = 50000
	flatShippingFee       = 3000
)

// ServiceParams groups dependencies for the cart store.
type ServiceParams struct {
	Snapshots storage.Snapshots
	Logger    *logger.Logger
	Metrics   *metrics.StoreMetrics
	Now       func() time.Time
}

// Service owns the shopping cart state. Mutations clamp quantities against
// stock and persist a snapshot before returning; derived reads are pure.
type Service interface {
	AddItem(ctx context.Context, product catalog.Product, quantity int)
	RemoveItem(ctx context.Context, productID string)
	UpdateQuantity(ctx context.Context, productID string, quantity int)
	Clear(ctx context.Context)

	Lines() []Line
	TotalItems() int
	TotalPrice() int
	ShippingFee() int
	FinalPrice() int
	IsInCart(productID string) bool
	ItemQuantity(productID string) int
	Summary() Summary
}

type service struct {
	mu        sync.Mutex
	lines     []Line
	snapshots storage.Snapshots
	logg      *logger.Logger
	metrics   *metrics.StoreMetrics
	now       func() time.Time
}

// NewService hydrates the cart from its snapshot namespace. A missing or
// corrupt snapshot yields an empty cart, never an error.
func NewService(ctx context.Context, params ServiceParams) (Service, error) {
	if params.Snapshots == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "snapshot storage is required")
	}
	now := params.Now
	if now == nil {
		now = time.Now
	}
	s := &service{
		snapshots: params.Snapshots,
		logg:      params.Logger,
		metrics:   params.Metrics,
		now:       now,
	}
	s.hydrate(ctx)
	return s, nil
}

func (s *service) hydrate(ctx context.Context) {
	payload, err := s.snapshots.Load(ctx, storage.NamespaceCart)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			s.warn(ctx, "cart snapshot unreadable, starting empty")
		}
		return
	}
	var snap snapshot
	if err := json.Unmarshal(payload, &snap); err != nil {
		s.warn(ctx, "cart snapshot corrupt, starting empty")
		return
	}
	s.lines = sanitizeLines(snap.Lines)
}

// AddItem creates a line with quantity clamped to stock, or raises an
// existing line's quantity under the same clamp. A product with zero stock
// never gets a line; the request is a silent no-op.
func (s *service) AddItem(ctx context.Context, product catalog.Product, quantity int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.lines {
		if s.lines[i].Product.ID == product.ID {
			s.lines[i].Quantity = clamp(s.lines[i].Quantity+quantity, 1, s.lines[i].Product.Stock)
			s.persist(ctx, "add_item")
			return
		}
	}

	clamped := quantity
	if clamped > product.Stock {
		clamped = product.Stock
	}
	if clamped < 1 {
		// zero stock or non-positive request: refuse the degenerate line
		return
	}
	s.lines = append(s.lines, Line{
		Product:  product,
		Quantity: clamped,
		AddedAt:  s.now().UTC(),
	})
	s.persist(ctx, "add_item")
}

// RemoveItem deletes the line if present; absent ids are a no-op.
func (s *service) RemoveItem(ctx context.Context, productID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.lines {
		if s.lines[i].Product.ID == productID {
			s.lines = append(s.lines[:i], s.lines[i+1:]...)
			s.persist(ctx, "remove_item")
			return
		}
	}
}

// UpdateQuantity sets an existing line's quantity, clamped to [1, stock].
// Requests of zero or less floor at 1; absent ids are a no-op.
func (s *service) UpdateQuantity(ctx context.Context, productID string, quantity int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.lines {
		if s.lines[i].Product.ID == productID {
			s.lines[i].Quantity = clamp(quantity, 1, s.lines[i].Product.Stock)
			s.persist(ctx, "update_quantity")
			return
		}
	}
}

// Clear empties the cart unconditionally.
func (s *service) Clear(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lines = nil
	s.persist(ctx, "clear")
}

func (s *service) Lines() []Line {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Line, len(s.lines))
	copy(out, s.lines)
	return out
}

func (s *service) TotalItems() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return totalItems(s.lines)
}

func (s *service) TotalPrice() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return totalPrice(s.lines)
}

func (s *service) ShippingFee() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return shippingFee(s.lines)
}

func (s *service) FinalPrice() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return totalPrice(s.lines) + shippingFee(s.lines)
}

func (s *service) IsInCart(productID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, line := range s.lines {
		if line.Product.ID == productID {
			return true
		}
	}
	return false
}

func (s *service) ItemQuantity(productID string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, line := range s.lines {
		if line.Product.ID == productID {
			return line.Quantity
		}
	}
	return 0
}

func (s *service) Summary() Summary {
	s.mu.Lock()
	defer s.mu.Unlock()

	lines := make([]Line, len(s.lines))
	copy(lines, s.lines)
	price := totalPrice(s.lines)
	fee := shippingFee(s.lines)
	return Summary{
		Lines:       lines,
		TotalItems:  totalItems(s.lines),
		TotalPrice:  price,
		ShippingFee: fee,
		FinalPrice:  price + fee,
	}
}

// persist writes the snapshot while the mutation lock is held. Failures are
// logged and counted, never surfaced; the in-memory state stays canonical.
func (s *service) persist(ctx context.Context, op string) {
	s.metrics.IncMutation(storage.NamespaceCart, op)

	payload, err := json.Marshal(snapshot{Lines: s.lines})
	if err != nil {
		s.saveFailed(ctx, err)
		return
	}
	if err := s.snapshots.Save(ctx, storage.NamespaceCart, payload); err != nil {
		s.saveFailed(ctx, err)
	}
}

func (s *service) saveFailed(ctx context.Context, err error) {
	s.metrics.IncSaveFailure(storage.NamespaceCart)
	if s.logg != nil {
		s.logg.Error(s.logg.WithStore(ctx, storage.NamespaceCart), "snapshot save failed", err)
	}
}

func (s *service) warn(ctx context.Context, msg string) {
	if s.logg != nil {
		s.logg.Warn(s.logg.WithStore(ctx, storage.NamespaceCart), msg)
	}
}

func totalItems(lines []Line) int {
	sum := 0
	for _, line := range lines {
		sum += line.Quantity
	}
	return sum
}

func totalPrice(lines []Line) int {
	sum := 0
	for _, line := range lines {
		sum += line.Product.Price * line.Quantity
	}
	return sum
}

func shippingFee(lines []Line) int {
	if len(lines) == 0 {
		return 0
	}
	for _, line := range lines {
		if line.Product.FreeShipping {
			return 0
		}
	}
	if totalPrice(lines) >= freeShippingThreshold {
		return 0
	}
	return flatShippingFee
}

// sanitizeLines drops entries a hand-edited or stale snapshot could carry:
// duplicate product ids and quantities outside [1, stock].
func sanitizeLines(lines []Line) []Line {
	seen := map[string]struct{}{}
	out := make([]Line, 0, len(lines))
	for _, line := range lines {
		if line.Product.ID == "" {
			continue
		}
		if _, dup := seen[line.Product.ID]; dup {
			continue
		}
		if line.Product.Stock < 1 {
			continue
		}
		line.Quantity = clamp(line.Quantity, 1, line.Product.Stock)
		seen[line.Product.ID] = struct{}{}
		out = append(out, line)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

func clamp(value, low, high int) int {
	if value < low {
		return low
	}
	if value > high {
		return high
	}
	return value
}
