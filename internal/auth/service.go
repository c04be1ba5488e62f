package auth

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	pkgerrors "github.com/esonge/storefront-backend/pkg/errors"
	"github.com/esonge/storefront-backend/pkg/logger"
	"github.com/esonge/storefront-backend/pkg/metrics"
	"github.com/esonge/storefront-backend/pkg/storage"
)

const defaultLoginDelay = 500 * time.Millisecond

// ServiceParams groups dependencies for the auth/profile store.
type ServiceParams struct {
	Snapshots storage.Snapshots
	Logger    *logger.Logger
	Metrics   *metrics.StoreMetrics

	// LoginDelay simulates backend latency on Login. Zero means the default;
	// tests pass a negative value to disable the delay.
	LoginDelay time.Duration
	// DemoEmail is the single recognized credential. Empty means the default.
	DemoEmail string
	// NewID mints address ids. Defaults to uuid-backed ids.
	NewID func() string
}

// Service owns the session profile and shipping address book. The store is
// either anonymous (no user, empty book) or authenticated (demo profile with
// its book). Address mutations while anonymous are silent no-ops.
type Service interface {
	Login(ctx context.Context, email, password string) (bool, error)
	Logout(ctx context.Context)
	UpdateProfile(ctx context.Context, patch ProfilePatch)

	AddAddress(ctx context.Context, in AddressInput) (Address, bool)
	UpdateAddress(ctx context.Context, id string, patch AddressPatch)
	RemoveAddress(ctx context.Context, id string)
	SetDefaultAddress(ctx context.Context, id string)

	IsAuthenticated() bool
	CurrentUser() (User, bool)
	Addresses() []Address
	DefaultAddress() (Address, bool)
}

type snapshot struct {
	User      *User     `json:"user"`
	Addresses []Address `json:"addresses"`
}

type service struct {
	mu        sync.Mutex
	user      *User
	addresses []Address
	// generation bumps on every login/logout; a login that resolves against a
	// stale generation is discarded.
	generation uint64

	snapshots  storage.Snapshots
	logg       *logger.Logger
	metrics    *metrics.StoreMetrics
	loginDelay time.Duration
	demoEmail  string
	newID      func() string
}

// NewService hydrates the session from its snapshot namespace.
func NewService(ctx context.Context, params ServiceParams) (Service, error) {
	if params.Snapshots == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "snapshot storage is required")
	}
	s := &service{
		snapshots:  params.Snapshots,
		logg:       params.Logger,
		metrics:    params.Metrics,
		loginDelay: params.LoginDelay,
		demoEmail:  params.DemoEmail,
		newID:      params.NewID,
	}
	if s.loginDelay == 0 {
		s.loginDelay = defaultLoginDelay
	}
	if s.demoEmail == "" {
		s.demoEmail = "demo@esonge.com"
	}
	if s.newID == nil {
		s.newID = func() string { return "addr-" + uuid.NewString() }
	}
	s.hydrate(ctx)
	return s, nil
}

func (s *service) hydrate(ctx context.Context) {
	payload, err := s.snapshots.Load(ctx, storage.NamespaceAuth)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			s.warn(ctx, "auth snapshot unreadable, starting anonymous")
		}
		return
	}
	var snap snapshot
	if err := json.Unmarshal(payload, &snap); err != nil {
		s.warn(ctx, "auth snapshot corrupt, starting anonymous")
		return
	}
	if snap.User == nil {
		return
	}
	s.user = snap.User
	s.addresses = snap.Addresses
	s.repairDefault()
}

// Login simulates backend latency, then authenticates iff the email matches
// the demo credential (any password). A logout that lands during the delay
// wins: the stale login resolves false without touching state.
func (s *service) Login(ctx context.Context, email, password string) (bool, error) {
	_ = password // any password is accepted for the demo credential

	s.mu.Lock()
	gen := s.generation
	s.mu.Unlock()

	if s.loginDelay > 0 {
		timer := time.NewTimer(s.loginDelay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return false, ctx.Err()
		case <-timer.C:
		}
	}

	if !strings.EqualFold(strings.TrimSpace(email), s.demoEmail) {
		return false, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.generation != gen {
		return false, nil
	}
	u := demoUser()
	s.user = &u
	s.addresses = demoAddresses()
	s.generation++
	s.persist(ctx, "login")
	return true, nil
}

// Logout unconditionally returns the store to the anonymous state.
func (s *service) Logout(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.user = nil
	s.addresses = nil
	s.generation++
	s.persist(ctx, "logout")
}

// UpdateProfile merges name/phone into the current user; anonymous is a
// silent no-op.
func (s *service) UpdateProfile(ctx context.Context, patch ProfilePatch) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.user == nil {
		return
	}
	if patch.Name != nil {
		s.user.Name = *patch.Name
	}
	if patch.Phone != nil {
		s.user.Phone = *patch.Phone
	}
	s.persist(ctx, "update_profile")
}

// AddAddress appends a new address with a fresh id. When the new entry is
// marked default, every existing default is cleared first. Returns false
// while anonymous.
func (s *service) AddAddress(ctx context.Context, in AddressInput) (Address, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.user == nil {
		return Address{}, false
	}
	if in.IsDefault {
		s.clearDefaults()
	}
	addr := Address{
		ID:            s.newID(),
		Name:          in.Name,
		Recipient:     in.Recipient,
		Phone:         in.Phone,
		ZipCode:       in.ZipCode,
		Address:       in.Address,
		AddressDetail: in.AddressDetail,
		IsDefault:     in.IsDefault,
	}
	s.addresses = append(s.addresses, addr)
	s.persist(ctx, "add_address")
	return addr, true
}

// UpdateAddress merges non-nil fields into the matching address; unknown ids
// are silent no-ops. Setting IsDefault true demotes every other address.
func (s *service) UpdateAddress(ctx context.Context, id string, patch AddressPatch) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return
	}
	addr := &s.addresses[i]
	if patch.Name != nil {
		addr.Name = *patch.Name
	}
	if patch.Recipient != nil {
		addr.Recipient = *patch.Recipient
	}
	if patch.Phone != nil {
		addr.Phone = *patch.Phone
	}
	if patch.ZipCode != nil {
		addr.ZipCode = *patch.ZipCode
	}
	if patch.Address != nil {
		addr.Address = *patch.Address
	}
	if patch.AddressDetail != nil {
		addr.AddressDetail = *patch.AddressDetail
	}
	if patch.IsDefault != nil && *patch.IsDefault {
		s.clearDefaults()
		addr.IsDefault = true
	}
	s.persist(ctx, "update_address")
}

// RemoveAddress deletes the matching address. When the removed entry was the
// default, the first remaining address is promoted.
func (s *service) RemoveAddress(ctx context.Context, id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return
	}
	s.addresses = append(s.addresses[:i], s.addresses[i+1:]...)
	s.repairDefault()
	s.persist(ctx, "remove_address")
}

// SetDefaultAddress exclusively selects the matching address as default;
// unknown ids are silent no-ops.
func (s *service) SetDefaultAddress(ctx context.Context, id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return
	}
	s.clearDefaults()
	s.addresses[i].IsDefault = true
	s.persist(ctx, "set_default_address")
}

func (s *service) IsAuthenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user != nil
}

func (s *service) CurrentUser() (User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return User{}, false
	}
	return *s.user, true
}

func (s *service) Addresses() []Address {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Address, len(s.addresses))
	copy(out, s.addresses)
	return out
}

func (s *service) DefaultAddress() (Address, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, a := range s.addresses {
		if a.IsDefault {
			return a, true
		}
	}
	return Address{}, false
}

func (s *service) indexOf(id string) int {
	if s.user == nil {
		return -1
	}
	for i, a := range s.addresses {
		if a.ID == id {
			return i
		}
	}
	return -1
}

func (s *service) clearDefaults() {
	for i := range s.addresses {
		s.addresses[i].IsDefault = false
	}
}

// repairDefault restores the single-default invariant: a non-empty book with
// no default promotes its first entry, extra defaults beyond the first are
// demoted.
func (s *service) repairDefault() {
	if len(s.addresses) == 0 {
		return
	}
	seen := false
	for i := range s.addresses {
		if !s.addresses[i].IsDefault {
			continue
		}
		if seen {
			s.addresses[i].IsDefault = false
			continue
		}
		seen = true
	}
	if !seen {
		s.addresses[0].IsDefault = true
	}
}

func (s *service) persist(ctx context.Context, op string) {
	s.metrics.IncMutation(storage.NamespaceAuth, op)

	payload, err := json.Marshal(snapshot{User: s.user, Addresses: s.addresses})
	if err != nil {
		s.saveFailed(ctx, err)
		return
	}
	if err := s.snapshots.Save(ctx, storage.NamespaceAuth, payload); err != nil {
		s.saveFailed(ctx, err)
	}
}

func (s *service) saveFailed(ctx context.Context, err error) {
	s.metrics.IncSaveFailure(storage.NamespaceAuth)
	if s.logg != nil {
		s.logg.Error(s.logg.WithStore(ctx, storage.NamespaceAuth), "snapshot save failed", err)
	}
}

func (s *service) warn(ctx context.Context, msg string) {
	if s.logg != nil {
		s.logg.Warn(s.logg.WithStore(ctx, storage.NamespaceAuth), msg)
	}
}
