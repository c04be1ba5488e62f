package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/esonge/storefront-backend/internal/auth"
	"github.com/esonge/storefront-backend/internal/cart"
	"github.com/esonge/storefront-backend/internal/catalog"
	"github.com/esonge/storefront-backend/internal/filters"
	"github.com/esonge/storefront-backend/internal/wishlist"
	pkgAuth "github.com/esonge/storefront-backend/pkg/auth"
	"github.com/esonge/storefront-backend/pkg/config"
	"github.com/esonge/storefront-backend/pkg/storage"
)

func testConfig() *config.Config {
	return &config.Config{
		App: config.AppConfig{Env: config.AppEnvDev, Port: "0"},
		JWT: config.JWTConfig{
			Secret:            "test-secret",
			Issuer:            "esonge-storefront",
			ExpirationMinutes: 60,
		},
	}
}

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	ctx := context.Background()
	snaps := storage.NewMemory()
	catalogSvc := catalog.NewService()

	cartSvc, err := cart.NewService(ctx, cart.ServiceParams{Snapshots: snaps})
	if err != nil {
		t.Fatalf("cart.NewService failed: %v", err)
	}
	wishlistSvc, err := wishlist.NewService(ctx, wishlist.ServiceParams{Snapshots: snaps})
	if err != nil {
		t.Fatalf("wishlist.NewService failed: %v", err)
	}
	authSvc, err := auth.NewService(ctx, auth.ServiceParams{Snapshots: snaps, LoginDelay: -1})
	if err != nil {
		t.Fatalf("auth.NewService failed: %v", err)
	}
	filterSvc := filters.NewService(filters.ServiceParams{})

	return NewRouter(RouterParams{
		Config:    testConfig(),
		Snapshots: snaps,
		Catalog:   catalogSvc,
		Cart:      cartSvc,
		Wishlist:  wishlistSvc,
		Auth:      authSvc,
		Filters:   filterSvc,
	})
}

type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func doJSON(t *testing.T, router http.Handler, method, path string, body any, token string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var env envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode envelope from %s %s: %v (%s)", method, path, err, rec.Body.String())
	}
	return rec, env
}

func TestHealthLive(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t)
	rec, _ := doJSON(t, router, http.MethodGet, "/health/live", nil, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestHealthReady(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t)
	rec, _ := doJSON(t, router, http.MethodGet, "/health/ready", nil, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestProductsListAndGet(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t)

	rec, env := doJSON(t, router, http.MethodGet, "/api/v1/products", nil, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var page struct {
		Products []catalog.Product `json:"products"`
		Total    int               `json:"total"`
	}
	if err := json.Unmarshal(env.Data, &page); err != nil {
		t.Fatalf("decode page: %v", err)
	}
	if page.Total == 0 || len(page.Products) == 0 {
		t.Fatal("expected a non-empty first page")
	}

	productID := page.Products[0].ID
	rec, _ = doJSON(t, router, http.MethodGet, "/api/v1/products/"+productID, nil, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 for %s, got %d", productID, rec.Code)
	}

	rec, env = doJSON(t, router, http.MethodGet, "/api/v1/products/no-such-id", nil, "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	if env.Error == nil || env.Error.Code != "NOT_FOUND" {
		t.Fatalf("expected NOT_FOUND error envelope, got %+v", env.Error)
	}
}

func TestCartFlow(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t)

	rec, _ := doJSON(t, router, http.MethodPost, "/api/v1/cart/items", map[string]any{
		"product_id": "pg-001",
		"quantity":   2,
	}, "")
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	rec, env := doJSON(t, router, http.MethodGet, "/api/v1/cart", nil, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var summary cart.Summary
	if err := json.Unmarshal(env.Data, &summary); err != nil {
		t.Fatalf("decode summary: %v", err)
	}
	if summary.TotalItems != 2 {
		t.Fatalf("expected 2 items, got %d", summary.TotalItems)
	}
	if summary.FinalPrice != summary.TotalPrice+summary.ShippingFee {
		t.Fatal("final price must equal total plus shipping")
	}

	rec, _ = doJSON(t, router, http.MethodPost, "/api/v1/cart/items", map[string]any{
		"product_id": "no-such-id",
		"quantity":   1,
	}, "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown product, got %d", rec.Code)
	}

	rec, _ = doJSON(t, router, http.MethodDelete, "/api/v1/cart", nil, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestWishlistFlow(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t)

	rec, env := doJSON(t, router, http.MethodPost, "/api/v1/wishlist/items/pg-001/toggle", nil, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var toggled struct {
		InWishlist bool `json:"in_wishlist"`
		TotalItems int  `json:"total_items"`
	}
	if err := json.Unmarshal(env.Data, &toggled); err != nil {
		t.Fatalf("decode toggle response: %v", err)
	}
	if !toggled.InWishlist || toggled.TotalItems != 1 {
		t.Fatalf("expected first toggle to add, got %+v", toggled)
	}

	rec, env = doJSON(t, router, http.MethodPost, "/api/v1/wishlist/items/pg-001/toggle", nil, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if err := json.Unmarshal(env.Data, &toggled); err != nil {
		t.Fatalf("decode toggle response: %v", err)
	}
	if toggled.InWishlist || toggled.TotalItems != 0 {
		t.Fatalf("expected second toggle to remove, got %+v", toggled)
	}
}

func TestAuthAndAddressFlow(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t)

	// Address routes require a session.
	rec, _ := doJSON(t, router, http.MethodGet, "/api/v1/auth/addresses", nil, "")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", rec.Code)
	}

	rec, env := doJSON(t, router, http.MethodPost, "/api/v1/auth/login", map[string]string{
		"email":    "someone@else.com",
		"password": "pw",
	}, "")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for unknown email, got %d", rec.Code)
	}

	rec, env = doJSON(t, router, http.MethodPost, "/api/v1/auth/login", map[string]string{
		"email":    "demo@esonge.com",
		"password": "anything",
	}, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var session struct {
		Token string `json:"token"`
		User  struct {
			Name string `json:"name"`
		} `json:"user"`
	}
	if err := json.Unmarshal(env.Data, &session); err != nil {
		t.Fatalf("decode login response: %v", err)
	}
	if session.Token == "" {
		t.Fatal("expected an access token")
	}
	if session.User.Name != "홍길동" {
		t.Fatalf("expected demo profile, got %q", session.User.Name)
	}

	rec, env = doJSON(t, router, http.MethodGet, "/api/v1/auth/addresses", nil, session.Token)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 with token, got %d", rec.Code)
	}
	var book []auth.Address
	if err := json.Unmarshal(env.Data, &book); err != nil {
		t.Fatalf("decode address book: %v", err)
	}
	if len(book) != 2 {
		t.Fatalf("expected 2 demo addresses, got %d", len(book))
	}

	rec, _ = doJSON(t, router, http.MethodPost, fmt.Sprintf("/api/v1/auth/addresses/%s/default", "addr-2"), nil, session.Token)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	rec, env = doJSON(t, router, http.MethodGet, "/api/v1/auth/addresses/default", nil, session.Token)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var def auth.Address
	if err := json.Unmarshal(env.Data, &def); err != nil {
		t.Fatalf("decode default address: %v", err)
	}
	if def.ID != "addr-2" {
		t.Fatalf("expected addr-2 as default, got %q", def.ID)
	}
}

func TestFiltersFlow(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t)

	rec, _ := doJSON(t, router, http.MethodPut, "/api/v1/filters/page", map[string]int{"page": 3}, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	rec, env := doJSON(t, router, http.MethodPut, "/api/v1/filters/sort", map[string]string{"sort": "price-asc"}, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var state struct {
		Sort               string `json:"sort"`
		CurrentPage        int    `json:"current_page"`
		ActiveFiltersCount int    `json:"active_filters_count"`
	}
	if err := json.Unmarshal(env.Data, &state); err != nil {
		t.Fatalf("decode filter state: %v", err)
	}
	if state.Sort != "price-asc" {
		t.Fatalf("expected price-asc sort, got %q", state.Sort)
	}
	if state.CurrentPage != 1 {
		t.Fatalf("sort change must reset the page, got %d", state.CurrentPage)
	}

	rec, env = doJSON(t, router, http.MethodPatch, "/api/v1/filters/origins", map[string]any{"value": []string{"국내산"}}, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if err := json.Unmarshal(env.Data, &state); err != nil {
		t.Fatalf("decode filter state: %v", err)
	}
	if state.ActiveFiltersCount != 1 {
		t.Fatalf("expected badge count 1, got %d", state.ActiveFiltersCount)
	}

	rec, _ = doJSON(t, router, http.MethodPut, "/api/v1/filters/sort", map[string]string{"sort": "cheapest-ever"}, "")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for invalid sort, got %d", rec.Code)
	}
}

func TestProductsListQueryOverrides(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t)

	rec, env := doJSON(t, router, http.MethodGet, "/api/v1/products?per_page=5&page=2", nil, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var page struct {
		Products []catalog.Product `json:"products"`
		Total    int               `json:"total"`
		Page     int               `json:"page"`
		PerPage  int               `json:"per_page"`
	}
	if err := json.Unmarshal(env.Data, &page); err != nil {
		t.Fatalf("decode page: %v", err)
	}
	if page.Page != 2 || page.PerPage != 5 {
		t.Fatalf("expected page 2 of 5, got page %d per_page %d", page.Page, page.PerPage)
	}
	if len(page.Products) != 5 {
		t.Fatalf("expected 5 products on page 2, got %d", len(page.Products))
	}

	rec, env = doJSON(t, router, http.MethodGet, "/api/v1/products?free_shipping=1&price_max=60000", nil, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if err := json.Unmarshal(env.Data, &page); err != nil {
		t.Fatalf("decode page: %v", err)
	}
	if len(page.Products) == 0 {
		t.Fatal("expected matches for free_shipping under 60000")
	}
	for _, p := range page.Products {
		if !p.FreeShipping {
			t.Fatalf("product %s is not free-shipping", p.ID)
		}
		if p.Price > 60000 {
			t.Fatalf("product %s priced %d exceeds price_max", p.ID, p.Price)
		}
	}

	// Overrides are per-request; the stored filter state stays untouched.
	rec, env = doJSON(t, router, http.MethodGet, "/api/v1/filters", nil, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var state struct {
		CurrentPage        int `json:"current_page"`
		ActiveFiltersCount int `json:"active_filters_count"`
	}
	if err := json.Unmarshal(env.Data, &state); err != nil {
		t.Fatalf("decode filter state: %v", err)
	}
	if state.CurrentPage != 1 || state.ActiveFiltersCount != 0 {
		t.Fatalf("listing overrides must not mutate filter state, got %+v", state)
	}

	rec, env = doJSON(t, router, http.MethodGet, "/api/v1/products?page=oops", nil, "")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for non-numeric page, got %d", rec.Code)
	}
	if env.Error == nil || env.Error.Code != "VALIDATION_ERROR" {
		t.Fatalf("expected VALIDATION_ERROR envelope, got %+v", env.Error)
	}

	rec, _ = doJSON(t, router, http.MethodGet, "/api/v1/products?per_page=9999", nil, "")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for out-of-range per_page, got %d", rec.Code)
	}
}

func TestAuthMeRejectsForeignToken(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t)

	rec, _ := doJSON(t, router, http.MethodPost, "/api/v1/auth/login", map[string]string{
		"email":    "demo@esonge.com",
		"password": "anything",
	}, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("login failed with %d: %s", rec.Code, rec.Body.String())
	}

	forged, err := pkgAuth.MintAccessToken(testConfig().JWT, time.Now(), pkgAuth.AccessTokenPayload{
		UserID: "user-99",
		Email:  "intruder@esonge.com",
	})
	if err != nil {
		t.Fatalf("mint token: %v", err)
	}

	rec, env := doJSON(t, router, http.MethodGet, "/api/v1/auth/me", nil, forged)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for mismatched identity, got %d: %s", rec.Code, rec.Body.String())
	}
	if env.Error == nil || env.Error.Code != "UNAUTHORIZED" {
		t.Fatalf("expected UNAUTHORIZED envelope, got %+v", env.Error)
	}
}
