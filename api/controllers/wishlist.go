package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/esonge/storefront-backend/api/responses"
	"github.com/esonge/storefront-backend/api/validators"
	"github.com/esonge/storefront-backend/internal/catalog"
	wishlistsvc "github.com/esonge/storefront-backend/internal/wishlist"
	pkgerrors "github.com/esonge/storefront-backend/pkg/errors"
	"github.com/esonge/storefront-backend/pkg/logger"
)

type addWishlistItemRequest struct {
	ProductID string `json:"product_id" validate:"required"`
}

type wishlistResponse struct {
	ProductIDs []string `json:"product_ids"`
	TotalItems int      `json:"total_items"`
}

type toggleWishlistResponse struct {
	ProductID  string `json:"product_id"`
	InWishlist bool   `json:"in_wishlist"`
	TotalItems int    `json:"total_items"`
}

func newWishlistResponse(svc wishlistsvc.Service) wishlistResponse {
	return wishlistResponse{
		ProductIDs: svc.ProductIDs(),
		TotalItems: svc.TotalItems(),
	}
}

// WishlistGet serves the saved-product ids.
func WishlistGet(svc wishlistsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "wishlist service unavailable"))
			return
		}

		responses.WriteSuccess(w, newWishlistResponse(svc))
	}
}

// WishlistAddItem saves a product; repeated adds are idempotent.
func WishlistAddItem(svc wishlistsvc.Service, catalogSvc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil || catalogSvc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "wishlist service unavailable"))
			return
		}

		var payload addWishlistItemRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if _, ok := catalogSvc.GetProductByID(payload.ProductID); !ok {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeNotFound, "product not found"))
			return
		}

		svc.AddItem(r.Context(), payload.ProductID)
		responses.WriteSuccessStatus(w, http.StatusCreated, newWishlistResponse(svc))
	}
}

// WishlistToggleItem flips a product's saved state and reports the result.
func WishlistToggleItem(svc wishlistsvc.Service, catalogSvc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil || catalogSvc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "wishlist service unavailable"))
			return
		}

		productID := chi.URLParam(r, "productId")
		if _, ok := catalogSvc.GetProductByID(productID); !ok {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeNotFound, "product not found"))
			return
		}

		inWishlist := svc.ToggleItem(r.Context(), productID)
		responses.WriteSuccess(w, toggleWishlistResponse{
			ProductID:  productID,
			InWishlist: inWishlist,
			TotalItems: svc.TotalItems(),
		})
	}
}

// WishlistRemoveItem unsaves a product; unknown ids are no-ops.
func WishlistRemoveItem(svc wishlistsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "wishlist service unavailable"))
			return
		}

		svc.RemoveItem(r.Context(), chi.URLParam(r, "productId"))
		responses.WriteSuccess(w, newWishlistResponse(svc))
	}
}

// WishlistClear empties the wishlist.
func WishlistClear(svc wishlistsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "wishlist service unavailable"))
			return
		}

		svc.Clear(r.Context())
		responses.WriteSuccess(w, newWishlistResponse(svc))
	}
}
