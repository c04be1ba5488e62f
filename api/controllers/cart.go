package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/esonge/storefront-backend/api/responses"
	"github.com/esonge/storefront-backend/api/validators"
	cartsvc "github.com/esonge/storefront-backend/internal/cart"
	"github.com/esonge/storefront-backend/internal/catalog"
	pkgerrors "github.com/esonge/storefront-backend/pkg/errors"
	"github.com/esonge/storefront-backend/pkg/logger"
)

type addCartItemRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	Quantity  int    `json:"quantity" validate:"required,min=1"`
}

type updateCartItemRequest struct {
	Quantity int `json:"quantity" validate:"required,min=1"`
}

// CartGet serves the cart snapshot with its derived totals.
func CartGet(svc cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart service unavailable"))
			return
		}

		responses.WriteSuccess(w, svc.Summary())
	}
}

// CartAddItem resolves the product and adds it to the cart. Quantities beyond
// stock are clamped by the store, never rejected.
func CartAddItem(svc cartsvc.Service, catalogSvc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil || catalogSvc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart service unavailable"))
			return
		}

		var payload addCartItemRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		product, ok := catalogSvc.GetProductByID(payload.ProductID)
		if !ok {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeNotFound, "product not found"))
			return
		}

		svc.AddItem(r.Context(), product, payload.Quantity)
		responses.WriteSuccessStatus(w, http.StatusCreated, svc.Summary())
	}
}

// CartUpdateItem replaces a line's quantity; unknown lines are no-ops.
func CartUpdateItem(svc cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart service unavailable"))
			return
		}

		var payload updateCartItemRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		svc.UpdateQuantity(r.Context(), chi.URLParam(r, "productId"), payload.Quantity)
		responses.WriteSuccess(w, svc.Summary())
	}
}

// CartRemoveItem deletes a line; unknown lines are no-ops.
func CartRemoveItem(svc cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart service unavailable"))
			return
		}

		svc.RemoveItem(r.Context(), chi.URLParam(r, "productId"))
		responses.WriteSuccess(w, svc.Summary())
	}
}

// CartClear empties the cart.
func CartClear(svc cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart service unavailable"))
			return
		}

		svc.Clear(r.Context())
		responses.WriteSuccess(w, svc.Summary())
	}
}
