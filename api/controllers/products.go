package controllers

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/esonge/storefront-backend/api/responses"
	"github.com/esonge/storefront-backend/api/validators"
	"github.com/esonge/storefront-backend/internal/catalog"
	"github.com/esonge/storefront-backend/internal/filters"
	"github.com/esonge/storefront-backend/pkg/enums"
	pkgerrors "github.com/esonge/storefront-backend/pkg/errors"
	"github.com/esonge/storefront-backend/pkg/logger"
)

const (
	maxListingPage    = 10000
	maxListingPerPage = 100
)

// ProductsList serves the listing page for the current filter state. Query
// parameters override individual criteria for that request only; the filter
// store itself is not mutated.
func ProductsList(catalogSvc catalog.Service, filterSvc filters.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if catalogSvc == nil || filterSvc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog service unavailable"))
			return
		}

		query := filterSvc.CatalogQuery()
		if err := applyListingOverrides(r, &query); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, catalogSvc.Search(query))
	}
}

// applyListingOverrides layers per-request query parameters over the stored
// listing criteria. Absent parameters leave the stored value in place.
func applyListingOverrides(r *http.Request, q *catalog.Query) error {
	page, err := validators.ParseQueryInt(r, "page", q.Page, 1, maxListingPage)
	if err != nil {
		return err
	}
	q.Page = page

	perPage, err := validators.ParseQueryInt(r, "per_page", q.PerPage, 1, maxListingPerPage)
	if err != nil {
		return err
	}
	q.PerPage = perPage

	if v := validators.ParseQueryList(r, "categories"); v != nil {
		q.Categories = v
	}
	if v := validators.ParseQueryList(r, "origins"); v != nil {
		q.Origins = v
	}
	if v := validators.ParseQueryList(r, "grades"); v != nil {
		q.Grades = v
	}

	priceMin, err := validators.ParseQueryIntPtr(r, "price_min")
	if err != nil {
		return err
	}
	if priceMin != nil {
		q.PriceMin = priceMin
	}
	priceMax, err := validators.ParseQueryIntPtr(r, "price_max")
	if err != nil {
		return err
	}
	if priceMax != nil {
		q.PriceMax = priceMax
	}

	if validators.ParseQueryBool(r, "free_shipping") {
		q.FreeShippingOnly = true
	}
	if validators.ParseQueryBool(r, "in_stock") {
		q.InStockOnly = true
	}

	if raw := strings.TrimSpace(r.URL.Query().Get("search")); raw != "" {
		q.Search = raw
	}
	if raw := strings.TrimSpace(r.URL.Query().Get("sort")); raw != "" {
		sort, err := enums.ParseSortOption(raw)
		if err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid sort option")
		}
		q.Sort = sort
	}

	return nil
}

// ProductGet serves a single product by id.
func ProductGet(catalogSvc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if catalogSvc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog service unavailable"))
			return
		}

		productID := chi.URLParam(r, "productId")
		product, ok := catalogSvc.GetProductByID(productID)
		if !ok {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeNotFound, "product not found"))
			return
		}

		responses.WriteSuccess(w, product)
	}
}

// ProductCategories serves the category tree for the filter panel.
func ProductCategories(catalogSvc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if catalogSvc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog service unavailable"))
			return
		}

		responses.WriteSuccess(w, catalogSvc.ListCategories())
	}
}
