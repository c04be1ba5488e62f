package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/esonge/storefront-backend/api/responses"
	"github.com/esonge/storefront-backend/api/validators"
	filtersvc "github.com/esonge/storefront-backend/internal/filters"
	"github.com/esonge/storefront-backend/pkg/enums"
	pkgerrors "github.com/esonge/storefront-backend/pkg/errors"
	"github.com/esonge/storefront-backend/pkg/logger"
)

type filterStateResponse struct {
	filtersvc.State
	ActiveFiltersCount int `json:"active_filters_count"`
}

type setFilterRequest struct {
	Value json.RawMessage `json:"value" validate:"required"`
}

type setSortRequest struct {
	Sort string `json:"sort" validate:"required"`
}

type setViewModeRequest struct {
	ViewMode string `json:"view_mode" validate:"required"`
}

type setSearchRequest struct {
	Query string `json:"query"`
}

type setPageRequest struct {
	Page int `json:"page" validate:"required,min=1"`
}

func newFilterStateResponse(svc filtersvc.Service) filterStateResponse {
	return filterStateResponse{
		State:              svc.State(),
		ActiveFiltersCount: svc.ActiveFiltersCount(),
	}
}

// FiltersGet serves the listing query state and the badge count.
func FiltersGet(svc filtersvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "filter service unavailable"))
			return
		}

		responses.WriteSuccess(w, newFilterStateResponse(svc))
	}
}

// FiltersSet replaces the whole filter sub-object.
func FiltersSet(svc filtersvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "filter service unavailable"))
			return
		}

		var payload filtersvc.Filters
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		svc.SetFilters(payload)
		responses.WriteSuccess(w, newFilterStateResponse(svc))
	}
}

// FiltersSetKey updates a single filter key.
func FiltersSetKey(svc filtersvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "filter service unavailable"))
			return
		}

		var payload setFilterRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		field := filtersvc.Field(chi.URLParam(r, "key"))
		value, err := decodeFilterValue(field, payload.Value)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		svc.SetFilter(field, value)
		responses.WriteSuccess(w, newFilterStateResponse(svc))
	}
}

func decodeFilterValue(field filtersvc.Field, raw json.RawMessage) (any, error) {
	switch field {
	case filtersvc.FieldCategories, filtersvc.FieldOrigins, filtersvc.FieldGrades:
		var v []string
		if err := json.Unmarshal(raw, &v); err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "value must be a string list")
		}
		return v, nil
	case filtersvc.FieldPriceMin, filtersvc.FieldPriceMax:
		var v *int
		if err := json.Unmarshal(raw, &v); err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "value must be numeric or null")
		}
		return v, nil
	case filtersvc.FieldFreeShippingOnly, filtersvc.FieldInStockOnly:
		var v bool
		if err := json.Unmarshal(raw, &v); err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "value must be a boolean")
		}
		return v, nil
	}
	return nil, pkgerrors.New(pkgerrors.CodeValidation, "unknown filter key").WithDetails(map[string]any{"key": string(field)})
}

// FiltersClear resets the filter sub-object, keeping sort, view and search.
func FiltersClear(svc filtersvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "filter service unavailable"))
			return
		}

		svc.ClearFilters()
		responses.WriteSuccess(w, newFilterStateResponse(svc))
	}
}

// FiltersSetSort changes the sort order.
func FiltersSetSort(svc filtersvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "filter service unavailable"))
			return
		}

		var payload setSortRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		sort, err := enums.ParseSortOption(payload.Sort)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid sort option"))
			return
		}

		svc.SetSort(sort)
		responses.WriteSuccess(w, newFilterStateResponse(svc))
	}
}

// FiltersSetViewMode changes the layout preference without touching the page.
func FiltersSetViewMode(svc filtersvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "filter service unavailable"))
			return
		}

		var payload setViewModeRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		mode, err := enums.ParseViewMode(payload.ViewMode)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid view mode"))
			return
		}

		svc.SetViewMode(mode)
		responses.WriteSuccess(w, newFilterStateResponse(svc))
	}
}

// FiltersSetSearch replaces the search text.
func FiltersSetSearch(svc filtersvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "filter service unavailable"))
			return
		}

		var payload setSearchRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		svc.SetSearchQuery(payload.Query)
		responses.WriteSuccess(w, newFilterStateResponse(svc))
	}
}

// FiltersSetPage moves the pagination cursor.
func FiltersSetPage(svc filtersvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "filter service unavailable"))
			return
		}

		var payload setPageRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		svc.SetCurrentPage(payload.Page)
		responses.WriteSuccess(w, newFilterStateResponse(svc))
	}
}

// FiltersReset restores everything except the view mode.
func FiltersReset(svc filtersvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "filter service unavailable"))
			return
		}

		svc.ResetAll()
		responses.WriteSuccess(w, newFilterStateResponse(svc))
	}
}
