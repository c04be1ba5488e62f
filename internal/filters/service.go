package filters

import (
	"sync"

	"github.com/esonge/storefront-backend/internal/catalog"
	"github.com/esonge/storefront-backend/pkg/enums"
	"github.com/esonge/storefront-backend/pkg/logger"
	"github.com/esonge/storefront-backend/pkg/metrics"
)

const storeName = "filters"

// Filters is the selectable filter sub-object of the listing query. Nil price
// bounds mean unbounded.
type Filters struct {
	Categories       []string `json:"categories"`
	Origins          []string `json:"origins"`
	Grades           []string `json:"grades"`
	PriceMin         *int     `json:"price_min"`
	PriceMax         *int     `json:"price_max"`
	FreeShippingOnly bool     `json:"free_shipping_only"`
	InStockOnly      bool     `json:"in_stock_only"`
}

// Field names one key of the Filters sub-object for single-key updates.
type Field string

const (
	FieldCategories       Field = "categories"
	FieldOrigins          Field = "origins"
	FieldGrades           Field = "grades"
	FieldPriceMin         Field = "price_min"
	FieldPriceMax         Field = "price_max"
	FieldFreeShippingOnly Field = "free_shipping_only"
	FieldInStockOnly      Field = "in_stock_only"
)

// State is a raw snapshot of the listing query for rendering.
type State struct {
	Filters      Filters          `json:"filters"`
	Sort         enums.SortOption `json:"sort"`
	ViewMode     enums.ViewMode   `json:"view_mode"`
	SearchQuery  string           `json:"search_query"`
	CurrentPage  int              `json:"current_page"`
	ItemsPerPage int              `json:"items_per_page"`
}

// ServiceParams groups dependencies for the filter store.
type ServiceParams struct {
	Logger  *logger.Logger
	Metrics *metrics.StoreMetrics

	// ItemsPerPage defaults to 12.
	ItemsPerPage int
}

// Service owns the product listing query state. Unlike the other stores it is
// never persisted; every process start begins from the defaults. Mutations
// that change what the listing shows reset the page to 1; view mode and the
// page itself do not.
type Service interface {
	SetFilters(f Filters)
	SetFilter(field Field, value any)
	ClearFilters()
	SetSort(sort enums.SortOption)
	SetViewMode(mode enums.ViewMode)
	SetSearchQuery(query string)
	SetCurrentPage(page int)
	ResetAll()

	ActiveFiltersCount() int
	State() State
	CatalogQuery() catalog.Query
}

type service struct {
	mu           sync.Mutex
	filters      Filters
	sort         enums.SortOption
	viewMode     enums.ViewMode
	searchQuery  string
	currentPage  int
	itemsPerPage int

	logg    *logger.Logger
	metrics *metrics.StoreMetrics
}

// NewService builds the filter store with default state.
func NewService(params ServiceParams) Service {
	perPage := params.ItemsPerPage
	if perPage <= 0 {
		perPage = 12
	}
	return &service{
		filters:      defaultFilters(),
		sort:         enums.SortNewest,
		viewMode:     enums.ViewModeGrid,
		currentPage:  1,
		itemsPerPage: perPage,
		logg:         params.Logger,
		metrics:      params.Metrics,
	}
}

func defaultFilters() Filters {
	return Filters{
		Categories: []string{},
		Origins:    []string{},
		Grades:     []string{},
	}
}

// SetFilters replaces the whole filter sub-object and resets the page.
func (s *service) SetFilters(f Filters) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.filters = normalize(f)
	s.currentPage = 1
	s.metrics.IncMutation(storeName, "set_filters")
}

// SetFilter replaces a single filter key and resets the page. Unknown fields
// and mismatched value types are silent no-ops.
func (s *service) SetFilter(field Field, value any) {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch field {
	case FieldCategories:
		v, ok := value.([]string)
		if !ok {
			return
		}
		s.filters.Categories = nonNil(v)
	case FieldOrigins:
		v, ok := value.([]string)
		if !ok {
			return
		}
		s.filters.Origins = nonNil(v)
	case FieldGrades:
		v, ok := value.([]string)
		if !ok {
			return
		}
		s.filters.Grades = nonNil(v)
	case FieldPriceMin:
		v, ok := value.(*int)
		if !ok {
			return
		}
		s.filters.PriceMin = v
	case FieldPriceMax:
		v, ok := value.(*int)
		if !ok {
			return
		}
		s.filters.PriceMax = v
	case FieldFreeShippingOnly:
		v, ok := value.(bool)
		if !ok {
			return
		}
		s.filters.FreeShippingOnly = v
	case FieldInStockOnly:
		v, ok := value.(bool)
		if !ok {
			return
		}
		s.filters.InStockOnly = v
	default:
		return
	}
	s.currentPage = 1
	s.metrics.IncMutation(storeName, "set_filter")
}

// ClearFilters restores the filter sub-object to defaults and resets the
// page; sort, view mode and search query stay.
func (s *service) ClearFilters() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.filters = defaultFilters()
	s.currentPage = 1
	s.metrics.IncMutation(storeName, "clear_filters")
}

// SetSort changes the sort order and resets the page. Invalid options are
// silent no-ops.
func (s *service) SetSort(sort enums.SortOption) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !sort.IsValid() {
		return
	}
	s.sort = sort
	s.currentPage = 1
	s.metrics.IncMutation(storeName, "set_sort")
}

// SetViewMode changes the layout preference. The page is deliberately kept.
func (s *service) SetViewMode(mode enums.ViewMode) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !mode.IsValid() {
		return
	}
	s.viewMode = mode
	s.metrics.IncMutation(storeName, "set_view_mode")
}

// SetSearchQuery replaces the search text and resets the page.
func (s *service) SetSearchQuery(query string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.searchQuery = query
	s.currentPage = 1
	s.metrics.IncMutation(storeName, "set_search_query")
}

// SetCurrentPage moves to the given page, floored at 1.
func (s *service) SetCurrentPage(page int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if page < 1 {
		page = 1
	}
	s.currentPage = page
	s.metrics.IncMutation(storeName, "set_current_page")
}

// ResetAll restores filters, sort, search query and page to defaults. View
// mode is a durable preference and survives.
func (s *service) ResetAll() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.filters = defaultFilters()
	s.sort = enums.SortNewest
	s.searchQuery = ""
	s.currentPage = 1
	s.metrics.IncMutation(storeName, "reset_all")
}

// ActiveFiltersCount is the UI badge count: each selected category, origin
// and grade counts one; a set price bound counts one regardless of how many
// bounds are set; each boolean toggle counts one.
func (s *service) ActiveFiltersCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	count := len(s.filters.Categories) + len(s.filters.Origins) + len(s.filters.Grades)
	if s.filters.PriceMin != nil || s.filters.PriceMax != nil {
		count++
	}
	if s.filters.FreeShippingOnly {
		count++
	}
	if s.filters.InStockOnly {
		count++
	}
	return count
}

func (s *service) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()

	return State{
		Filters:      s.filters,
		Sort:         s.sort,
		ViewMode:     s.viewMode,
		SearchQuery:  s.searchQuery,
		CurrentPage:  s.currentPage,
		ItemsPerPage: s.itemsPerPage,
	}
}

// CatalogQuery projects the current state onto a catalog listing query.
func (s *service) CatalogQuery() catalog.Query {
	s.mu.Lock()
	defer s.mu.Unlock()

	return catalog.Query{
		Categories:       s.filters.Categories,
		Origins:          s.filters.Origins,
		Grades:           s.filters.Grades,
		PriceMin:         s.filters.PriceMin,
		PriceMax:         s.filters.PriceMax,
		FreeShippingOnly: s.filters.FreeShippingOnly,
		InStockOnly:      s.filters.InStockOnly,
		Sort:             s.sort,
		Search:           s.searchQuery,
		Page:             s.currentPage,
		PerPage:          s.itemsPerPage,
	}
}

func normalize(f Filters) Filters {
	f.Categories = nonNil(f.Categories)
	f.Origins = nonNil(f.Origins)
	f.Grades = nonNil(f.Grades)
	return f
}

func nonNil(v []string) []string {
	if v == nil {
		return []string{}
	}
	return v
}
