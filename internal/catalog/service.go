package catalog

import (
	"sort"
	"strings"

	"github.com/esonge/storefront-backend/pkg/enums"
)

// Service exposes read-only access to the product catalog.
type Service interface {
	GetProductByID(id string) (Product, bool)
	ListProducts() []Product
	ListCategories() []Category
	Search(query Query) Page
}

// Query carries the listing criteria, mirroring the filter store state.
type Query struct {
	Categories       []string
	Origins          []string
	Grades           []string
	PriceMin         *int
	PriceMax         *int
	FreeShippingOnly bool
	InStockOnly      bool
	Sort             enums.SortOption
	Search           string
	Page             int
	PerPage          int
}

// Page is one page of listing results.
type Page struct {
	Products   []Product `json:"products"`
	Total      int       `json:"total"`
	Page       int       `json:"page"`
	PerPage    int       `json:"per_page"`
	TotalPages int       `json:"total_pages"`
}

type service struct {
	products []Product
	byID     map[string]Product
}

// NewService indexes the mock catalog.
func NewService() Service {
	byID := make(map[string]Product, len(seedProducts))
	for _, p := range seedProducts {
		byID[p.ID] = p
	}
	return &service{products: seedProducts, byID: byID}
}

func (s *service) GetProductByID(id string) (Product, bool) {
	p, ok := s.byID[id]
	return p, ok
}

func (s *service) ListProducts() []Product {
	out := make([]Product, len(s.products))
	copy(out, s.products)
	return out
}

func (s *service) ListCategories() []Category {
	out := make([]Category, len(Categories))
	copy(out, Categories)
	return out
}

// Search applies filters, sort and pagination in that order.
func (s *service) Search(query Query) Page {
	matched := make([]Product, 0, len(s.products))
	for _, p := range s.products {
		if matches(p, query) {
			matched = append(matched, p)
		}
	}

	sortProducts(matched, query.Sort)

	perPage := query.PerPage
	if perPage <= 0 {
		perPage = 12
	}
	page := query.Page
	if page <= 0 {
		page = 1
	}

	total := len(matched)
	totalPages := (total + perPage - 1) / perPage
	if totalPages == 0 {
		totalPages = 1
	}

	start := (page - 1) * perPage
	if start > total {
		start = total
	}
	end := start + perPage
	if end > total {
		end = total
	}

	return Page{
		Products:   matched[start:end],
		Total:      total,
		Page:       page,
		PerPage:    perPage,
		TotalPages: totalPages,
	}
}

func matches(p Product, query Query) bool {
	if len(query.Categories) > 0 && !containsString(query.Categories, p.Category) {
		return false
	}
	if len(query.Origins) > 0 && !containsString(query.Origins, p.Origin) {
		return false
	}
	if len(query.Grades) > 0 && !containsString(query.Grades, p.Grade) {
		return false
	}
	if query.PriceMin != nil && p.Price < *query.PriceMin {
		return false
	}
	if query.PriceMax != nil && p.Price > *query.PriceMax {
		return false
	}
	if query.FreeShippingOnly && !p.FreeShipping {
		return false
	}
	if query.InStockOnly && p.Stock <= 0 {
		return false
	}
	if q := strings.TrimSpace(query.Search); q != "" {
		if !strings.Contains(strings.ToLower(p.Name), strings.ToLower(q)) {
			return false
		}
	}
	return true
}

func sortProducts(products []Product, option enums.SortOption) {
	switch option {
	case enums.SortPriceAsc:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price < products[j].Price
		})
	case enums.SortPriceDesc:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price > products[j].Price
		})
	case enums.SortBestSeller:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].SalesCount > products[j].SalesCount
		})
	case enums.SortRating:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Rating > products[j].Rating
		})
	default:
		// newest first; CreatedAt is an ISO date so string order works
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].CreatedAt > products[j].CreatedAt
		})
	}
}

func containsString(haystack []string, needle string) bool {
	for _, candidate := range haystack {
		if candidate == needle {
			return true
		}
	}
	return false
}
