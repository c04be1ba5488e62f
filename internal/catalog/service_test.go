package catalog

import (
	"testing"

	"github.com/esonge/storefront-backend/pkg/enums"
)

func TestGetProductByID(t *testing.T) {
	t.Parallel()

	svc := NewService()
	p, ok := svc.GetProductByID("pg-001")
	if !ok {
		t.Fatal("expected pg-001 to exist")
	}
	if p.Price != 890000 {
		t.Fatalf("unexpected price %d", p.Price)
	}
	if !p.FreeShipping {
		t.Fatal("pg-001 should be free shipping")
	}

	if _, ok := svc.GetProductByID("nope"); ok {
		t.Fatal("unknown id should not resolve")
	}
}

func TestSearchCategoryFilter(t *testing.T) {
	t.Parallel()

	svc := NewService()
	page := svc.Search(Query{Categories: []string{"wild-ginseng"}, PerPage: 50})
	if page.Total != 3 {
		t.Fatalf("expected 3 wild-ginseng products, got %d", page.Total)
	}
	for _, p := range page.Products {
		if p.Category != "wild-ginseng" {
			t.Fatalf("unexpected category %q", p.Category)
		}
	}
}

func TestSearchPriceRangeAndStock(t *testing.T) {
	t.Parallel()

	svc := NewService()
	min, max := 30000, 50000
	page := svc.Search(Query{PriceMin: &min, PriceMax: &max, InStockOnly: true, PerPage: 50})
	for _, p := range page.Products {
		if p.Price < min || p.Price > max {
			t.Fatalf("product %s outside price range: %d", p.ID, p.Price)
		}
		if p.Stock <= 0 {
			t.Fatalf("out-of-stock product %s returned with InStockOnly", p.ID)
		}
	}
	// ap-003 (32000 KRW) is sold out, so it must be filtered even though its
	// price is inside the range.
	for _, p := range page.Products {
		if p.ID == "ap-003" {
			t.Fatal("ap-003 should be excluded by InStockOnly")
		}
	}
}

func TestSearchFreeShippingOnly(t *testing.T) {
	t.Parallel()

	svc := NewService()
	page := svc.Search(Query{FreeShippingOnly: true, PerPage: 100})
	if page.Total == 0 {
		t.Fatal("expected free shipping products")
	}
	for _, p := range page.Products {
		if !p.FreeShipping {
			t.Fatalf("product %s is not free shipping", p.ID)
		}
	}
}

func TestSearchSortOrders(t *testing.T) {
	t.Parallel()

	svc := NewService()

	asc := svc.Search(Query{Sort: enums.SortPriceAsc, PerPage: 100}).Products
	for i := 1; i < len(asc); i++ {
		if asc[i-1].Price > asc[i].Price {
			t.Fatalf("price-asc violated at %d: %d > %d", i, asc[i-1].Price, asc[i].Price)
		}
	}

	best := svc.Search(Query{Sort: enums.SortBestSeller, PerPage: 100}).Products
	for i := 1; i < len(best); i++ {
		if best[i-1].SalesCount < best[i].SalesCount {
			t.Fatalf("best-seller violated at %d", i)
		}
	}

	newest := svc.Search(Query{Sort: enums.SortNewest, PerPage: 100}).Products
	for i := 1; i < len(newest); i++ {
		if newest[i-1].CreatedAt < newest[i].CreatedAt {
			t.Fatalf("newest violated at %d", i)
		}
	}
}

func TestSearchNameQuery(t *testing.T) {
	t.Parallel()

	svc := NewService()
	page := svc.Search(Query{Search: "산양산삼", PerPage: 50})
	if page.Total == 0 {
		t.Fatal("expected matches for 산양산삼")
	}
	for _, p := range page.Products {
		if p.Category != "wild-ginseng" && p.Category != "premium-gift" {
			t.Fatalf("unexpected match %s (%s)", p.ID, p.Name)
		}
	}
}

func TestSearchPagination(t *testing.T) {
	t.Parallel()

	svc := NewService()
	all := svc.Search(Query{PerPage: 100})

	first := svc.Search(Query{Page: 1, PerPage: 5})
	if len(first.Products) != 5 {
		t.Fatalf("expected 5 products on page 1, got %d", len(first.Products))
	}
	if first.Total != all.Total {
		t.Fatalf("total mismatch: %d vs %d", first.Total, all.Total)
	}
	wantPages := (all.Total + 4) / 5
	if first.TotalPages != wantPages {
		t.Fatalf("expected %d pages, got %d", wantPages, first.TotalPages)
	}

	// Past-the-end page returns an empty slice, not an error.
	beyond := svc.Search(Query{Page: 99, PerPage: 5})
	if len(beyond.Products) != 0 {
		t.Fatalf("expected empty page, got %d products", len(beyond.Products))
	}
}

func TestListProductsReturnsFullCopy(t *testing.T) {
	t.Parallel()

	svc := NewService()

	all := svc.ListProducts()
	if want := svc.Search(Query{PerPage: 100}).Total; len(all) != want {
		t.Fatalf("expected the full %d-product table, got %d", want, len(all))
	}
	if len(all) != 22 {
		t.Fatalf("expected 22 demo products, got %d", len(all))
	}

	// Callers get their own slice; mutating it must not leak into the table.
	all[0].Name = "mutated"
	all[0].Price = 1

	again := svc.ListProducts()
	if again[0].Name == "mutated" || again[0].Price == 1 {
		t.Fatalf("ListProducts must return a copy, got %+v", again[0])
	}
	if p, ok := svc.GetProductByID(again[0].ID); !ok || p.Name == "mutated" {
		t.Fatalf("table row corrupted by caller mutation: %+v", p)
	}
}
