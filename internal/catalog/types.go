package catalog

// Product is a read-only catalog record. Prices are whole KRW.
type Product struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Price         int      `json:"price"`
	OriginalPrice int      `json:"original_price,omitempty"`
	Images        []string `json:"images,omitempty"`
	Category      string   `json:"category"`
	CategoryName  string   `json:"category_name"`
	Origin        string   `json:"origin"`
	Grade         string   `json:"grade"`
	FreeShipping  bool     `json:"free_shipping"`
	Stock         int      `json:"stock"`
	Description   string   `json:"description,omitempty"`
	Weight        string   `json:"weight,omitempty"`
	CreatedAt     string   `json:"created_at"`
	SalesCount    int      `json:"sales_count"`
	Rating        float64  `json:"rating"`
	ReviewCount   int      `json:"review_count"`
}

// Category is a storefront navigation entry.
type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// Origin and grade domains used by the filter UI.
const (
	OriginDomestic = "국내산"
	OriginImported = "수입산"

	GradePremium  = "특상"
	GradeHigh     = "상"
	GradeStandard = "중"
)
