package enums

import "fmt"

// SortOption describes the allowed product listing sort orders.
type SortOption string

const (
	SortNewest     SortOption = "newest"
	SortPriceAsc   SortOption = "price-asc"
	SortPriceDesc  SortOption = "price-desc"
	SortBestSeller SortOption = "best-seller"
	SortRating     SortOption = "rating"
)

var validSortOptions = []SortOption{
	SortNewest,
	SortPriceAsc,
	SortPriceDesc,
	SortBestSeller,
	SortRating,
}

// IsValid reports whether the value matches the canonical sort option enum.
func (s SortOption) IsValid() bool {
	for _, candidate := range validSortOptions {
		if candidate == s {
			return true
		}
	}
	return false
}

// ParseSortOption converts the raw string to SortOption.
func ParseSortOption(value string) (SortOption, error) {
	for _, candidate := range validSortOptions {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid sort option %q", value)
}
