package cart

import (
	"time"

	"github.com/esonge/storefront-backend/internal/catalog"
)

// Line is one product entry in the cart, keyed uniquely by product id.
type Line struct {
	Product  catalog.Product `json:"product"`
	Quantity int             `json:"quantity"`
	AddedAt  time.Time       `json:"added_at"`
}

// Summary is the cart snapshot plus its derived totals, shaped for rendering.
type Summary struct {
	Lines       []Line `json:"lines"`
	TotalItems  int    `json:"total_items"`
	TotalPrice  int    `json:"total_price"`
	ShippingFee int    `json:"shipping_fee"`
	FinalPrice  int    `json:"final_price"`
}

// snapshot is the persisted shape: mutable state only, no derived values.
type snapshot struct {
	Lines []Line `json:"lines"`
}
