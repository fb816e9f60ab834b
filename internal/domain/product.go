package domain

import "math/rand/v2"

// Size is a garment size selectable on the product detail overlay.
type Size string

// Valid sizes, in display order.
const (
	SizeS   Size = "S"
	SizeM   Size = "M"
	SizeL   Size = "L"
	SizeXL  Size = "XL"
	SizeXXL Size = "XXL"
)

// DefaultMoveSize is the size assigned when a wishlist entry is moved to the
// cart without an explicit selection.
const DefaultMoveSize = SizeM

// Sizes returns all selectable sizes in display order.
func Sizes() []Size {
	return []Size{SizeS, SizeM, SizeL, SizeXL, SizeXXL}
}

// IsValidSize reports whether s is one of the selectable sizes.
func IsValidSize(s Size) bool {
	switch s {
	case SizeS, SizeM, SizeL, SizeXL, SizeXXL:
		return true
	}
	return false
}

// CatalogItem is a read-only catalog row as served to the tile grid.
type CatalogItem struct {
	Identity    int    `json:"identity"`
	DisplayName string `json:"display_name"`
	ImageRef    string `json:"image_ref"`
}

// Product is a catalog item priced for display. Pricing happens once per
// detail view; the resulting product is immutable from then on and is the
// value carried into cart lines and wishlist entries.
type Product struct {
	Identity        int    `json:"identity"`
	DisplayName     string `json:"display_name"`
	ImageRef        string `json:"image_ref"`
	Price           int    `json:"price"`
	OriginalPrice   int    `json:"original_price"`
	DiscountPercent int    `json:"discount_percent"`
}

// Price generation bounds: prices fall in [minPrice, minPrice+priceSpread).
const (
	minPrice    = 500
	priceSpread = 3000
)

// PriceItem derives a priced product from a catalog item. The price is drawn
// uniformly from [500, 3500); the struck-through original price is fixed at
// 1.5x the price, so the computed discount always lands on 33%.
func PriceItem(item CatalogItem, rng *rand.Rand) Product {
	price := rng.IntN(priceSpread) + minPrice
	original := price * 3 / 2
	discount := (original - price) * 100 / original

	return Product{
		Identity:        item.Identity,
		DisplayName:     item.DisplayName,
		ImageRef:        item.ImageRef,
		Price:           price,
		OriginalPrice:   original,
		DiscountPercent: discount,
	}
}
