// Package view derives displayable representations from store state. Every
// renderer is a pure read-only projection: the presentation layer consumes
// these view models and binds its own interaction events, and re-renders by
// calling the projection again after each store mutation.
package view

import (
	"fmt"

	"github.com/Mamlesh45/Myntra-Clone/internal/domain"
)

// CurrencySymbol prefixes every displayed amount.
const CurrencySymbol = "₹"

// Rating placeholder shown on every detail overlay.
const (
	ratingStars = 4
	ratingCount = 234
)

// PriceBlock is the price display for a priced product.
type PriceBlock struct {
	Price           int    `json:"price"`
	OriginalPrice   int    `json:"original_price"`
	DiscountPercent int    `json:"discount_percent"`
	Currency        string `json:"currency"`
}

// DescriptionBlock is the static product-details copy on the detail overlay.
type DescriptionBlock struct {
	Heading string   `json:"heading"`
	Text    string   `json:"text"`
	Bullets []string `json:"bullets"`
}

// DetailView describes the product detail overlay. Size selection is
// presentation-layer state; the store only learns the size when an
// add-to-cart action commits it.
type DetailView struct {
	Identity    int              `json:"identity"`
	Name        string           `json:"name"`
	Image       string           `json:"image"`
	RatingStars int              `json:"rating_stars"`
	RatingCount int              `json:"rating_count"`
	Price       PriceBlock       `json:"price"`
	Sizes       []domain.Size    `json:"sizes"`
	Actions     []string         `json:"actions"`
	Description DescriptionBlock `json:"description"`
}

// CartLineView is one row of the cart panel. Index is the line's current
// position in the cart store and is only valid until the next mutation.
type CartLineView struct {
	Index     int         `json:"index"`
	Name      string      `json:"name"`
	Image     string      `json:"image"`
	Size      domain.Size `json:"size"`
	Quantity  int         `json:"quantity"`
	Price     PriceBlock  `json:"price"`
	LineTotal int         `json:"line_total"`
}

// CartPanelView describes the cart panel. An empty cart yields Empty=true
// with no rows rather than a zero-row panel.
type CartPanelView struct {
	Empty   bool           `json:"empty"`
	Heading string         `json:"heading,omitempty"`
	Lines   []CartLineView `json:"lines,omitempty"`
	Total   int            `json:"total"`
}

// WishlistEntryView is one row of the wishlist panel.
type WishlistEntryView struct {
	Index int        `json:"index"`
	Name  string     `json:"name"`
	Image string     `json:"image"`
	Price PriceBlock `json:"price"`
}

// WishlistPanelView describes the wishlist panel.
type WishlistPanelView struct {
	Empty   bool                `json:"empty"`
	Heading string              `json:"heading,omitempty"`
	Entries []WishlistEntryView `json:"entries,omitempty"`
}

// BadgeView is the count badge on a header action icon.
type BadgeView struct {
	Count int `json:"count"`
}

// ProfileMenuView describes the profile dropdown and its entries.
type ProfileMenuView struct {
	Open  bool     `json:"open"`
	Items []string `json:"items,omitempty"`
}

func priceBlock(p domain.Product) PriceBlock {
	return PriceBlock{
		Price:           p.Price,
		OriginalPrice:   p.OriginalPrice,
		DiscountPercent: p.DiscountPercent,
		Currency:        CurrencySymbol,
	}
}

// RenderDetail builds the detail overlay view for a priced product.
func RenderDetail(p domain.Product) DetailView {
	return DetailView{
		Identity:    p.Identity,
		Name:        p.DisplayName,
		Image:       p.ImageRef,
		RatingStars: ratingStars,
		RatingCount: ratingCount,
		Price:       priceBlock(p),
		Sizes:       domain.Sizes(),
		Actions:     []string{"wishlist", "add-to-cart"},
		Description: DescriptionBlock{
			Heading: "PRODUCT DETAILS",
			Text: "Premium quality product with excellent fabric and finish. " +
				"Perfect for casual and semi-formal occasions.",
			Bullets: []string{
				"100% Original Products",
				"Easy 30 days return",
				"Cash on Delivery available",
			},
		},
	}
}

// RenderCartPanel builds the cart panel view from the current cart state.
// The heading counts lines, not quantities, matching the bag header.
func RenderCartPanel(c *domain.Cart) CartPanelView {
	if c.IsEmpty() {
		return CartPanelView{Empty: true}
	}

	lines := make([]CartLineView, len(c.Lines))
	for i, line := range c.Lines {
		lines[i] = CartLineView{
			Index:     i,
			Name:      line.DisplayName,
			Image:     line.ImageRef,
			Size:      line.Size,
			Quantity:  line.Quantity,
			Price:     priceBlock(line.Product),
			LineTotal: line.Price * line.Quantity,
		}
	}

	return CartPanelView{
		Heading: fmt.Sprintf("Shopping Bag (%d items)", len(c.Lines)),
		Lines:   lines,
		Total:   c.Total(),
	}
}

// RenderWishlistPanel builds the wishlist panel view from the current
// wishlist state.
func RenderWishlistPanel(w *domain.Wishlist) WishlistPanelView {
	if w.IsEmpty() {
		return WishlistPanelView{Empty: true}
	}

	entries := make([]WishlistEntryView, len(w.Entries))
	for i, p := range w.Entries {
		entries[i] = WishlistEntryView{
			Index: i,
			Name:  p.DisplayName,
			Image: p.ImageRef,
			Price: priceBlock(p),
		}
	}

	return WishlistPanelView{
		Heading: fmt.Sprintf("My Wishlist (%d items)", len(w.Entries)),
		Entries: entries,
	}
}

// RenderBadge returns the count badge for a header icon, or nil when the
// count is zero. The count is shown literally, uncapped.
func RenderBadge(count int) *BadgeView {
	if count <= 0 {
		return nil
	}
	return &BadgeView{Count: count}
}

// RenderProfileMenu builds the profile dropdown view.
func RenderProfileMenu(open bool) ProfileMenuView {
	if !open {
		return ProfileMenuView{}
	}
	return ProfileMenuView{
		Open: true,
		Items: []string{
			"Login / Sign Up",
			"Orders",
			"Wishlist",
			"Coupons",
			"Settings",
		},
	}
}
