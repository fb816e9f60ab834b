package domain

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
)

func newTestRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, 0))
}

// ============================================================================
// PriceItem Tests
// ============================================================================

func TestPriceItem_PriceInRange(t *testing.T) {
	rng := newTestRand(1)
	item := CatalogItem{Identity: 0, DisplayName: "Product 1", ImageRef: "images/p1.jpg"}

	for i := 0; i < 1000; i++ {
		p := PriceItem(item, rng)
		assert.GreaterOrEqual(t, p.Price, 500)
		assert.Less(t, p.Price, 3500)
	}
}

func TestPriceItem_OriginalPriceAndDiscount(t *testing.T) {
	rng := newTestRand(2)
	item := CatalogItem{Identity: 4, DisplayName: "Product 5", ImageRef: "images/p5.jpg"}

	for i := 0; i < 1000; i++ {
		p := PriceItem(item, rng)

		assert.Equal(t, p.Price*3/2, p.OriginalPrice)
		assert.Equal(t, (p.OriginalPrice-p.Price)*100/p.OriginalPrice, p.DiscountPercent)

		// originalPrice > price iff a discount is shown, and with the fixed
		// 1.5x multiplier the discount always rounds down to 33.
		assert.Greater(t, p.OriginalPrice, p.Price)
		assert.Equal(t, 33, p.DiscountPercent)
	}
}

func TestPriceItem_CopiesCatalogFields(t *testing.T) {
	rng := newTestRand(3)
	item := CatalogItem{Identity: 7, DisplayName: "Product 8", ImageRef: "images/p8.jpg"}

	p := PriceItem(item, rng)

	assert.Equal(t, 7, p.Identity)
	assert.Equal(t, "Product 8", p.DisplayName)
	assert.Equal(t, "images/p8.jpg", p.ImageRef)
}

// ============================================================================
// Size Tests
// ============================================================================

func TestIsValidSize(t *testing.T) {
	for _, s := range Sizes() {
		assert.True(t, IsValidSize(s), "size %q should be valid", s)
	}
	assert.False(t, IsValidSize(""))
	assert.False(t, IsValidSize("XS"))
	assert.False(t, IsValidSize("m"))
}

func TestSizes_DisplayOrder(t *testing.T) {
	assert.Equal(t, []Size{SizeS, SizeM, SizeL, SizeXL, SizeXXL}, Sizes())
}

func TestDefaultMoveSize(t *testing.T) {
	assert.Equal(t, SizeM, DefaultMoveSize)
}
