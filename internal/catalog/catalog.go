// Package catalog serves the read-only catalog items backing the tile grid.
// Items are seeded in memory at startup; the storefront never mutates them.
package catalog

import (
	"fmt"
	"strconv"

	"github.com/Mamlesh45/Myntra-Clone/internal/domain"
	apperrors "github.com/Mamlesh45/Myntra-Clone/pkg/errors"
)

// Catalog holds the seeded catalog items, indexed by identity.
type Catalog struct {
	items []domain.CatalogItem
}

// New seeds a catalog with size items. Display names and image references
// follow the tile grid convention: item identity N is shown as "Product N+1".
func New(size int) *Catalog {
	items := make([]domain.CatalogItem, size)
	for i := range items {
		items[i] = domain.CatalogItem{
			Identity:    i,
			DisplayName: fmt.Sprintf("Product %d", i+1),
			ImageRef:    fmt.Sprintf("images/product-%d.jpg", i+1),
		}
	}
	return &Catalog{items: items}
}

// Get returns the catalog item with the given identity.
func (c *Catalog) Get(identity int) (domain.CatalogItem, error) {
	if identity < 0 || identity >= len(c.items) {
		return domain.CatalogItem{}, apperrors.NotFound("product", strconv.Itoa(identity))
	}
	return c.items[identity], nil
}

// List returns all catalog items in identity order.
func (c *Catalog) List() []domain.CatalogItem {
	out := make([]domain.CatalogItem, len(c.items))
	copy(out, c.items)
	return out
}

// Len returns the number of items in the catalog.
func (c *Catalog) Len() int {
	return len(c.items)
}
