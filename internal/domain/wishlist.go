package domain

import "fmt"

// Wishlist is an ordered collection of saved products, at most one entry per
// product identity. Size and quantity are not tracked; those are chosen when
// an entry moves to the cart.
type Wishlist struct {
	Entries []Product `json:"entries"`
}

// Add appends the product unless an entry with the same identity already
// exists. Returns false for the duplicate case, which is a no-op, not an
// error.
func (w *Wishlist) Add(p Product) bool {
	if w.Contains(p.Identity) {
		return false
	}
	w.Entries = append(w.Entries, p)
	return true
}

// Contains reports whether an entry with the given identity exists.
func (w *Wishlist) Contains(identity int) bool {
	for i := range w.Entries {
		if w.Entries[i].Identity == identity {
			return true
		}
	}
	return false
}

// RemoveAt deletes the entry at index i and returns it. Panics if i is out of
// range: indices come from a freshly rendered panel, so a stale index is a
// programming error.
func (w *Wishlist) RemoveAt(i int) Product {
	w.mustIndex(i)
	p := w.Entries[i]
	w.Entries = append(w.Entries[:i], w.Entries[i+1:]...)
	return p
}

// MoveToCart removes the entry at index i and appends it to cart as a fresh
// quantity-1 line in the given size. The cart's merge check is bypassed on
// purpose: a move always creates a new line, even when a line with the same
// (identity, size) already exists. Returns the created line. Panics if i is
// out of range.
func (w *Wishlist) MoveToCart(i int, cart *Cart, size Size) CartLine {
	p := w.RemoveAt(i)
	line := CartLine{Product: p, Size: size, Quantity: 1}
	cart.Lines = append(cart.Lines, line)
	return line
}

// IsEmpty reports whether the wishlist holds no entries.
func (w *Wishlist) IsEmpty() bool {
	return len(w.Entries) == 0
}

func (w *Wishlist) mustIndex(i int) {
	if i < 0 || i >= len(w.Entries) {
		panic(fmt.Sprintf("wishlist: entry index %d out of range [0,%d)", i, len(w.Entries)))
	}
}
