package domain

import "fmt"

// AddOutcome reports how AddOrMerge changed the cart.
type AddOutcome string

const (
	// OutcomeAdded means a new line was appended.
	OutcomeAdded AddOutcome = "added"
	// OutcomeMerged means an existing line's quantity was incremented.
	OutcomeMerged AddOutcome = "merged"
)

// CartLine is one priced product in a specific size, with a quantity of at
// least 1. Two lines are the same line iff both identity and size match.
type CartLine struct {
	Product
	Size     Size `json:"size"`
	Quantity int  `json:"quantity"`
}

// Cart is an ordered collection of cart lines. Insertion order is preserved:
// merges happen in place, new lines append. Mutate it only through its
// methods; line indices are only valid until the next mutation.
type Cart struct {
	Lines []CartLine `json:"lines"`
}

// AddOrMerge adds the product in the given size. If a line with the same
// (identity, size) already exists its quantity is incremented by 1 and
// OutcomeMerged is returned; otherwise a fresh quantity-1 line is appended
// and OutcomeAdded is returned. The caller must pass a valid size.
func (c *Cart) AddOrMerge(p Product, size Size) AddOutcome {
	if i := c.FindLineIndex(p.Identity, size); i >= 0 {
		c.Lines[i].Quantity++
		return OutcomeMerged
	}

	c.Lines = append(c.Lines, CartLine{Product: p, Size: size, Quantity: 1})
	return OutcomeAdded
}

// AdjustQuantity adds delta to the quantity of the line at index i. If the
// resulting quantity drops to 0 or below the line is removed and removed is
// true; subsequent line indices shift down by one, so callers must not reuse
// indices across calls. Panics if i is out of range: indices come from a
// freshly rendered panel, so a stale index is a programming error.
func (c *Cart) AdjustQuantity(i, delta int) (quantity int, removed bool) {
	c.mustIndex(i)

	c.Lines[i].Quantity += delta
	if c.Lines[i].Quantity <= 0 {
		c.removeLine(i)
		return 0, true
	}
	return c.Lines[i].Quantity, false
}

// RemoveAt deletes the line at index i unconditionally. Panics if i is out of
// range, same as AdjustQuantity.
func (c *Cart) RemoveAt(i int) {
	c.mustIndex(i)
	c.removeLine(i)
}

// Total returns the sum of price*quantity over all lines.
func (c *Cart) Total() int {
	var total int
	for _, line := range c.Lines {
		total += line.Price * line.Quantity
	}
	return total
}

// Clear empties the cart. Idempotent; used after a successful checkout.
func (c *Cart) Clear() {
	c.Lines = nil
}

// IsEmpty reports whether the cart holds no lines.
func (c *Cart) IsEmpty() bool {
	return len(c.Lines) == 0
}

// FindLineIndex returns the index of the line matching identity and size, or
// -1 if no such line exists.
func (c *Cart) FindLineIndex(identity int, size Size) int {
	for i := range c.Lines {
		if c.Lines[i].Identity == identity && c.Lines[i].Size == size {
			return i
		}
	}
	return -1
}

func (c *Cart) removeLine(i int) {
	c.Lines = append(c.Lines[:i], c.Lines[i+1:]...)
}

func (c *Cart) mustIndex(i int) {
	if i < 0 || i >= len(c.Lines) {
		panic(fmt.Sprintf("cart: line index %d out of range [0,%d)", i, len(c.Lines)))
	}
}
