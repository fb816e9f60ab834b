package domain

import "time"

// OverlayState names which full-screen overlay, if any, is active. At most
// one of the open states is active at a time; opening one implicitly closes
// any other.
type OverlayState string

const (
	OverlayClosed       OverlayState = "closed"
	OverlayDetailOpen   OverlayState = "detail"
	OverlayCartOpen     OverlayState = "cart"
	OverlayWishlistOpen OverlayState = "wishlist"
)

// Overlay tracks which overlay is showing and, for the detail overlay, the
// priced product it shows. The profile dropdown is independent of the
// overlays and toggles on repeated activation.
type Overlay struct {
	State           OverlayState `json:"state"`
	Detail          *Product     `json:"detail,omitempty"`
	ProfileMenuOpen bool         `json:"profile_menu_open"`
}

// OpenDetail shows the detail overlay for the given priced product, closing
// any other open overlay.
func (o *Overlay) OpenDetail(p Product) {
	o.State = OverlayDetailOpen
	o.Detail = &p
}

// OpenCart shows the cart panel, closing any other open overlay.
func (o *Overlay) OpenCart() {
	o.State = OverlayCartOpen
	o.Detail = nil
}

// OpenWishlist shows the wishlist panel, closing any other open overlay.
func (o *Overlay) OpenWishlist() {
	o.State = OverlayWishlistOpen
	o.Detail = nil
}

// Close dismisses whatever overlay is open. Used for the explicit close
// action, overlay-background activation, and the cancellation signal; it
// never rolls back store mutations that already committed.
func (o *Overlay) Close() {
	o.State = OverlayClosed
	o.Detail = nil
}

// ToggleProfileMenu flips the profile dropdown and returns its new state.
func (o *Overlay) ToggleProfileMenu() bool {
	o.ProfileMenuOpen = !o.ProfileMenuOpen
	return o.ProfileMenuOpen
}

// Session is the application context for one browser session: it owns the
// cart and wishlist stores and the overlay state. Sessions are created empty
// and live until they expire with the backing store; nothing persists across
// sessions.
type Session struct {
	ID        string    `json:"id"`
	Cart      Cart      `json:"cart"`
	Wishlist  Wishlist  `json:"wishlist"`
	Overlay   Overlay   `json:"overlay"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewSession creates an empty session with both stores initialized.
func NewSession(id string) *Session {
	now := time.Now().UTC()
	return &Session{
		ID:        id,
		Overlay:   Overlay{State: OverlayClosed},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Touch records a mutation time on the session.
func (s *Session) Touch() {
	s.UpdatedAt = time.Now().UTC()
}
