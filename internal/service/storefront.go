package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/Mamlesh45/Myntra-Clone/internal/catalog"
	"github.com/Mamlesh45/Myntra-Clone/internal/domain"
	"github.com/Mamlesh45/Myntra-Clone/internal/notify"
	"github.com/Mamlesh45/Myntra-Clone/internal/repository"
	"github.com/Mamlesh45/Myntra-Clone/internal/view"
	apperrors "github.com/Mamlesh45/Myntra-Clone/pkg/errors"
)

// User-facing notification texts.
const (
	msgSelectSize        = "Please select a size"
	msgAddedToBag        = "Item added to bag"
	msgQuantityUpdated   = "Item quantity updated in bag"
	msgAddedToWishlist   = "Item added to wishlist"
	msgAlreadyWishlisted = "Item already in wishlist"
	msgMovedToBag        = "Item moved to bag"
	msgBagEmpty          = "Your bag is empty"
	msgBagNowEmpty       = "Your bag is now empty"
	msgWishlistEmpty     = "Your wishlist is empty"
	msgWishlistNowEmpty  = "Your wishlist is now empty"
)

// StateView is the full displayable state derived after an operation: the
// active overlay with its panel, both badges, and the visible notification.
// Panels are always re-derived from the stores, never cached.
type StateView struct {
	Overlay       domain.OverlayState     `json:"overlay"`
	Detail        *view.DetailView        `json:"detail,omitempty"`
	CartPanel     *view.CartPanelView     `json:"cart_panel,omitempty"`
	WishlistPanel *view.WishlistPanelView `json:"wishlist_panel,omitempty"`
	ProfileMenu   view.ProfileMenuView    `json:"profile_menu"`
	CartBadge     *view.BadgeView         `json:"cart_badge,omitempty"`
	WishlistBadge *view.BadgeView         `json:"wishlist_badge,omitempty"`
	Notification  *notify.Notification    `json:"notification,omitempty"`
}

// CheckoutResult reports the outcome of placing an order.
type CheckoutResult struct {
	Placed bool      `json:"placed"`
	Total  int       `json:"total"`
	State  StateView `json:"state"`
}

// StorefrontService implements the storefront session logic: every operation
// loads the session, applies the mutation, saves, and re-derives the views
// from the now-current store state.
type StorefrontService struct {
	repo     repository.SessionRepository
	catalog  *catalog.Catalog
	notifier *notify.Center
	logger   *slog.Logger

	rngMu sync.Mutex
	rng   *rand.Rand
}

// NewStorefrontService creates a new storefront service. A nil rng gets a
// time-seeded source; tests inject a fixed seed.
func NewStorefrontService(
	repo repository.SessionRepository,
	cat *catalog.Catalog,
	notifier *notify.Center,
	logger *slog.Logger,
	rng *rand.Rand,
) *StorefrontService {
	if rng == nil {
		rng = rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0))
	}
	return &StorefrontService{
		repo:     repo,
		catalog:  cat,
		notifier: notifier,
		logger:   logger,
		rng:      rng,
	}
}

// Catalog returns the catalog items backing the tile grid.
func (s *StorefrontService) Catalog() []domain.CatalogItem {
	return s.catalog.List()
}

// Snapshot derives the current state view without mutating anything.
func (s *StorefrontService) Snapshot(ctx context.Context, sessionID string) (StateView, error) {
	session, err := s.getOrCreateSession(ctx, sessionID)
	if err != nil {
		return StateView{}, err
	}
	return s.render(session), nil
}

// OpenDetail prices the catalog item and shows its detail overlay, closing
// any other open overlay. The price is drawn fresh on every detail view.
func (s *StorefrontService) OpenDetail(ctx context.Context, sessionID string, identity int) (StateView, error) {
	item, err := s.catalog.Get(identity)
	if err != nil {
		return StateView{}, err
	}

	session, err := s.getOrCreateSession(ctx, sessionID)
	if err != nil {
		return StateView{}, err
	}

	s.rngMu.Lock()
	product := domain.PriceItem(item, s.rng)
	s.rngMu.Unlock()

	session.Overlay.OpenDetail(product)
	if err := s.save(ctx, session); err != nil {
		return StateView{}, err
	}

	s.logger.InfoContext(ctx, "detail overlay opened",
		slog.String("session_id", sessionID),
		slog.Int("identity", identity),
		slog.Int("price", product.Price),
	)

	return s.render(session), nil
}

// AddToCart commits the currently viewed product to the cart in the given
// size. Selecting a size is a caller precondition: an empty or unknown size
// aborts with a warning notification and no store mutation. A line with the
// same identity and size is merged; otherwise a new line appends.
func (s *StorefrontService) AddToCart(ctx context.Context, sessionID string, size domain.Size) (domain.AddOutcome, StateView, error) {
	session, err := s.getOrCreateSession(ctx, sessionID)
	if err != nil {
		return "", StateView{}, err
	}

	if session.Overlay.Detail == nil {
		return "", StateView{}, apperrors.InvalidInput("no product is being viewed")
	}
	if !domain.IsValidSize(size) {
		s.notifier.Show(sessionID, msgSelectSize, notify.SeverityWarning)
		return "", StateView{}, apperrors.InvalidInput("size is required")
	}

	outcome := session.Cart.AddOrMerge(*session.Overlay.Detail, size)
	if err := s.save(ctx, session); err != nil {
		return "", StateView{}, err
	}

	if outcome == domain.OutcomeMerged {
		s.notifier.Show(sessionID, msgQuantityUpdated, notify.SeveritySuccess)
	} else {
		s.notifier.Show(sessionID, msgAddedToBag, notify.SeveritySuccess)
	}

	s.logger.InfoContext(ctx, "item added to bag",
		slog.String("session_id", sessionID),
		slog.Int("identity", session.Overlay.Detail.Identity),
		slog.String("size", string(size)),
		slog.String("outcome", string(outcome)),
	)

	return outcome, s.render(session), nil
}

// AddToWishlist saves the currently viewed product to the wishlist. Adding a
// product that is already saved is a no-op signal, not an error.
func (s *StorefrontService) AddToWishlist(ctx context.Context, sessionID string) (bool, StateView, error) {
	session, err := s.getOrCreateSession(ctx, sessionID)
	if err != nil {
		return false, StateView{}, err
	}

	if session.Overlay.Detail == nil {
		return false, StateView{}, apperrors.InvalidInput("no product is being viewed")
	}

	added := session.Wishlist.Add(*session.Overlay.Detail)
	if !added {
		s.notifier.Show(sessionID, msgAlreadyWishlisted, notify.SeverityInfo)
		return false, s.render(session), nil
	}

	if err := s.save(ctx, session); err != nil {
		return false, StateView{}, err
	}
	s.notifier.Show(sessionID, msgAddedToWishlist, notify.SeveritySuccess)

	s.logger.InfoContext(ctx, "item added to wishlist",
		slog.String("session_id", sessionID),
		slog.Int("identity", session.Overlay.Detail.Identity),
	)

	return true, s.render(session), nil
}

// OpenCart shows the cart panel. An empty bag surfaces an informational
// notification instead of opening the overlay.
func (s *StorefrontService) OpenCart(ctx context.Context, sessionID string) (StateView, error) {
	session, err := s.getOrCreateSession(ctx, sessionID)
	if err != nil {
		return StateView{}, err
	}

	if session.Cart.IsEmpty() {
		s.notifier.Show(sessionID, msgBagEmpty, notify.SeverityInfo)
		return s.render(session), nil
	}

	session.Overlay.OpenCart()
	if err := s.save(ctx, session); err != nil {
		return StateView{}, err
	}
	return s.render(session), nil
}

// OpenWishlist shows the wishlist panel, with the same empty-store behavior
// as OpenCart.
func (s *StorefrontService) OpenWishlist(ctx context.Context, sessionID string) (StateView, error) {
	session, err := s.getOrCreateSession(ctx, sessionID)
	if err != nil {
		return StateView{}, err
	}

	if session.Wishlist.IsEmpty() {
		s.notifier.Show(sessionID, msgWishlistEmpty, notify.SeverityInfo)
		return s.render(session), nil
	}

	session.Overlay.OpenWishlist()
	if err := s.save(ctx, session); err != nil {
		return StateView{}, err
	}
	return s.render(session), nil
}

// AdjustQuantity adds delta to the quantity of the cart line at lineIndex.
// A quantity driven to 0 or below removes the line; when the last line goes,
// the bag closes with a notification.
func (s *StorefrontService) AdjustQuantity(ctx context.Context, sessionID string, lineIndex, delta int) (StateView, error) {
	session, err := s.repo.Get(ctx, sessionID)
	if err != nil {
		return StateView{}, fmt.Errorf("get session for quantity adjust: %w", err)
	}

	// Client-supplied indices are validated here; the store itself treats a
	// bad index as a programming error and panics.
	if lineIndex < 0 || lineIndex >= len(session.Cart.Lines) {
		return StateView{}, apperrors.InvalidInput(fmt.Sprintf("cart line index %d out of range", lineIndex))
	}

	quantity, removed := session.Cart.AdjustQuantity(lineIndex, delta)
	if removed && session.Cart.IsEmpty() {
		session.Overlay.Close()
		s.notifier.Show(sessionID, msgBagNowEmpty, notify.SeverityInfo)
	}
	if err := s.save(ctx, session); err != nil {
		return StateView{}, err
	}

	s.logger.InfoContext(ctx, "cart line quantity adjusted",
		slog.String("session_id", sessionID),
		slog.Int("line_index", lineIndex),
		slog.Int("delta", delta),
		slog.Int("quantity", quantity),
		slog.Bool("removed", removed),
	)

	return s.render(session), nil
}

// RemoveCartLine deletes the cart line at lineIndex unconditionally.
func (s *StorefrontService) RemoveCartLine(ctx context.Context, sessionID string, lineIndex int) (StateView, error) {
	session, err := s.repo.Get(ctx, sessionID)
	if err != nil {
		return StateView{}, fmt.Errorf("get session for line removal: %w", err)
	}

	if lineIndex < 0 || lineIndex >= len(session.Cart.Lines) {
		return StateView{}, apperrors.InvalidInput(fmt.Sprintf("cart line index %d out of range", lineIndex))
	}

	session.Cart.RemoveAt(lineIndex)
	if session.Cart.IsEmpty() {
		session.Overlay.Close()
		s.notifier.Show(sessionID, msgBagNowEmpty, notify.SeverityInfo)
	}
	if err := s.save(ctx, session); err != nil {
		return StateView{}, err
	}

	s.logger.InfoContext(ctx, "cart line removed",
		slog.String("session_id", sessionID),
		slog.Int("line_index", lineIndex),
	)

	return s.render(session), nil
}

// RemoveWishlistEntry deletes the wishlist entry at entryIndex.
func (s *StorefrontService) RemoveWishlistEntry(ctx context.Context, sessionID string, entryIndex int) (StateView, error) {
	session, err := s.repo.Get(ctx, sessionID)
	if err != nil {
		return StateView{}, fmt.Errorf("get session for entry removal: %w", err)
	}

	if entryIndex < 0 || entryIndex >= len(session.Wishlist.Entries) {
		return StateView{}, apperrors.InvalidInput(fmt.Sprintf("wishlist entry index %d out of range", entryIndex))
	}

	session.Wishlist.RemoveAt(entryIndex)
	if session.Wishlist.IsEmpty() {
		session.Overlay.Close()
		s.notifier.Show(sessionID, msgWishlistNowEmpty, notify.SeverityInfo)
	}
	if err := s.save(ctx, session); err != nil {
		return StateView{}, err
	}

	return s.render(session), nil
}

// MoveToCart moves the wishlist entry at entryIndex into the cart as a fresh
// line in the default size. The cart's merge check is deliberately bypassed:
// a move creates a duplicate line rather than merging.
func (s *StorefrontService) MoveToCart(ctx context.Context, sessionID string, entryIndex int) (StateView, error) {
	session, err := s.repo.Get(ctx, sessionID)
	if err != nil {
		return StateView{}, fmt.Errorf("get session for move to bag: %w", err)
	}

	if entryIndex < 0 || entryIndex >= len(session.Wishlist.Entries) {
		return StateView{}, apperrors.InvalidInput(fmt.Sprintf("wishlist entry index %d out of range", entryIndex))
	}

	line := session.Wishlist.MoveToCart(entryIndex, &session.Cart, domain.DefaultMoveSize)
	if session.Wishlist.IsEmpty() {
		session.Overlay.Close()
	}
	if err := s.save(ctx, session); err != nil {
		return StateView{}, err
	}
	s.notifier.Show(sessionID, msgMovedToBag, notify.SeveritySuccess)

	s.logger.InfoContext(ctx, "item moved to bag",
		slog.String("session_id", sessionID),
		slog.Int("identity", line.Identity),
		slog.String("size", string(line.Size)),
	)

	return s.render(session), nil
}

// Checkout places the order: it reports the computed total, empties the bag,
// and closes the overlay. An empty bag is rejected with a warning and no
// mutation. There is no payment step.
func (s *StorefrontService) Checkout(ctx context.Context, sessionID string) (CheckoutResult, error) {
	session, err := s.getOrCreateSession(ctx, sessionID)
	if err != nil {
		return CheckoutResult{}, err
	}

	if session.Cart.IsEmpty() {
		s.notifier.Show(sessionID, msgBagEmpty, notify.SeverityWarning)
		return CheckoutResult{Placed: false, State: s.render(session)}, nil
	}

	total := session.Cart.Total()
	s.notifier.Show(sessionID,
		fmt.Sprintf("Order placed successfully! Total: %s%d", view.CurrencySymbol, total),
		notify.SeveritySuccess,
	)

	session.Cart.Clear()
	session.Overlay.Close()
	if err := s.save(ctx, session); err != nil {
		return CheckoutResult{}, err
	}

	s.logger.InfoContext(ctx, "order placed",
		slog.String("session_id", sessionID),
		slog.Int("total", total),
	)

	return CheckoutResult{Placed: true, Total: total, State: s.render(session)}, nil
}

// CloseOverlay dismisses the active overlay: explicit close, background
// activation, and the cancellation signal all land here. Committed store
// mutations are never rolled back.
func (s *StorefrontService) CloseOverlay(ctx context.Context, sessionID string) (StateView, error) {
	session, err := s.getOrCreateSession(ctx, sessionID)
	if err != nil {
		return StateView{}, err
	}

	session.Overlay.Close()
	if err := s.save(ctx, session); err != nil {
		return StateView{}, err
	}
	return s.render(session), nil
}

// ToggleProfileMenu flips the profile dropdown, independent of the overlays.
func (s *StorefrontService) ToggleProfileMenu(ctx context.Context, sessionID string) (StateView, error) {
	session, err := s.getOrCreateSession(ctx, sessionID)
	if err != nil {
		return StateView{}, err
	}

	session.Overlay.ToggleProfileMenu()
	if err := s.save(ctx, session); err != nil {
		return StateView{}, err
	}
	return s.render(session), nil
}

// SelectProfileMenuItem activates a profile dropdown entry and closes the
// menu. Only the wishlist entry is functional; the rest surface a
// coming-soon notice.
func (s *StorefrontService) SelectProfileMenuItem(ctx context.Context, sessionID, item string) (StateView, error) {
	session, err := s.getOrCreateSession(ctx, sessionID)
	if err != nil {
		return StateView{}, err
	}

	session.Overlay.ProfileMenuOpen = false

	switch item {
	case "Wishlist":
		if session.Wishlist.IsEmpty() {
			s.notifier.Show(sessionID, msgWishlistEmpty, notify.SeverityInfo)
		} else {
			session.Overlay.OpenWishlist()
		}
	case "Login / Sign Up":
		s.notifier.Show(sessionID, "Login feature coming soon!", notify.SeverityInfo)
	case "Orders":
		s.notifier.Show(sessionID, "Orders feature coming soon!", notify.SeverityInfo)
	case "Coupons":
		s.notifier.Show(sessionID, "Coupons feature coming soon!", notify.SeverityInfo)
	case "Settings":
		s.notifier.Show(sessionID, "Settings feature coming soon!", notify.SeverityInfo)
	default:
		return StateView{}, apperrors.InvalidInput(fmt.Sprintf("unknown menu item %q", item))
	}

	if err := s.save(ctx, session); err != nil {
		return StateView{}, err
	}
	return s.render(session), nil
}

// DismissNotification clears the visible notification ahead of its
// auto-dismiss deadline.
func (s *StorefrontService) DismissNotification(ctx context.Context, sessionID string) (StateView, error) {
	session, err := s.getOrCreateSession(ctx, sessionID)
	if err != nil {
		return StateView{}, err
	}

	s.notifier.Dismiss(sessionID)
	return s.render(session), nil
}

// render derives the full state view from the session. Panels are only
// materialized for the overlay that is actually open.
func (s *StorefrontService) render(session *domain.Session) StateView {
	sv := StateView{
		Overlay:       session.Overlay.State,
		ProfileMenu:   view.RenderProfileMenu(session.Overlay.ProfileMenuOpen),
		CartBadge:     view.RenderBadge(len(session.Cart.Lines)),
		WishlistBadge: view.RenderBadge(len(session.Wishlist.Entries)),
	}

	switch session.Overlay.State {
	case domain.OverlayDetailOpen:
		if session.Overlay.Detail != nil {
			dv := view.RenderDetail(*session.Overlay.Detail)
			sv.Detail = &dv
		}
	case domain.OverlayCartOpen:
		cp := view.RenderCartPanel(&session.Cart)
		sv.CartPanel = &cp
	case domain.OverlayWishlistOpen:
		wp := view.RenderWishlistPanel(&session.Wishlist)
		sv.WishlistPanel = &wp
	}

	if n, ok := s.notifier.Current(session.ID); ok {
		sv.Notification = &n
	}

	return sv
}

// getOrCreateSession loads the session, creating an empty one if it does not
// exist or has expired.
func (s *StorefrontService) getOrCreateSession(ctx context.Context, sessionID string) (*domain.Session, error) {
	if sessionID == "" {
		return nil, apperrors.InvalidInput("session id is required")
	}

	session, err := s.repo.Get(ctx, sessionID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return domain.NewSession(sessionID), nil
		}
		return nil, fmt.Errorf("get session: %w", err)
	}
	return session, nil
}

func (s *StorefrontService) save(ctx context.Context, session *domain.Session) error {
	session.Touch()
	if err := s.repo.Save(ctx, session); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}
