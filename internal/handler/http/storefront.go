package http

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/Mamlesh45/Myntra-Clone/internal/domain"
	"github.com/Mamlesh45/Myntra-Clone/internal/service"
	apperrors "github.com/Mamlesh45/Myntra-Clone/pkg/errors"
	"github.com/Mamlesh45/Myntra-Clone/pkg/validator"
)

// StorefrontHandler handles HTTP requests for the storefront endpoints.
type StorefrontHandler struct {
	service *service.StorefrontService
	logger  *slog.Logger
}

// NewStorefrontHandler creates a new storefront HTTP handler.
func NewStorefrontHandler(svc *service.StorefrontService, logger *slog.Logger) *StorefrontHandler {
	return &StorefrontHandler{
		service: svc,
		logger:  logger,
	}
}

// --- Request DTOs ---

// AddToCartRequest is the JSON request body for committing the viewed
// product to the bag.
type AddToCartRequest struct {
	Size string `json:"size" validate:"required,oneof=S M L XL XXL"`
}

// AdjustQuantityRequest is the JSON request body for stepping a cart line's
// quantity.
type AdjustQuantityRequest struct {
	Delta int `json:"delta" validate:"required,oneof=-1 1"`
}

// SelectMenuItemRequest is the JSON request body for activating a profile
// menu entry.
type SelectMenuItemRequest struct {
	Item string `json:"item" validate:"required"`
}

// --- Response envelope ---

type response struct {
	Data  any            `json:"data,omitempty"`
	Error *errorResponse `json:"error,omitempty"`
}

type errorResponse struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"`
}

type addToCartData struct {
	Outcome string            `json:"outcome"`
	State   service.StateView `json:"state"`
}

type addToWishlistData struct {
	Added bool              `json:"added"`
	State service.StateView `json:"state"`
}

// --- Handlers ---

// GetCatalog handles GET /api/v1/catalog
func (h *StorefrontHandler) GetCatalog(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, response{Data: h.service.Catalog()})
}

// GetState handles GET /api/v1/storefront
func (h *StorefrontHandler) GetState(w http.ResponseWriter, r *http.Request) {
	sid, _ := sessionIDFromContext(r.Context())

	state, err := h.service.Snapshot(r.Context(), sid)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, response{Data: state})
}

// OpenDetail handles POST /api/v1/storefront/detail/{identity}
func (h *StorefrontHandler) OpenDetail(w http.ResponseWriter, r *http.Request) {
	sid, _ := sessionIDFromContext(r.Context())

	identity, err := strconv.Atoi(chi.URLParam(r, "identity"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, response{
			Error: &errorResponse{Code: "INVALID_INPUT", Message: "identity must be an integer"},
		})
		return
	}

	state, err := h.service.OpenDetail(r.Context(), sid, identity)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, response{Data: state})
}

// AddToCart handles POST /api/v1/storefront/cart/items
func (h *StorefrontHandler) AddToCart(w http.ResponseWriter, r *http.Request) {
	sid, _ := sessionIDFromContext(r.Context())

	var req AddToCartRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, response{
			Error: &errorResponse{Code: "INVALID_INPUT", Message: "invalid request body: " + err.Error()},
		})
		return
	}

	// Size validation is left to the service so a missing selection surfaces
	// the "Please select a size" notification instead of a bare field error.
	outcome, state, err := h.service.AddToCart(r.Context(), sid, domain.Size(req.Size))
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, response{Data: addToCartData{Outcome: string(outcome), State: state}})
}

// AddToWishlist handles POST /api/v1/storefront/wishlist/items
func (h *StorefrontHandler) AddToWishlist(w http.ResponseWriter, r *http.Request) {
	sid, _ := sessionIDFromContext(r.Context())

	added, state, err := h.service.AddToWishlist(r.Context(), sid)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, response{Data: addToWishlistData{Added: added, State: state}})
}

// OpenCart handles POST /api/v1/storefront/cart/open
func (h *StorefrontHandler) OpenCart(w http.ResponseWriter, r *http.Request) {
	h.stateOp(w, r, h.service.OpenCart)
}

// OpenWishlist handles POST /api/v1/storefront/wishlist/open
func (h *StorefrontHandler) OpenWishlist(w http.ResponseWriter, r *http.Request) {
	h.stateOp(w, r, h.service.OpenWishlist)
}

// AdjustQuantity handles PATCH /api/v1/storefront/cart/items/{index}
func (h *StorefrontHandler) AdjustQuantity(w http.ResponseWriter, r *http.Request) {
	sid, _ := sessionIDFromContext(r.Context())

	index, ok := h.lineIndex(w, r)
	if !ok {
		return
	}

	var req AdjustQuantityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, response{
			Error: &errorResponse{Code: "INVALID_INPUT", Message: "invalid request body: " + err.Error()},
		})
		return
	}
	if err := validator.Validate(req); err != nil {
		h.writeValidationError(w, err)
		return
	}

	state, err := h.service.AdjustQuantity(r.Context(), sid, index, req.Delta)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, response{Data: state})
}

// RemoveCartLine handles DELETE /api/v1/storefront/cart/items/{index}
func (h *StorefrontHandler) RemoveCartLine(w http.ResponseWriter, r *http.Request) {
	sid, _ := sessionIDFromContext(r.Context())

	index, ok := h.lineIndex(w, r)
	if !ok {
		return
	}

	state, err := h.service.RemoveCartLine(r.Context(), sid, index)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, response{Data: state})
}

// RemoveWishlistEntry handles DELETE /api/v1/storefront/wishlist/items/{index}
func (h *StorefrontHandler) RemoveWishlistEntry(w http.ResponseWriter, r *http.Request) {
	sid, _ := sessionIDFromContext(r.Context())

	index, ok := h.lineIndex(w, r)
	if !ok {
		return
	}

	state, err := h.service.RemoveWishlistEntry(r.Context(), sid, index)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, response{Data: state})
}

// MoveToCart handles POST /api/v1/storefront/wishlist/items/{index}/move
func (h *StorefrontHandler) MoveToCart(w http.ResponseWriter, r *http.Request) {
	sid, _ := sessionIDFromContext(r.Context())

	index, ok := h.lineIndex(w, r)
	if !ok {
		return
	}

	state, err := h.service.MoveToCart(r.Context(), sid, index)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, response{Data: state})
}

// Checkout handles POST /api/v1/storefront/checkout
func (h *StorefrontHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	sid, _ := sessionIDFromContext(r.Context())

	result, err := h.service.Checkout(r.Context(), sid)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, response{Data: result})
}

// CloseOverlay handles POST /api/v1/storefront/overlay/close
func (h *StorefrontHandler) CloseOverlay(w http.ResponseWriter, r *http.Request) {
	h.stateOp(w, r, h.service.CloseOverlay)
}

// ToggleProfileMenu handles POST /api/v1/storefront/profile/toggle
func (h *StorefrontHandler) ToggleProfileMenu(w http.ResponseWriter, r *http.Request) {
	h.stateOp(w, r, h.service.ToggleProfileMenu)
}

// SelectProfileMenuItem handles POST /api/v1/storefront/profile/select
func (h *StorefrontHandler) SelectProfileMenuItem(w http.ResponseWriter, r *http.Request) {
	sid, _ := sessionIDFromContext(r.Context())

	var req SelectMenuItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, response{
			Error: &errorResponse{Code: "INVALID_INPUT", Message: "invalid request body: " + err.Error()},
		})
		return
	}
	if err := validator.Validate(req); err != nil {
		h.writeValidationError(w, err)
		return
	}

	state, err := h.service.SelectProfileMenuItem(r.Context(), sid, req.Item)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, response{Data: state})
}

// DismissNotification handles DELETE /api/v1/storefront/notification
func (h *StorefrontHandler) DismissNotification(w http.ResponseWriter, r *http.Request) {
	h.stateOp(w, r, h.service.DismissNotification)
}

// --- Helpers ---

// stateOp runs a body-less operation that returns the derived state view.
func (h *StorefrontHandler) stateOp(
	w http.ResponseWriter,
	r *http.Request,
	op func(ctx context.Context, sessionID string) (service.StateView, error),
) {
	sid, _ := sessionIDFromContext(r.Context())

	state, err := op(r.Context(), sid)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, response{Data: state})
}

func (h *StorefrontHandler) lineIndex(w http.ResponseWriter, r *http.Request) (int, bool) {
	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, response{
			Error: &errorResponse{Code: "INVALID_INPUT", Message: "index must be an integer"},
		})
		return 0, false
	}
	return index, true
}

func (h *StorefrontHandler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		writeJSON(w, appErr.Status, response{
			Error: &errorResponse{Code: appErr.Code, Message: appErr.Message},
		})
		return
	}

	status := apperrors.HTTPStatus(err)
	code := "INTERNAL_ERROR"
	message := "an internal error occurred"

	if errors.Is(err, apperrors.ErrNotFound) {
		code = "NOT_FOUND"
		message = "resource not found"
		status = http.StatusNotFound
	} else if errors.Is(err, apperrors.ErrInvalidInput) {
		code = "INVALID_INPUT"
		message = err.Error()
		status = http.StatusBadRequest
	}

	if status == http.StatusInternalServerError {
		h.logger.ErrorContext(r.Context(), "internal error",
			slog.String("error", err.Error()),
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
		)
	}

	writeJSON(w, status, response{
		Error: &errorResponse{Code: code, Message: message},
	})
}

func (h *StorefrontHandler) writeValidationError(w http.ResponseWriter, err error) {
	var valErr *validator.ValidationError
	if errors.As(err, &valErr) {
		writeJSON(w, http.StatusBadRequest, response{
			Error: &errorResponse{
				Code:    "VALIDATION_ERROR",
				Message: "request validation failed",
				Fields:  valErr.Fields(),
			},
		})
		return
	}

	writeJSON(w, http.StatusBadRequest, response{
		Error: &errorResponse{Code: "INVALID_INPUT", Message: err.Error()},
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	// Headers are already sent; nothing meaningful can be done if encoding fails.
	_ = json.NewEncoder(w).Encode(v)
}
