package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"storefront/internal/model"
	"storefront/internal/service"

	"github.com/rs/zerolog"
)

// CartHandler handles cart-related HTTP requests.
type CartHandler struct {
	service service.CartService
	logger  zerolog.Logger
}

// NewCartHandler creates a new cart handler.
func NewCartHandler(service service.CartService, logger zerolog.Logger) *CartHandler {
	return &CartHandler{
		service: service,
		logger:  logger.With().Str("handler", "cart").Logger(),
	}
}

// List handles GET /api/cart requests.
func (h *CartHandler) List(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	identity := requireIdentity(w, r, h.logger)
	if identity == nil {
		return
	}

	items, err := h.service.List(r.Context(), identity.UserID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to fetch cart", h.logger)
		return
	}

	if items == nil {
		items = []model.CartItem{}
	}

	writeJSON(w, http.StatusOK, items)
}

// Add handles POST /api/cart requests. A new line answers 201, a merge into
// an existing line answers 200.
func (h *CartHandler) Add(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	identity := requireIdentity(w, r, h.logger)
	if identity == nil {
		return
	}

	var req model.AddCartItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", h.logger)
		return
	}

	item, created, err := h.service.Add(r.Context(), identity.UserID, &req)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrProductNotFound):
			writeError(w, http.StatusNotFound, "Product not found", h.logger)
		case errors.Is(err, model.ErrInvalidQuantity):
			writeError(w, http.StatusBadRequest, "invalid quantity", h.logger)
		default:
			writeError(w, http.StatusInternalServerError, "failed to add to cart", h.logger)
		}
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	writeJSON(w, status, item)
}

// Update handles PATCH /api/cart/{id} requests. A quantity below 1 removes
// the line and answers with "Item removed".
func (h *CartHandler) Update(w http.ResponseWriter, r *http.Request) {
	identity := requireIdentity(w, r, h.logger)
	if identity == nil {
		return
	}

	id, ok := pathID(r.URL.Path, "/api/cart/")
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid cart item ID", h.logger)
		return
	}

	var req model.UpdateCartItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", h.logger)
		return
	}

	item, err := h.service.UpdateQuantity(r.Context(), identity.UserID, id, req.Quantity)
	if err != nil {
		if errors.Is(err, model.ErrCartItemNotFound) {
			writeError(w, http.StatusNotFound, "Not found", h.logger)
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to update cart item", h.logger)
		return
	}

	if item == nil {
		writeJSON(w, http.StatusOK, MessageResponse{Message: "Item removed"})
		return
	}

	writeJSON(w, http.StatusOK, item)
}

// Remove handles DELETE /api/cart/{id} requests.
func (h *CartHandler) Remove(w http.ResponseWriter, r *http.Request) {
	identity := requireIdentity(w, r, h.logger)
	if identity == nil {
		return
	}

	id, ok := pathID(r.URL.Path, "/api/cart/")
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid cart item ID", h.logger)
		return
	}

	if err := h.service.Remove(r.Context(), identity.UserID, id); err != nil {
		if errors.Is(err, model.ErrCartItemNotFound) {
			writeError(w, http.StatusNotFound, "Not found", h.logger)
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to delete cart item", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, MessageResponse{Message: "Item removed"})
}
