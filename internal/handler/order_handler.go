package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"storefront/internal/model"
	"storefront/internal/service"

	"github.com/rs/zerolog"
)

// OrderHandler handles order-related HTTP requests.
type OrderHandler struct {
	service service.OrderService
	logger  zerolog.Logger
}

// NewOrderHandler creates a new order handler.
func NewOrderHandler(service service.OrderService, logger zerolog.Logger) *OrderHandler {
	return &OrderHandler{
		service: service,
		logger:  logger.With().Str("handler", "order").Logger(),
	}
}

// List handles GET /api/orders requests.
func (h *OrderHandler) List(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	identity := requireIdentity(w, r, h.logger)
	if identity == nil {
		return
	}

	orders, err := h.service.List(r.Context(), identity.UserID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to fetch orders", h.logger)
		return
	}

	if orders == nil {
		orders = []model.Order{}
	}

	writeJSON(w, http.StatusOK, model.OrdersResponse{Success: true, Orders: orders})
}

// Place handles POST /api/orders requests.
func (h *OrderHandler) Place(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	identity := requireIdentity(w, r, h.logger)
	if identity == nil {
		return
	}

	var req model.PlaceOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", h.logger)
		return
	}

	if err := h.service.Place(r.Context(), identity.UserID, &req); err != nil {
		status := http.StatusInternalServerError
		message := "failed to create order"

		switch {
		case errors.Is(err, model.ErrInvalidQuantity):
			status = http.StatusBadRequest
			message = "invalid quantity"
		case errors.Is(err, model.ErrInvalidPrice):
			status = http.StatusBadRequest
			message = "invalid price"
		default:
			if strings.Contains(err.Error(), "required") ||
				strings.Contains(err.Error(), "must contain") ||
				strings.Contains(err.Error(), "nil") {
				status = http.StatusBadRequest
				message = err.Error()
			}
		}

		writeError(w, status, message, h.logger)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]bool{"success": true})
}
