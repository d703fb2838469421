package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"storefront/internal/model"
	"storefront/internal/service"

	"github.com/rs/zerolog"
)

// FavoriteHandler handles favorite-related HTTP requests.
type FavoriteHandler struct {
	service service.FavoriteService
	logger  zerolog.Logger
}

// NewFavoriteHandler creates a new favorite handler.
func NewFavoriteHandler(service service.FavoriteService, logger zerolog.Logger) *FavoriteHandler {
	return &FavoriteHandler{
		service: service,
		logger:  logger.With().Str("handler", "favorite").Logger(),
	}
}

// favoriteDeletedResponse mirrors the shape callers expect when a favorite
// is removed.
type favoriteDeletedResponse struct {
	Success         bool           `json:"success"`
	Message         string         `json:"message"`
	DeletedFavorite model.Favorite `json:"deletedFavorite"`
}

// List handles GET /api/favorites requests.
func (h *FavoriteHandler) List(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	identity := requireIdentity(w, r, h.logger)
	if identity == nil {
		return
	}

	favorites, err := h.service.List(r.Context(), identity.UserID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to fetch favorites", h.logger)
		return
	}

	if favorites == nil {
		favorites = []model.Favorite{}
	}

	writeJSON(w, http.StatusOK, favorites)
}

// Add handles POST /api/favorites requests.
func (h *FavoriteHandler) Add(w http.ResponseWriter, r *http.Request) {
	identity := requireIdentity(w, r, h.logger)
	if identity == nil {
		return
	}

	var req model.AddFavoriteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", h.logger)
		return
	}

	if _, err := h.service.Add(r.Context(), identity.UserID, &req); err != nil {
		if errors.Is(err, model.ErrInvalidPrice) {
			writeError(w, http.StatusBadRequest, "invalid price", h.logger)
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to create favorite", h.logger)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"success": true,
		"message": "Favorite added successfully",
	})
}

// RemoveByID handles DELETE /api/favorites/{id} requests.
func (h *FavoriteHandler) RemoveByID(w http.ResponseWriter, r *http.Request) {
	identity := requireIdentity(w, r, h.logger)
	if identity == nil {
		return
	}

	id, ok := pathID(r.URL.Path, "/api/favorites/")
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid favorite ID", h.logger)
		return
	}

	deleted, err := h.service.RemoveByID(r.Context(), identity.UserID, id)
	h.writeRemoveResult(w, deleted, err)
}

// RemoveByProduct handles DELETE /api/favorites?productId=N requests, the
// second addressing mode for removal.
func (h *FavoriteHandler) RemoveByProduct(w http.ResponseWriter, r *http.Request) {
	identity := requireIdentity(w, r, h.logger)
	if identity == nil {
		return
	}

	productID, err := strconv.ParseInt(r.URL.Query().Get("productId"), 10, 64)
	if err != nil || productID == 0 {
		writeError(w, http.StatusBadRequest, "invalid product ID", h.logger)
		return
	}

	deleted, err := h.service.RemoveByProduct(r.Context(), identity.UserID, productID)
	h.writeRemoveResult(w, deleted, err)
}

func (h *FavoriteHandler) writeRemoveResult(w http.ResponseWriter, deleted *model.Favorite, err error) {
	if err != nil {
		if errors.Is(err, model.ErrFavoriteNotFound) {
			writeError(w, http.StatusNotFound, "Favorite not found", h.logger)
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to delete favorite", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, favoriteDeletedResponse{
		Success:         true,
		Message:         "Favorite deleted successfully",
		DeletedFavorite: *deleted,
	})
}
