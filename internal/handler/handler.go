package handler

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"storefront/internal/auth"

	"github.com/rs/zerolog"
)

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse represents a plain confirmation response.
type MessageResponse struct {
	Message string `json:"message"`
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		// Log the error but don't expose it to the client
		return
	}
}

// writeError writes an error response with the given status code and message.
func writeError(w http.ResponseWriter, status int, message string, logger zerolog.Logger) {
	logger.Error().Str("error", message).Int("status", status).Msg("handler error")
	writeJSON(w, status, ErrorResponse{Error: message})
}

// requireIdentity returns the caller's resolved identity, writing a 401
// response and returning nil when the request is unauthenticated.
func requireIdentity(w http.ResponseWriter, r *http.Request, logger zerolog.Logger) *auth.Identity {
	identity := auth.FromContext(r.Context())
	if identity == nil {
		writeError(w, http.StatusUnauthorized, "Unauthorized", logger)
		return nil
	}
	return identity
}

// requireAdmin returns the caller's identity only when it carries the admin
// role, writing 401/403 otherwise.
func requireAdmin(w http.ResponseWriter, r *http.Request, logger zerolog.Logger) *auth.Identity {
	identity := requireIdentity(w, r, logger)
	if identity == nil {
		return nil
	}
	if !identity.IsAdmin() {
		writeError(w, http.StatusForbidden, "Forbidden", logger)
		return nil
	}
	return identity
}

// pathID extracts the trailing numeric identifier from a path like
// /api/cart/{id}.
func pathID(path, prefix string) (int64, bool) {
	rest := strings.TrimPrefix(path, prefix)
	if rest == path || rest == "" || strings.Contains(rest, "/") {
		return 0, false
	}
	id, err := strconv.ParseInt(rest, 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}
