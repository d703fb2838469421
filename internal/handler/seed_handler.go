package handler

import (
	"net/http"

	"storefront/internal/seed"

	"github.com/rs/zerolog"
)

// SeedHandler handles catalogue seeding requests.
type SeedHandler struct {
	seeder *seed.Seeder
	logger zerolog.Logger
}

// NewSeedHandler creates a new seed handler.
func NewSeedHandler(seeder *seed.Seeder, logger zerolog.Logger) *SeedHandler {
	return &SeedHandler{
		seeder: seeder,
		logger: logger.With().Str("handler", "seed").Logger(),
	}
}

// Seed handles POST /api/seed requests. Admin only.
func (h *SeedHandler) Seed(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	if requireAdmin(w, r, h.logger) == nil {
		return
	}

	inserted, err := h.seeder.Run(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to seed catalogue", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, map[string]int{"seeded": inserted})
}
