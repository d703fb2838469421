package seed

import (
	"context"
	"fmt"

	"storefront/internal/repository"

	"github.com/rs/zerolog"
)

// Seeder loads a seed source and bulk-inserts the products it contains.
type Seeder struct {
	loader      Loader
	productRepo repository.ProductRepository
	source      string
	logger      zerolog.Logger
}

// NewSeeder creates a new catalogue seeder.
func NewSeeder(loader Loader, productRepo repository.ProductRepository, source string, logger zerolog.Logger) *Seeder {
	return &Seeder{
		loader:      loader,
		productRepo: productRepo,
		source:      source,
		logger:      logger.With().Str("component", "seeder").Logger(),
	}
}

// Run loads the configured source and inserts its products, returning how
// many rows were inserted. Re-running is safe: rows whose id is already in
// the catalogue are skipped.
func (s *Seeder) Run(ctx context.Context) (int, error) {
	products, err := s.loader.Load(ctx, s.source)
	if err != nil {
		return 0, fmt.Errorf("failed to load seed source: %w", err)
	}

	inserted, err := s.productRepo.CreateBatch(ctx, products)
	if err != nil {
		return inserted, fmt.Errorf("failed to insert seed products: %w", err)
	}

	s.logger.Info().
		Str("source", s.source).
		Int("loaded", len(products)).
		Int("inserted", inserted).
		Msg("catalogue seeded")

	return inserted, nil
}
