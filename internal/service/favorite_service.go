package service

import (
	"context"
	"fmt"

	"storefront/internal/model"
	"storefront/internal/repository"

	"github.com/rs/zerolog"
)

// favoriteService implements FavoriteService.
type favoriteService struct {
	favoriteRepo repository.FavoriteRepository
	logger       zerolog.Logger
}

// NewFavoriteService creates a new favorite service.
func NewFavoriteService(favoriteRepo repository.FavoriteRepository, logger zerolog.Logger) FavoriteService {
	return &favoriteService{
		favoriteRepo: favoriteRepo,
		logger:       logger.With().Str("service", "favorite").Logger(),
	}
}

// List retrieves the user's favorites, most recently created first.
func (s *favoriteService) List(ctx context.Context, userID string) ([]model.Favorite, error) {
	favorites, err := s.favoriteRepo.ListByUser(ctx, userID)
	if err != nil {
		s.logger.Error().Err(err).Str("user_id", userID).Msg("failed to list favorites")
		return nil, fmt.Errorf("failed to list favorites: %w", err)
	}

	s.logger.Debug().
		Str("user_id", userID).
		Int("count", len(favorites)).
		Msg("retrieved favorites")

	return favorites, nil
}

// Add marks a product as a favorite, carrying a snapshot of its
// name/image/price. The unique (user, product) constraint makes a repeated
// add idempotent: the snapshot is refreshed rather than duplicated.
func (s *favoriteService) Add(ctx context.Context, userID string, req *model.AddFavoriteRequest) (*model.Favorite, error) {
	if req == nil || req.ProductID == 0 {
		return nil, fmt.Errorf("product ID is required")
	}
	if req.Price < 0 {
		return nil, model.ErrInvalidPrice
	}

	fav := &model.Favorite{
		UserID:    userID,
		ProductID: req.ProductID,
		Name:      req.Name,
		ImageURL:  req.ImageURL,
		Price:     req.Price,
	}

	stored, created, err := s.favoriteRepo.Upsert(ctx, fav)
	if err != nil {
		s.logger.Error().Err(err).
			Str("user_id", userID).
			Int64("product_id", req.ProductID).
			Msg("failed to add favorite")
		return nil, fmt.Errorf("failed to add favorite: %w", err)
	}

	s.logger.Info().
		Str("user_id", userID).
		Int64("favorite_id", stored.ID).
		Bool("created", created).
		Msg("favorite added")

	return stored, nil
}

// RemoveByID deletes the user's favorite with the given identifier. The
// record is fetched first and its owner compared to the caller; a mismatch
// is reported as not found to avoid leaking other users' favorites.
func (s *favoriteService) RemoveByID(ctx context.Context, userID string, favoriteID int64) (*model.Favorite, error) {
	fav, err := s.favoriteRepo.GetByID(ctx, favoriteID)
	if err != nil {
		s.logger.Error().Err(err).Int64("favorite_id", favoriteID).Msg("failed to look up favorite")
		return nil, fmt.Errorf("failed to remove favorite: %w", err)
	}
	if fav == nil || fav.UserID != userID {
		return nil, model.ErrFavoriteNotFound
	}

	return s.delete(ctx, fav)
}

// RemoveByProduct deletes the user's favorite for the given product.
func (s *favoriteService) RemoveByProduct(ctx context.Context, userID string, productID int64) (*model.Favorite, error) {
	fav, err := s.favoriteRepo.GetByUserProduct(ctx, userID, productID)
	if err != nil {
		s.logger.Error().Err(err).
			Str("user_id", userID).
			Int64("product_id", productID).
			Msg("failed to look up favorite by product")
		return nil, fmt.Errorf("failed to remove favorite: %w", err)
	}
	if fav == nil {
		return nil, model.ErrFavoriteNotFound
	}

	return s.delete(ctx, fav)
}

func (s *favoriteService) delete(ctx context.Context, fav *model.Favorite) (*model.Favorite, error) {
	deleted, err := s.favoriteRepo.Delete(ctx, fav.ID)
	if err != nil {
		s.logger.Error().Err(err).Int64("favorite_id", fav.ID).Msg("failed to delete favorite")
		return nil, fmt.Errorf("failed to remove favorite: %w", err)
	}
	if !deleted {
		return nil, model.ErrFavoriteNotFound
	}

	s.logger.Info().
		Str("user_id", fav.UserID).
		Int64("favorite_id", fav.ID).
		Msg("favorite removed")

	return fav, nil
}
