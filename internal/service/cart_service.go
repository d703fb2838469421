package service

import (
	"context"
	"fmt"

	"storefront/internal/model"
	"storefront/internal/repository"

	"github.com/rs/zerolog"
)

// cartService implements CartService.
type cartService struct {
	cartRepo    repository.CartRepository
	productRepo repository.ProductRepository
	logger      zerolog.Logger
}

// NewCartService creates a new cart service.
func NewCartService(
	cartRepo repository.CartRepository,
	productRepo repository.ProductRepository,
	logger zerolog.Logger,
) CartService {
	return &cartService{
		cartRepo:    cartRepo,
		productRepo: productRepo,
		logger:      logger.With().Str("service", "cart").Logger(),
	}
}

// List retrieves all cart lines owned by the user.
func (s *cartService) List(ctx context.Context, userID string) ([]model.CartItem, error) {
	items, err := s.cartRepo.ListByUser(ctx, userID)
	if err != nil {
		s.logger.Error().Err(err).Str("user_id", userID).Msg("failed to list cart items")
		return nil, fmt.Errorf("failed to list cart items: %w", err)
	}

	s.logger.Debug().
		Str("user_id", userID).
		Int("count", len(items)).
		Msg("retrieved cart items")

	return items, nil
}

// Add puts a product in the user's cart. The quantity defaults to 1 and is
// merged into an existing line for the same product in a single atomic
// statement, so at most one line per (user, product) can exist.
func (s *cartService) Add(ctx context.Context, userID string, req *model.AddCartItemRequest) (*model.CartItem, bool, error) {
	if req == nil || req.ProductID == 0 {
		return nil, false, fmt.Errorf("product ID is required")
	}

	quantity := 1
	if req.Quantity != nil {
		quantity = *req.Quantity
	}
	if quantity < 1 {
		s.logger.Warn().
			Str("user_id", userID).
			Int64("product_id", req.ProductID).
			Int("quantity", quantity).
			Msg("invalid quantity")
		return nil, false, model.ErrInvalidQuantity
	}

	product, err := s.productRepo.GetByID(ctx, req.ProductID)
	if err != nil {
		s.logger.Error().Err(err).Int64("product_id", req.ProductID).Msg("failed to look up product")
		return nil, false, fmt.Errorf("failed to add to cart: %w", err)
	}
	if product == nil {
		s.logger.Debug().Int64("product_id", req.ProductID).Msg("product not found")
		return nil, false, model.ErrProductNotFound
	}

	item, created, err := s.cartRepo.UpsertIncrement(ctx, userID, req.ProductID, quantity)
	if err != nil {
		s.logger.Error().Err(err).
			Str("user_id", userID).
			Int64("product_id", req.ProductID).
			Msg("failed to upsert cart item")
		return nil, false, fmt.Errorf("failed to add to cart: %w", err)
	}

	s.logger.Info().
		Str("user_id", userID).
		Int64("cart_item_id", item.ID).
		Int("quantity", item.Quantity).
		Bool("created", created).
		Msg("cart item added")

	return item, created, nil
}

// UpdateQuantity sets a line's quantity. A quantity below 1 removes the
// line, reported by a nil item with a nil error. Ownership mismatches are
// reported as not found so a caller cannot probe other users' lines.
func (s *cartService) UpdateQuantity(ctx context.Context, userID string, cartItemID int64, quantity int) (*model.CartItem, error) {
	item, err := s.cartRepo.GetByID(ctx, cartItemID)
	if err != nil {
		s.logger.Error().Err(err).Int64("cart_item_id", cartItemID).Msg("failed to look up cart item")
		return nil, fmt.Errorf("failed to update cart item: %w", err)
	}
	if item == nil || item.UserID != userID {
		return nil, model.ErrCartItemNotFound
	}

	if quantity < 1 {
		if _, err := s.cartRepo.Delete(ctx, cartItemID); err != nil {
			s.logger.Error().Err(err).Int64("cart_item_id", cartItemID).Msg("failed to remove cart item")
			return nil, fmt.Errorf("failed to remove cart item: %w", err)
		}

		s.logger.Info().
			Str("user_id", userID).
			Int64("cart_item_id", cartItemID).
			Msg("cart item removed via zero quantity")

		return nil, nil
	}

	updated, err := s.cartRepo.UpdateQuantity(ctx, cartItemID, quantity)
	if err != nil {
		s.logger.Error().Err(err).Int64("cart_item_id", cartItemID).Msg("failed to update quantity")
		return nil, fmt.Errorf("failed to update cart item: %w", err)
	}
	if updated == nil {
		// Deleted between the ownership check and the update.
		return nil, model.ErrCartItemNotFound
	}

	s.logger.Info().
		Str("user_id", userID).
		Int64("cart_item_id", cartItemID).
		Int("quantity", quantity).
		Msg("cart item quantity updated")

	return updated, nil
}

// Remove deletes a line from the user's cart.
func (s *cartService) Remove(ctx context.Context, userID string, cartItemID int64) error {
	item, err := s.cartRepo.GetByID(ctx, cartItemID)
	if err != nil {
		s.logger.Error().Err(err).Int64("cart_item_id", cartItemID).Msg("failed to look up cart item")
		return fmt.Errorf("failed to remove cart item: %w", err)
	}
	if item == nil || item.UserID != userID {
		return model.ErrCartItemNotFound
	}

	if _, err := s.cartRepo.Delete(ctx, cartItemID); err != nil {
		s.logger.Error().Err(err).Int64("cart_item_id", cartItemID).Msg("failed to delete cart item")
		return fmt.Errorf("failed to remove cart item: %w", err)
	}

	s.logger.Info().
		Str("user_id", userID).
		Int64("cart_item_id", cartItemID).
		Msg("cart item removed")

	return nil
}
