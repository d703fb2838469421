package service

import (
	"context"
	"fmt"

	"storefront/internal/model"
	"storefront/internal/repository"

	"github.com/rs/zerolog"
)

// orderService implements OrderService.
type orderService struct {
	orderRepo repository.OrderRepository
	cartRepo  repository.CartRepository
	logger    zerolog.Logger
}

// NewOrderService creates a new order service.
func NewOrderService(
	orderRepo repository.OrderRepository,
	cartRepo repository.CartRepository,
	logger zerolog.Logger,
) OrderService {
	return &orderService{
		orderRepo: orderRepo,
		cartRepo:  cartRepo,
		logger:    logger.With().Str("service", "order").Logger(),
	}
}

// Place converts submitted cart lines into order rows. The whole batch and
// the cart clear run in one transaction: either every line is recorded and
// the cart is emptied, or nothing changes.
func (s *orderService) Place(ctx context.Context, userID string, req *model.PlaceOrderRequest) error {
	if err := s.validatePlaceRequest(req); err != nil {
		return err
	}

	lines := make([]model.Order, len(req.CartItems))
	for i, item := range req.CartItems {
		lines[i] = model.Order{
			UserID:    userID,
			ProductID: item.ProductID,
			Name:      item.Name,
			ImageURL:  item.ImageURL,
			Quantity:  item.Quantity,
			Price:     item.Price,
			Total:     float64(item.Quantity) * item.Price,
			Status:    model.OrderStatusPending,
		}
	}

	tx, err := s.orderRepo.BeginTx(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to begin transaction")
		return fmt.Errorf("failed to place order: %w", err)
	}

	// Ensure transaction is rolled back on error
	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(ctx); rbErr != nil {
				s.logger.Error().Err(rbErr).Msg("failed to rollback transaction")
			}
		}
	}()

	if err = s.orderRepo.CreateLines(ctx, tx, lines); err != nil {
		s.logger.Error().Err(err).
			Str("user_id", userID).
			Int("line_count", len(lines)).
			Msg("failed to create order lines")
		return fmt.Errorf("failed to place order: %w", err)
	}

	if err = s.cartRepo.DeleteAllByUser(ctx, tx, userID); err != nil {
		s.logger.Error().Err(err).Str("user_id", userID).Msg("failed to clear cart after checkout")
		return fmt.Errorf("failed to place order: %w", err)
	}

	if err = tx.Commit(ctx); err != nil {
		s.logger.Error().Err(err).Str("user_id", userID).Msg("failed to commit transaction")
		return fmt.Errorf("failed to place order: %w", err)
	}

	s.logger.Info().
		Str("user_id", userID).
		Int("line_count", len(lines)).
		Msg("order placed successfully")

	return nil
}

// List retrieves the user's order lines, most recent first.
func (s *orderService) List(ctx context.Context, userID string) ([]model.Order, error) {
	orders, err := s.orderRepo.ListByUser(ctx, userID)
	if err != nil {
		s.logger.Error().Err(err).Str("user_id", userID).Msg("failed to list orders")
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}

	s.logger.Debug().
		Str("user_id", userID).
		Int("count", len(orders)).
		Msg("retrieved orders")

	return orders, nil
}

// validatePlaceRequest validates the checkout payload.
func (s *orderService) validatePlaceRequest(req *model.PlaceOrderRequest) error {
	if req == nil {
		return fmt.Errorf("order request is nil")
	}

	if len(req.CartItems) == 0 {
		return fmt.Errorf("order must contain at least one item")
	}

	for i, item := range req.CartItems {
		if item.ProductID == 0 {
			return fmt.Errorf("item %d: product ID is required", i)
		}

		if item.Quantity <= 0 {
			s.logger.Warn().
				Int("item_index", i).
				Int64("product_id", item.ProductID).
				Int("quantity", item.Quantity).
				Msg("invalid quantity")
			return model.ErrInvalidQuantity
		}

		if item.Price < 0 {
			s.logger.Warn().
				Int("item_index", i).
				Int64("product_id", item.ProductID).
				Float64("price", item.Price).
				Msg("invalid price")
			return model.ErrInvalidPrice
		}
	}

	return nil
}
