package repository

import (
	"context"
	"fmt"

	"storefront/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// cartRepository implements the CartRepository interface using PostgreSQL.
type cartRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewCartRepository creates a new PostgreSQL-backed cart repository.
func NewCartRepository(pool *pgxpool.Pool, logger zerolog.Logger) CartRepository {
	return &cartRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "cart").Logger(),
	}
}

const cartColumns = "id, user_id, product_id, quantity, created_at, updated_at"

func scanCartItem(row pgx.Row, item *model.CartItem) error {
	return row.Scan(
		&item.ID, &item.UserID, &item.ProductID,
		&item.Quantity, &item.CreatedAt, &item.UpdatedAt,
	)
}

// ListByUser retrieves all cart lines owned by the user.
func (r *cartRepository) ListByUser(ctx context.Context, userID string) ([]model.CartItem, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM cart_items
		WHERE user_id = $1
		ORDER BY id
	`, cartColumns)

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		r.logger.Error().Err(err).Str("user_id", userID).Msg("failed to query cart items")
		return nil, fmt.Errorf("failed to query cart items: %w", err)
	}
	defer rows.Close()

	var items []model.CartItem
	for rows.Next() {
		var item model.CartItem
		if err := scanCartItem(rows, &item); err != nil {
			r.logger.Error().Err(err).Msg("failed to scan cart item row")
			return nil, fmt.Errorf("failed to scan cart item: %w", err)
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating cart item rows")
		return nil, fmt.Errorf("error iterating cart items: %w", err)
	}

	return items, nil
}

// GetByID retrieves a single cart line by its ID.
func (r *cartRepository) GetByID(ctx context.Context, id int64) (*model.CartItem, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM cart_items
		WHERE id = $1
	`, cartColumns)

	var item model.CartItem
	err := scanCartItem(r.pool.QueryRow(ctx, query, id), &item)
	if err != nil {
		if err == pgx.ErrNoRows {
			r.logger.Debug().Int64("cart_item_id", id).Msg("cart item not found")
			return nil, nil
		}
		r.logger.Error().Err(err).Int64("cart_item_id", id).Msg("failed to query cart item")
		return nil, fmt.Errorf("failed to query cart item: %w", err)
	}

	return &item, nil
}

// UpsertIncrement inserts a cart line or atomically increments the quantity
// of the existing line for the same (user, product). The xmax = 0 check
// distinguishes a fresh insert from a conflict update in a single statement,
// so two concurrent adds can never produce two lines.
func (r *cartRepository) UpsertIncrement(ctx context.Context, userID string, productID int64, quantity int) (*model.CartItem, bool, error) {
	query := fmt.Sprintf(`
		INSERT INTO cart_items (user_id, product_id, quantity)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id, product_id)
		DO UPDATE SET quantity = cart_items.quantity + EXCLUDED.quantity, updated_at = now()
		RETURNING %s, (xmax = 0) AS inserted
	`, cartColumns)

	var item model.CartItem
	var inserted bool
	err := r.pool.QueryRow(ctx, query, userID, productID, quantity).Scan(
		&item.ID, &item.UserID, &item.ProductID,
		&item.Quantity, &item.CreatedAt, &item.UpdatedAt,
		&inserted,
	)
	if err != nil {
		r.logger.Error().Err(err).
			Str("user_id", userID).
			Int64("product_id", productID).
			Msg("failed to upsert cart item")
		return nil, false, fmt.Errorf("failed to upsert cart item: %w", err)
	}

	r.logger.Debug().
		Int64("cart_item_id", item.ID).
		Int("quantity", item.Quantity).
		Bool("created", inserted).
		Msg("cart item upserted")

	return &item, inserted, nil
}

// UpdateQuantity sets a line's quantity.
func (r *cartRepository) UpdateQuantity(ctx context.Context, id int64, quantity int) (*model.CartItem, error) {
	query := fmt.Sprintf(`
		UPDATE cart_items
		SET quantity = $2, updated_at = now()
		WHERE id = $1
		RETURNING %s
	`, cartColumns)

	var item model.CartItem
	err := scanCartItem(r.pool.QueryRow(ctx, query, id, quantity), &item)
	if err != nil {
		if err == pgx.ErrNoRows {
			r.logger.Debug().Int64("cart_item_id", id).Msg("cart item not found for update")
			return nil, nil
		}
		r.logger.Error().Err(err).Int64("cart_item_id", id).Msg("failed to update cart item")
		return nil, fmt.Errorf("failed to update cart item: %w", err)
	}

	return &item, nil
}

// Delete removes a cart line.
func (r *cartRepository) Delete(ctx context.Context, id int64) (bool, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM cart_items WHERE id = $1`, id)
	if err != nil {
		r.logger.Error().Err(err).Int64("cart_item_id", id).Msg("failed to delete cart item")
		return false, fmt.Errorf("failed to delete cart item: %w", err)
	}

	return tag.RowsAffected() > 0, nil
}

// DeleteAllByUser removes every cart line owned by the user within the
// provided transaction.
func (r *cartRepository) DeleteAllByUser(ctx context.Context, tx pgx.Tx, userID string) error {
	tag, err := tx.Exec(ctx, `DELETE FROM cart_items WHERE user_id = $1`, userID)
	if err != nil {
		r.logger.Error().Err(err).Str("user_id", userID).Msg("failed to clear cart")
		return fmt.Errorf("failed to clear cart: %w", err)
	}

	r.logger.Debug().
		Str("user_id", userID).
		Int64("removed", tag.RowsAffected()).
		Msg("cart cleared")

	return nil
}
