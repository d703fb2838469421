package repository

import (
	"context"
	"fmt"

	"storefront/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// favoriteRepository implements the FavoriteRepository interface using PostgreSQL.
type favoriteRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewFavoriteRepository creates a new PostgreSQL-backed favorite repository.
func NewFavoriteRepository(pool *pgxpool.Pool, logger zerolog.Logger) FavoriteRepository {
	return &favoriteRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "favorite").Logger(),
	}
}

const favoriteColumns = "id, user_id, product_id, name, image_url, price, created_at, updated_at"

func scanFavorite(row pgx.Row, f *model.Favorite) error {
	return row.Scan(
		&f.ID, &f.UserID, &f.ProductID, &f.Name,
		&f.ImageURL, &f.Price, &f.CreatedAt, &f.UpdatedAt,
	)
}

// ListByUser retrieves the user's favorites, most recently created first.
func (r *favoriteRepository) ListByUser(ctx context.Context, userID string) ([]model.Favorite, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM favorites
		WHERE user_id = $1
		ORDER BY created_at DESC, id DESC
	`, favoriteColumns)

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		r.logger.Error().Err(err).Str("user_id", userID).Msg("failed to query favorites")
		return nil, fmt.Errorf("failed to query favorites: %w", err)
	}
	defer rows.Close()

	var favorites []model.Favorite
	for rows.Next() {
		var f model.Favorite
		if err := scanFavorite(rows, &f); err != nil {
			r.logger.Error().Err(err).Msg("failed to scan favorite row")
			return nil, fmt.Errorf("failed to scan favorite: %w", err)
		}
		favorites = append(favorites, f)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating favorite rows")
		return nil, fmt.Errorf("error iterating favorites: %w", err)
	}

	return favorites, nil
}

// GetByID retrieves a single favorite by its ID.
func (r *favoriteRepository) GetByID(ctx context.Context, id int64) (*model.Favorite, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM favorites
		WHERE id = $1
	`, favoriteColumns)

	var f model.Favorite
	err := scanFavorite(r.pool.QueryRow(ctx, query, id), &f)
	if err != nil {
		if err == pgx.ErrNoRows {
			r.logger.Debug().Int64("favorite_id", id).Msg("favorite not found")
			return nil, nil
		}
		r.logger.Error().Err(err).Int64("favorite_id", id).Msg("failed to query favorite")
		return nil, fmt.Errorf("failed to query favorite: %w", err)
	}

	return &f, nil
}

// GetByUserProduct retrieves the user's favorite for a product.
func (r *favoriteRepository) GetByUserProduct(ctx context.Context, userID string, productID int64) (*model.Favorite, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM favorites
		WHERE user_id = $1 AND product_id = $2
	`, favoriteColumns)

	var f model.Favorite
	err := scanFavorite(r.pool.QueryRow(ctx, query, userID, productID), &f)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		r.logger.Error().Err(err).
			Str("user_id", userID).
			Int64("product_id", productID).
			Msg("failed to query favorite by product")
		return nil, fmt.Errorf("failed to query favorite by product: %w", err)
	}

	return &f, nil
}

// Upsert inserts a favorite or refreshes the snapshot of the existing one for
// the same (user, product). The unique constraint makes a duplicate favorite
// impossible even under concurrent adds.
func (r *favoriteRepository) Upsert(ctx context.Context, fav *model.Favorite) (*model.Favorite, bool, error) {
	query := fmt.Sprintf(`
		INSERT INTO favorites (user_id, product_id, name, image_url, price)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (user_id, product_id)
		DO UPDATE SET name = EXCLUDED.name, image_url = EXCLUDED.image_url,
		              price = EXCLUDED.price, updated_at = now()
		RETURNING %s, (xmax = 0) AS inserted
	`, favoriteColumns)

	var stored model.Favorite
	var inserted bool
	err := r.pool.QueryRow(ctx, query,
		fav.UserID, fav.ProductID, fav.Name, fav.ImageURL, fav.Price,
	).Scan(
		&stored.ID, &stored.UserID, &stored.ProductID, &stored.Name,
		&stored.ImageURL, &stored.Price, &stored.CreatedAt, &stored.UpdatedAt,
		&inserted,
	)
	if err != nil {
		r.logger.Error().Err(err).
			Str("user_id", fav.UserID).
			Int64("product_id", fav.ProductID).
			Msg("failed to upsert favorite")
		return nil, false, fmt.Errorf("failed to upsert favorite: %w", err)
	}

	return &stored, inserted, nil
}

// Delete removes a favorite.
func (r *favoriteRepository) Delete(ctx context.Context, id int64) (bool, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM favorites WHERE id = $1`, id)
	if err != nil {
		r.logger.Error().Err(err).Int64("favorite_id", id).Msg("failed to delete favorite")
		return false, fmt.Errorf("failed to delete favorite: %w", err)
	}

	return tag.RowsAffected() > 0, nil
}
