package repository

import (
	"context"
	"fmt"

	"storefront/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// productRepository implements the ProductRepository interface using PostgreSQL.
type productRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewProductRepository creates a new PostgreSQL-backed product repository.
func NewProductRepository(pool *pgxpool.Pool, logger zerolog.Logger) ProductRepository {
	return &productRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "product").Logger(),
	}
}

const productColumns = "id, name, description, price, image_url, category, rating, review_count, created_at, updated_at"

func scanProduct(row pgx.Row, p *model.Product) error {
	return row.Scan(
		&p.ID, &p.Name, &p.Description, &p.Price, &p.ImageURL,
		&p.Category, &p.Rating, &p.ReviewCount, &p.CreatedAt, &p.UpdatedAt,
	)
}

// GetAll retrieves all products with pagination support.
func (r *productRepository) GetAll(ctx context.Context, limit, offset int) ([]model.Product, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM products
		ORDER BY id
		LIMIT $1 OFFSET $2
	`, productColumns)

	rows, err := r.pool.Query(ctx, query, limit, offset)
	if err != nil {
		r.logger.Error().Err(err).
			Int("limit", limit).
			Int("offset", offset).
			Msg("failed to query products")
		return nil, fmt.Errorf("failed to query products: %w", err)
	}
	defer rows.Close()

	var products []model.Product
	for rows.Next() {
		var p model.Product
		if err := scanProduct(rows, &p); err != nil {
			r.logger.Error().Err(err).Msg("failed to scan product row")
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		products = append(products, p)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating product rows")
		return nil, fmt.Errorf("error iterating products: %w", err)
	}

	return products, nil
}

// GetByID retrieves a single product by its ID.
func (r *productRepository) GetByID(ctx context.Context, id int64) (*model.Product, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM products
		WHERE id = $1
	`, productColumns)

	var p model.Product
	err := scanProduct(r.pool.QueryRow(ctx, query, id), &p)
	if err != nil {
		if err == pgx.ErrNoRows {
			r.logger.Debug().Int64("product_id", id).Msg("product not found")
			return nil, nil
		}
		r.logger.Error().Err(err).Int64("product_id", id).Msg("failed to query product")
		return nil, fmt.Errorf("failed to query product: %w", err)
	}

	return &p, nil
}

// Create inserts a new product and returns the stored row.
func (r *productRepository) Create(ctx context.Context, req *model.ProductRequest) (*model.Product, error) {
	query := fmt.Sprintf(`
		INSERT INTO products (name, description, price, image_url, category, rating, review_count)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING %s
	`, productColumns)

	var p model.Product
	err := scanProduct(r.pool.QueryRow(ctx, query,
		req.Name, req.Description, req.Price, req.ImageURL,
		req.Category, req.Rating, req.ReviewCount,
	), &p)
	if err != nil {
		r.logger.Error().Err(err).Str("name", req.Name).Msg("failed to create product")
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	r.logger.Debug().Int64("product_id", p.ID).Msg("product created")

	return &p, nil
}

// Update overwrites an existing product.
func (r *productRepository) Update(ctx context.Context, id int64, req *model.ProductRequest) (*model.Product, error) {
	query := fmt.Sprintf(`
		UPDATE products
		SET name = $2, description = $3, price = $4, image_url = $5,
		    category = $6, rating = $7, review_count = $8, updated_at = now()
		WHERE id = $1
		RETURNING %s
	`, productColumns)

	var p model.Product
	err := scanProduct(r.pool.QueryRow(ctx, query,
		id, req.Name, req.Description, req.Price, req.ImageURL,
		req.Category, req.Rating, req.ReviewCount,
	), &p)
	if err != nil {
		if err == pgx.ErrNoRows {
			r.logger.Debug().Int64("product_id", id).Msg("product not found for update")
			return nil, nil
		}
		r.logger.Error().Err(err).Int64("product_id", id).Msg("failed to update product")
		return nil, fmt.Errorf("failed to update product: %w", err)
	}

	return &p, nil
}

// Delete removes a product.
func (r *productRepository) Delete(ctx context.Context, id int64) (bool, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		r.logger.Error().Err(err).Int64("product_id", id).Msg("failed to delete product")
		return false, fmt.Errorf("failed to delete product: %w", err)
	}

	return tag.RowsAffected() > 0, nil
}

// CreateBatch bulk-inserts seed products under the catalogue IDs they carry
// and returns the inserted count. A row whose ID is already present is
// skipped, so reloading the same seed source is a no-op.
func (r *productRepository) CreateBatch(ctx context.Context, products []model.Product) (int, error) {
	if len(products) == 0 {
		return 0, nil
	}

	query := `
		INSERT INTO products (id, name, description, price, image_url, category, rating, review_count)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (id) DO NOTHING
	`

	batch := &pgx.Batch{}
	for _, p := range products {
		batch.Queue(query, p.ID, p.Name, p.Description, p.Price, p.ImageURL, p.Category, p.Rating, p.ReviewCount)
	}

	results := r.pool.SendBatch(ctx, batch)

	inserted := 0
	for i := 0; i < len(products); i++ {
		tag, err := results.Exec()
		if err != nil {
			_ = results.Close()
			r.logger.Error().Err(err).
				Int64("product_id", products[i].ID).
				Str("name", products[i].Name).
				Msg("failed to insert seed product")
			return inserted, fmt.Errorf("failed to insert seed product: %w", err)
		}
		inserted += int(tag.RowsAffected())
	}

	if err := results.Close(); err != nil {
		return inserted, fmt.Errorf("failed to close seed batch: %w", err)
	}

	if inserted > 0 {
		// The explicit seed IDs bypass the id sequence; move it past the
		// seeded rows so later catalogue inserts don't collide with them.
		query := `SELECT setval(pg_get_serial_sequence('products', 'id'), (SELECT MAX(id) FROM products))`
		if _, err := r.pool.Exec(ctx, query); err != nil {
			r.logger.Error().Err(err).Msg("failed to advance product id sequence")
			return inserted, fmt.Errorf("failed to advance product id sequence: %w", err)
		}
	}

	r.logger.Debug().Int("count", inserted).Msg("seed products inserted")

	return inserted, nil
}
