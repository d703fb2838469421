package repository

import (
	"context"

	"storefront/internal/model"

	"github.com/jackc/pgx/v5"
)

// ProductRepository defines the interface for product data access operations.
type ProductRepository interface {
	// GetAll retrieves all products with pagination support.
	GetAll(ctx context.Context, limit, offset int) ([]model.Product, error)

	// GetByID retrieves a single product by its ID. Returns nil when absent.
	GetByID(ctx context.Context, id int64) (*model.Product, error)

	// Create inserts a new product and returns the stored row.
	Create(ctx context.Context, req *model.ProductRequest) (*model.Product, error)

	// Update overwrites an existing product. Returns nil when absent.
	Update(ctx context.Context, id int64, req *model.ProductRequest) (*model.Product, error)

	// Delete removes a product. Reports whether a row was deleted.
	Delete(ctx context.Context, id int64) (bool, error)

	// CreateBatch bulk-inserts seed products and returns the inserted count.
	CreateBatch(ctx context.Context, products []model.Product) (int, error)
}

// CartRepository defines the interface for cart line data access operations.
type CartRepository interface {
	// ListByUser retrieves all cart lines owned by the user.
	ListByUser(ctx context.Context, userID string) ([]model.CartItem, error)

	// GetByID retrieves a single cart line. Returns nil when absent.
	GetByID(ctx context.Context, id int64) (*model.CartItem, error)

	// UpsertIncrement inserts a cart line or, when one already exists for
	// (userID, productID), atomically increments its quantity. Reports
	// whether a new row was created.
	UpsertIncrement(ctx context.Context, userID string, productID int64, quantity int) (*model.CartItem, bool, error)

	// UpdateQuantity sets a line's quantity. Returns nil when absent.
	UpdateQuantity(ctx context.Context, id int64, quantity int) (*model.CartItem, error)

	// Delete removes a cart line. Reports whether a row was deleted.
	Delete(ctx context.Context, id int64) (bool, error)

	// DeleteAllByUser removes every cart line owned by the user within the
	// provided transaction.
	DeleteAllByUser(ctx context.Context, tx pgx.Tx, userID string) error
}

// FavoriteRepository defines the interface for favorite data access operations.
type FavoriteRepository interface {
	// ListByUser retrieves the user's favorites, most recently created first.
	ListByUser(ctx context.Context, userID string) ([]model.Favorite, error)

	// GetByID retrieves a single favorite. Returns nil when absent.
	GetByID(ctx context.Context, id int64) (*model.Favorite, error)

	// GetByUserProduct retrieves the user's favorite for a product.
	// Returns nil when absent.
	GetByUserProduct(ctx context.Context, userID string, productID int64) (*model.Favorite, error)

	// Upsert inserts a favorite or refreshes the snapshot of an existing one
	// for the same (user, product). Reports whether a new row was created.
	Upsert(ctx context.Context, fav *model.Favorite) (*model.Favorite, bool, error)

	// Delete removes a favorite. Reports whether a row was deleted.
	Delete(ctx context.Context, id int64) (bool, error)
}

// OrderRepository defines the interface for order data access operations.
type OrderRepository interface {
	// BeginTx starts a new database transaction.
	BeginTx(ctx context.Context) (pgx.Tx, error)

	// CreateLines inserts order lines within the provided transaction.
	CreateLines(ctx context.Context, tx pgx.Tx, lines []model.Order) error

	// ListByUser retrieves the user's order lines, most recent first.
	ListByUser(ctx context.Context, userID string) ([]model.Order, error)
}
