package service

import (
	"context"

	"storefront/internal/model"
)

// ProductService defines operations for catalogue management.
type ProductService interface {
	// GetAll retrieves all products with pagination.
	GetAll(ctx context.Context, limit, offset int) ([]model.Product, error)

	// GetFeatured retrieves the home page subset of the catalogue.
	GetFeatured(ctx context.Context) ([]model.Product, error)

	// GetByID retrieves a single product by ID.
	GetByID(ctx context.Context, id int64) (*model.Product, error)

	// Create adds a new product to the catalogue.
	Create(ctx context.Context, req *model.ProductRequest) (*model.Product, error)

	// Update overwrites an existing product.
	Update(ctx context.Context, id int64, req *model.ProductRequest) (*model.Product, error)

	// Delete removes a product from the catalogue.
	Delete(ctx context.Context, id int64) error
}

// CartService defines operations on a user's shopping cart.
type CartService interface {
	// List retrieves all cart lines owned by the user.
	List(ctx context.Context, userID string) ([]model.CartItem, error)

	// Add puts a product in the user's cart, merging quantity into an
	// existing line for the same product. Reports whether a new line was
	// created (as opposed to merged).
	Add(ctx context.Context, userID string, req *model.AddCartItemRequest) (*model.CartItem, bool, error)

	// UpdateQuantity sets a line's quantity. A quantity below 1 removes the
	// line, reported by a nil item with a nil error.
	UpdateQuantity(ctx context.Context, userID string, cartItemID int64, quantity int) (*model.CartItem, error)

	// Remove deletes a line from the user's cart.
	Remove(ctx context.Context, userID string, cartItemID int64) error
}

// FavoriteService defines operations on a user's favorites.
type FavoriteService interface {
	// List retrieves the user's favorites, most recently created first.
	List(ctx context.Context, userID string) ([]model.Favorite, error)

	// Add marks a product as a favorite, carrying a snapshot of its
	// name/image/price. A repeated add refreshes the snapshot.
	Add(ctx context.Context, userID string, req *model.AddFavoriteRequest) (*model.Favorite, error)

	// RemoveByID deletes the user's favorite with the given identifier.
	RemoveByID(ctx context.Context, userID string, favoriteID int64) (*model.Favorite, error)

	// RemoveByProduct deletes the user's favorite for the given product.
	RemoveByProduct(ctx context.Context, userID string, productID int64) (*model.Favorite, error)
}

// OrderService defines operations for order placement.
type OrderService interface {
	// Place converts submitted cart lines into order rows, all in one
	// transaction, and clears the user's cart.
	Place(ctx context.Context, userID string, req *model.PlaceOrderRequest) error

	// List retrieves the user's order lines, most recent first.
	List(ctx context.Context, userID string) ([]model.Order, error)
}
