package model

import "time"

// CartItem represents a single cart line: one product with a quantity,
// owned by one user. At most one line exists per (user, product) pair.
type CartItem struct {
	ID        int64     `json:"id" db:"id"`
	UserID    string    `json:"userId" db:"user_id"`
	ProductID int64     `json:"productId" db:"product_id"`
	Quantity  int       `json:"quantity" db:"quantity"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}

// AddCartItemRequest represents the request payload for adding a product to the cart.
// Quantity defaults to 1 when omitted.
type AddCartItemRequest struct {
	ProductID int64 `json:"productId"`
	Quantity  *int  `json:"quantity,omitempty"`
}

// UpdateCartItemRequest represents the request payload for changing a line's quantity.
// A quantity below 1 removes the line.
type UpdateCartItemRequest struct {
	Quantity int `json:"quantity"`
}
