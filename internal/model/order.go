package model

import "time"

// Order status labels. This service only ever creates orders as PENDING;
// the remaining labels exist for display of externally managed transitions.
const (
	OrderStatusPending    = "PENDING"
	OrderStatusProcessing = "PROCESSING"
	OrderStatusShipped    = "SHIPPED"
	OrderStatusDelivered  = "DELIVERED"
	OrderStatusCancelled  = "CANCELLED"
)

// Order represents a single order line: one product's worth of a checkout.
// There is no parent order header grouping lines into a receipt.
type Order struct {
	ID        int64     `json:"id" db:"id"`
	UserID    string    `json:"userId" db:"user_id"`
	ProductID int64     `json:"productId" db:"product_id"`
	Name      string    `json:"name" db:"name"`
	ImageURL  *string   `json:"imageUrl,omitempty" db:"image_url"`
	Quantity  int       `json:"quantity" db:"quantity"`
	Price     float64   `json:"price" db:"price"`
	Total     float64   `json:"total" db:"total"`
	Status    string    `json:"status" db:"status"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}

// PlaceOrderRequest represents the checkout payload: the cart lines being
// converted into order lines.
type PlaceOrderRequest struct {
	CartItems []OrderLineRequest `json:"cartItems"`
}

// OrderLineRequest represents a single submitted cart line.
type OrderLineRequest struct {
	ProductID int64   `json:"productId"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
	Name      string  `json:"name,omitempty"`
	ImageURL  *string `json:"imageUrl,omitempty"`
}

// OrdersResponse represents the response payload for listing a user's orders.
type OrdersResponse struct {
	Success bool    `json:"success"`
	Orders  []Order `json:"orders"`
}
