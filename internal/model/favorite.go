package model

import "time"

// Favorite represents a product a user has marked as a favorite. Name, image
// and price are snapshots taken at favorite time and are not kept in sync
// with later product edits.
type Favorite struct {
	ID        int64     `json:"id" db:"id"`
	UserID    string    `json:"userId" db:"user_id"`
	ProductID int64     `json:"productId" db:"product_id"`
	Name      string    `json:"name" db:"name"`
	ImageURL  string    `json:"imageUrl" db:"image_url"`
	Price     float64   `json:"price" db:"price"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}

// AddFavoriteRequest represents the request payload for adding a favorite.
type AddFavoriteRequest struct {
	ProductID int64   `json:"productId"`
	Name      string  `json:"name"`
	ImageURL  string  `json:"imageUrl"`
	Price     float64 `json:"price"`
}
