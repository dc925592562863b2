package model

import (
	"time"

	"github.com/google/uuid"
)

// Food represents a menu item in the catalogue.
type Food struct {
	ID          uuid.UUID `json:"id" db:"id"`
	Name        string    `json:"foodName" db:"name"`
	Category    string    `json:"category" db:"category"`
	Price       float64   `json:"price" db:"price"`
	Description string    `json:"description" db:"description"`
	Image       string    `json:"image" db:"image"`
	Origin      string    `json:"origin" db:"origin"`
	Quantity    int       `json:"qty" db:"quantity"`
	OwnerEmail  string    `json:"user_email" db:"owner_email"`
	OwnerName   string    `json:"user_name" db:"owner_name"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
}

// FoodRequest represents the request payload for creating or replacing a food.
// The same shape serves both POST /foods and PUT /foods/{id}; the identifier
// always comes from the server or the path, never the body.
type FoodRequest struct {
	Name        string  `json:"foodName"`
	Category    string  `json:"category"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	Image       string  `json:"image"`
	Origin      string  `json:"origin"`
	Quantity    int     `json:"qty"`
	OwnerEmail  string  `json:"user_email"`
	OwnerName   string  `json:"user_name"`
}

// QuantityPatch represents the request payload for a quantity-only update.
type QuantityPatch struct {
	Quantity int `json:"quantity"`
}
