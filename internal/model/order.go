package model

import (
	"time"

	"github.com/google/uuid"
)

// Order represents a purchase order for a single menu item. Orders are
// append-only: created at purchase time and never mutated afterwards,
// only deleted.
type Order struct {
	ID        uuid.UUID `json:"id" db:"id"`
	FoodID    string    `json:"foodUID" db:"food_id"`
	Quantity  int       `json:"dishOrdered" db:"quantity"`
	OrderedBy string    `json:"orderedBy" db:"ordered_by"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

// OrderRequest represents the request payload for placing an order.
// The food reference is an opaque string: the ledger does not check that
// it names an existing menu item.
type OrderRequest struct {
	FoodID    string `json:"foodUID"`
	Quantity  int    `json:"dishOrdered"`
	OrderedBy string `json:"orderedBy"`
}

// TopSellingItem is one row of the top-seller aggregation: a food reference
// and the summed quantity ordered across all orders for it.
type TopSellingItem struct {
	FoodID      string `json:"foodUID"`
	TotalOrders int64  `json:"totalOrders"`
}
