package repository

import (
	"context"

	"github.com/google/uuid"

	"restaurant-api/internal/model"
)

// UserRepository defines the interface for user-record data access.
type UserRepository interface {
	// Create inserts a new user record unconditionally.
	Create(ctx context.Context, user *model.User) error

	// GetAll retrieves every user record.
	GetAll(ctx context.Context) ([]model.User, error)
}

// FoodRepository defines the interface for menu-item data access.
type FoodRepository interface {
	// Create inserts a new food unconditionally.
	Create(ctx context.Context, food *model.Food) error

	// CreateBatch inserts multiple foods in a single round trip.
	CreateBatch(ctx context.Context, foods []model.Food) error

	// List retrieves foods, optionally filtered by owner email.
	// An empty ownerEmail returns the whole catalogue.
	List(ctx context.Context, ownerEmail string) ([]model.Food, error)

	// ListAll retrieves the whole catalogue. A limit of zero or less
	// materializes every row; a positive limit pages with offset.
	ListAll(ctx context.Context, limit, offset int) ([]model.Food, error)

	// GetByID retrieves a single food, or nil when no row matches.
	GetByID(ctx context.Context, id uuid.UUID) (*model.Food, error)

	// Replace upserts the food under its ID: all mutable fields are
	// replaced when the row exists, and the row is created with that ID
	// when it does not.
	Replace(ctx context.Context, food *model.Food) (model.UpdateResult, error)

	// UpdateQuantity sets only the quantity field. A missing ID yields a
	// matched count of zero, not an error.
	UpdateQuantity(ctx context.Context, id uuid.UUID, quantity int) (model.UpdateResult, error)

	// Count returns the number of foods in the catalogue.
	Count(ctx context.Context) (int64, error)
}

// OrderRepository defines the interface for order data access.
type OrderRepository interface {
	// Create inserts a new order unconditionally.
	Create(ctx context.Context, order *model.Order) error

	// List retrieves orders sorted descending by quantity ordered,
	// optionally filtered by the ordering user's email.
	List(ctx context.Context, orderedBy string) ([]model.Order, error)

	// Delete removes an order by ID. A missing ID yields a deleted count
	// of zero, not an error.
	Delete(ctx context.Context, id uuid.UUID) (model.DeleteResult, error)

	// TopSelling groups orders by food reference, sums the quantity per
	// group and returns the top groups sorted descending by total.
	TopSelling(ctx context.Context, limit int) ([]model.TopSellingItem, error)
}
