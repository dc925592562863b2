package service

import (
	"context"

	"github.com/google/uuid"

	"restaurant-api/internal/model"
)

// FoodService defines operations for menu catalogue management.
type FoodService interface {
	// Create stores a new menu item and returns it with its generated ID.
	Create(ctx context.Context, req *model.FoodRequest) (*model.Food, error)

	// List retrieves menu items, optionally filtered by owner email.
	List(ctx context.Context, ownerEmail string) ([]model.Food, error)

	// ListAll retrieves the whole catalogue, optionally paged.
	ListAll(ctx context.Context, limit, offset int) ([]model.Food, error)

	// Get retrieves a single menu item by ID.
	Get(ctx context.Context, id uuid.UUID) (*model.Food, error)

	// Replace upserts a menu item under the given ID.
	Replace(ctx context.Context, id uuid.UUID, req *model.FoodRequest) (model.UpdateResult, error)

	// PatchQuantity updates only the quantity of a menu item.
	PatchQuantity(ctx context.Context, id uuid.UUID, quantity int) (model.UpdateResult, error)
}

// OrderService defines operations for the order ledger.
type OrderService interface {
	// Place stores a new order and returns it with its generated ID.
	Place(ctx context.Context, req *model.OrderRequest) (*model.Order, error)

	// List retrieves orders for the authenticated caller, enforcing the
	// owner-scoping rule on the optional email filter.
	List(ctx context.Context, callerEmail, filterEmail string) ([]model.Order, error)

	// Delete removes an order by ID.
	Delete(ctx context.Context, id uuid.UUID) (model.DeleteResult, error)

	// TopSelling returns the best-selling menu items by total quantity
	// ordered. A non-positive limit falls back to the default of 6.
	TopSelling(ctx context.Context, limit int) ([]model.TopSellingItem, error)
}

// UserService defines operations for the user directory.
type UserService interface {
	// Create stores a new user record.
	Create(ctx context.Context, req *model.UserRequest) (*model.User, error)

	// List retrieves every user record.
	List(ctx context.Context) ([]model.User, error)
}
