package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"restaurant-api/internal/auth"
	"restaurant-api/internal/model"
	"restaurant-api/internal/repository"
)

// DefaultTopSellingLimit bounds the top-seller aggregation when the caller
// does not supply a limit.
const DefaultTopSellingLimit = 6

// orderService implements OrderService.
type orderService struct {
	orderRepo repository.OrderRepository
	logger    zerolog.Logger
}

// NewOrderService creates a new order service.
func NewOrderService(orderRepo repository.OrderRepository, logger zerolog.Logger) OrderService {
	return &orderService{
		orderRepo: orderRepo,
		logger:    logger.With().Str("service", "order").Logger(),
	}
}

// Place stores a new order. The referenced menu item is not checked for
// existence or stock, and no quantity is decremented anywhere: the ledger
// and the catalogue are deliberately uncoordinated.
func (s *orderService) Place(ctx context.Context, req *model.OrderRequest) (*model.Order, error) {
	order := &model.Order{
		ID:        uuid.New(),
		FoodID:    req.FoodID,
		Quantity:  req.Quantity,
		OrderedBy: req.OrderedBy,
		CreatedAt: time.Now(),
	}

	if err := s.orderRepo.Create(ctx, order); err != nil {
		s.logger.Error().Err(err).Msg("failed to place order")
		return nil, fmt.Errorf("failed to place order: %w", err)
	}

	s.logger.Debug().
		Str("order_id", order.ID.String()).
		Str("food_id", order.FoodID).
		Msg("order placed")

	return order, nil
}

// List retrieves orders for the authenticated caller. The owner-scoping
// guard rejects a filter naming anyone other than the caller; an absent
// filter returns the full ledger.
func (s *orderService) List(ctx context.Context, callerEmail, filterEmail string) ([]model.Order, error) {
	if err := auth.AuthorizeOwnerScoped(callerEmail, filterEmail); err != nil {
		s.logger.Warn().
			Str("caller_email", callerEmail).
			Str("filter_email", filterEmail).
			Msg("owner-scope check failed")
		return nil, err
	}

	orders, err := s.orderRepo.List(ctx, filterEmail)
	if err != nil {
		s.logger.Error().Err(err).Str("filter_email", filterEmail).Msg("failed to list orders")
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}

	s.logger.Debug().
		Int("count", len(orders)).
		Str("filter_email", filterEmail).
		Msg("listed orders")

	return orders, nil
}

// Delete removes an order by ID. There is no ownership check: any caller
// who knows an order identifier may delete it, matching the source
// contract. Deleting an unknown ID reports a zero count.
func (s *orderService) Delete(ctx context.Context, id uuid.UUID) (model.DeleteResult, error) {
	result, err := s.orderRepo.Delete(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Str("order_id", id.String()).Msg("failed to delete order")
		return model.DeleteResult{}, fmt.Errorf("failed to delete order: %w", err)
	}

	return result, nil
}

// TopSelling returns the best-selling menu items by total quantity ordered.
func (s *orderService) TopSelling(ctx context.Context, limit int) ([]model.TopSellingItem, error) {
	if limit <= 0 {
		limit = DefaultTopSellingLimit
	}

	items, err := s.orderRepo.TopSelling(ctx, limit)
	if err != nil {
		s.logger.Error().Err(err).Int("limit", limit).Msg("failed to aggregate top-selling items")
		return nil, fmt.Errorf("failed to aggregate top-selling items: %w", err)
	}

	return items, nil
}
