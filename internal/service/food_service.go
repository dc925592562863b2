package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"restaurant-api/internal/model"
	"restaurant-api/internal/repository"
)

// foodService implements FoodService.
type foodService struct {
	foodRepo repository.FoodRepository
	logger   zerolog.Logger
}

// NewFoodService creates a new food service.
func NewFoodService(foodRepo repository.FoodRepository, logger zerolog.Logger) FoodService {
	return &foodService{
		foodRepo: foodRepo,
		logger:   logger.With().Str("service", "food").Logger(),
	}
}

// Create stores a new menu item. Fields are taken as given: the catalogue
// accepts any submitter payload without validation.
func (s *foodService) Create(ctx context.Context, req *model.FoodRequest) (*model.Food, error) {
	food := &model.Food{
		ID:          uuid.New(),
		Name:        req.Name,
		Category:    req.Category,
		Price:       req.Price,
		Description: req.Description,
		Image:       req.Image,
		Origin:      req.Origin,
		Quantity:    req.Quantity,
		OwnerEmail:  req.OwnerEmail,
		OwnerName:   req.OwnerName,
		CreatedAt:   time.Now(),
	}

	if err := s.foodRepo.Create(ctx, food); err != nil {
		s.logger.Error().Err(err).Msg("failed to create food")
		return nil, fmt.Errorf("failed to create food: %w", err)
	}

	s.logger.Debug().Str("food_id", food.ID.String()).Msg("food created")
	return food, nil
}

// List retrieves menu items, optionally filtered by owner email.
func (s *foodService) List(ctx context.Context, ownerEmail string) ([]model.Food, error) {
	foods, err := s.foodRepo.List(ctx, ownerEmail)
	if err != nil {
		s.logger.Error().Err(err).Str("owner_email", ownerEmail).Msg("failed to list foods")
		return nil, fmt.Errorf("failed to list foods: %w", err)
	}

	s.logger.Debug().
		Int("count", len(foods)).
		Str("owner_email", ownerEmail).
		Msg("listed foods")

	return foods, nil
}

// ListAll retrieves the whole catalogue. Paging is additive: with no limit
// the entire collection is materialized, matching the unpaged contract.
func (s *foodService) ListAll(ctx context.Context, limit, offset int) ([]model.Food, error) {
	if limit < 0 {
		limit = 0
	}
	if offset < 0 {
		offset = 0
	}

	foods, err := s.foodRepo.ListAll(ctx, limit, offset)
	if err != nil {
		s.logger.Error().Err(err).
			Int("limit", limit).
			Int("offset", offset).
			Msg("failed to list all foods")
		return nil, fmt.Errorf("failed to list all foods: %w", err)
	}

	return foods, nil
}

// Get retrieves a single menu item by ID.
func (s *foodService) Get(ctx context.Context, id uuid.UUID) (*model.Food, error) {
	food, err := s.foodRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Str("food_id", id.String()).Msg("failed to get food")
		return nil, fmt.Errorf("failed to get food: %w", err)
	}

	if food == nil {
		s.logger.Debug().Str("food_id", id.String()).Msg("food not found")
		return nil, model.ErrFoodNotFound
	}

	return food, nil
}

// Replace upserts a menu item: an unknown ID creates a document bearing that
// ID rather than failing, so "not found, then replace" behaves as "create".
func (s *foodService) Replace(ctx context.Context, id uuid.UUID, req *model.FoodRequest) (model.UpdateResult, error) {
	food := &model.Food{
		ID:          id,
		Name:        req.Name,
		Category:    req.Category,
		Price:       req.Price,
		Description: req.Description,
		Image:       req.Image,
		Origin:      req.Origin,
		Quantity:    req.Quantity,
		OwnerEmail:  req.OwnerEmail,
		OwnerName:   req.OwnerName,
		CreatedAt:   time.Now(),
	}

	result, err := s.foodRepo.Replace(ctx, food)
	if err != nil {
		s.logger.Error().Err(err).Str("food_id", id.String()).Msg("failed to replace food")
		return model.UpdateResult{}, fmt.Errorf("failed to replace food: %w", err)
	}

	return result, nil
}

// PatchQuantity updates only the quantity field. A zero matched count is a
// valid outcome, not an error; callers inspect the result to detect no-ops.
// The new quantity is not range-checked.
func (s *foodService) PatchQuantity(ctx context.Context, id uuid.UUID, quantity int) (model.UpdateResult, error) {
	result, err := s.foodRepo.UpdateQuantity(ctx, id, quantity)
	if err != nil {
		s.logger.Error().Err(err).Str("food_id", id.String()).Msg("failed to patch food quantity")
		return model.UpdateResult{}, fmt.Errorf("failed to patch food quantity: %w", err)
	}

	return result, nil
}
