// Package seed populates an empty menu catalogue from a seed file, read
// from the local filesystem or from S3.
package seed

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"restaurant-api/internal/model"
	"restaurant-api/internal/repository"
)

// Apply loads the seed from the given location and inserts it into the
// catalogue. It is a no-op when the catalogue already has items, so a
// restart never duplicates the seed.
func Apply(ctx context.Context, foodRepo repository.FoodRepository, loader Loader, location string, logger zerolog.Logger) error {
	logger = logger.With().Str("component", "seed").Logger()

	count, err := foodRepo.Count(ctx)
	if err != nil {
		return fmt.Errorf("failed to count foods before seeding: %w", err)
	}

	if count > 0 {
		logger.Info().Int64("existing", count).Msg("catalogue not empty, skipping seed")
		return nil
	}

	items, err := loader.Load(ctx, location)
	if err != nil {
		return fmt.Errorf("failed to load seed: %w", err)
	}

	if len(items) == 0 {
		logger.Info().Msg("seed is empty, nothing to insert")
		return nil
	}

	now := time.Now()
	foods := make([]model.Food, len(items))
	for i, item := range items {
		foods[i] = model.Food{
			ID:          uuid.New(),
			Name:        item.Name,
			Category:    item.Category,
			Price:       item.Price,
			Description: item.Description,
			Image:       item.Image,
			Origin:      item.Origin,
			Quantity:    item.Quantity,
			OwnerEmail:  item.OwnerEmail,
			OwnerName:   item.OwnerName,
			CreatedAt:   now,
		}
	}

	if err := foodRepo.CreateBatch(ctx, foods); err != nil {
		return fmt.Errorf("failed to insert seed foods: %w", err)
	}

	logger.Info().Int("count", len(foods)).Msg("menu catalogue seeded")
	return nil
}
