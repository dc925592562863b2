package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"restaurant-api/internal/model"
)

const foodColumns = "id, name, category, price, description, image, origin, quantity, owner_email, owner_name, created_at"

// foodRepository implements the FoodRepository interface using PostgreSQL.
type foodRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewFoodRepository creates a new PostgreSQL-backed food repository.
func NewFoodRepository(pool *pgxpool.Pool, logger zerolog.Logger) FoodRepository {
	return &foodRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "food").Logger(),
	}
}

// Create inserts a new food unconditionally.
func (r *foodRepository) Create(ctx context.Context, food *model.Food) error {
	query := `
		INSERT INTO foods (` + foodColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	_, err := r.pool.Exec(ctx, query,
		food.ID, food.Name, food.Category, food.Price, food.Description,
		food.Image, food.Origin, food.Quantity, food.OwnerEmail, food.OwnerName,
		food.CreatedAt,
	)
	if err != nil {
		r.logger.Error().Err(err).Str("food_id", food.ID.String()).Msg("failed to create food")
		return fmt.Errorf("failed to create food: %w", err)
	}

	r.logger.Debug().Str("food_id", food.ID.String()).Msg("food created")
	return nil
}

// CreateBatch inserts multiple foods in a single round trip.
func (r *foodRepository) CreateBatch(ctx context.Context, foods []model.Food) error {
	if len(foods) == 0 {
		return nil
	}

	query := `
		INSERT INTO foods (` + foodColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	batch := &pgx.Batch{}
	for _, food := range foods {
		batch.Queue(query,
			food.ID, food.Name, food.Category, food.Price, food.Description,
			food.Image, food.Origin, food.Quantity, food.OwnerEmail, food.OwnerName,
			food.CreatedAt,
		)
	}

	results := r.pool.SendBatch(ctx, batch)
	defer results.Close()

	for i := 0; i < len(foods); i++ {
		if _, err := results.Exec(); err != nil {
			r.logger.Error().
				Err(err).
				Str("food_id", foods[i].ID.String()).
				Msg("failed to create food in batch")
			return fmt.Errorf("failed to create food in batch: %w", err)
		}
	}

	r.logger.Debug().Int("count", len(foods)).Msg("foods created in batch")
	return nil
}

// List retrieves foods, optionally filtered by owner email.
func (r *foodRepository) List(ctx context.Context, ownerEmail string) ([]model.Food, error) {
	query := `SELECT ` + foodColumns + ` FROM foods`
	args := []interface{}{}
	if ownerEmail != "" {
		query += ` WHERE owner_email = $1`
		args = append(args, ownerEmail)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		r.logger.Error().Err(err).Str("owner_email", ownerEmail).Msg("failed to query foods")
		return nil, fmt.Errorf("failed to query foods: %w", err)
	}
	defer rows.Close()

	return scanFoods(rows, r.logger)
}

// ListAll retrieves the whole catalogue, optionally paged.
func (r *foodRepository) ListAll(ctx context.Context, limit, offset int) ([]model.Food, error) {
	query := `SELECT ` + foodColumns + ` FROM foods`
	args := []interface{}{}
	if limit > 0 {
		query += ` LIMIT $1 OFFSET $2`
		args = append(args, limit, offset)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		r.logger.Error().Err(err).
			Int("limit", limit).
			Int("offset", offset).
			Msg("failed to query all foods")
		return nil, fmt.Errorf("failed to query all foods: %w", err)
	}
	defer rows.Close()

	return scanFoods(rows, r.logger)
}

// GetByID retrieves a single food, or nil when no row matches.
func (r *foodRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Food, error) {
	query := `SELECT ` + foodColumns + ` FROM foods WHERE id = $1`

	var f model.Food
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&f.ID, &f.Name, &f.Category, &f.Price, &f.Description,
		&f.Image, &f.Origin, &f.Quantity, &f.OwnerEmail, &f.OwnerName,
		&f.CreatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			r.logger.Debug().Str("food_id", id.String()).Msg("food not found")
			return nil, nil
		}
		r.logger.Error().Err(err).Str("food_id", id.String()).Msg("failed to query food")
		return nil, fmt.Errorf("failed to query food: %w", err)
	}

	return &f, nil
}

// Replace upserts the food under its ID. The created_at column keeps its
// original value when the row already exists; every other mutable field is
// overwritten.
func (r *foodRepository) Replace(ctx context.Context, food *model.Food) (model.UpdateResult, error) {
	query := `
		INSERT INTO foods (` + foodColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			category = EXCLUDED.category,
			price = EXCLUDED.price,
			description = EXCLUDED.description,
			image = EXCLUDED.image,
			origin = EXCLUDED.origin,
			quantity = EXCLUDED.quantity,
			owner_email = EXCLUDED.owner_email,
			owner_name = EXCLUDED.owner_name
		RETURNING (xmax = 0) AS inserted
	`

	// xmax = 0 distinguishes a fresh insert from a conflict update.
	var inserted bool
	err := r.pool.QueryRow(ctx, query,
		food.ID, food.Name, food.Category, food.Price, food.Description,
		food.Image, food.Origin, food.Quantity, food.OwnerEmail, food.OwnerName,
		food.CreatedAt,
	).Scan(&inserted)
	if err != nil {
		r.logger.Error().Err(err).Str("food_id", food.ID.String()).Msg("failed to replace food")
		return model.UpdateResult{}, fmt.Errorf("failed to replace food: %w", err)
	}

	if inserted {
		id := food.ID
		r.logger.Debug().Str("food_id", id.String()).Msg("food upserted as new document")
		return model.UpdateResult{UpsertedID: &id}, nil
	}

	r.logger.Debug().Str("food_id", food.ID.String()).Msg("food replaced")
	return model.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil
}

// UpdateQuantity sets only the quantity field.
func (r *foodRepository) UpdateQuantity(ctx context.Context, id uuid.UUID, quantity int) (model.UpdateResult, error) {
	query := `UPDATE foods SET quantity = $2 WHERE id = $1`

	tag, err := r.pool.Exec(ctx, query, id, quantity)
	if err != nil {
		r.logger.Error().Err(err).Str("food_id", id.String()).Msg("failed to update food quantity")
		return model.UpdateResult{}, fmt.Errorf("failed to update food quantity: %w", err)
	}

	affected := tag.RowsAffected()
	r.logger.Debug().
		Str("food_id", id.String()).
		Int("quantity", quantity).
		Int64("matched", affected).
		Msg("food quantity updated")

	return model.UpdateResult{MatchedCount: affected, ModifiedCount: affected}, nil
}

// Count returns the number of foods in the catalogue.
func (r *foodRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM foods`).Scan(&count)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to count foods")
		return 0, fmt.Errorf("failed to count foods: %w", err)
	}
	return count, nil
}

// scanFoods collects food rows, closing over the shared column order.
func scanFoods(rows pgx.Rows, logger zerolog.Logger) ([]model.Food, error) {
	var foods []model.Food
	for rows.Next() {
		var f model.Food
		err := rows.Scan(
			&f.ID, &f.Name, &f.Category, &f.Price, &f.Description,
			&f.Image, &f.Origin, &f.Quantity, &f.OwnerEmail, &f.OwnerName,
			&f.CreatedAt,
		)
		if err != nil {
			logger.Error().Err(err).Msg("failed to scan food row")
			return nil, fmt.Errorf("failed to scan food: %w", err)
		}
		foods = append(foods, f)
	}

	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("error iterating food rows")
		return nil, fmt.Errorf("error iterating foods: %w", err)
	}

	return foods, nil
}
