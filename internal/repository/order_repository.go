package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"restaurant-api/internal/model"
)

// orderRepository implements the OrderRepository interface using PostgreSQL.
type orderRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewOrderRepository creates a new PostgreSQL-backed order repository.
func NewOrderRepository(pool *pgxpool.Pool, logger zerolog.Logger) OrderRepository {
	return &orderRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "order").Logger(),
	}
}

// Create inserts a new order unconditionally. No stock check or decrement
// happens here: placing an order and depleting the menu item's quantity are
// uncoordinated operations.
func (r *orderRepository) Create(ctx context.Context, order *model.Order) error {
	query := `
		INSERT INTO orders (id, food_id, quantity, ordered_by, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.pool.Exec(ctx, query,
		order.ID, order.FoodID, order.Quantity, order.OrderedBy, order.CreatedAt,
	)
	if err != nil {
		r.logger.Error().Err(err).Str("order_id", order.ID.String()).Msg("failed to create order")
		return fmt.Errorf("failed to create order: %w", err)
	}

	r.logger.Debug().Str("order_id", order.ID.String()).Msg("order created")
	return nil
}

// List retrieves orders sorted descending by quantity ordered. The sort is
// a pass-through of the source behavior: not chronological, and ties resolve
// in storage order.
func (r *orderRepository) List(ctx context.Context, orderedBy string) ([]model.Order, error) {
	query := `SELECT id, food_id, quantity, ordered_by, created_at FROM orders`
	args := []interface{}{}
	if orderedBy != "" {
		query += ` WHERE ordered_by = $1`
		args = append(args, orderedBy)
	}
	query += ` ORDER BY quantity DESC`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		r.logger.Error().Err(err).Str("ordered_by", orderedBy).Msg("failed to query orders")
		return nil, fmt.Errorf("failed to query orders: %w", err)
	}
	defer rows.Close()

	var orders []model.Order
	for rows.Next() {
		var o model.Order
		err := rows.Scan(&o.ID, &o.FoodID, &o.Quantity, &o.OrderedBy, &o.CreatedAt)
		if err != nil {
			r.logger.Error().Err(err).Msg("failed to scan order row")
			return nil, fmt.Errorf("failed to scan order: %w", err)
		}
		orders = append(orders, o)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating order rows")
		return nil, fmt.Errorf("error iterating orders: %w", err)
	}

	return orders, nil
}

// Delete removes an order by ID.
func (r *orderRepository) Delete(ctx context.Context, id uuid.UUID) (model.DeleteResult, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM orders WHERE id = $1`, id)
	if err != nil {
		r.logger.Error().Err(err).Str("order_id", id.String()).Msg("failed to delete order")
		return model.DeleteResult{}, fmt.Errorf("failed to delete order: %w", err)
	}

	deleted := tag.RowsAffected()
	r.logger.Debug().
		Str("order_id", id.String()).
		Int64("deleted", deleted).
		Msg("order deleted")

	return model.DeleteResult{DeletedCount: deleted}, nil
}

// TopSelling groups all orders by food reference, sums the ordered quantity
// per group and returns the top groups sorted descending by total. Computed
// on demand over the whole ledger; there is no materialized rollup.
func (r *orderRepository) TopSelling(ctx context.Context, limit int) ([]model.TopSellingItem, error) {
	query := `
		SELECT food_id, SUM(quantity) AS total_orders
		FROM orders
		GROUP BY food_id
		ORDER BY total_orders DESC
		LIMIT $1
	`

	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		r.logger.Error().Err(err).Int("limit", limit).Msg("failed to query top-selling items")
		return nil, fmt.Errorf("failed to query top-selling items: %w", err)
	}
	defer rows.Close()

	var items []model.TopSellingItem
	for rows.Next() {
		var item model.TopSellingItem
		if err := rows.Scan(&item.FoodID, &item.TotalOrders); err != nil {
			r.logger.Error().Err(err).Msg("failed to scan top-selling row")
			return nil, fmt.Errorf("failed to scan top-selling item: %w", err)
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating top-selling rows")
		return nil, fmt.Errorf("error iterating top-selling items: %w", err)
	}

	return items, nil
}
