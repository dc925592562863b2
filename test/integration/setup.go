package integration

import (
	"context"
	"fmt"
	"testing"
	"time"

	"restaurant-api/internal/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

// TestDB represents a test database instance.
type TestDB struct {
	Container *postgres.PostgresContainer
	Pool      *pgxpool.Pool
	ConnStr   string
}

// Fixed identifiers for seeded foods, so tests can reference them directly.
var (
	FoodBiryaniID = uuid.MustParse("11111111-1111-1111-1111-111111111111")
	FoodRamenID   = uuid.MustParse("22222222-2222-2222-2222-222222222222")
	FoodTacosID   = uuid.MustParse("33333333-3333-3333-3333-333333333333")
)

// SetupTestDB creates a PostgreSQL test container and connection pool.
func SetupTestDB(t *testing.T) *TestDB {
	t.Helper()

	ctx := context.Background()

	postgresContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second)),
	)
	if err != nil {
		t.Fatalf("failed to start postgres container: %v", err)
	}

	connStr, err := postgresContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		t.Fatalf("failed to get connection string: %v", err)
	}

	poolConfig, err := pgxpool.ParseConfig(connStr)
	if err != nil {
		t.Fatalf("failed to parse connection string: %v", err)
	}
	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		t.Fatalf("failed to create connection pool: %v", err)
	}

	if err := pool.Ping(ctx); err != nil {
		t.Fatalf("failed to ping database: %v", err)
	}

	// Same embedded schema the server applies on startup.
	if err := database.Migrate(ctx, pool, zerolog.Nop()); err != nil {
		t.Fatalf("failed to apply schema: %v", err)
	}

	t.Cleanup(func() {
		pool.Close()
		if err := postgresContainer.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	return &TestDB{
		Container: postgresContainer,
		Pool:      pool,
		ConnStr:   connStr,
	}
}

// SeedFoods inserts a small menu catalogue with fixed identifiers.
func SeedFoods(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()

	ctx := context.Background()

	foods := []struct {
		id       uuid.UUID
		name     string
		category string
		price    float64
		quantity int
		owner    string
	}{
		{FoodBiryaniID, "Chicken Biryani", "Rice", 12.50, 40, "alice@example.com"},
		{FoodRamenID, "Tonkotsu Ramen", "Noodles", 14.00, 25, "alice@example.com"},
		{FoodTacosID, "Fish Tacos", "Mexican", 9.75, 30, "bob@example.com"},
	}

	for _, f := range foods {
		_, err := pool.Exec(ctx,
			`INSERT INTO foods (id, name, category, price, description, image, origin, quantity, owner_email, owner_name)
			 VALUES ($1, $2, $3, $4, '', '', '', $5, $6, '')`,
			f.id, f.name, f.category, f.price, f.quantity, f.owner,
		)
		if err != nil {
			t.Fatalf("failed to seed food %s: %v", f.name, err)
		}
	}
}

// SeedOrders inserts a ledger exercising both owners and repeat purchases
// of the same menu item.
func SeedOrders(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()

	ctx := context.Background()

	orders := []struct {
		foodID    string
		quantity  int
		orderedBy string
	}{
		{FoodBiryaniID.String(), 3, "carol@example.com"},
		{FoodBiryaniID.String(), 2, "dave@example.com"},
		{FoodRamenID.String(), 4, "carol@example.com"},
		{FoodTacosID.String(), 1, "dave@example.com"},
	}

	for _, o := range orders {
		_, err := pool.Exec(ctx,
			"INSERT INTO orders (id, food_id, quantity, ordered_by) VALUES ($1, $2, $3, $4)",
			uuid.New(), o.foodID, o.quantity, o.orderedBy,
		)
		if err != nil {
			t.Fatalf("failed to seed order for %s: %v", o.orderedBy, err)
		}
	}
}

// CleanupDB cleans all data from test tables.
func CleanupDB(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()

	ctx := context.Background()

	tables := []string{"orders", "foods", "users"}
	for _, table := range tables {
		_, err := pool.Exec(ctx, fmt.Sprintf("DELETE FROM %s", table))
		if err != nil {
			t.Logf("failed to clean table %s: %v", table, err)
		}
	}
}
