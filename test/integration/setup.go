package integration

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
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

// Session tokens installed by SeedAuth.
const (
	UserToken    = "session-user"
	AdminToken   = "session-admin"
	ExpiredToken = "session-expired"
)

// SetupTestDB creates a PostgreSQL test container and connection pool.
func SetupTestDB(t *testing.T) *TestDB {
	t.Helper()

	ctx := context.Background()

	// Create PostgreSQL container
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

	// Get connection string
	connStr, err := postgresContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		t.Fatalf("failed to get connection string: %v", err)
	}

	// Create connection pool
	poolConfig, err := pgxpool.ParseConfig(connStr)
	if err != nil {
		t.Fatalf("failed to parse connection string: %v", err)
	}
	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		t.Fatalf("failed to create connection pool: %v", err)
	}

	// Verify connection
	if err := pool.Ping(ctx); err != nil {
		t.Fatalf("failed to ping database: %v", err)
	}

	// Create schema
	createSchema(t, pool)

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

// createSchema creates the database schema for testing, including the users
// and sessions tables normally written by the external auth system.
func createSchema(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()

	ctx := context.Background()

	schema := `
		CREATE TABLE IF NOT EXISTS users (
			id TEXT PRIMARY KEY,
			role TEXT NOT NULL DEFAULT 'user',
			email_verified BOOLEAN NOT NULL DEFAULT FALSE,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);

		CREATE TABLE IF NOT EXISTS sessions (
			token TEXT PRIMARY KEY,
			user_id TEXT NOT NULL REFERENCES users(id),
			expires_at TIMESTAMPTZ NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);

		CREATE TABLE IF NOT EXISTS products (
			id BIGSERIAL PRIMARY KEY,
			name TEXT NOT NULL,
			description TEXT,
			price DECIMAL(10,2) NOT NULL CHECK (price >= 0),
			image_url TEXT NOT NULL DEFAULT '',
			category TEXT NOT NULL DEFAULT '',
			rating DECIMAL(3,2) NOT NULL DEFAULT 0,
			review_count INT NOT NULL DEFAULT 0,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);

		CREATE TABLE IF NOT EXISTS cart_items (
			id BIGSERIAL PRIMARY KEY,
			user_id TEXT NOT NULL,
			product_id BIGINT NOT NULL REFERENCES products(id),
			quantity INT NOT NULL CHECK (quantity > 0),
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			UNIQUE (user_id, product_id)
		);
		CREATE INDEX IF NOT EXISTS idx_cart_items_user_id ON cart_items(user_id);

		CREATE TABLE IF NOT EXISTS favorites (
			id BIGSERIAL PRIMARY KEY,
			user_id TEXT NOT NULL,
			product_id BIGINT NOT NULL,
			name TEXT NOT NULL,
			image_url TEXT NOT NULL DEFAULT '',
			price DECIMAL(10,2) NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			UNIQUE (user_id, product_id)
		);
		CREATE INDEX IF NOT EXISTS idx_favorites_user_id ON favorites(user_id);

		CREATE TABLE IF NOT EXISTS orders (
			id BIGSERIAL PRIMARY KEY,
			user_id TEXT NOT NULL,
			product_id BIGINT NOT NULL,
			name TEXT NOT NULL,
			image_url TEXT,
			quantity INT NOT NULL,
			price DECIMAL(10,2) NOT NULL,
			total DECIMAL(10,2) NOT NULL,
			status TEXT NOT NULL DEFAULT 'PENDING',
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);
		CREATE INDEX IF NOT EXISTS idx_orders_user_id ON orders(user_id);
	`

	_, err := pool.Exec(ctx, schema)
	if err != nil {
		t.Fatalf("failed to create schema: %v", err)
	}
}

// SeedAuth installs test users and sessions: a regular user, an admin, and
// an expired session.
func SeedAuth(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()

	ctx := context.Background()

	users := []struct {
		id            string
		role          string
		emailVerified bool
	}{
		{"user-1", "user", true},
		{"admin-1", "admin", true},
	}
	for _, u := range users {
		_, err := pool.Exec(ctx,
			"INSERT INTO users (id, role, email_verified) VALUES ($1, $2, $3) ON CONFLICT (id) DO NOTHING",
			u.id, u.role, u.emailVerified,
		)
		if err != nil {
			t.Fatalf("failed to seed user %s: %v", u.id, err)
		}
	}

	sessions := []struct {
		token     string
		userID    string
		expiresAt time.Time
	}{
		{UserToken, "user-1", time.Now().Add(24 * time.Hour)},
		{AdminToken, "admin-1", time.Now().Add(24 * time.Hour)},
		{ExpiredToken, "user-1", time.Now().Add(-1 * time.Hour)},
	}
	for _, s := range sessions {
		_, err := pool.Exec(ctx,
			"INSERT INTO sessions (token, user_id, expires_at) VALUES ($1, $2, $3) ON CONFLICT (token) DO NOTHING",
			s.token, s.userID, s.expiresAt,
		)
		if err != nil {
			t.Fatalf("failed to seed session %s: %v", s.token, err)
		}
	}
}

// SeedProducts inserts test product data and returns the generated IDs.
func SeedProducts(t *testing.T, pool *pgxpool.Pool) []int64 {
	t.Helper()

	ctx := context.Background()

	products := []struct {
		name     string
		price    float64
		category string
	}{
		{"Test Product 1", 10.00, "Category A"},
		{"Test Product 2", 20.00, "Category B"},
		{"Test Product 3", 30.00, "Category A"},
		{"Test Product 4", 40.00, "Category C"},
		{"Test Product 5", 50.00, "Category B"},
	}

	ids := make([]int64, 0, len(products))
	for _, p := range products {
		var id int64
		err := pool.QueryRow(ctx,
			"INSERT INTO products (name, price, category) VALUES ($1, $2, $3) RETURNING id",
			p.name, p.price, p.category,
		).Scan(&id)
		if err != nil {
			t.Fatalf("failed to seed product %s: %v", p.name, err)
		}
		ids = append(ids, id)
	}

	return ids
}

// CleanupDB cleans all data from the domain tables. Users and sessions are
// left in place so seeded credentials survive between subtests.
func CleanupDB(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()

	ctx := context.Background()

	tables := []string{"orders", "favorites", "cart_items", "products"}
	for _, table := range tables {
		_, err := pool.Exec(ctx, fmt.Sprintf("DELETE FROM %s", table))
		if err != nil {
			t.Logf("failed to clean table %s: %v", table, err)
		}
	}
}
