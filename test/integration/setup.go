package integration

import (
	"context"
	"testing"
	"time"

	"catalog-api/internal/config"
	"catalog-api/internal/database"
	"catalog-api/internal/seed"

	"github.com/rs/zerolog"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

// TestDB represents a test database instance.
type TestDB struct {
	Container *postgres.PostgresContainer
	DB        *database.DB
}

// SetupTestDB starts a PostgreSQL container, opens the catalogue database on
// it and migrates the schema.
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
				WithStartupTimeout(60*time.Second)),
	)
	if err != nil {
		t.Fatalf("failed to start postgres container: %v", err)
	}

	host, err := postgresContainer.Host(ctx)
	if err != nil {
		t.Fatalf("failed to get container host: %v", err)
	}
	port, err := postgresContainer.MappedPort(ctx, "5432/tcp")
	if err != nil {
		t.Fatalf("failed to get mapped port: %v", err)
	}

	dbConfig := config.DatabaseConfig{
		Host:            host,
		Port:            port.Int(),
		User:            "testuser",
		Password:        "testpass",
		Database:        "testdb",
		SSLMode:         "disable",
		MaxConnections:  10,
		MinConnections:  2,
		MaxConnLifetime: 300,
	}

	db, err := database.Open(ctx, dbConfig, zerolog.Nop())
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}

	if err := database.Migrate(ctx, db.Gorm); err != nil {
		t.Fatalf("failed to migrate schema: %v", err)
	}

	t.Cleanup(func() {
		if err := db.Close(); err != nil {
			t.Logf("failed to close database: %v", err)
		}
		if err := postgresContainer.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	return &TestDB{
		Container: postgresContainer,
		DB:        db,
	}
}

// SeedCatalogue inserts the built-in sample catalogue.
func SeedCatalogue(t *testing.T, db *database.DB) {
	t.Helper()

	fx, err := seed.DefaultFixture()
	if err != nil {
		t.Fatalf("failed to load default fixture: %v", err)
	}

	if _, err := seed.NewSeeder(db.Gorm, zerolog.Nop()).Seed(context.Background(), fx, false); err != nil {
		t.Fatalf("failed to seed catalogue: %v", err)
	}
}

// CleanupDB removes all rows and resets the id sequences.
func CleanupDB(t *testing.T, db *database.DB) {
	t.Helper()

	_, err := db.Pool.Exec(context.Background(),
		"TRUNCATE TABLE orders, products, customers, categories RESTART IDENTITY CASCADE")
	if err != nil {
		t.Fatalf("failed to clean tables: %v", err)
	}
}
