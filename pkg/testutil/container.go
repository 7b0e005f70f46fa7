// Package testutil provides testing utilities for the dashboard service.
// It includes a testcontainers PostgreSQL harness seeded with a material
// description table, plus a sqlmock wrapper for unit tests.
package testutil

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

// PostgresContainer wraps a testcontainers PostgreSQL instance
type PostgresContainer struct {
	*postgres.PostgresContainer
	DSN string
}

// SkipUnlessIntegration skips the test unless MATDASH_TEST_INTEGRATION is set.
// Container tests need a Docker daemon, which is not available everywhere.
func SkipUnlessIntegration(t *testing.T) {
	t.Helper()
	if os.Getenv("MATDASH_TEST_INTEGRATION") == "" {
		t.Skip("set MATDASH_TEST_INTEGRATION=1 to run integration tests")
	}
}

// NewPostgresContainer creates a new PostgreSQL test container.
//
// Usage:
//
//	func TestMain(m *testing.M) {
//	    ctx := context.Background()
//	    container, err := testutil.NewPostgresContainer(ctx)
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    defer container.Terminate(ctx)
//
//	    code := m.Run()
//	    os.Exit(code)
//	}
func NewPostgresContainer(ctx context.Context) (*PostgresContainer, error) {
	container, err := postgres.RunContainer(ctx,
		testcontainers.WithImage("postgres:15-alpine"),
		postgres.WithDatabase("matdash_test"),
		postgres.WithUsername("test"),
		postgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to start postgres container: %w", err)
	}

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		container.Terminate(ctx)
		return nil, fmt.Errorf("failed to get connection string: %w", err)
	}

	return &PostgresContainer{
		PostgresContainer: container,
		DSN:               dsn,
	}, nil
}

// Connect returns a sqlx.DB connection to the container
func (c *PostgresContainer) Connect(ctx context.Context) (*sqlx.DB, error) {
	db, err := sqlx.ConnectContext(ctx, "postgres", c.DSN)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to test database: %w", err)
	}
	return db, nil
}

// Terminate stops and removes the container
func (c *PostgresContainer) Terminate(ctx context.Context) error {
	return c.PostgresContainer.Terminate(ctx)
}

// CreateMaterialTable creates the material description source table used by
// the aggregation queries.
func (c *PostgresContainer) CreateMaterialTable(ctx context.Context, db *sqlx.DB, table string) error {
	schema := fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS %s (
			language_code VARCHAR(2) NOT NULL,
			material_id VARCHAR(40) NOT NULL,
			description VARCHAR(40) NOT NULL
		)
	`, table)

	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("failed to create material table: %w", err)
	}
	return nil
}

// MaterialRow is a seed row for the material description table.
type MaterialRow struct {
	Language    string
	MaterialID  string
	Description string
}

// SeedMaterials inserts seed rows into the material description table.
func (c *PostgresContainer) SeedMaterials(ctx context.Context, db *sqlx.DB, table string, rows []MaterialRow) error {
	stmt := fmt.Sprintf(
		"INSERT INTO %s (language_code, material_id, description) VALUES ($1, $2, $3)",
		table,
	)
	for _, r := range rows {
		if _, err := db.ExecContext(ctx, stmt, r.Language, r.MaterialID, r.Description); err != nil {
			return fmt.Errorf("failed to seed material row: %w", err)
		}
	}
	return nil
}
