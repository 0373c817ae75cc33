package postgres_test

import (
	"context"
	"fmt"
	"os"
	"testing"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/destination-service/internal/repository/postgres"
)

// setupTestDB connects to the test database and bootstraps the schema.
// Tests are skipped when no database is reachable.
func setupTestDB(t *testing.T) *postgres.DB {
	t.Helper()

	host := getEnv("TEST_DB_HOST", "localhost")
	port := getEnv("TEST_DB_PORT", "5433")
	user := getEnv("TEST_DB_USER", "postgres")
	password := getEnv("TEST_DB_PASSWORD", "postgres")
	dbname := getEnv("TEST_DB_NAME", "destination_test")
	sslmode := getEnv("TEST_DB_SSLMODE", "disable")

	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		host, port, user, password, dbname, sslmode,
	)

	sqlxDB, err := sqlx.Connect("pgx", dsn)
	if err != nil {
		t.Skipf("Test database unavailable: %v", err)
	}

	db := postgres.NewDBForTest(sqlxDB, zap.NewNop())
	if err := db.Bootstrap(context.Background()); err != nil {
		t.Fatalf("Failed to bootstrap schema: %v", err)
	}

	return db
}

func cleanupTables(t *testing.T, db *postgres.DB) {
	t.Helper()

	for _, table := range []string{"destinations", "custom_locations"} {
		if _, err := db.ExecContext(context.Background(), "TRUNCATE TABLE "+table); err != nil {
			t.Fatalf("Failed to truncate %s: %v", table, err)
		}
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
