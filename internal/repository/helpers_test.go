package repository

import (
	"context"
	"log"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/wil-ckaew/contas-api/internal/config"
	"github.com/wil-ckaew/contas-api/internal/db"
	"github.com/wil-ckaew/contas-api/internal/models"
)

func setupTestDB(t *testing.T) *db.DB {
	t.Helper()

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	logger := cfg.Logger.NewLogger()

	database, err := db.Connect(context.Background(), &cfg.Database, logger)
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}

	runMigrations(t, database)
	truncateAccounts(t, database)

	return database
}

func runMigrations(t *testing.T, database *db.DB) {
	t.Helper()

	migrationPath := filepath.Join("..", "db", "migrations", "000001_init.up.sql")
	sqlBytes, err := os.ReadFile(migrationPath) // #nosec G304
	if err != nil {
		t.Fatalf("failed to read migration file: %v", err)
	}

	if _, err := database.ExecContext(context.Background(), string(sqlBytes)); err != nil {
		t.Fatalf("failed to run migration: %v", err)
	}
}

func truncateAccounts(t *testing.T, database *db.DB) {
	t.Helper()

	if _, err := database.ExecContext(context.Background(), "TRUNCATE TABLE accounts"); err != nil {
		t.Fatalf("failed to truncate accounts: %v", err)
	}
}

func cleanupTestDB(t *testing.T, database *db.DB) {
	t.Helper()
	if err := database.Close(); err != nil {
		log.Printf("failed to close test database: %v", err)
	}
}

// seedAccount inserts one account through the repository and returns it.
func seedAccount(t *testing.T, repo AccountRepository, name string, value float64, dueDate time.Time, paid bool) *models.Account {
	t.Helper()

	account, err := repo.Create(context.Background(), CreateAccountParams{
		Name:    name,
		Value:   value,
		DueDate: dueDate,
		Paid:    paid,
	})
	require.NoError(t, err, "failed to seed account")
	require.NotEqual(t, uuid.Nil, account.ID)
	return account
}
