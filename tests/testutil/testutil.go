package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/kendall-kelly/renovation-manager-api/config"
	"github.com/kendall-kelly/renovation-manager-api/services"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// MustSetTestEnvironment sets GO_ENV to test and fails if it cannot be set.
// Suites call it before loading configuration so a developer's .env can
// never point the tests at a real store.
func MustSetTestEnvironment(t *testing.T) {
	t.Helper()

	if err := os.Setenv("GO_ENV", "test"); err != nil {
		t.Fatalf("Failed to set GO_ENV=test: %v", err)
	}
	if os.Getenv("GO_ENV") != "test" {
		t.Fatal("Failed to verify GO_ENV=test")
	}
}

// OpenTestDatabase opens a migrated SQLite database in a temporary file.
// A file is used instead of :memory: so every pooled connection sees the
// same tables.
func OpenTestDatabase(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := config.ConnectDatabase(&config.Config{
		GoEnv:          "test",
		DatabaseDriver: config.DriverSQLite,
		DatabaseURL:    filepath.Join(t.TempDir(), "store.db"),
	})
	require.NoError(t, err)

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}

// NewDatabaseBackend returns a key-value store over a fresh test database
func NewDatabaseBackend(t *testing.T) services.KVStore {
	t.Helper()
	return services.NewDatabaseKVStore(OpenTestDatabase(t))
}
