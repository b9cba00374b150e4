package testutil

import (
	"path/filepath"
	"testing"

	"gorm.io/gorm"

	"github.com/h809829-coder/agrosmart/database"
)

// NewTestDB opens a migrated SQLite file in a per-test temp dir.
// The database is closed when the test completes.
func NewTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.OpenSQLite(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}
	t.Cleanup(func() {
		_ = database.Close(db)
	})
	return db
}
