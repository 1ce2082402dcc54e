package tester

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/emrgen/cataviz/internal/model"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Setup opens a migrated sqlite database in a temporary directory. The
// directory is removed when the test ends.
func Setup(t testing.TB) *gorm.DB {
	t.Helper()

	_ = os.Setenv("ENV", "test")

	path := filepath.Join(t.TempDir(), "cataviz.db")
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}

	err = model.Migrate(db)
	if err != nil {
		t.Fatalf("migrate test database: %v", err)
	}

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	return db
}

// WriteFile writes data to name inside a temporary directory and returns the
// directory.
func WriteFile(t testing.TB, dir, name string, data []byte) string {
	t.Helper()
	if dir == "" {
		dir = t.TempDir()
	}
	if err := os.WriteFile(filepath.Join(dir, name), data, 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return dir
}
