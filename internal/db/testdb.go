package db

import (
	"path/filepath"
	"testing"

	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"
	"github.com/ncruces/go-sqlite3/gormlite"
	"gorm.io/gorm"
)

// OpenTemp opens a throwaway sqlite database under the test's temp dir,
// migrates the schema and points the package-level DB at it. Each test gets
// its own file, so no cleanup beyond t.TempDir is needed.
func OpenTemp(t *testing.T) *gorm.DB {
	t.Helper()

	path := filepath.Join(t.TempDir(), "inkwell.db")
	gdb, err := gorm.Open(gormlite.Open(path), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}
	if err := gdb.AutoMigrate(allModels()...); err != nil {
		t.Fatalf("migrate test database: %v", err)
	}

	DB = gdb
	return gdb
}
