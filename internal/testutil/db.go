// Package testutil holds helpers shared by package tests.
package testutil

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"psisite/internal/db"
	"psisite/internal/model"
)

// NewDB opens a migrated SQLite database in a temp dir that is closed with the test.
func NewDB(t *testing.T) *gorm.DB {
	t.Helper()

	gormDB, err := db.NewSQLite(filepath.Join(t.TempDir(), "site.db"))
	require.NoError(t, err)
	require.NoError(t, gormDB.AutoMigrate(model.All()...))

	t.Cleanup(func() {
		if sqlDB, err := gormDB.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return gormDB
}
