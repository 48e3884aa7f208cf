package database

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm/logger"

	"github.com/mrlokans/quotebook/internal/entities"
)

// setupTestDB creates a fresh test database
func setupTestDB(t *testing.T) (*Database, string, func()) {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	db, err := Open(dbPath, logger.Silent)
	require.NoError(t, err)

	cleanup := func() {
		db.Close()
	}
	return db, dbPath, cleanup
}

func TestDatabase(t *testing.T) {
	db, dbPath, cleanup := setupTestDB(t)
	defer cleanup()

	t.Run("Open only connects and leaves the schema to the store", func(t *testing.T) {
		assert.False(t, db.DB.Migrator().HasTable(&entities.Quote{}))
	})

	t.Run("Ping succeeds on an open database", func(t *testing.T) {
		assert.NoError(t, db.Ping(context.Background()))
	})

	t.Run("Data survives reopening", func(t *testing.T) {
		require.NoError(t, db.DB.AutoMigrate(&entities.Quote{}))
		require.NoError(t, db.DB.Create(&entities.Quote{Text: "Be one.", Author: "Marcus Aurelius"}).Error)

		reopened, err := Open(dbPath, logger.Silent)
		require.NoError(t, err)
		defer reopened.Close()

		var count int64
		require.NoError(t, reopened.DB.Model(&entities.Quote{}).Count(&count).Error)
		assert.Equal(t, int64(1), count)
	})
}

func TestDatabase_PingAfterClose(t *testing.T) {
	db, _, _ := setupTestDB(t)
	require.NoError(t, db.Close())

	assert.Error(t, db.Ping(context.Background()))
}

func TestNewDatabase_InvalidPath(t *testing.T) {
	_, err := NewDatabase(filepath.Join(t.TempDir(), "missing", "dir", "test.db"))
	assert.Error(t, err)
}
