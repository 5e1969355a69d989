package services

import (
	"path/filepath"
	"testing"

	"github.com/MuseoAndino/Catalogue-Backend/src/localstore"
	"github.com/MuseoAndino/Catalogue-Backend/src/models"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// openTestDB opens a throwaway sqlite database with the row-store schema.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.ArtifactModel{},
		&models.UserModel{},
		&models.UserPreferenceModel{},
		&models.CollectionEntryModel{},
		&models.SearchHistoryModel{},
		&models.SavedSearchModel{},
	))

	return db
}

// openTestLocalStore opens a throwaway local key-value store.
func openTestLocalStore(t *testing.T) *localstore.Store {
	t.Helper()

	store, err := localstore.Open(filepath.Join(t.TempDir(), "localstore.json"))
	require.NoError(t, err)
	return store
}
