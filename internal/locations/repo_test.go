package locations

import (
	"context"
	"fmt"
	"testing"

	"github.com/campuscare/campuscare-backend/pkg/db/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupLocationsTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Location{}))
	return db
}

func TestRepository_ListOrderedByID(t *testing.T) {
	db := setupLocationsTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.CreateAll(ctx, []models.Location{
		{ID: 2, Name: "Science Building"},
		{ID: 1, Name: "Main Library"},
		{ID: 3, Name: "Cafeteria"},
	}))

	rows, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, int64(1), rows[0].ID)
	assert.Equal(t, "Main Library", rows[0].Name)
	assert.Equal(t, int64(3), rows[2].ID)
}

func TestRepository_FindByID(t *testing.T) {
	db := setupLocationsTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.CreateAll(ctx, []models.Location{{ID: 1, Name: "Main Library"}}))

	found, err := repo.FindByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Main Library", found.Name)

	_, err = repo.FindByID(ctx, 99)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestRepository_FindByIDs(t *testing.T) {
	db := setupLocationsTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.CreateAll(ctx, []models.Location{
		{ID: 1, Name: "Main Library"},
		{ID: 2, Name: "Science Building"},
	}))

	byID, err := repo.FindByIDs(ctx, []int64{1, 2, 99})
	require.NoError(t, err)
	assert.Len(t, byID, 2)
	assert.Equal(t, "Science Building", byID[2].Name)

	empty, err := repo.FindByIDs(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, empty)
}
