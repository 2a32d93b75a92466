package cleaning

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/campuscare/campuscare-backend/pkg/db/models"
	"github.com/campuscare/campuscare-backend/pkg/pagination"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupCleaningTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.CleaningRecord{}))
	return db
}

func TestRepository_CreateAssignsTimestamp(t *testing.T) {
	db := setupCleaningTestDB(t)
	repo := NewRepository(db)

	record := models.CleaningRecord{LocationID: 1, UserID: 1}
	require.NoError(t, repo.Create(context.Background(), &record))

	assert.NotZero(t, record.ID)
	assert.False(t, record.Timestamp.IsZero(), "expected server-assigned timestamp")
}

func TestRepository_ListNewestFirst(t *testing.T) {
	db := setupCleaningTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	base := time.Date(2026, time.March, 2, 8, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		record := models.CleaningRecord{
			LocationID: int64(i%2 + 1),
			UserID:     1,
			Timestamp:  base.Add(time.Duration(i) * time.Hour),
		}
		require.NoError(t, repo.Create(ctx, &record))
	}

	rows, err := repo.List(ctx, pagination.Params{Offset: 0, Limit: 3})
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.True(t, rows[0].Timestamp.After(rows[1].Timestamp))
	assert.True(t, rows[1].Timestamp.After(rows[2].Timestamp))

	rest, err := repo.List(ctx, pagination.Params{Offset: 3, Limit: 3})
	require.NoError(t, err)
	require.Len(t, rest, 2)
	assert.True(t, rows[2].Timestamp.After(rest[0].Timestamp))
}

func TestRepository_CountBetweenHalfOpenWindow(t *testing.T) {
	db := setupCleaningTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	dayStart := time.Date(2026, time.March, 2, 0, 0, 0, 0, time.UTC)
	stamps := []time.Time{
		dayStart.Add(-time.Second),       // previous day
		dayStart,                         // inclusive lower bound
		dayStart.Add(12 * time.Hour),     // midday
		dayStart.AddDate(0, 0, 1),        // exclusive upper bound
		dayStart.AddDate(0, 0, 1).Add(1), // next day
	}
	for _, stamp := range stamps {
		record := models.CleaningRecord{LocationID: 1, UserID: 1, Timestamp: stamp}
		require.NoError(t, repo.Create(ctx, &record))
	}

	count, err := repo.CountBetween(ctx, dayStart, dayStart.AddDate(0, 0, 1))
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}
