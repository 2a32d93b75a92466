package cleaning

import (
	"context"
	"time"

	"github.com/campuscare/campuscare-backend/pkg/db/models"
	"github.com/campuscare/campuscare-backend/pkg/pagination"
	"gorm.io/gorm"
)

// Repository exposes persistence for the append-only cleaning log.
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, record *models.CleaningRecord) error
	List(ctx context.Context, page pagination.Params) ([]models.CleaningRecord, error)
	// CountBetween counts records with from <= timestamp < to.
	CountBetween(ctx context.Context, from, to time.Time) (int64, error)
}

type repositoryImpl struct {
	db *gorm.DB
}

// NewRepository returns a cleaning-records repository bound to the provided database.
func NewRepository(db *gorm.DB) Repository {
	return &repositoryImpl{db: db}
}

func (r *repositoryImpl) WithTx(tx *gorm.DB) Repository {
	if tx == nil {
		return r
	}
	return &repositoryImpl{db: tx}
}

func (r *repositoryImpl) Create(ctx context.Context, record *models.CleaningRecord) error {
	return r.db.WithContext(ctx).Create(record).Error
}

func (r *repositoryImpl) List(ctx context.Context, page pagination.Params) ([]models.CleaningRecord, error) {
	var rows []models.CleaningRecord
	err := r.db.WithContext(ctx).
		Order("timestamp DESC, id DESC").
		Offset(page.Offset).
		Limit(page.Limit).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *repositoryImpl) CountBetween(ctx context.Context, from, to time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.CleaningRecord{}).
		Where("timestamp >= ? AND timestamp < ?", from, to).
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}
