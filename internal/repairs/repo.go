package repairs

import (
	"context"
	"time"

	"github.com/campuscare/campuscare-backend/pkg/db/models"
	"github.com/campuscare/campuscare-backend/pkg/enums"
	"github.com/campuscare/campuscare-backend/pkg/pagination"
	"gorm.io/gorm"
)

// Repository exposes persistence for repair reports.
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, report *models.RepairReport) error
	FindByID(ctx context.Context, id int64) (*models.RepairReport, error)
	List(ctx context.Context, page pagination.Params) ([]models.RepairReport, error)
	// UpdateStatus sets status and updated_at on the matching row and
	// reports whether a row matched.
	UpdateStatus(ctx context.Context, id int64, status enums.ReportStatus, now time.Time) (bool, error)
	CountByStatus(ctx context.Context, status enums.ReportStatus) (int64, error)
}

type repositoryImpl struct {
	db *gorm.DB
}

// NewRepository returns a repair-reports repository bound to the provided database.
func NewRepository(db *gorm.DB) Repository {
	return &repositoryImpl{db: db}
}

func (r *repositoryImpl) WithTx(tx *gorm.DB) Repository {
	if tx == nil {
		return r
	}
	return &repositoryImpl{db: tx}
}

func (r *repositoryImpl) Create(ctx context.Context, report *models.RepairReport) error {
	return r.db.WithContext(ctx).Create(report).Error
}

func (r *repositoryImpl) FindByID(ctx context.Context, id int64) (*models.RepairReport, error) {
	var report models.RepairReport
	if err := r.db.WithContext(ctx).First(&report, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &report, nil
}

func (r *repositoryImpl) List(ctx context.Context, page pagination.Params) ([]models.RepairReport, error) {
	var rows []models.RepairReport
	err := r.db.WithContext(ctx).
		Order("created_at DESC, id DESC").
		Offset(page.Offset).
		Limit(page.Limit).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *repositoryImpl) UpdateStatus(ctx context.Context, id int64, status enums.ReportStatus, now time.Time) (bool, error) {
	result := r.db.WithContext(ctx).
		Model(&models.RepairReport{}).
		Where("id = ?", id).
		Updates(map[string]any{"status": status, "updated_at": now})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *repositoryImpl) CountByStatus(ctx context.Context, status enums.ReportStatus) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.RepairReport{}).
		Where("status = ?", status).
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}
