package locations

import (
	"context"

	"github.com/campuscare/campuscare-backend/pkg/db/models"
	"gorm.io/gorm"
)

// Repository exposes location persistence operations. Locations are seeded
// once at bootstrap; there is no create-location endpoint.
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	List(ctx context.Context) ([]models.Location, error)
	FindByID(ctx context.Context, id int64) (*models.Location, error)
	FindByIDs(ctx context.Context, ids []int64) (map[int64]models.Location, error)
	CreateAll(ctx context.Context, locations []models.Location) error
}

type repositoryImpl struct {
	db *gorm.DB
}

// NewRepository constructs a locations repo bound to the provided GORM DB.
func NewRepository(db *gorm.DB) Repository {
	return &repositoryImpl{db: db}
}

func (r *repositoryImpl) WithTx(tx *gorm.DB) Repository {
	if tx == nil {
		return r
	}
	return &repositoryImpl{db: tx}
}

func (r *repositoryImpl) List(ctx context.Context) ([]models.Location, error) {
	var rows []models.Location
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *repositoryImpl) FindByID(ctx context.Context, id int64) (*models.Location, error) {
	var location models.Location
	if err := r.db.WithContext(ctx).First(&location, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &location, nil
}

func (r *repositoryImpl) FindByIDs(ctx context.Context, ids []int64) (map[int64]models.Location, error) {
	out := make(map[int64]models.Location, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	var rows []models.Location
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&rows).Error; err != nil {
		return nil, err
	}
	for _, row := range rows {
		out[row.ID] = row
	}
	return out, nil
}

func (r *repositoryImpl) CreateAll(ctx context.Context, locations []models.Location) error {
	if len(locations) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&locations).Error
}
