package models

import (
	"time"

	"github.com/campuscare/campuscare-backend/pkg/enums"
)

// RepairReport is a user-submitted issue at a location. Only the status
// (and with it updated_at) may change after creation.
type RepairReport struct {
	ID               int64              `gorm:"primaryKey"`
	LocationID       int64              `gorm:"not null;index"`
	ReportedByUserID int64              `gorm:"column:reported_by_user_id;not null;index"`
	Description      string             `gorm:"type:text;not null"`
	ImageURL         *string            `gorm:"column:image_url"`
	Status           enums.ReportStatus `gorm:"type:text;not null;default:pending"`
	CreatedAt        time.Time          `gorm:"autoCreateTime"`
	UpdatedAt        time.Time          `gorm:"autoUpdateTime"`
}
