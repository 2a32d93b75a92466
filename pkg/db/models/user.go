package models

import (
	"github.com/campuscare/campuscare-backend/pkg/enums"
)

// User is a seeded identity; this system never creates users at runtime.
type User struct {
	ID   int64          `gorm:"primaryKey"`
	Name string         `gorm:"type:text;not null;index"`
	Role enums.UserRole `gorm:"type:text;not null"`
}
