package models

import "time"

// CleaningRecord is an append-only event: user cleaned location at timestamp.
// The timestamp is always server-assigned.
type CleaningRecord struct {
	ID         int64     `gorm:"primaryKey"`
	LocationID int64     `gorm:"not null;index"`
	UserID     int64     `gorm:"not null;index"`
	Timestamp  time.Time `gorm:"column:timestamp;not null;autoCreateTime"`
}
