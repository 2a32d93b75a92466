package models

// Location is a named physical place that gets cleaned and reported on.
type Location struct {
	ID   int64  `gorm:"primaryKey"`
	Name string `gorm:"type:text;not null;uniqueIndex"`
}
