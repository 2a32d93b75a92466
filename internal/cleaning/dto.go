package cleaning

import (
	"time"

	"github.com/campuscare/campuscare-backend/pkg/enums"
)

// CreateRecordRequest is what a cleaner's client may supply; the timestamp
// is always assigned server-side.
type CreateRecordRequest struct {
	LocationID int64 `json:"location_id" validate:"required"`
	UserID     int64 `json:"user_id" validate:"required"`
}

// LocationRef is the nested location shape embedded in record responses.
type LocationRef struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// UserRef is the nested user shape embedded in record responses.
type UserRef struct {
	ID   int64          `json:"id"`
	Name string         `json:"name"`
	Role enums.UserRole `json:"role"`
}

// RecordResponse is the read shape with resolved relationships.
type RecordResponse struct {
	ID        int64       `json:"id"`
	Timestamp time.Time   `json:"timestamp"`
	Location  LocationRef `json:"location"`
	User      UserRef     `json:"user"`
}
