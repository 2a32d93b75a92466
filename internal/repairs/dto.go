package repairs

import (
	"io"
	"time"

	"github.com/campuscare/campuscare-backend/pkg/enums"
)

// ImageUpload carries the optional photo attached to a new report.
type ImageUpload struct {
	Filename string
	Content  io.Reader
}

// CreateReportParams is the create shape, decoded from the multipart form.
type CreateReportParams struct {
	LocationID       int64
	Description      string
	ReportedByUserID int64
	Image            *ImageUpload
}

// LocationRef is the nested location shape embedded in report responses.
type LocationRef struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// UserRef is the nested reporter shape embedded in report responses.
type UserRef struct {
	ID   int64          `json:"id"`
	Name string         `json:"name"`
	Role enums.UserRole `json:"role"`
}

// ReportResponse is the read shape with resolved relationships.
type ReportResponse struct {
	ID          int64              `json:"id"`
	Description string             `json:"description"`
	ImageURL    *string            `json:"image_url"`
	Status      enums.ReportStatus `json:"status"`
	CreatedAt   time.Time          `json:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at"`
	Location    LocationRef        `json:"location"`
	Reporter    UserRef            `json:"reporter"`
}
