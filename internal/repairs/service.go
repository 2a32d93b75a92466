package repairs

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/campuscare/campuscare-backend/pkg/db/models"
	"github.com/campuscare/campuscare-backend/pkg/enums"
	pkgerrors "github.com/campuscare/campuscare-backend/pkg/errors"
	"github.com/campuscare/campuscare-backend/pkg/pagination"
	"gorm.io/gorm"
)

// DefaultPageSize is the page size when the caller does not pass a limit.
const DefaultPageSize = 100

// LocationDirectory is the slice of the locations repository this service needs.
type LocationDirectory interface {
	FindByID(ctx context.Context, id int64) (*models.Location, error)
	FindByIDs(ctx context.Context, ids []int64) (map[int64]models.Location, error)
}

// UserDirectory is the slice of the users repository this service needs.
type UserDirectory interface {
	FindByID(ctx context.Context, id int64) (*models.User, error)
	FindByIDs(ctx context.Context, ids []int64) (map[int64]models.User, error)
}

// ImageStore persists uploaded photos and hands back a servable reference.
type ImageStore interface {
	Save(originalName string, r io.Reader) (string, error)
	URLPath(filename string) string
}

// Service creates repair reports, lists them newest first, and moves them
// through their status lifecycle.
type Service interface {
	Create(ctx context.Context, params CreateReportParams) (*ReportResponse, error)
	List(ctx context.Context, page pagination.Params) ([]ReportResponse, error)
	UpdateStatus(ctx context.Context, id int64, status enums.ReportStatus) (*ReportResponse, error)
}

type service struct {
	repo      Repository
	locations LocationDirectory
	users     UserDirectory
	images    ImageStore
	now       func() time.Time
}

// NewService wires repair-report dependencies.
func NewService(repo Repository, locations LocationDirectory, users UserDirectory, images ImageStore) (Service, error) {
	if repo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "repairs repository required")
	}
	if locations == nil {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "location directory required")
	}
	if users == nil {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "user directory required")
	}
	if images == nil {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "image store required")
	}
	return &service{
		repo:      repo,
		locations: locations,
		users:     users,
		images:    images,
		now:       func() time.Time { return time.Now().UTC() },
	}, nil
}

func (s *service) Create(ctx context.Context, params CreateReportParams) (*ReportResponse, error) {
	location, err := s.locations.FindByID(ctx, params.LocationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "location does not exist").
				WithDetails(map[string]any{"location_id": params.LocationID})
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "look up location")
	}

	reporter, err := s.users.FindByID(ctx, params.ReportedByUserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "reporting user does not exist").
				WithDetails(map[string]any{"reported_by_user_id": params.ReportedByUserID})
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "look up reporting user")
	}

	// The image goes to disk first; a failed write fails the whole request
	// so no row ever carries a dangling reference.
	var imageURL *string
	if params.Image != nil {
		stored, err := s.images.Save(params.Image.Filename, params.Image.Content)
		if err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "store report image")
		}
		ref := s.images.URLPath(stored)
		imageURL = &ref
	}

	report := models.RepairReport{
		LocationID:       params.LocationID,
		ReportedByUserID: params.ReportedByUserID,
		Description:      params.Description,
		ImageURL:         imageURL,
		Status:           enums.ReportStatusPending,
	}
	if err := s.repo.Create(ctx, &report); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create repair report")
	}

	resp := toReportResponse(report, *location, *reporter)
	return &resp, nil
}

func (s *service) List(ctx context.Context, page pagination.Params) ([]ReportResponse, error) {
	page = pagination.Normalize(page, DefaultPageSize)

	rows, err := s.repo.List(ctx, page)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list repair reports")
	}

	locationIDs := make([]int64, 0, len(rows))
	userIDs := make([]int64, 0, len(rows))
	for _, row := range rows {
		locationIDs = append(locationIDs, row.LocationID)
		userIDs = append(userIDs, row.ReportedByUserID)
	}

	locationsByID, err := s.locations.FindByIDs(ctx, locationIDs)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "resolve locations")
	}
	usersByID, err := s.users.FindByIDs(ctx, userIDs)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "resolve reporters")
	}

	out := make([]ReportResponse, 0, len(rows))
	for _, row := range rows {
		out = append(out, toReportResponse(row, locationsByID[row.LocationID], usersByID[row.ReportedByUserID]))
	}
	return out, nil
}

func (s *service) UpdateStatus(ctx context.Context, id int64, status enums.ReportStatus) (*ReportResponse, error) {
	if !status.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid report status").
			WithDetails(map[string]any{"status": string(status)})
	}

	matched, err := s.repo.UpdateStatus(ctx, id, status, s.now())
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update report status")
	}
	if !matched {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "report not found")
	}

	report, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "reload report")
	}

	location, err := s.locations.FindByID(ctx, report.LocationID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "resolve location")
	}
	reporter, err := s.users.FindByID(ctx, report.ReportedByUserID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "resolve reporter")
	}

	resp := toReportResponse(*report, *location, *reporter)
	return &resp, nil
}

func toReportResponse(report models.RepairReport, location models.Location, reporter models.User) ReportResponse {
	return ReportResponse{
		ID:          report.ID,
		Description: report.Description,
		ImageURL:    report.ImageURL,
		Status:      report.Status,
		CreatedAt:   report.CreatedAt,
		UpdatedAt:   report.UpdatedAt,
		Location:    LocationRef{ID: location.ID, Name: location.Name},
		Reporter:    UserRef{ID: reporter.ID, Name: reporter.Name, Role: reporter.Role},
	}
}
