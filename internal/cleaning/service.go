package cleaning

import (
	"context"
	"errors"

	"github.com/campuscare/campuscare-backend/pkg/db/models"
	pkgerrors "github.com/campuscare/campuscare-backend/pkg/errors"
	"github.com/campuscare/campuscare-backend/pkg/pagination"
	"gorm.io/gorm"
)

// DefaultPageSize is the page size when the caller does not pass a limit.
const DefaultPageSize = 20

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

// Service records cleaning events and serves the newest-first log.
type Service interface {
	Create(ctx context.Context, req CreateRecordRequest) (*RecordResponse, error)
	List(ctx context.Context, page pagination.Params) ([]RecordResponse, error)
}

type service struct {
	repo      Repository
	locations LocationDirectory
	users     UserDirectory
}

// NewService wires cleaning-record dependencies.
func NewService(repo Repository, locations LocationDirectory, users UserDirectory) (Service, error) {
	if repo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "cleaning repository required")
	}
	if locations == nil {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "location directory required")
	}
	if users == nil {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "user directory required")
	}
	return &service{repo: repo, locations: locations, users: users}, nil
}

func (s *service) Create(ctx context.Context, req CreateRecordRequest) (*RecordResponse, error) {
	location, err := s.locations.FindByID(ctx, req.LocationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "location does not exist").
				WithDetails(map[string]any{"location_id": req.LocationID})
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "look up location")
	}

	user, err := s.users.FindByID(ctx, req.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "user does not exist").
				WithDetails(map[string]any{"user_id": req.UserID})
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "look up user")
	}

	record := models.CleaningRecord{
		LocationID: req.LocationID,
		UserID:     req.UserID,
	}
	if err := s.repo.Create(ctx, &record); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create cleaning record")
	}

	resp := toRecordResponse(record, *location, *user)
	return &resp, nil
}

func (s *service) List(ctx context.Context, page pagination.Params) ([]RecordResponse, error) {
	page = pagination.Normalize(page, DefaultPageSize)

	rows, err := s.repo.List(ctx, page)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list cleaning records")
	}

	locationIDs := make([]int64, 0, len(rows))
	userIDs := make([]int64, 0, len(rows))
	for _, row := range rows {
		locationIDs = append(locationIDs, row.LocationID)
		userIDs = append(userIDs, row.UserID)
	}

	locationsByID, err := s.locations.FindByIDs(ctx, locationIDs)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "resolve locations")
	}
	usersByID, err := s.users.FindByIDs(ctx, userIDs)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "resolve users")
	}

	out := make([]RecordResponse, 0, len(rows))
	for _, row := range rows {
		out = append(out, toRecordResponse(row, locationsByID[row.LocationID], usersByID[row.UserID]))
	}
	return out, nil
}

func toRecordResponse(record models.CleaningRecord, location models.Location, user models.User) RecordResponse {
	return RecordResponse{
		ID:        record.ID,
		Timestamp: record.Timestamp,
		Location:  LocationRef{ID: location.ID, Name: location.Name},
		User:      UserRef{ID: user.ID, Name: user.Name, Role: user.Role},
	}
}
