package locations

import (
	"context"

	pkgerrors "github.com/campuscare/campuscare-backend/pkg/errors"
)

// LocationResponse is the read shape served to clients.
type LocationResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Service lists the seeded locations.
type Service interface {
	List(ctx context.Context) ([]LocationResponse, error)
}

type service struct {
	repo Repository
}

// NewService wires locations dependencies.
func NewService(repo Repository) (Service, error) {
	if repo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "locations repository required")
	}
	return &service{repo: repo}, nil
}

func (s *service) List(ctx context.Context) ([]LocationResponse, error) {
	rows, err := s.repo.List(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list locations")
	}

	out := make([]LocationResponse, 0, len(rows))
	for _, row := range rows {
		out = append(out, LocationResponse{ID: row.ID, Name: row.Name})
	}
	return out, nil
}
