package locations

import (
	"context"
	"errors"
	"testing"

	"github.com/campuscare/campuscare-backend/pkg/db/models"
	pkgerrors "github.com/campuscare/campuscare-backend/pkg/errors"
	"gorm.io/gorm"
)

type fakeRepository struct {
	listFn func(ctx context.Context) ([]models.Location, error)
}

func (f *fakeRepository) WithTx(tx *gorm.DB) Repository {
	return f
}

func (f *fakeRepository) List(ctx context.Context) ([]models.Location, error) {
	if f.listFn != nil {
		return f.listFn(ctx)
	}
	return nil, nil
}

func (f *fakeRepository) FindByID(ctx context.Context, id int64) (*models.Location, error) {
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeRepository) FindByIDs(ctx context.Context, ids []int64) (map[int64]models.Location, error) {
	return map[int64]models.Location{}, nil
}

func (f *fakeRepository) CreateAll(ctx context.Context, locations []models.Location) error {
	return nil
}

func TestService_List(t *testing.T) {
	repo := &fakeRepository{
		listFn: func(ctx context.Context) ([]models.Location, error) {
			return []models.Location{
				{ID: 1, Name: "Main Library"},
				{ID: 2, Name: "Science Building"},
			}, nil
		},
	}
	svc, err := NewService(repo)
	if err != nil {
		t.Fatalf("unexpected service error: %v", err)
	}

	out, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("unexpected list error: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("expected 2 locations, got %d", len(out))
	}
	if out[0].ID != 1 || out[0].Name != "Main Library" {
		t.Fatalf("unexpected first location %+v", out[0])
	}
}

func TestService_ListEmpty(t *testing.T) {
	svc, _ := NewService(&fakeRepository{})

	out, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("unexpected list error: %v", err)
	}
	if out == nil || len(out) != 0 {
		t.Fatalf("expected empty non-nil slice, got %v", out)
	}
}

func TestService_ListRepoFailure(t *testing.T) {
	repo := &fakeRepository{
		listFn: func(ctx context.Context) ([]models.Location, error) {
			return nil, errors.New("boom")
		},
	}
	svc, _ := NewService(repo)

	_, err := svc.List(context.Background())
	if err == nil {
		t.Fatal("expected error")
	}
	if pkgerrors.As(err).Code() != pkgerrors.CodeDependency {
		t.Fatalf("expected dependency error, got %v", err)
	}
}

func TestNewService_RequiresRepo(t *testing.T) {
	if _, err := NewService(nil); err == nil {
		t.Fatal("expected error for nil repo")
	}
}
