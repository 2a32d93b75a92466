package routes

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/campuscare/campuscare-backend/internal/cleaning"
	"github.com/campuscare/campuscare-backend/internal/locations"
	"github.com/campuscare/campuscare-backend/internal/repairs"
	"github.com/campuscare/campuscare-backend/internal/stats"
	"github.com/campuscare/campuscare-backend/pkg/config"
	"github.com/campuscare/campuscare-backend/pkg/enums"
	pkgerrors "github.com/campuscare/campuscare-backend/pkg/errors"
	"github.com/campuscare/campuscare-backend/pkg/logger"
	"github.com/campuscare/campuscare-backend/pkg/pagination"
	"github.com/campuscare/campuscare-backend/pkg/storage/local"
)

type stubPinger struct {
	err error
}

func (s stubPinger) Ping(context.Context) error {
	return s.err
}

type stubLocationsService struct{}

func (stubLocationsService) List(ctx context.Context) ([]locations.LocationResponse, error) {
	return []locations.LocationResponse{{ID: 1, Name: "Main Library"}}, nil
}

type stubCleaningService struct{}

func (stubCleaningService) Create(ctx context.Context, req cleaning.CreateRecordRequest) (*cleaning.RecordResponse, error) {
	return &cleaning.RecordResponse{ID: 1}, nil
}

func (stubCleaningService) List(ctx context.Context, page pagination.Params) ([]cleaning.RecordResponse, error) {
	return []cleaning.RecordResponse{}, nil
}

type stubRepairsService struct{}

func (stubRepairsService) Create(ctx context.Context, params repairs.CreateReportParams) (*repairs.ReportResponse, error) {
	return &repairs.ReportResponse{ID: 1, Status: enums.ReportStatusPending}, nil
}

func (stubRepairsService) List(ctx context.Context, page pagination.Params) ([]repairs.ReportResponse, error) {
	return []repairs.ReportResponse{}, nil
}

func (stubRepairsService) UpdateStatus(ctx context.Context, id int64, status enums.ReportStatus) (*repairs.ReportResponse, error) {
	if id == 404 {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "report not found")
	}
	return &repairs.ReportResponse{ID: id, Status: status}, nil
}

type stubStatsService struct{}

func (stubStatsService) Admin(ctx context.Context) (*stats.AdminStats, error) {
	return &stats.AdminStats{}, nil
}

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	return &config.Config{
		App:     config.AppConfig{Env: "test", Port: "0", StaticDir: filepath.Join(t.TempDir(), "missing")},
		Uploads: config.UploadsConfig{Dir: t.TempDir(), MaxUploadMB: 1},
	}
}

func newTestRouter(t *testing.T, cfg *config.Config, dbP stubPinger) http.Handler {
	t.Helper()

	store, err := local.New(cfg.Uploads.Dir)
	if err != nil {
		t.Fatalf("create upload store: %v", err)
	}
	logg := logger.New(logger.Options{ServiceName: "test-routing", Output: io.Discard})
	return NewRouter(
		cfg,
		logg,
		dbP,
		stubLocationsService{},
		stubCleaningService{},
		stubRepairsService{},
		stubStatsService{},
		store,
	)
}

func TestHealthEndpoint(t *testing.T) {
	router := newTestRouter(t, testConfig(t), stubPinger{})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
	if !strings.Contains(resp.Body.String(), `"ok":true`) {
		t.Fatalf("unexpected body %s", resp.Body.String())
	}
}

func TestReadyEndpointReportsDatabaseFailure(t *testing.T) {
	router := newTestRouter(t, testConfig(t), stubPinger{err: context.DeadlineExceeded})

	req := httptest.NewRequest(http.MethodGet, "/health/ready", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503 got %d", resp.Code)
	}
}

func TestLocationsRoute(t *testing.T) {
	router := newTestRouter(t, testConfig(t), stubPinger{})

	req := httptest.NewRequest(http.MethodGet, "/locations", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
	if !strings.Contains(resp.Body.String(), "Main Library") {
		t.Fatalf("unexpected body %s", resp.Body.String())
	}
}

func TestCleaningRecordRoutes(t *testing.T) {
	router := newTestRouter(t, testConfig(t), stubPinger{})

	list := httptest.NewRequest(http.MethodGet, "/cleaning-records?limit=5", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, list)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 for list got %d", resp.Code)
	}

	create := httptest.NewRequest(http.MethodPost, "/cleaning-records", strings.NewReader(`{"location_id":1,"user_id":1}`))
	resp = httptest.NewRecorder()
	router.ServeHTTP(resp, create)
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201 for create got %d: %s", resp.Code, resp.Body.String())
	}
}

func TestRepairReportStatusRoute(t *testing.T) {
	router := newTestRouter(t, testConfig(t), stubPinger{})

	ok := httptest.NewRequest(http.MethodPut, "/repair-reports/7", strings.NewReader(`{"status":"in_progress"}`))
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, ok)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d: %s", resp.Code, resp.Body.String())
	}

	missing := httptest.NewRequest(http.MethodPut, "/repair-reports/404", strings.NewReader(`{"status":"in_progress"}`))
	resp = httptest.NewRecorder()
	router.ServeHTTP(resp, missing)
	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404 got %d", resp.Code)
	}
}

func TestAdminStatsRoute(t *testing.T) {
	router := newTestRouter(t, testConfig(t), stubPinger{})

	req := httptest.NewRequest(http.MethodGet, "/admin/stats", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
}

func TestUploadsRoute(t *testing.T) {
	cfg := testConfig(t)
	store, err := local.New(cfg.Uploads.Dir)
	if err != nil {
		t.Fatalf("create upload store: %v", err)
	}
	stored, err := store.Save("photo.jpg", strings.NewReader("jpegdata"))
	if err != nil {
		t.Fatalf("save upload: %v", err)
	}
	router := newTestRouter(t, cfg, stubPinger{})

	req := httptest.NewRequest(http.MethodGet, "/uploads/"+stored, nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
	if resp.Body.String() != "jpegdata" {
		t.Fatalf("unexpected body %q", resp.Body.String())
	}
}

func TestMetricsRoute(t *testing.T) {
	router := newTestRouter(t, testConfig(t), stubPinger{})

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
}

func TestStaticCatchAllServedWhenPresent(t *testing.T) {
	cfg := testConfig(t)
	staticDir := t.TempDir()
	cfg.App.StaticDir = staticDir
	if err := os.WriteFile(filepath.Join(staticDir, "index.html"), []byte("<html>campus</html>"), 0o644); err != nil {
		t.Fatalf("write index: %v", err)
	}
	router := newTestRouter(t, cfg, stubPinger{})

	req := httptest.NewRequest(http.MethodGet, "/index.html", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
	if !strings.Contains(resp.Body.String(), "campus") {
		t.Fatalf("unexpected body %s", resp.Body.String())
	}
}
