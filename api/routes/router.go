package routes

import (
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"

	"github.com/campuscare/campuscare-backend/api/controllers"
	"github.com/campuscare/campuscare-backend/api/middleware"
	"github.com/campuscare/campuscare-backend/internal/cleaning"
	"github.com/campuscare/campuscare-backend/internal/locations"
	"github.com/campuscare/campuscare-backend/internal/repairs"
	"github.com/campuscare/campuscare-backend/internal/stats"
	"github.com/campuscare/campuscare-backend/pkg/config"
	"github.com/campuscare/campuscare-backend/pkg/db"
	"github.com/campuscare/campuscare-backend/pkg/logger"
	"github.com/campuscare/campuscare-backend/pkg/metrics"
	"github.com/campuscare/campuscare-backend/pkg/storage/local"
)

func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	dbP db.Pinger,
	locationsService locations.Service,
	cleaningService cleaning.Service,
	repairsService repairs.Service,
	statsService stats.Service,
	uploads *local.Store,
) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.Metrics(),
		middleware.CORS(),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/", controllers.Health(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, dbP))
	})
	r.Handle("/metrics", metrics.Handler())

	r.Get("/locations", controllers.ListLocations(locationsService, logg))

	r.Route("/cleaning-records", func(r chi.Router) {
		r.Get("/", controllers.ListCleaningRecords(cleaningService, logg))
		r.Post("/", controllers.CreateCleaningRecord(cleaningService, logg))
	})

	r.Route("/repair-reports", func(r chi.Router) {
		r.Get("/", controllers.ListRepairReports(repairsService, logg))
		r.Post("/", controllers.CreateRepairReport(repairsService, cfg.Uploads, logg))
		r.Put("/{reportID}", controllers.UpdateRepairReportStatus(repairsService, logg))
	})

	r.Get("/admin/stats", controllers.AdminStats(statsService, logg))

	r.Get("/uploads/{filename}", controllers.ServeUpload(uploads, logg))

	// Serve the bundled frontend when present; API routes above take
	// precedence over the catch-all.
	if info, err := os.Stat(cfg.App.StaticDir); err == nil && info.IsDir() {
		fileServer := http.FileServer(http.Dir(cfg.App.StaticDir))
		r.Handle("/*", fileServer)
	}

	return r
}
