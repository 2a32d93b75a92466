package main

import (
	"context"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/campuscare/campuscare-backend/api/routes"
	"github.com/campuscare/campuscare-backend/internal/cleaning"
	"github.com/campuscare/campuscare-backend/internal/locations"
	"github.com/campuscare/campuscare-backend/internal/repairs"
	"github.com/campuscare/campuscare-backend/internal/seed"
	"github.com/campuscare/campuscare-backend/internal/stats"
	"github.com/campuscare/campuscare-backend/internal/users"
	"github.com/campuscare/campuscare-backend/pkg/config"
	"github.com/campuscare/campuscare-backend/pkg/db"
	"github.com/campuscare/campuscare-backend/pkg/logger"
	"github.com/campuscare/campuscare-backend/pkg/migrate"
	"github.com/campuscare/campuscare-backend/pkg/storage/local"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	dbClient, err := db.New(context.Background(), cfg.DB, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap database", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing database", err)
		}
	}()

	if err := migrate.MaybeRun(context.Background(), cfg, logg, dbClient); err != nil {
		logg.Error(context.Background(), "failed to run migrations", err)
		os.Exit(1)
	}

	if cfg.Seed.Enabled {
		if err := seed.Run(context.Background(), dbClient, logg); err != nil {
			logg.Error(context.Background(), "failed to seed database", err)
			os.Exit(1)
		}
	}

	uploadStore, err := local.New(cfg.Uploads.Dir)
	if err != nil {
		logg.Error(context.Background(), "failed to prepare upload directory", err)
		os.Exit(1)
	}

	usersRepo := users.NewRepository(dbClient.DB())
	locationsRepo := locations.NewRepository(dbClient.DB())
	cleaningRepo := cleaning.NewRepository(dbClient.DB())
	repairsRepo := repairs.NewRepository(dbClient.DB())

	locationsService, err := locations.NewService(locationsRepo)
	if err != nil {
		logg.Error(context.Background(), "failed to create locations service", err)
		os.Exit(1)
	}
	cleaningService, err := cleaning.NewService(cleaningRepo, locationsRepo, usersRepo)
	if err != nil {
		logg.Error(context.Background(), "failed to create cleaning service", err)
		os.Exit(1)
	}
	repairsService, err := repairs.NewService(repairsRepo, locationsRepo, usersRepo, uploadStore)
	if err != nil {
		logg.Error(context.Background(), "failed to create repairs service", err)
		os.Exit(1)
	}
	statsService, err := stats.NewService(cleaningRepo, repairsRepo)
	if err != nil {
		logg.Error(context.Background(), "failed to create stats service", err)
		os.Exit(1)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port
	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":  cfg.App.Env,
		"addr": addr,
	})
	logg.Info(ctx, "starting api server")

	server := &http.Server{
		Addr: addr,
		Handler: routes.NewRouter(
			cfg,
			logg,
			dbClient,
			locationsService,
			cleaningService,
			repairsService,
			statsService,
			uploadStore,
		),
	}

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logg.Error(ctx, "api server stopped unexpectedly", err)
		os.Exit(1)
	}
}
