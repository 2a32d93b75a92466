package controllers

import (
	"net/http"

	"github.com/campuscare/campuscare-backend/api/responses"
	"github.com/campuscare/campuscare-backend/pkg/config"
	"github.com/campuscare/campuscare-backend/pkg/db"
	pkgerrors "github.com/campuscare/campuscare-backend/pkg/errors"
	"github.com/campuscare/campuscare-backend/pkg/logger"
)

func Health(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-CampusCare-Env", cfg.App.Env)
		responses.WriteSuccess(w, map[string]bool{"ok": true})
	}
}

func HealthReady(cfg *config.Config, logg *logger.Logger, dbP db.Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-CampusCare-Env", cfg.App.Env)
		if dbP != nil {
			if err := dbP.Ping(r.Context()); err != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "database unreachable"))
				return
			}
		}
		responses.WriteSuccess(w, map[string]bool{"ok": true})
	}
}
