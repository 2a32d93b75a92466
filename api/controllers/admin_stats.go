package controllers

import (
	"net/http"

	"github.com/campuscare/campuscare-backend/api/responses"
	"github.com/campuscare/campuscare-backend/internal/stats"
	pkgerrors "github.com/campuscare/campuscare-backend/pkg/errors"
	"github.com/campuscare/campuscare-backend/pkg/logger"
)

// AdminStats serves the dashboard aggregates: this week's cleaning
// histogram and the repair status distribution.
func AdminStats(svc stats.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "stats service unavailable"))
			return
		}

		resp, err := svc.Admin(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, resp)
	}
}
