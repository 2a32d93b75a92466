package controllers

import (
	"net/http"

	"github.com/campuscare/campuscare-backend/api/responses"
	"github.com/campuscare/campuscare-backend/internal/locations"
	pkgerrors "github.com/campuscare/campuscare-backend/pkg/errors"
	"github.com/campuscare/campuscare-backend/pkg/logger"
)

// ListLocations returns every seeded location in insertion order.
func ListLocations(svc locations.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "locations service unavailable"))
			return
		}

		resp, err := svc.List(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, resp)
	}
}
