package controllers

import (
	"net/http"

	"github.com/campuscare/campuscare-backend/api/responses"
	"github.com/campuscare/campuscare-backend/api/validators"
	"github.com/campuscare/campuscare-backend/internal/cleaning"
	pkgerrors "github.com/campuscare/campuscare-backend/pkg/errors"
	"github.com/campuscare/campuscare-backend/pkg/logger"
	"github.com/campuscare/campuscare-backend/pkg/pagination"
)

// CreateCleaningRecord records that a user cleaned a location just now.
func CreateCleaningRecord(svc cleaning.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cleaning service unavailable"))
			return
		}

		var req cleaning.CreateRecordRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		resp, err := svc.Create(r.Context(), req)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, resp)
	}
}

// ListCleaningRecords serves the newest-first cleaning log, paginated via
// skip/limit.
func ListCleaningRecords(svc cleaning.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cleaning service unavailable"))
			return
		}

		skip, err := validators.ParseQueryInt(r, "skip", 0, 0)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		limit, err := validators.ParseQueryInt(r, "limit", cleaning.DefaultPageSize, 0)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		// An explicit limit=0 asks for an empty page.
		if limit == 0 {
			responses.WriteSuccess(w, []cleaning.RecordResponse{})
			return
		}

		resp, err := svc.List(r.Context(), pagination.Params{Offset: skip, Limit: limit})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, resp)
	}
}
