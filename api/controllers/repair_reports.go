package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/campuscare/campuscare-backend/api/responses"
	"github.com/campuscare/campuscare-backend/api/validators"
	"github.com/campuscare/campuscare-backend/internal/repairs"
	"github.com/campuscare/campuscare-backend/pkg/config"
	"github.com/campuscare/campuscare-backend/pkg/enums"
	pkgerrors "github.com/campuscare/campuscare-backend/pkg/errors"
	"github.com/campuscare/campuscare-backend/pkg/logger"
	"github.com/campuscare/campuscare-backend/pkg/pagination"
)

// CreateRepairReport accepts a multipart form with an optional image part.
func CreateRepairReport(svc repairs.Service, uploads config.UploadsConfig, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "repairs service unavailable"))
			return
		}

		if err := r.ParseMultipartForm(uploads.MaxUploadBytes()); err != nil {
			responses.WriteError(r.Context(), logg, w,
				pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid multipart form"))
			return
		}

		locationID, err := validators.FormInt64(r, "location_id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		description, err := validators.FormString(r, "description")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		reportedBy, err := validators.FormInt64(r, "reported_by_user_id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		params := repairs.CreateReportParams{
			LocationID:       locationID,
			Description:      description,
			ReportedByUserID: reportedBy,
		}

		file, header, err := r.FormFile("image")
		switch {
		case err == nil:
			defer file.Close()
			params.Image = &repairs.ImageUpload{Filename: header.Filename, Content: file}
		case errors.Is(err, http.ErrMissingFile):
			// image is optional
		default:
			responses.WriteError(r.Context(), logg, w,
				pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid image upload"))
			return
		}

		resp, err := svc.Create(r.Context(), params)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, resp)
	}
}

// ListRepairReports serves reports newest first, paginated via skip/limit.
func ListRepairReports(svc repairs.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "repairs service unavailable"))
			return
		}

		skip, err := validators.ParseQueryInt(r, "skip", 0, 0)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		limit, err := validators.ParseQueryInt(r, "limit", repairs.DefaultPageSize, 0)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		// An explicit limit=0 asks for an empty page.
		if limit == 0 {
			responses.WriteSuccess(w, []repairs.ReportResponse{})
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

type updateRepairReportRequest struct {
	Status string `json:"status" validate:"required"`
}

// UpdateRepairReportStatus moves a report through its lifecycle. Returns
// 404 when the id is unknown; any valid status may replace any other.
func UpdateRepairReportStatus(svc repairs.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "repairs service unavailable"))
			return
		}

		reportID, err := strconv.ParseInt(chi.URLParam(r, "reportID"), 10, 64)
		if err != nil {
			responses.WriteError(r.Context(), logg, w,
				pkgerrors.New(pkgerrors.CodeValidation, "report id must be an integer"))
			return
		}

		var req updateRepairReportRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		status, err := enums.ParseReportStatus(req.Status)
		if err != nil {
			responses.WriteError(r.Context(), logg, w,
				pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid report status").
					WithDetails(map[string]any{"status": req.Status}))
			return
		}

		resp, err := svc.UpdateStatus(r.Context(), reportID, status)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, resp)
	}
}
