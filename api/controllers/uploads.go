package controllers

import (
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"

	"github.com/campuscare/campuscare-backend/api/responses"
	pkgerrors "github.com/campuscare/campuscare-backend/pkg/errors"
	"github.com/campuscare/campuscare-backend/pkg/logger"
	"github.com/campuscare/campuscare-backend/pkg/storage/local"
)

// ServeUpload streams a stored report image back to the client.
func ServeUpload(store *local.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if store == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "upload store unavailable"))
			return
		}

		filename := chi.URLParam(r, "filename")
		path, err := store.Resolve(filename)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeNotFound, err, "upload not found"))
			return
		}

		info, err := os.Stat(path)
		if err != nil || info.IsDir() {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeNotFound, "upload not found"))
			return
		}

		http.ServeFile(w, r, path)
	}
}
