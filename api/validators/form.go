package validators

import (
	"net/http"
	"strconv"

	pkgerrors "github.com/campuscare/campuscare-backend/pkg/errors"
)

// FormString returns the named multipart field, failing when the field was
// not sent at all. An explicitly empty value is accepted.
func FormString(r *http.Request, field string) (string, error) {
	if r.MultipartForm == nil {
		return "", pkgerrors.New(pkgerrors.CodeValidation, "multipart form required")
	}
	values, ok := r.MultipartForm.Value[field]
	if !ok || len(values) == 0 {
		return "", pkgerrors.New(pkgerrors.CodeValidation, "form field is required").
			WithDetails(map[string]any{"field": field})
	}
	return values[0], nil
}

// FormInt64 returns the named multipart field parsed as an integer.
func FormInt64(r *http.Request, field string) (int64, error) {
	raw, err := FormString(r, field)
	if err != nil {
		return 0, err
	}
	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, pkgerrors.New(pkgerrors.CodeValidation, "form field must be an integer").
			WithDetails(map[string]any{"field": field})
	}
	return value, nil
}
