package validators

import (
	"net/http"
	"strconv"
	"strings"

	pkgerrors "github.com/campuscare/campuscare-backend/pkg/errors"
)

func ParseQueryInt(r *http.Request, key string, defaultVal, min int) (int, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(key))
	if raw == "" {
		return defaultVal, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, pkgerrors.New(pkgerrors.CodeValidation, "query parameter must be numeric").WithDetails(map[string]any{"field": key})
	}
	if value < min {
		return 0, pkgerrors.New(pkgerrors.CodeValidation, "query parameter out of range").WithDetails(map[string]any{"field": key, "min": min})
	}
	return value, nil
}
