package handler

import (
	"errors"
	"net/http"
	"strconv"

	"vidplan/internal/domain"
	"vidplan/internal/httputil"
)

// handleError converts domain errors to HTTP responses. Storage error
// details never reach the client; anything unclassified becomes a bare 500.
func handleError(w http.ResponseWriter, err error) {
	var businessErr *domain.BusinessRuleError
	var conflictErr *domain.ConflictError

	switch {
	case errors.Is(err, domain.ErrValidation):
		httputil.RespondError(w, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		httputil.RespondError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrForbidden):
		httputil.RespondError(w, http.StatusForbidden, err.Error())
	case errors.As(err, &businessErr):
		httputil.RespondErrorWithExtras(w, http.StatusBadRequest, businessErr.Error(), map[string]interface{}{
			"project_count": businessErr.ProjectCount,
		})
	case errors.As(err, &conflictErr):
		if conflictErr.ResourceID != 0 {
			httputil.RespondErrorWithExtras(w, http.StatusConflict, conflictErr.Error(), map[string]interface{}{
				"existing_id": conflictErr.ResourceID,
			})
			return
		}
		httputil.RespondError(w, http.StatusConflict, conflictErr.Error())
	case errors.Is(err, domain.ErrConflict):
		httputil.RespondError(w, http.StatusConflict, err.Error())
	default:
		httputil.RespondError(w, http.StatusInternalServerError, "internal server error")
	}
}

// parseID extracts the {id} path value as a positive integer
func parseID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, errors.New("id must be a positive integer")
	}
	return id, nil
}
