package middleware

import (
	"net/http"
	"strconv"
	"strings"

	"vidplan/internal/config"
	"vidplan/internal/httputil"
)

// ScopeHeader carries the caller's workspace id. Absent, blank, "0" and
// "null" all resolve to the default workspace.
const ScopeHeader = "X-Workspace-Id"

// WorkspaceScope resolves the effective workspace for the request and
// stores it in the context. A malformed header is rejected before any
// handler runs.
func WorkspaceScope() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			workspaceID, err := resolveWorkspaceID(r.Header.Get(ScopeHeader))
			if err != nil {
				httputil.RespondError(w, http.StatusUnprocessableEntity, err.Error())
				return
			}

			next.ServeHTTP(w, httputil.WithWorkspaceID(r, workspaceID))
		})
	}
}

func resolveWorkspaceID(raw string) (int64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" || raw == "0" || raw == "null" {
		return config.DefaultWorkspaceID, nil
	}

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id < 0 {
		return 0, &scopeError{raw}
	}
	if id == 0 {
		return config.DefaultWorkspaceID, nil
	}
	return id, nil
}

type scopeError struct {
	value string
}

func (e *scopeError) Error() string {
	return "X-Workspace-Id must be a positive integer, got " + strconv.Quote(e.value)
}
