package httputil

import (
	"context"
	"net/http"
)

// Context key type to avoid collisions
type contextKey string

const (
	workspaceIDKey contextKey = "workspaceID"
	requestIDKey   contextKey = "requestID"
)

// WithWorkspaceID adds the effective workspace id to the request context
func WithWorkspaceID(r *http.Request, workspaceID int64) *http.Request {
	ctx := context.WithValue(r.Context(), workspaceIDKey, workspaceID)
	return r.WithContext(ctx)
}

// GetWorkspaceID retrieves the effective workspace id from the request
// context, returns 0 if not set
func GetWorkspaceID(r *http.Request) int64 {
	workspaceID, _ := r.Context().Value(workspaceIDKey).(int64)
	return workspaceID
}

// WithRequestID adds a request id to the request context
func WithRequestID(r *http.Request, requestID string) *http.Request {
	ctx := context.WithValue(r.Context(), requestIDKey, requestID)
	return r.WithContext(ctx)
}

// GetRequestID retrieves the request id from context, returns empty string
// if not set
func GetRequestID(r *http.Request) string {
	requestID, _ := r.Context().Value(requestIDKey).(string)
	return requestID
}
