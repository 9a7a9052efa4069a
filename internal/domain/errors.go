package domain

import (
	"errors"
	"net/http"
)

// Sentinel errors for error classification - use with errors.Is()
var (
	ErrNotFound   = errors.New("not found")
	ErrConflict   = errors.New("already exists")
	ErrValidation = errors.New("validation failed")
	ErrForbidden  = errors.New("forbidden")
)

// ConflictError represents a duplicate-detection conflict with details about
// the existing resource. Raised both by the application-level pre-check and
// by the storage-constraint backstop so callers see one error class for both
// paths.
type ConflictError struct {
	Message      string // Human-readable error message naming the colliding value
	ResourceType string // Type of resource (workspace, project, template)
	ResourceID   int64  // ID of the existing/conflicting resource, 0 if unknown
}

// Error implements the error interface
func (e *ConflictError) Error() string {
	return e.Message
}

// StatusCode implements the HTTPError interface
func (e *ConflictError) StatusCode() int {
	return http.StatusConflict
}

// Is allows errors.Is() to match against ErrConflict
func (e *ConflictError) Is(target error) bool {
	return target == ErrConflict
}

// BusinessRuleError indicates an operation blocked by a business rule, such
// as deleting a workspace that still owns projects. ProjectCount reports how
// many projects block the deletion.
type BusinessRuleError struct {
	Message      string
	ProjectCount int64
}

// Error implements the error interface
func (e *BusinessRuleError) Error() string {
	return e.Message
}

// StatusCode implements the HTTPError interface
func (e *BusinessRuleError) StatusCode() int {
	return http.StatusBadRequest
}
