package services

import (
	"context"

	"vidplan/internal/domain/models"
	"vidplan/internal/httputil"
)

// CreateProjectRequest represents a request to create a project.
// WorkspaceID is resolved from the scope header by the handler, never from
// the body.
type CreateProjectRequest struct {
	Name        string                  `json:"name"`
	Description httputil.OptionalString `json:"description"`
	Status      string                  `json:"status"`
	VideoTitle  httputil.OptionalString `json:"video_title"`
	WorkspaceID int64                   `json:"-"`
}

// UpdateProjectRequest represents a partial update to a project.
// Only fields present in the JSON body are validated and applied.
type UpdateProjectRequest struct {
	Name        httputil.OptionalString `json:"name"`
	Description httputil.OptionalString `json:"description"`
	Status      httputil.OptionalString `json:"status"`
	VideoTitle  httputil.OptionalString `json:"video_title"`
}

// ProjectService defines business logic operations for projects. Every
// operation is scoped to the effective workspace resolved from the request.
type ProjectService interface {
	// CreateProject creates a project in the request's workspace
	CreateProject(ctx context.Context, req *CreateProjectRequest) (*models.Project, error)

	// GetProject retrieves a project by ID within a workspace
	GetProject(ctx context.Context, id, workspaceID int64) (*models.Project, error)

	// ListProjects retrieves all projects in a workspace, newest first
	ListProjects(ctx context.Context, workspaceID int64) ([]models.Project, error)

	// UpdateProject applies a partial update to a project
	UpdateProject(ctx context.Context, id, workspaceID int64, req *UpdateProjectRequest) (*models.Project, error)

	// DeleteProject deletes a project within a workspace
	DeleteProject(ctx context.Context, id, workspaceID int64) error
}
