package services

import (
	"context"

	"vidplan/internal/domain/models"
	"vidplan/internal/httputil"
)

// CreateWorkspaceRequest represents a request to create a workspace
type CreateWorkspaceRequest struct {
	Name        string                  `json:"name"`
	Description httputil.OptionalString `json:"description"`
}

// UpdateWorkspaceRequest represents a partial update to a workspace.
// Only fields present in the JSON body are applied.
type UpdateWorkspaceRequest struct {
	Name        httputil.OptionalString `json:"name"`
	Description httputil.OptionalString `json:"description"`
}

// WorkspaceService defines business logic operations for workspaces
type WorkspaceService interface {
	// CreateWorkspace creates a new workspace with a globally unique name
	CreateWorkspace(ctx context.Context, req *CreateWorkspaceRequest) (*models.Workspace, error)

	// GetWorkspace retrieves a workspace by ID
	GetWorkspace(ctx context.Context, id int64) (*models.Workspace, error)

	// ListWorkspaces retrieves all workspaces, newest first
	ListWorkspaces(ctx context.Context) ([]models.Workspace, error)

	// UpdateWorkspace applies a partial update. Renaming the default
	// workspace is forbidden; its description may change.
	UpdateWorkspace(ctx context.Context, id int64, req *UpdateWorkspaceRequest) (*models.Workspace, error)

	// DeleteWorkspace deletes a workspace. The default workspace can never
	// be deleted; a workspace owning projects is rejected with a
	// BusinessRuleError reporting the blocking project count.
	DeleteWorkspace(ctx context.Context, id int64) error
}
