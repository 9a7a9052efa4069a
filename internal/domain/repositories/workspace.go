package repositories

import (
	"context"

	"vidplan/internal/domain/models"
)

// WorkspaceRepository defines data access operations for workspaces
type WorkspaceRepository interface {
	// Create inserts a workspace and fills in its generated ID and
	// timestamps. Returns a ConflictError if the name is already taken.
	Create(ctx context.Context, workspace *models.Workspace) error

	// GetByID retrieves a workspace by ID, including its project count
	GetByID(ctx context.Context, id int64) (*models.Workspace, error)

	// GetByName retrieves a workspace by exact name match.
	// Used by the duplicate pre-check; returns ErrNotFound when free.
	GetByName(ctx context.Context, name string) (*models.Workspace, error)

	// List retrieves all workspaces ordered by created_at DESC,
	// including project counts
	List(ctx context.Context) ([]models.Workspace, error)

	// Update persists name/description changes and bumps updated_at
	Update(ctx context.Context, workspace *models.Workspace) error

	// Delete removes a workspace row. Owned projects and templates go
	// with it via ON DELETE CASCADE.
	Delete(ctx context.Context, id int64) error

	// CountProjects returns the number of projects owned by a workspace
	CountProjects(ctx context.Context, workspaceID int64) (int64, error)
}
