package repositories

import (
	"context"

	"vidplan/internal/domain/models"
)

// ProjectRepository defines data access operations for projects.
// All lookups are scoped by workspace: a project in another workspace is
// indistinguishable from a missing one.
type ProjectRepository interface {
	// Create inserts a project and fills in its generated ID and
	// timestamps. Returns a ConflictError if the name is already taken
	// within the workspace (case-insensitive), or ErrNotFound if the
	// workspace does not exist.
	Create(ctx context.Context, project *models.Project) error

	// GetByID retrieves a project by ID within a workspace
	GetByID(ctx context.Context, id, workspaceID int64) (*models.Project, error)

	// List retrieves all projects in a workspace, ordered by created_at DESC
	List(ctx context.Context, workspaceID int64) ([]models.Project, error)

	// Update persists field changes and bumps updated_at
	Update(ctx context.Context, project *models.Project) error

	// Delete removes a project within a workspace
	Delete(ctx context.Context, id, workspaceID int64) error

	// FindByName finds a project whose name matches under case-insensitive
	// comparison within a workspace. excludeID ignores the record itself
	// on updates (0 excludes nothing). Returns ErrNotFound when free.
	FindByName(ctx context.Context, workspaceID int64, name string, excludeID int64) (*models.Project, error)
}
