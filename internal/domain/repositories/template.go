package repositories

import (
	"context"

	"vidplan/internal/domain/models"
)

// TemplateRepository defines data access operations for templates.
// All lookups are scoped by workspace.
type TemplateRepository interface {
	// Create inserts a template and fills in its generated ID and
	// timestamps. Returns a ConflictError if equivalent content already
	// exists within (workspace, type), or ErrNotFound if the workspace
	// does not exist.
	Create(ctx context.Context, template *models.Template) error

	// GetByID retrieves a template by ID within a workspace
	GetByID(ctx context.Context, id, workspaceID int64) (*models.Template, error)

	// List retrieves all templates in a workspace, ordered by created_at
	// DESC. typeFilter narrows to one type when non-empty.
	List(ctx context.Context, workspaceID int64, typeFilter string) ([]models.Template, error)

	// Update persists field changes and bumps updated_at
	Update(ctx context.Context, template *models.Template) error

	// Delete removes a template within a workspace
	Delete(ctx context.Context, id, workspaceID int64) error

	// FindByContent finds a template whose content matches under
	// case-insensitive comparison within (workspace, type). excludeID
	// ignores the record itself on updates (0 excludes nothing).
	// Returns ErrNotFound when free.
	FindByContent(ctx context.Context, workspaceID int64, templateType, content string, excludeID int64) (*models.Template, error)
}
