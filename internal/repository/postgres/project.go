package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"vidplan/internal/domain"
	"vidplan/internal/domain/models"
	"vidplan/internal/domain/repositories"
)

// PostgresProjectRepository implements the ProjectRepository interface
type PostgresProjectRepository struct {
	pool   *pgxpool.Pool
	tables *TableNames
}

// NewProjectRepository creates a new project repository
func NewProjectRepository(config *RepositoryConfig) repositories.ProjectRepository {
	return &PostgresProjectRepository{
		pool:   config.Pool,
		tables: config.Tables,
	}
}

// Create inserts a project and fills in its generated ID and timestamps
func (r *PostgresProjectRepository) Create(ctx context.Context, project *models.Project) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (name, description, status, video_title, workspace_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at
	`, r.tables.Projects)

	executor := GetExecutor(ctx, r.pool)
	err := executor.QueryRow(ctx, query,
		project.Name,
		project.Description,
		project.Status,
		project.VideoTitle,
		project.WorkspaceID,
	).Scan(&project.ID, &project.CreatedAt, &project.UpdatedAt)

	if err != nil {
		if IsPgDuplicateError(err) {
			return r.conflictError(ctx, project.WorkspaceID, project.Name)
		}
		if IsPgForeignKeyError(err) {
			return fmt.Errorf("workspace %d: %w", project.WorkspaceID, domain.ErrNotFound)
		}
		return fmt.Errorf("create project: %w", err)
	}

	return nil
}

// GetByID retrieves a project by ID within a workspace. A project in another
// workspace is reported identically to a missing one.
func (r *PostgresProjectRepository) GetByID(ctx context.Context, id, workspaceID int64) (*models.Project, error) {
	query := fmt.Sprintf(`
		SELECT id, name, description, status, video_title, workspace_id, created_at, updated_at
		FROM %s
		WHERE id = $1 AND workspace_id = $2
	`, r.tables.Projects)

	var project models.Project
	executor := GetExecutor(ctx, r.pool)
	err := executor.QueryRow(ctx, query, id, workspaceID).Scan(
		&project.ID,
		&project.Name,
		&project.Description,
		&project.Status,
		&project.VideoTitle,
		&project.WorkspaceID,
		&project.CreatedAt,
		&project.UpdatedAt,
	)

	if err != nil {
		if IsPgNoRowsError(err) {
			return nil, fmt.Errorf("project %d: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("get project: %w", err)
	}

	return &project, nil
}

// List retrieves all projects in a workspace, ordered by created_at DESC
func (r *PostgresProjectRepository) List(ctx context.Context, workspaceID int64) ([]models.Project, error) {
	query := fmt.Sprintf(`
		SELECT id, name, description, status, video_title, workspace_id, created_at, updated_at
		FROM %s
		WHERE workspace_id = $1
		ORDER BY created_at DESC
	`, r.tables.Projects)

	executor := GetExecutor(ctx, r.pool)
	rows, err := executor.Query(ctx, query, workspaceID)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	defer rows.Close()

	var projects []models.Project
	for rows.Next() {
		var project models.Project
		err := rows.Scan(
			&project.ID,
			&project.Name,
			&project.Description,
			&project.Status,
			&project.VideoTitle,
			&project.WorkspaceID,
			&project.CreatedAt,
			&project.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan project: %w", err)
		}
		projects = append(projects, project)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate projects: %w", err)
	}

	// Return empty slice instead of nil if no projects
	if projects == nil {
		projects = []models.Project{}
	}

	return projects, nil
}

// Update persists field changes and bumps updated_at
func (r *PostgresProjectRepository) Update(ctx context.Context, project *models.Project) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET name = $1, description = $2, status = $3, video_title = $4, updated_at = NOW()
		WHERE id = $5 AND workspace_id = $6
		RETURNING updated_at
	`, r.tables.Projects)

	executor := GetExecutor(ctx, r.pool)
	err := executor.QueryRow(ctx, query,
		project.Name,
		project.Description,
		project.Status,
		project.VideoTitle,
		project.ID,
		project.WorkspaceID,
	).Scan(&project.UpdatedAt)

	if err != nil {
		if IsPgNoRowsError(err) {
			return fmt.Errorf("project %d: %w", project.ID, domain.ErrNotFound)
		}
		if IsPgDuplicateError(err) {
			return r.conflictError(ctx, project.WorkspaceID, project.Name)
		}
		return fmt.Errorf("update project: %w", err)
	}

	return nil
}

// Delete removes a project within a workspace
func (r *PostgresProjectRepository) Delete(ctx context.Context, id, workspaceID int64) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE id = $1 AND workspace_id = $2`, r.tables.Projects)

	executor := GetExecutor(ctx, r.pool)
	result, err := executor.Exec(ctx, query, id, workspaceID)
	if err != nil {
		return fmt.Errorf("delete project: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("project %d: %w", id, domain.ErrNotFound)
	}

	return nil
}

// FindByName finds a project by case-insensitive name within a workspace.
// excludeID lets updates ignore the record itself; 0 excludes nothing since
// ids start at 1.
func (r *PostgresProjectRepository) FindByName(ctx context.Context, workspaceID int64, name string, excludeID int64) (*models.Project, error) {
	query := fmt.Sprintf(`
		SELECT id, name, description, status, video_title, workspace_id, created_at, updated_at
		FROM %s
		WHERE workspace_id = $1 AND lower(name) = lower($2) AND id <> $3
	`, r.tables.Projects)

	var project models.Project
	executor := GetExecutor(ctx, r.pool)
	err := executor.QueryRow(ctx, query, workspaceID, name, excludeID).Scan(
		&project.ID,
		&project.Name,
		&project.Description,
		&project.Status,
		&project.VideoTitle,
		&project.WorkspaceID,
		&project.CreatedAt,
		&project.UpdatedAt,
	)

	if err != nil {
		if IsPgNoRowsError(err) {
			return nil, fmt.Errorf("project %q: %w", name, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("find project by name: %w", err)
	}

	return &project, nil
}

// conflictError builds the structured conflict for a taken project name,
// looking up the existing row's id when possible.
func (r *PostgresProjectRepository) conflictError(ctx context.Context, workspaceID int64, name string) error {
	conflict := &domain.ConflictError{
		Message:      fmt.Sprintf("a project named %q already exists", name),
		ResourceType: "project",
	}
	if existing, err := r.FindByName(ctx, workspaceID, name, 0); err == nil {
		conflict.ResourceID = existing.ID
	}
	return conflict
}
