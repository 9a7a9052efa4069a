package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"vidplan/internal/domain"
	"vidplan/internal/domain/models"
	"vidplan/internal/domain/repositories"
)

// PostgresWorkspaceRepository implements the WorkspaceRepository interface
type PostgresWorkspaceRepository struct {
	pool   *pgxpool.Pool
	tables *TableNames
}

// NewWorkspaceRepository creates a new workspace repository
func NewWorkspaceRepository(config *RepositoryConfig) repositories.WorkspaceRepository {
	return &PostgresWorkspaceRepository{
		pool:   config.Pool,
		tables: config.Tables,
	}
}

// Create inserts a workspace and fills in its generated ID and timestamps
func (r *PostgresWorkspaceRepository) Create(ctx context.Context, workspace *models.Workspace) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (name, description)
		VALUES ($1, $2)
		RETURNING id, created_at, updated_at
	`, r.tables.Workspaces)

	executor := GetExecutor(ctx, r.pool)
	err := executor.QueryRow(ctx, query,
		workspace.Name,
		workspace.Description,
	).Scan(&workspace.ID, &workspace.CreatedAt, &workspace.UpdatedAt)

	if err != nil {
		if IsPgDuplicateError(err) {
			return r.conflictError(ctx, workspace.Name)
		}
		return fmt.Errorf("create workspace: %w", err)
	}

	return nil
}

// GetByID retrieves a workspace by ID, including its project count
func (r *PostgresWorkspaceRepository) GetByID(ctx context.Context, id int64) (*models.Workspace, error) {
	query := fmt.Sprintf(`
		SELECT w.id, w.name, w.description, w.created_at, w.updated_at,
			(SELECT COUNT(*) FROM %s p WHERE p.workspace_id = w.id)
		FROM %s w
		WHERE w.id = $1
	`, r.tables.Projects, r.tables.Workspaces)

	var workspace models.Workspace
	executor := GetExecutor(ctx, r.pool)
	err := executor.QueryRow(ctx, query, id).Scan(
		&workspace.ID,
		&workspace.Name,
		&workspace.Description,
		&workspace.CreatedAt,
		&workspace.UpdatedAt,
		&workspace.ProjectCount,
	)

	if err != nil {
		if IsPgNoRowsError(err) {
			return nil, fmt.Errorf("workspace %d: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("get workspace: %w", err)
	}

	return &workspace, nil
}

// GetByName retrieves a workspace by exact name match
func (r *PostgresWorkspaceRepository) GetByName(ctx context.Context, name string) (*models.Workspace, error) {
	query := fmt.Sprintf(`
		SELECT id, name, description, created_at, updated_at
		FROM %s
		WHERE name = $1
	`, r.tables.Workspaces)

	var workspace models.Workspace
	executor := GetExecutor(ctx, r.pool)
	err := executor.QueryRow(ctx, query, name).Scan(
		&workspace.ID,
		&workspace.Name,
		&workspace.Description,
		&workspace.CreatedAt,
		&workspace.UpdatedAt,
	)

	if err != nil {
		if IsPgNoRowsError(err) {
			return nil, fmt.Errorf("workspace %q: %w", name, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("get workspace by name: %w", err)
	}

	return &workspace, nil
}

// List retrieves all workspaces ordered by created_at DESC
func (r *PostgresWorkspaceRepository) List(ctx context.Context) ([]models.Workspace, error) {
	query := fmt.Sprintf(`
		SELECT w.id, w.name, w.description, w.created_at, w.updated_at,
			(SELECT COUNT(*) FROM %s p WHERE p.workspace_id = w.id)
		FROM %s w
		ORDER BY w.created_at DESC
	`, r.tables.Projects, r.tables.Workspaces)

	executor := GetExecutor(ctx, r.pool)
	rows, err := executor.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list workspaces: %w", err)
	}
	defer rows.Close()

	var workspaces []models.Workspace
	for rows.Next() {
		var workspace models.Workspace
		err := rows.Scan(
			&workspace.ID,
			&workspace.Name,
			&workspace.Description,
			&workspace.CreatedAt,
			&workspace.UpdatedAt,
			&workspace.ProjectCount,
		)
		if err != nil {
			return nil, fmt.Errorf("scan workspace: %w", err)
		}
		workspaces = append(workspaces, workspace)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate workspaces: %w", err)
	}

	// Return empty slice instead of nil if no workspaces
	if workspaces == nil {
		workspaces = []models.Workspace{}
	}

	return workspaces, nil
}

// Update persists name/description changes and bumps updated_at
func (r *PostgresWorkspaceRepository) Update(ctx context.Context, workspace *models.Workspace) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET name = $1, description = $2, updated_at = NOW()
		WHERE id = $3
		RETURNING updated_at
	`, r.tables.Workspaces)

	executor := GetExecutor(ctx, r.pool)
	err := executor.QueryRow(ctx, query,
		workspace.Name,
		workspace.Description,
		workspace.ID,
	).Scan(&workspace.UpdatedAt)

	if err != nil {
		if IsPgNoRowsError(err) {
			return fmt.Errorf("workspace %d: %w", workspace.ID, domain.ErrNotFound)
		}
		if IsPgDuplicateError(err) {
			return r.conflictError(ctx, workspace.Name)
		}
		return fmt.Errorf("update workspace: %w", err)
	}

	return nil
}

// Delete removes a workspace row, cascading to its projects and templates
func (r *PostgresWorkspaceRepository) Delete(ctx context.Context, id int64) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE id = $1`, r.tables.Workspaces)

	executor := GetExecutor(ctx, r.pool)
	result, err := executor.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("delete workspace: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("workspace %d: %w", id, domain.ErrNotFound)
	}

	return nil
}

// CountProjects returns the number of projects owned by a workspace
func (r *PostgresWorkspaceRepository) CountProjects(ctx context.Context, workspaceID int64) (int64, error) {
	query := fmt.Sprintf(`SELECT COUNT(*) FROM %s WHERE workspace_id = $1`, r.tables.Projects)

	var count int64
	executor := GetExecutor(ctx, r.pool)
	if err := executor.QueryRow(ctx, query, workspaceID).Scan(&count); err != nil {
		return 0, fmt.Errorf("count projects: %w", err)
	}

	return count, nil
}

// conflictError builds the structured conflict for a taken workspace name,
// looking up the existing row's id when possible. The raw constraint error
// never reaches the caller.
func (r *PostgresWorkspaceRepository) conflictError(ctx context.Context, name string) error {
	conflict := &domain.ConflictError{
		Message:      fmt.Sprintf("workspace %q already exists", name),
		ResourceType: "workspace",
	}
	if existing, err := r.GetByName(ctx, name); err == nil {
		conflict.ResourceID = existing.ID
	}
	return conflict
}
