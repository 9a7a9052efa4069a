package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"vidplan/internal/domain"
	"vidplan/internal/domain/models"
	"vidplan/internal/domain/repositories"
)

// PostgresTemplateRepository implements the TemplateRepository interface
type PostgresTemplateRepository struct {
	pool   *pgxpool.Pool
	tables *TableNames
}

// NewTemplateRepository creates a new template repository
func NewTemplateRepository(config *RepositoryConfig) repositories.TemplateRepository {
	return &PostgresTemplateRepository{
		pool:   config.Pool,
		tables: config.Tables,
	}
}

// Create inserts a template and fills in its generated ID and timestamps
func (r *PostgresTemplateRepository) Create(ctx context.Context, template *models.Template) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (type, name, content, workspace_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at
	`, r.tables.Templates)

	executor := GetExecutor(ctx, r.pool)
	err := executor.QueryRow(ctx, query,
		template.Type,
		template.Name,
		template.Content,
		template.WorkspaceID,
	).Scan(&template.ID, &template.CreatedAt, &template.UpdatedAt)

	if err != nil {
		if IsPgDuplicateError(err) {
			return r.conflictError(ctx, template.WorkspaceID, template.Type, template.Content)
		}
		if IsPgForeignKeyError(err) {
			return fmt.Errorf("workspace %d: %w", template.WorkspaceID, domain.ErrNotFound)
		}
		return fmt.Errorf("create template: %w", err)
	}

	return nil
}

// GetByID retrieves a template by ID within a workspace. A template in
// another workspace is reported identically to a missing one.
func (r *PostgresTemplateRepository) GetByID(ctx context.Context, id, workspaceID int64) (*models.Template, error) {
	query := fmt.Sprintf(`
		SELECT id, type, name, content, workspace_id, created_at, updated_at
		FROM %s
		WHERE id = $1 AND workspace_id = $2
	`, r.tables.Templates)

	var template models.Template
	executor := GetExecutor(ctx, r.pool)
	err := executor.QueryRow(ctx, query, id, workspaceID).Scan(
		&template.ID,
		&template.Type,
		&template.Name,
		&template.Content,
		&template.WorkspaceID,
		&template.CreatedAt,
		&template.UpdatedAt,
	)

	if err != nil {
		if IsPgNoRowsError(err) {
			return nil, fmt.Errorf("template %d: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("get template: %w", err)
	}

	return &template, nil
}

// List retrieves templates in a workspace, newest first, optionally
// filtered by type
func (r *PostgresTemplateRepository) List(ctx context.Context, workspaceID int64, typeFilter string) ([]models.Template, error) {
	query := fmt.Sprintf(`
		SELECT id, type, name, content, workspace_id, created_at, updated_at
		FROM %s
		WHERE workspace_id = $1 AND ($2 = '' OR type = $2)
		ORDER BY created_at DESC
	`, r.tables.Templates)

	executor := GetExecutor(ctx, r.pool)
	rows, err := executor.Query(ctx, query, workspaceID, typeFilter)
	if err != nil {
		return nil, fmt.Errorf("list templates: %w", err)
	}
	defer rows.Close()

	var templates []models.Template
	for rows.Next() {
		var template models.Template
		err := rows.Scan(
			&template.ID,
			&template.Type,
			&template.Name,
			&template.Content,
			&template.WorkspaceID,
			&template.CreatedAt,
			&template.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan template: %w", err)
		}
		templates = append(templates, template)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate templates: %w", err)
	}

	// Return empty slice instead of nil if no templates
	if templates == nil {
		templates = []models.Template{}
	}

	return templates, nil
}

// Update persists field changes and bumps updated_at
func (r *PostgresTemplateRepository) Update(ctx context.Context, template *models.Template) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET type = $1, name = $2, content = $3, updated_at = NOW()
		WHERE id = $4 AND workspace_id = $5
		RETURNING updated_at
	`, r.tables.Templates)

	executor := GetExecutor(ctx, r.pool)
	err := executor.QueryRow(ctx, query,
		template.Type,
		template.Name,
		template.Content,
		template.ID,
		template.WorkspaceID,
	).Scan(&template.UpdatedAt)

	if err != nil {
		if IsPgNoRowsError(err) {
			return fmt.Errorf("template %d: %w", template.ID, domain.ErrNotFound)
		}
		if IsPgDuplicateError(err) {
			return r.conflictError(ctx, template.WorkspaceID, template.Type, template.Content)
		}
		return fmt.Errorf("update template: %w", err)
	}

	return nil
}

// Delete removes a template within a workspace
func (r *PostgresTemplateRepository) Delete(ctx context.Context, id, workspaceID int64) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE id = $1 AND workspace_id = $2`, r.tables.Templates)

	executor := GetExecutor(ctx, r.pool)
	result, err := executor.Exec(ctx, query, id, workspaceID)
	if err != nil {
		return fmt.Errorf("delete template: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("template %d: %w", id, domain.ErrNotFound)
	}

	return nil
}

// FindByContent finds a template by case-insensitive content within
// (workspace, type). excludeID lets updates ignore the record itself; 0
// excludes nothing since ids start at 1.
func (r *PostgresTemplateRepository) FindByContent(ctx context.Context, workspaceID int64, templateType, content string, excludeID int64) (*models.Template, error) {
	query := fmt.Sprintf(`
		SELECT id, type, name, content, workspace_id, created_at, updated_at
		FROM %s
		WHERE workspace_id = $1 AND type = $2 AND lower(content) = lower($3) AND id <> $4
	`, r.tables.Templates)

	var template models.Template
	executor := GetExecutor(ctx, r.pool)
	err := executor.QueryRow(ctx, query, workspaceID, templateType, content, excludeID).Scan(
		&template.ID,
		&template.Type,
		&template.Name,
		&template.Content,
		&template.WorkspaceID,
		&template.CreatedAt,
		&template.UpdatedAt,
	)

	if err != nil {
		if IsPgNoRowsError(err) {
			return nil, fmt.Errorf("template content: %w", domain.ErrNotFound)
		}
		return nil, fmt.Errorf("find template by content: %w", err)
	}

	return &template, nil
}

// conflictError builds the structured conflict for duplicate template
// content, looking up the existing row's id when possible.
func (r *PostgresTemplateRepository) conflictError(ctx context.Context, workspaceID int64, templateType, content string) error {
	conflict := &domain.ConflictError{
		Message:      "a template with this content already exists",
		ResourceType: "template",
	}
	if existing, err := r.FindByContent(ctx, workspaceID, templateType, content, 0); err == nil {
		conflict.ResourceID = existing.ID
		conflict.Message = fmt.Sprintf("a template with this content already exists (id %d)", existing.ID)
	}
	return conflict
}
