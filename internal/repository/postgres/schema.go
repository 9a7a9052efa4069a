package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// RunSchema creates tables and indexes if they don't exist. Safe to call on
// every startup.
//
// Case-insensitive uniqueness rules are enforced with functional unique
// indexes over lower(...) expressions. The application-level duplicate
// pre-checks exist only for friendlier errors; these indexes are the source
// of truth under concurrent writes.
func RunSchema(ctx context.Context, pool *pgxpool.Pool, tables *TableNames, tablePrefix string) error {
	createWorkspaces := `
		CREATE TABLE IF NOT EXISTS ` + tables.Workspaces + ` (
			id BIGSERIAL PRIMARY KEY,
			name VARCHAR(100) NOT NULL,
			description VARCHAR(500),
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)
	`
	if _, err := pool.Exec(ctx, createWorkspaces); err != nil {
		return fmt.Errorf("create workspaces table: %w", err)
	}

	createProjects := `
		CREATE TABLE IF NOT EXISTS ` + tables.Projects + ` (
			id BIGSERIAL PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			description VARCHAR(2000),
			status VARCHAR(50) NOT NULL DEFAULT 'planned',
			video_title VARCHAR(500),
			workspace_id BIGINT DEFAULT 1 REFERENCES ` + tables.Workspaces + `(id) ON DELETE CASCADE,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)
	`
	if _, err := pool.Exec(ctx, createProjects); err != nil {
		return fmt.Errorf("create projects table: %w", err)
	}

	createTemplates := `
		CREATE TABLE IF NOT EXISTS ` + tables.Templates + ` (
			id BIGSERIAL PRIMARY KEY,
			type VARCHAR(50) NOT NULL,
			name VARCHAR(100) NOT NULL,
			content VARCHAR(256) NOT NULL,
			workspace_id BIGINT DEFAULT 1 REFERENCES ` + tables.Workspaces + `(id) ON DELETE CASCADE,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)
	`
	if _, err := pool.Exec(ctx, createTemplates); err != nil {
		return fmt.Errorf("create templates table: %w", err)
	}

	indexes := []string{
		`CREATE UNIQUE INDEX IF NOT EXISTS uix_` + tablePrefix + `workspaces_name ON ` + tables.Workspaces + `(name)`,
		`CREATE UNIQUE INDEX IF NOT EXISTS uix_` + tablePrefix + `projects_name_lower ON ` + tables.Projects + `(workspace_id, lower(name))`,
		`CREATE INDEX IF NOT EXISTS ix_` + tablePrefix + `projects_workspace_id ON ` + tables.Projects + `(workspace_id)`,
		`CREATE UNIQUE INDEX IF NOT EXISTS uix_` + tablePrefix + `templates_type_content_lower ON ` + tables.Templates + `(workspace_id, type, lower(content))`,
		`CREATE INDEX IF NOT EXISTS ix_` + tablePrefix + `templates_type ON ` + tables.Templates + `(type)`,
		`CREATE INDEX IF NOT EXISTS ix_` + tablePrefix + `templates_workspace_id ON ` + tables.Templates + `(workspace_id)`,
	}

	for _, indexSQL := range indexes {
		if _, err := pool.Exec(ctx, indexSQL); err != nil {
			return fmt.Errorf("create index: %w", err)
		}
	}

	return nil
}

// EnsureDefaultWorkspace creates the reserved default workspace (id=1) if it
// doesn't exist, then advances the id sequence past 1 so the id is never
// reissued. Idempotent; called on every startup and by the seed tool.
func EnsureDefaultWorkspace(ctx context.Context, pool *pgxpool.Pool, tables *TableNames) error {
	insert := `
		INSERT INTO ` + tables.Workspaces + ` (id, name, description)
		VALUES (1, 'Default Workspace', 'Your personal workspace for all projects')
		ON CONFLICT (id) DO NOTHING
	`
	if _, err := pool.Exec(ctx, insert); err != nil {
		return fmt.Errorf("insert default workspace: %w", err)
	}

	bumpSeq := `
		SELECT setval(
			pg_get_serial_sequence('` + tables.Workspaces + `', 'id'),
			GREATEST((SELECT MAX(id) FROM ` + tables.Workspaces + `), 1)
		)
	`
	if _, err := pool.Exec(ctx, bumpSeq); err != nil {
		return fmt.Errorf("advance workspace id sequence: %w", err)
	}

	return nil
}

// DropAllTables removes the three entity tables. Used by the seed tool's
// --drop-tables flag; never called by the server.
func DropAllTables(ctx context.Context, pool *pgxpool.Pool, tables *TableNames) error {
	stmts := []string{
		`DROP TABLE IF EXISTS ` + tables.Templates + ` CASCADE`,
		`DROP TABLE IF EXISTS ` + tables.Projects + ` CASCADE`,
		`DROP TABLE IF EXISTS ` + tables.Workspaces + ` CASCADE`,
	}
	for _, stmt := range stmts {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("drop table: %w", err)
		}
	}
	return nil
}
