package models

import (
	"time"
)

// Template is reusable content (a title or description line) scoped to a
// workspace. Content must contain at least one {{placeholder}} token and is
// unique within (workspace, type) under case-insensitive comparison.
type Template struct {
	ID          int64     `json:"id" db:"id"`
	Type        string    `json:"type" db:"type"`
	Name        string    `json:"name" db:"name"`
	Content     string    `json:"content" db:"content"`
	WorkspaceID int64     `json:"workspace_id" db:"workspace_id"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}
