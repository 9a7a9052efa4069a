package models

import (
	"time"
)

// Workspace is a top-level container isolating a set of projects and
// templates. Exactly one distinguished workspace (id=1) always exists and
// can never be deleted or renamed.
type Workspace struct {
	ID          int64     `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	Description *string   `json:"description,omitempty" db:"description"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`

	// ProjectCount is computed on read, not stored.
	ProjectCount int64 `json:"project_count" db:"-"`
}
