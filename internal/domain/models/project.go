package models

import (
	"time"
)

// Project is a planned video scoped to a workspace. Names are unique within
// a workspace under case-insensitive comparison; the same name may exist in
// different workspaces.
type Project struct {
	ID          int64     `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	Description *string   `json:"description,omitempty" db:"description"`
	Status      string    `json:"status" db:"status"`
	VideoTitle  *string   `json:"video_title,omitempty" db:"video_title"`
	WorkspaceID int64     `json:"workspace_id" db:"workspace_id"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}
