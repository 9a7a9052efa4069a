package services

import (
	"context"

	"vidplan/internal/domain/models"
	"vidplan/internal/httputil"
)

// CreateTemplateRequest represents a request to create a template.
// WorkspaceID is resolved from the scope header by the handler.
type CreateTemplateRequest struct {
	Type        string `json:"type"`
	Name        string `json:"name"`
	Content     string `json:"content"`
	WorkspaceID int64  `json:"-"`
}

// UpdateTemplateRequest represents a partial update to a template.
// Only fields present in the JSON body are validated and applied.
type UpdateTemplateRequest struct {
	Type    httputil.OptionalString `json:"type"`
	Name    httputil.OptionalString `json:"name"`
	Content httputil.OptionalString `json:"content"`
}

// TemplateService defines business logic operations for templates. Every
// operation is scoped to the effective workspace resolved from the request.
type TemplateService interface {
	// CreateTemplate creates a template in the request's workspace
	CreateTemplate(ctx context.Context, req *CreateTemplateRequest) (*models.Template, error)

	// GetTemplate retrieves a template by ID within a workspace
	GetTemplate(ctx context.Context, id, workspaceID int64) (*models.Template, error)

	// ListTemplates retrieves templates in a workspace, newest first,
	// optionally filtered by type
	ListTemplates(ctx context.Context, workspaceID int64, typeFilter string) ([]models.Template, error)

	// UpdateTemplate applies a partial update to a template
	UpdateTemplate(ctx context.Context, id, workspaceID int64, req *UpdateTemplateRequest) (*models.Template, error)

	// DeleteTemplate deletes a template within a workspace
	DeleteTemplate(ctx context.Context, id, workspaceID int64) error
}
