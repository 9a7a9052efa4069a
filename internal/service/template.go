package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"vidplan/internal/config"
	"vidplan/internal/domain"
	"vidplan/internal/domain/models"
	"vidplan/internal/domain/repositories"
	"vidplan/internal/domain/services"
)

// templateService implements the TemplateService interface
type templateService struct {
	templateRepo  repositories.TemplateRepository
	workspaceRepo repositories.WorkspaceRepository
	logger        *slog.Logger
}

// NewTemplateService creates a new template service
func NewTemplateService(
	templateRepo repositories.TemplateRepository,
	workspaceRepo repositories.WorkspaceRepository,
	logger *slog.Logger,
) services.TemplateService {
	return &templateService{
		templateRepo:  templateRepo,
		workspaceRepo: workspaceRepo,
		logger:        logger,
	}
}

// CreateTemplate creates a template in the request's workspace
func (s *templateService) CreateTemplate(ctx context.Context, req *services.CreateTemplateRequest) (*models.Template, error) {
	if err := s.validateCreateRequest(req); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	workspaceID := req.WorkspaceID
	if workspaceID == 0 {
		workspaceID = config.DefaultWorkspaceID
	}

	// The owning workspace must exist before anything else is checked
	if _, err := s.workspaceRepo.GetByID(ctx, workspaceID); err != nil {
		return nil, err
	}

	templateType := strings.TrimSpace(req.Type)
	name := strings.TrimSpace(req.Name)
	content := strings.TrimSpace(req.Content)

	// Pre-check for a case-insensitive content collision within
	// (workspace, type). The functional unique index is the backstop.
	if err := s.checkDuplicateContent(ctx, workspaceID, templateType, content, 0); err != nil {
		return nil, err
	}

	template := &models.Template{
		Type:        templateType,
		Name:        name,
		Content:     content,
		WorkspaceID: workspaceID,
	}

	if err := s.templateRepo.Create(ctx, template); err != nil {
		return nil, err
	}

	s.logger.Info("template created",
		"id", template.ID,
		"type", template.Type,
		"workspace_id", template.WorkspaceID,
	)

	return template, nil
}

// GetTemplate retrieves a template by ID within a workspace
func (s *templateService) GetTemplate(ctx context.Context, id, workspaceID int64) (*models.Template, error) {
	return s.templateRepo.GetByID(ctx, id, workspaceID)
}

// ListTemplates retrieves templates in a workspace, newest first,
// optionally filtered by type
func (s *templateService) ListTemplates(ctx context.Context, workspaceID int64, typeFilter string) ([]models.Template, error) {
	return s.templateRepo.List(ctx, workspaceID, strings.TrimSpace(typeFilter))
}

// UpdateTemplate applies a partial update to a template. Duplicate content
// is re-checked against the new effective (type, content) pair, excluding
// the template itself.
func (s *templateService) UpdateTemplate(ctx context.Context, id, workspaceID int64, req *services.UpdateTemplateRequest) (*models.Template, error) {
	if err := s.validateUpdateRequest(req); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	template, err := s.templateRepo.GetByID(ctx, id, workspaceID)
	if err != nil {
		return nil, err
	}

	// Empty patch is a no-op: nothing changes, updated_at stays put
	if !req.Type.Present && !req.Name.Present && !req.Content.Present {
		return template, nil
	}

	if req.Type.Present || req.Content.Present {
		effectiveType := template.Type
		if req.Type.Present {
			effectiveType = strings.TrimSpace(*req.Type.Value)
		}
		effectiveContent := template.Content
		if req.Content.Present {
			effectiveContent = strings.TrimSpace(*req.Content.Value)
		}

		if err := s.checkDuplicateContent(ctx, workspaceID, effectiveType, effectiveContent, id); err != nil {
			return nil, err
		}

		template.Type = effectiveType
		template.Content = effectiveContent
	}

	if req.Name.Present {
		template.Name = strings.TrimSpace(*req.Name.Value)
	}

	if err := s.templateRepo.Update(ctx, template); err != nil {
		return nil, err
	}

	s.logger.Info("template updated",
		"id", template.ID,
		"type", template.Type,
		"workspace_id", template.WorkspaceID,
	)

	return template, nil
}

// DeleteTemplate deletes a template within a workspace
func (s *templateService) DeleteTemplate(ctx context.Context, id, workspaceID int64) error {
	if err := s.templateRepo.Delete(ctx, id, workspaceID); err != nil {
		return err
	}

	s.logger.Info("template deleted",
		"id", id,
		"workspace_id", workspaceID,
	)

	return nil
}

// checkDuplicateContent returns a ConflictError carrying the existing
// template's id when equivalent content already exists in (workspace, type)
func (s *templateService) checkDuplicateContent(ctx context.Context, workspaceID int64, templateType, content string, excludeID int64) error {
	existing, err := s.templateRepo.FindByContent(ctx, workspaceID, templateType, content, excludeID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil
		}
		return err
	}
	return &domain.ConflictError{
		Message:      fmt.Sprintf("a template with this content already exists (id %d)", existing.ID),
		ResourceType: "template",
		ResourceID:   existing.ID,
	}
}

// validateCreateRequest validates a create template request
func (s *templateService) validateCreateRequest(req *services.CreateTemplateRequest) error {
	return validation.ValidateStruct(req,
		validation.Field(&req.Type,
			validation.Required,
			validation.Length(1, config.MaxTemplateTypeLength),
			validation.By(notBlank),
		),
		validation.Field(&req.Name,
			validation.Required,
			validation.Length(1, config.MaxTemplateNameLength),
			validation.By(notBlank),
		),
		validation.Field(&req.Content,
			validation.Required,
			validation.Length(1, config.MaxTemplateContentLength),
			validation.By(notBlank),
			validation.By(placeholderRule),
		),
	)
}

// validateUpdateRequest validates the supplied fields of a template patch
func (s *templateService) validateUpdateRequest(req *services.UpdateTemplateRequest) error {
	if req.Type.Present {
		if err := validateRequiredText("type", req.Type.Value, config.MaxTemplateTypeLength); err != nil {
			return err
		}
	}
	if req.Name.Present {
		if err := validateRequiredText("name", req.Name.Value, config.MaxTemplateNameLength); err != nil {
			return err
		}
	}
	if req.Content.Present {
		if err := validateRequiredText("content", req.Content.Value, config.MaxTemplateContentLength); err != nil {
			return err
		}
		if err := ValidatePlaceholders(*req.Content.Value); err != nil {
			return fmt.Errorf("content: %v", err)
		}
	}
	return nil
}

// placeholderRule adapts ValidatePlaceholders to an ozzo validation rule
func placeholderRule(value interface{}) error {
	content, ok := value.(string)
	if !ok {
		return errors.New("must be a string")
	}
	return ValidatePlaceholders(content)
}
