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

// workspaceService implements the WorkspaceService interface
type workspaceService struct {
	workspaceRepo repositories.WorkspaceRepository
	txManager     repositories.TransactionManager
	logger        *slog.Logger
}

// NewWorkspaceService creates a new workspace service
func NewWorkspaceService(
	workspaceRepo repositories.WorkspaceRepository,
	txManager repositories.TransactionManager,
	logger *slog.Logger,
) services.WorkspaceService {
	return &workspaceService{
		workspaceRepo: workspaceRepo,
		txManager:     txManager,
		logger:        logger,
	}
}

// CreateWorkspace creates a new workspace with a globally unique name
func (s *workspaceService) CreateWorkspace(ctx context.Context, req *services.CreateWorkspaceRequest) (*models.Workspace, error) {
	if err := s.validateCreateRequest(req); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	name := strings.TrimSpace(req.Name)

	// Pre-check for a taken name (exact match). The unique index on name is
	// the backstop if a concurrent create slips past this.
	existing, err := s.workspaceRepo.GetByName(ctx, name)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, &domain.ConflictError{
			Message:      fmt.Sprintf("workspace %q already exists", name),
			ResourceType: "workspace",
			ResourceID:   existing.ID,
		}
	}

	workspace := &models.Workspace{
		Name:        name,
		Description: normalizeOptional(req.Description),
	}

	if err := s.workspaceRepo.Create(ctx, workspace); err != nil {
		return nil, err
	}

	s.logger.Info("workspace created",
		"id", workspace.ID,
		"name", workspace.Name,
	)

	return workspace, nil
}

// GetWorkspace retrieves a workspace by ID
func (s *workspaceService) GetWorkspace(ctx context.Context, id int64) (*models.Workspace, error) {
	return s.workspaceRepo.GetByID(ctx, id)
}

// ListWorkspaces retrieves all workspaces, newest first
func (s *workspaceService) ListWorkspaces(ctx context.Context) ([]models.Workspace, error) {
	return s.workspaceRepo.List(ctx)
}

// UpdateWorkspace applies a partial update to a workspace. The default
// workspace can never be renamed; its description may change.
func (s *workspaceService) UpdateWorkspace(ctx context.Context, id int64, req *services.UpdateWorkspaceRequest) (*models.Workspace, error) {
	if err := s.validateUpdateRequest(req); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	workspace, err := s.workspaceRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// Empty patch is a no-op: nothing changes, updated_at stays put
	if !req.Name.Present && !req.Description.Present {
		return workspace, nil
	}

	if req.Name.Present {
		if id == config.DefaultWorkspaceID {
			return nil, fmt.Errorf("the default workspace cannot be renamed: %w", domain.ErrForbidden)
		}

		name := strings.TrimSpace(*req.Name.Value)
		existing, err := s.workspaceRepo.GetByName(ctx, name)
		if err != nil && !errors.Is(err, domain.ErrNotFound) {
			return nil, err
		}
		if existing != nil && existing.ID != id {
			return nil, &domain.ConflictError{
				Message:      fmt.Sprintf("workspace %q already exists", name),
				ResourceType: "workspace",
				ResourceID:   existing.ID,
			}
		}
		workspace.Name = name
	}

	if req.Description.Present {
		workspace.Description = normalizeOptional(req.Description)
	}

	if err := s.workspaceRepo.Update(ctx, workspace); err != nil {
		return nil, err
	}

	s.logger.Info("workspace updated",
		"id", workspace.ID,
		"name", workspace.Name,
	)

	return workspace, nil
}

// DeleteWorkspace deletes a workspace. The count-then-delete pair runs in
// one transaction so a project created concurrently cannot be orphaned by
// the cascade.
func (s *workspaceService) DeleteWorkspace(ctx context.Context, id int64) error {
	if id == config.DefaultWorkspaceID {
		return fmt.Errorf("the default workspace cannot be deleted: %w", domain.ErrForbidden)
	}

	err := s.txManager.ExecTx(ctx, func(txCtx context.Context) error {
		if _, err := s.workspaceRepo.GetByID(txCtx, id); err != nil {
			return err
		}

		count, err := s.workspaceRepo.CountProjects(txCtx, id)
		if err != nil {
			return err
		}
		if count > 0 {
			return &domain.BusinessRuleError{
				Message:      fmt.Sprintf("cannot delete workspace: it still contains %d project(s)", count),
				ProjectCount: count,
			}
		}

		return s.workspaceRepo.Delete(txCtx, id)
	})
	if err != nil {
		return err
	}

	s.logger.Info("workspace deleted", "id", id)

	return nil
}

// validateCreateRequest validates a create workspace request
func (s *workspaceService) validateCreateRequest(req *services.CreateWorkspaceRequest) error {
	if err := validation.ValidateStruct(req,
		validation.Field(&req.Name,
			validation.Required,
			validation.Length(1, config.MaxWorkspaceNameLength),
			validation.By(notBlank),
		),
	); err != nil {
		return err
	}

	if req.Description.Present {
		return validateOptionalText("description", req.Description.Value, config.MaxWorkspaceDescriptionLength)
	}
	return nil
}

// validateUpdateRequest validates the supplied fields of a workspace patch
func (s *workspaceService) validateUpdateRequest(req *services.UpdateWorkspaceRequest) error {
	if req.Name.Present {
		if err := validateRequiredText("name", req.Name.Value, config.MaxWorkspaceNameLength); err != nil {
			return err
		}
	}
	if req.Description.Present {
		if err := validateOptionalText("description", req.Description.Value, config.MaxWorkspaceDescriptionLength); err != nil {
			return err
		}
	}
	return nil
}
