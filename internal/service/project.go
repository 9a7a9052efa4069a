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

// projectService implements the ProjectService interface
type projectService struct {
	projectRepo   repositories.ProjectRepository
	workspaceRepo repositories.WorkspaceRepository
	logger        *slog.Logger
}

// NewProjectService creates a new project service
func NewProjectService(
	projectRepo repositories.ProjectRepository,
	workspaceRepo repositories.WorkspaceRepository,
	logger *slog.Logger,
) services.ProjectService {
	return &projectService{
		projectRepo:   projectRepo,
		workspaceRepo: workspaceRepo,
		logger:        logger,
	}
}

// CreateProject creates a project in the request's workspace
func (s *projectService) CreateProject(ctx context.Context, req *services.CreateProjectRequest) (*models.Project, error) {
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

	name := strings.TrimSpace(req.Name)

	// Pre-check for a case-insensitive name collision within the workspace.
	// The functional unique index is the backstop under races.
	if existing, err := s.projectRepo.FindByName(ctx, workspaceID, name, 0); err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			return nil, err
		}
	} else {
		return nil, &domain.ConflictError{
			Message:      fmt.Sprintf("a project named %q already exists", name),
			ResourceType: "project",
			ResourceID:   existing.ID,
		}
	}

	status := strings.TrimSpace(req.Status)
	if status == "" {
		status = config.DefaultProjectStatus
	}

	project := &models.Project{
		Name:        name,
		Description: normalizeOptional(req.Description),
		Status:      status,
		VideoTitle:  normalizeOptional(req.VideoTitle),
		WorkspaceID: workspaceID,
	}

	if err := s.projectRepo.Create(ctx, project); err != nil {
		return nil, err
	}

	s.logger.Info("project created",
		"id", project.ID,
		"name", project.Name,
		"workspace_id", project.WorkspaceID,
	)

	return project, nil
}

// GetProject retrieves a project by ID within a workspace
func (s *projectService) GetProject(ctx context.Context, id, workspaceID int64) (*models.Project, error) {
	return s.projectRepo.GetByID(ctx, id, workspaceID)
}

// ListProjects retrieves all projects in a workspace, newest first
func (s *projectService) ListProjects(ctx context.Context, workspaceID int64) ([]models.Project, error) {
	return s.projectRepo.List(ctx, workspaceID)
}

// UpdateProject applies a partial update to a project
func (s *projectService) UpdateProject(ctx context.Context, id, workspaceID int64, req *services.UpdateProjectRequest) (*models.Project, error) {
	if err := s.validateUpdateRequest(req); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	project, err := s.projectRepo.GetByID(ctx, id, workspaceID)
	if err != nil {
		return nil, err
	}

	// Empty patch is a no-op: nothing changes, updated_at stays put
	if !req.Name.Present && !req.Description.Present && !req.Status.Present && !req.VideoTitle.Present {
		return project, nil
	}

	if req.Name.Present {
		name := strings.TrimSpace(*req.Name.Value)

		if existing, err := s.projectRepo.FindByName(ctx, workspaceID, name, id); err != nil {
			if !errors.Is(err, domain.ErrNotFound) {
				return nil, err
			}
		} else {
			return nil, &domain.ConflictError{
				Message:      fmt.Sprintf("a project named %q already exists", name),
				ResourceType: "project",
				ResourceID:   existing.ID,
			}
		}
		project.Name = name
	}

	if req.Description.Present {
		project.Description = normalizeOptional(req.Description)
	}
	if req.Status.Present {
		project.Status = strings.TrimSpace(*req.Status.Value)
	}
	if req.VideoTitle.Present {
		project.VideoTitle = normalizeOptional(req.VideoTitle)
	}

	if err := s.projectRepo.Update(ctx, project); err != nil {
		return nil, err
	}

	s.logger.Info("project updated",
		"id", project.ID,
		"name", project.Name,
		"workspace_id", project.WorkspaceID,
	)

	return project, nil
}

// DeleteProject deletes a project within a workspace
func (s *projectService) DeleteProject(ctx context.Context, id, workspaceID int64) error {
	if err := s.projectRepo.Delete(ctx, id, workspaceID); err != nil {
		return err
	}

	s.logger.Info("project deleted",
		"id", id,
		"workspace_id", workspaceID,
	)

	return nil
}

// validateCreateRequest validates a create project request
func (s *projectService) validateCreateRequest(req *services.CreateProjectRequest) error {
	if err := validation.ValidateStruct(req,
		validation.Field(&req.Name,
			validation.Required,
			validation.Length(1, config.MaxProjectNameLength),
			validation.By(notBlank),
		),
		validation.Field(&req.Status,
			validation.Length(0, config.MaxProjectStatusLength),
		),
	); err != nil {
		return err
	}

	if req.Description.Present {
		if err := validateOptionalText("description", req.Description.Value, config.MaxProjectDescriptionLength); err != nil {
			return err
		}
	}
	if req.VideoTitle.Present {
		if err := validateOptionalText("video_title", req.VideoTitle.Value, config.MaxVideoTitleLength); err != nil {
			return err
		}
	}
	return nil
}

// validateUpdateRequest validates the supplied fields of a project patch
func (s *projectService) validateUpdateRequest(req *services.UpdateProjectRequest) error {
	if req.Name.Present {
		if err := validateRequiredText("name", req.Name.Value, config.MaxProjectNameLength); err != nil {
			return err
		}
	}
	if req.Status.Present {
		if err := validateRequiredText("status", req.Status.Value, config.MaxProjectStatusLength); err != nil {
			return err
		}
	}
	if req.Description.Present {
		if err := validateOptionalText("description", req.Description.Value, config.MaxProjectDescriptionLength); err != nil {
			return err
		}
	}
	if req.VideoTitle.Present {
		if err := validateOptionalText("video_title", req.VideoTitle.Value, config.MaxVideoTitleLength); err != nil {
			return err
		}
	}
	return nil
}
