package handler

import (
	"log/slog"
	"net/http"

	"vidplan/internal/domain/services"
	"vidplan/internal/httputil"
)

// ProjectHandler handles project HTTP requests. Every operation is
// scoped to the workspace resolved by the scope middleware.
type ProjectHandler struct {
	projectService services.ProjectService
	logger         *slog.Logger
}

// NewProjectHandler creates a new project handler
func NewProjectHandler(projectService services.ProjectService, logger *slog.Logger) *ProjectHandler {
	return &ProjectHandler{
		projectService: projectService,
		logger:         logger,
	}
}

// ListProjects retrieves all projects in the current workspace
// GET /api/projects
func (h *ProjectHandler) ListProjects(w http.ResponseWriter, r *http.Request) {
	workspaceID := httputil.GetWorkspaceID(r)

	projects, err := h.projectService.ListProjects(r.Context(), workspaceID)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, projects)
}

// CreateProject creates a project in the current workspace
// POST /api/projects
func (h *ProjectHandler) CreateProject(w http.ResponseWriter, r *http.Request) {
	var req services.CreateProjectRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	req.WorkspaceID = httputil.GetWorkspaceID(r)

	project, err := h.projectService.CreateProject(r.Context(), &req)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusCreated, project)
}

// GetProject retrieves a project by ID
// GET /api/projects/{id}
func (h *ProjectHandler) GetProject(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		httputil.RespondError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	workspaceID := httputil.GetWorkspaceID(r)

	project, err := h.projectService.GetProject(r.Context(), id, workspaceID)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, project)
}

// UpdateProject applies a partial update to a project
// PUT /api/projects/{id}
func (h *ProjectHandler) UpdateProject(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		httputil.RespondError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	var req services.UpdateProjectRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	workspaceID := httputil.GetWorkspaceID(r)

	project, err := h.projectService.UpdateProject(r.Context(), id, workspaceID, &req)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, project)
}

// DeleteProject deletes a project
// DELETE /api/projects/{id}
func (h *ProjectHandler) DeleteProject(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		httputil.RespondError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	workspaceID := httputil.GetWorkspaceID(r)

	if err := h.projectService.DeleteProject(r.Context(), id, workspaceID); err != nil {
		handleError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
