package handler

import (
	"log/slog"
	"net/http"

	"vidplan/internal/domain/services"
	"vidplan/internal/httputil"
)

// TemplateHandler handles template HTTP requests, scoped to the
// workspace resolved by the scope middleware.
type TemplateHandler struct {
	templateService services.TemplateService
	logger          *slog.Logger
}

// NewTemplateHandler creates a new template handler
func NewTemplateHandler(templateService services.TemplateService, logger *slog.Logger) *TemplateHandler {
	return &TemplateHandler{
		templateService: templateService,
		logger:          logger,
	}
}

// ListTemplates retrieves templates in the current workspace, optionally
// filtered by the ?type= query parameter
// GET /api/templates
func (h *TemplateHandler) ListTemplates(w http.ResponseWriter, r *http.Request) {
	workspaceID := httputil.GetWorkspaceID(r)
	typeFilter := r.URL.Query().Get("type")

	templates, err := h.templateService.ListTemplates(r.Context(), workspaceID, typeFilter)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, templates)
}

// CreateTemplate creates a template in the current workspace
// POST /api/templates
func (h *TemplateHandler) CreateTemplate(w http.ResponseWriter, r *http.Request) {
	var req services.CreateTemplateRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	req.WorkspaceID = httputil.GetWorkspaceID(r)

	template, err := h.templateService.CreateTemplate(r.Context(), &req)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusCreated, template)
}

// GetTemplate retrieves a template by ID
// GET /api/templates/{id}
func (h *TemplateHandler) GetTemplate(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		httputil.RespondError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	workspaceID := httputil.GetWorkspaceID(r)

	template, err := h.templateService.GetTemplate(r.Context(), id, workspaceID)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, template)
}

// UpdateTemplate applies a partial update to a template
// PUT /api/templates/{id}
func (h *TemplateHandler) UpdateTemplate(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		httputil.RespondError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	var req services.UpdateTemplateRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	workspaceID := httputil.GetWorkspaceID(r)

	template, err := h.templateService.UpdateTemplate(r.Context(), id, workspaceID, &req)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, template)
}

// DeleteTemplate deletes a template
// DELETE /api/templates/{id}
func (h *TemplateHandler) DeleteTemplate(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		httputil.RespondError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	workspaceID := httputil.GetWorkspaceID(r)

	if err := h.templateService.DeleteTemplate(r.Context(), id, workspaceID); err != nil {
		handleError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
