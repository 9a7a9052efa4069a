package service

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"vidplan/internal/domain"
	"vidplan/internal/domain/models"
	"vidplan/internal/domain/repositories"
	"vidplan/internal/httputil"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func optStr(s string) httputil.OptionalString {
	return httputil.OptionalString{Present: true, Value: &s}
}

func optNull() httputil.OptionalString {
	return httputil.OptionalString{Present: true, Value: nil}
}

// fakeTxManager runs the function directly without a real transaction
type fakeTxManager struct{}

func (m *fakeTxManager) ExecTx(ctx context.Context, fn repositories.TxFn) error {
	return fn(ctx)
}

// fakeWorkspaceRepo is an in-memory WorkspaceRepository
type fakeWorkspaceRepo struct {
	workspaces    map[int64]*models.Workspace
	projectCounts map[int64]int64
	nextID        int64
	updateCalls   int
}

func newFakeWorkspaceRepo() *fakeWorkspaceRepo {
	repo := &fakeWorkspaceRepo{
		workspaces:    make(map[int64]*models.Workspace),
		projectCounts: make(map[int64]int64),
		nextID:        1,
	}
	desc := "Your personal workspace for all projects"
	repo.add(&models.Workspace{Name: "Default Workspace", Description: &desc})
	return repo
}

func (r *fakeWorkspaceRepo) add(w *models.Workspace) *models.Workspace {
	w.ID = r.nextID
	r.nextID++
	w.CreatedAt = time.Now()
	w.UpdatedAt = w.CreatedAt
	copied := *w
	r.workspaces[w.ID] = &copied
	return w
}

func (r *fakeWorkspaceRepo) Create(ctx context.Context, workspace *models.Workspace) error {
	for _, w := range r.workspaces {
		if w.Name == workspace.Name {
			return &domain.ConflictError{
				Message:      fmt.Sprintf("workspace %q already exists", workspace.Name),
				ResourceType: "workspace",
				ResourceID:   w.ID,
			}
		}
	}
	r.add(workspace)
	return nil
}

func (r *fakeWorkspaceRepo) GetByID(ctx context.Context, id int64) (*models.Workspace, error) {
	w, ok := r.workspaces[id]
	if !ok {
		return nil, fmt.Errorf("workspace %d: %w", id, domain.ErrNotFound)
	}
	copied := *w
	copied.ProjectCount = r.projectCounts[id]
	return &copied, nil
}

func (r *fakeWorkspaceRepo) GetByName(ctx context.Context, name string) (*models.Workspace, error) {
	for _, w := range r.workspaces {
		if w.Name == name {
			copied := *w
			return &copied, nil
		}
	}
	return nil, fmt.Errorf("workspace %q: %w", name, domain.ErrNotFound)
}

func (r *fakeWorkspaceRepo) List(ctx context.Context) ([]models.Workspace, error) {
	out := make([]models.Workspace, 0, len(r.workspaces))
	for _, w := range r.workspaces {
		copied := *w
		copied.ProjectCount = r.projectCounts[w.ID]
		out = append(out, copied)
	}
	return out, nil
}

func (r *fakeWorkspaceRepo) Update(ctx context.Context, workspace *models.Workspace) error {
	r.updateCalls++
	existing, ok := r.workspaces[workspace.ID]
	if !ok {
		return fmt.Errorf("workspace %d: %w", workspace.ID, domain.ErrNotFound)
	}
	existing.Name = workspace.Name
	existing.Description = workspace.Description
	existing.UpdatedAt = time.Now()
	workspace.UpdatedAt = existing.UpdatedAt
	return nil
}

func (r *fakeWorkspaceRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := r.workspaces[id]; !ok {
		return fmt.Errorf("workspace %d: %w", id, domain.ErrNotFound)
	}
	delete(r.workspaces, id)
	return nil
}

func (r *fakeWorkspaceRepo) CountProjects(ctx context.Context, workspaceID int64) (int64, error) {
	return r.projectCounts[workspaceID], nil
}

// secondWorkspace builds a throwaway workspace for cross-scope tests;
// the fake repo assigns it id 2
func secondWorkspace() *models.Workspace {
	return &models.Workspace{Name: "Second Workspace"}
}

// fakeProjectRepo is an in-memory ProjectRepository
type fakeProjectRepo struct {
	projects    map[int64]*models.Project
	nextID      int64
	updateCalls int
}

func newFakeProjectRepo() *fakeProjectRepo {
	return &fakeProjectRepo{
		projects: make(map[int64]*models.Project),
		nextID:   1,
	}
}

func (r *fakeProjectRepo) Create(ctx context.Context, project *models.Project) error {
	if existing, err := r.FindByName(ctx, project.WorkspaceID, project.Name, 0); err == nil {
		return &domain.ConflictError{
			Message:      fmt.Sprintf("a project named %q already exists", project.Name),
			ResourceType: "project",
			ResourceID:   existing.ID,
		}
	}
	project.ID = r.nextID
	r.nextID++
	project.CreatedAt = time.Now()
	project.UpdatedAt = project.CreatedAt
	copied := *project
	r.projects[project.ID] = &copied
	return nil
}

func (r *fakeProjectRepo) GetByID(ctx context.Context, id, workspaceID int64) (*models.Project, error) {
	p, ok := r.projects[id]
	if !ok || p.WorkspaceID != workspaceID {
		return nil, fmt.Errorf("project %d: %w", id, domain.ErrNotFound)
	}
	copied := *p
	return &copied, nil
}

func (r *fakeProjectRepo) List(ctx context.Context, workspaceID int64) ([]models.Project, error) {
	out := []models.Project{}
	for _, p := range r.projects {
		if p.WorkspaceID == workspaceID {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *fakeProjectRepo) Update(ctx context.Context, project *models.Project) error {
	r.updateCalls++
	existing, ok := r.projects[project.ID]
	if !ok {
		return fmt.Errorf("project %d: %w", project.ID, domain.ErrNotFound)
	}
	copied := *project
	copied.UpdatedAt = time.Now()
	*existing = copied
	project.UpdatedAt = copied.UpdatedAt
	return nil
}

func (r *fakeProjectRepo) Delete(ctx context.Context, id, workspaceID int64) error {
	p, ok := r.projects[id]
	if !ok || p.WorkspaceID != workspaceID {
		return fmt.Errorf("project %d: %w", id, domain.ErrNotFound)
	}
	delete(r.projects, id)
	return nil
}

func (r *fakeProjectRepo) FindByName(ctx context.Context, workspaceID int64, name string, excludeID int64) (*models.Project, error) {
	for _, p := range r.projects {
		if p.WorkspaceID == workspaceID && p.ID != excludeID && strings.EqualFold(p.Name, name) {
			copied := *p
			return &copied, nil
		}
	}
	return nil, fmt.Errorf("project %q: %w", name, domain.ErrNotFound)
}

// fakeTemplateRepo is an in-memory TemplateRepository
type fakeTemplateRepo struct {
	templates   map[int64]*models.Template
	nextID      int64
	updateCalls int
}

func newFakeTemplateRepo() *fakeTemplateRepo {
	return &fakeTemplateRepo{
		templates: make(map[int64]*models.Template),
		nextID:    1,
	}
}

func (r *fakeTemplateRepo) Create(ctx context.Context, template *models.Template) error {
	if existing, err := r.FindByContent(ctx, template.WorkspaceID, template.Type, template.Content, 0); err == nil {
		return &domain.ConflictError{
			Message:      fmt.Sprintf("a template with this content already exists (id %d)", existing.ID),
			ResourceType: "template",
			ResourceID:   existing.ID,
		}
	}
	template.ID = r.nextID
	r.nextID++
	template.CreatedAt = time.Now()
	template.UpdatedAt = template.CreatedAt
	copied := *template
	r.templates[template.ID] = &copied
	return nil
}

func (r *fakeTemplateRepo) GetByID(ctx context.Context, id, workspaceID int64) (*models.Template, error) {
	t, ok := r.templates[id]
	if !ok || t.WorkspaceID != workspaceID {
		return nil, fmt.Errorf("template %d: %w", id, domain.ErrNotFound)
	}
	copied := *t
	return &copied, nil
}

func (r *fakeTemplateRepo) List(ctx context.Context, workspaceID int64, typeFilter string) ([]models.Template, error) {
	out := []models.Template{}
	for _, t := range r.templates {
		if t.WorkspaceID != workspaceID {
			continue
		}
		if typeFilter != "" && t.Type != typeFilter {
			continue
		}
		out = append(out, *t)
	}
	return out, nil
}

func (r *fakeTemplateRepo) Update(ctx context.Context, template *models.Template) error {
	r.updateCalls++
	existing, ok := r.templates[template.ID]
	if !ok {
		return fmt.Errorf("template %d: %w", template.ID, domain.ErrNotFound)
	}
	copied := *template
	copied.UpdatedAt = time.Now()
	*existing = copied
	template.UpdatedAt = copied.UpdatedAt
	return nil
}

func (r *fakeTemplateRepo) Delete(ctx context.Context, id, workspaceID int64) error {
	t, ok := r.templates[id]
	if !ok || t.WorkspaceID != workspaceID {
		return fmt.Errorf("template %d: %w", id, domain.ErrNotFound)
	}
	delete(r.templates, id)
	return nil
}

func (r *fakeTemplateRepo) FindByContent(ctx context.Context, workspaceID int64, templateType, content string, excludeID int64) (*models.Template, error) {
	for _, t := range r.templates {
		if t.WorkspaceID == workspaceID && t.Type == templateType && t.ID != excludeID && strings.EqualFold(t.Content, content) {
			copied := *t
			return &copied, nil
		}
	}
	return nil, fmt.Errorf("template content: %w", domain.ErrNotFound)
}
