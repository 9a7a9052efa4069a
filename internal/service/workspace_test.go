package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"vidplan/internal/domain"
	"vidplan/internal/domain/services"
)

func newWorkspaceServiceForTest() (services.WorkspaceService, *fakeWorkspaceRepo) {
	repo := newFakeWorkspaceRepo()
	svc := NewWorkspaceService(repo, &fakeTxManager{}, testLogger())
	return svc, repo
}

func TestCreateWorkspace(t *testing.T) {
	tests := []struct {
		name    string
		req     *services.CreateWorkspaceRequest
		wantErr error
	}{
		{
			name: "valid workspace",
			req:  &services.CreateWorkspaceRequest{Name: "Cooking Channel"},
		},
		{
			name: "valid with description",
			req: &services.CreateWorkspaceRequest{
				Name:        "Tech Reviews",
				Description: optStr("Gadget teardowns"),
			},
		},
		{
			name:    "empty name",
			req:     &services.CreateWorkspaceRequest{Name: ""},
			wantErr: domain.ErrValidation,
		},
		{
			name:    "whitespace-only name",
			req:     &services.CreateWorkspaceRequest{Name: "   "},
			wantErr: domain.ErrValidation,
		},
		{
			name:    "name over the limit",
			req:     &services.CreateWorkspaceRequest{Name: strings.Repeat("a", 101)},
			wantErr: domain.ErrValidation,
		},
		{
			name:    "duplicate of the default workspace name",
			req:     &services.CreateWorkspaceRequest{Name: "Default Workspace"},
			wantErr: domain.ErrConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := newWorkspaceServiceForTest()
			ws, err := svc.CreateWorkspace(context.Background(), tt.req)

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("CreateWorkspace() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("CreateWorkspace() unexpected error: %v", err)
			}
			if ws.ID == 0 {
				t.Error("CreateWorkspace() did not assign an ID")
			}
		})
	}
}

func TestCreateWorkspaceTrimsName(t *testing.T) {
	svc, _ := newWorkspaceServiceForTest()

	ws, err := svc.CreateWorkspace(context.Background(), &services.CreateWorkspaceRequest{Name: "  Cooking  "})
	if err != nil {
		t.Fatalf("CreateWorkspace() unexpected error: %v", err)
	}
	if ws.Name != "Cooking" {
		t.Errorf("name = %q, want %q", ws.Name, "Cooking")
	}
}

func TestCreateWorkspaceDuplicateExactMatchOnly(t *testing.T) {
	svc, _ := newWorkspaceServiceForTest()
	ctx := context.Background()

	if _, err := svc.CreateWorkspace(ctx, &services.CreateWorkspaceRequest{Name: "Cooking"}); err != nil {
		t.Fatalf("first create failed: %v", err)
	}

	// Exact duplicate is rejected
	if _, err := svc.CreateWorkspace(ctx, &services.CreateWorkspaceRequest{Name: "Cooking"}); !errors.Is(err, domain.ErrConflict) {
		t.Errorf("exact duplicate error = %v, want conflict", err)
	}

	// Workspace names compare case-sensitively, so a case variant is fine
	if _, err := svc.CreateWorkspace(ctx, &services.CreateWorkspaceRequest{Name: "COOKING"}); err != nil {
		t.Errorf("case variant should be allowed, got %v", err)
	}
}

func TestUpdateWorkspace(t *testing.T) {
	svc, _ := newWorkspaceServiceForTest()
	ctx := context.Background()

	ws, err := svc.CreateWorkspace(ctx, &services.CreateWorkspaceRequest{Name: "Cooking"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	updated, err := svc.UpdateWorkspace(ctx, ws.ID, &services.UpdateWorkspaceRequest{
		Name:        optStr("Baking"),
		Description: optStr("Sourdough and beyond"),
	})
	if err != nil {
		t.Fatalf("UpdateWorkspace() unexpected error: %v", err)
	}
	if updated.Name != "Baking" {
		t.Errorf("name = %q, want %q", updated.Name, "Baking")
	}
	if updated.Description == nil || *updated.Description != "Sourdough and beyond" {
		t.Errorf("description = %v, want set", updated.Description)
	}
}

func TestUpdateWorkspaceEmptyPatchIsNoOp(t *testing.T) {
	svc, repo := newWorkspaceServiceForTest()
	ctx := context.Background()

	ws, err := svc.CreateWorkspace(ctx, &services.CreateWorkspaceRequest{Name: "Cooking"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	got, err := svc.UpdateWorkspace(ctx, ws.ID, &services.UpdateWorkspaceRequest{})
	if err != nil {
		t.Fatalf("UpdateWorkspace() unexpected error: %v", err)
	}
	if got.Name != "Cooking" {
		t.Errorf("name = %q, want unchanged", got.Name)
	}
	if repo.updateCalls != 0 {
		t.Errorf("empty patch hit the store %d time(s), want 0", repo.updateCalls)
	}
}

func TestUpdateWorkspaceNullDescriptionClears(t *testing.T) {
	svc, _ := newWorkspaceServiceForTest()
	ctx := context.Background()

	ws, err := svc.CreateWorkspace(ctx, &services.CreateWorkspaceRequest{
		Name:        "Cooking",
		Description: optStr("old"),
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	updated, err := svc.UpdateWorkspace(ctx, ws.ID, &services.UpdateWorkspaceRequest{Description: optNull()})
	if err != nil {
		t.Fatalf("UpdateWorkspace() unexpected error: %v", err)
	}
	if updated.Description != nil {
		t.Errorf("description = %q, want cleared", *updated.Description)
	}
}

func TestUpdateWorkspaceDefaultProtections(t *testing.T) {
	svc, _ := newWorkspaceServiceForTest()
	ctx := context.Background()

	// Renaming the default workspace is forbidden
	_, err := svc.UpdateWorkspace(ctx, 1, &services.UpdateWorkspaceRequest{Name: optStr("Mine")})
	if !errors.Is(err, domain.ErrForbidden) {
		t.Errorf("rename default error = %v, want forbidden", err)
	}

	// Even to its current name
	_, err = svc.UpdateWorkspace(ctx, 1, &services.UpdateWorkspaceRequest{Name: optStr("Default Workspace")})
	if !errors.Is(err, domain.ErrForbidden) {
		t.Errorf("rename default to same name error = %v, want forbidden", err)
	}

	// Description changes are allowed
	updated, err := svc.UpdateWorkspace(ctx, 1, &services.UpdateWorkspaceRequest{Description: optStr("shared space")})
	if err != nil {
		t.Fatalf("description update on default failed: %v", err)
	}
	if updated.Description == nil || *updated.Description != "shared space" {
		t.Errorf("description = %v, want updated", updated.Description)
	}
}

func TestUpdateWorkspaceDuplicateName(t *testing.T) {
	svc, _ := newWorkspaceServiceForTest()
	ctx := context.Background()

	a, _ := svc.CreateWorkspace(ctx, &services.CreateWorkspaceRequest{Name: "Alpha"})
	if _, err := svc.CreateWorkspace(ctx, &services.CreateWorkspaceRequest{Name: "Beta"}); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	// Taking another workspace's name is a conflict
	_, err := svc.UpdateWorkspace(ctx, a.ID, &services.UpdateWorkspaceRequest{Name: optStr("Beta")})
	if !errors.Is(err, domain.ErrConflict) {
		t.Errorf("rename to taken name error = %v, want conflict", err)
	}

	// Keeping its own name is fine
	if _, err := svc.UpdateWorkspace(ctx, a.ID, &services.UpdateWorkspaceRequest{Name: optStr("Alpha")}); err != nil {
		t.Errorf("rename to own name failed: %v", err)
	}
}

func TestUpdateWorkspaceNullNameRejected(t *testing.T) {
	svc, _ := newWorkspaceServiceForTest()
	ctx := context.Background()

	ws, _ := svc.CreateWorkspace(ctx, &services.CreateWorkspaceRequest{Name: "Alpha"})

	_, err := svc.UpdateWorkspace(ctx, ws.ID, &services.UpdateWorkspaceRequest{Name: optNull()})
	if !errors.Is(err, domain.ErrValidation) {
		t.Errorf("null name error = %v, want validation", err)
	}
}

func TestDeleteWorkspace(t *testing.T) {
	svc, repo := newWorkspaceServiceForTest()
	ctx := context.Background()

	ws, _ := svc.CreateWorkspace(ctx, &services.CreateWorkspaceRequest{Name: "Disposable"})

	if err := svc.DeleteWorkspace(ctx, ws.ID); err != nil {
		t.Fatalf("DeleteWorkspace() unexpected error: %v", err)
	}
	if _, err := repo.GetByID(ctx, ws.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("workspace still present after delete")
	}
}

func TestDeleteWorkspaceDefaultForbidden(t *testing.T) {
	svc, _ := newWorkspaceServiceForTest()

	err := svc.DeleteWorkspace(context.Background(), 1)
	if !errors.Is(err, domain.ErrForbidden) {
		t.Errorf("delete default error = %v, want forbidden", err)
	}
}

func TestDeleteWorkspaceMissing(t *testing.T) {
	svc, _ := newWorkspaceServiceForTest()

	err := svc.DeleteWorkspace(context.Background(), 999)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("delete missing error = %v, want not found", err)
	}
}

func TestDeleteWorkspaceWithProjects(t *testing.T) {
	svc, repo := newWorkspaceServiceForTest()
	ctx := context.Background()

	ws, _ := svc.CreateWorkspace(ctx, &services.CreateWorkspaceRequest{Name: "Busy"})
	repo.projectCounts[ws.ID] = 3

	err := svc.DeleteWorkspace(ctx, ws.ID)

	var ruleErr *domain.BusinessRuleError
	if !errors.As(err, &ruleErr) {
		t.Fatalf("delete error = %v, want business rule error", err)
	}
	if ruleErr.ProjectCount != 3 {
		t.Errorf("project count = %d, want 3", ruleErr.ProjectCount)
	}
	if !strings.Contains(ruleErr.Error(), "3") {
		t.Errorf("message %q should mention the blocking count", ruleErr.Error())
	}

	// The workspace survives the rejected delete
	if _, err := repo.GetByID(ctx, ws.ID); err != nil {
		t.Errorf("workspace missing after rejected delete: %v", err)
	}
}
