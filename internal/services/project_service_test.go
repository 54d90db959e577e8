package services

import (
	"context"
	"errors"
	"testing"

	"github.com/UES-FIA-2024/placement-service/internal/authz"
	"github.com/UES-FIA-2024/placement-service/internal/models"
	"github.com/UES-FIA-2024/placement-service/internal/repositories"
	"github.com/UES-FIA-2024/placement-service/internal/validator"
)

func projectFixture(t *testing.T) (*mockRepository, *ProjectService, authz.Actor, *models.Project) {
	t.Helper()
	ctx := context.Background()

	repo := newMockRepository()
	store := newMemStore()
	registration, err := newCompanyService(repo, store).Create(ctx, authz.Actor{}, companyPayload())
	if err != nil {
		t.Fatalf("company fixture: %v", err)
	}
	owner := authz.Actor{UserID: registration.Company.UserID, Role: models.RoleCompany}

	svc := NewProjectService(repo, validator.New(), testLogger())
	project, err := svc.Create(ctx, owner, validator.ProjectCreateRequest{
		Title:        "Sistema de inventario",
		Description:  "Aplicación web interna",
		Modality:     "remoto",
		Capacity:     2,
		Requirements: []string{"Go", "PostgreSQL"},
	})
	if err != nil {
		t.Fatalf("project fixture: %v", err)
	}
	return repo, svc, owner, project
}

func TestProjectCreate(t *testing.T) {
	ctx := context.Background()
	_, svc, owner, project := projectFixture(t)

	if project.Status != models.ProjectOpen {
		t.Errorf("Status = %q, want %q", project.Status, models.ProjectOpen)
	}
	if project.Capacity != 2 {
		t.Errorf("Capacity = %d", project.Capacity)
	}

	t.Run("only companies can publish", func(t *testing.T) {
		for _, role := range []models.Role{models.RoleAdmin, models.RoleCoordinator, models.RoleStudent} {
			actor := authz.Actor{UserID: 50, Role: role}
			if _, err := svc.Create(ctx, actor, validator.ProjectCreateRequest{Title: "X"}); !errors.Is(err, ErrNotAllowed) {
				t.Errorf("role %s: err = %v, want ErrNotAllowed", role, err)
			}
		}
	})

	t.Run("capacity defaults to one", func(t *testing.T) {
		p, err := svc.Create(ctx, owner, validator.ProjectCreateRequest{Title: "Práctica corta"})
		if err != nil {
			t.Fatalf("Create: %v", err)
		}
		if p.Capacity != 1 {
			t.Errorf("Capacity = %d, want 1", p.Capacity)
		}
	})
}

func TestProjectUpdate(t *testing.T) {
	ctx := context.Background()

	t.Run("owner company edits its project", func(t *testing.T) {
		_, svc, owner, project := projectFixture(t)

		status := "cerrado"
		updated, err := svc.Update(ctx, owner, project.ID, validator.ProjectUpdateRequest{Status: &status})
		if err != nil {
			t.Fatalf("Update: %v", err)
		}
		if updated.Status != models.ProjectClosed {
			t.Errorf("Status = %q", updated.Status)
		}
		if updated.Title != "Sistema de inventario" {
			t.Error("absent fields were touched")
		}
	})

	t.Run("admin edits any project", func(t *testing.T) {
		_, svc, _, project := projectFixture(t)

		title := "Sistema de inventario v2"
		if _, err := svc.Update(ctx, adminActor, project.ID, validator.ProjectUpdateRequest{Title: &title}); err != nil {
			t.Fatalf("Update as admin: %v", err)
		}
	})

	t.Run("other companies are denied", func(t *testing.T) {
		_, svc, owner, project := projectFixture(t)

		stranger := authz.Actor{UserID: owner.UserID + 11, Role: models.RoleCompany}
		title := "Secuestrado"
		if _, err := svc.Update(ctx, stranger, project.ID, validator.ProjectUpdateRequest{Title: &title}); !errors.Is(err, ErrNotAllowed) {
			t.Errorf("err = %v, want ErrNotAllowed", err)
		}
	})
}

func TestProjectDeleteAndList(t *testing.T) {
	ctx := context.Background()
	repo, svc, owner, project := projectFixture(t)

	projects, err := svc.List(ctx, owner, repositories.ProjectFilters{Status: models.ProjectOpen})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(projects) != 1 {
		t.Fatalf("List returned %d projects, want 1", len(projects))
	}

	if err := svc.Delete(ctx, owner, project.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, ok := repo.projects[project.ID]; ok {
		t.Error("project row survived the delete")
	}
	if _, err := svc.Get(ctx, owner, project.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get after delete: %v, want ErrNotFound", err)
	}
}

func TestProjectCascadeOnCompanyDelete(t *testing.T) {
	ctx := context.Background()
	repo, _, owner, project := projectFixture(t)

	store := newMemStore()
	companySvc := newCompanyService(repo, store)
	company, err := repo.Company().GetByUserID(ctx, owner.UserID)
	if err != nil {
		t.Fatalf("GetByUserID: %v", err)
	}
	if err := companySvc.Delete(ctx, owner, company.ID); err != nil {
		t.Fatalf("company Delete: %v", err)
	}

	if _, ok := repo.projects[project.ID]; ok {
		t.Error("project survived the company cascade")
	}
}
