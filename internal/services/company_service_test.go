package services

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/UES-FIA-2024/placement-service/internal/auth"
	"github.com/UES-FIA-2024/placement-service/internal/authz"
	"github.com/UES-FIA-2024/placement-service/internal/models"
	"github.com/UES-FIA-2024/placement-service/internal/storage"
	"github.com/UES-FIA-2024/placement-service/internal/validator"
)

// memStore keeps stored objects in a map for assertions on ingest,
// replace and delete behavior.
type memStore struct {
	objects map[string][]byte
}

func newMemStore() *memStore {
	return &memStore{objects: make(map[string][]byte)}
}

func (s *memStore) Put(name string, data []byte) error {
	s.objects[name] = data
	return nil
}

func (s *memStore) Delete(name string) error {
	if _, ok := s.objects[name]; !ok {
		return errors.New("not found")
	}
	delete(s.objects, name)
	return nil
}

func (s *memStore) URL(name string) string {
	return "/storage/logos/" + name
}

const logoPNG = "data:image/png;base64,aG9sYQ=="

var testTokens = auth.NewTokenService("clave-de-prueba", time.Hour)

func newCompanyService(repo *mockRepository, store *memStore) *CompanyService {
	ingestor := storage.NewImageIngestor(store)
	return NewCompanyService(repo, validator.New(), auth.NewPasswordService(4), testTokens, ingestor, testLogger())
}

func companyPayload() validator.CompanyCreateRequest {
	return validator.CompanyCreateRequest{
		SectorID:             1,
		Name:                 "Acme S.A. de C.V.",
		Address:              "San Salvador",
		Phone:                "22334455",
		Website:              "https://acme.example",
		Description:          "Desarrollo de software",
		LogoURL:              logoPNG,
		Email:                "contacto@acme.example",
		Password:             "secreto123",
		PasswordConfirmation: "secreto123",
	}
}

func TestCompanyRegistration(t *testing.T) {
	ctx := context.Background()

	t.Run("anonymous caller can register", func(t *testing.T) {
		repo := newMockRepository()
		store := newMemStore()
		svc := newCompanyService(repo, store)

		registration, err := svc.Create(ctx, authz.Actor{}, companyPayload())
		if err != nil {
			t.Fatalf("Create: %v", err)
		}

		company := registration.Company
		if registration.CompanyID != company.ID {
			t.Errorf("CompanyID = %d, want %d", registration.CompanyID, company.ID)
		}
		if company.Phone != "+503 2233-4455" {
			t.Errorf("Phone = %q, want normalized form", company.Phone)
		}
		if company.Verified {
			t.Error("fresh registration must not be verified")
		}
		if !strings.HasPrefix(company.LogoURL, "/storage/logos/") || !strings.HasSuffix(company.LogoURL, ".png") {
			t.Errorf("LogoURL = %q", company.LogoURL)
		}
		if len(store.objects) != 1 {
			t.Errorf("stored objects = %d, want 1", len(store.objects))
		}

		user, err := repo.User().GetByID(ctx, company.UserID)
		if err != nil {
			t.Fatalf("account row missing: %v", err)
		}
		if user.RoleID != models.RoleCompany.ID() {
			t.Errorf("RoleID = %d, want %d", user.RoleID, models.RoleCompany.ID())
		}
	})

	t.Run("response carries a usable session token", func(t *testing.T) {
		repo := newMockRepository()
		store := newMemStore()
		svc := newCompanyService(repo, store)

		registration, err := svc.Create(ctx, authz.Actor{}, companyPayload())
		if err != nil {
			t.Fatalf("Create: %v", err)
		}

		if registration.TokenType != "Bearer" {
			t.Errorf("TokenType = %q, want Bearer", registration.TokenType)
		}
		if !registration.ExpiresAt.After(time.Now()) {
			t.Errorf("ExpiresAt = %v, want in the future", registration.ExpiresAt)
		}
		claims, err := testTokens.Verify(registration.Token)
		if err != nil {
			t.Fatalf("Verify: %v", err)
		}
		if claims.UserID != registration.Company.UserID {
			t.Errorf("token UserID = %d, want %d", claims.UserID, registration.Company.UserID)
		}
		if claims.RoleID != models.RoleCompany.ID() {
			t.Errorf("token RoleID = %d, want %d", claims.RoleID, models.RoleCompany.ID())
		}
	})

	t.Run("unknown sector is rejected", func(t *testing.T) {
		repo := newMockRepository()
		store := newMemStore()
		svc := newCompanyService(repo, store)

		req := companyPayload()
		req.SectorID = 42
		_, err := svc.Create(ctx, authz.Actor{}, req)

		var vErr *ValidationFailedError
		if !errors.As(err, &vErr) {
			t.Fatalf("err = %v, want ValidationFailedError", err)
		}
		if len(vErr.Fields["id_sector"]) == 0 {
			t.Errorf("expected id_sector error, got %v", vErr.Fields)
		}
		if len(store.objects) != 0 {
			t.Error("rejected registration stored a logo")
		}
	})

	t.Run("payload with space-mangled base64 still decodes", func(t *testing.T) {
		repo := newMockRepository()
		store := newMemStore()
		svc := newCompanyService(repo, store)

		req := companyPayload()
		req.LogoURL = "data:image/png;base64, /8=" // '+' decoded to ' ' in transit
		if _, err := svc.Create(ctx, authz.Actor{}, req); err != nil {
			t.Fatalf("Create: %v", err)
		}
	})
}

func TestCompanyUpdate(t *testing.T) {
	ctx := context.Background()

	setup := func(t *testing.T) (*mockRepository, *memStore, *CompanyService, *models.Company) {
		t.Helper()
		repo := newMockRepository()
		store := newMemStore()
		svc := newCompanyService(repo, store)
		registration, err := svc.Create(ctx, authz.Actor{}, companyPayload())
		if err != nil {
			t.Fatalf("setup Create: %v", err)
		}
		return repo, store, svc, registration.Company
	}

	t.Run("owner updates own profile", func(t *testing.T) {
		_, _, svc, company := setup(t)
		owner := authz.Actor{UserID: company.UserID, Role: models.RoleCompany}

		name := "Acme Internacional"
		updated, err := svc.Update(ctx, owner, company.ID, validator.CompanyUpdateRequest{Name: &name})
		if err != nil {
			t.Fatalf("Update: %v", err)
		}
		if updated.Name != "Acme Internacional" {
			t.Errorf("Name = %q", updated.Name)
		}
		if updated.Address != "San Salvador" {
			t.Error("absent fields were touched")
		}
	})

	t.Run("non-owner is denied, even admins", func(t *testing.T) {
		repo, _, svc, company := setup(t)

		name := "Mallory Corp"
		for _, actor := range []authz.Actor{
			adminActor,
			{UserID: company.UserID + 7, Role: models.RoleCompany},
			{UserID: company.UserID + 7, Role: models.RoleCoordinator},
		} {
			if _, err := svc.Update(ctx, actor, company.ID, validator.CompanyUpdateRequest{Name: &name}); !errors.Is(err, ErrNotAllowed) {
				t.Errorf("actor %+v: err = %v, want ErrNotAllowed", actor, err)
			}
		}
		if repo.companies[company.ID].Name != "Acme S.A. de C.V." {
			t.Error("denied update mutated the row")
		}
	})

	t.Run("new logo replaces the stored object", func(t *testing.T) {
		_, store, svc, company := setup(t)
		owner := authz.Actor{UserID: company.UserID, Role: models.RoleCompany}
		oldURL := company.LogoURL

		logo := "data:image/jpeg;base64,bnVldm8="
		updated, err := svc.Update(ctx, owner, company.ID, validator.CompanyUpdateRequest{LogoURL: &logo})
		if err != nil {
			t.Fatalf("Update: %v", err)
		}
		if updated.LogoURL == oldURL {
			t.Error("logo URL did not change")
		}
		if !strings.HasSuffix(updated.LogoURL, ".jpeg") {
			t.Errorf("LogoURL = %q", updated.LogoURL)
		}
		if len(store.objects) != 1 {
			t.Errorf("stored objects = %d, want old logo deleted", len(store.objects))
		}
	})
}

func TestCompanyDelete(t *testing.T) {
	ctx := context.Background()
	repo := newMockRepository()
	store := newMemStore()
	svc := newCompanyService(repo, store)

	registration, err := svc.Create(ctx, authz.Actor{}, companyPayload())
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	company := registration.Company
	owner := authz.Actor{UserID: company.UserID, Role: models.RoleCompany}

	if err := svc.Delete(ctx, owner, company.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	if _, ok := repo.users[company.UserID]; ok {
		t.Error("account row survived the delete")
	}
	if _, ok := repo.companies[company.ID]; ok {
		t.Error("company row survived the delete")
	}
	if len(repo.evictedCompanies) != 1 || repo.evictedCompanies[0] != company.ID {
		t.Errorf("evicted companies = %v, want [%d]", repo.evictedCompanies, company.ID)
	}
	if len(store.objects) != 0 {
		t.Error("logo survived the delete")
	}
}

func TestCompanyVisibility(t *testing.T) {
	ctx := context.Background()
	repo := newMockRepository()
	store := newMemStore()
	svc := newCompanyService(repo, store)

	registration, err := svc.Create(ctx, authz.Actor{}, companyPayload())
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	company := registration.Company

	t.Run("list is for staff", func(t *testing.T) {
		if _, err := svc.List(ctx, adminActor); err != nil {
			t.Errorf("List as admin: %v", err)
		}
		if _, err := svc.List(ctx, authz.Actor{UserID: 3, Role: models.RoleCoordinator}); err != nil {
			t.Errorf("List as coordinator: %v", err)
		}
		if _, err := svc.List(ctx, authz.Actor{UserID: company.UserID, Role: models.RoleCompany}); !errors.Is(err, ErrNotAllowed) {
			t.Errorf("List as company: %v, want ErrNotAllowed", err)
		}
	})

	t.Run("get allows staff and the owner", func(t *testing.T) {
		owner := authz.Actor{UserID: company.UserID, Role: models.RoleCompany}
		if _, err := svc.Get(ctx, owner, company.ID); err != nil {
			t.Errorf("Get as owner: %v", err)
		}
		stranger := authz.Actor{UserID: company.UserID + 9, Role: models.RoleCompany}
		if _, err := svc.Get(ctx, stranger, company.ID); !errors.Is(err, ErrNotAllowed) {
			t.Errorf("Get as stranger: %v, want ErrNotAllowed", err)
		}
	})
}
