package repositories

import (
	"context"

	"github.com/UES-FIA-2024/placement-service/internal/models"
)

// UserRepository manages authentication identity rows (usuarios).
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id uint) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	EmailTaken(ctx context.Context, email string) (bool, error)
	UpdatePassword(ctx context.Context, id uint, passwordHash string) error
	List(ctx context.Context, filters UserFilters) ([]*models.User, int64, error)
	// Delete removes the account row; entity rows and their FK children go
	// with it through the database cascade.
	Delete(ctx context.Context, id uint) error
}

// UserFilters narrows user listings.
type UserFilters struct {
	RoleID int
	Active *bool
	Limit  int
	Offset int
}

// CoordinatorRepository manages coordinator profile rows.
type CoordinatorRepository interface {
	Create(ctx context.Context, coordinator *models.Coordinator) error
	GetByID(ctx context.Context, id uint) (*models.Coordinator, error)
	GetByUserID(ctx context.Context, userID uint) (*models.Coordinator, error)
	List(ctx context.Context) ([]*models.Coordinator, error)
	Update(ctx context.Context, coordinator *models.Coordinator) error
	// PhoneInUse reports whether phone is already stored for a different
	// coordinator. excludeUserID skips the given owner's own row on update;
	// zero excludes nothing. Advisory only: the unique index is the source
	// of truth under concurrency.
	PhoneInUse(ctx context.Context, phone string, excludeUserID uint) (bool, error)
	// Evict drops any cached copy of the profile. Deletes go through the
	// account row and its FK cascade, so the read cache never sees them;
	// callers evict explicitly. Best effort.
	Evict(ctx context.Context, id uint)
}

// CompanyRepository manages company profile rows.
type CompanyRepository interface {
	Create(ctx context.Context, company *models.Company) error
	GetByID(ctx context.Context, id uint) (*models.Company, error)
	GetByUserID(ctx context.Context, userID uint) (*models.Company, error)
	List(ctx context.Context) ([]*models.Company, error)
	Update(ctx context.Context, company *models.Company) error
	PhoneInUse(ctx context.Context, phone string, excludeUserID uint) (bool, error)
	// Evict drops any cached copy of the profile, see
	// CoordinatorRepository.Evict.
	Evict(ctx context.Context, id uint)
}

// StudentRepository manages student profile rows.
type StudentRepository interface {
	Create(ctx context.Context, student *models.Student) error
	GetByID(ctx context.Context, id uint) (*models.Student, error)
	GetByUserID(ctx context.Context, userID uint) (*models.Student, error)
	List(ctx context.Context) ([]*models.Student, error)
	Update(ctx context.Context, student *models.Student) error
	PhoneInUse(ctx context.Context, phone string, excludeUserID uint) (bool, error)
	CarnetTaken(ctx context.Context, carnet string, excludeUserID uint) (bool, error)
}

// ProjectRepository manages internship openings.
type ProjectRepository interface {
	Create(ctx context.Context, project *models.Project) error
	GetByID(ctx context.Context, id uint) (*models.Project, error)
	List(ctx context.Context, filters ProjectFilters) ([]*models.Project, error)
	ListByCompany(ctx context.Context, companyID uint) ([]*models.Project, error)
	Update(ctx context.Context, project *models.Project) error
	Delete(ctx context.Context, id uint) error
}

// ProjectFilters narrows project listings.
type ProjectFilters struct {
	Status    models.ProjectStatus
	CompanyID uint
}

// LookupRepository serves the seeded reference tables (carreras,
// sectores_industria) that validation and the SPA forms read.
type LookupRepository interface {
	Careers(ctx context.Context) ([]*models.Career, error)
	Sectors(ctx context.Context) ([]*models.Sector, error)
	CareerExists(ctx context.Context, id uint) (bool, error)
	SectorExists(ctx context.Context, id uint) (bool, error)
}

// Repository aggregates every sub-repository plus transaction support.
type Repository interface {
	User() UserRepository
	Coordinator() CoordinatorRepository
	Company() CompanyRepository
	Student() StudentRepository
	Project() ProjectRepository
	Lookup() LookupRepository

	// WithTransaction runs fn against a repository bound to one database
	// transaction; fn returning an error rolls everything back.
	WithTransaction(ctx context.Context, fn func(Repository) error) error

	Ping(ctx context.Context) error
	Close() error
}

// RepositoryManager owns repository lifecycle.
type RepositoryManager interface {
	Initialize() error
	GetRepository() Repository
	HealthCheck(ctx context.Context) error
	Shutdown(ctx context.Context) error
}
