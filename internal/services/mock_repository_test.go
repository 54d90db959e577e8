package services

import (
	"context"
	"io"
	"log/slog"

	"gorm.io/gorm"

	"github.com/UES-FIA-2024/placement-service/internal/models"
	"github.com/UES-FIA-2024/placement-service/internal/repositories"
	"github.com/UES-FIA-2024/placement-service/internal/utils"
)

// mockRepository is an in-memory Repository for service tests.
type mockRepository struct {
	users        map[uint]*models.User
	coordinators map[uint]*models.Coordinator
	companies    map[uint]*models.Company
	students     map[uint]*models.Student
	projects     map[uint]*models.Project
	careers      map[uint]*models.Career
	sectors      map[uint]*models.Sector
	nextID       uint

	// Cache evictions recorded for assertions.
	evictedCoordinators []uint
	evictedCompanies    []uint
}

func newMockRepository() *mockRepository {
	return &mockRepository{
		users:        make(map[uint]*models.User),
		coordinators: make(map[uint]*models.Coordinator),
		companies:    make(map[uint]*models.Company),
		students:     make(map[uint]*models.Student),
		projects:     make(map[uint]*models.Project),
		careers:      map[uint]*models.Career{1: {ID: 1, Name: "Ingeniería de Sistemas Informáticos"}},
		sectors:      map[uint]*models.Sector{1: {ID: 1, Name: "Tecnología"}},
	}
}

func (m *mockRepository) id() uint {
	m.nextID++
	return m.nextID
}

func (m *mockRepository) User() repositories.UserRepository               { return (*mockUserRepo)(m) }
func (m *mockRepository) Coordinator() repositories.CoordinatorRepository { return (*mockCoordRepo)(m) }
func (m *mockRepository) Company() repositories.CompanyRepository         { return (*mockCompanyRepo)(m) }
func (m *mockRepository) Student() repositories.StudentRepository         { return (*mockStudentRepo)(m) }
func (m *mockRepository) Project() repositories.ProjectRepository         { return (*mockProjectRepo)(m) }
func (m *mockRepository) Lookup() repositories.LookupRepository           { return (*mockLookupRepo)(m) }

func (m *mockRepository) WithTransaction(ctx context.Context, fn func(repositories.Repository) error) error {
	return fn(m)
}

func (m *mockRepository) Ping(ctx context.Context) error { return nil }
func (m *mockRepository) Close() error                   { return nil }

// ===== USERS =====

type mockUserRepo mockRepository

func (m *mockUserRepo) Create(ctx context.Context, user *models.User) error {
	for _, u := range m.users {
		if u.Email == user.Email {
			return gorm.ErrDuplicatedKey
		}
	}
	user.ID = (*mockRepository)(m).id()
	m.users[user.ID] = user
	return nil
}

func (m *mockUserRepo) GetByID(ctx context.Context, id uint) (*models.User, error) {
	u, ok := m.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return u, nil
}

func (m *mockUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	for _, u := range m.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) EmailTaken(ctx context.Context, email string) (bool, error) {
	for _, u := range m.users {
		if u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (m *mockUserRepo) UpdatePassword(ctx context.Context, id uint, passwordHash string) error {
	u, ok := m.users[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	u.PasswordHash = passwordHash
	return nil
}

func (m *mockUserRepo) List(ctx context.Context, filters repositories.UserFilters) ([]*models.User, int64, error) {
	var out []*models.User
	for _, u := range m.users {
		if filters.RoleID > 0 && u.RoleID != filters.RoleID {
			continue
		}
		if filters.Active != nil && u.Active != *filters.Active {
			continue
		}
		out = append(out, u)
	}
	return out, int64(len(out)), nil
}

func (m *mockUserRepo) Delete(ctx context.Context, id uint) error {
	if _, ok := m.users[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(m.users, id)
	// FK cascade.
	for cid, c := range m.coordinators {
		if c.UserID == id {
			delete(m.coordinators, cid)
		}
	}
	for cid, c := range m.companies {
		if c.UserID == id {
			for pid, p := range m.projects {
				if p.CompanyID == cid {
					delete(m.projects, pid)
				}
			}
			delete(m.companies, cid)
		}
	}
	for sid, s := range m.students {
		if s.UserID == id {
			delete(m.students, sid)
		}
	}
	return nil
}

// ===== COORDINATORS =====

type mockCoordRepo mockRepository

func (m *mockCoordRepo) Create(ctx context.Context, coordinator *models.Coordinator) error {
	for _, c := range m.coordinators {
		if coordinator.Phone != "" && c.Phone == coordinator.Phone {
			return gorm.ErrDuplicatedKey
		}
	}
	coordinator.ID = (*mockRepository)(m).id()
	m.coordinators[coordinator.ID] = coordinator
	return nil
}

func (m *mockCoordRepo) GetByID(ctx context.Context, id uint) (*models.Coordinator, error) {
	c, ok := m.coordinators[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return c, nil
}

func (m *mockCoordRepo) GetByUserID(ctx context.Context, userID uint) (*models.Coordinator, error) {
	for _, c := range m.coordinators {
		if c.UserID == userID {
			return c, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockCoordRepo) List(ctx context.Context) ([]*models.Coordinator, error) {
	var out []*models.Coordinator
	for _, c := range m.coordinators {
		out = append(out, c)
	}
	return out, nil
}

func (m *mockCoordRepo) Update(ctx context.Context, coordinator *models.Coordinator) error {
	m.coordinators[coordinator.ID] = coordinator
	return nil
}

func (m *mockCoordRepo) Evict(ctx context.Context, id uint) {
	m.evictedCoordinators = append(m.evictedCoordinators, id)
}

func (m *mockCoordRepo) PhoneInUse(ctx context.Context, phone string, excludeUserID uint) (bool, error) {
	for _, c := range m.coordinators {
		if c.Phone == phone && c.UserID != excludeUserID {
			return true, nil
		}
	}
	return false, nil
}

// ===== COMPANIES =====

type mockCompanyRepo mockRepository

func (m *mockCompanyRepo) Create(ctx context.Context, company *models.Company) error {
	for _, c := range m.companies {
		if company.Phone != "" && c.Phone == company.Phone {
			return gorm.ErrDuplicatedKey
		}
	}
	company.ID = (*mockRepository)(m).id()
	m.companies[company.ID] = company
	return nil
}

func (m *mockCompanyRepo) GetByID(ctx context.Context, id uint) (*models.Company, error) {
	c, ok := m.companies[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return c, nil
}

func (m *mockCompanyRepo) GetByUserID(ctx context.Context, userID uint) (*models.Company, error) {
	for _, c := range m.companies {
		if c.UserID == userID {
			return c, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockCompanyRepo) List(ctx context.Context) ([]*models.Company, error) {
	var out []*models.Company
	for _, c := range m.companies {
		out = append(out, c)
	}
	return out, nil
}

func (m *mockCompanyRepo) Update(ctx context.Context, company *models.Company) error {
	m.companies[company.ID] = company
	return nil
}

func (m *mockCompanyRepo) Evict(ctx context.Context, id uint) {
	m.evictedCompanies = append(m.evictedCompanies, id)
}

func (m *mockCompanyRepo) PhoneInUse(ctx context.Context, phone string, excludeUserID uint) (bool, error) {
	for _, c := range m.companies {
		if c.Phone == phone && c.UserID != excludeUserID {
			return true, nil
		}
	}
	return false, nil
}

// ===== STUDENTS =====

type mockStudentRepo mockRepository

func (m *mockStudentRepo) Create(ctx context.Context, student *models.Student) error {
	student.ID = (*mockRepository)(m).id()
	m.students[student.ID] = student
	return nil
}

func (m *mockStudentRepo) GetByID(ctx context.Context, id uint) (*models.Student, error) {
	s, ok := m.students[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return s, nil
}

func (m *mockStudentRepo) GetByUserID(ctx context.Context, userID uint) (*models.Student, error) {
	for _, s := range m.students {
		if s.UserID == userID {
			return s, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockStudentRepo) List(ctx context.Context) ([]*models.Student, error) {
	var out []*models.Student
	for _, s := range m.students {
		out = append(out, s)
	}
	return out, nil
}

func (m *mockStudentRepo) Update(ctx context.Context, student *models.Student) error {
	m.students[student.ID] = student
	return nil
}

func (m *mockStudentRepo) PhoneInUse(ctx context.Context, phone string, excludeUserID uint) (bool, error) {
	for _, s := range m.students {
		if s.Phone == phone && s.UserID != excludeUserID {
			return true, nil
		}
	}
	return false, nil
}

func (m *mockStudentRepo) CarnetTaken(ctx context.Context, carnet string, excludeUserID uint) (bool, error) {
	for _, s := range m.students {
		if s.Carnet == carnet && s.UserID != excludeUserID {
			return true, nil
		}
	}
	return false, nil
}

// ===== PROJECTS =====

type mockProjectRepo mockRepository

func (m *mockProjectRepo) Create(ctx context.Context, project *models.Project) error {
	project.ID = (*mockRepository)(m).id()
	m.projects[project.ID] = project
	return nil
}

func (m *mockProjectRepo) GetByID(ctx context.Context, id uint) (*models.Project, error) {
	p, ok := m.projects[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return p, nil
}

func (m *mockProjectRepo) List(ctx context.Context, filters repositories.ProjectFilters) ([]*models.Project, error) {
	var out []*models.Project
	for _, p := range m.projects {
		if filters.Status != "" && p.Status != filters.Status {
			continue
		}
		if filters.CompanyID > 0 && p.CompanyID != filters.CompanyID {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

func (m *mockProjectRepo) ListByCompany(ctx context.Context, companyID uint) ([]*models.Project, error) {
	return m.List(ctx, repositories.ProjectFilters{CompanyID: companyID})
}

func (m *mockProjectRepo) Update(ctx context.Context, project *models.Project) error {
	m.projects[project.ID] = project
	return nil
}

func (m *mockProjectRepo) Delete(ctx context.Context, id uint) error {
	if _, ok := m.projects[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(m.projects, id)
	return nil
}

// ===== LOOKUPS =====

type mockLookupRepo mockRepository

func (m *mockLookupRepo) Careers(ctx context.Context) ([]*models.Career, error) {
	var out []*models.Career
	for _, c := range m.careers {
		out = append(out, c)
	}
	return out, nil
}

func (m *mockLookupRepo) Sectors(ctx context.Context) ([]*models.Sector, error) {
	var out []*models.Sector
	for _, s := range m.sectors {
		out = append(out, s)
	}
	return out, nil
}

func (m *mockLookupRepo) CareerExists(ctx context.Context, id uint) (bool, error) {
	_, ok := m.careers[id]
	return ok, nil
}

func (m *mockLookupRepo) SectorExists(ctx context.Context, id uint) (bool, error) {
	_, ok := m.sectors[id]
	return ok, nil
}

func testLogger() utils.Logger {
	return utils.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}
