package services

import (
	"github.com/UES-FIA-2024/placement-service/internal/auth"
	"github.com/UES-FIA-2024/placement-service/internal/repositories"
	"github.com/UES-FIA-2024/placement-service/internal/storage"
	"github.com/UES-FIA-2024/placement-service/internal/utils"
	"github.com/UES-FIA-2024/placement-service/internal/validator"
)

// ServiceManager wires every service over one shared repository,
// validator and auth stack.
type ServiceManager struct {
	Auth        *AuthService
	Coordinator *CoordinatorService
	Company     *CompanyService
	Student     *StudentService
	Project     *ProjectService
	User        *UserService
	Lookup      *LookupService
}

// ServiceConfig holds the dependencies shared by all services.
type ServiceConfig struct {
	Repo      repositories.Repository
	Validator *validator.Validator
	Passwords *auth.PasswordService
	Tokens    *auth.TokenService
	Ingestor  *storage.ImageIngestor
	Logger    utils.Logger
}

func NewServiceManager(cfg ServiceConfig) *ServiceManager {
	return &ServiceManager{
		Auth:        NewAuthService(cfg.Repo, cfg.Validator, cfg.Passwords, cfg.Tokens, cfg.Logger),
		Coordinator: NewCoordinatorService(cfg.Repo, cfg.Validator, cfg.Passwords, cfg.Logger),
		Company:     NewCompanyService(cfg.Repo, cfg.Validator, cfg.Passwords, cfg.Tokens, cfg.Ingestor, cfg.Logger),
		Student:     NewStudentService(cfg.Repo, cfg.Validator, cfg.Passwords, cfg.Logger),
		Project:     NewProjectService(cfg.Repo, cfg.Validator, cfg.Logger),
		User:        NewUserService(cfg.Repo, cfg.Logger),
		Lookup:      NewLookupService(cfg.Repo),
	}
}
