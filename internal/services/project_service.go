package services

import (
	"context"
	"encoding/json"

	"gorm.io/datatypes"

	"github.com/UES-FIA-2024/placement-service/internal/authz"
	"github.com/UES-FIA-2024/placement-service/internal/models"
	"github.com/UES-FIA-2024/placement-service/internal/repositories"
	"github.com/UES-FIA-2024/placement-service/internal/utils"
	"github.com/UES-FIA-2024/placement-service/internal/validator"
)

// ProjectService manages internship openings. Companies publish and edit
// their own projects; admins can edit or remove any of them.
type ProjectService struct {
	repo      repositories.Repository
	validator *validator.Validator
	logger    utils.Logger
}

func NewProjectService(repo repositories.Repository, v *validator.Validator, logger utils.Logger) *ProjectService {
	return &ProjectService{repo: repo, validator: v, logger: logger}
}

func (s *ProjectService) List(ctx context.Context, actor authz.Actor, filters repositories.ProjectFilters) ([]*models.Project, error) {
	if !authz.Allow(actor, authz.OpProjectList, 0) {
		return nil, ErrNotAllowed
	}
	projects, err := s.repo.Project().List(ctx, filters)
	if err != nil {
		return nil, mapRepoError(err)
	}
	return projects, nil
}

func (s *ProjectService) Get(ctx context.Context, actor authz.Actor, id uint) (*models.Project, error) {
	if !authz.Allow(actor, authz.OpProjectGet, 0) {
		return nil, ErrNotAllowed
	}
	project, err := s.repo.Project().GetByID(ctx, id)
	if err != nil {
		return nil, mapRepoError(err)
	}
	return project, nil
}

// Create publishes a project for the calling company's own profile.
func (s *ProjectService) Create(ctx context.Context, actor authz.Actor, req validator.ProjectCreateRequest) (*models.Project, error) {
	if !authz.Allow(actor, authz.OpProjectCreate, 0) {
		return nil, ErrNotAllowed
	}

	company, err := s.repo.Company().GetByUserID(ctx, actor.UserID)
	if err != nil {
		return nil, mapRepoError(err)
	}

	if errs := s.validator.Validate(req); len(errs) > 0 {
		return nil, validationFailed(errs)
	}

	requirements, err := marshalRequirements(req.Requirements)
	if err != nil {
		return nil, err
	}

	capacity := req.Capacity
	if capacity == 0 {
		capacity = 1
	}

	project := &models.Project{
		CompanyID:    company.ID,
		Title:        req.Title,
		Description:  req.Description,
		Modality:     req.Modality,
		Capacity:     capacity,
		Requirements: requirements,
		Status:       models.ProjectOpen,
	}
	if err := s.repo.Project().Create(ctx, project); err != nil {
		return nil, mapRepoError(err)
	}

	s.logger.Info("project published", "project_id", project.ID, "company_id", company.ID)
	return project, nil
}

func (s *ProjectService) Update(ctx context.Context, actor authz.Actor, id uint, req validator.ProjectUpdateRequest) (*models.Project, error) {
	project, err := s.repo.Project().GetByID(ctx, id)
	if err != nil {
		return nil, mapRepoError(err)
	}
	ownerID, err := s.ownerUserID(ctx, project)
	if err != nil {
		return nil, err
	}
	if !authz.Allow(actor, authz.OpProjectUpdate, ownerID) {
		return nil, ErrNotAllowed
	}

	if errs := s.validator.Validate(req); len(errs) > 0 {
		return nil, validationFailed(errs)
	}

	if req.Title != nil {
		project.Title = *req.Title
	}
	if req.Description != nil {
		project.Description = *req.Description
	}
	if req.Modality != nil {
		project.Modality = *req.Modality
	}
	if req.Capacity != nil {
		project.Capacity = *req.Capacity
	}
	if req.Requirements != nil {
		requirements, err := marshalRequirements(req.Requirements)
		if err != nil {
			return nil, err
		}
		project.Requirements = requirements
	}
	if req.Status != nil {
		project.Status = models.ProjectStatus(*req.Status)
	}

	if err := s.repo.Project().Update(ctx, project); err != nil {
		return nil, mapRepoError(err)
	}
	return project, nil
}

func (s *ProjectService) Delete(ctx context.Context, actor authz.Actor, id uint) error {
	project, err := s.repo.Project().GetByID(ctx, id)
	if err != nil {
		return mapRepoError(err)
	}
	ownerID, err := s.ownerUserID(ctx, project)
	if err != nil {
		return err
	}
	if !authz.Allow(actor, authz.OpProjectDelete, ownerID) {
		return ErrNotAllowed
	}

	if err := s.repo.Project().Delete(ctx, id); err != nil {
		return mapRepoError(err)
	}
	s.logger.Info("project deleted", "project_id", id)
	return nil
}

// ownerUserID resolves the user id of the company that owns a project.
func (s *ProjectService) ownerUserID(ctx context.Context, project *models.Project) (uint, error) {
	if project.Company != nil {
		return project.Company.UserID, nil
	}
	company, err := s.repo.Company().GetByID(ctx, project.CompanyID)
	if err != nil {
		return 0, mapRepoError(err)
	}
	return company.UserID, nil
}

func marshalRequirements(requirements []string) (datatypes.JSON, error) {
	if requirements == nil {
		return nil, nil
	}
	data, err := json.Marshal(requirements)
	if err != nil {
		return nil, err
	}
	return datatypes.JSON(data), nil
}
