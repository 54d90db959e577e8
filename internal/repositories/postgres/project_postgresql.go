package postgres

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/UES-FIA-2024/placement-service/internal/models"
	"github.com/UES-FIA-2024/placement-service/internal/repositories"
)

type projectRepository struct {
	db *gorm.DB
}

func NewProjectPostgreSQL(db *gorm.DB) repositories.ProjectRepository {
	return &projectRepository{db: db}
}

func (r *projectRepository) Create(ctx context.Context, project *models.Project) error {
	if err := r.db.WithContext(ctx).Create(project).Error; err != nil {
		return fmt.Errorf("create project: %w", err)
	}
	return nil
}

func (r *projectRepository) GetByID(ctx context.Context, id uint) (*models.Project, error) {
	var project models.Project
	err := r.db.WithContext(ctx).
		Preload("Company").
		First(&project, id).Error
	if err != nil {
		return nil, fmt.Errorf("get project by id: %w", err)
	}
	return &project, nil
}

func (r *projectRepository) List(ctx context.Context, filters repositories.ProjectFilters) ([]*models.Project, error) {
	var projects []*models.Project

	query := r.db.WithContext(ctx).Preload("Company")
	if filters.Status != "" {
		query = query.Where("estado = ?", filters.Status)
	}
	if filters.CompanyID > 0 {
		query = query.Where("id_empresa = ?", filters.CompanyID)
	}

	if err := query.Order("id").Find(&projects).Error; err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	return projects, nil
}

func (r *projectRepository) ListByCompany(ctx context.Context, companyID uint) ([]*models.Project, error) {
	return r.List(ctx, repositories.ProjectFilters{CompanyID: companyID})
}

func (r *projectRepository) Update(ctx context.Context, project *models.Project) error {
	if err := r.db.WithContext(ctx).Save(project).Error; err != nil {
		return fmt.Errorf("update project: %w", err)
	}
	return nil
}

func (r *projectRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.Project{}, id)
	if result.Error != nil {
		return fmt.Errorf("delete project: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("delete project: %w", gorm.ErrRecordNotFound)
	}
	return nil
}
