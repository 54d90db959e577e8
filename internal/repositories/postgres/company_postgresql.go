package postgres

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/UES-FIA-2024/placement-service/internal/cache"
	"github.com/UES-FIA-2024/placement-service/internal/models"
	"github.com/UES-FIA-2024/placement-service/internal/repositories"
)

type companyRepository struct {
	db    *gorm.DB
	cache *cache.CacheHelper
}

func NewCompanyPostgreSQL(db *gorm.DB, cacheHelper *cache.CacheHelper) repositories.CompanyRepository {
	return &companyRepository{db: db, cache: cacheHelper}
}

func (r *companyRepository) Create(ctx context.Context, company *models.Company) error {
	if err := r.db.WithContext(ctx).Create(company).Error; err != nil {
		return fmt.Errorf("create company: %w", err)
	}
	cache.SafeInvalidatePattern(ctx, r.cache, "*")
	return nil
}

func (r *companyRepository) GetByID(ctx context.Context, id uint) (*models.Company, error) {
	cacheKey := fmt.Sprintf("id:%d", id)

	var cached models.Company
	if err := r.cache.Get(ctx, cacheKey, &cached); err == nil {
		return &cached, nil
	}

	var company models.Company
	err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Sector").
		First(&company, id).Error
	if err != nil {
		return nil, fmt.Errorf("get company by id: %w", err)
	}

	_ = r.cache.Set(ctx, cacheKey, &company, cache.CompanyCacheConfig.TTL)
	return &company, nil
}

func (r *companyRepository) GetByUserID(ctx context.Context, userID uint) (*models.Company, error) {
	var company models.Company
	err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Sector").
		Where("id_usuario = ?", userID).
		First(&company).Error
	if err != nil {
		return nil, fmt.Errorf("get company by user id: %w", err)
	}
	return &company, nil
}

func (r *companyRepository) List(ctx context.Context) ([]*models.Company, error) {
	var companies []*models.Company
	err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Sector").
		Order("id").
		Find(&companies).Error
	if err != nil {
		return nil, fmt.Errorf("list companies: %w", err)
	}
	return companies, nil
}

func (r *companyRepository) Update(ctx context.Context, company *models.Company) error {
	if err := r.db.WithContext(ctx).Save(company).Error; err != nil {
		return fmt.Errorf("update company: %w", err)
	}
	cache.SafeDelete(ctx, r.cache, fmt.Sprintf("id:%d", company.ID))
	return nil
}

func (r *companyRepository) Evict(ctx context.Context, id uint) {
	cache.SafeDelete(ctx, r.cache, fmt.Sprintf("id:%d", id))
}

func (r *companyRepository) PhoneInUse(ctx context.Context, phone string, excludeUserID uint) (bool, error) {
	var count int64
	query := r.db.WithContext(ctx).
		Model(&models.Company{}).
		Where("telefono = ?", phone)
	if excludeUserID > 0 {
		query = query.Where("id_usuario <> ?", excludeUserID)
	}
	if err := query.Count(&count).Error; err != nil {
		return false, fmt.Errorf("check company phone: %w", err)
	}
	return count > 0, nil
}
