package postgres

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/UES-FIA-2024/placement-service/internal/cache"
	"github.com/UES-FIA-2024/placement-service/internal/models"
	"github.com/UES-FIA-2024/placement-service/internal/repositories"
)

type coordinatorRepository struct {
	db    *gorm.DB
	cache *cache.CacheHelper
}

func NewCoordinatorPostgreSQL(db *gorm.DB, cacheHelper *cache.CacheHelper) repositories.CoordinatorRepository {
	return &coordinatorRepository{db: db, cache: cacheHelper}
}

func (r *coordinatorRepository) Create(ctx context.Context, coordinator *models.Coordinator) error {
	if err := r.db.WithContext(ctx).Create(coordinator).Error; err != nil {
		return fmt.Errorf("create coordinator: %w", err)
	}
	cache.SafeInvalidatePattern(ctx, r.cache, "*")
	return nil
}

func (r *coordinatorRepository) GetByID(ctx context.Context, id uint) (*models.Coordinator, error) {
	cacheKey := fmt.Sprintf("id:%d", id)

	var cached models.Coordinator
	if err := r.cache.Get(ctx, cacheKey, &cached); err == nil {
		return &cached, nil
	}

	var coordinator models.Coordinator
	err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Career").
		First(&coordinator, id).Error
	if err != nil {
		return nil, fmt.Errorf("get coordinator by id: %w", err)
	}

	// Cache write failures are non-fatal.
	_ = r.cache.Set(ctx, cacheKey, &coordinator, cache.CoordinatorCacheConfig.TTL)
	return &coordinator, nil
}

func (r *coordinatorRepository) GetByUserID(ctx context.Context, userID uint) (*models.Coordinator, error) {
	var coordinator models.Coordinator
	err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Career").
		Where("id_usuario = ?", userID).
		First(&coordinator).Error
	if err != nil {
		return nil, fmt.Errorf("get coordinator by user id: %w", err)
	}
	return &coordinator, nil
}

func (r *coordinatorRepository) List(ctx context.Context) ([]*models.Coordinator, error) {
	var coordinators []*models.Coordinator
	err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Career").
		Order("id").
		Find(&coordinators).Error
	if err != nil {
		return nil, fmt.Errorf("list coordinators: %w", err)
	}
	return coordinators, nil
}

func (r *coordinatorRepository) Update(ctx context.Context, coordinator *models.Coordinator) error {
	if err := r.db.WithContext(ctx).Save(coordinator).Error; err != nil {
		return fmt.Errorf("update coordinator: %w", err)
	}
	cache.SafeDelete(ctx, r.cache, fmt.Sprintf("id:%d", coordinator.ID))
	return nil
}

func (r *coordinatorRepository) Evict(ctx context.Context, id uint) {
	cache.SafeDelete(ctx, r.cache, fmt.Sprintf("id:%d", id))
}

func (r *coordinatorRepository) PhoneInUse(ctx context.Context, phone string, excludeUserID uint) (bool, error) {
	var count int64
	query := r.db.WithContext(ctx).
		Model(&models.Coordinator{}).
		Where("telefono = ?", phone)
	if excludeUserID > 0 {
		query = query.Where("id_usuario <> ?", excludeUserID)
	}
	if err := query.Count(&count).Error; err != nil {
		return false, fmt.Errorf("check coordinator phone: %w", err)
	}
	return count > 0, nil
}
