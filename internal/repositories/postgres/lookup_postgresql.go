package postgres

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/UES-FIA-2024/placement-service/internal/cache"
	"github.com/UES-FIA-2024/placement-service/internal/models"
	"github.com/UES-FIA-2024/placement-service/internal/repositories"
)

// lookupRepository serves the seeded reference tables. Reads go through
// the cache first; the tables only change on deploys.
type lookupRepository struct {
	db    *gorm.DB
	cache *cache.CacheHelper
}

func NewLookupPostgreSQL(db *gorm.DB, cacheHelper *cache.CacheHelper) repositories.LookupRepository {
	return &lookupRepository{db: db, cache: cacheHelper}
}

func (r *lookupRepository) Careers(ctx context.Context) ([]*models.Career, error) {
	var cached []*models.Career
	if err := r.cache.Get(ctx, "carreras", &cached); err == nil {
		return cached, nil
	}

	var careers []*models.Career
	if err := r.db.WithContext(ctx).Order("id").Find(&careers).Error; err != nil {
		return nil, fmt.Errorf("list careers: %w", err)
	}

	_ = r.cache.Set(ctx, "carreras", careers, cache.LookupCacheConfig.TTL)
	return careers, nil
}

func (r *lookupRepository) Sectors(ctx context.Context) ([]*models.Sector, error) {
	var cached []*models.Sector
	if err := r.cache.Get(ctx, "sectores", &cached); err == nil {
		return cached, nil
	}

	var sectors []*models.Sector
	if err := r.db.WithContext(ctx).Order("id").Find(&sectors).Error; err != nil {
		return nil, fmt.Errorf("list sectors: %w", err)
	}

	_ = r.cache.Set(ctx, "sectores", sectors, cache.LookupCacheConfig.TTL)
	return sectors, nil
}

func (r *lookupRepository) CareerExists(ctx context.Context, id uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Career{}).
		Where("id = ?", id).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("check career: %w", err)
	}
	return count > 0, nil
}

func (r *lookupRepository) SectorExists(ctx context.Context, id uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Sector{}).
		Where("id = ?", id).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("check sector: %w", err)
	}
	return count > 0, nil
}
