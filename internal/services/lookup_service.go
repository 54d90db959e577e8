package services

import (
	"context"

	"github.com/UES-FIA-2024/placement-service/internal/models"
	"github.com/UES-FIA-2024/placement-service/internal/repositories"
)

// LookupService serves the reference tables behind the registration
// forms. Open to any caller; the data is public.
type LookupService struct {
	repo repositories.Repository
}

func NewLookupService(repo repositories.Repository) *LookupService {
	return &LookupService{repo: repo}
}

func (s *LookupService) Careers(ctx context.Context) ([]*models.Career, error) {
	careers, err := s.repo.Lookup().Careers(ctx)
	if err != nil {
		return nil, mapRepoError(err)
	}
	return careers, nil
}

func (s *LookupService) Sectors(ctx context.Context) ([]*models.Sector, error) {
	sectors, err := s.repo.Lookup().Sectors(ctx)
	if err != nil {
		return nil, mapRepoError(err)
	}
	return sectors, nil
}
