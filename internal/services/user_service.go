package services

import (
	"context"

	"github.com/UES-FIA-2024/placement-service/internal/authz"
	"github.com/UES-FIA-2024/placement-service/internal/models"
	"github.com/UES-FIA-2024/placement-service/internal/repositories"
	"github.com/UES-FIA-2024/placement-service/internal/utils"
)

// UserService exposes the account listing for administrators.
type UserService struct {
	repo   repositories.Repository
	logger utils.Logger
}

func NewUserService(repo repositories.Repository, logger utils.Logger) *UserService {
	return &UserService{repo: repo, logger: logger}
}

func (s *UserService) List(ctx context.Context, actor authz.Actor, filters repositories.UserFilters) ([]*models.User, int64, error) {
	if !authz.Allow(actor, authz.OpUserList, 0) {
		return nil, 0, ErrNotAllowed
	}
	users, total, err := s.repo.User().List(ctx, filters)
	if err != nil {
		return nil, 0, mapRepoError(err)
	}
	return users, total, nil
}
