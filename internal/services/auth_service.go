package services

import (
	"context"
	"errors"

	"github.com/UES-FIA-2024/placement-service/internal/auth"
	"github.com/UES-FIA-2024/placement-service/internal/authz"
	"github.com/UES-FIA-2024/placement-service/internal/models"
	"github.com/UES-FIA-2024/placement-service/internal/repositories"
	"github.com/UES-FIA-2024/placement-service/internal/utils"
	"github.com/UES-FIA-2024/placement-service/internal/validator"
)

// LoginResult carries the issued token together with the account it
// belongs to.
type LoginResult struct {
	Token string       `json:"token"`
	User  *models.User `json:"usuario"`
}

// Profile bundles an account with its role-specific entity row.
type Profile struct {
	User        *models.User        `json:"usuario"`
	Coordinator *models.Coordinator `json:"coordinador,omitempty"`
	Company     *models.Company     `json:"empresa,omitempty"`
	Student     *models.Student     `json:"estudiante,omitempty"`
}

// AuthService authenticates accounts and resolves the caller's profile.
type AuthService struct {
	repo      repositories.Repository
	validator *validator.Validator
	passwords *auth.PasswordService
	tokens    *auth.TokenService
	logger    utils.Logger
}

func NewAuthService(repo repositories.Repository, v *validator.Validator, passwords *auth.PasswordService, tokens *auth.TokenService, logger utils.Logger) *AuthService {
	return &AuthService{
		repo:      repo,
		validator: v,
		passwords: passwords,
		tokens:    tokens,
		logger:    logger,
	}
}

// Login checks credentials and issues an access token. Unknown emails,
// wrong passwords and disabled accounts all fail the same way.
func (s *AuthService) Login(ctx context.Context, req validator.LoginRequest) (*LoginResult, error) {
	if errs := s.validator.Validate(req); len(errs) > 0 {
		return nil, validationFailed(errs)
	}

	user, err := s.repo.User().GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(mapRepoError(err), ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if !user.Active || !s.passwords.Compare(user.PasswordHash, req.Password) {
		return nil, ErrInvalidCredentials
	}

	token, err := s.tokens.Generate(user)
	if err != nil {
		return nil, err
	}

	s.logger.Info("login", "user_id", user.ID, "role", user.Role())
	return &LoginResult{Token: token, User: user}, nil
}

// Me resolves the calling account and its entity row.
func (s *AuthService) Me(ctx context.Context, actor authz.Actor) (*Profile, error) {
	if actor.UserID == 0 {
		return nil, ErrNotAllowed
	}

	user, err := s.repo.User().GetByID(ctx, actor.UserID)
	if err != nil {
		return nil, mapRepoError(err)
	}

	profile := &Profile{User: user}
	switch user.Role() {
	case models.RoleCoordinator:
		profile.Coordinator, err = s.repo.Coordinator().GetByUserID(ctx, user.ID)
	case models.RoleCompany:
		profile.Company, err = s.repo.Company().GetByUserID(ctx, user.ID)
	case models.RoleStudent:
		profile.Student, err = s.repo.Student().GetByUserID(ctx, user.ID)
	}
	if err != nil && !errors.Is(mapRepoError(err), ErrNotFound) {
		return nil, err
	}
	return profile, nil
}
