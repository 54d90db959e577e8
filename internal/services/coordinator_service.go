package services

import (
	"context"
	"time"

	"github.com/UES-FIA-2024/placement-service/internal/auth"
	"github.com/UES-FIA-2024/placement-service/internal/authz"
	"github.com/UES-FIA-2024/placement-service/internal/models"
	"github.com/UES-FIA-2024/placement-service/internal/repositories"
	"github.com/UES-FIA-2024/placement-service/internal/utils"
	"github.com/UES-FIA-2024/placement-service/internal/validator"
)

// CoordinatorService runs the coordinator pipeline: authorize, validate,
// normalize, persist account plus profile in one transaction.
type CoordinatorService struct {
	repo      repositories.Repository
	validator *validator.Validator
	business  *validator.BusinessValidator
	passwords *auth.PasswordService
	logger    utils.Logger
}

func NewCoordinatorService(repo repositories.Repository, v *validator.Validator, passwords *auth.PasswordService, logger utils.Logger) *CoordinatorService {
	return &CoordinatorService{
		repo:      repo,
		validator: v,
		business:  validator.NewBusinessValidator(repo),
		passwords: passwords,
		logger:    logger,
	}
}

func (s *CoordinatorService) List(ctx context.Context, actor authz.Actor) ([]*models.Coordinator, error) {
	if !authz.Allow(actor, authz.OpCoordinatorList, 0) {
		return nil, ErrNotAllowed
	}
	coordinators, err := s.repo.Coordinator().List(ctx)
	if err != nil {
		return nil, mapRepoError(err)
	}
	return coordinators, nil
}

func (s *CoordinatorService) Get(ctx context.Context, actor authz.Actor, id uint) (*models.Coordinator, error) {
	if !authz.Allow(actor, authz.OpCoordinatorGet, 0) {
		return nil, ErrNotAllowed
	}
	coordinator, err := s.repo.Coordinator().GetByID(ctx, id)
	if err != nil {
		return nil, mapRepoError(err)
	}
	return coordinator, nil
}

func (s *CoordinatorService) Create(ctx context.Context, actor authz.Actor, req validator.CoordinatorCreateRequest) (*models.Coordinator, error) {
	if !authz.Allow(actor, authz.OpCoordinatorCreate, 0) {
		return nil, ErrNotAllowed
	}

	if errs := s.validator.Validate(req); len(errs) > 0 {
		return nil, validationFailed(errs)
	}

	phone := utils.NormalizePhone(req.Phone)

	var all validator.ValidationErrors
	for _, check := range []func() (validator.ValidationErrors, error){
		func() (validator.ValidationErrors, error) {
			return s.business.CheckCareerExists(ctx, req.CareerID)
		},
		func() (validator.ValidationErrors, error) {
			return s.business.CheckEmailAvailable(ctx, req.Email)
		},
		func() (validator.ValidationErrors, error) {
			return s.business.CheckPhoneAvailable(ctx, validator.KindCoordinator, phone, 0)
		},
	} {
		errs, err := check()
		if err != nil {
			return nil, err
		}
		all = append(all, errs...)
	}
	if len(all) > 0 {
		return nil, validationFailed(all)
	}

	hash, err := s.passwords.Hash(req.Password)
	if err != nil {
		return nil, err
	}

	coordinator := &models.Coordinator{
		FirstNames: req.FirstNames,
		LastNames:  req.LastNames,
		CareerID:   req.CareerID,
		Phone:      phone,
	}

	err = s.repo.WithTransaction(ctx, func(tx repositories.Repository) error {
		user := &models.User{
			Email:        req.Email,
			PasswordHash: hash,
			RoleID:       models.RoleCoordinator.ID(),
			Active:       true,
			RegisteredAt: time.Now(),
		}
		if err := tx.User().Create(ctx, user); err != nil {
			return err
		}
		coordinator.UserID = user.ID
		return tx.Coordinator().Create(ctx, coordinator)
	})
	if err != nil {
		return nil, mapRepoError(err)
	}

	s.logger.Info("coordinator created", "coordinator_id", coordinator.ID, "user_id", coordinator.UserID)
	return coordinator, nil
}

func (s *CoordinatorService) Update(ctx context.Context, actor authz.Actor, id uint, req validator.CoordinatorUpdateRequest) (*models.Coordinator, error) {
	coordinator, err := s.repo.Coordinator().GetByID(ctx, id)
	if err != nil {
		return nil, mapRepoError(err)
	}
	if !authz.Allow(actor, authz.OpCoordinatorUpdate, coordinator.UserID) {
		return nil, ErrNotAllowed
	}

	if errs := s.validator.Validate(req); len(errs) > 0 {
		return nil, validationFailed(errs)
	}

	var all validator.ValidationErrors
	if req.CareerID != nil {
		errs, err := s.business.CheckCareerExists(ctx, *req.CareerID)
		if err != nil {
			return nil, err
		}
		all = append(all, errs...)
	}
	var phone string
	if req.Phone != nil {
		phone = utils.NormalizePhone(*req.Phone)
		errs, err := s.business.CheckPhoneAvailable(ctx, validator.KindCoordinator, phone, coordinator.UserID)
		if err != nil {
			return nil, err
		}
		all = append(all, errs...)
	}
	if len(all) > 0 {
		return nil, validationFailed(all)
	}

	if req.FirstNames != nil {
		coordinator.FirstNames = *req.FirstNames
	}
	if req.LastNames != nil {
		coordinator.LastNames = *req.LastNames
	}
	if req.CareerID != nil {
		coordinator.CareerID = *req.CareerID
	}
	if req.Phone != nil {
		coordinator.Phone = phone
	}

	err = s.repo.WithTransaction(ctx, func(tx repositories.Repository) error {
		if req.Password != nil {
			hash, err := s.passwords.Hash(*req.Password)
			if err != nil {
				return err
			}
			if err := tx.User().UpdatePassword(ctx, coordinator.UserID, hash); err != nil {
				return err
			}
		}
		return tx.Coordinator().Update(ctx, coordinator)
	})
	if err != nil {
		return nil, mapRepoError(err)
	}
	return coordinator, nil
}

// Delete removes the coordinator's account; the profile row follows via
// the FK cascade.
func (s *CoordinatorService) Delete(ctx context.Context, actor authz.Actor, id uint) error {
	coordinator, err := s.repo.Coordinator().GetByID(ctx, id)
	if err != nil {
		return mapRepoError(err)
	}
	if !authz.Allow(actor, authz.OpCoordinatorDelete, coordinator.UserID) {
		return ErrNotAllowed
	}

	if err := s.repo.User().Delete(ctx, coordinator.UserID); err != nil {
		return mapRepoError(err)
	}
	// The cascade removed the row behind the cache's back.
	s.repo.Coordinator().Evict(ctx, coordinator.ID)

	s.logger.Info("coordinator deleted", "coordinator_id", id, "user_id", coordinator.UserID)
	return nil
}
