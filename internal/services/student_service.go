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

// StudentService runs the student pipeline. Coordinators register
// students on their behalf.
type StudentService struct {
	repo      repositories.Repository
	validator *validator.Validator
	business  *validator.BusinessValidator
	passwords *auth.PasswordService
	logger    utils.Logger
}

func NewStudentService(repo repositories.Repository, v *validator.Validator, passwords *auth.PasswordService, logger utils.Logger) *StudentService {
	return &StudentService{
		repo:      repo,
		validator: v,
		business:  validator.NewBusinessValidator(repo),
		passwords: passwords,
		logger:    logger,
	}
}

func (s *StudentService) List(ctx context.Context, actor authz.Actor) ([]*models.Student, error) {
	if !authz.Allow(actor, authz.OpStudentList, 0) {
		return nil, ErrNotAllowed
	}
	students, err := s.repo.Student().List(ctx)
	if err != nil {
		return nil, mapRepoError(err)
	}
	return students, nil
}

func (s *StudentService) Get(ctx context.Context, actor authz.Actor, id uint) (*models.Student, error) {
	student, err := s.repo.Student().GetByID(ctx, id)
	if err != nil {
		return nil, mapRepoError(err)
	}
	if !authz.Allow(actor, authz.OpStudentGet, student.UserID) {
		return nil, ErrNotAllowed
	}
	return student, nil
}

func (s *StudentService) Create(ctx context.Context, actor authz.Actor, req validator.StudentCreateRequest) (*models.Student, error) {
	if !authz.Allow(actor, authz.OpStudentCreate, 0) {
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
			return s.business.CheckCarnetAvailable(ctx, req.Carnet, 0)
		},
		func() (validator.ValidationErrors, error) {
			return s.business.CheckPhoneAvailable(ctx, validator.KindStudent, phone, 0)
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

	student := &models.Student{
		Carnet:     req.Carnet,
		FirstNames: req.FirstNames,
		LastNames:  req.LastNames,
		CareerID:   req.CareerID,
		Phone:      phone,
	}

	err = s.repo.WithTransaction(ctx, func(tx repositories.Repository) error {
		user := &models.User{
			Email:        req.Email,
			PasswordHash: hash,
			RoleID:       models.RoleStudent.ID(),
			Active:       true,
			RegisteredAt: time.Now(),
		}
		if err := tx.User().Create(ctx, user); err != nil {
			return err
		}
		student.UserID = user.ID
		return tx.Student().Create(ctx, student)
	})
	if err != nil {
		return nil, mapRepoError(err)
	}

	s.logger.Info("student created", "student_id", student.ID, "user_id", student.UserID)
	return student, nil
}

func (s *StudentService) Update(ctx context.Context, actor authz.Actor, id uint, req validator.StudentUpdateRequest) (*models.Student, error) {
	student, err := s.repo.Student().GetByID(ctx, id)
	if err != nil {
		return nil, mapRepoError(err)
	}
	if !authz.Allow(actor, authz.OpStudentUpdate, student.UserID) {
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
		errs, err := s.business.CheckPhoneAvailable(ctx, validator.KindStudent, phone, student.UserID)
		if err != nil {
			return nil, err
		}
		all = append(all, errs...)
	}
	if len(all) > 0 {
		return nil, validationFailed(all)
	}

	if req.FirstNames != nil {
		student.FirstNames = *req.FirstNames
	}
	if req.LastNames != nil {
		student.LastNames = *req.LastNames
	}
	if req.CareerID != nil {
		student.CareerID = *req.CareerID
	}
	if req.Phone != nil {
		student.Phone = phone
	}

	err = s.repo.WithTransaction(ctx, func(tx repositories.Repository) error {
		if req.Password != nil {
			hash, err := s.passwords.Hash(*req.Password)
			if err != nil {
				return err
			}
			if err := tx.User().UpdatePassword(ctx, student.UserID, hash); err != nil {
				return err
			}
		}
		return tx.Student().Update(ctx, student)
	})
	if err != nil {
		return nil, mapRepoError(err)
	}
	return student, nil
}

func (s *StudentService) Delete(ctx context.Context, actor authz.Actor, id uint) error {
	student, err := s.repo.Student().GetByID(ctx, id)
	if err != nil {
		return mapRepoError(err)
	}
	if !authz.Allow(actor, authz.OpStudentDelete, student.UserID) {
		return ErrNotAllowed
	}

	if err := s.repo.User().Delete(ctx, student.UserID); err != nil {
		return mapRepoError(err)
	}
	s.logger.Info("student deleted", "student_id", id, "user_id", student.UserID)
	return nil
}
