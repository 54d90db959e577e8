package services

import (
	"context"
	"time"

	"github.com/UES-FIA-2024/placement-service/internal/auth"
	"github.com/UES-FIA-2024/placement-service/internal/authz"
	"github.com/UES-FIA-2024/placement-service/internal/models"
	"github.com/UES-FIA-2024/placement-service/internal/repositories"
	"github.com/UES-FIA-2024/placement-service/internal/storage"
	"github.com/UES-FIA-2024/placement-service/internal/utils"
	"github.com/UES-FIA-2024/placement-service/internal/validator"
)

// CompanyService runs the company pipeline. Registration is open: an
// anonymous caller can create a company account and receives an access
// token so the SPA can sign the fresh account in immediately. Logos
// arrive as base64 data URLs and are persisted through the image
// ingestor.
type CompanyService struct {
	repo      repositories.Repository
	validator *validator.Validator
	business  *validator.BusinessValidator
	passwords *auth.PasswordService
	tokens    *auth.TokenService
	ingestor  *storage.ImageIngestor
	logger    utils.Logger
}

func NewCompanyService(repo repositories.Repository, v *validator.Validator, passwords *auth.PasswordService, tokens *auth.TokenService, ingestor *storage.ImageIngestor, logger utils.Logger) *CompanyService {
	return &CompanyService{
		repo:      repo,
		validator: v,
		business:  validator.NewBusinessValidator(repo),
		passwords: passwords,
		tokens:    tokens,
		ingestor:  ingestor,
		logger:    logger,
	}
}

// CompanyRegistration is the registration response: the new rows plus a
// ready-to-use session token.
type CompanyRegistration struct {
	CompanyID uint            `json:"empresa_id"`
	Company   *models.Company `json:"empresa"`
	User      *models.User    `json:"usuario"`
	Token     string          `json:"token"`
	TokenType string          `json:"token_type"`
	ExpiresAt time.Time       `json:"expires_at"`
}

func (s *CompanyService) List(ctx context.Context, actor authz.Actor) ([]*models.Company, error) {
	if !authz.Allow(actor, authz.OpCompanyList, 0) {
		return nil, ErrNotAllowed
	}
	companies, err := s.repo.Company().List(ctx)
	if err != nil {
		return nil, mapRepoError(err)
	}
	return companies, nil
}

func (s *CompanyService) Get(ctx context.Context, actor authz.Actor, id uint) (*models.Company, error) {
	company, err := s.repo.Company().GetByID(ctx, id)
	if err != nil {
		return nil, mapRepoError(err)
	}
	if !authz.Allow(actor, authz.OpCompanyGet, company.UserID) {
		return nil, ErrNotAllowed
	}
	return company, nil
}

// GetByProject resolves the company that published a project.
func (s *CompanyService) GetByProject(ctx context.Context, actor authz.Actor, projectID uint) (*models.Company, error) {
	project, err := s.repo.Project().GetByID(ctx, projectID)
	if err != nil {
		return nil, mapRepoError(err)
	}
	return s.Get(ctx, actor, project.CompanyID)
}

func (s *CompanyService) Create(ctx context.Context, actor authz.Actor, req validator.CompanyCreateRequest) (*CompanyRegistration, error) {
	if !authz.Allow(actor, authz.OpCompanyCreate, 0) {
		return nil, ErrNotAllowed
	}

	if errs := s.validator.Validate(req); len(errs) > 0 {
		return nil, validationFailed(errs)
	}

	phone := utils.NormalizePhone(req.Phone)

	var all validator.ValidationErrors
	for _, check := range []func() (validator.ValidationErrors, error){
		func() (validator.ValidationErrors, error) {
			return s.business.CheckSectorExists(ctx, req.SectorID)
		},
		func() (validator.ValidationErrors, error) {
			return s.business.CheckEmailAvailable(ctx, req.Email)
		},
		func() (validator.ValidationErrors, error) {
			return s.business.CheckPhoneAvailable(ctx, validator.KindCompany, phone, 0)
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

	logoURL, err := s.ingestor.Ingest(req.LogoURL)
	if err != nil {
		return nil, validationFailed(validator.ValidationErrors{{
			Field:   "logo_url",
			Message: "La imagen del logo no es válida",
			Rule:    "data_url",
		}})
	}

	company := &models.Company{
		SectorID:    req.SectorID,
		Name:        req.Name,
		Address:     req.Address,
		Phone:       phone,
		Website:     req.Website,
		Description: req.Description,
		LogoURL:     logoURL,
	}

	user := &models.User{
		Email:        req.Email,
		PasswordHash: hash,
		RoleID:       models.RoleCompany.ID(),
		Active:       true,
		RegisteredAt: time.Now(),
	}
	err = s.repo.WithTransaction(ctx, func(tx repositories.Repository) error {
		if err := tx.User().Create(ctx, user); err != nil {
			return err
		}
		company.UserID = user.ID
		return tx.Company().Create(ctx, company)
	})
	if err != nil {
		// The stored logo has no owning row anymore.
		s.ingestor.Remove(logoURL)
		return nil, mapRepoError(err)
	}

	token, err := s.tokens.Generate(user)
	if err != nil {
		return nil, err
	}

	s.logger.Info("company registered", "company_id", company.ID, "user_id", company.UserID)
	return &CompanyRegistration{
		CompanyID: company.ID,
		Company:   company,
		User:      user,
		Token:     token,
		TokenType: "Bearer",
		ExpiresAt: time.Now().Add(s.tokens.TTL()),
	}, nil
}

func (s *CompanyService) Update(ctx context.Context, actor authz.Actor, id uint, req validator.CompanyUpdateRequest) (*models.Company, error) {
	company, err := s.repo.Company().GetByID(ctx, id)
	if err != nil {
		return nil, mapRepoError(err)
	}
	if !authz.Allow(actor, authz.OpCompanyUpdate, company.UserID) {
		return nil, ErrNotAllowed
	}

	if errs := s.validator.Validate(req); len(errs) > 0 {
		return nil, validationFailed(errs)
	}

	var all validator.ValidationErrors
	if req.SectorID != nil {
		errs, err := s.business.CheckSectorExists(ctx, *req.SectorID)
		if err != nil {
			return nil, err
		}
		all = append(all, errs...)
	}
	var phone string
	if req.Phone != nil {
		phone = utils.NormalizePhone(*req.Phone)
		errs, err := s.business.CheckPhoneAvailable(ctx, validator.KindCompany, phone, company.UserID)
		if err != nil {
			return nil, err
		}
		all = append(all, errs...)
	}
	if len(all) > 0 {
		return nil, validationFailed(all)
	}

	if req.SectorID != nil {
		company.SectorID = *req.SectorID
	}
	if req.Name != nil {
		company.Name = *req.Name
	}
	if req.Address != nil {
		company.Address = *req.Address
	}
	if req.Phone != nil {
		company.Phone = phone
	}
	if req.Website != nil {
		company.Website = *req.Website
	}
	if req.Description != nil {
		company.Description = *req.Description
	}
	if req.Verified != nil {
		company.Verified = *req.Verified
	}
	if req.LogoURL != nil {
		newURL, err := s.ingestor.Replace(company.LogoURL, *req.LogoURL)
		if err != nil {
			return nil, validationFailed(validator.ValidationErrors{{
				Field:   "logo_url",
				Message: "La imagen del logo no es válida",
				Rule:    "data_url",
			}})
		}
		company.LogoURL = newURL
	}

	if err := s.repo.Company().Update(ctx, company); err != nil {
		return nil, mapRepoError(err)
	}
	return company, nil
}

// Delete removes the company's account; profile and project rows follow
// via the FK cascades. The stored logo goes with them.
func (s *CompanyService) Delete(ctx context.Context, actor authz.Actor, id uint) error {
	company, err := s.repo.Company().GetByID(ctx, id)
	if err != nil {
		return mapRepoError(err)
	}
	if !authz.Allow(actor, authz.OpCompanyDelete, company.UserID) {
		return ErrNotAllowed
	}

	if err := s.repo.User().Delete(ctx, company.UserID); err != nil {
		return mapRepoError(err)
	}
	// The cascade removed the row behind the cache's back.
	s.repo.Company().Evict(ctx, company.ID)
	s.ingestor.Remove(company.LogoURL)

	s.logger.Info("company deleted", "company_id", id, "user_id", company.UserID)
	return nil
}
