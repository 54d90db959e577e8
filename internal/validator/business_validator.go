package validator

import (
	"context"

	"github.com/UES-FIA-2024/placement-service/internal/repositories"
)

// EntityKind selects which profile table a phone-uniqueness check runs
// against; phones are unique per table, not globally.
type EntityKind string

const (
	KindCoordinator EntityKind = "coordinador"
	KindCompany     EntityKind = "empresa"
	KindStudent     EntityKind = "estudiante"
)

// BusinessValidator runs the rules that need a round-trip to the
// persistence layer: reference existence and uniqueness. These checks are
// advisory (friendly messages); the database constraints remain the
// source of truth under concurrent requests.
type BusinessValidator struct {
	repo repositories.Repository
}

func NewBusinessValidator(repo repositories.Repository) *BusinessValidator {
	return &BusinessValidator{repo: repo}
}

// CheckCareerExists validates an id_carrera reference.
func (bv *BusinessValidator) CheckCareerExists(ctx context.Context, id uint) (ValidationErrors, error) {
	ok, err := bv.repo.Lookup().CareerExists(ctx, id)
	if err != nil {
		return nil, err
	}
	if !ok {
		return ValidationErrors{{
			Field:   "id_carrera",
			Message: "La carrera seleccionada no existe",
			Value:   id,
			Rule:    "exists",
		}}, nil
	}
	return nil, nil
}

// CheckSectorExists validates an id_sector reference.
func (bv *BusinessValidator) CheckSectorExists(ctx context.Context, id uint) (ValidationErrors, error) {
	ok, err := bv.repo.Lookup().SectorExists(ctx, id)
	if err != nil {
		return nil, err
	}
	if !ok {
		return ValidationErrors{{
			Field:   "id_sector",
			Message: "El sector seleccionado no existe",
			Value:   id,
			Rule:    "exists",
		}}, nil
	}
	return nil, nil
}

// CheckEmailAvailable validates global email uniqueness across accounts.
func (bv *BusinessValidator) CheckEmailAvailable(ctx context.Context, email string) (ValidationErrors, error) {
	taken, err := bv.repo.User().EmailTaken(ctx, email)
	if err != nil {
		return nil, err
	}
	if taken {
		return ValidationErrors{{
			Field:   "email",
			Message: "El correo electrónico ingresado ya está registrado",
			Value:   email,
			Rule:    "unique",
		}}, nil
	}
	return nil, nil
}

// CheckPhoneAvailable validates phone uniqueness within one entity table,
// excluding excludeUserID's own row on updates. This runs against the raw
// submitted phone; the pipeline re-checks after normalization.
func (bv *BusinessValidator) CheckPhoneAvailable(ctx context.Context, kind EntityKind, phone string, excludeUserID uint) (ValidationErrors, error) {
	if phone == "" {
		return nil, nil
	}

	var (
		inUse bool
		err   error
	)
	switch kind {
	case KindCoordinator:
		inUse, err = bv.repo.Coordinator().PhoneInUse(ctx, phone, excludeUserID)
	case KindCompany:
		inUse, err = bv.repo.Company().PhoneInUse(ctx, phone, excludeUserID)
	case KindStudent:
		inUse, err = bv.repo.Student().PhoneInUse(ctx, phone, excludeUserID)
	}
	if err != nil {
		return nil, err
	}
	if inUse {
		return ValidationErrors{{
			Field:   "telefono",
			Message: "El teléfono ingresado ya está registrado",
			Value:   phone,
			Rule:    "unique",
		}}, nil
	}
	return nil, nil
}

// CheckCarnetAvailable validates student carnet uniqueness.
func (bv *BusinessValidator) CheckCarnetAvailable(ctx context.Context, carnet string, excludeUserID uint) (ValidationErrors, error) {
	taken, err := bv.repo.Student().CarnetTaken(ctx, carnet, excludeUserID)
	if err != nil {
		return nil, err
	}
	if taken {
		return ValidationErrors{{
			Field:   "carnet",
			Message: "El carnet ingresado ya está registrado",
			Value:   carnet,
			Rule:    "unique",
		}}, nil
	}
	return nil, nil
}
