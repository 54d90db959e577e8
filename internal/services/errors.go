package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/UES-FIA-2024/placement-service/internal/validator"
)

var (
	ErrNotFound           = errors.New("resource not found")
	ErrNotAllowed         = errors.New("operation not allowed")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// ValidationFailedError carries per-field messages back to the handler
// layer, which renders them under the "errors" key.
type ValidationFailedError struct {
	Fields map[string][]string
}

func (e *ValidationFailedError) Error() string {
	return "validation failed"
}

func validationFailed(errs validator.ValidationErrors) error {
	if len(errs) == 0 {
		return nil
	}
	return &ValidationFailedError{Fields: errs.FieldMap()}
}

// mapRepoError translates persistence errors into service sentinels.
// Duplicate-key violations become a validation failure so a race lost
// against the unique index reads the same as a failed pre-check.
func mapRepoError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return &ValidationFailedError{Fields: map[string][]string{
			"general": {"El valor ingresado ya está registrado"},
		}}
	}
	return err
}
