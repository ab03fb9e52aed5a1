// Package validator adapts go-playground/validator to echo's Validator interface.
package validator

import (
	domainerrors "moodify/internal/domain/errors"

	"github.com/go-playground/validator/v10"
)

// CustomValidator runs struct tag validation for bound request bodies.
type CustomValidator struct {
	validate *validator.Validate
}

// New creates a validator that reports failures as invalid input.
func New() *CustomValidator {
	return &CustomValidator{
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// Validate implements echo.Validator.
func (cv *CustomValidator) Validate(i any) error {
	if err := cv.validate.Struct(i); err != nil {
		return domainerrors.ErrInvalidInput.WithCause(err)
	}

	return nil
}
