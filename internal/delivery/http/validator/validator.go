// Package validator adapts go-playground/validator to Echo's Validator
// interface.
package validator

import (
	domainerrors "loja/internal/domain/errors"

	"github.com/go-playground/validator/v10"
)

type echoValidator struct {
	validate *validator.Validate
}

// New creates the request validator used by the HTTP servers.
func New() *echoValidator {
	return &echoValidator{validate: validator.New()}
}

// Validate runs the struct tags of i and maps failures to the shared
// validation error.
func (v *echoValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	return nil
}
