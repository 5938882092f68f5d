package http

import (
	"github.com/go-playground/validator/v10"
)

// RequestValidator adapts validator/v10 to echo.Validator using the validate tags of the generated models.
type RequestValidator struct {
	validate *validator.Validate
}

func NewRequestValidator() *RequestValidator {
	return &RequestValidator{validate: validator.New(validator.WithRequiredStructEnabled())}
}

func (v *RequestValidator) Validate(i any) error {
	return v.validate.Struct(i)
}
