// Package validator wires go-playground/validator into Echo's
// request-validation hook.
package validator

import (
	playground "github.com/go-playground/validator/v10"
)

type requestValidator struct {
	validate *playground.Validate
}

// New creates an echo.Validator backed by struct-tag validation.
func New() *requestValidator {
	return &requestValidator{validate: playground.New()}
}

// Validate checks the bound request struct against its validate tags.
func (v *requestValidator) Validate(i any) error {
	return v.validate.Struct(i)
}
