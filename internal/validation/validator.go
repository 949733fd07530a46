package validation

import (
	validatorv10 "github.com/go-playground/validator/v10"
)

// New returns a configured validator for the request payloads
func New() *validatorv10.Validate {
	return validatorv10.New(validatorv10.WithRequiredStructEnabled())
}
