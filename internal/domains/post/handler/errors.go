package handler

import (
	"errors"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// isValidationError reports whether err came from request validation,
// which maps to a 400 rather than a 500.
func isValidationError(err error) bool {
	var ve validation.Errors
	if errors.As(err, &ve) {
		return true
	}
	var eo validation.ErrorObject
	return errors.As(err, &eo)
}
