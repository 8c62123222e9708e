package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrInvalidInput indicates that the raw amount text could not be used for a conversion.
// It wraps ErrValidation so callers matching on either sentinel see it.
var ErrInvalidInput = fmt.Errorf("invalid input: %w", ErrValidation)
