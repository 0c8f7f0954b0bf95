package services

import (
	"errors"
	"fmt"
)

// Every service operation returns either a value, or an error matching
// exactly one of these sentinels under errors.Is.
var (
	ErrValidation = errors.New("validation failed")
	ErrNotFound   = errors.New("not found")
	ErrStorage    = errors.New("storage failure")
)

// ValidationError carries the client-facing message of a rejected field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func (e *ValidationError) Unwrap() error { return ErrValidation }

func storageError(err error) error {
	return fmt.Errorf("%w: %w", ErrStorage, err)
}
