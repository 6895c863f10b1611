package services

import (
	"errors"
	"fmt"
)

// ErrNotFound covers both "row absent" and "row owned by someone else";
// callers never learn which, so foreign rows stay invisible.
var ErrNotFound = errors.New("not found")

// ValidationError is malformed or missing input. Always recoverable and
// always raised before any write happens.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func validationErrorf(format string, args ...interface{}) error {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// ConflictError is a uniqueness violation (duplicate email or username).
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string {
	return e.Message
}
