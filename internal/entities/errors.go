// Package entities contains core business entities and errors.
package entities

import (
	"errors"
	"fmt"
)

// Error kinds returned by the usecase layer. The HTTP layer maps each kind to a status code.
var (
	// ErrValidation signals bad or duplicate input.
	ErrValidation = errors.New("validation failed")
	// ErrNotFound signals a missing resource.
	ErrNotFound = errors.New("resource not found")
	// ErrUnauthorized signals that the caller may not perform the operation.
	ErrUnauthorized = errors.New("unauthorized")
)

// Repository sentinels.
var (
	// ErrUserNotFound is returned when a user does not exist.
	ErrUserNotFound = errors.New("user not found")
	// ErrProjectNotFound is returned when a project does not exist.
	ErrProjectNotFound = errors.New("project not found")
	// ErrMemberNotFound is returned when a project member row does not exist.
	ErrMemberNotFound = errors.New("member not found")
	// ErrMemberExists signals a (project, user) uniqueness conflict.
	ErrMemberExists = errors.New("member exists")
	// ErrTaskNotFound is returned when a task does not exist.
	ErrTaskNotFound = errors.New("task not found")
)

// Error carries a user-facing message together with its kind.
type Error struct {
	Kind    error
	Message string
}

func (e *Error) Error() string { return e.Message }

// Unwrap exposes the kind to errors.Is.
func (e *Error) Unwrap() error { return e.Kind }

// Validationf builds an ErrValidation error.
func Validationf(format string, args ...any) error {
	return &Error{Kind: ErrValidation, Message: fmt.Sprintf(format, args...)}
}

// NotFoundf builds an ErrNotFound error.
func NotFoundf(format string, args ...any) error {
	return &Error{Kind: ErrNotFound, Message: fmt.Sprintf(format, args...)}
}

// Unauthorizedf builds an ErrUnauthorized error.
func Unauthorizedf(format string, args ...any) error {
	return &Error{Kind: ErrUnauthorized, Message: fmt.Sprintf(format, args...)}
}
