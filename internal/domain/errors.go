package domain

import "errors"

var (
	ErrDuplicateEntry = errors.New("duplicate entry")
	ErrNotFound       = errors.New("not found")
	ErrNoRowsAffected = errors.New("no rows affected")

	// ErrValidation marks input that breaks a field rule, e.g. a missing required field.
	ErrValidation = errors.New("validation error")
	// ErrUnauthorized means the caller could not be identified.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrForbidden means the caller is identified but does not own the record.
	ErrForbidden = errors.New("forbidden")
)
