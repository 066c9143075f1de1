// Package errors defines the sentinel kinds every layer classifies failures into.
// Use cases wrap a sentinel with context; httputil turns the sentinel into a status code.
package errors

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound means the record does not exist or is not visible to the caller.
	ErrNotFound = errors.New("not found")

	// ErrConflict means a uniqueness constraint would be violated.
	ErrConflict = errors.New("conflict")

	// ErrInvalidInput means a body or path parameter failed validation.
	ErrInvalidInput = errors.New("invalid input")

	// ErrBadRequest means the request is malformed (query parameters, JSON syntax).
	ErrBadRequest = errors.New("bad request")

	// ErrInactive means the record exists but has been soft deleted.
	ErrInactive = errors.New("inactive")

	// ErrUnauthorized means the caller could not be authenticated.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrForbidden means the caller is authenticated but lacks the privilege.
	ErrForbidden = errors.New("forbidden")

	// ErrUnavailable means the database could not be reached in time.
	ErrUnavailable = errors.New("unavailable")
)

// Wrap prefixes err with message, keeping it matchable with Is. A nil err stays nil.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// Is is errors.Is, re-exported so callers need a single errors import.
func Is(err, target error) bool {
	return errors.Is(err, target)
}
