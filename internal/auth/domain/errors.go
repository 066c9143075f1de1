package domain

import (
	"github.com/allisson/itemsapi/internal/errors"
)

// Client management errors.
var (
	// ErrClientNotFound indicates a client with the specified ID was not found.
	ErrClientNotFound = errors.Wrap(errors.ErrNotFound, "client not found")

	// ErrClientInactive indicates the client exists but has been soft deleted.
	ErrClientInactive = errors.Wrap(errors.ErrInactive, "client is inactive")

	// ErrDuplicateClientID indicates the generated or seeded client_id is already taken.
	ErrDuplicateClientID = errors.Wrap(errors.ErrConflict, "client_id already exists")
)

// Token endpoint errors.
var (
	// ErrInvalidCredentials collapses every token endpoint failure into one externally visible error.
	ErrInvalidCredentials = errors.Wrap(errors.ErrUnauthorized, "invalid client credentials")

	// ErrUnsupportedGrantType is logged internally and surfaced as ErrInvalidCredentials.
	ErrUnsupportedGrantType = errors.Wrap(errors.ErrUnauthorized, "unsupported grant type")
)

// Access guard errors.
var (
	// ErrNotAuthenticated indicates a missing or malformed bearer Authorization header.
	ErrNotAuthenticated = errors.Wrap(errors.ErrUnauthorized, "not authenticated")

	// ErrInvalidToken indicates a token with a bad signature, algorithm or payload.
	ErrInvalidToken = errors.Wrap(errors.ErrUnauthorized, "invalid token")

	// ErrExpiredToken indicates a well-formed token past its expiration.
	ErrExpiredToken = errors.Wrap(errors.ErrUnauthorized, "token has expired")

	// ErrTokenSubjectNotFound indicates the token subject does not match any client.
	ErrTokenSubjectNotFound = errors.Wrap(errors.ErrUnauthorized, "token subject not found")

	// ErrTokenSubjectInactive indicates the token subject has been soft deleted.
	ErrTokenSubjectInactive = errors.Wrap(errors.ErrUnauthorized, "token subject is inactive")

	// ErrAdminRequired indicates an authenticated non-admin client called an admin route.
	ErrAdminRequired = errors.Wrap(errors.ErrForbidden, "admin privileges required")
)
