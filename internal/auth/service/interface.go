// Package service provides technical services for authentication operations.
//
// It covers client credential generation, Argon2id secret hashing and access token
// encoding. Nothing in here touches storage.
package service

import (
	"time"

	authDomain "github.com/allisson/itemsapi/internal/auth/domain"
)

// SecretService defines operations for client credential generation and secret verification.
type SecretService interface {
	// GenerateCredentials creates a new random client_id and client_secret pair.
	// The returned SecretHash is what gets stored; ClientSecret is shown to the caller once.
	GenerateCredentials() (*authDomain.Credentials, error)

	// HashSecret hashes a plain text secret. Two calls with the same input return different hashes.
	HashSecret(plainSecret string) (string, error)

	// CompareSecret reports whether plainSecret matches hashedSecret.
	// Malformed hashes yield false, never an error.
	CompareSecret(plainSecret string, hashedSecret string) bool
}

// TokenCodec mints and decodes signed access tokens.
type TokenCodec interface {
	// Mint signs a token for subject valid for ttl and returns it with its expiration instant.
	Mint(subject string, ttl time.Duration) (token string, expiresAt time.Time, err error)

	// Decode verifies the token signature and expiration and returns its claims.
	// Expired tokens yield ErrExpiredToken; every other failure yields ErrInvalidToken.
	Decode(token string) (*authDomain.TokenClaims, error)
}
