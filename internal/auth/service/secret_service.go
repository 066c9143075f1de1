package service

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"

	"github.com/allisson/go-pwdhash"

	authDomain "github.com/allisson/itemsapi/internal/auth/domain"
	apperrors "github.com/allisson/itemsapi/internal/errors"
)

const (
	clientIDBytes     = 16
	clientSecretBytes = 32
)

// secretService implements SecretService using Argon2id for secret hashing.
type secretService struct {
	hasher *pwdhash.PasswordHasher
}

// GenerateCredentials creates a 16-byte client_id and a 32-byte client_secret,
// both base64 URL-encoded without padding, and hashes the secret.
func (s *secretService) GenerateCredentials() (*authDomain.Credentials, error) {
	clientID, err := randomToken(clientIDBytes)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to generate client id")
	}

	clientSecret, err := randomToken(clientSecretBytes)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to generate client secret")
	}

	secretHash, err := s.HashSecret(clientSecret)
	if err != nil {
		return nil, err
	}

	return &authDomain.Credentials{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		SecretHash:   secretHash,
	}, nil
}

// HashSecret hashes a plain text secret using Argon2id.
func (s *secretService) HashSecret(plainSecret string) (string, error) {
	hashedSecret, err := s.hasher.Hash([]byte(plainSecret))
	if err != nil {
		return "", apperrors.Wrap(err, "failed to hash secret")
	}
	return hashedSecret, nil
}

// CompareSecret performs a constant-time comparison between a plain secret and its hash.
func (s *secretService) CompareSecret(plainSecret string, hashedSecret string) bool {
	ok, err := s.hasher.Verify([]byte(plainSecret), hashedSecret)
	if err != nil {
		return false
	}
	return ok
}

func randomToken(size int) (string, error) {
	b := make([]byte, size)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}

// NewSecretService creates a SecretService using the named Argon2id policy
// ("interactive" or "moderate").
func NewSecretService(policy string) (SecretService, error) {
	var (
		hasher *pwdhash.PasswordHasher
		err    error
	)
	switch policy {
	case "interactive":
		hasher, err = pwdhash.New(pwdhash.WithPolicy(pwdhash.PolicyInteractive))
	case "moderate", "":
		hasher, err = pwdhash.New(pwdhash.WithPolicy(pwdhash.PolicyModerate))
	default:
		return nil, fmt.Errorf("unsupported secret hash policy %q (valid options: interactive, moderate)", policy)
	}
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to create secret hasher")
	}

	return &secretService{hasher: hasher}, nil
}
