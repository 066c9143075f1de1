package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	authDomain "github.com/allisson/itemsapi/internal/auth/domain"
)

// jwtTokenCodec implements TokenCodec with HMAC signed JWTs carrying only sub and exp.
type jwtTokenCodec struct {
	secret []byte
	method jwt.SigningMethod
	now    func() time.Time
}

// Mint signs a token for subject. The expiration is truncated to whole seconds,
// matching what Decode will report.
func (c *jwtTokenCodec) Mint(subject string, ttl time.Duration) (string, time.Time, error) {
	expiresAt := c.now().UTC().Add(ttl).Truncate(time.Second)

	claims := jwt.RegisteredClaims{
		Subject:   subject,
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	}

	signed, err := jwt.NewWithClaims(c.method, claims).SignedString(c.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign token: %w", err)
	}

	return signed, expiresAt, nil
}

// Decode verifies the signature with the configured algorithm only and requires exp.
func (c *jwtTokenCodec) Decode(token string) (*authDomain.TokenClaims, error) {
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{c.method.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(c.now),
	)

	claims := &jwt.RegisteredClaims{}
	parsed, err := parser.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		return c.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, authDomain.ErrExpiredToken
		}
		return nil, authDomain.ErrInvalidToken
	}
	if !parsed.Valid || claims.ExpiresAt == nil {
		return nil, authDomain.ErrInvalidToken
	}

	return &authDomain.TokenClaims{
		Subject:   claims.Subject,
		ExpiresAt: claims.ExpiresAt.UTC(),
	}, nil
}

// NewTokenCodec creates a TokenCodec signing with secret using the HMAC algorithm
// named by algorithm (HS256, HS384 or HS512).
func NewTokenCodec(secret string, algorithm string) (TokenCodec, error) {
	if secret == "" {
		return nil, errors.New("token signing secret is required")
	}

	var method jwt.SigningMethod
	switch strings.ToUpper(algorithm) {
	case "HS256", "":
		method = jwt.SigningMethodHS256
	case "HS384":
		method = jwt.SigningMethodHS384
	case "HS512":
		method = jwt.SigningMethodHS512
	default:
		return nil, fmt.Errorf("unsupported token algorithm %q (valid options: HS256, HS384, HS512)", algorithm)
	}

	return &jwtTokenCodec{
		secret: []byte(secret),
		method: method,
		now:    time.Now,
	}, nil
}
