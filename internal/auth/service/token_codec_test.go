package service

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	authDomain "github.com/allisson/itemsapi/internal/auth/domain"
)

func newTestCodec(t *testing.T, secret, algorithm string, now time.Time) *jwtTokenCodec {
	t.Helper()
	codec, err := NewTokenCodec(secret, algorithm)
	require.NoError(t, err)
	c := codec.(*jwtTokenCodec)
	c.now = func() time.Time { return now }
	return c
}

func TestNewTokenCodec(t *testing.T) {
	t.Run("Success_HMACAlgorithms", func(t *testing.T) {
		for _, alg := range []string{"HS256", "HS384", "HS512", "hs256", ""} {
			codec, err := NewTokenCodec("secret", alg)
			require.NoError(t, err, alg)
			assert.NotNil(t, codec)
		}
	})

	t.Run("Error_EmptySecret", func(t *testing.T) {
		_, err := NewTokenCodec("", "HS256")
		assert.Error(t, err)
	})

	t.Run("Error_UnsupportedAlgorithm", func(t *testing.T) {
		_, err := NewTokenCodec("secret", "RS256")
		assert.ErrorContains(t, err, "RS256")
	})
}

func TestTokenCodec_RoundTrip(t *testing.T) {
	now := time.Date(2026, 1, 10, 12, 0, 0, 500, time.UTC)
	codec := newTestCodec(t, "signing-key", "HS256", now)

	token, expiresAt, err := codec.Mint("client-abc", 30*time.Minute)
	require.NoError(t, err)
	assert.Equal(t, now.Add(30*time.Minute).Truncate(time.Second), expiresAt)

	claims, err := codec.Decode(token)
	require.NoError(t, err)
	assert.Equal(t, "client-abc", claims.Subject)
	assert.True(t, expiresAt.Equal(claims.ExpiresAt))
}

func TestTokenCodec_Decode(t *testing.T) {
	now := time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC)

	t.Run("Error_Expired", func(t *testing.T) {
		minter := newTestCodec(t, "signing-key", "HS256", now)
		token, _, err := minter.Mint("client-abc", time.Minute)
		require.NoError(t, err)

		decoder := newTestCodec(t, "signing-key", "HS256", now.Add(2*time.Minute))
		_, err = decoder.Decode(token)
		assert.ErrorIs(t, err, authDomain.ErrExpiredToken)
	})

	t.Run("Error_ExpiredAtExactInstant", func(t *testing.T) {
		minter := newTestCodec(t, "signing-key", "HS256", now)
		token, _, err := minter.Mint("client-abc", time.Minute)
		require.NoError(t, err)

		decoder := newTestCodec(t, "signing-key", "HS256", now.Add(time.Minute))
		_, err = decoder.Decode(token)
		assert.ErrorIs(t, err, authDomain.ErrExpiredToken)
	})

	t.Run("Error_WrongSecret", func(t *testing.T) {
		minter := newTestCodec(t, "other-key", "HS256", now)
		token, _, err := minter.Mint("client-abc", time.Minute)
		require.NoError(t, err)

		decoder := newTestCodec(t, "signing-key", "HS256", now)
		_, err = decoder.Decode(token)
		assert.ErrorIs(t, err, authDomain.ErrInvalidToken)
	})

	t.Run("Error_WrongSecretAndExpired", func(t *testing.T) {
		minter := newTestCodec(t, "other-key", "HS256", now)
		token, _, err := minter.Mint("client-abc", time.Minute)
		require.NoError(t, err)

		decoder := newTestCodec(t, "signing-key", "HS256", now.Add(time.Hour))
		_, err = decoder.Decode(token)
		assert.ErrorIs(t, err, authDomain.ErrInvalidToken)
	})

	t.Run("Error_DifferentAlgorithm", func(t *testing.T) {
		minter := newTestCodec(t, "signing-key", "HS512", now)
		token, _, err := minter.Mint("client-abc", time.Minute)
		require.NoError(t, err)

		decoder := newTestCodec(t, "signing-key", "HS256", now)
		_, err = decoder.Decode(token)
		assert.ErrorIs(t, err, authDomain.ErrInvalidToken)
	})

	t.Run("Error_NoneAlgorithm", func(t *testing.T) {
		claims := jwt.RegisteredClaims{
			Subject:   "client-abc",
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Minute)),
		}
		token, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)

		decoder := newTestCodec(t, "signing-key", "HS256", now)
		_, err = decoder.Decode(token)
		assert.ErrorIs(t, err, authDomain.ErrInvalidToken)
	})

	t.Run("Error_MissingExpiration", func(t *testing.T) {
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{Subject: "client-abc"}).
			SignedString([]byte("signing-key"))
		require.NoError(t, err)

		decoder := newTestCodec(t, "signing-key", "HS256", now)
		_, err = decoder.Decode(token)
		assert.ErrorIs(t, err, authDomain.ErrInvalidToken)
	})

	t.Run("Error_Tampered", func(t *testing.T) {
		codec := newTestCodec(t, "signing-key", "HS256", now)
		token, _, err := codec.Mint("client-abc", time.Minute)
		require.NoError(t, err)

		parts := strings.Split(token, ".")
		require.Len(t, parts, 3)
		other, _, err := codec.Mint("client-xyz", time.Minute)
		require.NoError(t, err)
		parts[1] = strings.Split(other, ".")[1]

		_, err = codec.Decode(strings.Join(parts, "."))
		assert.ErrorIs(t, err, authDomain.ErrInvalidToken)
	})

	t.Run("Error_Garbage", func(t *testing.T) {
		codec := newTestCodec(t, "signing-key", "HS256", now)
		for _, token := range []string{"", "abc", "a.b.c"} {
			_, err := codec.Decode(token)
			assert.ErrorIs(t, err, authDomain.ErrInvalidToken, token)
		}
	})
}
