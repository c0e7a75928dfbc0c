package jwt

import (
	"errors"
	"testing"
	"time"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTService_GenerateAndValidate(t *testing.T) {
	svc := NewJWTService("test-secret", 15*time.Minute, 7*24*time.Hour)
	userID := uuid.New()

	pair, err := svc.GenerateTokenPair(userID, "ada@example.com", "INVESTOR")
	require.NoError(t, err)
	require.NotEmpty(t, pair.AccessToken)
	require.NotEmpty(t, pair.RefreshToken)

	claims, err := svc.ValidateToken(pair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "ada@example.com", claims.Email)
	assert.Equal(t, "INVESTOR", claims.Role)
}

func TestJWTService_ExpiredToken(t *testing.T) {
	svc := NewJWTService("test-secret", -time.Minute, -time.Minute)

	pair, err := svc.GenerateTokenPair(uuid.New(), "ada@example.com", "ADMIN")
	require.NoError(t, err)

	_, err = svc.ValidateToken(pair.AccessToken)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestJWTService_WrongSecretAndGarbage(t *testing.T) {
	svc := NewJWTService("test-secret", 15*time.Minute, time.Hour)
	other := NewJWTService("other-secret", 15*time.Minute, time.Hour)

	pair, err := svc.GenerateTokenPair(uuid.New(), "ada@example.com", "BUSINESS")
	require.NoError(t, err)

	_, err = other.ValidateToken(pair.AccessToken)
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = svc.ValidateToken("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWTService_SignError(t *testing.T) {
	orig := signJWTToken
	defer func() { signJWTToken = orig }()
	signJWTToken = func(*gojwt.Token, []byte) (string, error) {
		return "", errors.New("sign failed")
	}

	svc := NewJWTService("test-secret", 15*time.Minute, time.Hour)
	_, err := svc.GenerateTokenPair(uuid.New(), "a@b.c", "ADMIN")
	require.Error(t, err)
}
