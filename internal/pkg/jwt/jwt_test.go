package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAccessToken(t *testing.T) {
	svc, err := NewJWTService("test-secret-key-for-jwt", "1h")
	require.NoError(t, err)

	token, expiresAt, err := svc.GenerateAccessToken("user-1", "owner@example.com")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.InDelta(t, time.Now().Add(time.Hour).Unix(), expiresAt, 5)

	decoded, err := svc.JWTAuth().Decode(token)
	require.NoError(t, err)

	userID, ok := decoded.Get(ClaimUserID)
	require.True(t, ok)
	assert.Equal(t, "user-1", userID)

	tokenType, ok := decoded.Get(ClaimType)
	require.True(t, ok)
	assert.Equal(t, TokenTypeAccess, tokenType)
}

func TestNewJWTService_InvalidExpiration(t *testing.T) {
	_, err := NewJWTService("secret", "tomorrow")
	assert.Error(t, err)
}

func TestDecode_WrongSecret(t *testing.T) {
	a, err := NewJWTService("secret-a", "1h")
	require.NoError(t, err)
	b, err := NewJWTService("secret-b", "1h")
	require.NoError(t, err)

	token, _, err := a.GenerateAccessToken("user-1", "owner@example.com")
	require.NoError(t, err)

	_, err = b.JWTAuth().Decode(token)
	assert.Error(t, err)
}
