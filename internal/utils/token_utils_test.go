package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndParseJWT(t *testing.T) {
	now := time.Now()
	token, expiresAt, err := GenerateJWT("user-1", "secret", now, time.Hour, "library")
	require.NoError(t, err)
	assert.WithinDuration(t, now.Add(time.Hour), expiresAt, time.Second)

	claims, err := ParseAndValidateJWT(token, "secret")
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.Subject)
	assert.Equal(t, "library", claims.Issuer)
}

func TestParseAndValidateJWT_Rejects(t *testing.T) {
	token, _, err := GenerateJWT("user-1", "secret", time.Now(), time.Hour, "library")
	require.NoError(t, err)

	_, err = ParseAndValidateJWT(token, "other-secret")
	assert.ErrorIs(t, err, jwt.ErrTokenSignatureInvalid)

	expired, _, err := GenerateJWT("user-1", "secret", time.Now().Add(-2*time.Hour), time.Hour, "library")
	require.NoError(t, err)
	_, err = ParseAndValidateJWT(expired, "secret")
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestPasswordHash(t *testing.T) {
	hash, err := HashPassword("correct horse")
	require.NoError(t, err)
	assert.True(t, CheckPasswordHash("correct horse", hash))
	assert.False(t, CheckPasswordHash("wrong", hash))
}
