package infrastructure

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTServiceRoundTrip(t *testing.T) {
	jwtService := NewJWTService("secret", time.Hour)

	token, err := jwtService.GenerateToken("alice")
	require.NoError(t, err)

	username, err := jwtService.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "alice", username)
}

func TestJWTServiceRejectsWrongSecret(t *testing.T) {
	token, err := NewJWTService("secret", time.Hour).GenerateToken("alice")
	require.NoError(t, err)

	_, err = NewJWTService("other-secret", time.Hour).ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWTServiceRejectsExpiredToken(t *testing.T) {
	jwtService := NewJWTService("secret", -time.Minute)

	token, err := jwtService.GenerateToken("alice")
	require.NoError(t, err)

	_, err = jwtService.ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWTServiceRejectsGarbage(t *testing.T) {
	_, err := NewJWTService("secret", time.Hour).ValidateToken("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
