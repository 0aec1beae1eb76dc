package server

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenService_RoundTrip(t *testing.T) {
	svc := NewTokenService("test-secret")

	token, err := svc.GenerateToken("reporting-service")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "reporting-service", claims.GetClient())
}

func TestTokenService_RejectsWrongSecret(t *testing.T) {
	token, err := NewTokenService("secret-a").GenerateToken("client")
	require.NoError(t, err)

	_, err = NewTokenService("secret-b").ValidateToken(token)
	assert.Error(t, err)
}

func TestTokenService_RejectsEmptyAndGarbage(t *testing.T) {
	svc := NewTokenService("test-secret")

	_, err := svc.ValidateToken("")
	assert.Error(t, err)

	_, err = svc.ValidateToken("not.a.jwt")
	assert.Error(t, err)
}
