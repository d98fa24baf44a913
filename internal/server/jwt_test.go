package server

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/careergpt/internal/config"
)

func newTestJWTService() *JWTService {
	return NewJWTService(&config.JWTConfig{
		Secret:          "test-secret-key",
		ExpirationHours: 1,
	})
}

func TestJWTService_RoundTrip(t *testing.T) {
	svc := newTestJWTService()

	token, err := svc.GenerateToken("user-42")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-42", claims.GetUserID())
}

func TestJWTService_EmptyToken(t *testing.T) {
	svc := newTestJWTService()

	_, err := svc.ValidateToken("")
	assert.Error(t, err)
}

func TestJWTService_MalformedToken(t *testing.T) {
	svc := newTestJWTService()

	_, err := svc.ValidateToken("not.a.token")
	assert.Error(t, err)
}

func TestJWTService_WrongSecret(t *testing.T) {
	svc := newTestJWTService()
	token, err := svc.GenerateToken("user-42")
	require.NoError(t, err)

	other := NewJWTService(&config.JWTConfig{Secret: "different-secret", ExpirationHours: 1})
	_, err = other.ValidateToken(token)
	assert.Error(t, err)
}

func TestJWTService_NilConfigDisablesAuth(t *testing.T) {
	svc := NewJWTService(nil)
	assert.Nil(t, svc)
	assert.Nil(t, svc.AsTokenValidator())
}
