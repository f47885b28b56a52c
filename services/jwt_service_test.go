package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"visitor-http-service/config"
)

func TestGenerateAndValidateToken(t *testing.T) {
	svc := NewJWTService(&config.Config{JWTSecretKey: "test-secret-key"})

	tokenString, err := svc.GenerateToken(42, "frontdesk", "user")
	require.NoError(t, err)
	require.NotEmpty(t, tokenString)

	token, err := svc.ValidateToken(tokenString)
	require.NoError(t, err)
	assert.True(t, token.Valid)

	claims, err := svc.ExtractClaims(tokenString)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, "frontdesk", claims.Username)
	assert.Equal(t, "user", claims.Role)
	assert.Equal(t, "visitor-http-service", claims.Issuer)
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	svc := NewJWTService(&config.Config{JWTSecretKey: "test-secret-key"})

	_, err := svc.ValidateToken("not.a.token")
	require.Error(t, err)
}

func TestValidateTokenRejectsWrongSecret(t *testing.T) {
	issuer := NewJWTService(&config.Config{JWTSecretKey: "secret-one"})
	verifier := NewJWTService(&config.Config{JWTSecretKey: "secret-two"})

	tokenString, err := issuer.GenerateToken(1, "admin", "admin")
	require.NoError(t, err)

	_, err = verifier.ValidateToken(tokenString)
	require.Error(t, err)
}
