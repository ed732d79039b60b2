package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sitegate-http-service/config"
	"sitegate-http-service/services"
)

func TestJWTService_RoundTrip(t *testing.T) {
	svc := services.NewJWTService(testConfig())

	token, err := svc.GenerateToken(42, "guard@sitegate.local", "sos")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ExtractClaims(token)
	require.NoError(t, err)
	assert.EqualValues(t, 42, claims.UserID)
	assert.Equal(t, "guard@sitegate.local", claims.Email)
	assert.Equal(t, "sos", claims.Role)
}

func TestJWTService_RejectsForeignSignature(t *testing.T) {
	svc := services.NewJWTService(testConfig())
	other := services.NewJWTService(&config.Config{JWTSecretKey: "a-different-secret"})

	token, err := other.GenerateToken(42, "guard@sitegate.local", "sos")
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.Error(t, err)

	_, err = svc.ExtractClaims("not-a-token")
	assert.Error(t, err)
}
