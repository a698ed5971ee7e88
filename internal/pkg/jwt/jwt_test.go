package jwt

import (
	"testing"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAccessToken(t *testing.T) {
	svc := NewJWTService("test-secret-key", "15m", "168h")
	employeeID := "a3bb189e-8bf9-4888-9912-ace4e6543002"

	token, expiresAt, err := svc.GenerateAccessToken("user-1", "jdoe", &employeeID, "Admin", true)
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.Greater(t, expiresAt, time.Now().Unix())

	decoded, err := jwtauth.VerifyToken(svc.JWTAuth(), token)
	require.NoError(t, err)

	claims, err := decoded.AsMap(t.Context())
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims["user_id"])
	assert.Equal(t, "jdoe", claims["username"])
	assert.Equal(t, "Admin", claims["role"])
	assert.Equal(t, true, claims["is_admin"])
	assert.Equal(t, "access", claims["type"])
	assert.Equal(t, employeeID, claims["employee_id"])
}

func TestGenerateAccessTokenWithoutEmployee(t *testing.T) {
	svc := NewJWTService("test-secret-key", "15m", "168h")

	token, _, err := svc.GenerateAccessToken("user-2", "newhire", nil, "User", false)
	require.NoError(t, err)

	decoded, err := jwtauth.VerifyToken(svc.JWTAuth(), token)
	require.NoError(t, err)

	claims, err := decoded.AsMap(t.Context())
	require.NoError(t, err)
	assert.Equal(t, false, claims["is_admin"])
	_, present := claims["employee_id"]
	assert.False(t, present)
}

func TestGenerateRefreshToken(t *testing.T) {
	svc := NewJWTService("test-secret-key", "15m", "168h")

	token, expiresAt, err := svc.GenerateRefreshToken("user-1")
	require.NoError(t, err)
	assert.Greater(t, expiresAt, time.Now().Add(100*time.Hour).Unix())

	decoded, err := jwtauth.VerifyToken(svc.JWTAuth(), token)
	require.NoError(t, err)

	claims, err := decoded.AsMap(t.Context())
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims["user_id"])
	assert.Equal(t, "refresh", claims["type"])
}

func TestGenerateAccessTokenBadDuration(t *testing.T) {
	svc := NewJWTService("test-secret-key", "soon", "168h")

	_, _, err := svc.GenerateAccessToken("user-1", "jdoe", nil, "User", false)
	assert.Error(t, err)
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	issuer := NewJWTService("secret-a", "15m", "168h")
	verifier := NewJWTService("secret-b", "15m", "168h")

	token, _, err := issuer.GenerateAccessToken("user-1", "jdoe", nil, "User", false)
	require.NoError(t, err)

	_, err = jwtauth.VerifyToken(verifier.JWTAuth(), token)
	assert.Error(t, err)
}
