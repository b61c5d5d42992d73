package auth

import (
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestGenerateAdminToken_RoundTrip(t *testing.T) {
	secret := "test-secret"
	token, err := GenerateAdminToken(secret)
	require.NoError(t, err)

	claims := &AdminClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	})
	require.NoError(t, err)
	require.True(t, parsed.Valid)
	require.Equal(t, "admin", claims.Role)
}

func TestVerifyAdminPassword(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("hunter2"), bcrypt.MinCost)
	require.NoError(t, err)

	require.NoError(t, VerifyAdminPassword(string(hash), "hunter2"))
	require.Error(t, VerifyAdminPassword(string(hash), "wrong"))
	require.Error(t, VerifyAdminPassword("", "hunter2"))
}
