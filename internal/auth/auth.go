package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/jsarmiento/globetrotter/internal/apperrors"
)

type AdminClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// GenerateAdminToken issues the token used by the destination-management
// endpoints.
func GenerateAdminToken(secret string) (string, error) {
	claims := AdminClaims{
		Role: "admin",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(72 * time.Hour)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// VerifyAdminPassword compares the submitted password against the bcrypt
// hash from configuration.
func VerifyAdminPassword(hash, password string) error {
	if hash == "" {
		return apperrors.NewAppError(403, "Admin access is not configured", nil)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		return apperrors.NewAppError(401, "Invalid password", err)
	}
	return nil
}
