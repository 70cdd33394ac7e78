package utils

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/bellacucina/api/config"
	"github.com/bellacucina/api/middlewares"
)

const adminTokenTTL = 24 * time.Hour

// GenerateAdminToken issues the session token handed out after a
// successful admin login.
func GenerateAdminToken() (string, error) {
	now := time.Now()

	claims := &middlewares.Claims{
		Role: middlewares.RoleAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(adminTokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	tokenObj := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return tokenObj.SignedString([]byte(config.SecretKey))
}

// CheckAdminPassword compares the submitted password against the hash
// computed at startup.
func CheckAdminPassword(pw string) bool {
	return bcrypt.CompareHashAndPassword(config.AdminPasswordHash, []byte(pw)) == nil
}
