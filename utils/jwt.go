package utils

import (
	"errors"
	"time"

	"devmitra/config"
	"devmitra/models"

	"github.com/golang-jwt/jwt"
)

func secretKey() []byte {
	secret := config.AppConfig.JWTSecret
	if secret == "" {
		secret = "devmitra_secret"
	}
	return []byte(secret)
}

// GenerateToken creates a signed JWT carrying the user's id and role.
// The token expires after the specified duration.
func GenerateToken(userID string, role models.UserRole, duration time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"sub":  userID,
		"role": string(role),
		"iat":  time.Now().Unix(),
		"exp":  time.Now().Add(duration).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secretKey())
}

// ValidateToken parses and validates a token string and returns the token if valid.
func ValidateToken(tokenString string) (*jwt.Token, error) {
	return jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return secretKey(), nil
	})
}

// IdentityFromToken extracts the caller identity (id + role) from a valid
// JWT token string.
func IdentityFromToken(tokenString string) (id string, role models.UserRole, err error) {
	token, err := ValidateToken(tokenString)
	if err != nil {
		return "", "", err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return "", "", errors.New("invalid token")
	}

	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return "", "", errors.New("token does not contain a valid 'sub' claim")
	}
	roleClaim, ok := claims["role"].(string)
	if !ok || roleClaim == "" {
		return "", "", errors.New("token does not contain a valid 'role' claim")
	}

	return sub, models.UserRole(roleClaim), nil
}
