package authUtils

import (
	"fmt"
	"os"
	"time"

	"github.com/dgrijalva/jwt-go"

	"ecowaste-be/models"
)

// GenerateToken generates a JWT for a user, binding the session to a role.
func GenerateToken(userID string, role models.Role) (string, error) {
	secretStr := os.Getenv("JWT_SECRET")
	if secretStr == "" {
		return "", fmt.Errorf("JWT_SECRET environment variable is not set")
	}

	jwtSecret := []byte(secretStr)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": userID,
		"role":    string(role),
		"exp":     time.Now().Add(time.Hour * 72).Unix(),
	})

	tokenString, err := token.SignedString(jwtSecret)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// ParseToken validates a token and returns the identity it carries.
func ParseToken(tokenString string) (string, models.Role, error) {
	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		return "", "", fmt.Errorf("JWT_SECRET environment variable is not set")
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if token.Method != jwt.SigningMethodHS256 {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(jwtSecret), nil
	})
	if err != nil || !token.Valid {
		return "", "", fmt.Errorf("invalid token: %w", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", "", fmt.Errorf("invalid token claims")
	}
	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return "", "", fmt.Errorf("token missing user_id claim")
	}
	roleStr, _ := claims["role"].(string)
	role, ok := models.ParseRole(roleStr)
	if !ok {
		return "", "", fmt.Errorf("token carries unknown role %q", roleStr)
	}

	return userID, role, nil
}
