package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/piresc/fleetdispatch/internal/pkg/models"
)

// Claims are the identity claims carried by every access token
type Claims struct {
	UserID uuid.UUID
	Email  string
	Role   models.Role
}

// GenerateToken signs a token for the given user
func GenerateToken(userID uuid.UUID, email string, role models.Role, cfg models.JWTConfig) (string, int64, error) {
	expiresAt := time.Now().Add(time.Duration(cfg.Expiration) * time.Minute).Unix()

	claims := jwt.MapClaims{
		"user_id": userID.String(),
		"email":   email,
		"role":    string(role),
		"exp":     expiresAt,
		"iss":     cfg.Issuer,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(cfg.Secret))
	if err != nil {
		return "", 0, err
	}

	return tokenString, expiresAt, nil
}

// ValidateToken verifies the signature and expiry and returns the raw claims
func ValidateToken(tokenString string, secret string) (*jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}
	return &claims, nil
}

// ParseClaims validates the token and extracts typed identity claims
func ParseClaims(tokenString, secret string) (*Claims, error) {
	raw, err := ValidateToken(tokenString, secret)
	if err != nil {
		return nil, err
	}

	userIDStr, _ := (*raw)["user_id"].(string)
	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		return nil, errors.New("user_id is not a valid UUID")
	}

	roleStr, _ := (*raw)["role"].(string)
	role := models.Role(roleStr)
	if !role.Valid() {
		return nil, errors.New("missing or unknown role claim")
	}

	email, _ := (*raw)["email"].(string)
	return &Claims{UserID: userID, Email: email, Role: role}, nil
}
