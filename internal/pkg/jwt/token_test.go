package jwt

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/piresc/fleetdispatch/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testJWTConfig() models.JWTConfig {
	return models.JWTConfig{Secret: "test-secret", Expiration: 60, Issuer: "fleetdispatch"}
}

func TestGenerateAndParseClaims(t *testing.T) {
	cfg := testJWTConfig()
	userID := uuid.New()

	token, expiresAt, err := GenerateToken(userID, "pm@fleet.io", models.RoleProjectManager, cfg)
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.InDelta(t, time.Now().Add(time.Hour).Unix(), expiresAt, 5)

	claims, err := ParseClaims(token, cfg.Secret)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "pm@fleet.io", claims.Email)
	assert.Equal(t, models.RoleProjectManager, claims.Role)
}

func TestParseClaims_WrongSecret(t *testing.T) {
	token, _, err := GenerateToken(uuid.New(), "a@b.io", models.RoleAdmin, testJWTConfig())
	require.NoError(t, err)

	_, err = ParseClaims(token, "another-secret")
	assert.Error(t, err)
}

func TestParseClaims_Expired(t *testing.T) {
	cfg := testJWTConfig()
	cfg.Expiration = -1

	token, _, err := GenerateToken(uuid.New(), "a@b.io", models.RoleUser, cfg)
	require.NoError(t, err)

	_, err = ParseClaims(token, cfg.Secret)
	assert.Error(t, err)
}

func TestParseClaims_UnknownRole(t *testing.T) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": uuid.New().String(),
		"role":    "superuser",
		"exp":     time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = ParseClaims(signed, "test-secret")
	assert.Error(t, err)
}

func TestValidateToken_RejectsNoneAlgorithm(t *testing.T) {
	token := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{"user_id": uuid.New().String()})
	signed, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = ValidateToken(signed, "test-secret")
	assert.Error(t, err)
}
