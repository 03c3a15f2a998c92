package server

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/skillgap-advisor/internal/config"
)

const testSecret = "test-secret-key-for-jwt-signing-minimum-32-bytes"

func setupTestJWTService(_ *testing.T, expirationHours int) *JWTService {
	return NewJWTService(&config.JWTConfig{
		Secret:          testSecret,
		ExpirationHours: expirationHours,
		Issuer:          config.DefaultTokenIssuer,
	})
}

func TestJWTService_GenerateToken(t *testing.T) {
	service := setupTestJWTService(t, 24)
	clientID := uuid.New()

	token, err := service.GenerateToken(clientID, "ci")
	require.NoError(t, err)
	assert.Len(t, strings.Split(token, "."), 3, "JWT should have 3 parts separated by dots")

	claims, err := service.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, clientID, claims.ClientID)
	assert.Equal(t, "ci", claims.Subject)
	assert.Equal(t, config.DefaultTokenIssuer, claims.Issuer)
	assert.NotEmpty(t, claims.ID)
}

func TestJWTService_UniqueTokens(t *testing.T) {
	service := setupTestJWTService(t, 24)
	clientID := uuid.New()

	token1, err := service.GenerateToken(clientID, "")
	require.NoError(t, err)
	token2, err := service.GenerateToken(clientID, "")
	require.NoError(t, err)

	assert.NotEqual(t, token1, token2, "token IDs make every token unique")
}

func TestJWTService_ExpiredToken(t *testing.T) {
	service := setupTestJWTService(t, 1)
	service.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }

	token, err := service.GenerateToken(uuid.New(), "")
	require.NoError(t, err)

	_, err = service.ValidateToken(token)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "token expired")
}

func TestJWTService_WrongSecret(t *testing.T) {
	token, err := setupTestJWTService(t, 24).GenerateToken(uuid.New(), "")
	require.NoError(t, err)

	other := NewJWTService(&config.JWTConfig{Secret: "another-secret-of-enough-length", ExpirationHours: 24, Issuer: config.DefaultTokenIssuer})
	_, err = other.ValidateToken(token)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid token signature")
}

func TestJWTService_WrongIssuer(t *testing.T) {
	issuer := NewJWTService(&config.JWTConfig{Secret: testSecret, ExpirationHours: 24, Issuer: "someone-else"})
	token, err := issuer.GenerateToken(uuid.New(), "")
	require.NoError(t, err)

	_, err = setupTestJWTService(t, 24).ValidateToken(token)
	assert.Error(t, err)
}

func TestJWTService_RejectsOtherAlgorithms(t *testing.T) {
	claims := &Claims{
		ClientID: uuid.New(),
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    config.DefaultTokenIssuer,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)

	_, err = setupTestJWTService(t, 24).ValidateToken(token)
	assert.Error(t, err)
}

func TestJWTService_MalformedAndEmpty(t *testing.T) {
	service := setupTestJWTService(t, 24)

	_, err := service.ValidateToken("")
	assert.Error(t, err)

	_, err = service.ValidateToken("not.a.jwt")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "malformed token")
}

func TestJWTService_RequiresClientID(t *testing.T) {
	service := setupTestJWTService(t, 24)
	token, err := service.GenerateToken(uuid.Nil, "")
	require.NoError(t, err)

	_, err = service.ValidateToken(token)
	assert.Error(t, err)
}
