package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-key-0123456789"

func TestNewJWTConfig_DefaultValues(t *testing.T) {
	t.Setenv("JWT_SECRET", testSecret)
	t.Setenv("JWT_EXPIRATION_HOURS", "")
	t.Setenv("JWT_ISSUER", "")

	cfg, err := NewJWTConfig()
	require.NoError(t, err)
	require.NotNil(t, cfg)
	assert.Equal(t, testSecret, cfg.Secret)
	assert.Equal(t, 24, cfg.ExpirationHours, "should use default expiration of 24 hours")
	assert.Equal(t, DefaultTokenIssuer, cfg.Issuer)
	assert.Equal(t, 24*time.Hour, cfg.TTL())
}

func TestNewJWTConfig_CustomValues(t *testing.T) {
	t.Setenv("JWT_SECRET", testSecret)
	t.Setenv("JWT_EXPIRATION_HOURS", "72")
	t.Setenv("JWT_ISSUER", "skillgap-staging")

	cfg, err := NewJWTConfig()
	require.NoError(t, err)
	assert.Equal(t, 72, cfg.ExpirationHours)
	assert.Equal(t, "skillgap-staging", cfg.Issuer)
}

func TestNewJWTConfig_MissingSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	cfg, err := NewJWTConfig()
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "JWT_SECRET is required")
}

func TestNewJWTConfig_ShortSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "short")

	_, err := NewJWTConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "at least 16 characters")
}

func TestNewJWTConfig_InvalidExpiration(t *testing.T) {
	tests := []struct {
		name       string
		expiration string
		wantErr    string
	}{
		{"not a number", "abc", "invalid JWT_EXPIRATION_HOURS"},
		{"zero", "0", "at least 1 hour"},
		{"negative", "-5", "at least 1 hour"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("JWT_SECRET", testSecret)
			t.Setenv("JWT_EXPIRATION_HOURS", tt.expiration)

			cfg, err := NewJWTConfig()
			require.Error(t, err)
			assert.Nil(t, cfg)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
