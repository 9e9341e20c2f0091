package config_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daybook-labs/auth-service/internal/config"
)

func validSecret() string {
	return strings.Repeat("s", 32)
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("JWT_SECRET", validSecret())

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "3001", cfg.Port)
	assert.Equal(t, "data", cfg.DataDir)
	assert.Equal(t, 168*time.Hour, cfg.TokenTTL)
	assert.Equal(t, "bcrypt", cfg.PasswordScheme)
	assert.Equal(t, 12, cfg.BcryptCost)
	assert.Contains(t, cfg.CORSOrigins, "http://localhost:3000")
	assert.Contains(t, cfg.CORSOrigins, "http://localhost:5173")
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("JWT_SECRET", validSecret())
	t.Setenv("PORT", "9000")
	t.Setenv("AUTH_DATA_DIR", "/var/lib/auth")
	t.Setenv("TOKEN_TTL", "24h")
	t.Setenv("CORS_ORIGINS", "https://app.example.com,https://staging.example.com")
	t.Setenv("PASSWORD_SCHEME", "plaintext")
	t.Setenv("BCRYPT_COST", "10")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, "/var/lib/auth", cfg.DataDir)
	assert.Equal(t, 24*time.Hour, cfg.TokenTTL)
	assert.Equal(t, []string{"https://app.example.com", "https://staging.example.com"}, cfg.CORSOrigins)
	assert.Equal(t, "plaintext", cfg.PasswordScheme)
	assert.Equal(t, 10, cfg.BcryptCost)
}

func TestLoad_ShortSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "too-short")

	_, err := config.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JWT_SECRET")
}

func TestLoad_InvalidPasswordScheme(t *testing.T) {
	t.Setenv("JWT_SECRET", validSecret())
	t.Setenv("PASSWORD_SCHEME", "md5")

	_, err := config.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "PASSWORD_SCHEME")
}

func TestLoad_InvalidBcryptCost(t *testing.T) {
	t.Setenv("JWT_SECRET", validSecret())
	t.Setenv("BCRYPT_COST", "31")

	_, err := config.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "BCRYPT_COST")
}

func TestLoad_InvalidTokenTTL(t *testing.T) {
	t.Setenv("JWT_SECRET", validSecret())
	t.Setenv("TOKEN_TTL", "-1h")

	_, err := config.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "TOKEN_TTL")
}
