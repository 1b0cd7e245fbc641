package bootstrap

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaultsAndEnvOverrides(t *testing.T) {
	t.Setenv("DB_URL", "postgres://localhost:5432/accommodation?sslmode=disable")
	t.Setenv("REDIS_URL", "redis://localhost:6379/0")
	t.Setenv("JWT_SECRET", "unit-test-secret")
	t.Setenv("ADMIN_SIGNUP_CODE", "let-me-in")

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "accommodation-service", cfg.ServiceID)
	assert.Equal(t, 8080, cfg.HTTPPort)
	assert.Equal(t, 24*time.Hour, cfg.TokenTTL)
	assert.Equal(t, 15*time.Minute, cfg.LockoutDuration)
	assert.Equal(t, 5, cfg.FailedThreshold)
	assert.Equal(t, 15, cfg.LoginRateLimit)
	assert.Equal(t, 13, cfg.SignupRateLimit)
	assert.Equal(t, time.Minute, cfg.RateLimitWindow)
	assert.Equal(t, 12, cfg.BcryptCost)

	t.Setenv("TOKEN_EXPIRY_HOURS", "48")
	t.Setenv("ACCOUNT_LOCKOUT_MINUTES", "30")
	t.Setenv("LOGIN_RATE_LIMIT", "5")

	cfg, err = LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, 48*time.Hour, cfg.TokenTTL)
	assert.Equal(t, 30*time.Minute, cfg.LockoutDuration)
	assert.Equal(t, 5, cfg.LoginRateLimit)
}

func TestLoadConfigRequiresSecrets(t *testing.T) {
	t.Setenv("DB_URL", "postgres://localhost:5432/accommodation")
	t.Setenv("REDIS_URL", "redis://localhost:6379/0")
	t.Setenv("JWT_SECRET", "")
	t.Setenv("ADMIN_SIGNUP_CODE", "let-me-in")

	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JWT_SECRET")
}
