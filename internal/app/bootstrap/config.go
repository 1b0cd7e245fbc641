package bootstrap

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the resolved runtime configuration for the accommodation service.
// It merges file defaults and environment overrides to support both local and deployed runs.
type Config struct {
	ServiceID string

	HTTPPort int

	DatabaseURL string
	RedisURL    string

	JWTSecret       string
	AdminSignupCode string

	BcryptCost int

	TokenTTL        time.Duration
	LockoutDuration time.Duration
	FailedThreshold int

	LoginRateLimit  int
	SignupRateLimit int
	RateLimitWindow time.Duration

	MaxDBConns         int
	TokenSweepInterval time.Duration
}

// configFile mirrors the YAML schema used by configs/default.yaml.
// It is intentionally separate from Config so runtime-only fields stay internal.
type configFile struct {
	Service struct {
		ID       string `yaml:"id"`
		HTTPPort int    `yaml:"http_port"`
	} `yaml:"service"`
	Dependencies struct {
		PostgresURL string `yaml:"postgres_url"`
		RedisURL    string `yaml:"redis_url"`
	} `yaml:"dependencies"`
	Auth struct {
		TokenExpiryHours      int `yaml:"token_expiry_hours"`
		LockoutMinutes        int `yaml:"lockout_minutes"`
		FailedLoginThreshold  int `yaml:"failed_login_threshold"`
		BcryptRounds          int `yaml:"bcrypt_rounds"`
		LoginRateLimit        int `yaml:"login_rate_limit"`
		SignupRateLimit       int `yaml:"signup_rate_limit"`
		RateLimitWindowSecond int `yaml:"rate_limit_window_seconds"`
	} `yaml:"auth"`
}

// LoadConfig resolves configuration in priority order: defaults -> file -> env.
// This order keeps local bootstrap simple while allowing environment-specific overrides.
func LoadConfig(path string) (Config, error) {
	cfg := Config{
		ServiceID:          "accommodation-service",
		HTTPPort:           8080,
		BcryptCost:         12,
		TokenTTL:           24 * time.Hour,
		LockoutDuration:    15 * time.Minute,
		FailedThreshold:    5,
		LoginRateLimit:     15,
		SignupRateLimit:    13,
		RateLimitWindow:    time.Minute,
		MaxDBConns:         20,
		TokenSweepInterval: time.Hour,
	}

	raw, err := os.ReadFile(path)
	if err == nil {
		var f configFile
		if unmarshalErr := yaml.Unmarshal(raw, &f); unmarshalErr != nil {
			return Config{}, fmt.Errorf("parse config file: %w", unmarshalErr)
		}
		if f.Service.ID != "" {
			cfg.ServiceID = f.Service.ID
		}
		if f.Service.HTTPPort > 0 {
			cfg.HTTPPort = f.Service.HTTPPort
		}
		if f.Dependencies.PostgresURL != "" {
			cfg.DatabaseURL = f.Dependencies.PostgresURL
		}
		if f.Dependencies.RedisURL != "" {
			cfg.RedisURL = f.Dependencies.RedisURL
		}
		if f.Auth.TokenExpiryHours > 0 {
			cfg.TokenTTL = time.Duration(f.Auth.TokenExpiryHours) * time.Hour
		}
		if f.Auth.LockoutMinutes > 0 {
			cfg.LockoutDuration = time.Duration(f.Auth.LockoutMinutes) * time.Minute
		}
		if f.Auth.FailedLoginThreshold > 0 {
			cfg.FailedThreshold = f.Auth.FailedLoginThreshold
		}
		if f.Auth.BcryptRounds > 0 {
			cfg.BcryptCost = f.Auth.BcryptRounds
		}
		if f.Auth.LoginRateLimit > 0 {
			cfg.LoginRateLimit = f.Auth.LoginRateLimit
		}
		if f.Auth.SignupRateLimit > 0 {
			cfg.SignupRateLimit = f.Auth.SignupRateLimit
		}
		if f.Auth.RateLimitWindowSecond > 0 {
			cfg.RateLimitWindow = time.Duration(f.Auth.RateLimitWindowSecond) * time.Second
		}
	}

	cfg.DatabaseURL = envOrDefault("DB_URL", envOrDefault("POSTGRES_URL", cfg.DatabaseURL))
	cfg.RedisURL = envOrDefault("REDIS_URL", cfg.RedisURL)
	cfg.JWTSecret = envOrDefault("JWT_SECRET", cfg.JWTSecret)
	cfg.AdminSignupCode = envOrDefault("ADMIN_SIGNUP_CODE", cfg.AdminSignupCode)

	cfg.HTTPPort = envInt("HTTP_PORT", cfg.HTTPPort)
	cfg.BcryptCost = envInt("BCRYPT_ROUNDS", cfg.BcryptCost)
	cfg.FailedThreshold = envInt("FAILED_LOGIN_THRESHOLD", cfg.FailedThreshold)
	cfg.LoginRateLimit = envInt("LOGIN_RATE_LIMIT", cfg.LoginRateLimit)
	cfg.SignupRateLimit = envInt("SIGNUP_RATE_LIMIT", cfg.SignupRateLimit)
	cfg.MaxDBConns = envInt("DB_MAX_CONNS", cfg.MaxDBConns)

	cfg.TokenTTL = time.Duration(envInt("TOKEN_EXPIRY_HOURS", int(cfg.TokenTTL.Hours()))) * time.Hour
	cfg.LockoutDuration = time.Duration(envInt("ACCOUNT_LOCKOUT_MINUTES", int(cfg.LockoutDuration.Minutes()))) * time.Minute
	cfg.RateLimitWindow = time.Duration(envInt("RATE_LIMIT_WINDOW_SECONDS", int(cfg.RateLimitWindow.Seconds()))) * time.Second
	cfg.TokenSweepInterval = time.Duration(envInt("TOKEN_SWEEP_INTERVAL_MINUTES", int(cfg.TokenSweepInterval.Minutes()))) * time.Minute

	if cfg.DatabaseURL == "" {
		return Config{}, fmt.Errorf("missing DB_URL/POSTGRES_URL")
	}
	if cfg.RedisURL == "" {
		return Config{}, fmt.Errorf("missing REDIS_URL")
	}
	if cfg.JWTSecret == "" {
		return Config{}, fmt.Errorf("missing JWT_SECRET")
	}
	if cfg.AdminSignupCode == "" {
		return Config{}, fmt.Errorf("missing ADMIN_SIGNUP_CODE")
	}

	return cfg, nil
}

// envOrDefault returns an env var when present, otherwise the provided fallback.
func envOrDefault(name, fallback string) string {
	if value := os.Getenv(name); value != "" {
		return value
	}
	return fallback
}

// envInt parses integer env vars with safe fallback on empty/invalid values.
func envInt(name string, fallback int) int {
	raw := os.Getenv(name)
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return v
}
