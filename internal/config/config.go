package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config is the process-wide configuration, read once at startup.
type Config struct {
	Port           string        `env:"PORT" envDefault:"3001"`
	DataDir        string        `env:"AUTH_DATA_DIR" envDefault:"data"`
	JWTSecret      string        `env:"JWT_SECRET,required"`
	TokenTTL       time.Duration `env:"TOKEN_TTL" envDefault:"168h"`
	CORSOrigins    []string      `env:"CORS_ORIGINS" envSeparator:","`
	PasswordScheme string        `env:"PASSWORD_SCHEME" envDefault:"bcrypt"`
	BcryptCost     int           `env:"BCRYPT_COST" envDefault:"12"`
}

// defaultCORSOrigins covers the local dev frontends that talk to this
// service when CORS_ORIGINS is not set.
var defaultCORSOrigins = []string{
	"http://localhost:3000",
	"http://localhost:5173",
	"http://127.0.0.1:3000",
	"http://127.0.0.1:5173",
}

// Load parses configuration from the environment and validates it.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	if len(cfg.JWTSecret) < 32 {
		return Config{}, fmt.Errorf("JWT_SECRET must be at least 32 characters for HMAC-SHA256 security")
	}
	switch cfg.PasswordScheme {
	case "bcrypt", "plaintext":
	default:
		return Config{}, fmt.Errorf("PASSWORD_SCHEME must be bcrypt or plaintext, got %q", cfg.PasswordScheme)
	}
	if cfg.BcryptCost < 4 || cfg.BcryptCost > 14 {
		return Config{}, fmt.Errorf("BCRYPT_COST must be between 4 and 14, got %d", cfg.BcryptCost)
	}
	if cfg.TokenTTL <= 0 {
		return Config{}, fmt.Errorf("TOKEN_TTL must be positive, got %s", cfg.TokenTTL)
	}
	if len(cfg.CORSOrigins) == 0 {
		cfg.CORSOrigins = defaultCORSOrigins
	}
	return cfg, nil
}
