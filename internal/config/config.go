package config

import (
	"errors"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application configuration. It is built once at startup
// and passed by reference into the components that need it; nothing reads
// the environment after Load returns.
type Config struct {
	ServerPort   int
	DatabasePath string
	JWTSecret    string
	JWTLifetime  time.Duration
	CORSOrigin   string
	Production   bool
}

// Load loads configuration from the environment (and an optional .env file)
// or sets defaults. The JWT secret has no default: running without one would
// mean signing tokens with an empty key.
func Load() (*Config, error) {
	// .env is for local development; absent in production deployments.
	_ = godotenv.Load()

	port, err := strconv.Atoi(getEnv("PORT", "8080"))
	if err != nil {
		return nil, err
	}

	secret := getEnv("JWT_SECRET", "")
	if secret == "" {
		return nil, errors.New("JWT_SECRET must be set")
	}

	lifetime, err := time.ParseDuration(getEnv("JWT_LIFETIME", "24h"))
	if err != nil {
		return nil, err
	}

	return &Config{
		ServerPort:   port,
		DatabasePath: getEnv("DATABASE_PATH", "./jobify.db"),
		JWTSecret:    secret,
		JWTLifetime:  lifetime,
		CORSOrigin:   getEnv("CORS_ORIGIN", "http://localhost:3000"),
		Production:   getEnv("APP_ENV", "") == "production",
	}, nil
}

// Helper to get an environment variable with a default value.
func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
