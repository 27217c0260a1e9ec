package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// MinJWTSecretLength is the shortest accepted HS256 signing secret in bytes
const MinJWTSecretLength = 32

// Config holds all configuration for the application
type Config struct {
	// Database
	DatabaseURL   string
	RunMigrations bool

	// Tokens
	JWT JWTConfig

	// Server
	Port        string
	CORSOrigins []string
	Env         string
	LogLevel    string

	// Credential endpoint rate limit, per client IP
	AuthRateLimit int
	AuthRateBurst int

	DefaultCurrency string
}

// JWTConfig holds token signing configuration
type JWTConfig struct {
	Secret     string
	Issuer     string
	Audience   string
	AccessTTL  time.Duration
	RefreshTTL time.Duration
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists (ignore error if not found)
	_ = godotenv.Load()

	accessTTL, err := getEnvDuration("ACCESS_TOKEN_TTL", 15*time.Minute)
	if err != nil {
		return nil, err
	}
	refreshTTL, err := getEnvDuration("REFRESH_TOKEN_TTL", 7*24*time.Hour)
	if err != nil {
		return nil, err
	}
	rateLimit, err := getEnvInt("AUTH_RATE_LIMIT", 20)
	if err != nil {
		return nil, err
	}
	rateBurst, err := getEnvInt("AUTH_RATE_BURST", 5)
	if err != nil {
		return nil, err
	}
	runMigrations, err := getEnvBool("RUN_MIGRATIONS", true)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		DatabaseURL:   getEnv("DATABASE_URL", ""),
		RunMigrations: runMigrations,
		JWT: JWTConfig{
			Secret:     getEnv("JWT_SECRET", ""),
			Issuer:     getEnv("JWT_ISSUER", "dompet-api"),
			Audience:   getEnv("JWT_AUDIENCE", "dompet-clients"),
			AccessTTL:  accessTTL,
			RefreshTTL: refreshTTL,
		},
		Port:            getEnv("PORT", "8080"),
		CORSOrigins:     strings.Split(getEnv("CORS_ORIGINS", "http://localhost:3000"), ","),
		Env:             getEnv("ENV", "development"),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		AuthRateLimit:   rateLimit,
		AuthRateBurst:   rateBurst,
		DefaultCurrency: strings.ToUpper(getEnv("DEFAULT_CURRENCY", "VND")),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// IsProduction reports whether the server runs with ENV=production
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

func (c *Config) validate() error {
	if c.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL is required")
	}
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET is required")
	}
	if len(c.JWT.Secret) < MinJWTSecretLength {
		return fmt.Errorf("JWT_SECRET must be at least %d bytes", MinJWTSecretLength)
	}
	if c.JWT.AccessTTL <= 0 || c.JWT.RefreshTTL <= 0 {
		return fmt.Errorf("token TTLs must be positive")
	}
	if c.JWT.RefreshTTL < c.JWT.AccessTTL {
		return fmt.Errorf("REFRESH_TOKEN_TTL must not be shorter than ACCESS_TOKEN_TTL")
	}
	if c.AuthRateLimit <= 0 || c.AuthRateBurst <= 0 {
		return fmt.Errorf("AUTH_RATE_LIMIT and AUTH_RATE_BURST must be positive")
	}
	if len(c.DefaultCurrency) != 3 {
		return fmt.Errorf("DEFAULT_CURRENCY must be a 3-letter code, got %q", c.DefaultCurrency)
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer: %w", key, err)
	}
	return n, nil
}

func getEnvBool(key string, defaultValue bool) (bool, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return false, fmt.Errorf("%s must be a boolean: %w", key, err)
	}
	return b, nil
}

func getEnvDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("%s must be a duration like 15m: %w", key, err)
	}
	return d, nil
}
