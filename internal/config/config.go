package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultCORSOrigins = "http://localhost:3000,https://wordheist.vercel.app"
	defaultFreeHints   = 3
	defaultTokenTTL    = 72 * time.Hour
)

// Config holds all application configuration
type Config struct {
	BotToken    string
	JWTSecret   string
	TokenTTL    time.Duration
	HTTPAddr    string
	CORSOrigins []string
	FreeHints   int
	Tracing     string
	DatabaseURL string
	Database    DatabaseConfig
}

// DatabaseConfig holds database connection settings
type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Try to load .env file (ignore error if not exists)
	_ = godotenv.Load()

	cfg := &Config{
		BotToken:    os.Getenv("BOT_TOKEN"),
		JWTSecret:   os.Getenv("JWT_SECRET"),
		HTTPAddr:    httpAddr(),
		CORSOrigins: splitList(getEnv("CORS_ORIGINS", defaultCORSOrigins)),
		Tracing:     os.Getenv("OTEL_TRACING"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			Name:     getEnv("DB_NAME", "wordheist"),
			User:     getEnv("DB_USER", "wordheist"),
			Password: os.Getenv("DB_PASSWORD"),
		},
	}

	ttl, err := getDuration("TOKEN_TTL", defaultTokenTTL)
	if err != nil {
		return nil, err
	}
	cfg.TokenTTL = ttl

	hints, err := getInt("FREE_HINTS", defaultFreeHints)
	if err != nil {
		return nil, err
	}
	cfg.FreeHints = hints

	// Validate required fields
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}
	if cfg.DatabaseURL == "" && cfg.Database.Password == "" {
		return nil, fmt.Errorf("DATABASE_URL or DB_PASSWORD is required")
	}
	if cfg.FreeHints < 0 {
		return nil, fmt.Errorf("FREE_HINTS must not be negative")
	}

	return cfg, nil
}

// DSN returns PostgreSQL connection string. DATABASE_URL wins when set.
func (c *Config) DSN() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.Name,
	)
}

// BotEnabled reports whether the Telegram transport should start
func (c *Config) BotEnabled() bool {
	return c.BotToken != ""
}

// httpAddr prefers HTTP_ADDR, then the PORT set by hosting platforms
func httpAddr() string {
	if addr := os.Getenv("HTTP_ADDR"); addr != "" {
		return addr
	}
	if port := os.Getenv("PORT"); port != "" {
		return ":" + port
	}
	return ":8080"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getInt(key string, defaultValue int) (int, error) {
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

func getDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("%s must be a duration: %w", key, err)
	}
	return d, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
