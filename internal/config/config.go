package config

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"log"
	"os"
	"strconv"
	"time"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	JWT      JWTConfig
	Security SecurityConfig
}

type ServerConfig struct {
	Port         string
	Host         string
	Environment  string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type DatabaseConfig struct {
	Driver string

	// SQLite settings (the default, local-first backend)
	Path string

	// Postgres settings, used when Driver is "postgres"
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string

	MaxConnections  int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

type JWTConfig struct {
	Secret        []byte
	TokenDuration time.Duration
	Issuer        string
}

type SecurityConfig struct {
	BCryptCost         int
	PasswordMinLength  int
	RateLimitPerSecond int
	RateLimitBurst     int
}

func Load() *Config {
	config := &Config{
		Server: ServerConfig{
			Port:         getEnv("SERVER_PORT", "8080"),
			Host:         getEnv("SERVER_HOST", "localhost"),
			Environment:  getEnv("APP_ENV", "development"),
			ReadTimeout:  getDurationEnv("SERVER_READ_TIMEOUT", 15*time.Second),
			WriteTimeout: getDurationEnv("SERVER_WRITE_TIMEOUT", 15*time.Second),
		},
		Database: DatabaseConfig{
			Driver:          getEnv("DB_DRIVER", DriverSQLite),
			Path:            getEnv("DB_PATH", "fintrack.db"),
			Host:            getEnv("DB_HOST", "localhost"),
			Port:            getEnv("DB_PORT", "5432"),
			User:            getEnv("DB_USER", "fintrack_user"),
			Password:        getEnv("DB_PASSWORD", "fintrack_password"),
			Name:            getEnv("DB_NAME", "fintrack_db"),
			SSLMode:         getEnv("DB_SSL_MODE", "disable"),
			MaxConnections:  getIntEnv("DB_MAX_CONNECTIONS", 10),
			MaxIdleConns:    getIntEnv("DB_MAX_IDLE_CONNS", 2),
			ConnMaxLifetime: getDurationEnv("DB_CONN_MAX_LIFETIME", time.Hour),
		},
		Security: SecurityConfig{
			BCryptCost:         getIntEnv("BCRYPT_COST", 12),
			PasswordMinLength:  getIntEnv("PASSWORD_MIN_LENGTH", 8),
			RateLimitPerSecond: getIntEnv("RATE_LIMIT_PER_SECOND", 5),
			RateLimitBurst:     getIntEnv("RATE_LIMIT_BURST", 10),
		},
		JWT: JWTConfig{
			TokenDuration: getDurationEnv("JWT_TOKEN_DURATION", 24*time.Hour),
			Issuer:        getEnv("JWT_ISSUER", "fintrack"),
		},
	}

	var loadSecretErr error
	config.JWT.Secret, loadSecretErr = config.loadJWTSecret()
	if loadSecretErr != nil {
		log.Fatal("Failed to load JWT secret:", loadSecretErr)
	}

	return config
}

// DSN returns the postgres connection string
func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode)
}

func (c *Config) IsDevelopment() bool {
	return c.Server.Environment == "development"
}

func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}

func (c *Config) IsTesting() bool {
	return c.Server.Environment == "testing"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// loadJWTSecret loads the HMAC signing secret for session tokens
// Priority order:
// 1. If JWT_SECRET is set (base64), use it (works in all environments)
// 2. If production and the env var is missing, fail (production requires an explicit secret)
// 3. If development/testing and the env var is missing, generate one (dev convenience)
func (c *Config) loadJWTSecret() ([]byte, error) {
	secretB64 := os.Getenv("JWT_SECRET")

	if secretB64 != "" {
		secret, err := base64.StdEncoding.DecodeString(secretB64)
		if err != nil {
			return nil, fmt.Errorf("failed to decode JWT_SECRET: %w", err)
		}
		if len(secret) < 32 {
			return nil, fmt.Errorf("JWT_SECRET must decode to at least 32 bytes, got %d", len(secret))
		}
		return secret, nil
	}

	if c.IsProduction() {
		return nil, fmt.Errorf("JWT_SECRET environment variable must be set in production environments")
	}

	log.Println("Development environment: generating ephemeral JWT secret (set JWT_SECRET to persist sessions across restarts)")
	secret := make([]byte, 32)
	if _, err := rand.Read(secret); err != nil {
		return nil, fmt.Errorf("failed to generate JWT secret: %w", err)
	}
	return secret, nil
}
