package config

import (
	"encoding/base64"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "development", cfg.Server.Environment)
	assert.Equal(t, DriverSQLite, cfg.Database.Driver)
	assert.Equal(t, "fintrack.db", cfg.Database.Path)
	assert.Equal(t, 24*time.Hour, cfg.JWT.TokenDuration)
	assert.Equal(t, "fintrack", cfg.JWT.Issuer)
	// dev generates an ephemeral secret when JWT_SECRET is unset
	assert.GreaterOrEqual(t, len(cfg.JWT.Secret), 32)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9999")
	t.Setenv("DB_DRIVER", DriverPostgres)
	t.Setenv("APP_ENV", "testing")
	t.Setenv("JWT_TOKEN_DURATION", "2h")

	cfg := Load()

	assert.Equal(t, "9999", cfg.Server.Port)
	assert.Equal(t, DriverPostgres, cfg.Database.Driver)
	assert.True(t, cfg.IsTesting())
	assert.Equal(t, 2*time.Hour, cfg.JWT.TokenDuration)
}

func TestLoad_ExplicitJWTSecret(t *testing.T) {
	secret := []byte("0123456789abcdef0123456789abcdef")
	t.Setenv("JWT_SECRET", base64.StdEncoding.EncodeToString(secret))

	cfg := Load()

	assert.Equal(t, secret, cfg.JWT.Secret)
}

func TestLoadJWTSecret_RejectsShortSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", base64.StdEncoding.EncodeToString([]byte("too short")))

	cfg := &Config{}
	_, err := cfg.loadJWTSecret()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "at least 32 bytes")
}

func TestLoadJWTSecret_RejectsInvalidBase64(t *testing.T) {
	t.Setenv("JWT_SECRET", "not base64 !!!")

	cfg := &Config{}
	_, err := cfg.loadJWTSecret()
	assert.Error(t, err)
}

func TestLoadJWTSecret_RequiredInProduction(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	cfg := &Config{}
	cfg.Server.Environment = "production"
	_, err := cfg.loadJWTSecret()
	assert.Error(t, err)
}

func TestDSN(t *testing.T) {
	cfg := &DatabaseConfig{
		Host:     "db.internal",
		Port:     "5432",
		User:     "fintrack_user",
		Password: "secret",
		Name:     "fintrack_db",
		SSLMode:  "require",
	}

	dsn := cfg.DSN()
	assert.Contains(t, dsn, "host=db.internal")
	assert.Contains(t, dsn, "dbname=fintrack_db")
	assert.Contains(t, dsn, "sslmode=require")
}

func TestEnvironmentPredicates(t *testing.T) {
	cfg := &Config{}

	cfg.Server.Environment = "development"
	assert.True(t, cfg.IsDevelopment())
	assert.False(t, cfg.IsProduction())

	cfg.Server.Environment = "production"
	assert.True(t, cfg.IsProduction())
	assert.False(t, cfg.IsTesting())
}
