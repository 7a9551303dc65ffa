package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds the banyan-data (HTTP API) configuration.
type Config struct {
	HTTP struct {
		Addr string
	}
	DBEnabled bool
	Database  DatabaseConfig
	Auth      AuthConfig
	Sheets    SheetsConfig
	Log       struct {
		Level  string
		Format string
	}
}

// DatabaseConfig is the Postgres connection configuration.
type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Database string
	SSLMode  string
	MaxConns int
	MaxIdle  int
}

// GetDSN builds a lib/pq connection string.
func (c *DatabaseConfig) GetDSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Database, c.SSLMode)
}

// AuthConfig holds token signing and registration settings.
type AuthConfig struct {
	JWTSecret  string
	TokenTTL   int    // hours
	AdminKey   string // shared key required to register an admin account
	BcryptCost int
}

// SheetsConfig configures the shared-spreadsheet push performed after each
// successful submission. When disabled the push is skipped entirely.
type SheetsConfig struct {
	Enabled       bool
	BaseURL       string
	SpreadsheetID string
	AccessToken   string
	TimeoutSecs   int
}

func Load() *Config {
	cfg := &Config{}
	cfg.HTTP.Addr = getEnv("HTTP_ADDR", ":8080")

	// Default to true: when the DB is unavailable banyan-data falls back to
	// in-memory stores so the portal still works with plain `go run`.
	cfg.DBEnabled = getEnv("DB_ENABLED", "true") == "true"
	cfg.Database.Host = getEnv("DB_HOST", "localhost")
	cfg.Database.Port = parseInt(getEnv("DB_PORT", "5432"), 5432)
	cfg.Database.User = getEnv("DB_USER", "postgres")
	cfg.Database.Password = getEnv("DB_PASSWORD", "postgres")
	cfg.Database.Database = getEnv("DB_NAME", "banyan")
	cfg.Database.SSLMode = getEnv("DB_SSLMODE", "disable")
	cfg.Database.MaxConns = parseInt(getEnv("DB_MAX_CONNS", "10"), 10)
	cfg.Database.MaxIdle = parseInt(getEnv("DB_MAX_IDLE", "5"), 5)

	cfg.Auth.JWTSecret = getEnv("JWT_SECRET", "dev-secret-change-me")
	cfg.Auth.TokenTTL = parseInt(getEnv("JWT_TTL_HOURS", "24"), 24)
	cfg.Auth.AdminKey = getEnv("ADMIN_KEY", "")
	cfg.Auth.BcryptCost = parseInt(getEnv("BCRYPT_COST", "10"), 10)

	// Sheets push is disabled by default: it needs a spreadsheet id and an
	// access token for the Sheets REST API.
	cfg.Sheets.Enabled = getEnv("SHEETS_ENABLED", "false") == "true"
	cfg.Sheets.BaseURL = getEnv("SHEETS_BASE_URL", "https://sheets.googleapis.com")
	cfg.Sheets.SpreadsheetID = getEnv("SHEETS_SPREADSHEET_ID", "")
	cfg.Sheets.AccessToken = getEnv("SHEETS_ACCESS_TOKEN", "")
	cfg.Sheets.TimeoutSecs = parseInt(getEnv("SHEETS_TIMEOUT_SECS", "30"), 30)

	cfg.Log.Level = getEnv("LOG_LEVEL", "info")
	cfg.Log.Format = getEnv("LOG_FORMAT", "json")

	return cfg
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func parseInt(s string, def int) int {
	i, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return i
}
