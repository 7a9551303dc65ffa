package config

import (
	"os"
	"testing"
)

func TestLoad_DefaultValues(t *testing.T) {
	os.Clearenv()

	cfg := Load()

	if cfg.HTTP.Addr != ":8080" {
		t.Errorf("Expected HTTP_ADDR default ':8080', got '%s'", cfg.HTTP.Addr)
	}

	if !cfg.DBEnabled {
		t.Errorf("Expected DB_ENABLED default true")
	}

	if cfg.Database.Host != "localhost" {
		t.Errorf("Expected DB_HOST default 'localhost', got '%s'", cfg.Database.Host)
	}

	if cfg.Database.Port != 5432 {
		t.Errorf("Expected DB_PORT default 5432, got %d", cfg.Database.Port)
	}

	if cfg.Database.Database != "banyan" {
		t.Errorf("Expected DB_NAME default 'banyan', got '%s'", cfg.Database.Database)
	}

	if cfg.Auth.TokenTTL != 24 {
		t.Errorf("Expected JWT_TTL_HOURS default 24, got %d", cfg.Auth.TokenTTL)
	}

	if cfg.Sheets.Enabled {
		t.Errorf("Expected SHEETS_ENABLED default false")
	}

	if cfg.Sheets.BaseURL != "https://sheets.googleapis.com" {
		t.Errorf("Expected sheets base URL default, got '%s'", cfg.Sheets.BaseURL)
	}

	if cfg.Log.Level != "info" {
		t.Errorf("Expected LOG_LEVEL default 'info', got '%s'", cfg.Log.Level)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	os.Clearenv()
	os.Setenv("HTTP_ADDR", ":5000")
	os.Setenv("DB_ENABLED", "false")
	os.Setenv("DB_PORT", "5433")
	os.Setenv("JWT_SECRET", "test-secret")
	os.Setenv("SHEETS_ENABLED", "true")
	os.Setenv("SHEETS_SPREADSHEET_ID", "sheet-123")
	defer os.Clearenv()

	cfg := Load()

	if cfg.HTTP.Addr != ":5000" {
		t.Errorf("Expected HTTP_ADDR ':5000', got '%s'", cfg.HTTP.Addr)
	}

	if cfg.DBEnabled {
		t.Errorf("Expected DB_ENABLED false")
	}

	if cfg.Database.Port != 5433 {
		t.Errorf("Expected DB_PORT 5433, got %d", cfg.Database.Port)
	}

	if cfg.Auth.JWTSecret != "test-secret" {
		t.Errorf("Expected JWT_SECRET 'test-secret', got '%s'", cfg.Auth.JWTSecret)
	}

	if !cfg.Sheets.Enabled {
		t.Errorf("Expected SHEETS_ENABLED true")
	}

	if cfg.Sheets.SpreadsheetID != "sheet-123" {
		t.Errorf("Expected spreadsheet id 'sheet-123', got '%s'", cfg.Sheets.SpreadsheetID)
	}
}

func TestDatabaseConfig_GetDSN(t *testing.T) {
	c := DatabaseConfig{
		Host:     "db.local",
		Port:     5432,
		User:     "banyan",
		Password: "pw",
		Database: "banyan",
		SSLMode:  "disable",
	}

	want := "host=db.local port=5432 user=banyan password=pw dbname=banyan sslmode=disable"
	if got := c.GetDSN(); got != want {
		t.Errorf("GetDSN mismatch:\n got %s\nwant %s", got, want)
	}
}
