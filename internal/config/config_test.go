package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("LoadConfig() with no file should fall back to defaults: %v", err)
	}

	if cfg.Server.Port != "8080" {
		t.Errorf("default port = %q, want 8080", cfg.Server.Port)
	}
	if cfg.Database.DBName != "accredia" {
		t.Errorf("default dbname = %q, want accredia", cfg.Database.DBName)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("default log level = %q, want info", cfg.Logging.Level)
	}
}

func TestLoadConfigFromFile(t *testing.T) {
	content := []byte(`
server:
  port: "9090"
  mode: production
database:
  host: db.internal
  dbname: accredia_test
logging:
  level: debug
`)
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, content, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if cfg.Server.Port != "9090" {
		t.Errorf("port = %q, want 9090", cfg.Server.Port)
	}
	if cfg.Database.Host != "db.internal" {
		t.Errorf("host = %q, want db.internal", cfg.Database.Host)
	}
	// Values absent from the file keep their defaults.
	if cfg.Database.Port != "5432" {
		t.Errorf("db port = %q, want default 5432", cfg.Database.Port)
	}
}

func TestEnvOverridesFile(t *testing.T) {
	content := []byte(`
server:
  port: "9090"
`)
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, content, 0o600); err != nil {
		t.Fatal(err)
	}

	t.Setenv("SERVER_PORT", "7070")
	t.Setenv("DB_PASSWORD", "sekrit")

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if cfg.Server.Port != "7070" {
		t.Errorf("env should override file: port = %q, want 7070", cfg.Server.Port)
	}
	if cfg.Database.Password != "sekrit" {
		t.Errorf("password = %q, want env value", cfg.Database.Password)
	}
}

func TestLoadConfigRejectsBadLifetime(t *testing.T) {
	t.Setenv("DB_CONN_MAX_LIFETIME", "not-a-duration")

	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("LoadConfig() should reject an unparseable conn_max_lifetime")
	}
}

func TestGetPostgresConnectionString(t *testing.T) {
	cfg := &Config{}
	setDefaults(cfg)
	cfg.Database.User = "app"
	cfg.Database.Password = "pw"
	cfg.Database.Host = "localhost"
	cfg.Database.Port = "5433"
	cfg.Database.DBName = "accredia"

	want := "postgres://app:pw@localhost:5433/accredia?sslmode=disable"
	if got := cfg.GetPostgresConnectionString(); got != want {
		t.Errorf("GetPostgresConnectionString() = %q, want %q", got, want)
	}
}
