package config

import (
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/zap"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(contents), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

func TestLoadConfiguration(t *testing.T) {
	path := writeConfig(t, `
server:
  address: ":9090"
storage:
  datadir: "/var/lib/calcsuite"
database:
  url: "postgres://localhost:5432/calcsuite"
admin:
  password: "hunter2"
logging:
  level: "debug"
  format: "console"
`)

	conf, err := LoadConfiguration(path)
	if err != nil {
		t.Fatalf("LoadConfiguration failed: %v", err)
	}

	if conf.Server.Address != ":9090" {
		t.Errorf("Server.Address = %q", conf.Server.Address)
	}
	if conf.Storage.DataDir != "/var/lib/calcsuite" {
		t.Errorf("Storage.DataDir = %q", conf.Storage.DataDir)
	}
	if conf.Database.URL != "postgres://localhost:5432/calcsuite" {
		t.Errorf("Database.URL = %q", conf.Database.URL)
	}
	if conf.Admin.Password != "hunter2" {
		t.Errorf("Admin.Password = %q", conf.Admin.Password)
	}
	if conf.Logging.Level != "debug" || conf.Logging.Format != "console" {
		t.Errorf("Logging = %+v", conf.Logging)
	}
}

func TestLoadConfigurationDefaults(t *testing.T) {
	path := writeConfig(t, `
logging:
  level: ""
`)

	conf, err := LoadConfiguration(path)
	if err != nil {
		t.Fatalf("LoadConfiguration failed: %v", err)
	}

	if conf.Server.Address != ":8080" {
		t.Errorf("default address = %q, expected :8080", conf.Server.Address)
	}
	if conf.Storage.DataDir != "data" {
		t.Errorf("default data dir = %q, expected data", conf.Storage.DataDir)
	}
	if conf.Logging.Level != "info" || conf.Logging.Format != "json" {
		t.Errorf("default logging = %+v", conf.Logging)
	}
}

func TestLoadConfigurationMissingFile(t *testing.T) {
	if _, err := LoadConfiguration(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("expected an error for a missing file")
	}
}

func TestValidateConfigurationDoesNotPanic(t *testing.T) {
	conf := &Configuration{}
	conf.applyDefaults()
	conf.ValidateConfiguration(zap.NewNop())
}
