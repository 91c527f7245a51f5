package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/feinstaub/airbridge/internal/infrastructure/config"
	"github.com/feinstaub/airbridge/internal/infrastructure/logging"
)

// TestRun_InvalidConfig verifies run fails with invalid config path.
func TestRun_InvalidConfig(t *testing.T) {
	originalEnv := os.Getenv("AIRBRIDGE_CONFIG")
	defer os.Setenv("AIRBRIDGE_CONFIG", originalEnv)

	os.Setenv("AIRBRIDGE_CONFIG", "/nonexistent/path/config.yaml")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := run(ctx)
	if err == nil {
		t.Fatal("run() should fail with invalid config path")
	}
}

// TestRun_InvalidSensorsFile verifies run fails before connecting anywhere
// when the configured sensor definition file cannot be loaded.
func TestRun_InvalidSensorsFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "test-config.yaml")

	configContent := `
mqtt:
  broker:
    host: "127.0.0.1"
    port: 1883
    client_id: "test-client"
    tls: false
  qos: 1

bridge:
  state_topic_prefix: airrohr
  sensors_file: "/nonexistent/sensors.json"

influxdb:
  enabled: false

logging:
  level: info
  format: text
  output: stdout

api:
  host: "127.0.0.1"
  port: 8080
  timeouts:
    read: 30
    write: 60
    idle: 120
`
	if err := os.WriteFile(configPath, []byte(configContent), 0600); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	originalEnv := os.Getenv("AIRBRIDGE_CONFIG")
	defer os.Setenv("AIRBRIDGE_CONFIG", originalEnv)
	os.Setenv("AIRBRIDGE_CONFIG", configPath)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := run(ctx)
	if err == nil {
		t.Fatal("run() should fail with missing sensors file")
	}
}

// TestGetConfigPath_Default verifies default config path.
func TestGetConfigPath_Default(t *testing.T) {
	originalEnv := os.Getenv("AIRBRIDGE_CONFIG")
	defer os.Setenv("AIRBRIDGE_CONFIG", originalEnv)

	os.Unsetenv("AIRBRIDGE_CONFIG")

	path := getConfigPath()
	if path != defaultConfigPath {
		t.Errorf("getConfigPath() = %q, want %q", path, defaultConfigPath)
	}
}

// TestGetConfigPath_EnvOverride verifies environment variable override.
func TestGetConfigPath_EnvOverride(t *testing.T) {
	originalEnv := os.Getenv("AIRBRIDGE_CONFIG")
	defer os.Setenv("AIRBRIDGE_CONFIG", originalEnv)

	expected := "/custom/path/config.yaml"
	os.Setenv("AIRBRIDGE_CONFIG", expected)

	path := getConfigPath()
	if path != expected {
		t.Errorf("getConfigPath() = %q, want %q", path, expected)
	}
}

func TestLoadCatalog_Builtin(t *testing.T) {
	log := logging.New(config.LoggingConfig{Level: "error", Format: "text"}, "test")

	c, err := loadCatalog(config.BridgeConfig{}, log)
	if err != nil {
		t.Fatalf("loadCatalog() error = %v", err)
	}
	if _, ok := c.Lookup("SDS_P2"); !ok {
		t.Error("built-in catalog missing SDS_P2")
	}
}

func TestLoadCatalog_FromFile(t *testing.T) {
	log := logging.New(config.LoggingConfig{Level: "error", Format: "text"}, "test")

	sensorsPath := filepath.Join(t.TempDir(), "sensors.json")
	content := `{"SDS_P2": {"class": "pm25", "unit": "µg/m³", "value_template": "{{ value }}"}}`
	if err := os.WriteFile(sensorsPath, []byte(content), 0600); err != nil {
		t.Fatalf("failed to write sensors file: %v", err)
	}

	c, err := loadCatalog(config.BridgeConfig{SensorsFile: sensorsPath}, log)
	if err != nil {
		t.Fatalf("loadCatalog() error = %v", err)
	}
	if c.Len() != 1 {
		t.Errorf("Len() = %d, want 1", c.Len())
	}
}
