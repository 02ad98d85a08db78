package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"go.uber.org/zap/zapcore"
)

const testYAML = `
log:
  level: debug
  output_path: editor.log
server:
  addr: ":9090"
  read_timeout: 3s
source:
  num_retries: 5
  circuit_breaker:
    enabled: false
editor:
  export_dir: /tmp/exports
  initial_import: https://example.com/ui-config.json
  flash_duration: 250ms
`

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadFromYAML(t *testing.T) {
	cfg, err := LoadFromYAML(writeConfig(t, testYAML))
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Log.Level != zapcore.DebugLevel || cfg.Log.OutputPath != "editor.log" {
		t.Errorf("log = %+v", cfg.Log)
	}
	if cfg.Log.Encoding != "console" {
		t.Errorf("unset encoding lost its default: %q", cfg.Log.Encoding)
	}
	if cfg.Server.Addr != ":9090" || cfg.Server.ReadTimeout != 3*time.Second {
		t.Errorf("server = %+v", cfg.Server)
	}
	if cfg.Server.WriteTimeout != 10*time.Second {
		t.Errorf("write timeout = %s, want default", cfg.Server.WriteTimeout)
	}
	if cfg.Source.NumRetries != 5 || cfg.Source.CircuitBreaker.Enabled {
		t.Errorf("source = %+v", cfg.Source)
	}
	if cfg.Source.CircuitBreaker.ConsecutiveFailure != 5 {
		t.Error("breaker defaults were dropped")
	}
	if cfg.Editor.ExportDir != "/tmp/exports" ||
		cfg.Editor.InitialImport != "https://example.com/ui-config.json" ||
		cfg.Editor.FlashDuration != 250*time.Millisecond ||
		cfg.Editor.PreviewWidth != 48 {
		t.Errorf("editor = %+v", cfg.Editor)
	}
}

func TestLoadFromYAMLMissingFile(t *testing.T) {
	if _, err := LoadFromYAML(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("missing file loaded")
	}
	if _, err := LoadFromYAML(writeConfig(t, "server: [")); err == nil {
		t.Error("malformed file loaded")
	}
}

func TestLoadAppliesEnvironment(t *testing.T) {
	t.Setenv("CONFIG_PATH", writeConfig(t, testYAML))
	t.Setenv("SERVER_ADDR", ":7070")
	t.Setenv("LOG_LEVEL", "warn")
	t.Setenv("SOURCE_CB_ENABLE", "true")
	t.Setenv("EDITOR_PREVIEW_WIDTH", "60")
	t.Setenv("TRACING_SERVICE_NAME", "showroom-test")

	cfg, err := Load(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Server.Addr != ":7070" {
		t.Errorf("addr = %q", cfg.Server.Addr)
	}
	if cfg.Server.ReadTimeout != 3*time.Second {
		t.Error("file value lost when the environment is silent")
	}
	if cfg.Log.Level != zapcore.WarnLevel {
		t.Errorf("level = %s", cfg.Log.Level)
	}
	if !cfg.Source.CircuitBreaker.Enabled {
		t.Error("breaker was not re-enabled by the environment")
	}
	if cfg.Editor.PreviewWidth != 60 || cfg.Tracing.ServiceName != "showroom-test" {
		t.Errorf("editor = %+v, tracing = %+v", cfg.Editor, cfg.Tracing)
	}
}

func TestLoadWithoutFile(t *testing.T) {
	t.Setenv("CONFIG_PATH", "")
	cfg, err := Load(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	def := Default()
	if cfg.Server.Addr != def.Server.Addr || cfg.Source.Timeout != def.Source.Timeout {
		t.Errorf("config = %+v, want defaults", cfg)
	}
}
