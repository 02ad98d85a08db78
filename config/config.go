// Package config provides a way to configure the application.
package config

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/sethvargo/go-envconfig"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

type Config struct {
	// Logger configuration
	Log LogConfig `yaml:"log"     env:", prefix=LOG_"`
	// HTTP surface of the store
	Server ServerConfig `yaml:"server"  env:", prefix=SERVER_"`
	// Settings related to the source - the component that reads exported
	// documents from disk or over HTTP
	Source SourceConfig `yaml:"source"  env:", prefix=SOURCE_"`
	// Terminal editor settings
	Editor EditorConfig `yaml:"editor"  env:", prefix=EDITOR_"`
	// OpenTelemetry export of HTTP spans
	Tracing TracingConfig `yaml:"tracing" env:", prefix=TRACING_"`
}

type LogConfig struct {
	Level    zapcore.Level `yaml:"level"       env:"LEVEL, overwrite"`
	Encoding string        `yaml:"encoding"    env:"ENCODING, overwrite"`
	// Empty means stderr. The terminal editor needs a file here, otherwise
	// log lines tear the screen.
	OutputPath string `yaml:"output_path" env:"OUTPUT_PATH, overwrite"`
}

type ServerConfig struct {
	Addr            string        `yaml:"addr"             env:"ADDR, overwrite"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"READ_TIMEOUT, overwrite"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"WRITE_TIMEOUT, overwrite"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SHUTDOWN_TIMEOUT, overwrite"`
	// Upper bound for import request bodies, in bytes
	BodyLimit int `yaml:"body_limit" env:"BODY_LIMIT, overwrite"`
}

type CircuitBreakerConfig struct {
	Enabled            bool          `yaml:"enabled"             env:"ENABLE, overwrite"`
	MaxRequests        uint32        `yaml:"max_requests"        env:"MAX_REQUESTS, overwrite"`
	ConsecutiveFailure uint32        `yaml:"consecutive_failure" env:"CONSECUTIVE_FAILURE, overwrite"`
	Interval           time.Duration `yaml:"interval"            env:"INTERVAL, overwrite"`
	Timeout            time.Duration `yaml:"timeout"             env:"TIMEOUT, overwrite"`
}

type SourceConfig struct {
	// Timeout of a single HTTP attempt
	Timeout time.Duration `yaml:"timeout"       env:"TIMEOUT, overwrite"`
	// Retries
	NumRetries  uint          `yaml:"num_retries"   env:"N_RETRIES, overwrite"`
	MinWaitTime time.Duration `yaml:"min_wait_time" env:"MIN_WAIT_TIME, overwrite"`
	MaxWaitTime time.Duration `yaml:"max_wait_time" env:"MAX_WAIT_TIME, overwrite"`
	// Documents larger than this are rejected before parsing, in bytes
	MaxSize int64 `yaml:"max_size" env:"MAX_SIZE, overwrite"`

	// Circuit breaker stops hammering a remote that keeps failing.
	CircuitBreaker CircuitBreakerConfig `yaml:"circuit_breaker" env:", prefix=CB_"`
}

type EditorConfig struct {
	ExportDir string `yaml:"export_dir"     env:"EXPORT_DIR, overwrite"`
	// Path or URL imported right after start; empty keeps the defaults
	InitialImport string        `yaml:"initial_import" env:"INITIAL_IMPORT, overwrite"`
	FlashDuration time.Duration `yaml:"flash_duration" env:"FLASH_DURATION, overwrite"`
	PreviewWidth  int           `yaml:"preview_width"  env:"PREVIEW_WIDTH, overwrite"`
}

type TracingConfig struct {
	Enabled     bool   `yaml:"enabled"      env:"ENABLE, overwrite"`
	Endpoint    string `yaml:"endpoint"     env:"ENDPOINT, overwrite"`
	ServiceName string `yaml:"service_name" env:"SERVICE_NAME, overwrite"`
	Insecure    bool   `yaml:"insecure"     env:"INSECURE, overwrite"`
}

// Default returns the settings used for anything neither the file nor the
// environment sets.
func Default() Config {
	return Config{
		Log: LogConfig{
			Level:    zapcore.InfoLevel,
			Encoding: "console",
		},
		Server: ServerConfig{
			Addr:            ":8080",
			ReadTimeout:     10 * time.Second,
			WriteTimeout:    10 * time.Second,
			ShutdownTimeout: 5 * time.Second,
			BodyLimit:       1 << 20,
		},
		Source: SourceConfig{
			Timeout:     5 * time.Second,
			NumRetries:  3,
			MinWaitTime: 200 * time.Millisecond,
			MaxWaitTime: 2 * time.Second,
			MaxSize:     1 << 20,
			CircuitBreaker: CircuitBreakerConfig{
				Enabled:            true,
				MaxRequests:        1,
				ConsecutiveFailure: 5,
				Interval:           time.Minute,
				Timeout:            30 * time.Second,
			},
		},
		Editor: EditorConfig{
			ExportDir:     ".",
			FlashDuration: 1500 * time.Millisecond,
			PreviewWidth:  48,
		},
		Tracing: TracingConfig{
			Endpoint:    "localhost:4317",
			ServiceName: "showroom",
			Insecure:    true,
		},
	}
}

var configPath string

func init() {
	flag.StringVar(&configPath, "config", "", "Path to YAML configuration file")
	_ = godotenv.Load() // load the user-defined `.env` file
}

// Load reads the YAML file named by -config or CONFIG_PATH on top of
// [Default], then applies environment overrides. Without a path only the
// environment is consulted.
func Load(ctx context.Context) (*Config, error) {
	if !flag.Parsed() {
		flag.Parse()
	}
	path := configPath
	if path == "" {
		path = os.Getenv("CONFIG_PATH")
	}

	cfg := Default()
	if path != "" {
		if err := loadYAML(path, &cfg); err != nil {
			return nil, fmt.Errorf("loading configuration from %s: %w", path, err)
		}
	}
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("applying environment overrides: %w", err)
	}
	return &cfg, nil
}

// LoadFromYAML reads path over [Default] without touching the environment.
func LoadFromYAML(path string) (*Config, error) {
	cfg := Default()
	if err := loadYAML(path, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func loadYAML(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("config file does not exist: %w", err)
		}
		return err
	}
	return yaml.Unmarshal(data, cfg)
}
