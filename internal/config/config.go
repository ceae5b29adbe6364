// Package config loads the client configuration from the user's config
// directory, with environment overrides for scripted use.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Defaults used when no config file exists.
const (
	DefaultBaseURL   = "http://localhost:8000/api"
	DefaultLoginPath = "/login/"
	DefaultHomePath  = "/"
	DefaultTimeout   = 30 * time.Second
)

// Config is the complete client configuration.
type Config struct {
	// BaseURL is the backend API root, without a trailing slash.
	BaseURL string `yaml:"base_url"`

	// TimeoutSeconds bounds every request. Zero means the default.
	TimeoutSeconds int `yaml:"timeout_seconds,omitempty"`

	// LoginPath and HomePath are the navigation targets the guards use.
	LoginPath string `yaml:"login_path,omitempty"`
	HomePath  string `yaml:"home_path,omitempty"`

	// LogLevel and LogFormat configure diagnostic output.
	LogLevel  string `yaml:"log_level,omitempty"`
	LogFormat string `yaml:"log_format,omitempty"`
}

// Default returns the configuration used when nothing else is specified.
func Default() Config {
	return Config{
		BaseURL:   DefaultBaseURL,
		LoginPath: DefaultLoginPath,
		HomePath:  DefaultHomePath,
	}
}

// DefaultPath resolves the per-user config file location.
func DefaultPath() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve config directory: %w", err)
	}
	return filepath.Join(base, "unijobs", "config.yaml"), nil
}

// Load reads the YAML config at path, fills in defaults, and applies
// environment overrides. A missing file yields the defaults, not an error.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("read config file %s: %w", path, err)
		}
	} else {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parse config file %s: %w", path, err)
		}
	}

	applyDefaults(&cfg)
	applyEnv(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.LoginPath == "" {
		cfg.LoginPath = DefaultLoginPath
	}
	if cfg.HomePath == "" {
		cfg.HomePath = DefaultHomePath
	}
}

func applyEnv(cfg *Config) {
	if v := strings.TrimSpace(os.Getenv("UNIJOBS_API_URL")); v != "" {
		cfg.BaseURL = v
	}
	if v := strings.TrimSpace(os.Getenv("UNIJOBS_LOG_LEVEL")); v != "" {
		cfg.LogLevel = v
	}
}

// Validate checks the loaded configuration.
func (c *Config) Validate() error {
	if !strings.HasPrefix(c.BaseURL, "http://") && !strings.HasPrefix(c.BaseURL, "https://") {
		return fmt.Errorf("base_url must be an http(s) URL, got %q", c.BaseURL)
	}
	if c.TimeoutSeconds < 0 {
		return fmt.Errorf("timeout_seconds must not be negative, got %d", c.TimeoutSeconds)
	}
	return nil
}

// Timeout returns the request timeout as a duration.
func (c *Config) Timeout() time.Duration {
	if c.TimeoutSeconds <= 0 {
		return DefaultTimeout
	}
	return time.Duration(c.TimeoutSeconds) * time.Second
}
