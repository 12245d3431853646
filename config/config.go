// Package config loads the TOML configuration shared by the agenda CLI and
// the MCP server.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
)

//go:embed sample_config.toml
var sampleConfig string

// Log contains configuration for log output.
type Log struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

// Server contains configuration for the MCP server transports.
type Server struct {
	HTTPAddress  string `toml:"http_address"`
	EndpointPath string `toml:"endpoint_path"`
	Stdio        bool   `toml:"stdio"`
}

// Fetch contains configuration for downloading agendas.
type Fetch struct {
	TimeoutSeconds int    `toml:"timeout_seconds"`
	UserAgent      string `toml:"user_agent"`
	MaxBodyBytes   int64  `toml:"max_body_bytes"`
}

// Config is the root configuration.
type Config struct {
	Log    Log    `toml:"log"`
	Server Server `toml:"server"`
	Fetch  Fetch  `toml:"fetch"`
}

// Load reads and validates the configuration at path. Keys missing from the
// file keep their defaults; an empty path yields the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()

	path = strings.TrimSpace(path)
	if path != "" {
		file, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file)
		decoder.DisallowUnknownFields()
		if err := decoder.Decode(&cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	cfg.normalize()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) normalize() {
	c.Log.Level = strings.ToLower(strings.TrimSpace(c.Log.Level))
	c.Log.Format = strings.ToLower(strings.TrimSpace(c.Log.Format))
	c.Server.HTTPAddress = strings.TrimSpace(c.Server.HTTPAddress)
	c.Server.EndpointPath = strings.TrimSpace(c.Server.EndpointPath)
	if c.Server.EndpointPath != "" && !strings.HasPrefix(c.Server.EndpointPath, "/") {
		c.Server.EndpointPath = "/" + c.Server.EndpointPath
	}
	c.Fetch.UserAgent = strings.TrimSpace(c.Fetch.UserAgent)
}

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level %q must be one of debug, info, warn, error", c.Log.Level)
	}
	switch c.Log.Format {
	case "console", "json":
	default:
		return fmt.Errorf("log.format %q must be console or json", c.Log.Format)
	}
	if c.Server.EndpointPath == "" {
		return errors.New("server.endpoint_path must be set")
	}
	if c.Fetch.TimeoutSeconds < 0 {
		return errors.New("fetch.timeout_seconds must be zero or positive")
	}
	if c.Fetch.MaxBodyBytes < 0 {
		return errors.New("fetch.max_body_bytes must be zero or positive")
	}
	return nil
}

// FetchTimeout returns the download timeout; zero means none.
func (c *Config) FetchTimeout() time.Duration {
	return time.Duration(c.Fetch.TimeoutSeconds) * time.Second
}

// Sample returns the commented sample configuration.
func Sample() string {
	return sampleConfig
}

// CreateSample writes the sample configuration to path.
func CreateSample(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}
	}
	if err := os.WriteFile(path, []byte(sampleConfig), 0o644); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}
