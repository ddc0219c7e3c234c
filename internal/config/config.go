// Package config loads dcmaster settings from defaults, an optional YAML
// file and DC_* environment variables, in that order of precedence.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/jeffreywbertke/DC/internal/circuit"
)

// Config holds all configuration for dcmaster.
type Config struct {
	LogLevel string         `yaml:"log_level"`
	DBPath   string         `yaml:"db_path"`
	Server   ServerConfig   `yaml:"server"`
	LLM      LLMConfig      `yaml:"llm"`
	Practice PracticeConfig `yaml:"practice"`

	// Path is the file the config was read from, empty if none.
	Path string `yaml:"-"`
}

// ServerConfig holds HTTP API configuration.
type ServerConfig struct {
	Addr           string        `yaml:"addr"`
	AllowedOrigins []string      `yaml:"allowed_origins"`
	RequestTimeout time.Duration `yaml:"request_timeout"`
	// SessionTTL is how long an untouched API session is kept.
	SessionTTL time.Duration `yaml:"session_ttl"`
}

// LLMConfig selects the tutor backend. API keys are only read from the
// environment.
type LLMConfig struct {
	Provider string        `yaml:"provider"`
	Model    string        `yaml:"model"`
	Timeout  time.Duration `yaml:"timeout"`
}

// PracticeConfig sets the starting state of a practice session.
type PracticeConfig struct {
	Topology circuit.Topology `yaml:"topology"`

	// Seed makes problem sequences reproducible. Zero seeds from the clock.
	Seed uint64 `yaml:"seed"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		LogLevel: "info",
		Server: ServerConfig{
			Addr:           ":8080",
			AllowedOrigins: []string{"*"},
			RequestTimeout: 60 * time.Second,
			SessionTTL:     2 * time.Hour,
		},
		Practice: PracticeConfig{
			Topology: circuit.Series,
		},
	}
}

// Load reads the config file at path, then applies DC_* environment
// overrides. An empty path falls back to DefaultPath, and a missing
// default file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = DefaultPath()
	}

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return Config{}, fmt.Errorf("parse %s: %w", path, err)
			}
			cfg.Path = path
		case errors.Is(err, fs.ErrNotExist) && !explicit:
		default:
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return Config{}, err
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config validation failed: %w", err)
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	c.LogLevel = getEnv("DC_LOG_LEVEL", c.LogLevel)
	c.DBPath = getEnv("DC_DB", c.DBPath)
	c.Server.Addr = getEnv("DC_SERVER_ADDR", c.Server.Addr)
	c.Server.RequestTimeout = getEnvAsDuration("DC_SERVER_TIMEOUT", c.Server.RequestTimeout)
	c.Server.SessionTTL = getEnvAsDuration("DC_SESSION_TTL", c.Server.SessionTTL)
	c.Practice.Seed = getEnvAsUint("DC_SEED", c.Practice.Seed)

	if v, ok := os.LookupEnv("DC_TOPOLOGY"); ok && v != "" {
		t, err := circuit.ParseTopology(v)
		if err != nil {
			return fmt.Errorf("DC_TOPOLOGY: %w", err)
		}
		c.Practice.Topology = t
	}
	return nil
}

// Validate checks the configuration.
func (c Config) Validate() error {
	if _, err := zapcore.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid log_level %q", c.LogLevel)
	}
	if c.Server.Addr == "" {
		return fmt.Errorf("server.addr is required")
	}
	if c.Server.RequestTimeout < 0 || c.Server.SessionTTL < 0 || c.LLM.Timeout < 0 {
		return fmt.Errorf("timeouts must not be negative")
	}
	switch c.Practice.Topology {
	case circuit.Series, circuit.Parallel, circuit.Combination:
	default:
		return fmt.Errorf("invalid practice.topology %d", int(c.Practice.Topology))
	}
	return nil
}

// DefaultPath returns DC_CONFIG if set, else config.yaml under the XDG
// config directory. It returns "" when no home directory can be found.
func DefaultPath() string {
	if p := os.Getenv("DC_CONFIG"); p != "" {
		return p
	}
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, "dcmaster", "config.yaml")
}

// LoadDotEnv loads .env files into the process environment without
// overriding variables that are already set. Missing files are skipped.
func LoadDotEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, p := range paths {
		if err := godotenv.Load(p); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("load %s: %w", p, err)
		}
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsUint(key string, defaultValue uint64) uint64 {
	if value, exists := os.LookupEnv(key); exists {
		if v, err := strconv.ParseUint(value, 10, 64); err == nil {
			return v
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
