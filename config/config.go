// Package config loads server settings from defaults, an optional TOML or
// YAML file, a .env file and OMEGA_* environment variables, in that order of
// increasing precedence. Command-line flags are applied on top by the CLI.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/Cleawwy/Project-Omega/apperrors"
)

// EnvPrefix prefixes every environment variable read by Load.
const EnvPrefix = "OMEGA_"

// Config is the complete runtime configuration.
type Config struct {
	Server  ServerConfig  `toml:"server" yaml:"server"`
	Graph   GraphConfig   `toml:"graph" yaml:"graph"`
	Log     LogConfig     `toml:"log" yaml:"log"`
	Compare CompareConfig `toml:"compare" yaml:"compare"`
}

// ServerConfig configures the public API and admin listeners.
type ServerConfig struct {
	Addr      string `toml:"addr" yaml:"addr"`
	AdminAddr string `toml:"admin_addr" yaml:"admin_addr"` // empty disables the admin listener

	// Durations use Go syntax, e.g. "10s" or "1m".
	RequestTimeout string `toml:"request_timeout" yaml:"request_timeout"`
	ReadTimeout    string `toml:"read_timeout" yaml:"read_timeout"`
	WriteTimeout   string `toml:"write_timeout" yaml:"write_timeout"`

	// AllowedOrigins lists CORS origins; "*" allows all.
	AllowedOrigins []string `toml:"allowed_origins" yaml:"allowed_origins"`

	// Mode is the gin mode: debug, release or test.
	Mode string `toml:"mode" yaml:"mode"`
}

// GraphConfig locates the road network.
type GraphConfig struct {
	Path string `toml:"path" yaml:"path"`
}

// LogConfig configures the logger.
type LogConfig struct {
	Level  string `toml:"level" yaml:"level"`
	Format string `toml:"format" yaml:"format"`
}

// CompareConfig configures /api/compare.
type CompareConfig struct {
	// Parallelism bounds how many strategies run at once. 1 runs them
	// sequentially, which keeps runtime measurements free of contention.
	Parallelism int `toml:"parallelism" yaml:"parallelism"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Addr:           ":8080",
			AdminAddr:      ":9090",
			RequestTimeout: "30s",
			ReadTimeout:    "10s",
			WriteTimeout:   "60s",
			AllowedOrigins: []string{"*"},
			Mode:           "release",
		},
		Graph: GraphConfig{
			Path: "data/kl_graph.json",
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
		Compare: CompareConfig{
			Parallelism: 1,
		},
	}
}

// Load builds the configuration. path may be empty, in which case only
// defaults and the environment apply. A .env file in the working directory
// is loaded if present; variables already set in the environment win.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		if err := cfg.loadFile(path); err != nil {
			return nil, err
		}
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if _, err := toml.Decode(string(data), c); err != nil {
			return apperrors.Wrap(apperrors.ErrCodeInvalidConfig, err, "failed to parse %s", path)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, c); err != nil {
			return apperrors.Wrap(apperrors.ErrCodeInvalidConfig, err, "failed to parse %s", path)
		}
	default:
		return apperrors.New(apperrors.ErrCodeInvalidConfig,
			"unsupported config file extension %q", filepath.Ext(path))
	}
	return nil
}

func (c *Config) applyEnv() error {
	strs := map[string]*string{
		"SERVER_ADDR":            &c.Server.Addr,
		"SERVER_ADMIN_ADDR":      &c.Server.AdminAddr,
		"SERVER_REQUEST_TIMEOUT": &c.Server.RequestTimeout,
		"SERVER_READ_TIMEOUT":    &c.Server.ReadTimeout,
		"SERVER_WRITE_TIMEOUT":   &c.Server.WriteTimeout,
		"SERVER_MODE":            &c.Server.Mode,
		"GRAPH_PATH":             &c.Graph.Path,
		"LOG_LEVEL":              &c.Log.Level,
		"LOG_FORMAT":             &c.Log.Format,
	}
	for key, dst := range strs {
		if v, ok := os.LookupEnv(EnvPrefix + key); ok {
			*dst = v
		}
	}

	if v, ok := os.LookupEnv(EnvPrefix + "SERVER_ALLOWED_ORIGINS"); ok {
		c.Server.AllowedOrigins = splitList(v)
	}

	if v, ok := os.LookupEnv(EnvPrefix + "COMPARE_PARALLELISM"); ok {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return apperrors.Wrap(apperrors.ErrCodeInvalidConfig, err,
				"%sCOMPARE_PARALLELISM must be an integer", EnvPrefix)
		}
		c.Compare.Parallelism = n
	}
	return nil
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	if c.Server.Addr == "" {
		return apperrors.New(apperrors.ErrCodeInvalidConfig, "server.addr must not be empty")
	}
	if c.Graph.Path == "" {
		return apperrors.New(apperrors.ErrCodeInvalidConfig, "graph.path must not be empty")
	}
	for name, raw := range map[string]string{
		"server.request_timeout": c.Server.RequestTimeout,
		"server.read_timeout":    c.Server.ReadTimeout,
		"server.write_timeout":   c.Server.WriteTimeout,
	} {
		if d, err := time.ParseDuration(raw); err != nil || d <= 0 {
			return apperrors.New(apperrors.ErrCodeInvalidConfig, "%s: invalid duration %q", name, raw)
		}
	}
	for _, origin := range c.Server.AllowedOrigins {
		if origin != "*" && !strings.HasPrefix(origin, "http://") && !strings.HasPrefix(origin, "https://") {
			return apperrors.New(apperrors.ErrCodeInvalidConfig,
				"server.allowed_origins: %q must be \"*\" or start with http:// or https://", origin)
		}
	}
	switch c.Server.Mode {
	case "debug", "release", "test":
	default:
		return apperrors.New(apperrors.ErrCodeInvalidConfig, "server.mode: unknown mode %q", c.Server.Mode)
	}
	if c.Compare.Parallelism < 1 {
		return apperrors.New(apperrors.ErrCodeInvalidConfig,
			"compare.parallelism must be at least 1, got %d", c.Compare.Parallelism)
	}
	return nil
}

// GetRequestTimeout returns the per-request deadline. Call Validate first;
// an unparsable value yields the default.
func (s ServerConfig) GetRequestTimeout() time.Duration {
	return parseDuration(s.RequestTimeout, 30*time.Second)
}

// GetReadTimeout returns the HTTP read timeout.
func (s ServerConfig) GetReadTimeout() time.Duration {
	return parseDuration(s.ReadTimeout, 10*time.Second)
}

// GetWriteTimeout returns the HTTP write timeout.
func (s ServerConfig) GetWriteTimeout() time.Duration {
	return parseDuration(s.WriteTimeout, 60*time.Second)
}

func parseDuration(raw string, def time.Duration) time.Duration {
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		return def
	}
	return d
}
