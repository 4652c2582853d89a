package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/sandeepkv93/todo/internal/model"
)

const DefaultEndpoint = "https://jsonplaceholder.typicode.com/users/1/todos"

var ErrInvalidConfig = errors.New("config: invalid configuration")

type RuntimeConfig struct {
	Endpoint  string        `toml:"endpoint"`
	Timeout   time.Duration `toml:"-"`
	LogFile   string        `toml:"log_file"`
	LogLevel  string        `toml:"log_level"`
	Filter    string        `toml:"filter"`
	UserAgent string        `toml:"user_agent"`
}

// fileConfig mirrors RuntimeConfig for TOML decoding; durations are written
// as whole seconds in the file.
type fileConfig struct {
	RuntimeConfig
	TimeoutSeconds int `toml:"timeout_seconds"`
}

func DefaultRuntimeConfig() RuntimeConfig {
	return RuntimeConfig{
		Endpoint:  DefaultEndpoint,
		Timeout:   10 * time.Second,
		LogFile:   ".todo.log",
		LogLevel:  "info",
		Filter:    string(model.FilterAll),
		UserAgent: "todo/dev",
	}
}

// RuntimeConfigFromFile overlays the values set in a TOML file onto base.
// A missing file is not an error.
func RuntimeConfigFromFile(base RuntimeConfig, path string) (RuntimeConfig, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return base, nil
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return base, nil
		}
		return base, fmt.Errorf("stat config %s: %w", path, err)
	}
	fc := fileConfig{RuntimeConfig: base}
	if _, err := toml.DecodeFile(path, &fc); err != nil {
		return base, fmt.Errorf("decode config %s: %w", path, err)
	}
	cfg := fc.RuntimeConfig
	if fc.TimeoutSeconds > 0 {
		cfg.Timeout = time.Duration(fc.TimeoutSeconds) * time.Second
	}
	return cfg, nil
}

func RuntimeConfigFromEnv(base RuntimeConfig) RuntimeConfig {
	cfg := base
	if v, ok := getEnvString("TODO_ENDPOINT"); ok {
		cfg.Endpoint = v
	}
	if v, ok := getEnvInt("TODO_TIMEOUT_SECONDS"); ok && v > 0 {
		cfg.Timeout = time.Duration(v) * time.Second
	}
	if v, ok := getEnvString("TODO_LOG_FILE"); ok {
		cfg.LogFile = v
	}
	if v, ok := getEnvString("TODO_LOG_LEVEL"); ok {
		cfg.LogLevel = v
	}
	if v, ok := getEnvString("TODO_FILTER"); ok {
		cfg.Filter = v
	}
	return cfg
}

// ConfigPathFromEnv returns the TOML file named by TODO_CONFIG, or
// "todo.toml" in the working directory.
func ConfigPathFromEnv() string {
	if v, ok := getEnvString("TODO_CONFIG"); ok {
		return v
	}
	return "todo.toml"
}

func (c RuntimeConfig) Validate() error {
	u, err := url.Parse(strings.TrimSpace(c.Endpoint))
	if err != nil {
		return fmt.Errorf("%w: endpoint: %v", ErrInvalidConfig, err)
	}
	switch u.Scheme {
	case "http", "https":
		if u.Host == "" {
			return fmt.Errorf("%w: endpoint %q has no host", ErrInvalidConfig, c.Endpoint)
		}
	case "sqlite":
		if u.Host+u.Path == "" {
			return fmt.Errorf("%w: endpoint %q has no database path", ErrInvalidConfig, c.Endpoint)
		}
	default:
		return fmt.Errorf("%w: unsupported endpoint scheme %q", ErrInvalidConfig, u.Scheme)
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("%w: timeout must be positive", ErrInvalidConfig)
	}
	if _, err := model.ParseFilterMode(c.Filter); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}

func getEnvString(name string) (string, bool) {
	raw := strings.TrimSpace(os.Getenv(name))
	if raw == "" {
		return "", false
	}
	return raw, true
}

func getEnvInt(name string) (int, bool) {
	raw, ok := getEnvString(name)
	if !ok {
		return 0, false
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return v, true
}
