// Package config loads CLI and server settings from an optional YAML file
// and NFASIM_* environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/aretw0/nfasim/internal/logging"
	"github.com/aretw0/nfasim/pkg/domain"
	"github.com/aretw0/nfasim/pkg/persistence/middleware"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// DefaultPath is read when no file is named explicitly and it exists.
const DefaultPath = "nfasim.yaml"

// Store backends.
const (
	StoreMemory = "memory"
	StoreFile   = "file"
	StoreRedis  = "redis"
)

// Config holds every setting. Precedence: flags > environment > file > defaults.
type Config struct {
	LogLevel       string      `mapstructure:"log_level"`
	UnknownSymbols string      `mapstructure:"unknown_symbols"`
	Format         string      `mapstructure:"format"`
	Store          string      `mapstructure:"store"`
	RunsDir        string      `mapstructure:"runs_dir"`
	EncryptionKey  string      `mapstructure:"encryption_key"` // base64 AES-256 key; empty disables encryption
	Redis          RedisConfig `mapstructure:"redis"`
	HTTP           HTTPConfig  `mapstructure:"http"`
}

// RedisConfig configures the redis run store.
type RedisConfig struct {
	Addr     string        `mapstructure:"addr"`
	Password string        `mapstructure:"password"`
	DB       int           `mapstructure:"db"`
	TTL      time.Duration `mapstructure:"ttl"`
	Prefix   string        `mapstructure:"prefix"`
}

// HTTPConfig configures the HTTP server.
type HTTPConfig struct {
	Port            int           `mapstructure:"port"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		LogLevel:       "info",
		UnknownSymbols: string(domain.PolicyStrict),
		Format:         "text",
		Store:          StoreMemory,
		RunsDir:        ".nfasim/runs",
		Redis: RedisConfig{
			Addr:   "localhost:6379",
			Prefix: "nfasim:run:",
		},
		HTTP: HTTPConfig{
			Port:            8080,
			ShutdownTimeout: 5 * time.Second,
		},
	}
}

// envKeys maps environment variables to dotted config keys.
var envKeys = []struct{ env, key string }{
	{"NFASIM_LOG_LEVEL", "log_level"},
	{"NFASIM_UNKNOWN_SYMBOLS", "unknown_symbols"},
	{"NFASIM_FORMAT", "format"},
	{"NFASIM_STORE", "store"},
	{"NFASIM_RUNS_DIR", "runs_dir"},
	{"NFASIM_ENCRYPTION_KEY", "encryption_key"},
	{"NFASIM_REDIS_ADDR", "redis.addr"},
	{"NFASIM_REDIS_PASSWORD", "redis.password"},
	{"NFASIM_REDIS_DB", "redis.db"},
	{"NFASIM_REDIS_TTL", "redis.ttl"},
	{"NFASIM_REDIS_PREFIX", "redis.prefix"},
	{"NFASIM_HTTP_PORT", "http.port"},
	{"NFASIM_HTTP_SHUTDOWN_TIMEOUT", "http.shutdown_timeout"},
}

// Load reads path (or DefaultPath when path is empty and the file exists),
// applies the environment and validates the result.
func Load(path string) (Config, error) {
	raw := map[string]any{}

	explicit := path != ""
	if !explicit {
		path = DefaultPath
	}
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return Config{}, fmt.Errorf("failed to parse %s: %w", path, err)
		}
		if raw == nil {
			raw = map[string]any{}
		}
	case errors.Is(err, os.ErrNotExist) && !explicit:
	default:
		return Config{}, fmt.Errorf("failed to read config: %w", err)
	}

	for _, ek := range envKeys {
		if v, ok := os.LookupEnv(ek.env); ok {
			set(raw, ek.key, v)
		}
	}

	cfg := Default()
	if err := Decode(raw, &cfg); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Decode applies raw settings over cfg. Unknown keys are an error.
func Decode(raw map[string]any, cfg *Config) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook:       mapstructure.StringToTimeDurationHookFunc(),
		WeaklyTypedInput: true,
		ErrorUnused:      true,
		Result:           cfg,
	})
	if err != nil {
		return err
	}
	return decoder.Decode(raw)
}

func set(raw map[string]any, dotted, value string) {
	parts := strings.Split(dotted, ".")
	m := raw
	for _, p := range parts[:len(parts)-1] {
		next, ok := m[p].(map[string]any)
		if !ok {
			next = map[string]any{}
			m[p] = next
		}
		m = next
	}
	m[parts[len(parts)-1]] = value
}

// Validate checks enumerations and ranges.
func (c Config) Validate() error {
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	if _, ok := domain.ParsePolicy(c.UnknownSymbols); !ok {
		return fmt.Errorf("invalid unknown_symbols %q (want strict or lenient)", c.UnknownSymbols)
	}
	switch c.Format {
	case "text", "json":
	default:
		return fmt.Errorf("invalid format %q (want text or json)", c.Format)
	}
	switch c.Store {
	case StoreMemory, StoreFile, StoreRedis:
	default:
		return fmt.Errorf("invalid store %q (want memory, file or redis)", c.Store)
	}
	if c.EncryptionKey != "" {
		if _, err := middleware.ParseKey(c.EncryptionKey); err != nil {
			return err
		}
	}
	if c.HTTP.Port < 0 || c.HTTP.Port > 65535 {
		return fmt.Errorf("invalid http.port %d", c.HTTP.Port)
	}
	return nil
}

// Policy returns the configured unknown-symbol policy.
func (c Config) Policy() domain.UnknownSymbolPolicy {
	p, _ := domain.ParsePolicy(c.UnknownSymbols)
	return p
}
