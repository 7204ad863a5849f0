package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/campusnav/dijkstra"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config aggregates application configuration values.
type Config struct {
	Map     MapConfig     `yaml:"map"`
	HTTP    HTTPConfig    `yaml:"http"`
	Logging LoggingConfig `yaml:"logging"`
	Engine  EngineConfig  `yaml:"engine"`
}

// MapConfig points at the campus map file. Empty Path selects the
// built-in reference campus.
type MapConfig struct {
	Path string `yaml:"path"`
}

// HTTPConfig governs HTTP server behaviour.
type HTTPConfig struct {
	Host            string        `yaml:"host"`
	Port            int           `yaml:"port"`
	ReadTimeout     time.Duration `yaml:"read_timeout"`
	WriteTimeout    time.Duration `yaml:"write_timeout"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
	MetricsEnabled  bool          `yaml:"metrics_enabled"`
}

// LoggingConfig controls structured logging settings.
type LoggingConfig struct {
	Level         string `yaml:"level"`
	Format        string `yaml:"format"` // text|json
	IncludeCaller bool   `yaml:"include_caller"`
}

// EngineConfig tunes the shortest-path engine.
type EngineConfig struct {
	Strategy string `yaml:"strategy"` // linear|heap
	Parallel int    `yaml:"parallel"` // table workers; 0 = GOMAXPROCS
}

const (
	defaultHost            = "127.0.0.1"
	defaultPort            = 8080
	defaultReadTimeout     = 10 * time.Second
	defaultWriteTimeout    = 15 * time.Second
	defaultIdleTimeout     = 60 * time.Second
	defaultShutdownTimeout = 10 * time.Second
	defaultLoggingLevel    = "info"
	defaultLoggingFormat   = "text"
	defaultStrategy        = "linear"
)

// envPrefix namespaces every environment override.
const envPrefix = "CAMPUSNAV_"

// Default returns the configuration used when nothing is overridden.
func Default() Config {
	return Config{
		HTTP: HTTPConfig{
			Host:            defaultHost,
			Port:            defaultPort,
			ReadTimeout:     defaultReadTimeout,
			WriteTimeout:    defaultWriteTimeout,
			IdleTimeout:     defaultIdleTimeout,
			ShutdownTimeout: defaultShutdownTimeout,
			MetricsEnabled:  true,
		},
		Logging: LoggingConfig{
			Level:  defaultLoggingLevel,
			Format: defaultLoggingFormat,
		},
		Engine: EngineConfig{
			Strategy: defaultStrategy,
		},
	}
}

// Load is Read followed by Validate.
func Load(path string) (Config, error) {
	cfg, err := Read(path)
	if err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Read builds the configuration in three layers: defaults, then the YAML
// file at path (skipped when path is empty), then CAMPUSNAV_* environment
// variables. Callers that add further layers validate afterwards.
func Read(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config yaml: %w", err)
		}
	}

	if err := applyEnv(&cfg); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks value ranges and enumerations.
func (c Config) Validate() error {
	if c.HTTP.Port <= 0 || c.HTTP.Port > 65535 {
		return fmt.Errorf("%w: port %d is out of range", ErrInvalidConfig, c.HTTP.Port)
	}
	if _, err := dijkstra.ParseStrategy(c.Engine.Strategy); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if c.Engine.Parallel < 0 {
		return fmt.Errorf("%w: parallel must be ≥ 0, got %d", ErrInvalidConfig, c.Engine.Parallel)
	}
	switch strings.ToLower(c.Logging.Format) {
	case "text", "json":
	default:
		return fmt.Errorf("%w: log format %q, want text or json", ErrInvalidConfig, c.Logging.Format)
	}

	return nil
}

// Strategy returns the parsed engine strategy. Call after Validate.
func (c Config) Strategy() dijkstra.Strategy {
	s, _ := dijkstra.ParseStrategy(c.Engine.Strategy)
	return s
}

// Addr returns host:port for the HTTP listener.
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

func applyEnv(cfg *Config) error {
	cfg.Map.Path = valueOrDefault("MAP", cfg.Map.Path)
	cfg.HTTP.Host = valueOrDefault("HTTP_HOST", cfg.HTTP.Host)
	cfg.Logging.Level = valueOrDefault("LOG_LEVEL", cfg.Logging.Level)
	cfg.Logging.Format = valueOrDefault("LOG_FORMAT", cfg.Logging.Format)
	cfg.Engine.Strategy = valueOrDefault("STRATEGY", cfg.Engine.Strategy)

	var err error
	if cfg.HTTP.MetricsEnabled, err = parseBoolWithDefault("METRICS_ENABLED", cfg.HTTP.MetricsEnabled); err != nil {
		return err
	}
	if cfg.Logging.IncludeCaller, err = parseBoolWithDefault("LOG_INCLUDE_CALLER", cfg.Logging.IncludeCaller); err != nil {
		return err
	}
	if cfg.Engine.Parallel, err = parseIntWithDefault("PARALLEL", cfg.Engine.Parallel); err != nil {
		return err
	}
	if cfg.HTTP.Port, err = parseIntWithDefault("HTTP_PORT", cfg.HTTP.Port); err != nil {
		return err
	}

	durations := []struct {
		key string
		dst *time.Duration
	}{
		{"HTTP_READ_TIMEOUT", &cfg.HTTP.ReadTimeout},
		{"HTTP_WRITE_TIMEOUT", &cfg.HTTP.WriteTimeout},
		{"HTTP_IDLE_TIMEOUT", &cfg.HTTP.IdleTimeout},
		{"HTTP_SHUTDOWN_TIMEOUT", &cfg.HTTP.ShutdownTimeout},
	}
	for _, d := range durations {
		if v := os.Getenv(envPrefix + d.key); v != "" {
			parsed, err := time.ParseDuration(v)
			if err != nil {
				return fmt.Errorf("%w: invalid %s%s: %w", ErrInvalidConfig, envPrefix, d.key, err)
			}
			*d.dst = parsed
		}
	}

	return nil
}

func valueOrDefault(key, fallback string) string {
	if v := os.Getenv(envPrefix + key); v != "" {
		return v
	}
	return fallback
}

func parseBoolWithDefault(key string, fallback bool) (bool, error) {
	if v := os.Getenv(envPrefix + key); v != "" {
		val, err := strconv.ParseBool(v)
		if err != nil {
			return fallback, fmt.Errorf("%w: invalid %s%s value %q: %w", ErrInvalidConfig, envPrefix, key, v, err)
		}
		return val, nil
	}
	return fallback, nil
}

func parseIntWithDefault(key string, fallback int) (int, error) {
	if v := os.Getenv(envPrefix + key); v != "" {
		val, err := strconv.Atoi(v)
		if err != nil {
			return fallback, fmt.Errorf("%w: invalid %s%s value %q: %w", ErrInvalidConfig, envPrefix, key, v, err)
		}
		return val, nil
	}
	return fallback, nil
}
