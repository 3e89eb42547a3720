package config

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/spf13/cast"
	"github.com/spf13/viper"
)

const (
	// DefaultTTLMinutes is the pool lifetime used when none (or garbage) is configured
	DefaultTTLMinutes = 30

	envPrefix = "TUNEPOOL"
)

// Config holds all application configuration
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Upstream UpstreamConfig `mapstructure:"upstream"`
	Cache    CacheConfig    `mapstructure:"cache"`
	Logging  LoggingConfig  `mapstructure:"logging"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Addr         string        `mapstructure:"addr"`
	BuildTimeout time.Duration `mapstructure:"build_timeout"` // Upper bound on one pool build
}

// UpstreamConfig holds catalog API configuration
type UpstreamConfig struct {
	BaseURL           string        `mapstructure:"base_url"`
	Timeout           time.Duration `mapstructure:"timeout"`
	RequestsPerSecond float64       `mapstructure:"requests_per_second"` // 0 disables throttling
	Burst             int           `mapstructure:"burst"`
}

// CacheConfig holds pool cache configuration.
// TTLMinutes stays a string so a non-numeric value degrades to the default
// instead of failing the whole config decode.
type CacheConfig struct {
	TTLMinutes string `mapstructure:"ttl_minutes"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	File   string `mapstructure:"file"`   // Empty logs to stderr
	Level  string `mapstructure:"level"`  // DEBUG, INFO, WARN, ERROR
	Format string `mapstructure:"format"` // "json", "text" or "" (auto)
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Addr:         ":8080",
			BuildTimeout: 45 * time.Second,
		},
		Upstream: UpstreamConfig{
			BaseURL:           "https://api.deezer.com",
			Timeout:           15 * time.Second,
			RequestsPerSecond: 8,
			Burst:             3,
		},
		Cache: CacheConfig{
			TTLMinutes: fmt.Sprint(DefaultTTLMinutes),
		},
		Logging: LoggingConfig{
			Level: "INFO",
		},
	}
}

// maxTTLMinutes keeps the minute count inside time.Duration's range.
const maxTTLMinutes = float64(math.MaxInt64 / int64(time.Minute))

// TTL returns the pool cache TTL. The value is decimal minutes and may carry a
// fraction or exponent ("30", "7.5", "1e2"). Missing, non-numeric,
// non-positive or out-of-range values fall back to DefaultTTLMinutes.
func (c CacheConfig) TTL() time.Duration {
	def := time.Duration(DefaultTTLMinutes) * time.Minute

	raw := strings.TrimSpace(c.TTLMinutes)
	// Base prefixes and digit separators are not decimal minutes
	if raw == "" || strings.ContainsAny(raw, "xXoObB_") {
		return def
	}

	minutes, err := cast.ToFloat64E(raw)
	if err != nil || math.IsNaN(minutes) || math.IsInf(minutes, 0) || minutes <= 0 || minutes > maxTTLMinutes {
		return def
	}
	return time.Duration(minutes * float64(time.Minute))
}

// defaultConfigPath returns the default config directory for the current OS
func defaultConfigPath() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "tunepool")
	default:
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, "tunepool")
		}
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", "tunepool")
	}
}

// LoadConfig loads configuration from an optional config.yaml and the environment.
// An explicit path (e.g. from --config) takes precedence over the search path.
func LoadConfig(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v, DefaultConfig())

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(defaultConfigPath())
		v.AddConfigPath(".")
	}

	// Environment variable overrides: TUNEPOOL_CACHE_TTL_MINUTES etc.
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	if err := v.BindEnv("cache.ttl_minutes", envPrefix+"_CACHE_TTL_MINUTES", "POOL_TTL_MINUTES"); err != nil {
		return nil, fmt.Errorf("error binding env: %w", err)
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok || path != "" {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found is OK, use defaults
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("error parsing config: %w", err)
	}

	return cfg, nil
}

// setDefaults registers every key so AutomaticEnv can see it during Unmarshal.
func setDefaults(v *viper.Viper, d *Config) {
	v.SetDefault("server.addr", d.Server.Addr)
	v.SetDefault("server.build_timeout", d.Server.BuildTimeout)

	v.SetDefault("upstream.base_url", d.Upstream.BaseURL)
	v.SetDefault("upstream.timeout", d.Upstream.Timeout)
	v.SetDefault("upstream.requests_per_second", d.Upstream.RequestsPerSecond)
	v.SetDefault("upstream.burst", d.Upstream.Burst)

	v.SetDefault("cache.ttl_minutes", d.Cache.TTLMinutes)

	v.SetDefault("logging.file", d.Logging.File)
	v.SetDefault("logging.level", d.Logging.Level)
	v.SetDefault("logging.format", d.Logging.Format)
}
