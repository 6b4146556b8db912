package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Backend names accepted in .cartconfig.yaml.
const (
	BackendFile     = "file"
	BackendMemory   = "memory"
	BackendRedis    = "redis"
	BackendPostgres = "postgres"
)

const (
	// userConfigFile is the name of the user configuration file (sibling to .cart/).
	userConfigFile = ".cartconfig.yaml"

	// Default configuration values
	DefaultBackend        = BackendFile
	DefaultRedisAddr      = "localhost:6379"
	DefaultNATSSubject    = "blububb.cart.changed"
	DefaultCurrencyPrefix = "Rp "
	DefaultLocale         = "id-ID"
	DefaultToastEnterMS   = 10
	DefaultToastDisplayMS = 2500
	DefaultToastFadeMS    = 300
	DefaultPopupDelayMS   = 3000
)

// Config represents user configuration from .cartconfig.yaml.
// This file is user-managed and never written by cart.
type Config struct {
	// Backend selects where the cart document is kept.
	Backend string `yaml:"backend"`

	RedisAddr     string `yaml:"redis_addr"`
	RedisPassword string `yaml:"redis_password"`
	RedisDB       int    `yaml:"redis_db"`

	PostgresDSN string `yaml:"postgres_dsn"`

	// NATSURL enables change notifications when set.
	NATSURL     string `yaml:"nats_url"`
	NATSSubject string `yaml:"nats_subject"`

	CurrencyPrefix string `yaml:"currency_prefix"`
	Locale         string `yaml:"locale"`

	ToastEnterMS   int `yaml:"toast_enter_ms"`
	ToastDisplayMS int `yaml:"toast_duration_ms"`
	ToastFadeMS    int `yaml:"toast_fade_ms"`
	PopupDelayMS   int `yaml:"popup_delay_ms"`
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		Backend:        DefaultBackend,
		RedisAddr:      DefaultRedisAddr,
		NATSSubject:    DefaultNATSSubject,
		CurrencyPrefix: DefaultCurrencyPrefix,
		Locale:         DefaultLocale,
		ToastEnterMS:   DefaultToastEnterMS,
		ToastDisplayMS: DefaultToastDisplayMS,
		ToastFadeMS:    DefaultToastFadeMS,
		PopupDelayMS:   DefaultPopupDelayMS,
	}
}

// Validate checks values that would otherwise fail later at connect time.
func (c *Config) Validate() error {
	switch c.Backend {
	case BackendFile, BackendMemory:
	case BackendRedis:
		if c.RedisAddr == "" {
			return fmt.Errorf("redis backend requires redis_addr")
		}
	case BackendPostgres:
		if c.PostgresDSN == "" {
			return fmt.Errorf("postgres backend requires postgres_dsn")
		}
	default:
		return fmt.Errorf("unknown backend %q (expected file, memory, redis or postgres)", c.Backend)
	}
	if c.ToastEnterMS < 0 || c.ToastDisplayMS < 0 || c.ToastFadeMS < 0 || c.PopupDelayMS < 0 {
		return fmt.Errorf("durations must not be negative")
	}
	return nil
}

// ToastEnter returns the delay before a toast becomes visible.
func (c *Config) ToastEnter() time.Duration {
	return time.Duration(c.ToastEnterMS) * time.Millisecond
}

// ToastDisplay returns how long a toast stays visible.
func (c *Config) ToastDisplay() time.Duration {
	return time.Duration(c.ToastDisplayMS) * time.Millisecond
}

// ToastFade returns the exit transition length of a toast.
func (c *Config) ToastFade() time.Duration {
	return time.Duration(c.ToastFadeMS) * time.Millisecond
}

// PopupDelay returns the delay before the promotional popup opens.
func (c *Config) PopupDelay() time.Duration {
	return time.Duration(c.PopupDelayMS) * time.Millisecond
}

// LoadConfig loads .cartconfig.yaml if it exists, otherwise returns defaults.
// The config file is a sibling to .cart/ (in the same directory).
// Partial config files are merged with defaults.
func (s *Storage) LoadConfig() (*Config, error) {
	return LoadConfigFile(s.ConfigPath())
}

// LoadConfigFile loads a config file from path, merged over the defaults.
// A missing file yields the defaults.
func LoadConfigFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", filepath.Base(path), err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", filepath.Base(path), err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid %s: %w", filepath.Base(path), err)
	}

	return cfg, nil
}

// ConfigPath returns the path to the user config file.
func (s *Storage) ConfigPath() string {
	return filepath.Join(s.root, userConfigFile)
}
