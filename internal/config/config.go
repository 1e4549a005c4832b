// Package config loads the service configuration.
//
// Sources, highest priority first:
//  1. explicit --config path;
//  2. CONFIG_PATH;
//  3. ./local.yaml;
//  4. environment only (cleanenv).
package config

import (
	"fmt"
	"net"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Store drivers.
const (
	DriverMemory   = "memory"
	DriverSpanner  = "spanner"
	DriverPostgres = "postgres"
)

type Config struct {
	Env      string        `yaml:"env" env:"ENV" env-default:"local"`
	HTTP     HTTPConfig    `yaml:"http"`
	GRPC     GRPCConfig    `yaml:"grpc"`
	Metrics  MetricsConfig `yaml:"metrics"`
	Store    StoreConfig   `yaml:"store"`
	Timeouts TimeoutConfig `yaml:"timeouts"`
	Contact  ContactConfig `yaml:"contact"`
}

// HTTPConfig is the public REST listener.
type HTTPConfig struct {
	Host string `yaml:"host" env:"HTTP_HOST" env-default:"0.0.0.0"`
	Port string `yaml:"port" env:"HTTP_PORT" env-default:"8080"`
}

func (h HTTPConfig) Addr() string { return net.JoinHostPort(h.Host, h.Port) }

// GRPCConfig is the gRPC listener.
type GRPCConfig struct {
	Host string `yaml:"host" env:"GRPC_HOST" env-default:"0.0.0.0"`
	Port string `yaml:"port" env:"GRPC_PORT" env-default:"50051"`
}

func (g GRPCConfig) Addr() string { return net.JoinHostPort(g.Host, g.Port) }

// MetricsConfig is the separate listener for probes and Prometheus.
type MetricsConfig struct {
	Host string `yaml:"host" env:"METRICS_HOST" env-default:"0.0.0.0"`
	Port string `yaml:"port" env:"METRICS_PORT" env-default:"9090"`
}

func (m MetricsConfig) Addr() string { return net.JoinHostPort(m.Host, m.Port) }

// StoreConfig selects the record store backend.
type StoreConfig struct {
	Driver          string `yaml:"driver" env:"STORE_DRIVER" env-default:"memory"`
	SpannerDatabase string `yaml:"spanner_database" env:"SPANNER_DATABASE"`
	PostgresDSN     string `yaml:"postgres_dsn" env:"POSTGRES_DSN"`
}

// TimeoutConfig bounds request handling and shutdown.
type TimeoutConfig struct {
	Request  time.Duration `yaml:"request" env:"REQUEST_TIMEOUT" env-default:"15s"`
	Shutdown time.Duration `yaml:"shutdown" env:"SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// ContactConfig is the per-IP inquiry rate limit.
type ContactConfig struct {
	MaxAttempts int           `yaml:"max_attempts" env:"CONTACT_MAX_ATTEMPTS" env-default:"3"`
	Window      time.Duration `yaml:"window" env:"CONTACT_WINDOW" env-default:"10m"`
}

// Validate checks values cleanenv cannot express.
func (c *Config) Validate() error {
	switch c.Store.Driver {
	case DriverMemory:
	case DriverSpanner:
		if c.Store.SpannerDatabase == "" {
			return fmt.Errorf("store.spanner_database is required for the spanner driver")
		}
	case DriverPostgres:
		if c.Store.PostgresDSN == "" {
			return fmt.Errorf("store.postgres_dsn is required for the postgres driver")
		}
	default:
		return fmt.Errorf("unknown store driver %q", c.Store.Driver)
	}

	if c.Contact.MaxAttempts < 1 {
		return fmt.Errorf("contact.max_attempts must be positive")
	}
	if c.Contact.Window <= 0 {
		return fmt.Errorf("contact.window must be positive")
	}
	return nil
}

// MustLoad panics when the configuration cannot be loaded.
func MustLoad(path string) *Config {
	cfg, err := Load(path)
	if err != nil {
		panic(err)
	}
	return cfg
}

func Load(path string) (*Config, error) {
	var cfg Config

	read := func(p string) (*Config, error) {
		if _, err := os.Stat(p); err != nil {
			return nil, fmt.Errorf("config file %q stat failed: %w", p, err)
		}
		if err := cleanenv.ReadConfig(p, &cfg); err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("failed to overlay env: %w", err)
		}
		return validated(&cfg)
	}

	if path != "" {
		return read(path)
	}
	if envPath := os.Getenv("CONFIG_PATH"); envPath != "" {
		return read(envPath)
	}
	if _, err := os.Stat("local.yaml"); err == nil {
		return read("local.yaml")
	}

	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("config not found: provide --config, CONFIG_PATH, local.yaml or env vars: %w", err)
	}
	return validated(&cfg)
}

func validated(cfg *Config) (*Config, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}
