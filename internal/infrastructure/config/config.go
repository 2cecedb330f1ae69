package config

import (
	"fmt"
	"os"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/pelletier/go-toml/v2"
)

// Config holds all application configuration.
type Config struct {
	Server    ServerConfig    `toml:"server"`
	Logging   LogConfig       `toml:"logging"`
	RateLimit RateLimitConfig `toml:"rate_limit"`
	Client    ClientConfig    `toml:"client"`
	Query     QueryConfig     `toml:"query"`
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Port string `envconfig:"PORT" default:"8000" toml:"port"`
	Host string `envconfig:"HOST" default:"0.0.0.0" toml:"host"`
	Gzip bool   `envconfig:"SERVER_GZIP" default:"true" toml:"gzip"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level       string `envconfig:"LOG_LEVEL" default:"info" toml:"level"`
	Development bool   `envconfig:"LOG_DEV" default:"false" toml:"development"`
}

// RateLimitConfig holds rate limiting configuration.
type RateLimitConfig struct {
	RequestsPerSecond int  `envconfig:"RATE_LIMIT_RPS" default:"100" toml:"requests_per_second"`
	Burst             int  `envconfig:"RATE_LIMIT_BURST" default:"200" toml:"burst"`
	Enabled           bool `envconfig:"RATE_LIMIT_ENABLED" default:"true" toml:"enabled"`
	// Global shares one bucket across all clients instead of one per IP
	Global            bool `envconfig:"RATE_LIMIT_GLOBAL" default:"false" toml:"global"`
}

// ClientConfig holds outbound HTTP client configuration.
type ClientConfig struct {
	Timeout           time.Duration `envconfig:"CLIENT_TIMEOUT" default:"30s" toml:"timeout"`
	Retries           int           `envconfig:"CLIENT_RETRIES" default:"3" toml:"retries"`
	UserAgent         string        `envconfig:"CLIENT_USER_AGENT" default:"AgentOS-HTTP/1.0" toml:"user_agent"`
	RequestsPerSecond float64       `envconfig:"CLIENT_RPS" default:"0" toml:"requests_per_second"`
}

// QueryConfig bounds query string handling.
type QueryConfig struct {
	MaxLength int `envconfig:"QUERY_MAX_LENGTH" default:"8192" toml:"max_length"`
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return &cfg, nil
}

// LoadOrDefault loads configuration from environment or returns default.
func LoadOrDefault() *Config {
	cfg, err := Load()
	if err != nil {
		return Default()
	}
	return cfg
}

// LoadFile reads a TOML file on top of the defaults. Keys missing from the
// file keep their default values.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return cfg, nil
}

// Default returns default configuration.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Port: "8000",
			Host: "0.0.0.0",
			Gzip: true,
		},
		Logging: LogConfig{
			Level:       "info",
			Development: false,
		},
		RateLimit: RateLimitConfig{
			RequestsPerSecond: 100,
			Burst:             200,
			Enabled:           true,
		},
		Client: ClientConfig{
			Timeout:   30 * time.Second,
			Retries:   3,
			UserAgent: "AgentOS-HTTP/1.0",
		},
		Query: QueryConfig{
			MaxLength: 8192,
		},
	}
}
