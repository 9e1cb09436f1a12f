package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config holds all service configuration. Values come from an optional YAML
// file, overridden by environment variables, with sane defaults for local
// development.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Mongo    MongoConfig    `yaml:"mongo"`
	Redis    RedisConfig    `yaml:"redis"`
	Advisory AdvisoryConfig `yaml:"advisory"`
	Auth     AuthConfig     `yaml:"auth"`
}

type ServerConfig struct {
	Port string `yaml:"port"`
}

type MongoConfig struct {
	URI      string `yaml:"uri"`
	Database string `yaml:"database"`
}

type RedisConfig struct {
	Addr string `yaml:"addr"`
}

// AdvisoryConfig configures the remote advisory AI service. Step resolution
// uses the short timeout; report synthesis is more expensive and gets the
// longer one.
type AdvisoryConfig struct {
	BaseURL         string `yaml:"baseUrl"`
	APIKey          string `yaml:"-"` // env only, never serialized
	StepTimeoutMS   int    `yaml:"stepTimeoutMs"`
	ReportTimeoutMS int    `yaml:"reportTimeoutMs"`
}

type AuthConfig struct {
	Username  string `yaml:"username"`
	Password  string `yaml:"password"`
	JWTSecret string `yaml:"-"` // env only
}

// Default returns the built-in defaults
func Default() *Config {
	return &Config{
		Server: ServerConfig{Port: "8080"},
		Mongo: MongoConfig{
			URI:      "mongodb://localhost:27017",
			Database: "finadvisor",
		},
		Redis: RedisConfig{Addr: "localhost:6379"},
		Advisory: AdvisoryConfig{
			BaseURL:         "",
			StepTimeoutMS:   3000,
			ReportTimeoutMS: 10000,
		},
		Auth: AuthConfig{
			Username:  "admin",
			Password:  "password123",
			JWTSecret: "super-secret-key-change-in-production",
		},
	}
}

// Load reads the optional YAML file at path, applies environment overrides
// and validates the result. An empty path skips the file entirely.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config file: %w", err)
		}
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() {
	setString(&c.Server.Port, "PORT")
	setString(&c.Mongo.URI, "MONGO_URI")
	setString(&c.Mongo.Database, "MONGO_DB")
	setString(&c.Redis.Addr, "REDIS_URI")
	setString(&c.Advisory.BaseURL, "ADVISORY_BASE_URL")
	setString(&c.Advisory.APIKey, "ADVISORY_API_KEY")
	setInt(&c.Advisory.StepTimeoutMS, "ADVISORY_STEP_TIMEOUT_MS")
	setInt(&c.Advisory.ReportTimeoutMS, "ADVISORY_REPORT_TIMEOUT_MS")
	setString(&c.Auth.Username, "AUTH_USERNAME")
	setString(&c.Auth.Password, "AUTH_PASSWORD")
	setString(&c.Auth.JWTSecret, "JWT_SECRET")

	// tolerate redis:// prefixed addresses
	if len(c.Redis.Addr) > 8 && c.Redis.Addr[:8] == "redis://" {
		c.Redis.Addr = c.Redis.Addr[8:]
	}
}

// Validate checks the loaded configuration for values the service cannot
// start with
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("server port must not be empty")
	}
	if c.Mongo.URI == "" {
		return fmt.Errorf("mongo uri must not be empty")
	}
	if c.Redis.Addr == "" {
		return fmt.Errorf("redis addr must not be empty")
	}
	if c.Advisory.StepTimeoutMS <= 0 {
		return fmt.Errorf("advisory step timeout must be positive, got %d", c.Advisory.StepTimeoutMS)
	}
	if c.Advisory.ReportTimeoutMS < c.Advisory.StepTimeoutMS {
		return fmt.Errorf("advisory report timeout (%d) must not be shorter than the step timeout (%d)",
			c.Advisory.ReportTimeoutMS, c.Advisory.StepTimeoutMS)
	}
	return nil
}

// IsEnabled reports whether a remote advisory endpoint is configured at all;
// without one every call resolves through the local tables
func (a *AdvisoryConfig) IsEnabled() bool {
	return a.BaseURL != ""
}

func setString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func setInt(dst *int, key string) {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			*dst = n
		}
	}
}
