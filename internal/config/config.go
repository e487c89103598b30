// Package config loads runtime settings from the environment.
//
// Variables use the REQSCHEMA_ prefix, and underscores after the prefix
// become koanf key separators:
//
//	REQSCHEMA_PRIMARY_ENV=production   -> primary.env
//	REQSCHEMA_LOGGING_LEVEL=debug      -> logging.level
//	REQSCHEMA_SCHEMAS_DIR=./schemas    -> schemas.dir
//	REQSCHEMA_SERVER_TIMEOUT_READ=10   -> server.timeout.read
//
// A .env file in the working directory is loaded first when present.
package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix is the prefix shared by every configuration variable.
const EnvPrefix = "REQSCHEMA_"

// Config is the root configuration object.
type Config struct {
	Primary Primary       `koanf:"primary" validate:"required"`
	Logging LoggingConfig `koanf:"logging" validate:"required"`
	Server  ServerConfig  `koanf:"server" validate:"required"`
	Schemas SchemasConfig `koanf:"schemas"`
}

// Primary describes the runtime environment.
type Primary struct {
	Env string `koanf:"env" validate:"required,oneof=local development test production"`
}

// LoggingConfig controls the zerolog output.
type LoggingConfig struct {
	Level  string `koanf:"level" validate:"required,oneof=debug info warn error"`
	Format string `koanf:"format" validate:"required,oneof=json console"`
}

// ServerConfig groups settings for the HTTP server run by `reqschema serve`.
// Timeouts are in seconds.
type ServerConfig struct {
	Port    string        `koanf:"port" validate:"required,numeric"`
	Timeout TimeoutConfig `koanf:"timeout" validate:"required"`
}

type TimeoutConfig struct {
	Read  int `koanf:"read" validate:"required,min=1"`
	Write int `koanf:"write" validate:"required,min=1"`
	Idle  int `koanf:"idle" validate:"required,min=1"`
}

// SchemasConfig points at extra YAML schema definitions loaded on top of
// the embedded ones. Empty means embedded only.
type SchemasConfig struct {
	Dir string `koanf:"dir"`
}

// Default returns the configuration used when nothing is set.
func Default() *Config {
	return &Config{
		Primary: Primary{Env: "development"},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
		Server: ServerConfig{
			Port: "8080",
			Timeout: TimeoutConfig{
				Read:  30,
				Write: 30,
				Idle:  60,
			},
		},
	}
}

// IsProduction reports whether the process runs in production.
func (c *Config) IsProduction() bool {
	return c.Primary.Env == "production"
}

// Load reads REQSCHEMA_* variables over the defaults and validates the result.
func Load() (*Config, error) {
	k := koanf.New(".")

	err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "_", ".")
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("could not load env variables: %w", err)
	}

	cfg := Default()
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("could not unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks cfg against its struct rules. Call it again after
// overriding values from flags.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}
	return nil
}
