// Package config loads the server configuration from the environment
package config

import (
	"strings"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/KirkDiggler/forge-api/internal/errors"
)

// Config is the server configuration. Every field can be set from a
// FORGE_* environment variable; command line flags override it.
type Config struct {
	GRPCPort  int    `env:"FORGE_GRPC_PORT" envDefault:"50051"`
	RedisAddr string `env:"FORGE_REDIS_ADDR" envDefault:"localhost:6379"`

	// SessionTTL is how long an untouched forge session is kept
	SessionTTL time.Duration `env:"FORGE_SESSION_TTL" envDefault:"2h"`

	// RNGSeed makes every forge roll replayable when non-zero. Zero uses
	// the rpg-toolkit dice roller.
	RNGSeed uint64 `env:"FORGE_RNG_SEED"`

	Log LogConfig `envPrefix:"FORGE_LOG_"`
}

// LogConfig configures the process logger
type LogConfig struct {
	Level  string `env:"LEVEL" envDefault:"INFO"`
	Format string `env:"FORMAT" envDefault:"text"`

	// File enables a rotating log file in addition to stdout
	File           string `env:"FILE"`
	FileMaxSizeMB  int    `env:"FILE_MAX_SIZE_MB" envDefault:"50"`
	FileMaxBackups int    `env:"FILE_MAX_BACKUPS" envDefault:"3"`
	FileMaxAgeDays int    `env:"FILE_MAX_AGE_DAYS" envDefault:"14"`
}

var (
	logLevels  = []string{"DEBUG", "INFO", "WARN", "WARNING", "ERROR"}
	logFormats = []string{"text", "json"}
)

// Load parses the configuration from the process environment
func Load() (*Config, error) {
	return parse(env.Options{})
}

// LoadFrom parses the configuration from the given variables only
func LoadFrom(vars map[string]string) (*Config, error) {
	return parse(env.Options{Environment: vars})
}

func parse(opts env.Options) (*Config, error) {
	cfg := &Config{}
	if err := env.ParseWithOptions(cfg, opts); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to parse environment")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the values the environment cannot type check
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	errors.ValidateRange("FORGE_GRPC_PORT", c.GRPCPort, 1, 65535, vb)
	errors.ValidateRequired("FORGE_REDIS_ADDR", c.RedisAddr, vb)
	if c.SessionTTL <= 0 {
		vb.InvalidField("FORGE_SESSION_TTL", "must be positive")
	}
	errors.ValidateEnum("FORGE_LOG_LEVEL", strings.ToUpper(c.Log.Level), logLevels, vb)
	errors.ValidateEnum("FORGE_LOG_FORMAT", strings.ToLower(c.Log.Format), logFormats, vb)
	if c.Log.File != "" && c.Log.FileMaxSizeMB <= 0 {
		vb.InvalidField("FORGE_LOG_FILE_MAX_SIZE_MB", "must be positive")
	}

	return vb.Build()
}
