package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/forge-api/internal/config"
	"github.com/KirkDiggler/forge-api/internal/errors"
)

type ConfigTestSuite struct {
	suite.Suite
}

func TestConfigSuite(t *testing.T) {
	suite.Run(t, new(ConfigTestSuite))
}

func (s *ConfigTestSuite) TestDefaults() {
	cfg, err := config.LoadFrom(map[string]string{})
	s.Require().NoError(err)

	s.Equal(50051, cfg.GRPCPort)
	s.Equal("localhost:6379", cfg.RedisAddr)
	s.Equal(2*time.Hour, cfg.SessionTTL)
	s.Zero(cfg.RNGSeed)
	s.Equal("INFO", cfg.Log.Level)
	s.Equal("text", cfg.Log.Format)
	s.Empty(cfg.Log.File)
}

func (s *ConfigTestSuite) TestFromEnvironment() {
	cfg, err := config.LoadFrom(map[string]string{
		"FORGE_GRPC_PORT":   "6000",
		"FORGE_REDIS_ADDR":  "redis:6379",
		"FORGE_SESSION_TTL": "30m",
		"FORGE_RNG_SEED":    "1234",
		"FORGE_LOG_LEVEL":   "debug",
		"FORGE_LOG_FORMAT":  "json",
		"FORGE_LOG_FILE":    "/var/log/forge.log",
	})
	s.Require().NoError(err)

	s.Equal(6000, cfg.GRPCPort)
	s.Equal("redis:6379", cfg.RedisAddr)
	s.Equal(30*time.Minute, cfg.SessionTTL)
	s.Equal(uint64(1234), cfg.RNGSeed)
	s.Equal("debug", cfg.Log.Level)
	s.Equal("json", cfg.Log.Format)
	s.Equal("/var/log/forge.log", cfg.Log.File)
	s.Equal(50, cfg.Log.FileMaxSizeMB)
}

func (s *ConfigTestSuite) TestInvalidValues() {
	testCases := []struct {
		name string
		vars map[string]string
	}{
		{"port not a number", map[string]string{"FORGE_GRPC_PORT": "forge"}},
		{"port out of range", map[string]string{"FORGE_GRPC_PORT": "70000"}},
		{"ttl not a duration", map[string]string{"FORGE_SESSION_TTL": "soon"}},
		{"ttl negative", map[string]string{"FORGE_SESSION_TTL": "-1m"}},
		{"unknown log level", map[string]string{"FORGE_LOG_LEVEL": "TRACE"}},
		{"unknown log format", map[string]string{"FORGE_LOG_FORMAT": "xml"}},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			_, err := config.LoadFrom(tc.vars)
			s.Require().Error(err)
			s.True(errors.IsInvalidArgument(err), "got %v", err)
		})
	}
}
