package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

// EnvPrefix namespaces the client variables, e.g. GROUPCTL_SERVER_ADDR.
const EnvPrefix = "GROUPCTL"

type EnvConfig struct {
	ServerEndpointAddr *string        `envconfig:"SERVER_ADDR"`
	RetryAttempts      *int           `envconfig:"RETRY_ATTEMPTS"`
	RetryBackoff       *time.Duration `envconfig:"RETRY_BACKOFF"`
	CallTimeout        *time.Duration `envconfig:"CALL_TIMEOUT"`
	DatabaseDSN        *string        `envconfig:"DATABASE_DSN"`
	LogLevel           *string        `envconfig:"LOG_LEVEL"`
}

// parseEnv overlays cfg with the GROUPCTL_* variables that are set.
func parseEnv(cfg *Config) {
	c := &EnvConfig{}
	if err := envconfig.Process(EnvPrefix, c); err != nil {
		panic(err)
	}

	if c.ServerEndpointAddr != nil {
		cfg.ServerEndpointAddr = *c.ServerEndpointAddr
	}
	if c.RetryAttempts != nil {
		cfg.RetryAttempts = *c.RetryAttempts
	}
	if c.RetryBackoff != nil {
		cfg.RetryBackoff = *c.RetryBackoff
	}
	if c.CallTimeout != nil {
		cfg.CallTimeout = *c.CallTimeout
	}
	if c.DatabaseDSN != nil {
		cfg.DatabaseDSN = *c.DatabaseDSN
	}
	if c.LogLevel != nil {
		cfg.LogLevel = *c.LogLevel
	}
}
