// Package config loads runtime configuration for groupctl.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. GROUPCTL_* environment variables (see parseEnv).
//  4. Global command-line flags (see parseFlags), which override earlier values.
//
// # JSON schema
//
// Durations use timex.Duration, so values can be either strings like "2s" or
// integer nanoseconds:
//
//	{
//	  "server_endpoint_addr": "127.0.0.1:50051",
//	  "retry_attempts": 3,
//	  "retry_backoff": "2s",
//	  "call_timeout": "10s",
//	  "database_dsn": "postgres://...",
//	  "log_level": "warn"
//	}
package config
