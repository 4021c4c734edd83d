package config

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	tests := []struct {
		expected    *Config
		name        string
		args        []string
		rest        []string
		expectPanic bool
	}{
		{
			name: "all flags",
			args: []string{"-a", "127.0.0.1:9090", "-r", "5", "-b", "100ms", "-d", "postgres://x", "-l", "debug", "admin", "user-list"},
			rest: []string{"admin", "user-list"},
			expected: &Config{ServerEndpointAddr: "127.0.0.1:9090", RetryAttempts: 5, RetryBackoff: 100 * time.Millisecond,
				DatabaseDSN: "postgres://x", LogLevel: "debug"},
		},
		{
			name:     "config file flag is accepted",
			args:     []string{"-c", "cfg.json", "check"},
			rest:     []string{"check"},
			expected: &Config{},
		},
		{name: "bad backoff", args: []string{"-b", "soon"}, expectPanic: true},
		{name: "unknown flag", args: []string{"-x", "check"}, expectPanic: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := &Config{}

			if tt.expectPanic {
				require.Panics(t, func() { parseFlags(config, tt.args) })
				return
			}

			var rest []string
			require.NotPanics(t, func() { rest = parseFlags(config, tt.args) })
			assert.Empty(t, cmp.Diff(config, tt.expected))
			assert.Equal(t, tt.rest, rest)
		})
	}
}
