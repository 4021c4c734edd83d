package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempJSON(t *testing.T, data map[string]any) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cfg.json")
	b, err := json.Marshal(data)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, b, 0o600))
	return path
}

func Test_parseJson(t *testing.T) {
	t.Run("loads from json", func(t *testing.T) {
		path := writeTempJSON(t, map[string]any{
			"endpoint_addr_grpc": "0.0.0.0:6000",
			"database_dsn":       "postgres://x",
			"max_workers":        20,
			"phrase_length":      24,
			"log_level":          "warn",
			"root_user_email":    "ops@corp.example",
			"shutdown_timeout":   "3s",
		})

		cfg := &Config{}
		cfg.LoadDefaults()
		parseJson(cfg, []string{"-config", path})

		assert.Equal(t, "0.0.0.0:6000", cfg.EndpointAddrGRPC)
		assert.Equal(t, "postgres://x", cfg.DatabaseDSN)
		assert.Equal(t, 20, cfg.MaxWorkers)
		assert.Equal(t, 24, cfg.PhraseLength)
		assert.Equal(t, "warn", cfg.LogLevel)
		assert.Equal(t, "ops@corp.example", cfg.RootUserEmail)
		assert.Equal(t, 3*time.Second, cfg.ShutdownTimeout)
		// untouched keys keep their defaults
		assert.Equal(t, "admin123", cfg.RootUserPassword)
		assert.Equal(t, 3, cfg.TxAttempts)
	})

	t.Run("no config flag, no changes", func(t *testing.T) {
		cfg := &Config{EndpointAddrGRPC: "defaults:1234", MaxWorkers: 2}
		parseJson(cfg, []string{"-a", ":1"})

		assert.Equal(t, "defaults:1234", cfg.EndpointAddrGRPC)
		assert.Equal(t, 2, cfg.MaxWorkers)
	})

	t.Run("invalid JSON panics", func(t *testing.T) {
		bad := filepath.Join(t.TempDir(), "bad.json")
		require.NoError(t, os.WriteFile(bad, []byte(`{ this is not valid json`), 0o600))

		require.Panics(t, func() { parseJson(&Config{}, []string{"-c", bad}) })
	})

	t.Run("missing file panics", func(t *testing.T) {
		require.Panics(t, func() { parseJson(&Config{}, []string{"-c", "/nonexistent/cfg.json"}) })
	})
}
