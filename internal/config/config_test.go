package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	for _, key := range []string{"TIPCALC_ADDR", "DB_PATH", "LOG_LEVEL", "LOG_FORMAT", "JWT_SECRET"} {
		t.Setenv(key, "")
	}

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, "./data/tipcalc.db", cfg.Database.Path)
	assert.Equal(t, []float64{5, 10, 15, 25, 50}, cfg.Presets)
	assert.Equal(t, 24*time.Hour, cfg.Auth.TokenTTL)
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tipcalc.yaml")
	content := `
server:
  addr: ":9090"
  shutdown_timeout: 3s
logging:
  level: debug
  format: json
presets: [10, 18, 20]
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Server.Addr)
	assert.Equal(t, 3*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, []float64{10, 18, 20}, cfg.Presets)
	// Untouched sections keep their defaults
	assert.Equal(t, "./data/tipcalc.db", cfg.Database.Path)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tipcalc.yaml")
	require.NoError(t, os.WriteFile(path, []byte("database:\n  path: /from/file.db\n"), 0600))

	t.Setenv("DB_PATH", "/from/env.db")
	t.Setenv("TIPCALC_ADDR", ":7000")
	t.Setenv("JWT_SECRET", "s3cret")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "/from/env.db", cfg.Database.Path)
	assert.Equal(t, ":7000", cfg.Server.Addr)
	assert.Equal(t, "s3cret", cfg.Auth.JWTSecret)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "malformed yaml", content: "server: [unclosed"},
		{name: "unknown log format", content: "logging:\n  format: xml\n"},
		{name: "preset out of range", content: "presets: [15, 120]\n"},
		{name: "non-positive token ttl", content: "auth:\n  token_ttl: 0s\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "tipcalc.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0600))

			_, err := Load(path)
			assert.Error(t, err)
		})
	}
}

func TestSave_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "tipcalc.yaml")
	cfg := DefaultConfig()
	cfg.Server.Addr = ":1234"
	cfg.Presets = []float64{12.5}

	require.NoError(t, cfg.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, ":1234", loaded.Server.Addr)
	assert.Equal(t, []float64{12.5}, loaded.Presets)
}
