package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("SPLITLEDGER_JWT_SECRET", "test-secret-test-secret")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:8080", cfg.Server.Addr())
	assert.Equal(t, "release", cfg.Server.Mode)
	assert.Equal(t, "./data/splitledger.db", cfg.Database.Path)
	assert.Equal(t, 24*time.Hour, cfg.JWT.Expiry)
	assert.Equal(t, "splitledger", cfg.JWT.Issuer)
	assert.Equal(t, "USD", cfg.Currency)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("SPLITLEDGER_JWT_SECRET", "test-secret-test-secret")
	t.Setenv("SPLITLEDGER_SERVER_PORT", "9090")
	t.Setenv("SPLITLEDGER_CURRENCY", "EUR")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "EUR", cfg.Currency)
	assert.Equal(t, "test-secret-test-secret", cfg.JWT.Secret)
}

// The secret must load from the environment alone: production runs with
// no config file at all.
func TestLoadSecretFromEnvOnly(t *testing.T) {
	t.Setenv("SPLITLEDGER_JWT_SECRET", "env-only-secret")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "env-only-secret", cfg.JWT.Secret)
}

func TestLoadConfigFile(t *testing.T) {
	t.Setenv("SPLITLEDGER_JWT_SECRET", "test-secret-test-secret")

	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := "server:\n  port: 7070\nlog:\n  format: json\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 7070, cfg.Server.Port)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestLoadRequiresSecret(t *testing.T) {
	t.Setenv("SPLITLEDGER_JWT_SECRET", "")

	_, err := Load("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "jwt.secret")
}
