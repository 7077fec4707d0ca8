package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apierrors "github.com/diogo/emailai/internal/errors"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, name := range []string{EnvAPIKey, EnvLegacyAPIKey, EnvModel, EnvEndpoint, EnvLogLevel} {
		t.Setenv(name, "")
	}
}

func TestApplyEnv_Precedence(t *testing.T) {
	clearEnv(t)
	old := BuildAPIKey
	BuildAPIKey = "build-key"
	t.Cleanup(func() { BuildAPIKey = old })

	cfg := ApplyEnv(DefaultConfig())
	assert.Equal(t, "build-key", cfg.APIKey, "build key is the last fallback")

	cfg = ApplyEnv(Config{APIKey: "file-key"})
	assert.Equal(t, "file-key", cfg.APIKey, "file beats build key")

	t.Setenv(EnvLegacyAPIKey, "legacy-key")
	cfg = ApplyEnv(Config{APIKey: "file-key"})
	assert.Equal(t, "legacy-key", cfg.APIKey, "env beats file")

	t.Setenv(EnvAPIKey, "env-key")
	cfg = ApplyEnv(Config{APIKey: "file-key"})
	assert.Equal(t, "env-key", cfg.APIKey, "primary env name wins")
}

func TestApplyEnv_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvModel, "gemini-1.5-flash")
	t.Setenv(EnvEndpoint, "http://localhost:9999")
	t.Setenv(EnvLogLevel, "debug")

	cfg := ApplyEnv(DefaultConfig())
	assert.Equal(t, "gemini-1.5-flash", cfg.DefaultModel)
	assert.Equal(t, "http://localhost:9999", cfg.Endpoint)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadDotEnv(t *testing.T) {
	clearEnv(t)
	require.NoError(t, os.Unsetenv(EnvAPIKey))

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte(EnvAPIKey+"=dotenv-key\n"), 0o600))

	LoadDotEnv(path, filepath.Join(t.TempDir(), "missing.env"))
	t.Cleanup(func() { _ = os.Unsetenv(EnvAPIKey) })

	assert.Equal(t, "dotenv-key", os.Getenv(EnvAPIKey))
}

func TestLoadDotEnv_DoesNotOverrideExisting(t *testing.T) {
	t.Setenv(EnvAPIKey, "already-set")

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte(EnvAPIKey+"=dotenv-key\n"), 0o600))

	LoadDotEnv(path)
	assert.Equal(t, "already-set", os.Getenv(EnvAPIKey))
}

func TestRequireAPIKey(t *testing.T) {
	err := Config{}.RequireAPIKey()
	require.Error(t, err)
	assert.True(t, errors.Is(err, apierrors.ErrNoAPIKey))

	assert.NoError(t, Config{APIKey: "k"}.RequireAPIKey())
	assert.Error(t, Config{APIKey: "   "}.RequireAPIKey())
}

func TestResolve(t *testing.T) {
	clearEnv(t)
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())
	t.Setenv(EnvAPIKey, "resolved-key")

	cfg, err := Resolve()
	require.NoError(t, err)
	assert.Equal(t, "resolved-key", cfg.APIKey)
	assert.Equal(t, DefaultConfig().DefaultModel, cfg.DefaultModel)
}
