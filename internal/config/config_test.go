package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv unsets a variable for the duration of the test. t.Setenv is used
// first so the original value is restored afterwards.
func clearEnv(t *testing.T, key string) {
	t.Helper()
	t.Setenv(key, "")
	require.NoError(t, os.Unsetenv(key))
}

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{
		"BASE_SAS_URL", "OUTPUT_DIR",
		"CONNECT_TIMEOUT_SECONDS", "REQUEST_TIMEOUT_SECONDS", "LOG_LEVEL",
	} {
		clearEnv(t, key)
	}

	cfg := Load()

	assert.Empty(t, cfg.SASURL)
	assert.Equal(t, "downloads", cfg.OutputDir)
	assert.Equal(t, 10*time.Second, cfg.ConnectTimeout)
	assert.Equal(t, 120*time.Second, cfg.RequestTimeout)
	assert.Equal(t, 256*1024, cfg.ChunkSize)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("BASE_SAS_URL", "https://acct.blob.example.net/reports?sv=1&sig=s")
	t.Setenv("OUTPUT_DIR", "/tmp/reports")
	t.Setenv("CONNECT_TIMEOUT_SECONDS", "3")
	t.Setenv("REQUEST_TIMEOUT_SECONDS", "45")
	t.Setenv("LOG_LEVEL", "debug")

	cfg := Load()

	assert.Equal(t, "https://acct.blob.example.net/reports?sv=1&sig=s", cfg.SASURL)
	assert.Equal(t, "/tmp/reports", cfg.OutputDir)
	assert.Equal(t, 3*time.Second, cfg.ConnectTimeout)
	assert.Equal(t, 45*time.Second, cfg.RequestTimeout)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoad_IgnoresUnparsableTimeouts(t *testing.T) {
	t.Setenv("CONNECT_TIMEOUT_SECONDS", "soon")
	t.Setenv("REQUEST_TIMEOUT_SECONDS", "-5")

	cfg := Load()

	assert.Equal(t, 10*time.Second, cfg.ConnectTimeout)
	assert.Equal(t, 120*time.Second, cfg.RequestTimeout)
}

func TestLoad_DotEnvDoesNotOverrideExistingEnv(t *testing.T) {
	dir := t.TempDir()
	dotenv := "BASE_SAS_URL=https://file.example.net/c?sig=fromfile\n" +
		"OUTPUT_DIR=from-file\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte(dotenv), 0o644))

	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	// Already set in the environment: the .env value must lose.
	t.Setenv("BASE_SAS_URL", "https://env.example.net/c?sig=fromenv")
	// Not set: the .env value must win.
	clearEnv(t, "OUTPUT_DIR")

	cfg := Load()

	assert.Equal(t, "https://env.example.net/c?sig=fromenv", cfg.SASURL)
	assert.Equal(t, "from-file", cfg.OutputDir)
}

func TestValidate(t *testing.T) {
	cfg := Load()
	require.NoError(t, cfg.Validate())

	cfg.OutputDir = ""
	assert.Error(t, cfg.Validate())

	cfg = Load()
	cfg.ChunkSize = 0
	assert.Error(t, cfg.Validate())

	cfg = Load()
	cfg.RequestTimeout = 0
	assert.Error(t, cfg.Validate())
}
