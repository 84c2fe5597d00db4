package environment_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/programme-lv/exsubs/internal/environment"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	for _, key := range []string{"EXSUBS_API_URL", "EXERCISM_TOKEN", "EXSUBS_SEPARATOR", "EXSUBS_LOG_LEVEL", "EXSUBS_TIMEOUT"} {
		t.Setenv(key, "")
	}
}

func TestDefaultsWhenNothingConfigured(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()

	cfg, err := environment.ReadConfigFrom(filepath.Join(dir, "config.toml"), filepath.Join(dir, ".env"))
	require.NoError(t, err)
	assert.Equal(t, "https://exercism.org/api/v2", cfg.APIURL)
	assert.Equal(t, ",", cfg.Separator)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Empty(t, cfg.Token)
	assert.Zero(t, cfg.Timeout)
}

func TestTomlThenEnvPrecedence(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	tomlPath := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(tomlPath, []byte(`
api_url = "http://localhost:3000/api/v2"
token = "from-toml"
separator = ";"
timeout = "30s"
`), 0644))
	t.Setenv("EXERCISM_TOKEN", "from-env")

	cfg, err := environment.ReadConfigFrom(tomlPath, filepath.Join(dir, ".env"))
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:3000/api/v2", cfg.APIURL)
	assert.Equal(t, "from-env", cfg.Token)
	assert.Equal(t, ";", cfg.Separator)
	assert.Equal(t, 30*time.Second, cfg.Timeout)
}

func TestDotenvFileIsLoaded(t *testing.T) {
	clearEnv(t)
	os.Unsetenv("EXSUBS_LOG_LEVEL")
	dir := t.TempDir()
	dotenv := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(dotenv, []byte("EXSUBS_LOG_LEVEL=debug\n"), 0644))

	cfg, err := environment.ReadConfigFrom(filepath.Join(dir, "config.toml"), dotenv)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestInvalidValuesAreRejected(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	tomlPath := filepath.Join(dir, "config.toml")

	require.NoError(t, os.WriteFile(tomlPath, []byte(`separator = "::"`), 0644))
	_, err := environment.ReadConfigFrom(tomlPath, filepath.Join(dir, ".env"))
	require.Error(t, err)

	require.NoError(t, os.WriteFile(tomlPath, []byte(`api_url = `), 0644))
	_, err = environment.ReadConfigFrom(tomlPath, filepath.Join(dir, ".env"))
	require.Error(t, err)

	require.NoError(t, os.WriteFile(tomlPath, nil, 0644))
	t.Setenv("EXSUBS_TIMEOUT", "soon")
	_, err = environment.ReadConfigFrom(tomlPath, filepath.Join(dir, ".env"))
	require.Error(t, err)
}
