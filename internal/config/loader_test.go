package config

import (
	"os"
	"path/filepath"
	"testing"

	"gotest.tools/v3/assert"
	is "gotest.tools/v3/assert/cmp"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{EnvNoColor, EnvDebug, EnvMaxAttempts, EnvDateLayout, EnvForm, "NO_COLOR"} {
		if orig, ok := os.LookupEnv(key); ok {
			t.Cleanup(func() { os.Setenv(key, orig) })
		} else {
			t.Cleanup(func() { os.Unsetenv(key) })
		}
		os.Unsetenv(key)
	}
}

func writeEnvFile(t *testing.T, dir, content string) {
	t.Helper()
	assert.NilError(t, os.MkdirAll(filepath.Join(dir, ".conval"), 0755))
	assert.NilError(t, os.WriteFile(filepath.Join(dir, ".conval", "env"), []byte(content), 0644))
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()

	config, err := Load(dir)
	assert.NilError(t, err)
	assert.Check(t, !config.HasEnvFile)
	assert.Check(t, !config.NoColor)
	assert.Check(t, !config.Debug)
	assert.Check(t, is.Equal(config.MaxAttempts, 0))
	assert.Check(t, is.Equal(config.DateLayout, DefaultDateLayout))
	assert.Check(t, is.Equal(config.FormPath, ""))
}

func TestLoadEnvFile(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	writeEnvFile(t, dir, `# settings
export CONVAL_DEBUG=1
CONVAL_MAX_ATTEMPTS=5
CONVAL_DATE_LAYOUT="02/01/2006"
CONVAL_FORM='forms/register.hcl'
`)

	config, err := Load(dir)
	assert.NilError(t, err)
	assert.Check(t, config.HasEnvFile)
	assert.Check(t, config.Debug)
	assert.Check(t, is.Equal(config.MaxAttempts, 5))
	assert.Check(t, is.Equal(config.DateLayout, "02/01/2006"))
	assert.Check(t, is.Equal(config.FormPath, filepath.Join(dir, "forms/register.hcl")))
}

func TestLoadEnvironmentOverridesFile(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	writeEnvFile(t, dir, "CONVAL_MAX_ATTEMPTS=5\nCONVAL_NO_COLOR=1\n")

	os.Setenv(EnvMaxAttempts, "2")
	os.Setenv(EnvNoColor, "false")

	config, err := Load(dir)
	assert.NilError(t, err)
	assert.Check(t, is.Equal(config.MaxAttempts, 2))
	assert.Check(t, !config.NoColor)
}

func TestLoadNoColorConvention(t *testing.T) {
	clearEnv(t)
	os.Setenv("NO_COLOR", "")

	config, err := Load(t.TempDir())
	assert.NilError(t, err)
	assert.Check(t, config.NoColor)
}

func TestLoadMalformedEnvFile(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	writeEnvFile(t, dir, "CONVAL_DEBUG='1\n")

	_, err := Load(dir)
	assert.ErrorContains(t, err, "read ")
}

func TestLoadInvalidMaxAttempts(t *testing.T) {
	clearEnv(t)
	os.Setenv(EnvMaxAttempts, "many")

	_, err := Load(t.TempDir())
	assert.ErrorContains(t, err, EnvMaxAttempts)
}
