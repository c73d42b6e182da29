// Package config resolves conval settings from .conval/env, the environment and flags.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Environment variable names.
const (
	EnvNoColor     = "CONVAL_NO_COLOR"
	EnvDebug       = "CONVAL_DEBUG"
	EnvMaxAttempts = "CONVAL_MAX_ATTEMPTS"
	EnvDateLayout  = "CONVAL_DATE_LAYOUT"
	EnvForm        = "CONVAL_FORM"
)

// DefaultDateLayout is used by the date command when no format is given.
const DefaultDateLayout = "2006-01-02"

// Config holds resolved settings. Flags are applied on top by the CLI.
type Config struct {
	Dir         string
	NoColor     bool
	Debug       bool
	MaxAttempts int
	DateLayout  string
	FormPath    string
	HasEnvFile  bool
}

// Load resolves configuration for a working directory. Values from
// <dir>/.conval/env are overridden by the process environment.
// A missing .conval/ directory is not an error.
func Load(dir string) (*Config, error) {
	config := &Config{
		Dir:        filepath.Join(dir, ".conval"),
		DateLayout: DefaultDateLayout,
	}

	values := make(map[string]string)
	if envFile := filepath.Join(config.Dir, "env"); fileExists(envFile) {
		fileValues, err := godotenv.Read(envFile)
		if err != nil {
			return config, fmt.Errorf("read %s: %w", envFile, err)
		}
		values = fileValues
		config.HasEnvFile = true
	}

	for _, key := range []string{EnvNoColor, EnvDebug, EnvMaxAttempts, EnvDateLayout, EnvForm, "NO_COLOR"} {
		if v, ok := os.LookupEnv(key); ok {
			values[key] = v
		}
	}

	// NO_COLOR is honored when set to anything, per no-color.org
	if _, ok := values["NO_COLOR"]; ok {
		config.NoColor = true
	}
	if v, ok := values[EnvNoColor]; ok {
		config.NoColor = truthy(v)
	}
	config.Debug = truthy(values[EnvDebug])

	if v := values[EnvMaxAttempts]; v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return config, fmt.Errorf("%s: invalid attempt count %q", EnvMaxAttempts, v)
		}
		config.MaxAttempts = n
	}
	if v := values[EnvDateLayout]; v != "" {
		config.DateLayout = v
	}
	if v := values[EnvForm]; v != "" {
		config.FormPath = v
		if !filepath.IsAbs(v) {
			config.FormPath = filepath.Join(dir, v)
		}
	}

	return config, nil
}

func truthy(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
