// Package config resolves the CLI configuration from defaults, an optional
// YAML file under the BinHarry home directory, an optional .env file, and
// environment variables (highest precedence).
package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/binharry/binharry-cli/internal/errors"
)

// DefaultAPIURL is the backend used when nothing else is configured.
// Matches the development default of the BinHarry platform.
const DefaultAPIURL = "http://localhost:8787"

// Environment variable names
const (
	EnvHome   = "BINHARRY_HOME"
	EnvAPIURL = "BINHARRY_API_URL"
)

// Config holds the CLI configuration
type Config struct {
	// APIURL is the base URL of the BinHarry backend API
	APIURL string `yaml:"api_url"`

	// LogLevel is the minimum log level (debug, info, warn, error)
	LogLevel string `yaml:"log_level"`

	// LogFormat is the log output format (json, text)
	LogFormat string `yaml:"log_format"`
}

// Default returns the built-in configuration
func Default() Config {
	return Config{
		APIURL:    DefaultAPIURL,
		LogLevel:  "warn",
		LogFormat: "text",
	}
}

// Home returns the BinHarry home directory (~/.binharry by default,
// overridable with BINHARRY_HOME).
func Home() (string, error) {
	if dir := os.Getenv(EnvHome); dir != "" {
		return dir, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeConfigRead, "cannot resolve home directory", err)
	}
	return filepath.Join(home, ".binharry"), nil
}

// Path returns the location of the config file
func Path() (string, error) {
	dir, err := Home()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// Load resolves the effective configuration.
//
// Precedence, lowest to highest: built-in defaults, ~/.binharry/config.yaml,
// .env in the working directory, process environment.
func Load() (Config, error) {
	cfg := Default()

	path, err := Path()
	if err != nil {
		return cfg, err
	}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Default(), errors.Wrap(errors.ErrCodeConfigInvalid, "invalid config file: "+path, err).
				WithSuggestion("Fix the YAML syntax or delete the file to fall back to defaults")
		}
	case os.IsNotExist(err):
		// No file is fine; defaults apply.
	default:
		return cfg, errors.NewConfigReadError(path, err)
	}

	// .env is optional and only fills variables not already set.
	_ = godotenv.Load()

	if url := os.Getenv(EnvAPIURL); url != "" {
		cfg.APIURL = url
	}

	if cfg.APIURL == "" {
		cfg.APIURL = DefaultAPIURL
	}

	return cfg, nil
}

// Save writes the configuration to the config file, creating the home
// directory if needed.
func (c Config) Save() error {
	dir, err := Home()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errors.Wrap(errors.ErrCodeFileWriteFailed, "cannot create config directory: "+dir, err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return errors.Wrap(errors.ErrCodeConfigInvalid, "cannot encode config", err)
	}

	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrap(errors.ErrCodeFileWriteFailed, "cannot write config file: "+path, err)
	}
	return nil
}
