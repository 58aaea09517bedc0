package config

import (
	"errors"
	"io/fs"

	"github.com/joho/godotenv"
)

// LoadDotEnv loads a .env file into the process environment. An empty path
// means ".env" in the current directory, and a file that does not exist is
// skipped silently. godotenv never overrides variables already set.
func LoadDotEnv(path string) error {
	err := MustLoadDotEnv(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}

// MustLoadDotEnv is LoadDotEnv for callers that require the file to exist.
func MustLoadDotEnv(path string) error {
	if path == "" {
		path = ".env"
	}
	return godotenv.Load(path)
}

// LoadConfig resolves the full application configuration: defaults, then the
// optional .env file, then process environment variables.
func LoadConfig(envPath string) (AppConfig, error) {
	if err := LoadDotEnv(envPath); err != nil {
		return AppConfig{}, err
	}
	envCfg, err := LoadFromEnv()
	if err != nil {
		return AppConfig{}, err
	}
	return envCfg.ToAppConfig(), nil
}
