package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

// DotEnvFile is loaded from the working directory when it exists. Variables
// already set in the environment are not overridden.
var DotEnvFile = ".env"

// parseEnv overlays cfg with the ESTATEHUB_* environment variables. Unset
// variables leave the current values in place.
func parseEnv(cfg *Config) error {
	if err := godotenv.Load(DotEnvFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load %s: %w", DotEnvFile, err)
	}
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("parse environment: %w", err)
	}
	return nil
}
