package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/joho/godotenv"
)

// LoadDotEnv reads KEY=VALUE pairs from the file at path into the process
// environment. Variables already present in the environment are left alone,
// so a deployment can always override the file. A missing file is not an error.
func LoadDotEnv(path string) error {
	if path == "" {
		return nil
	}

	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to load env file %s: %w", path, err)
	}

	return nil
}
