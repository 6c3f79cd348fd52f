package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

const defaultDotEnvPath = ".env"

// LoadDotEnv seeds the process environment from DOTENV_PATH (default .env).
// Variables that are already set win over the file. A missing file is not an error.
func LoadDotEnv() error {
	path := strings.TrimSpace(os.Getenv("DOTENV_PATH"))
	if path == "" {
		path = defaultDotEnvPath
	}
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("stat dotenv %s: %w", path, err)
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("load dotenv %s: %w", path, err)
	}
	return nil
}
