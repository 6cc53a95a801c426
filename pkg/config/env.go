package config

import (
	"fmt"

	"github.com/joho/godotenv"
)

// LoadEnv reads the given .env files into the process environment, falling
// back to ./.env when no path is given. Later files override earlier ones,
// while variables already set in the process environment are kept only for
// the first file. Cached configurations are not invalidated.
func LoadEnv(paths ...string) error {
	if len(paths) == 0 {
		if err := godotenv.Load(); err != nil {
			return fmt.Errorf("load .env: %w", err)
		}
		return nil
	}

	if err := godotenv.Load(paths[0]); err != nil {
		return fmt.Errorf("load %s: %w", paths[0], err)
	}
	if len(paths) > 1 {
		if err := godotenv.Overload(paths[1:]...); err != nil {
			return fmt.Errorf("load env overrides: %w", err)
		}
	}
	return nil
}

// MustLoadEnv works like LoadEnv but panics on failure.
func MustLoadEnv(paths ...string) {
	if err := LoadEnv(paths...); err != nil {
		panic(fmt.Sprintf("failed to load env files: %v", err))
	}
}
