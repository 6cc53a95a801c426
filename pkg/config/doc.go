// Package config loads typed configuration from environment variables.
//
// It wraps github.com/joho/godotenv for .env files and
// github.com/caarlos0/env/v11 for parsing into tagged structs:
//
//	type Config struct {
//	    Env      string `env:"STATEDEMO_ENV" envDefault:"development"`
//	    LogLevel string `env:"STATEDEMO_LOG_LEVEL" envDefault:"info"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg); err != nil {
//	    log.Fatalf("config: %v", err)
//	}
//
// Load reads ./.env once per process when it exists and caches the parsed
// value per type, so later calls are free. LoadEnv reads explicit files, with
// later files overriding earlier ones. ResetCache and ForceReloadConfig exist
// mostly for tests.
//
// Errors wrap the sentinels ErrParsingConfig, ErrInvalidConfigType and
// ErrNilPointer; compare with errors.Is.
package config
