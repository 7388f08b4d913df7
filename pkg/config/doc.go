// Package config loads application configuration from environment variables
// into typed structs.
//
// It wraps github.com/joho/godotenv for .env files and
// github.com/caarlos0/env/v11 for struct parsing. Each configuration type is
// parsed once and cached for the lifetime of the process:
//
//	type PostgresConfig struct {
//	    URL string `env:"PG_CONN_URL,required"`
//	}
//
//	var cfg PostgresConfig
//	if err := config.Load(&cfg); err != nil {
//	    return err
//	}
//
// LoadEnv loads explicit .env files before parsing. ResetCache and
// ForceReload exist for tests that change the environment between loads.
//
// Environment names the deployment stage (development, staging, production)
// and is used by the logger to pick sensible defaults.
//
// Errors wrap the sentinels in errors.go and can be checked with errors.Is.
package config
