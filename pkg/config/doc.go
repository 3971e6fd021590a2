// Package config loads typed configuration from environment variables.
//
// Struct fields are bound with caarlos0/env tags. A .env file in the working
// directory is read once on first use via godotenv; variables already present
// in the process environment win over the file.
//
//	var cfg config.App
//	if err := config.Load(&cfg); err != nil {
//	    return err
//	}
//
// Load caches one parsed value per type for the life of the process. Parse
// skips the cache and accepts an explicit environment map, which is what
// tests use:
//
//	cfg, err := config.Parse[config.App](config.WithEnvironment(map[string]string{
//	    "FORM_STORE_CAPACITY": "16",
//	}))
//
// App carries the service settings and validates itself after parsing.
package config
