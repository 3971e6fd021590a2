package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/signupform/pkg/config"
)

type cachedConfig struct {
	Value string `env:"SIGNUPFORM_TEST_CACHED" envDefault:"default"`
}

type requiredConfig struct {
	Required string `env:"SIGNUPFORM_TEST_REQUIRED,required"`
}

type envFileConfig struct {
	FromFile string `env:"SIGNUPFORM_TEST_FROM_FILE"`
}

func TestParse_AppDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := config.Parse[config.App](config.WithEnvironment(map[string]string{}))
	require.NoError(t, err)

	assert.Equal(t, "signupform", cfg.Name)
	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 1024, cfg.FormStoreCapacity)
	assert.Equal(t, 10, cfg.PasswordHashCost)
}

func TestParse_AppOverrides(t *testing.T) {
	t.Parallel()

	cfg, err := config.Parse[config.App](config.WithEnvironment(map[string]string{
		"APP_ENV":             "production",
		"FORM_STORE_CAPACITY": "16",
		"PASSWORD_HASH_COST":  "4",
	}))
	require.NoError(t, err)

	assert.Equal(t, "production", cfg.Env)
	assert.Equal(t, 16, cfg.FormStoreCapacity)
	assert.Equal(t, 4, cfg.PasswordHashCost)
}

func TestParse_AppValidation(t *testing.T) {
	t.Parallel()

	_, err := config.Parse[config.App](config.WithEnvironment(map[string]string{
		"FORM_STORE_CAPACITY": "0",
		"PASSWORD_HASH_COST":  "99",
	}))
	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
	assert.Contains(t, err.Error(), "FORM_STORE_CAPACITY")
	assert.Contains(t, err.Error(), "PASSWORD_HASH_COST")
}

func TestParse_Prefix(t *testing.T) {
	t.Parallel()

	cfg, err := config.Parse[config.App](
		config.WithPrefix("SIGNUP_"),
		config.WithEnvironment(map[string]string{"SIGNUP_APP_NAME": "custom"}),
	)
	require.NoError(t, err)
	assert.Equal(t, "custom", cfg.Name)
}

func TestParse_BadValue(t *testing.T) {
	t.Parallel()

	_, err := config.Parse[config.App](config.WithEnvironment(map[string]string{
		"FORM_STORE_CAPACITY": "lots",
	}))
	assert.ErrorIs(t, err, config.ErrParsingConfig)
}

func TestLoad_CachesPerType(t *testing.T) {
	config.ResetCache()
	t.Cleanup(config.ResetCache)

	t.Setenv("SIGNUPFORM_TEST_CACHED", "first")
	var first cachedConfig
	require.NoError(t, config.Load(&first))
	assert.Equal(t, "first", first.Value)

	t.Setenv("SIGNUPFORM_TEST_CACHED", "second")
	var second cachedConfig
	require.NoError(t, config.Load(&second))
	assert.Equal(t, "first", second.Value, "cached value should be returned")

	config.ResetCache()
	var third cachedConfig
	require.NoError(t, config.Load(&third))
	assert.Equal(t, "second", third.Value)
}

func TestLoad_Errors(t *testing.T) {
	config.ResetCache()
	t.Cleanup(config.ResetCache)

	assert.ErrorIs(t, config.Load[requiredConfig](nil), config.ErrNilPointer)

	var cfg requiredConfig
	assert.ErrorIs(t, config.Load(&cfg), config.ErrParsingConfig)
	assert.Panics(t, func() { config.MustLoad(&cfg) })
}

func TestLoadEnv(t *testing.T) {
	config.ResetCache()
	t.Cleanup(config.ResetCache)

	path := filepath.Join(t.TempDir(), ".env.test")
	require.NoError(t, os.WriteFile(path, []byte("SIGNUPFORM_TEST_FROM_FILE=from-file\n"), 0o600))
	t.Cleanup(func() { os.Unsetenv("SIGNUPFORM_TEST_FROM_FILE") })

	require.NoError(t, config.LoadEnv(path))

	var cfg envFileConfig
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, "from-file", cfg.FromFile)

	assert.ErrorIs(t, config.LoadEnv(filepath.Join(t.TempDir(), "missing.env")), config.ErrLoadingEnvFile)
}
