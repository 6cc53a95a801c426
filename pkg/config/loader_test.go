package config_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/statekit/pkg/config"
)

type defaultsConfig struct {
	Name  string `env:"STATEKIT_DEFAULT_NAME" envDefault:"player"`
	Count int    `env:"STATEKIT_DEFAULT_COUNT" envDefault:"42"`
	Debug bool   `env:"STATEKIT_DEFAULT_DEBUG" envDefault:"true"`
}

type successConfig struct {
	Name  string `env:"STATEKIT_SUCCESS_NAME" envDefault:"player"`
	Count int    `env:"STATEKIT_SUCCESS_COUNT"`
}

type cachedConfig struct {
	Value string `env:"STATEKIT_CACHED_VALUE"`
}

type requiredConfig struct {
	Value string `env:"STATEKIT_REQUIRED_VALUE,required"`
}

type fileConfig struct {
	Name   string   `env:"STATEKIT_TEST_NAME"`
	Count  int      `env:"STATEKIT_TEST_COUNT"`
	Kinds  []string `env:"STATEKIT_TEST_KINDS" envSeparator:","`
	Quoted string   `env:"STATEKIT_TEST_QUOTED"`
	Extra  string   `env:"STATEKIT_TEST_EXTRA"`
}

// unset clears key for the duration of the test and restores it afterwards.
func unset(t *testing.T, keys ...string) {
	t.Helper()
	for _, k := range keys {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
}

func TestLoad_Success(t *testing.T) {
	config.ResetCache()
	t.Setenv("STATEKIT_SUCCESS_NAME", "enemy")
	t.Setenv("STATEKIT_SUCCESS_COUNT", "7")

	var cfg successConfig
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, "enemy", cfg.Name)
	assert.Equal(t, 7, cfg.Count)
}

func TestLoad_DefaultValues(t *testing.T) {
	config.ResetCache()
	unset(t, "STATEKIT_DEFAULT_NAME", "STATEKIT_DEFAULT_COUNT", "STATEKIT_DEFAULT_DEBUG")

	var cfg defaultsConfig
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, "player", cfg.Name)
	assert.Equal(t, 42, cfg.Count)
	assert.True(t, cfg.Debug)
}

func TestLoad_Cached(t *testing.T) {
	config.ResetCache()
	t.Setenv("STATEKIT_CACHED_VALUE", "first")

	var first cachedConfig
	require.NoError(t, config.Load(&first))

	t.Setenv("STATEKIT_CACHED_VALUE", "second")

	var second cachedConfig
	require.NoError(t, config.Load(&second))
	assert.Equal(t, "first", second.Value, "second load should be served from cache")

	var reloaded cachedConfig
	require.NoError(t, config.ForceReloadConfig(&reloaded))
	assert.Equal(t, "second", reloaded.Value)

	var afterReload cachedConfig
	require.NoError(t, config.Load(&afterReload))
	assert.Equal(t, "second", afterReload.Value)
}

func TestLoad_MissingRequired(t *testing.T) {
	config.ResetCache()
	unset(t, "STATEKIT_REQUIRED_VALUE")

	var cfg requiredConfig
	err := config.Load(&cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrParsingConfig)

	assert.Panics(t, func() {
		var again requiredConfig
		config.MustLoad(&again)
	})
}

func TestLoad_InvalidTargets(t *testing.T) {
	var nilCfg *successConfig
	assert.ErrorIs(t, config.Load(nilCfg), config.ErrNilPointer)
	assert.ErrorIs(t, config.ForceReloadConfig(nilCfg), config.ErrNilPointer)

	var notStruct int
	assert.ErrorIs(t, config.Load(&notStruct), config.ErrInvalidConfigType)
}

func TestLoadEnv(t *testing.T) {
	keys := []string{
		"STATEKIT_TEST_NAME", "STATEKIT_TEST_COUNT", "STATEKIT_TEST_KINDS",
		"STATEKIT_TEST_QUOTED", "STATEKIT_TEST_EXTRA",
	}

	t.Run("single file", func(t *testing.T) {
		config.ResetCache()
		unset(t, keys...)

		require.NoError(t, config.LoadEnv("testdata/.env.base"))

		var cfg fileConfig
		require.NoError(t, config.Load(&cfg))
		assert.Equal(t, "from_file", cfg.Name)
		assert.Equal(t, 3, cfg.Count)
		assert.Equal(t, []string{"idle", "walking", "jumping"}, cfg.Kinds)
		assert.Equal(t, "quoted value", cfg.Quoted)
		assert.Empty(t, cfg.Extra)
	})

	t.Run("later files override", func(t *testing.T) {
		config.ResetCache()
		unset(t, keys...)

		require.NoError(t, config.LoadEnv("testdata/.env.base", "testdata/.env.override"))

		var cfg fileConfig
		require.NoError(t, config.Load(&cfg))
		assert.Equal(t, "from_override", cfg.Name)
		assert.Equal(t, 3, cfg.Count)
		assert.Equal(t, "only_here", cfg.Extra)
	})

	t.Run("process environment wins over first file", func(t *testing.T) {
		config.ResetCache()
		unset(t, keys...)
		t.Setenv("STATEKIT_TEST_NAME", "from_process")

		require.NoError(t, config.LoadEnv("testdata/.env.base"))
		assert.Equal(t, "from_process", os.Getenv("STATEKIT_TEST_NAME"))
	})

	t.Run("missing file", func(t *testing.T) {
		require.Error(t, config.LoadEnv("testdata/does_not_exist.env"))
		assert.Panics(t, func() {
			config.MustLoadEnv("testdata/does_not_exist.env")
		})
	})
}
