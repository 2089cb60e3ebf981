package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/toastkit/pkg/config"
)

type testConfig struct {
	Name     string        `env:"TEST_APP_NAME" envDefault:"toastkit"`
	Limit    int           `env:"TEST_APP_LIMIT" envDefault:"5"`
	Interval time.Duration `env:"TEST_APP_INTERVAL" envDefault:"5s"`
	Required string        `env:"TEST_APP_REQUIRED,required"`
}

func TestLoad(t *testing.T) {
	t.Setenv("TEST_APP_LIMIT", "10")
	t.Setenv("TEST_APP_REQUIRED", "set")

	var cfg testConfig
	require.NoError(t, config.Load(&cfg))

	assert.Equal(t, "toastkit", cfg.Name, "default applies when env var is unset")
	assert.Equal(t, 10, cfg.Limit, "env var overrides default")
	assert.Equal(t, 5*time.Second, cfg.Interval)
	assert.Equal(t, "set", cfg.Required)
}

func TestLoad_MissingRequired(t *testing.T) {
	type strictConfig struct {
		Token string `env:"TEST_APP_MISSING_TOKEN,required"`
	}

	var cfg strictConfig
	err := config.Load(&cfg)
	assert.ErrorIs(t, err, config.ErrParsingConfig)
}

func TestLoad_NilPointer(t *testing.T) {
	var cfg *testConfig
	err := config.Load(cfg)
	assert.ErrorIs(t, err, config.ErrNilPointer)
}

func TestLoad_InvalidValue(t *testing.T) {
	t.Setenv("TEST_APP_LIMIT", "not-a-number")
	t.Setenv("TEST_APP_REQUIRED", "set")

	var cfg testConfig
	err := config.Load(&cfg)
	assert.ErrorIs(t, err, config.ErrParsingConfig)
}

func TestMustLoad_PanicsOnFailure(t *testing.T) {
	type strictConfig struct {
		Token string `env:"TEST_APP_MUST_TOKEN,required"`
	}

	var cfg strictConfig
	assert.Panics(t, func() {
		config.MustLoad(&cfg)
	})
}
