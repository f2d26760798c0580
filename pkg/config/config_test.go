package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/modelcheck/pkg/config"
)

func TestLoad(t *testing.T) {
	t.Run("parses env tags with defaults", func(t *testing.T) {
		type serverConfig struct {
			Addr     string `env:"TEST_ADDR" envDefault:":8080"`
			Messages string `env:"TEST_VALIDATION_MESSAGES"`
		}

		t.Setenv("TEST_VALIDATION_MESSAGES", "messages.yaml")

		var cfg serverConfig
		require.NoError(t, config.Load(&cfg))
		assert.Equal(t, ":8080", cfg.Addr)
		assert.Equal(t, "messages.yaml", cfg.Messages)
	})

	t.Run("explicit env value wins over default", func(t *testing.T) {
		type serverConfig struct {
			Addr string `env:"TEST_ADDR2" envDefault:":8080"`
		}

		t.Setenv("TEST_ADDR2", ":9090")

		var cfg serverConfig
		require.NoError(t, config.Load(&cfg))
		assert.Equal(t, ":9090", cfg.Addr)
	})

	t.Run("missing required variable fails", func(t *testing.T) {
		type strictConfig struct {
			Secret string `env:"TEST_DEFINITELY_UNSET_VAR,required"`
		}

		var cfg strictConfig
		err := config.Load(&cfg)
		assert.ErrorIs(t, err, config.ErrParsingConfig)
	})

	t.Run("nil pointer fails", func(t *testing.T) {
		err := config.Load[struct{}](nil)
		assert.ErrorIs(t, err, config.ErrNilPointer)
	})

	t.Run("must load panics on failure", func(t *testing.T) {
		type strictConfig struct {
			Secret string `env:"TEST_ANOTHER_UNSET_VAR,required"`
		}

		assert.Panics(t, func() {
			var cfg strictConfig
			config.MustLoad(&cfg)
		})
	})
}
