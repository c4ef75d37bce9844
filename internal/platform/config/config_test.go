package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dErrors "giftmatch/pkg/domain-errors"
)

func lookupFrom(env map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}
}

func TestFromLookup(t *testing.T) {
	t.Run("defaults when nothing is set", func(t *testing.T) {
		cfg, err := fromLookup(lookupFrom(nil))
		require.NoError(t, err)
		assert.Equal(t, Config{MailFrom: DefaultMailFrom, LogLevel: "info", LogFormat: "text"}, cfg)
	})

	t.Run("values are trimmed and normalised", func(t *testing.T) {
		cfg, err := fromLookup(lookupFrom(map[string]string{
			"GIFTMATCH_MAIL_FROM":  "  Gifts@Example.COM ",
			"GIFTMATCH_LOG_LEVEL":  "DEBUG",
			"GIFTMATCH_LOG_FORMAT": "json",
		}))
		require.NoError(t, err)
		assert.Equal(t, "Gifts@example.com", cfg.MailFrom)
		assert.Equal(t, "debug", cfg.LogLevel)
		assert.Equal(t, "json", cfg.LogFormat)
	})

	t.Run("blank values fall back to defaults", func(t *testing.T) {
		cfg, err := fromLookup(lookupFrom(map[string]string{"GIFTMATCH_MAIL_FROM": "   "}))
		require.NoError(t, err)
		assert.Equal(t, DefaultMailFrom, cfg.MailFrom)
	})

	for name, env := range map[string]map[string]string{
		"bad sender":     {"GIFTMATCH_MAIL_FROM": "not-an-address"},
		"bad log level":  {"GIFTMATCH_LOG_LEVEL": "verbose"},
		"bad log format": {"GIFTMATCH_LOG_FORMAT": "xml"},
	} {
		t.Run(name+" is a configuration error", func(t *testing.T) {
			_, err := fromLookup(lookupFrom(env))
			require.Error(t, err)
			assert.True(t, dErrors.HasCode(err, dErrors.CodeConfiguration))
		})
	}
}

func TestFromEnv(t *testing.T) {
	t.Setenv("GIFTMATCH_LOG_FORMAT", "json")
	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, "json", cfg.LogFormat)
}
