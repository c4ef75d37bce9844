package config

import (
	"os"
	"strings"

	dErrors "giftmatch/pkg/domain-errors"
	"giftmatch/pkg/email"
)

const (
	DefaultMailFrom  = "regalos@giftmatch.local"
	DefaultLogLevel  = "info"
	DefaultLogFormat = "text"
)

// Config captures process level configuration for the demo host.
type Config struct {
	MailFrom  string
	LogLevel  string
	LogFormat string
}

// FromEnv builds a Config from environment variables so main stays lean.
func FromEnv() (Config, error) {
	return fromLookup(os.LookupEnv)
}

func fromLookup(lookup func(string) (string, bool)) (Config, error) {
	get := func(key, fallback string) string {
		if v, ok := lookup(key); ok && strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
		return fallback
	}

	from, err := email.Parse(get("GIFTMATCH_MAIL_FROM", DefaultMailFrom))
	if err != nil {
		return Config{}, dErrors.Wrap(err, dErrors.CodeConfiguration, "GIFTMATCH_MAIL_FROM")
	}

	level := strings.ToLower(get("GIFTMATCH_LOG_LEVEL", DefaultLogLevel))
	switch level {
	case "debug", "info", "warn", "error":
	default:
		return Config{}, dErrors.New(dErrors.CodeConfiguration, "GIFTMATCH_LOG_LEVEL must be one of debug, info, warn, error")
	}

	format := strings.ToLower(get("GIFTMATCH_LOG_FORMAT", DefaultLogFormat))
	if format != "text" && format != "json" {
		return Config{}, dErrors.New(dErrors.CodeConfiguration, "GIFTMATCH_LOG_FORMAT must be text or json")
	}

	return Config{
		MailFrom:  from,
		LogLevel:  level,
		LogFormat: format,
	}, nil
}
