package config

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/mtrqq/safecopy/pkg/raw"
	"github.com/rs/zerolog"
)

const (
	LogFormatConsole = "console"
	LogFormatJSON    = "json"
)

type Config struct {
	LogLevel    string `env:"SAFECOPY_LOG_LEVEL"    envDefault:"info"`
	LogFormat   string `env:"SAFECOPY_LOG_FORMAT"   envDefault:"console"`
	OverlapMode string `env:"SAFECOPY_OVERLAP_MODE" envDefault:"exact"`
	WordCopy    bool   `env:"SAFECOPY_WORD_COPY"    envDefault:"true"`
}

// Load reads the configuration from environment variables.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

func (c Config) EngineOptions() ([]raw.Option, error) {
	mode, err := raw.ParseOverlapMode(strings.ToLower(strings.TrimSpace(c.OverlapMode)))
	if err != nil {
		return nil, fmt.Errorf("invalid overlap mode: %w", err)
	}

	return []raw.Option{
		raw.WithOverlapMode(mode),
		raw.WithWordCopy(c.WordCopy),
	}, nil
}

// Logger builds a logger writing to w with the configured level and format.
func (c Config) Logger(w io.Writer) (zerolog.Logger, error) {
	level, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(c.LogLevel)))
	if err != nil {
		return zerolog.Logger{}, fmt.Errorf("invalid log level %q: %w", c.LogLevel, err)
	}

	switch strings.ToLower(strings.TrimSpace(c.LogFormat)) {
	case LogFormatConsole:
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.TimeOnly}
	case LogFormatJSON:
	default:
		return zerolog.Logger{}, fmt.Errorf("invalid log format %q, want %s or %s", c.LogFormat, LogFormatConsole, LogFormatJSON)
	}

	return zerolog.New(w).Level(level).With().Timestamp().Logger(), nil
}
