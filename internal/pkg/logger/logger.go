package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// LogLevel represents the log level name used in configuration
type LogLevel string

const (
	DebugLevel LogLevel = "debug"
	InfoLevel  LogLevel = "info"
	WarnLevel  LogLevel = "warn"
	ErrorLevel LogLevel = "error"
)

// Config represents logger configuration
type Config struct {
	Level LogLevel
	// Pretty switches to the human-readable console writer
	Pretty bool
	// Output defaults to os.Stdout
	Output io.Writer
}

var base zerolog.Logger

// Configure replaces the process logger. It also updates zerolog's global logger so
// packages logging through github.com/rs/zerolog/log stay consistent.
func Configure(cfg Config) zerolog.Logger {
	if cfg.Output == nil {
		cfg.Output = os.Stdout
	}

	zerolog.TimeFieldFormat = time.RFC3339

	level, err := zerolog.ParseLevel(string(cfg.Level))
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	var writer io.Writer = cfg.Output
	if cfg.Pretty {
		writer = zerolog.ConsoleWriter{Out: cfg.Output, TimeFormat: time.RFC3339}
	}

	base = zerolog.New(writer).With().Timestamp().Str("service", "feedbackd").Logger()
	log.Logger = base
	return base
}

// Component returns a child logger tagged with the component name
func Component(name string) zerolog.Logger {
	return base.With().Str("component", name).Logger()
}

func Debug() *zerolog.Event { return base.Debug() }

func Info() *zerolog.Event { return base.Info() }

func Warn() *zerolog.Event { return base.Warn() }

func Error() *zerolog.Event { return base.Error() }

func init() {
	Configure(Config{Level: InfoLevel, Pretty: true})
}
