// Package utils holds the shared logging setup and the circuit text
// format parser.
package utils

import (
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

var logger zerolog.Logger

func init() {
	output := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}
	logger = zerolog.New(output).With().Timestamp().Logger().Level(zerolog.InfoLevel)
	// tests stay quiet
	if strings.HasSuffix(os.Args[0], ".test") {
		logger = zerolog.Nop()
	}
}

// Logger returns the shared logger.
func Logger() zerolog.Logger {
	return logger
}

// Set replaces the shared logger.
func Set(l zerolog.Logger) {
	logger = l
}

// SetOutput redirects the shared logger.
func SetOutput(w io.Writer) {
	logger = logger.Output(w)
}

// SetLevel adjusts the shared logger's level.
func SetLevel(level zerolog.Level) {
	logger = logger.Level(level)
}

// Disable turns logging off.
func Disable() {
	logger = zerolog.Nop()
}
