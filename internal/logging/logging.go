// Package logging builds the structured loggers shared by every command.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Options configures a logger.
type Options struct {
	Level  string // debug, info, warn, error; empty means info
	File   string // rotating log file; empty writes to the fallback writer
	Prefix string

	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	Compress   bool
}

// DefaultOptions returns rotation limits suitable for a long-running server.
func DefaultOptions() Options {
	return Options{
		Level:      "info",
		MaxSizeMB:  10,
		MaxBackups: 3,
		MaxAgeDays: 28,
		Compress:   true,
	}
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// New creates a logger. With opts.File set, output goes to a rotating file
// as JSON; otherwise it goes to fallback as text. The returned closer
// releases the file.
func New(opts Options, fallback io.Writer) (*log.Logger, io.Closer, error) {
	level := log.InfoLevel
	if opts.Level != "" {
		parsed, err := log.ParseLevel(opts.Level)
		if err != nil {
			return nil, nil, fmt.Errorf("logging: %w", err)
		}
		level = parsed
	}

	var (
		out       = fallback
		closer    io.Closer = nopCloser{}
		formatter = log.TextFormatter
	)
	if opts.File != "" {
		if err := os.MkdirAll(filepath.Dir(opts.File), 0o755); err != nil {
			return nil, nil, fmt.Errorf("logging: cannot create log directory: %w", err)
		}
		rotator := &lumberjack.Logger{
			Filename:   opts.File,
			MaxSize:    opts.MaxSizeMB,
			MaxBackups: opts.MaxBackups,
			MaxAge:     opts.MaxAgeDays,
			Compress:   opts.Compress,
		}
		out, closer, formatter = rotator, rotator, log.JSONFormatter
	}
	if out == nil {
		out = io.Discard
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.DateTime,
		Prefix:          opts.Prefix,
		Level:           level,
		Formatter:       formatter,
	})
	return logger, closer, nil
}

// Nop returns a logger that discards everything.
func Nop() *log.Logger {
	return log.New(io.Discard)
}
