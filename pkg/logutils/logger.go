package logutils

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
)

// Options configures the logger returned by New.
type Options struct {
	// Level is one of: debug, info, warn, error, fatal, panic. Empty means info.
	Level string
	// File receives JSON log lines. When empty, logs go to Fallback.
	File string
	// Fallback is used when File is empty. Defaults to os.Stderr so log
	// lines never mix with command output on stdout.
	Fallback io.Writer
	// Console renders human readable lines instead of JSON.
	Console bool
}

// New returns a logger configured by opts along with a closer for any
// opened log file. The closer is always non-nil.
func New(opts Options) (zerolog.Logger, func(), error) {
	closer := func() {}

	level := opts.Level
	if level == "" {
		level = zerolog.InfoLevel.String()
	}

	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.Logger{}, closer, fmt.Errorf("parse log level %q: %w", level, err)
	}

	var writer io.Writer = os.Stderr
	if opts.Fallback != nil {
		writer = opts.Fallback
	}

	if opts.File != "" {
		if err := os.MkdirAll(filepath.Dir(opts.File), 0o755); err != nil {
			return zerolog.Logger{}, closer, fmt.Errorf("create logs dir: %w", err)
		}

		f, err := os.OpenFile(opts.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return zerolog.Logger{}, closer, fmt.Errorf("open log file: %w", err)
		}
		closer = func() { _ = f.Close() }
		writer = f
	}

	if opts.Console {
		writer = zerolog.ConsoleWriter{Out: writer, NoColor: opts.File != ""}
	}

	l := zerolog.New(writer).
		With().
		Timestamp().
		Logger().
		Level(lvl)

	return l, closer, nil
}
