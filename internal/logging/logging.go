// Package logging configures the diagnostic logger. Diagnostics go to stderr and,
// optionally, a size-rotated file; stdout is reserved for reports.
package logging

import (
	"io"
	"log/slog"
	"os"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Options controls where and how verbosely diagnostics are written.
type Options struct {
	Verbose bool
	File    string // empty disables the file sink
	Stderr  io.Writer
}

// Setup builds a text slog.Logger and installs it as the default logger.
// The returned closer releases the log file, if one was opened.
func Setup(opts Options) (*slog.Logger, io.Closer) {
	var w io.Writer = opts.Stderr
	if w == nil {
		w = os.Stderr
	}

	var closer io.Closer = nopCloser{}
	if opts.File != "" {
		fileLogger := &lumberjack.Logger{
			Filename:   opts.File,
			MaxSize:    10, // megabytes
			MaxBackups: 3,
			MaxAge:     0, // don't delete by age
		}
		w = io.MultiWriter(w, fileLogger)
		closer = fileLogger
	}

	level := slog.LevelWarn
	if opts.Verbose {
		level = slog.LevelDebug
	}

	logger := slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	return logger, closer
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
