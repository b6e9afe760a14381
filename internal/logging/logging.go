// Package logging builds the slog loggers used by the pulse binaries.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"
)

const timeFormat = "2006-01-02T15:04:05.000Z07:00"

type Options struct {
	Level  string    // debug, info, warn, error. Empty means info.
	Stdout io.Writer // console output, nil disables the console handler
	File   string    // optional log file, truncated on open
}

// ParseLevel accepts the names understood by slog.Level.UnmarshalText.
func ParseLevel(s string) (slog.Level, error) {
	if s == "" {
		return slog.LevelInfo, nil
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return 0, fmt.Errorf("log level %q: %w", s, err)
	}
	return level, nil
}

// New returns a logger writing to the console, the log file, or both.
// The returned closer flushes and closes the log file and must be called on exit.
func New(opts Options) (*slog.Logger, io.Closer, error) {
	level, err := ParseLevel(opts.Level)
	if err != nil {
		return nil, nil, err
	}

	var handlers []slog.Handler
	closer := multiCloser{}

	if opts.Stdout != nil {
		handlers = append(handlers, tint.NewHandler(opts.Stdout, &tint.Options{
			Level:      level,
			TimeFormat: timeFormat,
			NoColor:    !isTerminal(opts.Stdout),
		}))
	}

	if opts.File != "" {
		if err := os.MkdirAll(filepath.Dir(opts.File), 0o755); err != nil {
			return nil, nil, fmt.Errorf("create log directory: %w", err)
		}
		file, err := os.OpenFile(opts.File, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		lw := NewLineWriter(file)
		closer = append(closer, lw, file)

		handlers = append(handlers, slog.NewTextHandler(lw, &slog.HandlerOptions{
			Level: level,
			// time is stamped by the line writer
			ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
				if a.Key == slog.TimeKey && len(groups) == 0 {
					return slog.Attr{}
				}
				return a
			},
		}))
	}

	if len(handlers) == 0 {
		return slog.New(slog.NewTextHandler(io.Discard, nil)), closer, nil
	}
	return slog.New(NewFanoutHandler(handlers...)), closer, nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && isatty.IsTerminal(f.Fd())
}

type multiCloser []io.Closer

func (m multiCloser) Close() error {
	var firstErr error
	for _, c := range m {
		if err := c.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
