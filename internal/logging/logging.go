// Package logging builds the operator log. The terminal belongs to the UI,
// so records go to a file instead of stdout.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
)

type Options struct {
	Path  string
	Level string
}

// New opens (or creates) the log file at opts.Path in append mode. The
// returned closer must be called on shutdown. An empty path discards output.
func New(opts Options) (*log.Logger, io.Closer, error) {
	raw := strings.TrimSpace(opts.Level)
	if raw == "" {
		raw = "info"
	}
	level, err := log.ParseLevel(raw)
	if err != nil {
		return nil, nil, fmt.Errorf("parse log level %q: %w", opts.Level, err)
	}
	path := strings.TrimSpace(opts.Path)
	if path == "" {
		return NewWithWriter(io.Discard, level), io.NopCloser(nil), nil
	}
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, nil, fmt.Errorf("create log dir: %w", err)
		}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	return NewWithWriter(f, level), f, nil
}

func NewWithWriter(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		Level:           level,
		Formatter:       log.LogfmtFormatter,
		ReportTimestamp: true,
		Prefix:          "todo",
	})
}

// Discard returns a logger that drops everything.
func Discard() *log.Logger {
	return NewWithWriter(io.Discard, log.ErrorLevel)
}
