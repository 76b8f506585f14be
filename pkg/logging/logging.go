// Package logging wires the process-wide observability collaborator:
// a slog.Logger that tees leveled JSON events to stdout and a
// per-process file under the logs directory. Core packages receive
// the logger as a dependency and never reach for globals.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"
)

// Setup creates logs/<name>_YYYYMMDD_HHMMSS.log and returns a logger
// writing line-delimited JSON to both the file and stdout, plus a
// teardown func that closes the file. Call once at startup.
func Setup(dir, name string, level slog.Level) (*slog.Logger, func(), error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	filename := fmt.Sprintf("%s_%s.log", name, time.Now().Format("20060102_150405"))
	f, err := os.Create(filepath.Join(dir, filename))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create log file: %w", err)
	}

	logger := New(io.MultiWriter(os.Stdout, f), level)
	teardown := func() { f.Close() }
	return logger, teardown, nil
}

// SetupFile is Setup without the stdout tee, for front ends that own
// the terminal (the renderer would fight stdout logs).
func SetupFile(dir, name string, level slog.Level) (*slog.Logger, func(), error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	filename := fmt.Sprintf("%s_%s.log", name, time.Now().Format("20060102_150405"))
	f, err := os.Create(filepath.Join(dir, filename))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create log file: %w", err)
	}

	logger := New(f, level)
	teardown := func() { f.Close() }
	return logger, teardown, nil
}

// New builds a JSON logger on an arbitrary writer. Used directly by
// tests and by front ends that own their output stream.
func New(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))
}

// Discard returns a logger that drops everything, for components that
// are constructed without an injected sink.
func Discard() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}
