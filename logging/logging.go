// Package logging builds the structured logger.
//
// Standard output and error carry the animation, so log records only go to
// a file sink. Without a file the logger discards everything.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// Config holds the configuration for the logger.
type Config struct {
	Level string
	File  string
}

// New creates a structured logger from the given configuration.
// The returned cleanup closes the file sink and is never nil.
func New(cfg Config) (*slog.Logger, func() error, error) {
	level, err := parseLevel(cfg.Level)
	if err != nil {
		return nil, nil, err
	}

	if strings.TrimSpace(cfg.File) == "" {
		return Discard(), func() error { return nil }, nil
	}

	logFile, err := openLogFile(cfg.File)
	if err != nil {
		return nil, nil, err
	}

	handler := slog.NewTextHandler(logFile, &slog.HandlerOptions{Level: level})
	return slog.New(handler), logFile.Close, nil
}

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func openLogFile(path string) (*os.File, error) {
	cleanPath := strings.TrimSpace(path)

	if mkErr := os.MkdirAll(filepath.Dir(cleanPath), 0o700); mkErr != nil {
		return nil, fmt.Errorf("create log file directory: %w", mkErr)
	}

	file, err := os.OpenFile(filepath.Clean(cleanPath), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}

	return file, nil
}

func parseLevel(level string) (slog.Leveler, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "", "info":
		return slog.LevelInfo, nil
	case "debug":
		return slog.LevelDebug, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return nil, fmt.Errorf("invalid log level: %q (allowed: error, warn, info, debug)", level)
	}
}
