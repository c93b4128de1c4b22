package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	charmlog "github.com/charmbracelet/log"
)

// Logger is the global slog instance for the application
var Logger *slog.Logger

// Init initializes the logging system, writing logs to ~/.emojiboard/logs/emojiboard.log.
// The terminal belongs to the TUI, so nothing is logged to stdout or stderr.
// The returned closer releases the log file.
func Init(debug bool) (io.Closer, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("resolve home dir: %w", err)
	}

	logDir := filepath.Join(homeDir, ".emojiboard", "logs")
	if err := os.MkdirAll(logDir, 0o755); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}

	// Open log file in append mode
	logPath := filepath.Join(logDir, "emojiboard.log")
	file, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}

	Setup(file, debug)
	return file, nil
}

// Setup installs a charm logger writing to w as the default slog handler
func Setup(w io.Writer, debug bool) {
	level := charmlog.InfoLevel
	if debug {
		level = charmlog.DebugLevel
	}

	handler := charmlog.NewWithOptions(w, charmlog.Options{
		ReportTimestamp: true,
		Level:           level,
		Prefix:          "emojiboard",
	})

	Logger = slog.New(handler)
	slog.SetDefault(Logger)
}
