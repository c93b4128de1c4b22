package launcher

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/emojiboard/internal/config"
	"github.com/thenoetrevino/emojiboard/internal/emoji"
	"github.com/thenoetrevino/emojiboard/internal/tui/core"
)

// shutdownGrace is how long Launch waits for the program to restore the
// terminal after a shutdown signal
const shutdownGrace = 500 * time.Millisecond

// Launch starts the TUI application and blocks until it exits
func Launch(parent context.Context, cfg *config.Config, items emoji.Source) error {
	// Create root context with signal handling for graceful shutdown
	ctx, cancel := signal.NotifyContext(
		parent,
		os.Interrupt,
		syscall.SIGTERM,
	)
	defer cancel()

	// Best effort guess of the terminal preference; a later background
	// color report from the terminal may refine it
	systemDark := lipgloss.HasDarkBackground(os.Stdin, os.Stdout)

	slog.Info("starting emojiboard",
		"items", items.Len(),
		"layout", cfg.Appearance.Layout,
		"theme", cfg.Appearance.Theme,
		"system_dark", systemDark,
	)

	tuiApp := core.New(ctx, cfg, items, systemDark)
	p := tea.NewProgram(tuiApp, tea.WithContext(ctx))

	// goroutine to monitor cancellation
	errChan := make(chan error, 1)
	go func() {
		_, err := p.Run()
		errChan <- err
	}()

	// Wait for program completion or cancellation
	select {
	case err := <-errChan:
		if err != nil && ctx.Err() == nil {
			return fmt.Errorf("error running program: %w", err)
		}
	case <-ctx.Done():
		slog.Info("shutdown signal received, cleaning up")
		select {
		case <-errChan:
		case <-time.After(shutdownGrace):
		}
	}

	slog.Info("emojiboard exited")
	return nil
}
