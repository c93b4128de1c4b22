package tui

import (
	"time"

	tea "charm.land/bubbletea/v2"
)

// ToastDuration is how long an item notification stays on screen
const ToastDuration = 2 * time.Second

// DismissNotificationMsg removes one notification when its timer fires
type DismissNotificationMsg struct {
	ID int
}

// dismissAfter schedules the removal of notification id
func dismissAfter(id int, d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return DismissNotificationMsg{ID: id}
	})
}
