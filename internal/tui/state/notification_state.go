package state

import "charm.land/lipgloss/v2"

// NotificationLevel represents the severity/type of a notification.
type NotificationLevel int

const (
	// LevelInfo represents informational notifications (item taps)
	LevelInfo NotificationLevel = iota
	// LevelError represents error notifications
	LevelError
)

// Notification represents a single transient message.
type Notification struct {
	ID      int
	Level   NotificationLevel
	Message string
}

// NotificationState manages the transient messages currently on screen.
// Each notification is dismissed on its own; several may be visible at once.
type NotificationState struct {
	notifications []Notification
	nextID        int
	windowWidth   int
	windowHeight  int
}

// NewNotificationState creates a new NotificationState with no notifications.
func NewNotificationState() *NotificationState {
	return &NotificationState{
		notifications: []Notification{},
		nextID:        1,
	}
}

// Add adds a notification and returns its ID for later dismissal.
func (s *NotificationState) Add(level NotificationLevel, message string) int {
	id := s.nextID
	s.nextID++
	s.notifications = append(s.notifications, Notification{
		ID:      id,
		Level:   level,
		Message: message,
	})
	return id
}

// Dismiss removes the notification with the given ID.
// Returns false if it was already gone.
func (s *NotificationState) Dismiss(id int) bool {
	for i, n := range s.notifications {
		if n.ID == id {
			s.notifications = append(s.notifications[:i:i], s.notifications[i+1:]...)
			return true
		}
	}
	return false
}

// Clear removes all notifications.
func (s *NotificationState) Clear() {
	s.notifications = []Notification{}
}

// All returns all current notifications, oldest first.
func (s *NotificationState) All() []Notification {
	return s.notifications
}

// HasAny returns true if there are any notifications.
func (s *NotificationState) HasAny() bool {
	return len(s.notifications) > 0
}

// SetWindowSize updates the window dimensions for positioning calculations.
func (s *NotificationState) SetWindowSize(width, height int) {
	s.windowWidth = width
	s.windowHeight = height
}

// GetLayers creates floating layers for all active notifications.
// Notifications are centered horizontally and stacked upwards from the
// bottom edge, newest lowest, above a reserved footer of bottomMargin rows.
func (s *NotificationState) GetLayers(renderFunc func(Notification) string, bottomMargin int) []*lipgloss.Layer {
	layers := []*lipgloss.Layer{}

	// If window dimensions not set, can't position properly
	if s.windowWidth == 0 {
		return layers
	}

	bottom := s.windowHeight - bottomMargin
	for i := len(s.notifications) - 1; i >= 0; i-- {
		view := renderFunc(s.notifications[i])
		width := lipgloss.Width(view)
		height := lipgloss.Height(view)

		row := bottom - height
		if row < 0 {
			// Older notifications that do not fit stay hidden until space frees up
			break
		}
		col := max(0, (s.windowWidth-width)/2)

		layers = append(layers, lipgloss.NewLayer(view).X(col).Y(row))
		bottom = row
	}

	return layers
}
