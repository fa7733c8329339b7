// Package notify carries user-facing notifications from the api client layer
// to whatever surface renders them. The client packages depend only on the
// Notifier interface so that fetching and notifying stay separate concerns.
package notify

import (
	"time"

	"github.com/google/uuid"
)

type Level string

const (
	LevelInfo    Level = "info"
	LevelSuccess Level = "success"
	LevelWarning Level = "warning"
	LevelError   Level = "error"
)

// DefaultDuration is how long the browser should display a toast.
const DefaultDuration = 5 * time.Second

// Notification is a single toast-style message.
type Notification struct {
	ID      uuid.UUID `json:"id"`
	Level   Level     `json:"level"`
	Title   string    `json:"title"`
	Message string    `json:"message"`

	// DurationMS is milliseconds on the wire - browsers pass it straight to
	// their toast timer.
	DurationMS int64     `json:"duration_ms"`
	At         time.Time `json:"at"`
}

// Notifier accepts notifications for eventual display to the user.
type Notifier interface {
	Notify(n Notification)
}

// New fills in the ID, timestamp and default duration for a notification.
func New(level Level, title, message string) Notification {
	return Notification{
		ID:         uuid.New(),
		Level:      level,
		Title:      title,
		Message:    message,
		DurationMS: DefaultDuration.Milliseconds(),
		At:         time.Now().UTC(),
	}
}

// Discard drops all notifications. Used in tests and non-interactive contexts.
type Discard struct{}

func (Discard) Notify(Notification) {}
