// Package notify is the user-visible notification channel (the toasts of a
// chat UI). Services report outcomes here instead of returning errors for
// failures the user should simply be told about.
package notify

import (
	"log/slog"
	"sync"
	"time"
)

// Level is the severity of a notification.
type Level string

const (
	LevelSuccess Level = "success"
	LevelWarning Level = "warning"
	LevelError   Level = "error"
)

// Notification is one message shown to the user.
type Notification struct {
	ID        uint64    `json:"id"`
	Level     Level     `json:"level"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

// Notifier receives user-visible notifications.
type Notifier interface {
	Notify(level Level, message string)
}

// Feed keeps the most recent notifications in memory.
type Feed struct {
	mu     sync.Mutex
	limit  int
	nextID uint64
	items  []Notification
}

// NewFeed returns a feed keeping at most limit entries.
func NewFeed(limit int) *Feed {
	if limit <= 0 {
		limit = 50
	}
	return &Feed{limit: limit}
}

// Notify records a notification and logs it.
func (f *Feed) Notify(level Level, message string) {
	switch level {
	case LevelError:
		slog.Error("User notification", "message", message)
	case LevelWarning:
		slog.Warn("User notification", "message", message)
	default:
		slog.Info("User notification", "level", level, "message", message)
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	f.items = append(f.items, Notification{
		ID:        f.nextID,
		Level:     level,
		Message:   message,
		CreatedAt: time.Now(),
	})
	if over := len(f.items) - f.limit; over > 0 {
		f.items = append(f.items[:0:0], f.items[over:]...)
	}
}

// Since returns the notifications with an id greater than afterID, oldest first.
func (f *Feed) Since(afterID uint64) []Notification {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := []Notification{}
	for _, n := range f.items {
		if n.ID > afterID {
			out = append(out, n)
		}
	}
	return out
}
