// Package logging provides a custom slog handler that integrates with the
// in-memory event log. It forwards logs at WARN level and above to a bounded
// ring of recent events for the admin diagnostics view.
package logging

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	"github.com/olegiv/lumina-go/internal/model"
)

// DefaultEventCapacity is the number of recent events kept in memory.
const DefaultEventCapacity = 256

// EventLogHandler is a slog.Handler that wraps another handler and also
// records WARN and ERROR level logs in a bounded in-memory event log.
type EventLogHandler struct {
	inner slog.Handler
	log   *EventLog
	level slog.Level // Minimum level to record (default: WARN)
}

// EventLog is a bounded ring of recent events, newest first.
type EventLog struct {
	mu     sync.Mutex
	events []model.Event
	cap    int
}

// NewEventLog creates an event log holding at most capacity entries.
func NewEventLog(capacity int) *EventLog {
	if capacity <= 0 {
		capacity = DefaultEventCapacity
	}
	return &EventLog{cap: capacity}
}

// Append records an event, evicting the oldest entry when full.
func (l *EventLog) Append(e model.Event) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.events = append([]model.Event{e}, l.events...)
	if len(l.events) > l.cap {
		l.events = l.events[:l.cap]
	}
}

// Recent returns the recorded events, newest first.
func (l *EventLog) Recent() []model.Event {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]model.Event, len(l.events))
	copy(out, l.events)
	return out
}

// NewEventLogHandler creates a handler that wraps inner and records
// WARN-and-above records into log.
func NewEventLogHandler(inner slog.Handler, log *EventLog) *EventLogHandler {
	return &EventLogHandler{
		inner: inner,
		log:   log,
		level: slog.LevelWarn,
	}
}

// Enabled implements slog.Handler.
func (h *EventLogHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.inner.Enabled(ctx, level)
}

// Handle implements slog.Handler.
func (h *EventLogHandler) Handle(ctx context.Context, r slog.Record) error {
	// Always forward to the inner handler first
	if err := h.inner.Handle(ctx, r); err != nil {
		return err
	}

	if r.Level >= h.level {
		h.log.Append(model.Event{
			Level:     slogLevelToEventLevel(r.Level),
			Category:  extractCategory(r),
			Message:   r.Message,
			Metadata:  extractMetadata(r),
			CreatedAt: r.Time,
		})
	}

	return nil
}

// WithAttrs implements slog.Handler.
func (h *EventLogHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &EventLogHandler{
		inner: h.inner.WithAttrs(attrs),
		log:   h.log,
		level: h.level,
	}
}

// WithGroup implements slog.Handler.
func (h *EventLogHandler) WithGroup(name string) slog.Handler {
	return &EventLogHandler{
		inner: h.inner.WithGroup(name),
		log:   h.log,
		level: h.level,
	}
}

// slogLevelToEventLevel converts a slog.Level to an event log level.
func slogLevelToEventLevel(level slog.Level) string {
	switch {
	case level >= slog.LevelError:
		return model.EventLevelError
	case level >= slog.LevelWarn:
		return model.EventLevelWarning
	default:
		return model.EventLevelInfo
	}
}

// extractCategory attempts to extract a category from the log record attributes.
// It looks for a "category" attribute or infers from common patterns.
func extractCategory(r slog.Record) string {
	var category string

	r.Attrs(func(a slog.Attr) bool {
		if a.Key == "category" {
			category = a.Value.String()
			return false // Stop iteration
		}
		return true
	})

	if category != "" {
		return category
	}

	msg := strings.ToLower(r.Message)
	switch {
	case strings.Contains(msg, "session") || strings.Contains(msg, "rehydrat"):
		return model.EventCategorySession
	case strings.Contains(msg, "login") || strings.Contains(msg, "logout"):
		return model.EventCategoryAuth
	case strings.Contains(msg, "post") || strings.Contains(msg, "page") || strings.Contains(msg, "content"):
		return model.EventCategoryContent
	case strings.Contains(msg, "user"):
		return model.EventCategoryUser
	case strings.Contains(msg, "config") || strings.Contains(msg, "setting") || strings.Contains(msg, "theme"):
		return model.EventCategoryConfig
	default:
		return model.EventCategorySystem
	}
}

// extractMetadata collects all log attributes into a JSON string.
func extractMetadata(r slog.Record) string {
	if r.NumAttrs() == 0 {
		return "{}"
	}

	var sb strings.Builder
	sb.WriteString("{")
	first := true

	r.Attrs(func(a slog.Attr) bool {
		if a.Key == "category" {
			return true // Skip category, already extracted
		}
		if !first {
			sb.WriteString(",")
		}
		first = false
		sb.WriteString(`"`)
		sb.WriteString(escapeJSON(a.Key))
		sb.WriteString(`":"`)
		sb.WriteString(escapeJSON(a.Value.String()))
		sb.WriteString(`"`)
		return true
	})

	sb.WriteString("}")
	return sb.String()
}

// escapeJSON escapes special characters in a string for JSON.
func escapeJSON(s string) string {
	var sb strings.Builder
	for _, r := range s {
		switch r {
		case '"':
			sb.WriteString(`\"`)
		case '\\':
			sb.WriteString(`\\`)
		case '\n':
			sb.WriteString(`\n`)
		case '\r':
			sb.WriteString(`\r`)
		case '\t':
			sb.WriteString(`\t`)
		default:
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

// ParseLevel converts a level name from configuration to a slog.Level.
// Unknown names default to info.
func ParseLevel(name string) slog.Level {
	switch strings.ToLower(name) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
