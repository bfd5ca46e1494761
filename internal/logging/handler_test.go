package logging

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/olegiv/lumina-go/internal/model"
)

func newTestLogger(log *EventLog) *slog.Logger {
	inner := slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug})
	return slog.New(NewEventLogHandler(inner, log))
}

func TestHandlerRecordsWarnAndAbove(t *testing.T) {
	log := NewEventLog(16)
	logger := newTestLogger(log)

	logger.Info("routine startup message")
	logger.Warn("persisting session", "error", "disk full")
	logger.Error("seeding settings", "error", "boom")

	events := log.Recent()
	if len(events) != 2 {
		t.Fatalf("recorded %d events, want 2 (INFO must not be recorded)", len(events))
	}

	// Newest first.
	if events[0].Level != model.EventLevelError {
		t.Errorf("events[0].Level = %q, want error", events[0].Level)
	}
	if events[1].Level != model.EventLevelWarning {
		t.Errorf("events[1].Level = %q, want warning", events[1].Level)
	}
	if events[1].Category != model.EventCategorySession {
		t.Errorf("events[1].Category = %q, want session", events[1].Category)
	}
	if events[1].Metadata != `{"error":"disk full"}` {
		t.Errorf("events[1].Metadata = %q", events[1].Metadata)
	}
}

func TestEventLogEvictsOldest(t *testing.T) {
	log := NewEventLog(2)
	logger := newTestLogger(log)

	logger.Warn("first")
	logger.Warn("second")
	logger.Warn("third")

	events := log.Recent()
	if len(events) != 2 {
		t.Fatalf("recorded %d events, want capacity 2", len(events))
	}
	if events[0].Message != "third" || events[1].Message != "second" {
		t.Errorf("unexpected eviction order: %q, %q", events[0].Message, events[1].Message)
	}
}

func TestExtractCategoryFromAttr(t *testing.T) {
	log := NewEventLog(4)
	logger := newTestLogger(log)

	logger.Warn("anything at all", "category", model.EventCategoryConfig)

	events := log.Recent()
	if len(events) != 1 || events[0].Category != model.EventCategoryConfig {
		t.Fatalf("explicit category attribute not honored: %+v", events)
	}
}

func TestHandlerEnabledDelegates(t *testing.T) {
	inner := slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelWarn})
	h := NewEventLogHandler(inner, NewEventLog(4))

	if h.Enabled(context.Background(), slog.LevelDebug) {
		t.Error("Enabled(debug) = true, inner handler is warn-level")
	}
	if !h.Enabled(context.Background(), slog.LevelError) {
		t.Error("Enabled(error) = false")
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  slog.Level
	}{
		{"debug", "debug", slog.LevelDebug},
		{"info", "info", slog.LevelInfo},
		{"warn", "warn", slog.LevelWarn},
		{"warning alias", "WARNING", slog.LevelWarn},
		{"error", "error", slog.LevelError},
		{"unknown defaults to info", "verbose", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseLevel(tt.input); got != tt.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}
