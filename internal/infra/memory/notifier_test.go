package memory

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"job-board/internal/domain"
)

func TestNotifier_SupersedesAndExpires(t *testing.T) {
	start := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	clock := start
	n := newNotifier(2*time.Second, func() time.Time { return clock }, slog.New(slog.NewTextHandler(io.Discard, nil)))

	if _, ok := n.Current(start); ok {
		t.Fatal("expected no notification initially")
	}

	n.Notify(domain.SeveritySuccess, "posted")
	clock = start.Add(500 * time.Millisecond)
	n.Notify(domain.SeverityInfo, "removed")

	got, ok := n.Current(clock)
	if !ok {
		t.Fatal("expected a notification")
	}
	if got.Severity != domain.SeverityInfo || got.Message != "removed" {
		t.Errorf("Current = %+v, want info/removed", got)
	}

	if _, ok := n.Current(clock.Add(1999 * time.Millisecond)); !ok {
		t.Error("notification expired too early")
	}
	if _, ok := n.Current(clock.Add(2 * time.Second)); ok {
		t.Error("notification still visible after ttl")
	}
}

func TestNotifier_DefaultTTL(t *testing.T) {
	n := newNotifier(0, time.Now, slog.New(slog.NewTextHandler(io.Discard, nil)))
	if n.ttl != DefaultToastTTL {
		t.Errorf("ttl = %v, want %v", n.ttl, DefaultToastTTL)
	}
}
