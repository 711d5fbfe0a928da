package scheduler

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/robfig/cron/v3"
)

func newTestScheduler() *cronScheduler {
	parser := cron.NewParser(cron.Second | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor)
	return NewCronScheduler(parser, slog.New(slog.NewTextHandler(io.Discard, nil))).(*cronScheduler)
}

func TestAddTask_ReplacesByName(t *testing.T) {
	s := newTestScheduler()
	noop := func(context.Context) {}

	if err := s.AddTask("reset", "0 0 3 * * *", noop); err != nil {
		t.Fatalf("AddTask: %v", err)
	}
	if err := s.AddTask("reset", "@hourly", noop); err != nil {
		t.Fatalf("AddTask again: %v", err)
	}
	if got := len(s.cron.Entries()); got != 1 {
		t.Errorf("entries = %d, want 1", got)
	}

	if err := s.RemoveTask("reset"); err != nil {
		t.Fatalf("RemoveTask: %v", err)
	}
	if got := len(s.cron.Entries()); got != 0 {
		t.Errorf("entries after remove = %d, want 0", got)
	}
}

func TestAddTask_InvalidSpec(t *testing.T) {
	s := newTestScheduler()
	if err := s.AddTask("reset", "not a schedule", func(context.Context) {}); err == nil {
		t.Error("expected error for invalid spec")
	}
}

func TestStart_RunsTasks(t *testing.T) {
	s := newTestScheduler()
	ran := make(chan struct{}, 1)
	if err := s.AddTask("tick", "* * * * * *", func(context.Context) {
		select {
		case ran <- struct{}{}:
		default:
		}
	}); err != nil {
		t.Fatalf("AddTask: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Start(ctx) }()

	select {
	case <-ran:
	case <-time.After(3 * time.Second):
		t.Fatal("task did not run")
	}

	cancel()
	if err := <-done; err != context.Canceled {
		t.Errorf("Start returned %v, want context.Canceled", err)
	}
}
