// internal/scheduler/cron_scheduler.go
package scheduler

import (
	"context"
	"log/slog"
	"sync"

	"job-board/internal/domain"

	"github.com/robfig/cron/v3"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// cronScheduler runs named maintenance tasks on cron schedules (with seconds).
type cronScheduler struct {
	cron   *cron.Cron
	mu     sync.Mutex
	tasks  map[string]cron.EntryID
	logger *slog.Logger
	tracer trace.Tracer
}

// NewCronScheduler creates a scheduler whose specs use the given parser.
func NewCronScheduler(parser cron.ScheduleParser, logger *slog.Logger) domain.Scheduler {
	return &cronScheduler{
		cron:   cron.New(cron.WithParser(parser)),
		tasks:  make(map[string]cron.EntryID),
		logger: logger.With("component", "cron-scheduler"),
		tracer: otel.Tracer("job-board-scheduler"),
	}
}

func (s *cronScheduler) Start(ctx context.Context) error {
	s.logger.Info("cron scheduler started")
	s.cron.Start()
	<-ctx.Done()
	s.logger.Info("cron scheduler stopping...")
	s.Stop()
	s.logger.Info("cron scheduler stopped")
	return ctx.Err()
}

// Stop waits for running tasks to finish.
func (s *cronScheduler) Stop() {
	<-s.cron.Stop().Done()
}

// AddTask schedules task under name, replacing any task with the same name.
func (s *cronScheduler) AddTask(name, spec string, task func(ctx context.Context)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if entryID, ok := s.tasks[name]; ok {
		s.cron.Remove(entryID)
	}

	wrapper := &cronTaskWrapper{
		name:   name,
		task:   task,
		logger: s.logger.With("task", name),
		tracer: s.tracer,
	}

	entryID, err := s.cron.AddJob(spec, wrapper)
	if err != nil {
		s.logger.Error("failed to add task to cron", "task", name, "error", err)
		return err
	}

	s.tasks[name] = entryID
	s.logger.Info("added task to scheduler", "task", name, "schedule", spec)
	return nil
}

// RemoveTask unschedules the named task.
func (s *cronScheduler) RemoveTask(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if entryID, ok := s.tasks[name]; ok {
		s.cron.Remove(entryID)
		delete(s.tasks, name)
		s.logger.Info("removed task from scheduler", "task", name)
	}
	return nil
}

type cronTaskWrapper struct {
	name   string
	task   func(ctx context.Context)
	logger *slog.Logger
	tracer trace.Tracer
}

// Run is called by the cron library.
func (w *cronTaskWrapper) Run() {
	ctx, span := w.tracer.Start(context.Background(), "scheduler.Run",
		trace.WithAttributes(attribute.String("task.name", w.name)))
	defer span.End()

	w.logger.Info("running scheduled task")
	w.task(ctx)
}
