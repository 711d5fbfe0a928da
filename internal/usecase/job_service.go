package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"job-board/internal/domain"
	"job-board/internal/metrics"
	"job-board/internal/validation"
	"job-board/internal/view"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Notification messages.
const (
	MsgFixErrors = "Please fix the highlighted errors."
	MsgApplied   = "Application submitted! Good luck 🎉"
	MsgRemoved   = "Job listing removed."
	MsgReset     = "Job board reset to sample listings."
)

// JobService runs the board actions: post, apply, delete and reset.
type JobService struct {
	store     domain.JobStore
	notifier  domain.Notifier
	validator *validation.Validator
	seed      []domain.JobFields
	grace     time.Duration
	afterFunc func(d time.Duration, f func()) *time.Timer
	logger    *slog.Logger
	tracer    trace.Tracer
}

// NewJobService creates a new JobService. seed is the listing set used by Seed and Reset.
// A positive grace delays removal of deleted jobs.
func NewJobService(store domain.JobStore, notifier domain.Notifier, v *validation.Validator, seed []domain.JobFields, grace time.Duration, logger *slog.Logger) *JobService {
	return &JobService{
		store:     store,
		notifier:  notifier,
		validator: v,
		seed:      seed,
		grace:     grace,
		afterFunc: time.AfterFunc,
		logger:    logger.With("component", "job-service"),
		tracer:    otel.Tracer("job-board-usecase"),
	}
}

// Post validates fields and adds the job. Validation failures return a
// *domain.ValidationError and raise an error notification.
func (s *JobService) Post(ctx context.Context, fields domain.JobFields) (domain.Job, error) {
	_, span := s.tracer.Start(ctx, "service.Post")
	defer span.End()

	if errs := s.validator.ValidatePosting(fields); len(errs) > 0 {
		err := &domain.ValidationError{Fields: errs}
		span.RecordError(err)
		span.SetStatus(codes.Error, "validation failed")
		metrics.BoardActionsTotal.WithLabelValues("post", "invalid").Inc()
		s.notifier.Notify(domain.SeverityError, MsgFixErrors)
		return domain.Job{}, err
	}

	job := s.store.Add(fields)
	span.SetAttributes(attribute.Int64("job.id", job.ID))
	s.logger.Info("job posted", "job_id", job.ID, "title", job.Title)

	metrics.BoardActionsTotal.WithLabelValues("post", "ok").Inc()
	s.syncGauge()
	s.notifier.Notify(domain.SeveritySuccess, fmt.Sprintf("\"%s\" posted successfully!", job.Title))
	return job, nil
}

// Apply marks the job as applied. Re-applying is a no-op and notifies nothing.
// A missing job yields domain.ErrJobNotFound and leaves the board untouched.
func (s *JobService) Apply(ctx context.Context, id int64) (domain.Job, bool, error) {
	_, span := s.tracer.Start(ctx, "service.Apply")
	defer span.End()
	span.SetAttributes(attribute.Int64("job.id", id))

	job, changed, err := s.store.MarkApplied(id)
	if err != nil {
		span.RecordError(err)
		metrics.BoardActionsTotal.WithLabelValues("apply", "noop").Inc()
		s.logger.Debug("apply on missing job", "job_id", id)
		return domain.Job{}, false, err
	}
	if !changed {
		metrics.BoardActionsTotal.WithLabelValues("apply", "noop").Inc()
		return job, false, nil
	}

	metrics.BoardActionsTotal.WithLabelValues("apply", "ok").Inc()
	s.logger.Info("job applied", "job_id", id)
	s.notifier.Notify(domain.SeveritySuccess, MsgApplied)
	return job, true, nil
}

// Delete removes the job, immediately or after the configured grace period.
// The removal itself is fire-and-forget; deleting a missing job is a no-op.
// It reports whether the job was on the board when the request arrived.
func (s *JobService) Delete(ctx context.Context, id int64) bool {
	_, span := s.tracer.Start(ctx, "service.Delete")
	defer span.End()
	span.SetAttributes(attribute.Int64("job.id", id), attribute.String("grace", s.grace.String()))

	found := s.contains(id)
	if !found {
		metrics.BoardActionsTotal.WithLabelValues("delete", "noop").Inc()
		return false
	}

	if s.grace <= 0 {
		s.remove(id)
		return true
	}
	s.afterFunc(s.grace, func() { s.remove(id) })
	return true
}

func (s *JobService) remove(id int64) {
	if !s.store.Remove(id) {
		metrics.BoardActionsTotal.WithLabelValues("delete", "noop").Inc()
		return
	}
	metrics.BoardActionsTotal.WithLabelValues("delete", "ok").Inc()
	s.syncGauge()
	s.logger.Info("job deleted", "job_id", id)
	s.notifier.Notify(domain.SeverityInfo, MsgRemoved)
}

func (s *JobService) contains(id int64) bool {
	for _, j := range s.store.List() {
		if j.ID == id {
			return true
		}
	}
	return false
}

// Seed loads the seed listings without notifying.
func (s *JobService) Seed(ctx context.Context) []domain.Job {
	_, span := s.tracer.Start(ctx, "service.Seed")
	defer span.End()

	jobs := s.store.Reset(s.seed)
	span.SetAttributes(attribute.Int("job.count", len(jobs)))
	s.syncGauge()
	return jobs
}

// Reset replaces the board with the seed listings and notifies.
func (s *JobService) Reset(ctx context.Context) []domain.Job {
	jobs := s.Seed(ctx)
	metrics.BoardActionsTotal.WithLabelValues("reset", "ok").Inc()
	s.logger.Info("job board reset", "count", len(jobs))
	s.notifier.Notify(domain.SeverityInfo, MsgReset)
	return jobs
}

// List returns the jobs in display order.
func (s *JobService) List(ctx context.Context) []domain.Job {
	_, span := s.tracer.Start(ctx, "service.List")
	defer span.End()

	jobs := s.store.List()
	span.SetAttributes(attribute.Int("job.count", len(jobs)))
	return jobs
}

// Board renders the current board as of now.
func (s *JobService) Board(ctx context.Context, now time.Time) view.Model {
	return view.Render(s.List(ctx), now)
}

// Notification returns the toast visible at now, if any.
func (s *JobService) Notification(now time.Time) (domain.Notification, bool) {
	return s.notifier.Current(now)
}

func (s *JobService) syncGauge() {
	metrics.JobsOnBoard.Set(float64(s.store.Count()))
}
