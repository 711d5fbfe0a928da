// Package memory holds the in-memory implementations backing the board.
package memory

import (
	"log/slog"
	"sync"
	"time"

	"job-board/internal/domain"
)

type jobStore struct {
	mu     sync.RWMutex
	jobs   []domain.Job
	ids    domain.IDGenerator
	now    func() time.Time
	logger *slog.Logger
}

// NewJobStore creates an empty job store drawing ids from ids.
func NewJobStore(ids domain.IDGenerator, logger *slog.Logger) domain.JobStore {
	return newJobStore(ids, time.Now, logger)
}

func newJobStore(ids domain.IDGenerator, now func() time.Time, logger *slog.Logger) *jobStore {
	return &jobStore{
		jobs:   make([]domain.Job, 0),
		ids:    ids,
		now:    now,
		logger: logger.With("component", "job-store"),
	}
}

// List returns a snapshot of the jobs in insertion order.
func (s *jobStore) List() []domain.Job {
	s.mu.RLock()
	defer s.mu.RUnlock()

	jobs := make([]domain.Job, len(s.jobs))
	copy(jobs, s.jobs)
	return jobs
}

// Add appends a job built from the trimmed fields.
func (s *jobStore) Add(fields domain.JobFields) domain.Job {
	s.mu.Lock()
	defer s.mu.Unlock()

	job := s.newJob(fields)
	s.jobs = append(s.jobs, job)
	s.logger.Debug("job added", "job_id", job.ID, "count", len(s.jobs))
	return job
}

func (s *jobStore) newJob(fields domain.JobFields) domain.Job {
	return domain.Job{
		ID:        s.ids.NextID(),
		JobFields: fields.Normalize(),
		CreatedAt: s.now(),
	}
}

// Remove deletes the job with id if present.
func (s *jobStore) Remove(id int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return false
	}
	s.jobs = append(s.jobs[:i], s.jobs[i+1:]...)
	s.logger.Debug("job removed", "job_id", id, "count", len(s.jobs))
	return true
}

// MarkApplied sets the applied flag once.
func (s *jobStore) MarkApplied(id int64) (domain.Job, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return domain.Job{}, false, domain.ErrJobNotFound
	}
	if s.jobs[i].Applied {
		return s.jobs[i], false, nil
	}
	s.jobs[i].Applied = true
	return s.jobs[i], true, nil
}

// Count returns the number of jobs.
func (s *jobStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.jobs)
}

// Reset replaces every job with a freshly identified copy of seed.
func (s *jobStore) Reset(seed []domain.JobFields) []domain.Job {
	s.mu.Lock()
	defer s.mu.Unlock()

	jobs := make([]domain.Job, 0, len(seed))
	for _, fields := range seed {
		jobs = append(jobs, s.newJob(fields))
	}
	s.jobs = jobs
	s.logger.Info("job store reset", "count", len(jobs))

	out := make([]domain.Job, len(jobs))
	copy(out, jobs)
	return out
}

func (s *jobStore) indexOf(id int64) int {
	for i := range s.jobs {
		if s.jobs[i].ID == id {
			return i
		}
	}
	return -1
}
