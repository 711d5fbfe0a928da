package domain

import "errors"

// ErrJobNotFound is a sentinel error returned when a job is not found.
var ErrJobNotFound = errors.New("job not found")

// JobStore owns the ordered collection of jobs on the board.
// Implementations return copies; callers never mutate stored jobs directly.
type JobStore interface {
	// List returns the jobs in insertion order.
	List() []Job
	// Add appends a new job built from fields and returns it.
	Add(fields JobFields) Job
	// Remove deletes the job with the given id. It reports whether a job was removed.
	Remove(id int64) bool
	// MarkApplied flips the applied flag of a job. It returns ErrJobNotFound if the
	// job is absent, and changed=false if the job was already applied.
	MarkApplied(id int64) (job Job, changed bool, err error)
	// Count returns the number of jobs, always equal to len(List()).
	Count() int
	// Reset replaces the contents with fresh copies of seed.
	Reset(seed []JobFields) []Job
}

// IDGenerator hands out job ids. Ids are never handed out twice.
type IDGenerator interface {
	NextID() int64
}
