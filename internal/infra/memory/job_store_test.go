package memory

import (
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"job-board/internal/domain"
	"job-board/internal/infra/idgen"
)

func newTestStore() *jobStore {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	fixed := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	return newJobStore(idgen.NewCounter(0), func() time.Time { return fixed }, logger)
}

func fields(title string) domain.JobFields {
	return domain.JobFields{
		Title:       title,
		Company:     "Google",
		Location:    "Bangalore",
		Type:        domain.JobTypeFullTime,
		Experience:  domain.ExperienceZeroToTwo,
		Description: "Work on scalable systems.",
	}
}

func ids(jobs []domain.Job) []int64 {
	out := make([]int64, 0, len(jobs))
	for _, j := range jobs {
		out = append(out, j.ID)
	}
	return out
}

func equalIDs(a, b []int64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestJobStore_EmptyList(t *testing.T) {
	s := newTestStore()
	jobs := s.List()
	if jobs == nil {
		t.Fatal("List returned nil, want empty slice")
	}
	if len(jobs) != 0 || s.Count() != 0 {
		t.Errorf("len = %d, count = %d, want 0", len(jobs), s.Count())
	}
}

func TestJobStore_AddTrimsAndDefaults(t *testing.T) {
	s := newTestStore()
	in := fields("  Software Engineer  ")
	in.Company = "\tGoogle "
	in.Description = " Build things. \n"

	job := s.Add(in)

	if job.Title != "Software Engineer" {
		t.Errorf("Title = %q, want %q", job.Title, "Software Engineer")
	}
	if job.Company != "Google" {
		t.Errorf("Company = %q, want %q", job.Company, "Google")
	}
	if job.Description != "Build things." {
		t.Errorf("Description = %q, want %q", job.Description, "Build things.")
	}
	if job.Applied {
		t.Error("new job should not be applied")
	}
	if job.CreatedAt.IsZero() {
		t.Error("CreatedAt not set")
	}

	got := s.List()
	if len(got) != 1 || got[0] != job {
		t.Errorf("List = %+v, want [%+v]", got, job)
	}
}

func TestJobStore_IDsDistinctAcrossAddRemove(t *testing.T) {
	s := newTestStore()
	seen := make(map[int64]bool)

	for round := 0; round < 20; round++ {
		a := s.Add(fields("Job A"))
		b := s.Add(fields("Job B"))
		for _, id := range []int64{a.ID, b.ID} {
			if seen[id] {
				t.Fatalf("id %d handed out twice", id)
			}
			seen[id] = true
		}
		s.Remove(a.ID)
		if s.Count() != len(s.List()) {
			t.Fatalf("Count %d != len(List) %d", s.Count(), len(s.List()))
		}
	}
}

func TestJobStore_RemoveKeepsOrder(t *testing.T) {
	s := newTestStore()
	s.Reset([]domain.JobFields{fields("One"), fields("Two"), fields("Three")})

	if got := ids(s.List()); !equalIDs(got, []int64{1, 2, 3}) {
		t.Fatalf("ids = %v, want [1 2 3]", got)
	}

	if !s.Remove(2) {
		t.Fatal("Remove(2) = false, want true")
	}
	if got := ids(s.List()); !equalIDs(got, []int64{1, 3}) {
		t.Errorf("ids = %v, want [1 3]", got)
	}
}

func TestJobStore_RemoveMissingIsNoop(t *testing.T) {
	s := newTestStore()
	s.Add(fields("One"))
	before := s.List()

	if s.Remove(42) {
		t.Error("Remove(42) = true, want false")
	}
	after := s.List()
	if len(after) != len(before) || after[0] != before[0] {
		t.Errorf("store changed: before %+v, after %+v", before, after)
	}

	// Racing deletes of the same id: the second observes a no-op.
	id := before[0].ID
	if !s.Remove(id) {
		t.Error("first Remove = false, want true")
	}
	if s.Remove(id) {
		t.Error("second Remove = true, want false")
	}
}

func TestJobStore_MarkAppliedIdempotent(t *testing.T) {
	s := newTestStore()
	job := s.Add(fields("One"))

	got, changed, err := s.MarkApplied(job.ID)
	if err != nil {
		t.Fatalf("MarkApplied: %v", err)
	}
	if !changed || !got.Applied {
		t.Errorf("first call: changed=%v applied=%v, want true true", changed, got.Applied)
	}

	got, changed, err = s.MarkApplied(job.ID)
	if err != nil {
		t.Fatalf("MarkApplied again: %v", err)
	}
	if changed || !got.Applied {
		t.Errorf("second call: changed=%v applied=%v, want false true", changed, got.Applied)
	}

	if !s.List()[0].Applied {
		t.Error("stored job not applied")
	}
}

func TestJobStore_MarkAppliedMissing(t *testing.T) {
	s := newTestStore()
	_, changed, err := s.MarkApplied(7)
	if !errors.Is(err, domain.ErrJobNotFound) {
		t.Errorf("err = %v, want ErrJobNotFound", err)
	}
	if changed {
		t.Error("changed = true for missing job")
	}
}

func TestJobStore_ListIsSnapshot(t *testing.T) {
	s := newTestStore()
	s.Add(fields("One"))

	jobs := s.List()
	jobs[0].Title = "Mutated"
	jobs[0].Applied = true

	stored := s.List()[0]
	if stored.Title != "One" || stored.Applied {
		t.Errorf("stored job mutated through snapshot: %+v", stored)
	}
}

func TestJobStore_ResetNeverReusesIDs(t *testing.T) {
	s := newTestStore()
	first := s.Reset([]domain.JobFields{fields("One"), fields("Two")})
	second := s.Reset([]domain.JobFields{fields("One"), fields("Two")})

	if got := ids(first); !equalIDs(got, []int64{1, 2}) {
		t.Errorf("first reset ids = %v, want [1 2]", got)
	}
	if got := ids(second); !equalIDs(got, []int64{3, 4}) {
		t.Errorf("second reset ids = %v, want [3 4]", got)
	}
	if s.Count() != 2 {
		t.Errorf("Count = %d, want 2", s.Count())
	}
}
