package http

import (
	"job-board/internal/domain"
)

// PostJobRequest is the JSON body for creating a job.
type PostJobRequest struct {
	Title       string `json:"title"`
	Company     string `json:"company"`
	Location    string `json:"location"`
	Type        string `json:"type"`
	Experience  string `json:"experience"`
	Description string `json:"description"`
}

// ToDomainFields converts the request into domain fields.
func (r *PostJobRequest) ToDomainFields() domain.JobFields {
	return domain.JobFields{
		Title:       r.Title,
		Company:     r.Company,
		Location:    r.Location,
		Type:        domain.JobType(r.Type),
		Experience:  domain.Experience(r.Experience),
		Description: r.Description,
	}
}

// JobListResponse is returned by GET /api/jobs.
type JobListResponse struct {
	Count int          `json:"count"`
	Jobs  []domain.Job `json:"jobs"`
}

// ApplyResponse is returned by POST /api/jobs/{id}/apply.
type ApplyResponse struct {
	Job     domain.Job `json:"job"`
	Changed bool       `json:"changed"`
}

// ValidationErrorResponse is returned when a posting is rejected.
type ValidationErrorResponse struct {
	Error  string             `json:"error"`
	Fields domain.FieldErrors `json:"fields"`
}
