package domain

import (
	"strings"
	"time"
)

// JobType is the employment type shown as a badge on each card.
type JobType string

const (
	JobTypeFullTime   JobType = "Full Time"
	JobTypePartTime   JobType = "Part Time"
	JobTypeRemote     JobType = "Remote"
	JobTypeInternship JobType = "Internship"
	JobTypeContract   JobType = "Contract"
)

// JobTypes lists the accepted job types in form order.
var JobTypes = []JobType{JobTypeFullTime, JobTypePartTime, JobTypeRemote, JobTypeInternship, JobTypeContract}

// Experience is the required experience level of a posting.
type Experience string

const (
	ExperienceFresher     Experience = "Fresher"
	ExperienceZeroToTwo   Experience = "0-2 Years"
	ExperienceOneToThree  Experience = "1-3 Years"
	ExperienceThreeToFive Experience = "3-5 Years"
	ExperienceFivePlus    Experience = "5+ Years"
)

// ExperienceLevels lists the accepted experience levels in form order.
var ExperienceLevels = []Experience{ExperienceFresher, ExperienceZeroToTwo, ExperienceOneToThree, ExperienceThreeToFive, ExperienceFivePlus}

// JobFields holds the user-supplied part of a job posting.
type JobFields struct {
	Title       string     `json:"title" yaml:"title"`
	Company     string     `json:"company" yaml:"company"`
	Location    string     `json:"location" yaml:"location"`
	Type        JobType    `json:"type" yaml:"type"`
	Experience  Experience `json:"experience" yaml:"experience"`
	Description string     `json:"description" yaml:"description"`
}

// Normalize returns a copy with surrounding whitespace removed from every field.
func (f JobFields) Normalize() JobFields {
	return JobFields{
		Title:       strings.TrimSpace(f.Title),
		Company:     strings.TrimSpace(f.Company),
		Location:    strings.TrimSpace(f.Location),
		Type:        JobType(strings.TrimSpace(string(f.Type))),
		Experience:  Experience(strings.TrimSpace(string(f.Experience))),
		Description: strings.TrimSpace(f.Description),
	}
}

// Job represents a single posting on the board.
type Job struct {
	ID int64 `json:"id"`
	JobFields
	Applied   bool      `json:"applied"`
	CreatedAt time.Time `json:"created_at"`
}
