// Package seed loads the sample listings the board starts with.
package seed

import (
	_ "embed"
	"fmt"
	"os"

	"job-board/internal/domain"
	"job-board/internal/validation"

	"gopkg.in/yaml.v3"
)

//go:embed sample_jobs.yaml
var sampleJobs []byte

type document struct {
	Jobs []domain.JobFields `yaml:"jobs"`
}

// Samples returns the built-in sample listings.
func Samples() []domain.JobFields {
	jobs, err := Parse(sampleJobs)
	if err != nil {
		panic(fmt.Sprintf("seed: embedded sample jobs: %v", err))
	}
	return jobs
}

// Load reads listings from a YAML file. An empty path yields the built-in samples.
func Load(path string) ([]domain.JobFields, error) {
	if path == "" {
		return Samples(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file %s: %w", path, err)
	}
	jobs, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse seed file %s: %w", path, err)
	}
	return jobs, nil
}

// Parse decodes a YAML document of the form `jobs: [...]`. Every job must pass
// the same checks as a posted one.
func Parse(data []byte) ([]domain.JobFields, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}

	v := validation.New()
	jobs := make([]domain.JobFields, 0, len(doc.Jobs))
	for i, j := range doc.Jobs {
		j = j.Normalize()
		if errs := v.ValidatePosting(j); len(errs) > 0 {
			return nil, fmt.Errorf("job %d: %w", i+1, &domain.ValidationError{Fields: errs})
		}
		jobs = append(jobs, j)
	}
	return jobs, nil
}
