package validation_test

import (
	"testing"

	"job-board/internal/domain"
	"job-board/internal/validation"
)

func TestValidate_ReportsEveryField(t *testing.T) {
	v := validation.New()

	errs := v.Validate([]validation.Field{
		{Value: "", Label: "Job Title"},
		{Value: "A", Label: "Company Name"},
		{Value: "Valid", Label: "Location"},
		{Value: "Valid desc", Label: "Description"},
	})

	want := domain.FieldErrors{
		"Job Title":    "Job Title is required.",
		"Company Name": "Company Name must be at least 2 characters.",
	}
	if len(errs) != len(want) {
		t.Fatalf("errs = %v, want %v", errs, want)
	}
	for label, msg := range want {
		if errs[label] != msg {
			t.Errorf("errs[%q] = %q, want %q", label, errs[label], msg)
		}
	}
}

func TestValidate_TrimsBeforeChecking(t *testing.T) {
	v := validation.New()

	tests := []struct {
		name  string
		value string
		want  string
	}{
		{"whitespace only", "   \t ", "Location is required."},
		{"one char padded", "  x  ", "Location must be at least 2 characters."},
		{"two chars padded", "  NY ", ""},
		{"multibyte", "東京", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := v.Validate([]validation.Field{{Value: tt.value, Label: "Location"}})
			if got := errs["Location"]; got != tt.want {
				t.Errorf("error = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestValidatePosting(t *testing.T) {
	v := validation.New()
	valid := domain.JobFields{
		Title:       "Data Analyst",
		Company:     "Amazon",
		Location:    "Hyderabad",
		Type:        domain.JobTypeFullTime,
		Experience:  domain.ExperienceOneToThree,
		Description: "Analyze business data.",
	}

	if errs := v.ValidatePosting(valid); len(errs) != 0 {
		t.Fatalf("valid posting produced errors: %v", errs)
	}

	bad := valid
	bad.Type = "Gig"
	bad.Experience = ""
	errs := v.ValidatePosting(bad)
	if _, ok := errs[validation.LabelType]; !ok {
		t.Errorf("expected %q error, got %v", validation.LabelType, errs)
	}
	if got := errs[validation.LabelExperience]; got != "Experience is required." {
		t.Errorf("experience error = %q", got)
	}
	if len(errs) != 2 {
		t.Errorf("errs = %v, want 2 entries", errs)
	}
}

func TestValidatePosting_AcceptsEveryEnumeration(t *testing.T) {
	v := validation.New()
	base := domain.JobFields{
		Title:       "Data Analyst",
		Company:     "Amazon",
		Location:    "Hyderabad",
		Description: "Analyze business data.",
	}

	for _, typ := range domain.JobTypes {
		for _, exp := range domain.ExperienceLevels {
			p := base
			p.Type = typ
			p.Experience = exp
			if errs := v.ValidatePosting(p); len(errs) != 0 {
				t.Errorf("%q/%q rejected: %v", typ, exp, errs)
			}
		}
	}

	// Fragments of a quoted value are not values themselves.
	p := base
	p.Type = "Full"
	p.Experience = "Years"
	errs := v.ValidatePosting(p)
	if len(errs) != 2 {
		t.Errorf("errs = %v, want job type and experience errors", errs)
	}
}
