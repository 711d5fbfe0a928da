// Package validation checks job postings submitted through the board form or the API.
package validation

import (
	"fmt"
	"strings"

	"job-board/internal/domain"

	"github.com/go-playground/validator/v10"
)

// Field labels, used both as error keys and in messages.
const (
	LabelTitle       = "Job Title"
	LabelCompany     = "Company Name"
	LabelLocation    = "Location"
	LabelDescription = "Description"
	LabelType        = "Job Type"
	LabelExperience  = "Experience"
)

// MinLength is the minimum number of characters of a trimmed text field.
const MinLength = 2

// Field is a labeled form value.
type Field struct {
	Value string
	Label string
}

// Validator runs the form rules.
type Validator struct {
	validate *validator.Validate
}

// New creates a Validator.
func New() *Validator {
	return &Validator{validate: validator.New()}
}

// Validate checks every field and returns the errors keyed by label.
// All fields are checked so that all errors surface together.
func (v *Validator) Validate(fields []Field) domain.FieldErrors {
	errs := domain.FieldErrors{}
	for _, f := range fields {
		if msg := v.checkText(f); msg != "" {
			errs[f.Label] = msg
		}
	}
	return errs
}

func (v *Validator) checkText(f Field) string {
	value := strings.TrimSpace(f.Value)
	if err := v.validate.Var(value, "required"); err != nil {
		return fmt.Sprintf("%s is required.", f.Label)
	}
	if err := v.validate.Var(value, fmt.Sprintf("min=%d", MinLength)); err != nil {
		return fmt.Sprintf("%s must be at least %d characters.", f.Label, MinLength)
	}
	return ""
}

// ValidatePosting validates a whole posting: the four text fields plus the
// job type and experience enumerations.
func (v *Validator) ValidatePosting(p domain.JobFields) domain.FieldErrors {
	errs := v.Validate(TextFields(p))

	if msg := v.checkEnum(string(p.Type), jobTypeTag, LabelType, joinTypes()); msg != "" {
		errs[LabelType] = msg
	}
	if msg := v.checkEnum(string(p.Experience), experienceTag, LabelExperience, joinExperience()); msg != "" {
		errs[LabelExperience] = msg
	}
	return errs
}

func (v *Validator) checkEnum(value, tag, label, allowed string) string {
	value = strings.TrimSpace(value)
	if err := v.validate.Var(value, "required"); err != nil {
		return fmt.Sprintf("%s is required.", label)
	}
	if err := v.validate.Var(value, tag); err != nil {
		return fmt.Sprintf("%s must be one of %s.", label, allowed)
	}
	return ""
}

// TextFields returns the labeled text fields of a posting in form order.
func TextFields(p domain.JobFields) []Field {
	return []Field{
		{Value: p.Title, Label: LabelTitle},
		{Value: p.Company, Label: LabelCompany},
		{Value: p.Location, Label: LabelLocation},
		{Value: p.Description, Label: LabelDescription},
	}
}

// Enumerations are checked with oneof; values contain spaces, so each one is quoted.
var (
	jobTypeTag    = oneOf(domain.JobTypes)
	experienceTag = oneOf(domain.ExperienceLevels)
)

func oneOf[T ~string](values []T) string {
	quoted := make([]string, 0, len(values))
	for _, v := range values {
		quoted = append(quoted, "'"+string(v)+"'")
	}
	return "oneof=" + strings.Join(quoted, " ")
}

func joinTypes() string {
	names := make([]string, 0, len(domain.JobTypes))
	for _, t := range domain.JobTypes {
		names = append(names, string(t))
	}
	return strings.Join(names, ", ")
}

func joinExperience() string {
	names := make([]string, 0, len(domain.ExperienceLevels))
	for _, e := range domain.ExperienceLevels {
		names = append(names, string(e))
	}
	return strings.Join(names, ", ")
}
