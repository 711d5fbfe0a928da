package domain

import (
	"sort"
	"strings"
)

// FieldErrors maps a field label to its error message.
type FieldErrors map[string]string

// ValidationError is returned when a submitted posting fails validation.
type ValidationError struct {
	Fields FieldErrors
}

func (e *ValidationError) Error() string {
	labels := make([]string, 0, len(e.Fields))
	for label := range e.Fields {
		labels = append(labels, label)
	}
	sort.Strings(labels)

	msgs := make([]string, 0, len(labels))
	for _, label := range labels {
		msgs = append(msgs, e.Fields[label])
	}
	return "validation failed: " + strings.Join(msgs, " ")
}
