package domain

import "time"

// Severity classifies a toast notification.
type Severity string

const (
	SeveritySuccess Severity = "success"
	SeverityError   Severity = "error"
	SeverityInfo    Severity = "info"
)

// Notification is a transient message shown to the user.
type Notification struct {
	Severity Severity  `json:"severity"`
	Message  string    `json:"message"`
	ShownAt  time.Time `json:"shown_at"`
}

// Notifier surfaces transient messages. A new message supersedes the current one.
type Notifier interface {
	Notify(severity Severity, message string)
	Current(now time.Time) (Notification, bool)
}
