package memory

import (
	"log/slog"
	"sync"
	"time"

	"job-board/internal/domain"
)

// DefaultToastTTL is how long a notification stays visible.
const DefaultToastTTL = 2800 * time.Millisecond

type toastNotifier struct {
	mu      sync.Mutex
	current *domain.Notification
	ttl     time.Duration
	now     func() time.Time
	logger  *slog.Logger
}

// NewNotifier creates a single-slot notifier whose messages expire after ttl.
func NewNotifier(ttl time.Duration, logger *slog.Logger) domain.Notifier {
	return newNotifier(ttl, time.Now, logger)
}

func newNotifier(ttl time.Duration, now func() time.Time, logger *slog.Logger) *toastNotifier {
	if ttl <= 0 {
		ttl = DefaultToastTTL
	}
	return &toastNotifier{
		ttl:    ttl,
		now:    now,
		logger: logger.With("component", "notifier"),
	}
}

// Notify replaces the current notification.
func (n *toastNotifier) Notify(severity domain.Severity, message string) {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.current = &domain.Notification{
		Severity: severity,
		Message:  message,
		ShownAt:  n.now(),
	}
	n.logger.Info("notification", "severity", severity, "message", message)
}

// Current returns the visible notification, if any, as of now.
func (n *toastNotifier) Current(now time.Time) (domain.Notification, bool) {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.current == nil {
		return domain.Notification{}, false
	}
	if !now.Before(n.current.ShownAt.Add(n.ttl)) {
		n.current = nil
		return domain.Notification{}, false
	}
	return *n.current, true
}
