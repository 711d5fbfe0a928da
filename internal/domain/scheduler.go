package domain

import "context"

// Scheduler runs recurring board maintenance tasks.
type Scheduler interface {
	Start(ctx context.Context) error
	Stop()

	AddTask(name, spec string, task func(ctx context.Context)) error
	RemoveTask(name string) error
}
