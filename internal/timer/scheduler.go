package timer

import "time"

//go:generate mockgen -package=mocks -destination=mocks/mock_scheduler.go github.com/KirkDiggler/trebek/internal/timer Scheduler

// Scheduler runs a callback once after a delay. There is no cancel API:
// callbacks are expected to re-read the state they act on and no-op when it
// has already moved on (fire-and-check).
type Scheduler interface {
	Schedule(delay time.Duration, fn func())
}

// DefaultScheduler implements the Scheduler interface using the runtime timer
type DefaultScheduler struct{}

// New creates a new DefaultScheduler
func New() *DefaultScheduler {
	return &DefaultScheduler{}
}

// Schedule runs fn once after delay
func (s *DefaultScheduler) Schedule(delay time.Duration, fn func()) {
	time.AfterFunc(delay, fn)
}
