package ports

import (
	"context"
	"time"
)

// RateCounterStore tracks request counts in fixed time windows, keyed by
// client. Incr must be atomic per key so concurrent bursts cannot exceed
// the configured maximum.
type RateCounterStore interface {
	// Incr records one request against key's current window and returns the
	// count after the increment plus the time remaining until the window
	// resets. The first increment of a window starts it.
	Incr(ctx context.Context, key string, window time.Duration) (count int64, resetIn time.Duration, err error)
	// Forgive undoes one previously counted request, used so successful
	// authentication attempts do not count toward the auth limit. Forgiving
	// an empty or expired window is a no-op.
	Forgive(ctx context.Context, key string) error
}
