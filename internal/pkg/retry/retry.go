// Package retry provides the single retry-with-bounded-backoff loop used by
// all external read paths, replacing per-call bespoke loops.
package retry

import (
	"context"
	"fmt"
	"time"
)

// Do runs op up to attempts times, sleeping delay, 2*delay, 3*delay ...
// between failures. The context cancels waiting between attempts; op itself
// is expected to honor the same context. The last error is returned when
// every attempt fails.
func Do(ctx context.Context, attempts int, delay time.Duration, op func(ctx context.Context) error) error {
	if attempts < 1 {
		return fmt.Errorf("retry: attempts must be >= 1, got %d", attempts)
	}

	var err error
	for i := 0; i < attempts; i++ {
		if err = op(ctx); err == nil {
			return nil
		}

		if i == attempts-1 {
			break
		}

		wait := time.Duration(i+1) * delay
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(wait):
		}
	}

	return fmt.Errorf("retry: %d attempts failed: %w", attempts, err)
}
