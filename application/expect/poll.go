// Package expect provides auto-waiting assertions over the page driver.
// Every assertion polls its condition until it holds or a deadline elapses.
package expect

import (
	"context"
	"fmt"
	"time"

	"formcheck/domain/entities"
)

const (
	DefaultTimeout  = 5 * time.Second
	DefaultInterval = 100 * time.Millisecond
)

// Condition reports whether the awaited state holds. A non-nil error is
// treated as "not yet" and kept as the last observed cause.
type Condition func(ctx context.Context) (bool, error)

// TimeoutError is returned by Poll when the deadline elapses
type TimeoutError struct {
	Timeout time.Duration
	Last    error
}

func (e *TimeoutError) Error() string {
	if e.Last != nil {
		return fmt.Sprintf("timed out after %s: %v", e.Timeout, e.Last)
	}
	return fmt.Sprintf("timed out after %s", e.Timeout)
}

func (e *TimeoutError) Is(target error) bool {
	return target == entities.ErrTimeout
}

func (e *TimeoutError) Unwrap() error {
	return e.Last
}

// Poll evaluates cond immediately and then every interval until it holds,
// the timeout elapses or ctx is done. Only the timeout yields a TimeoutError;
// cancellation of ctx is returned wrapping ctx.Err().
func Poll(ctx context.Context, timeout, interval time.Duration, cond Condition) error {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if interval <= 0 {
		interval = DefaultInterval
	}

	parent := ctx
	ctx, cancel := context.WithTimeout(parent, timeout)
	defer cancel()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	var last error
	for {
		ok, err := cond(ctx)
		if err == nil && ok {
			return nil
		}
		last = err

		select {
		case <-ctx.Done():
			if err := parent.Err(); err != nil {
				if last != nil {
					return fmt.Errorf("poll canceled: %w (last: %v)", err, last)
				}
				return fmt.Errorf("poll canceled: %w", err)
			}
			return &TimeoutError{Timeout: timeout, Last: last}
		case <-ticker.C:
		}
	}
}
