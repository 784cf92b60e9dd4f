package middlewares

import (
	"context"
	"errors"
	"time"

	"github.com/invoiceagent/invoiceagent/internal"
)

// DefaultTimeout is used when Timeout is given a non-positive duration.
const DefaultTimeout = 30 * time.Second

// Timeout puts a deadline on the request context. A handler still running
// when the deadline passes is abandoned and a *TimeoutError is returned.
// Handlers must pass c (or c.Context()) to blocking calls so they stop too.
func Timeout(timeout time.Duration) internal.Middleware {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	return func(next internal.HandlerFunc) internal.HandlerFunc {
		return func(c internal.Context) error {
			ctx, cancel := context.WithTimeout(c.Context(), timeout)
			defer cancel()
			c.SetContext(ctx)

			done := make(chan error, 1)
			go func() {
				done <- next(c)
			}()

			select {
			case err := <-done:
				if errors.Is(err, context.DeadlineExceeded) && errors.Is(ctx.Err(), context.DeadlineExceeded) {
					return &TimeoutError{Duration: timeout}
				}
				return err
			case <-ctx.Done():
				if errors.Is(ctx.Err(), context.DeadlineExceeded) {
					c.LogWarn("request timeout", "timeout", timeout.String())
					return &TimeoutError{Duration: timeout}
				}
				return ctx.Err()
			}
		}
	}
}
