// Package retry wraps avast/retry-go behind a small interface with
// functional options. The default policy is a bounded exponential backoff,
// which is what every RPC-facing component in this module needs.
package retry

import (
	"context"
	"time"

	retry "github.com/avast/retry-go/v4"
)

// Retry executes operations that may fail transiently, reattempting them
// according to the configured policy.
type Retry interface {
	// Execute runs operation, retrying on error with exponential backoff up
	// to the configured attempt limit. A canceled or expired ctx interrupts
	// any pending backoff wait and stops further attempts.
	//
	// It returns nil once the operation succeeds, or an error after the
	// final attempt fails or the context is done.
	Execute(ctx context.Context, operation func() error) error
}

// config holds the retry policy knobs.
type config struct {
	attempts    uint          // total attempts, including the first
	delay       time.Duration // base delay before the first retry
	maxDelay    time.Duration // cap on the backoff growth
	lastErrOnly bool          // report only the final attempt's error
}

// Option adjusts the retry policy built by New.
type Option func(*config)

// retrier is the retry-go backed implementation of Retry.
type retrier struct {
	cfg config
}

var _ Retry = (*retrier)(nil)

// New builds a Retry with the given options. Defaults: 3 attempts, 1s base
// delay, 5s max delay, last error only.
func New(opts ...Option) Retry {
	cfg := config{
		attempts:    3,
		delay:       1 * time.Second,
		maxDelay:    5 * time.Second,
		lastErrOnly: true,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &retrier{cfg: cfg}
}

// Execute implements Retry.
func (r *retrier) Execute(ctx context.Context, operation func() error) error {
	return retry.Do(operation,
		retry.Attempts(r.cfg.attempts),
		retry.Delay(r.cfg.delay),
		retry.MaxDelay(r.cfg.maxDelay),
		retry.DelayType(retry.BackOffDelay),
		retry.LastErrorOnly(r.cfg.lastErrOnly),
		retry.Context(ctx),
	)
}

// WithAttempts sets the total number of attempts, including the initial one.
// Default: 3.
func WithAttempts(n uint) Option {
	return func(c *config) {
		c.attempts = n
	}
}

// WithDelay sets the base delay before the first retry. Subsequent delays
// grow exponentially. Default: 1 second.
func WithDelay(d time.Duration) Option {
	return func(c *config) {
		c.delay = d
	}
}

// WithMaxDelay caps the exponential backoff growth. Default: 5 seconds.
func WithMaxDelay(d time.Duration) Option {
	return func(c *config) {
		c.maxDelay = d
	}
}

// WithLastErrorOnly controls whether Execute reports only the final
// attempt's error (true) or all attempt errors combined (false).
// Default: true.
func WithLastErrorOnly(b bool) Option {
	return func(c *config) {
		c.lastErrOnly = b
	}
}
