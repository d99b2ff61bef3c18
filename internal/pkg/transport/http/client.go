// Package http builds HTTP clients with wire-level retry support. It wraps
// HashiCorp's retryablehttp.Client and exposes functional options for the
// timeout and retry schedule.
package http

import (
	"time"

	"github.com/hashicorp/go-retryablehttp"
)

// config holds the HTTP client settings.
type config struct {
	timeout      time.Duration // per-request deadline
	retryWaitMin time.Duration // minimum wait between retries
	retryWaitMax time.Duration // maximum wait between retries
	retryMax     int           // maximum number of retries
}

// Option adjusts the client built by NewClient.
type Option func(*config)

// NewClient returns a retryablehttp.Client configured with the provided
// options. Defaults: 5s timeout, 1s-5s retry wait window, 2 retries.
func NewClient(opts ...Option) *retryablehttp.Client {
	cfg := config{
		timeout:      5 * time.Second,
		retryWaitMin: 1 * time.Second,
		retryWaitMax: 5 * time.Second,
		retryMax:     2,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	client := retryablehttp.NewClient()
	client.Logger = nil
	client.HTTPClient.Timeout = cfg.timeout
	client.RetryWaitMin = cfg.retryWaitMin
	client.RetryWaitMax = cfg.retryWaitMax
	client.RetryMax = cfg.retryMax
	return client
}

// WithTimeout sets the per-request deadline. Default: 5 seconds.
func WithTimeout(d time.Duration) Option {
	return func(c *config) {
		c.timeout = d
	}
}

// WithRetryWaitMin sets the minimum wait between retries. Default: 1 second.
func WithRetryWaitMin(d time.Duration) Option {
	return func(c *config) {
		c.retryWaitMin = d
	}
}

// WithRetryWaitMax sets the maximum wait between retries. Default: 5 seconds.
func WithRetryWaitMax(d time.Duration) Option {
	return func(c *config) {
		c.retryWaitMax = d
	}
}

// WithRetryMax sets the maximum number of retries. Default: 2.
func WithRetryMax(n int) Option {
	return func(c *config) {
		c.retryMax = n
	}
}
