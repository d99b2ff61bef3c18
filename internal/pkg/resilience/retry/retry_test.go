package retry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRetry_Execute(t *testing.T) {
	t.Run("successful operation runs once", func(t *testing.T) {
		r := New()
		callCount := 0

		err := r.Execute(t.Context(), func() error {
			callCount++
			return nil
		})

		assert.NoError(t, err)
		assert.Equal(t, 1, callCount)
	})

	t.Run("retries until success", func(t *testing.T) {
		r := New(
			WithAttempts(3),
			WithDelay(1*time.Millisecond),
			WithMaxDelay(5*time.Millisecond),
		)
		callCount := 0

		err := r.Execute(t.Context(), func() error {
			callCount++
			if callCount < 2 {
				return errors.New("temporary error")
			}
			return nil
		})

		assert.NoError(t, err)
		assert.Equal(t, 2, callCount)
	})

	t.Run("exhausts attempts and returns last error", func(t *testing.T) {
		r := New(
			WithAttempts(3),
			WithDelay(1*time.Millisecond),
			WithMaxDelay(5*time.Millisecond),
		)
		callCount := 0
		expectedErr := errors.New("persistent error")

		err := r.Execute(t.Context(), func() error {
			callCount++
			return expectedErr
		})

		assert.ErrorIs(t, err, expectedErr)
		assert.Equal(t, 3, callCount)
	})

	t.Run("context cancellation interrupts backoff wait", func(t *testing.T) {
		r := New(
			WithAttempts(5),
			WithDelay(200*time.Millisecond),
		)
		callCount := 0

		ctx, cancel := context.WithCancel(t.Context())
		go func() {
			time.Sleep(10 * time.Millisecond)
			cancel()
		}()

		start := time.Now()
		err := r.Execute(ctx, func() error {
			callCount++
			return errors.New("always failing")
		})

		assert.Error(t, err)
		assert.Equal(t, 1, callCount, "no further attempts after cancellation")
		assert.Less(t, time.Since(start), 150*time.Millisecond, "pending wait must be interrupted promptly")
	})
}
