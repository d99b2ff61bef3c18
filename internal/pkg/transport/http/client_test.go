package http

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClient(t *testing.T) {
	t.Run("applies defaults", func(t *testing.T) {
		client := NewClient()

		require.NotNil(t, client)
		assert.Nil(t, client.Logger)
		assert.Equal(t, 5*time.Second, client.HTTPClient.Timeout)
		assert.Equal(t, 1*time.Second, client.RetryWaitMin)
		assert.Equal(t, 5*time.Second, client.RetryWaitMax)
		assert.Equal(t, 2, client.RetryMax)
	})

	t.Run("applies options", func(t *testing.T) {
		client := NewClient(
			WithTimeout(10*time.Second),
			WithRetryWaitMin(100*time.Millisecond),
			WithRetryWaitMax(2*time.Second),
			WithRetryMax(7),
		)

		require.NotNil(t, client)
		assert.Equal(t, 10*time.Second, client.HTTPClient.Timeout)
		assert.Equal(t, 100*time.Millisecond, client.RetryWaitMin)
		assert.Equal(t, 2*time.Second, client.RetryWaitMax)
		assert.Equal(t, 7, client.RetryMax)
	})
}
