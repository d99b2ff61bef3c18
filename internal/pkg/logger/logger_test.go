package logger

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// resetLogger resets the global logger state for testing
func resetLogger() {
	logger = nil
	initOnce = sync.Once{}
}

func TestInit(t *testing.T) {
	t.Run("successful initialization with default level", func(t *testing.T) {
		resetLogger()
		err := Init()
		require.NoError(t, err)
		assert.NotNil(t, logger)
	})

	t.Run("successful initialization with explicit level", func(t *testing.T) {
		for _, level := range []string{"debug", "info", "warn", "error"} {
			resetLogger()
			err := Init(WithLevel(level))
			require.NoError(t, err)
			assert.NotNil(t, logger)
		}
	})

	t.Run("error with invalid level", func(t *testing.T) {
		resetLogger()
		err := Init(WithLevel("invalid"))
		assert.Error(t, err)
		assert.Nil(t, logger)
	})

	t.Run("init only once", func(t *testing.T) {
		resetLogger()

		err1 := Init(WithLevel("debug"))
		require.NoError(t, err1)
		firstLogger := logger

		err2 := Init(WithLevel("error"))
		require.NoError(t, err2)
		assert.Equal(t, firstLogger, logger, "Init() should only initialize once")
	})
}

func TestSync(t *testing.T) {
	t.Run("sync after init", func(t *testing.T) {
		resetLogger()
		err := Init()
		require.NoError(t, err)

		// Sync may return an error for stdout, but it must not panic
		assert.NotPanics(t, func() {
			Sync()
		})
	})

	t.Run("sync without init panics", func(t *testing.T) {
		resetLogger()

		assert.Panics(t, func() {
			Sync()
		}, "Sync() should panic when logger is not initialized")
	})
}

func TestLevels(t *testing.T) {
	resetLogger()
	err := Init(WithLevel("debug"))
	require.NoError(t, err)

	ctx := context.Background()

	t.Run("every level logs without panic", func(t *testing.T) {
		assert.NotPanics(t, func() {
			Debug(ctx, "debug message", "key", "value")
			Info(ctx, "info message", "key", "value")
			Warn(ctx, "warn message", "key", "value")
			Error(ctx, "error message", "key", "value")
		})
	})

	t.Run("no key-value pairs", func(t *testing.T) {
		assert.NotPanics(t, func() {
			Info(ctx, "info message")
		})
	})

	t.Run("odd number of key-value pairs", func(t *testing.T) {
		assert.NotPanics(t, func() {
			Info(ctx, "test message", "key1", "value1", "key2")
		})
	})

	t.Run("nil values", func(t *testing.T) {
		assert.NotPanics(t, func() {
			Info(ctx, "test message", "key", nil)
		})
	})
}
