package eventstream

import (
	"context"
	"errors"
)

// ErrNoCheckpointFound is returned by LoadLatestCheckpoint when no height has
// been saved yet for the requested watch target.
var ErrNoCheckpointFound = errors.New("no checkpoint found for watch target")

// CheckpointStorage persists the last fully processed block height per watch
// target, so a restarted listener resumes where the previous run stopped.
// Persistence is optional: the in-memory cursor alone satisfies a single run.
type CheckpointStorage interface {
	// SaveCheckpoint records height as the latest processed block for the
	// given watch target, overwriting any previous value.
	SaveCheckpoint(ctx context.Context, watchID string, height uint64) error

	// LoadLatestCheckpoint returns the most recent height saved for the
	// given watch target, or ErrNoCheckpointFound when none exists.
	LoadLatestCheckpoint(ctx context.Context, watchID string) (uint64, error)
}

// nopCheckpoint is the default CheckpointStorage: it persists nothing and
// never finds a checkpoint, leaving the configured start height in charge.
type nopCheckpoint struct{}

func (nopCheckpoint) SaveCheckpoint(_ context.Context, _ string, _ uint64) error {
	return nil
}

func (nopCheckpoint) LoadLatestCheckpoint(_ context.Context, _ string) (uint64, error) {
	return 0, ErrNoCheckpointFound
}
