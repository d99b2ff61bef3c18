package eventstream

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// blockchainMock is a testify double for the Blockchain interface.
type blockchainMock struct {
	mock.Mock
}

var _ Blockchain = (*blockchainMock)(nil)

func (m *blockchainMock) FetchTipHeight(ctx context.Context) (uint64, error) {
	args := m.Called(ctx)
	return args.Get(0).(uint64), args.Error(1)
}

func (m *blockchainMock) FetchBlockByHeight(ctx context.Context, height uint64) (Block, error) {
	args := m.Called(ctx, height)
	return args.Get(0).(Block), args.Error(1)
}

func (m *blockchainMock) FetchTransactionOutcome(ctx context.Context, txHash, signerID string) (ExecutionOutcome, error) {
	args := m.Called(ctx, txHash, signerID)
	return args.Get(0).(ExecutionOutcome), args.Error(1)
}

// checkpointStorageMock is a testify double for CheckpointStorage.
type checkpointStorageMock struct {
	mock.Mock
}

var _ CheckpointStorage = (*checkpointStorageMock)(nil)

func (m *checkpointStorageMock) SaveCheckpoint(ctx context.Context, watchID string, height uint64) error {
	args := m.Called(ctx, watchID, height)
	return args.Error(0)
}

func (m *checkpointStorageMock) LoadLatestCheckpoint(ctx context.Context, watchID string) (uint64, error) {
	args := m.Called(ctx, watchID)
	return args.Get(0).(uint64), args.Error(1)
}
