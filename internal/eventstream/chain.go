package eventstream

import (
	"context"
	"errors"
)

// ErrBlockNotFound is returned by FetchBlockByHeight when the chain produced
// no block at the requested height. On NEAR this is an expected condition:
// some heights are skipped entirely.
var ErrBlockNotFound = errors.New("block not found at requested height")

// Blockchain is the source of chain data consumed by the listener. It is an
// external collaborator: implementations own transport concerns (connection
// management, wire-level retries), while the listener owns progress tracking
// and operation-level backoff.
type Blockchain interface {
	// FetchTipHeight returns the height of the latest finalized block.
	FetchTipHeight(ctx context.Context) (uint64, error)

	// FetchBlockByHeight retrieves the block at the given height, including
	// its full transaction list. It returns ErrBlockNotFound when the chain
	// has no block at that height.
	FetchBlockByHeight(ctx context.Context, height uint64) (Block, error)

	// FetchTransactionOutcome retrieves the execution outcome of the
	// transaction identified by txHash, signed by signerID. An outcome with
	// no logs is valid and yields a zero-value ExecutionOutcome.
	FetchTransactionOutcome(ctx context.Context, txHash, signerID string) (ExecutionOutcome, error)
}
