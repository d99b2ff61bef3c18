// Package eventstream watches a NEAR network for structured application
// events (the EVENT_JSON envelope convention) emitted by a specific contract
// method, and delivers each event exactly once per processed block to a
// user-supplied handler.
//
// A listener owns a single cursor and a single polling loop: blocks are
// visited in strictly increasing height order, one at a time, and the cursor
// advances only after every transaction in a block has been examined.
// Per-log parse failures and handler failures are isolated and reported;
// only transport-retry exhaustion or cancellation stops the loop.
package eventstream

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/hasselalcala/near-event-listener/internal/pkg/logger"
	"github.com/hasselalcala/near-event-listener/internal/pkg/resilience/retry"
	"github.com/hasselalcala/near-event-listener/internal/pkg/validator"
)

// ErrNilBlockchain is returned by New when no chain client is provided.
var ErrNilBlockchain = errors.New("blockchain client is required")

// ErrNilHandler is returned by Start when no handler is provided.
var ErrNilHandler = errors.New("event handler is required")

// defaultPollInterval is how long the loop waits when the cursor has caught
// up with the chain tip. NEAR produces a block roughly every second.
const defaultPollInterval = 2 * time.Second

// Config identifies the watch target. AccountID and MethodName are required;
// StartHeight is the last block height considered already processed, so the
// first fetched block is StartHeight+1. Zero means "start at the current
// tip". Config is immutable once the listener is constructed.
type Config struct {
	AccountID   string `validate:"required"` // contract account to observe
	MethodName  string `validate:"required"` // invoked method to match
	StartHeight uint64 // last processed height; 0 starts at the chain tip
}

// watchID is the checkpoint namespace for this watch target.
func (c Config) watchID() string {
	return c.AccountID + ":" + c.MethodName
}

// Service runs the polling loop.
type Service interface {
	// Start begins polling and blocks until ctx is canceled or a transport
	// failure survives its retry budget. The cursor is left at the last
	// fully processed height, so a restart resumes without loss or
	// duplication beyond the in-flight block.
	Start(ctx context.Context, handler Handler) error
}

type service struct {
	chain             Blockchain
	cfg               Config
	checkpointStorage CheckpointStorage
	retry             retry.Retry
	pollInterval      time.Duration

	onParseFailure    ParseFailureHandler
	onDispatchFailure DispatchFailureHandler
}

var _ Service = (*service)(nil)

// Option customizes a listener at construction time.
type Option func(*service)

// WithCheckpointStorage persists the cursor across runs. Default: no
// persistence; the configured start height governs every run.
func WithCheckpointStorage(cs CheckpointStorage) Option {
	return func(s *service) {
		s.checkpointStorage = cs
	}
}

// WithRetry replaces the backoff policy applied to every chain fetch
// (tip, block, transaction outcome). Default: retry.New().
func WithRetry(r retry.Retry) Option {
	return func(s *service) {
		s.retry = r
	}
}

// WithPollInterval sets the wait applied when no new block exists yet.
// Default: 2 seconds.
func WithPollInterval(d time.Duration) Option {
	return func(s *service) {
		s.pollInterval = d
	}
}

// WithParseFailureHandler replaces the default (logging) observer for
// per-log parse failures.
func WithParseFailureHandler(f ParseFailureHandler) Option {
	return func(s *service) {
		s.onParseFailure = f
	}
}

// WithDispatchFailureHandler replaces the default (logging) observer for
// isolated handler failures.
func WithDispatchFailureHandler(f DispatchFailureHandler) Option {
	return func(s *service) {
		s.onDispatchFailure = f
	}
}

// New builds a listener for the given chain and watch target. It fails when
// the chain client is nil or a required Config field is missing.
func New(chain Blockchain, cfg Config, opts ...Option) (*service, error) {
	if chain == nil {
		return nil, ErrNilBlockchain
	}

	if err := validator.Validate(cfg); err != nil {
		return nil, err
	}

	s := &service{
		chain:             chain,
		cfg:               cfg,
		checkpointStorage: nopCheckpoint{},
		retry:             retry.New(),
		pollInterval:      defaultPollInterval,
		onParseFailure:    defaultOnParseFailure,
		onDispatchFailure: defaultOnDispatchFailure,
	}
	for _, opt := range opts {
		opt(s)
	}

	return s, nil
}

// Start implements Service.
func (s *service) Start(ctx context.Context, handler Handler) error {
	if handler == nil {
		return ErrNilHandler
	}

	cursor, err := s.resolveStartCursor(ctx)
	if err != nil {
		return err
	}

	logger.Info(ctx, "event listener started",
		"watch.account", s.cfg.AccountID,
		"watch.method", s.cfg.MethodName,
		"cursor.last_processed_block", cursor,
	)

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		target := cursor + 1

		tip, err := s.fetchTipHeight(ctx)
		if err != nil {
			return fmt.Errorf("fetch tip height: %w", err)
		}

		if target > tip {
			if err := s.wait(ctx); err != nil {
				return err
			}
			continue
		}

		if err := s.processBlock(ctx, target, handler); err != nil {
			return err
		}

		cursor = target
		s.saveCheckpoint(ctx, cursor)
	}
}

// resolveStartCursor determines the initial cursor value: a persisted
// checkpoint wins over the configured start height, and the zero sentinel
// means "the block before the current tip", so the tip itself is the first
// processed height.
func (s *service) resolveStartCursor(ctx context.Context) (uint64, error) {
	checkpoint, err := s.checkpointStorage.LoadLatestCheckpoint(ctx, s.cfg.watchID())
	if err == nil {
		return checkpoint, nil
	}
	if !errors.Is(err, ErrNoCheckpointFound) {
		return 0, fmt.Errorf("load checkpoint: %w", err)
	}

	if s.cfg.StartHeight > 0 {
		return s.cfg.StartHeight, nil
	}

	tip, err := s.fetchTipHeight(ctx)
	if err != nil {
		return 0, fmt.Errorf("fetch tip height: %w", err)
	}
	if tip == 0 {
		return 0, nil
	}

	return tip - 1, nil
}

// wait suspends for one poll interval, returning early when ctx is canceled.
func (s *service) wait(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(s.pollInterval):
		return nil
	}
}

// processBlock runs the fetch-filter-extract-parse-dispatch cycle for one
// height. A height the chain skipped counts as examined. Per-log failures are
// reported and skipped; only transport-retry exhaustion is returned.
func (s *service) processBlock(ctx context.Context, height uint64, handler Handler) error {
	block, found, err := s.fetchBlock(ctx, height)
	if err != nil {
		return fmt.Errorf("fetch block %d: %w", height, err)
	}
	if !found {
		logger.Debug(ctx, "no block produced at height", "block.height", height)
		return nil
	}

	for _, tx := range FilterTransactions(block, s.cfg.AccountID, s.cfg.MethodName) {
		outcome, err := s.fetchOutcome(ctx, tx)
		if err != nil {
			return fmt.Errorf("fetch outcome for transaction %s: %w", tx.Hash, err)
		}

		for _, rawLog := range outcome.FlattenLogs() {
			event, err := ProcessLog(rawLog)
			if err != nil {
				if errors.Is(err, ErrNotAnEvent) {
					continue
				}

				s.onParseFailure(ctx, ParseFailure{
					Height: height,
					TxHash: tx.Hash,
					RawLog: rawLog,
					Err:    err,
				})
				continue
			}

			s.dispatch(ctx, handler, height, tx.Hash, event)
		}
	}

	return nil
}

// fetchTipHeight retrieves the latest finalized height with backoff.
func (s *service) fetchTipHeight(ctx context.Context) (uint64, error) {
	var tip uint64
	err := s.retry.Execute(ctx, func() error {
		var fetchErr error
		tip, fetchErr = s.chain.FetchTipHeight(ctx)
		return fetchErr
	})
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return 0, ctxErr
		}
		return 0, err
	}

	return tip, nil
}

// fetchBlock retrieves one block with backoff. found is false when the chain
// produced no block at this height; ErrBlockNotFound is terminal and never
// retried.
func (s *service) fetchBlock(ctx context.Context, height uint64) (block Block, found bool, err error) {
	err = s.retry.Execute(ctx, func() error {
		b, fetchErr := s.chain.FetchBlockByHeight(ctx, height)
		if errors.Is(fetchErr, ErrBlockNotFound) {
			found = false
			return nil
		}
		if fetchErr != nil {
			return fetchErr
		}

		block, found = b, true
		return nil
	})
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return Block{}, false, ctxErr
		}
		return Block{}, false, err
	}

	return block, found, nil
}

// fetchOutcome retrieves one transaction's execution outcome with backoff.
func (s *service) fetchOutcome(ctx context.Context, tx Transaction) (ExecutionOutcome, error) {
	var outcome ExecutionOutcome
	err := s.retry.Execute(ctx, func() error {
		var fetchErr error
		outcome, fetchErr = s.chain.FetchTransactionOutcome(ctx, tx.Hash, tx.SignerID)
		return fetchErr
	})
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ExecutionOutcome{}, ctxErr
		}
		return ExecutionOutcome{}, err
	}

	return outcome, nil
}

// saveCheckpoint persists the cursor. Failures are logged and never block
// cursor advancement.
func (s *service) saveCheckpoint(ctx context.Context, height uint64) {
	if err := s.checkpointStorage.SaveCheckpoint(ctx, s.cfg.watchID(), height); err != nil {
		logger.Error(ctx, "failed to save checkpoint",
			"watch.account", s.cfg.AccountID,
			"watch.method", s.cfg.MethodName,
			"block.height", height,
			"error", err,
		)
	}
}
