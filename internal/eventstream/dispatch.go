package eventstream

import (
	"context"
	"fmt"

	"github.com/hasselalcala/near-event-listener/internal/pkg/logger"
)

// Handler consumes one parsed event. It is invoked synchronously, in
// block/transaction/log order, exactly once per observed event. Returned
// errors (and panics) are isolated: they are reported through the dispatch
// failure handler and never affect the cursor or later events.
type Handler func(ctx context.Context, event EventLog) error

// ParseFailure describes a log line that carried the event envelope prefix
// but could not be parsed into an EventLog.
type ParseFailure struct {
	Height uint64   // block height the log belongs to
	TxHash string   // transaction that emitted the log
	RawLog string   // the offending log line, verbatim
	Err    error    // classification: ErrInvalidEventFormat or *MissingFieldError
}

// DispatchFailure describes a handler invocation that returned an error or
// panicked. The event was still counted as attempted.
type DispatchFailure struct {
	Height uint64   // block height the event belongs to
	TxHash string   // transaction that emitted the event
	Event  EventLog // the event that was being dispatched
	Err    error    // the handler's error, or a wrapped panic value
}

// ParseFailureHandler observes per-log parse failures.
type ParseFailureHandler func(ctx context.Context, failure ParseFailure)

// DispatchFailureHandler observes isolated handler failures.
type DispatchFailureHandler func(ctx context.Context, failure DispatchFailure)

// defaultOnParseFailure reports parse failures through the ambient logger.
func defaultOnParseFailure(ctx context.Context, failure ParseFailure) {
	logger.Warn(ctx, "event log parse failure",
		"block.height", failure.Height,
		"tx.hash", failure.TxHash,
		"log.raw", failure.RawLog,
		"error", failure.Err,
	)
}

// defaultOnDispatchFailure reports handler failures through the ambient logger.
func defaultOnDispatchFailure(ctx context.Context, failure DispatchFailure) {
	logger.Error(ctx, "event handler failure",
		"block.height", failure.Height,
		"tx.hash", failure.TxHash,
		"event.standard", failure.Event.Standard,
		"event.name", failure.Event.Event,
		"error", failure.Err,
	)
}

// dispatch invokes the handler for one event, capturing errors and panics so
// a misbehaving handler cannot disturb the polling loop.
func (s *service) dispatch(ctx context.Context, handler Handler, height uint64, txHash string, event EventLog) {
	defer func() {
		if r := recover(); r != nil {
			s.onDispatchFailure(ctx, DispatchFailure{
				Height: height,
				TxHash: txHash,
				Event:  event,
				Err:    fmt.Errorf("handler panic: %v", r),
			})
		}
	}()

	if err := handler(ctx, event); err != nil {
		s.onDispatchFailure(ctx, DispatchFailure{
			Height: height,
			TxHash: txHash,
			Event:  event,
			Err:    err,
		})
	}
}
