package cli

import (
	"context"
	"errors"
	"os/signal"
	"syscall"

	"github.com/hasselalcala/near-event-listener/internal/eventstream"
	"github.com/hasselalcala/near-event-listener/internal/pkg/logger"

	"github.com/urfave/cli/v3"
)

// startListenerCommand returns a CLI command that runs the event listener
// loop, polling the chain and logging every decoded event.
//
// Usage example:
//
//	near-event-listener start
//
// The process runs indefinitely until it receives an interrupt (SIGINT or
// SIGTERM), which is treated as a clean shutdown.
func startListenerCommand(es eventstream.Service) *cli.Command {
	return &cli.Command{
		Name:        "start",
		Description: "Starts the event listener loop against the configured contract and method.",
		Usage:       "Polls the chain and emits every decoded event. Terminates gracefully on Ctrl+C or termination signals.",
		Action: func(ctx context.Context, c *cli.Command) error {
			ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			err := es.Start(ctx, logEvent)
			if errors.Is(err, context.Canceled) {
				return nil
			}

			return err
		},
	}
}

// logEvent is the default event handler: it emits each decoded event through
// the structured logger.
func logEvent(ctx context.Context, event eventstream.EventLog) error {
	logger.Info(ctx, "event received",
		"standard", event.Standard,
		"version", event.Version,
		"event", event.Event,
		"data", string(event.Data),
	)

	return nil
}
