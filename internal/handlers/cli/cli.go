// Package cli exposes the near-event-listener command-line interface.
package cli

import (
	"context"
	"os"

	"github.com/hasselalcala/near-event-listener/internal/eventstream"

	"github.com/urfave/cli/v3"
)

// Run initializes and executes the near-event-listener CLI application.
//
// It registers all available commands, including:
//
//   - `start`: Starts the event listener loop.
//
// Parameters:
//   - ctx: Context used to control the lifecycle of the CLI application.
//   - es: The eventstream service implementation used by the start command.
func Run(ctx context.Context, es eventstream.Service) error {
	app := &cli.Command{
		EnableShellCompletion: true,
		Name:                  "near-event-listener",
		Description:           "Command-line interface for streaming NEAR contract events.",
		Usage:                 "near-event-listener [command] [flags]",
		Commands: []*cli.Command{
			startListenerCommand(es),
		},
	}

	return app.Run(ctx, os.Args)
}
