// Package near implements the eventstream.Blockchain interface for NEAR
// nodes using the generic JSON-RPC transport.
package near

import (
	"github.com/hasselalcala/near-event-listener/internal/eventstream"
	"github.com/hasselalcala/near-event-listener/internal/pkg/transport/jsonrpc"
)

// client talks to a NEAR node over JSON-RPC.
type client struct {
	conn jsonrpc.Client // underlying JSON-RPC connection
}

var _ eventstream.Blockchain = (*client)(nil)

// NewClient builds a NEAR blockchain client on top of the given JSON-RPC
// connection.
func NewClient(conn jsonrpc.Client) *client {
	return &client{
		conn: conn,
	}
}
