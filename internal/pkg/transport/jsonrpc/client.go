// Package jsonrpc implements a generic JSON-RPC 2.0 client over HTTP. It is
// transport-only: callers own the method names and payload schemas. Requests
// carry UUID ids, and params are sent as a single value so that servers using
// named (object) parameters, such as NEAR nodes, are supported.
package jsonrpc

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/hashicorp/go-retryablehttp"
)

// Error is a JSON-RPC error object returned by the remote server. Data keeps
// whatever extra payload the server attached, so adapters can classify
// server-specific failures.
type Error struct {
	Code    int             `json:"code"`    // error code from the JSON-RPC spec or server-defined
	Message string          `json:"message"` // human-readable description
	Data    json.RawMessage `json:"data"`    // optional server-specific payload
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("jsonrpc: provider error [%d] %s", e.Code, e.Message)
}

// response is a standard JSON-RPC 2.0 response envelope.
type response struct {
	JsonRPC string          `json:"jsonrpc"`
	Error   *Error          `json:"error"`
	Result  json.RawMessage `json:"result"`
}

// Client sends JSON-RPC requests and returns the raw result payload.
type Client interface {
	// Fetch calls the given method with params marshaled as-is (use a map or
	// struct for named parameters, a slice for positional ones). It returns
	// the raw result, or a *Error when the server answered with an error
	// object.
	Fetch(ctx context.Context, method string, params any) (json.RawMessage, error)
}

// client is the retryablehttp-backed implementation of Client.
type client struct {
	providerEndpoint string                // URL of the remote JSON-RPC server
	httpClient       *retryablehttp.Client // transport with wire-level retries
}

var _ Client = (*client)(nil)

// Fetch implements Client.
func (c *client) Fetch(ctx context.Context, method string, params any) (json.RawMessage, error) {
	body, err := json.Marshal(map[string]any{
		"jsonrpc": "2.0",
		"id":      uuid.NewString(),
		"method":  method,
		"params":  params,
	})
	if err != nil {
		return nil, err
	}

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodPost, c.providerEndpoint, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}

	req.Header.Set("Content-Type", "application/json")

	res, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	var data response
	if err := json.NewDecoder(res.Body).Decode(&data); err != nil {
		return nil, err
	}

	if data.Error != nil {
		return nil, data.Error
	}

	return data.Result, nil
}

// NewClient builds a Client that sends JSON-RPC requests to providerEndpoint
// using the given HTTP client.
func NewClient(httpClient *retryablehttp.Client, providerEndpoint string) *client {
	return &client{
		providerEndpoint: providerEndpoint,
		httpClient:       httpClient,
	}
}
