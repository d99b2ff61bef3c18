package near

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/hasselalcala/near-event-listener/internal/eventstream"
	"github.com/hasselalcala/near-event-listener/internal/pkg/transport/jsonrpc"
)

type (
	// blockResponse is the `block` RPC result: the header carries the
	// height, the chunk headers carry the hashes needed to load the
	// block's transactions.
	blockResponse struct {
		Header struct {
			Height uint64 `json:"height"`
		} `json:"header"`
		Chunks []struct {
			ChunkHash string `json:"chunk_hash"`
		} `json:"chunks"`
	}

	// chunkResponse is the `chunk` RPC result, reduced to its transactions.
	chunkResponse struct {
		Transactions []transactionResponse `json:"transactions"`
	}

	// transactionResponse is a transaction as it appears inside a chunk.
	transactionResponse struct {
		Hash       string           `json:"hash"`
		SignerID   string           `json:"signer_id"`
		ReceiverID string           `json:"receiver_id"`
		Actions    []actionResponse `json:"actions"`
	}

	// outcomeResponse is one execution outcome entry of the `tx` RPC result.
	outcomeResponse struct {
		Outcome struct {
			Logs []string `json:"logs"`
		} `json:"outcome"`
	}

	// transactionStatusResponse is the `tx` RPC result, reduced to the log
	// carriers. Both sections are optional: with wait_until NONE the node
	// may answer before any outcome is known.
	transactionStatusResponse struct {
		TransactionOutcome *outcomeResponse  `json:"transaction_outcome"`
		ReceiptsOutcome    []outcomeResponse `json:"receipts_outcome"`
	}
)

// actionResponse decodes NEAR's mixed action encoding: argumentless actions
// are bare strings ("CreateAccount"), the rest are single-key objects. Only
// the FunctionCall variant matters here; every other variant decodes to a
// zero value.
type actionResponse struct {
	FunctionCall *struct {
		MethodName string `json:"method_name"`
	} `json:"FunctionCall"`
}

func (a *actionResponse) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '"' {
		// String-encoded action, never a function call.
		return nil
	}

	type plain actionResponse
	var decoded plain
	if err := json.Unmarshal(data, &decoded); err != nil {
		return err
	}

	*a = actionResponse(decoded)
	return nil
}

// toTransaction converts a wire transaction, keeping only its function-call
// actions in declaration order.
func (t transactionResponse) toTransaction() eventstream.Transaction {
	var actions []eventstream.FunctionCall
	for _, action := range t.Actions {
		if action.FunctionCall != nil {
			actions = append(actions, eventstream.FunctionCall{MethodName: action.FunctionCall.MethodName})
		}
	}

	return eventstream.Transaction{
		Hash:       t.Hash,
		SignerID:   t.SignerID,
		ReceiverID: t.ReceiverID,
		Actions:    actions,
	}
}

// toExecutionOutcome converts a wire transaction status into the listener's
// outcome split: transaction logs, then per-receipt logs in receipt order.
func (r transactionStatusResponse) toExecutionOutcome() eventstream.ExecutionOutcome {
	var outcome eventstream.ExecutionOutcome
	if r.TransactionOutcome != nil {
		outcome.TransactionLogs = r.TransactionOutcome.Outcome.Logs
	}

	for _, receipt := range r.ReceiptsOutcome {
		outcome.ReceiptsLogs = append(outcome.ReceiptsLogs, receipt.Outcome.Logs)
	}

	return outcome
}

// isUnknownBlock reports whether the JSON-RPC error says the chain has no
// block at the requested height. NEAR nodes describe the condition inside
// the error's data payload ("UNKNOWN_BLOCK" from current nodes, the legacy
// "DB Not Found Error" text from older ones).
func isUnknownBlock(err error) bool {
	var rpcErr *jsonrpc.Error
	if !errors.As(err, &rpcErr) {
		return false
	}

	return bytes.Contains(rpcErr.Data, []byte("UNKNOWN_BLOCK")) ||
		bytes.Contains(rpcErr.Data, []byte("DB Not Found Error"))
}

// FetchTipHeight returns the height of the latest finalized block.
func (c *client) FetchTipHeight(ctx context.Context) (uint64, error) {
	data, err := c.conn.Fetch(ctx, "block", map[string]any{"finality": "final"})
	if err != nil {
		return 0, err
	}

	var block blockResponse
	if err := json.Unmarshal(data, &block); err != nil {
		return 0, err
	}

	return block.Header.Height, nil
}

// FetchBlockByHeight retrieves the block at the given height and loads its
// transactions chunk by chunk, preserving chunk order. It returns
// eventstream.ErrBlockNotFound when the chain skipped the height.
func (c *client) FetchBlockByHeight(ctx context.Context, height uint64) (eventstream.Block, error) {
	data, err := c.conn.Fetch(ctx, "block", map[string]any{"block_id": height})
	if err != nil {
		if isUnknownBlock(err) {
			return eventstream.Block{}, fmt.Errorf("%w: height %d", eventstream.ErrBlockNotFound, height)
		}
		return eventstream.Block{}, err
	}

	var block blockResponse
	if err := json.Unmarshal(data, &block); err != nil {
		return eventstream.Block{}, err
	}

	var transactions []eventstream.Transaction
	for _, chunk := range block.Chunks {
		chunkTxs, err := c.fetchChunkTransactions(ctx, chunk.ChunkHash)
		if err != nil {
			return eventstream.Block{}, fmt.Errorf("fetch chunk %s: %w", chunk.ChunkHash, err)
		}

		transactions = append(transactions, chunkTxs...)
	}

	return eventstream.Block{
		Height:       block.Header.Height,
		Transactions: transactions,
	}, nil
}

// fetchChunkTransactions loads one chunk and converts its transactions.
func (c *client) fetchChunkTransactions(ctx context.Context, chunkHash string) ([]eventstream.Transaction, error) {
	data, err := c.conn.Fetch(ctx, "chunk", map[string]any{"chunk_id": chunkHash})
	if err != nil {
		return nil, err
	}

	var chunk chunkResponse
	if err := json.Unmarshal(data, &chunk); err != nil {
		return nil, err
	}

	transactions := make([]eventstream.Transaction, len(chunk.Transactions))
	for i, tx := range chunk.Transactions {
		transactions[i] = tx.toTransaction()
	}

	return transactions, nil
}

// FetchTransactionOutcome retrieves the execution outcome of a transaction.
// A response without outcome sections yields a zero-value outcome, which the
// listener treats as "no logs".
func (c *client) FetchTransactionOutcome(ctx context.Context, txHash, signerID string) (eventstream.ExecutionOutcome, error) {
	data, err := c.conn.Fetch(ctx, "tx", map[string]any{
		"tx_hash":           txHash,
		"sender_account_id": signerID,
		"wait_until":        "NONE",
	})
	if err != nil {
		return eventstream.ExecutionOutcome{}, err
	}

	var status transactionStatusResponse
	if err := json.Unmarshal(data, &status); err != nil {
		return eventstream.ExecutionOutcome{}, err
	}

	return status.toExecutionOutcome(), nil
}
