package eventstream

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterTransactions(t *testing.T) {
	block := Block{
		Height: 100,
		Transactions: []Transaction{
			{Hash: "tx1", ReceiverID: "a.near", Actions: []FunctionCall{{MethodName: "m1"}}},
			{Hash: "tx2", ReceiverID: "b.near", Actions: []FunctionCall{{MethodName: "m1"}}},
			{Hash: "tx3", ReceiverID: "a.near", Actions: []FunctionCall{{MethodName: "m2"}}},
			{Hash: "tx4", ReceiverID: "a.near", Actions: []FunctionCall{{MethodName: "m2"}, {MethodName: "m1"}}},
			{Hash: "tx5", ReceiverID: "a.near", Actions: nil},
		},
	}

	t.Run("matches exact account and method, preserving order", func(t *testing.T) {
		matched := FilterTransactions(block, "a.near", "m1")

		assert.Equal(t, []string{"tx1", "tx4"}, txHashes(matched))
	})

	t.Run("method must match on the requested account", func(t *testing.T) {
		matched := FilterTransactions(block, "b.near", "m1")

		assert.Equal(t, []string{"tx2"}, txHashes(matched))
	})

	t.Run("no matches yields empty result", func(t *testing.T) {
		assert.Empty(t, FilterTransactions(block, "c.near", "m1"))
		assert.Empty(t, FilterTransactions(block, "b.near", "m2"))
	})

	t.Run("no pattern matching on account or method", func(t *testing.T) {
		assert.Empty(t, FilterTransactions(block, "a.nea", "m1"))
		assert.Empty(t, FilterTransactions(block, "a.near", "m"))
	})

	t.Run("empty block yields empty result", func(t *testing.T) {
		assert.Empty(t, FilterTransactions(Block{Height: 1}, "a.near", "m1"))
	})
}

func txHashes(txs []Transaction) []string {
	hashes := make([]string, len(txs))
	for i, tx := range txs {
		hashes[i] = tx.Hash
	}
	return hashes
}
