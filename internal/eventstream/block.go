package eventstream

// FunctionCall is a contract method invocation carried by a transaction.
// Transactions may carry several actions; only function calls participate in
// event filtering.
type FunctionCall struct {
	MethodName string // name of the invoked contract method
}

// Transaction is a simplified view of an on-chain transaction: enough to
// match it against a watch target and to request its execution outcome.
type Transaction struct {
	Hash       string         // unique transaction hash
	SignerID   string         // account that signed the transaction
	ReceiverID string         // account the transaction targets
	Actions    []FunctionCall // function-call actions, in declaration order
}

// Block is a retrieved unit of chain state. Transactions preserve their
// on-chain order. Blocks are transient: fetched, consumed, and discarded
// within a single polling cycle.
type Block struct {
	Height       uint64        // block height
	Transactions []Transaction // ordered transactions contained in the block
}

// ExecutionOutcome is the execution result of a transaction, split the way
// the node reports it: the transaction's own outcome logs, then one log list
// per spawned receipt, in receipt order.
type ExecutionOutcome struct {
	TransactionLogs []string   // logs emitted directly by the transaction outcome
	ReceiptsLogs    [][]string // logs per receipt outcome, in receipt order
}
