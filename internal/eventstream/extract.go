package eventstream

// FlattenLogs returns every log line produced by the execution, in emission
// order: the transaction outcome's own logs first, then each receipt
// outcome's logs in receipt order. An outcome with no logs yields an empty
// slice, which is not an error.
func (o ExecutionOutcome) FlattenLogs() []string {
	logs := make([]string, 0, len(o.TransactionLogs))
	logs = append(logs, o.TransactionLogs...)

	for _, receiptLogs := range o.ReceiptsLogs {
		logs = append(logs, receiptLogs...)
	}

	return logs
}
