package eventstream

// FilterTransactions selects the transactions in block that invoke methodName
// on accountID. Matching is exact string equality on both the receiver
// account and the invoked method; a transaction matches when any of its
// function-call actions names the method. The result preserves the
// transactions' original order within the block.
func FilterTransactions(block Block, accountID, methodName string) []Transaction {
	var matched []Transaction
	for _, tx := range block.Transactions {
		if tx.ReceiverID != accountID {
			continue
		}

		for _, action := range tx.Actions {
			if action.MethodName == methodName {
				matched = append(matched, tx)
				break
			}
		}
	}

	return matched
}
