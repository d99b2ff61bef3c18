package eventstream

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExecutionOutcome_FlattenLogs(t *testing.T) {
	t.Run("transaction logs precede receipt logs in receipt order", func(t *testing.T) {
		outcome := ExecutionOutcome{
			TransactionLogs: []string{"t1", "t2"},
			ReceiptsLogs:    [][]string{{"r1a", "r1b"}, {"r2a"}},
		}

		assert.Equal(t, []string{"t1", "t2", "r1a", "r1b", "r2a"}, outcome.FlattenLogs())
	})

	t.Run("outcome without logs yields empty slice", func(t *testing.T) {
		logs := ExecutionOutcome{}.FlattenLogs()

		assert.NotNil(t, logs)
		assert.Empty(t, logs)
	})

	t.Run("receipt-only logs are preserved", func(t *testing.T) {
		outcome := ExecutionOutcome{ReceiptsLogs: [][]string{{"only"}}}

		assert.Equal(t, []string{"only"}, outcome.FlattenLogs())
	})
}
