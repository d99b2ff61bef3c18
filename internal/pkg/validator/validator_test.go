package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	type input struct {
		AccountID  string `validate:"required"`
		MethodName string `validate:"required"`
	}

	t.Run("valid struct passes", func(t *testing.T) {
		err := Validate(input{AccountID: "nft.near", MethodName: "nft_mint"})

		assert.NoError(t, err)
	})

	t.Run("missing required field fails with sentinel", func(t *testing.T) {
		err := Validate(input{AccountID: "nft.near"})

		require.Error(t, err)
		assert.ErrorIs(t, err, ErrValidationFailed)
		assert.Contains(t, err.Error(), "MethodName")
	})

	t.Run("multiple failures are all reported", func(t *testing.T) {
		err := Validate(input{})

		require.Error(t, err)
		assert.ErrorIs(t, err, ErrValidationFailed)
		assert.Contains(t, err.Error(), "AccountID")
		assert.Contains(t, err.Error(), "MethodName")
	})
}
