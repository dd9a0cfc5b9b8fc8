package money_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/terminal-bench/payledger/pkg/money"
)

func TestParse(t *testing.T) {
	t.Run("empty field is zero", func(t *testing.T) {
		d, err := money.Parse("")
		require.NoError(t, err)
		assert.True(t, d.IsZero())
	})

	t.Run("keeps four fractional digits exactly", func(t *testing.T) {
		d, err := money.Parse("5.1234")
		require.NoError(t, err)
		assert.Equal(t, "5.1234", d.String())
	})

	t.Run("accepts negative values", func(t *testing.T) {
		// The processor rejects them; parsing must not.
		d, err := money.Parse("-1.5")
		require.NoError(t, err)
		assert.True(t, d.IsNegative())
	})

	t.Run("rejects non-decimal input", func(t *testing.T) {
		_, err := money.Parse("12x")
		assert.Error(t, err)
	})
}

func TestMustParse(t *testing.T) {
	assert.True(t, money.MustParse("18").Equal(money.MustParse("18.0000")))
	assert.Panics(t, func() { money.MustParse("not money") })
}
