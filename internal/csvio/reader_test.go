package csvio_test

import (
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/terminal-bench/payledger/internal/csvio"
	"github.com/terminal-bench/payledger/internal/ledger"
	"github.com/terminal-bench/payledger/pkg/money"
)

func newReader(t *testing.T, input string) *csvio.Reader {
	t.Helper()
	r, err := csvio.NewReader(strings.NewReader(input))
	require.NoError(t, err)
	return r
}

func readAll(t *testing.T, r *csvio.Reader) []ledger.Transaction {
	t.Helper()
	var out []ledger.Transaction
	for {
		tx, err := r.Read()
		if err == io.EOF {
			return out
		}
		require.NoError(t, err)
		out = append(out, tx)
	}
}

func TestReaderDecodesAllKinds(t *testing.T) {
	input := "type,client,tx,amount\n" +
		"deposit,1,1,5.1234\n" +
		"withdrawal,1,2,1.5\n" +
		"dispute,1,1,\n" +
		"resolve,1,1,\n" +
		"chargeback,1,1,\n"

	txs := readAll(t, newReader(t, input))
	require.Len(t, txs, 5)

	assert.Equal(t, ledger.NewDeposit(1, 1, money.MustParse("5.1234")), txs[0])
	assert.Equal(t, ledger.NewWithdrawal(1, 2, money.MustParse("1.5")), txs[1])
	assert.Equal(t, ledger.KindDispute, txs[2].Kind)
	assert.Equal(t, ledger.KindResolve, txs[3].Kind)
	assert.Equal(t, ledger.KindChargeback, txs[4].Kind)
	assert.True(t, txs[2].Amount.IsZero(), "missing amount decodes to zero")
}

func TestReaderTrimsWhitespace(t *testing.T) {
	input := "type, client, tx, amount\n" +
		"deposit , 13 , 4 , 5.1234 \n"

	txs := readAll(t, newReader(t, input))
	require.Len(t, txs, 1)
	assert.Equal(t, ledger.NewDeposit(13, 4, money.MustParse("5.1234")), txs[0])
}

func TestReaderToleratesShortLifecycleRows(t *testing.T) {
	// Rows without the amount column at all.
	input := "type,client,tx,amount\n" +
		"deposit,1,1,2\n" +
		"dispute,1,1\n"

	txs := readAll(t, newReader(t, input))
	require.Len(t, txs, 2)
	assert.Equal(t, ledger.KindDispute, txs[1].Kind)
	assert.True(t, txs[1].Amount.IsZero())
}

func TestReaderMapsUnknownTypeToUnknownKind(t *testing.T) {
	input := "type,client,tx,amount\n" +
		"transfer,5,10,1.5\n"

	txs := readAll(t, newReader(t, input))
	require.Len(t, txs, 1)
	assert.Equal(t, ledger.KindUnknown, txs[0].Kind)
	assert.Equal(t, uint16(5), txs[0].Client)
	assert.Equal(t, uint32(10), txs[0].Tx)
}

func TestReaderRejectsBadHeader(t *testing.T) {
	_, err := csvio.NewReader(strings.NewReader("kind,client,tx\n"))
	assert.Error(t, err)
}

func TestReaderRejectsBadIdentifiers(t *testing.T) {
	t.Run("client out of range", func(t *testing.T) {
		r := newReader(t, "type,client,tx,amount\ndeposit,70000,1,1\n")
		_, err := r.Read()
		assert.Error(t, err)
	})

	t.Run("tx not a number", func(t *testing.T) {
		r := newReader(t, "type,client,tx,amount\ndeposit,1,abc,1\n")
		_, err := r.Read()
		assert.Error(t, err)
	})

	t.Run("amount not a decimal", func(t *testing.T) {
		r := newReader(t, "type,client,tx,amount\ndeposit,1,1,12x\n")
		_, err := r.Read()
		assert.Error(t, err)
	})
}
