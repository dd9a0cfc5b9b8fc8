package ledger

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Kind identifies a transaction variant. The set is closed; KindUnknown is
// the sentinel for anything the decoder could not classify, so that a bad
// record still flows through Process and fails with a typed error.
type Kind uint8

const (
	KindUnknown Kind = iota
	KindDeposit
	KindWithdrawal
	KindDispute
	KindResolve
	KindChargeback
)

// ParseKind maps an input type tag to its Kind. Unrecognized tags map to
// KindUnknown rather than an error.
func ParseKind(s string) Kind {
	switch s {
	case "deposit":
		return KindDeposit
	case "withdrawal":
		return KindWithdrawal
	case "dispute":
		return KindDispute
	case "resolve":
		return KindResolve
	case "chargeback":
		return KindChargeback
	default:
		return KindUnknown
	}
}

func (k Kind) String() string {
	switch k {
	case KindDeposit:
		return "deposit"
	case KindWithdrawal:
		return "withdrawal"
	case KindDispute:
		return "dispute"
	case KindResolve:
		return "resolve"
	case KindChargeback:
		return "chargeback"
	default:
		return "unknown"
	}
}

// Transaction is one decoded input record. Amount is meaningful only for
// deposits and withdrawals; the dispute-lifecycle kinds reference the amount
// of the logged transaction they target.
type Transaction struct {
	Kind   Kind
	Client uint16
	Tx     uint32
	Amount decimal.Decimal
}

// NewDeposit builds a deposit transaction.
func NewDeposit(client uint16, tx uint32, amount decimal.Decimal) Transaction {
	return Transaction{Kind: KindDeposit, Client: client, Tx: tx, Amount: amount}
}

// NewWithdrawal builds a withdrawal transaction.
func NewWithdrawal(client uint16, tx uint32, amount decimal.Decimal) Transaction {
	return Transaction{Kind: KindWithdrawal, Client: client, Tx: tx, Amount: amount}
}

// NewDispute builds a dispute against a logged transaction.
func NewDispute(client uint16, tx uint32) Transaction {
	return Transaction{Kind: KindDispute, Client: client, Tx: tx}
}

// NewResolve builds a resolve against a disputed transaction.
func NewResolve(client uint16, tx uint32) Transaction {
	return Transaction{Kind: KindResolve, Client: client, Tx: tx}
}

// NewChargeback builds a chargeback against a disputed transaction.
func NewChargeback(client uint16, tx uint32) Transaction {
	return Transaction{Kind: KindChargeback, Client: client, Tx: tx}
}

func (t Transaction) String() string {
	switch t.Kind {
	case KindDeposit, KindWithdrawal:
		return fmt.Sprintf("%s client=%d tx=%d amount=%s", t.Kind, t.Client, t.Tx, t.Amount)
	default:
		return fmt.Sprintf("%s client=%d tx=%d", t.Kind, t.Client, t.Tx)
	}
}

// State is the dispute-lifecycle position of a logged transaction.
//
//	           dispute                     resolve
//	Processed ─────────► Disputed ─────────────► Processed
//	                        │
//	                        │ chargeback
//	                        ▼
//	                    Chargeback  (terminal)
type State uint8

const (
	StateProcessed State = iota
	StateDisputed
	StateChargeback
)

func (s State) String() string {
	switch s {
	case StateProcessed:
		return "processed"
	case StateDisputed:
		return "disputed"
	case StateChargeback:
		return "chargeback"
	default:
		return fmt.Sprintf("state(%d)", uint8(s))
	}
}

// LoggedTransaction is the retained record of a committed deposit or
// withdrawal together with its dispute state. Only those two kinds are ever
// logged; the lifecycle kinds act on existing entries.
type LoggedTransaction struct {
	Transaction Transaction
	State       State
}

func newLoggedTransaction(tx Transaction) *LoggedTransaction {
	return &LoggedTransaction{Transaction: tx, State: StateProcessed}
}
