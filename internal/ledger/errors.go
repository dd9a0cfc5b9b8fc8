package ledger

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// The processing error taxonomy is closed: every rejected transaction maps
// to exactly one of these values. Callers match with errors.Is, or
// errors.As for the two payload-carrying kinds.
var (
	// ErrInvalidAmount rejects a deposit or withdrawal amount <= 0.
	ErrInvalidAmount = errors.New("amount must be a positive number")

	// ErrAccountNotFound rejects an operation against a client with no account.
	ErrAccountNotFound = errors.New("account not found")

	// ErrAccountLocked rejects a deposit or withdrawal on a locked account.
	ErrAccountLocked = errors.New("account is locked")

	// ErrTransactionNotFound rejects a dispute, resolve, or chargeback whose
	// target tx id is not in the log.
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrMismatchedClient rejects a dispute, resolve, or chargeback whose
	// client does not own the referenced transaction.
	ErrMismatchedClient = errors.New("client id does not match the logged transaction")

	// ErrDuplicateTransaction rejects a deposit or withdrawal reusing an
	// already-logged tx id.
	ErrDuplicateTransaction = errors.New("transaction id already logged")

	// ErrUnknownTransactionType rejects a record whose type tag was not one
	// of the five known kinds.
	ErrUnknownTransactionType = errors.New("unknown transaction type")
)

// InsufficientFundsError rejects a withdrawal that would drive available
// below zero. It carries the balance available at the time of the attempt.
type InsufficientFundsError struct {
	Available decimal.Decimal
}

func (e *InsufficientFundsError) Error() string {
	return fmt.Sprintf("insufficient funds, available: %s", e.Available)
}

// InvalidTransactionStateError rejects a dispute-lifecycle operation whose
// target is in an incompatible state, including the "target is a withdrawal"
// case. It carries the state the target was observed in.
type InvalidTransactionStateError struct {
	Got State
}

func (e *InvalidTransactionStateError) Error() string {
	return fmt.Sprintf("transaction is in the incorrect state: %s", e.Got)
}
