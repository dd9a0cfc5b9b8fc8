package ledger

import "github.com/shopspring/decimal"

// Account holds the balance sheet for a single client.
type Account struct {
	Client    uint16
	Available decimal.Decimal
	Held      decimal.Decimal
	Total     decimal.Decimal
	Locked    bool
}

// NewAccount creates an empty, unlocked account for a client.
func NewAccount(client uint16) *Account {
	return &Account{
		Client:    client,
		Available: decimal.Zero,
		Held:      decimal.Zero,
		Total:     decimal.Zero,
	}
}

// Equal reports whether two accounts carry the same balances and flags.
// Balance comparison is exact decimal equality.
func (a Account) Equal(b Account) bool {
	return a.Client == b.Client &&
		a.Available.Equal(b.Available) &&
		a.Held.Equal(b.Held) &&
		a.Total.Equal(b.Total) &&
		a.Locked == b.Locked
}
