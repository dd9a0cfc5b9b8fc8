// Package ledger implements the batch payments core: per-client accounts, a
// log of committed monetary transactions, and the processor that applies the
// deposit/withdrawal/dispute/resolve/chargeback rules to both.
package ledger

import "sync"

// Ledger owns the account registry and the transaction log. A Ledger value
// is the whole unit of state; independent ledgers can coexist in a process.
// The mutex makes a Ledger safe to share, though the batch driver applies
// transactions from a single goroutine.
type Ledger struct {
	mu       sync.RWMutex
	accounts map[uint16]*Account
	log      map[uint32]*LoggedTransaction
}

// New creates an empty ledger.
func New() *Ledger {
	return &Ledger{
		accounts: make(map[uint16]*Account),
		log:      make(map[uint32]*LoggedTransaction),
	}
}

// FindAccount returns the account for a client, or false if none exists.
// The returned value is a snapshot.
func (l *Ledger) FindAccount(client uint16) (Account, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	account, ok := l.accounts[client]
	if !ok {
		return Account{}, false
	}
	return *account, true
}

// FindLogged returns the logged transaction for a tx id, or false if the id
// was never logged. The returned value is a snapshot.
func (l *Ledger) FindLogged(tx uint32) (LoggedTransaction, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	logged, ok := l.log[tx]
	if !ok {
		return LoggedTransaction{}, false
	}
	return *logged, true
}

// Accounts returns a snapshot of every account in the registry. Order is
// unspecified.
func (l *Ledger) Accounts() []Account {
	l.mu.RLock()
	defer l.mu.RUnlock()

	accounts := make([]Account, 0, len(l.accounts))
	for _, account := range l.accounts {
		accounts = append(accounts, *account)
	}
	return accounts
}

// findOrCreateAccount returns the live account for a client, creating an
// empty one on first reference. Only the deposit rule may call this;
// every other rule must not bring accounts into existence.
func (l *Ledger) findOrCreateAccount(client uint16) *Account {
	account, ok := l.accounts[client]
	if !ok {
		account = NewAccount(client)
		l.accounts[client] = account
	}
	return account
}

// logTransaction records a committed deposit or withdrawal under its tx id.
// Inserting over an existing id would silently lose a monetary record, so
// the duplicate check in the deposit/withdrawal rules must run first.
func (l *Ledger) logTransaction(tx Transaction) {
	l.log[tx.Tx] = newLoggedTransaction(tx)
}

// accountAndLogged resolves the account/logged-transaction pair a
// dispute-lifecycle operation targets. A missing account is reported before
// a missing transaction; the precedence is observable in the error codes.
func (l *Ledger) accountAndLogged(client uint16, tx uint32) (*Account, *LoggedTransaction, error) {
	account, ok := l.accounts[client]
	if !ok {
		return nil, nil, ErrAccountNotFound
	}
	logged, ok := l.log[tx]
	if !ok {
		return nil, nil, ErrTransactionNotFound
	}
	return account, logged, nil
}
