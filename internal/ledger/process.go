package ledger

// Process applies one transaction to the ledger. Either every side effect of
// the matched rule commits or none does; on error both stores are exactly as
// they were before the call. Precondition checks run in a fixed order so the
// error returned for a given failure is deterministic.
func (l *Ledger) Process(tx Transaction) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	switch tx.Kind {
	case KindDeposit:
		return l.deposit(tx)
	case KindWithdrawal:
		return l.withdraw(tx)
	case KindDispute:
		return l.dispute(tx)
	case KindResolve:
		return l.resolve(tx)
	case KindChargeback:
		return l.chargeback(tx)
	default:
		return ErrUnknownTransactionType
	}
}

// deposit credits available and total, creating the account on first sight
// of the client. The duplicate-id check runs before the account is created
// so a rejected duplicate for an unseen client brings nothing into
// existence.
func (l *Ledger) deposit(tx Transaction) error {
	if !tx.Amount.IsPositive() {
		return ErrInvalidAmount
	}

	account, exists := l.accounts[tx.Client]
	if exists && account.Locked {
		return ErrAccountLocked
	}
	if _, ok := l.log[tx.Tx]; ok {
		return ErrDuplicateTransaction
	}
	if !exists {
		account = l.findOrCreateAccount(tx.Client)
	}

	account.Available = account.Available.Add(tx.Amount)
	account.Total = account.Total.Add(tx.Amount)
	l.logTransaction(tx)
	return nil
}

// withdraw debits available and total. A withdrawal never creates an
// account.
func (l *Ledger) withdraw(tx Transaction) error {
	if !tx.Amount.IsPositive() {
		return ErrInvalidAmount
	}

	account, ok := l.accounts[tx.Client]
	if !ok {
		return ErrAccountNotFound
	}
	if account.Locked {
		return ErrAccountLocked
	}
	if _, ok := l.log[tx.Tx]; ok {
		return ErrDuplicateTransaction
	}
	if account.Available.LessThan(tx.Amount) {
		return &InsufficientFundsError{Available: account.Available}
	}

	account.Available = account.Available.Sub(tx.Amount)
	account.Total = account.Total.Sub(tx.Amount)
	l.logTransaction(tx)
	return nil
}

// dispute moves the original deposit amount from available to held and marks
// the logged entry disputed. Total is unchanged, and available may go
// negative when the deposited funds were already withdrawn. The lock flag is
// deliberately not consulted: the balance sheet keeps tracking disputes on
// locked accounts.
func (l *Ledger) dispute(tx Transaction) error {
	account, logged, err := l.accountAndLogged(tx.Client, tx.Tx)
	if err != nil {
		return err
	}
	if logged.Transaction.Client != tx.Client {
		return ErrMismatchedClient
	}
	if logged.State != StateProcessed {
		return &InvalidTransactionStateError{Got: logged.State}
	}
	if logged.Transaction.Kind != KindDeposit {
		// Withdrawals are never disputable here.
		return &InvalidTransactionStateError{Got: logged.State}
	}

	amount := logged.Transaction.Amount
	logged.State = StateDisputed
	account.Available = account.Available.Sub(amount)
	account.Held = account.Held.Add(amount)
	return nil
}

// resolve releases a disputed deposit back to available. The entry returns
// to processed and may be disputed again.
func (l *Ledger) resolve(tx Transaction) error {
	account, logged, err := l.accountAndLogged(tx.Client, tx.Tx)
	if err != nil {
		return err
	}
	if logged.Transaction.Client != tx.Client {
		return ErrMismatchedClient
	}
	if logged.State != StateDisputed {
		return &InvalidTransactionStateError{Got: logged.State}
	}
	if logged.Transaction.Kind != KindDeposit {
		return &InvalidTransactionStateError{Got: logged.State}
	}

	amount := logged.Transaction.Amount
	logged.State = StateProcessed
	account.Available = account.Available.Add(amount)
	account.Held = account.Held.Sub(amount)
	return nil
}

// chargeback reverses a disputed deposit: held and total both drop by the
// disputed amount, the entry enters its terminal state, and the account is
// locked for all future deposits and withdrawals. The lock is never reset.
func (l *Ledger) chargeback(tx Transaction) error {
	account, logged, err := l.accountAndLogged(tx.Client, tx.Tx)
	if err != nil {
		return err
	}
	if logged.Transaction.Client != tx.Client {
		return ErrMismatchedClient
	}
	if logged.State != StateDisputed {
		return &InvalidTransactionStateError{Got: logged.State}
	}
	if logged.Transaction.Kind != KindDeposit {
		return &InvalidTransactionStateError{Got: logged.State}
	}

	amount := logged.Transaction.Amount
	logged.State = StateChargeback
	account.Held = account.Held.Sub(amount)
	account.Total = account.Total.Sub(amount)
	account.Locked = true
	return nil
}
