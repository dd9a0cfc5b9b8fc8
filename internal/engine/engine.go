// Package engine drives a batch: it pulls decoded transactions from a
// source and applies them to a ledger, reporting per-record failures without
// stopping the stream.
package engine

import (
	"context"
	"errors"
	"io"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/terminal-bench/payledger/internal/ledger"
)

// Source yields decoded transactions in input order. It returns io.EOF when
// the batch is exhausted; any other error aborts the run.
type Source interface {
	Read() (ledger.Transaction, error)
}

// Runner applies one batch to one ledger.
type Runner struct {
	ledger *ledger.Ledger
	logger *zap.Logger
}

// New creates a runner for the given ledger. A nil logger disables
// diagnostics.
func New(l *ledger.Ledger, logger *zap.Logger) *Runner {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Runner{ledger: l, logger: logger}
}

// Run consumes the source until io.EOF. Decoding and applying run as a
// two-stage pipeline: one goroutine reads, one applies, connected by a
// channel so input order is preserved end to end. A rejected transaction is
// logged and the batch continues; a source error stops the run and is
// returned.
func (r *Runner) Run(ctx context.Context, src Source) error {
	transactions := make(chan ledger.Transaction, 64)

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		defer close(transactions)
		for {
			tx, err := src.Read()
			if err != nil {
				if errors.Is(err, io.EOF) {
					return nil
				}
				return err
			}
			select {
			case transactions <- tx:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
	})

	g.Go(func() error {
		for tx := range transactions {
			if err := r.ledger.Process(tx); err != nil {
				r.logger.Warn("transaction failed",
					zap.Stringer("type", tx.Kind),
					zap.Uint16("client", tx.Client),
					zap.Uint32("tx", tx.Tx),
					zap.String("amount", tx.Amount.String()),
					zap.Error(err),
				)
			}
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}

	r.logger.Info("batch complete", zap.Int("accounts", len(r.ledger.Accounts())))
	return nil
}
