package csvio

import (
	"encoding/csv"
	"fmt"
	"io"
	"sort"
	"strconv"

	"github.com/terminal-bench/payledger/internal/ledger"
)

// WriteAccounts encodes the final account states as CSV. Registry order is
// unspecified, so rows are sorted by client id to keep the output stable.
// Decimals print with their natural precision; nothing is rounded.
func WriteAccounts(w io.Writer, accounts []ledger.Account) error {
	sorted := make([]ledger.Account, len(accounts))
	copy(sorted, accounts)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Client < sorted[j].Client })

	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"client", "available", "held", "total", "locked"}); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for _, account := range sorted {
		row := []string{
			strconv.FormatUint(uint64(account.Client), 10),
			account.Available.String(),
			account.Held.String(),
			account.Total.String(),
			strconv.FormatBool(account.Locked),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing account %d: %w", account.Client, err)
		}
	}

	cw.Flush()
	return cw.Error()
}
