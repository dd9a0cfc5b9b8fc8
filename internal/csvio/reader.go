// Package csvio frames transactions and accounts as CSV. It is the only
// place the engine knows about encodings; the core consumes and produces
// plain values.
package csvio

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/terminal-bench/payledger/internal/ledger"
	"github.com/terminal-bench/payledger/pkg/money"
)

// Reader decodes transaction records from a CSV stream. The stream must
// start with a header naming the columns type, client, tx, and amount, in
// any order; the amount column may be absent entirely. Surrounding
// whitespace is trimmed from every field.
type Reader struct {
	csv    *csv.Reader
	line   int
	kind   int
	client int
	tx     int
	amount int
}

// NewReader wraps r and consumes the header line.
func NewReader(r io.Reader) (*Reader, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}

	reader := &Reader{csv: cr, kind: -1, client: -1, tx: -1, amount: -1}
	for i, name := range header {
		switch strings.TrimSpace(name) {
		case "type":
			reader.kind = i
		case "client":
			reader.client = i
		case "tx":
			reader.tx = i
		case "amount":
			reader.amount = i
		}
	}
	if reader.kind < 0 || reader.client < 0 || reader.tx < 0 {
		return nil, fmt.Errorf("header must name the type, client and tx columns, got %q", header)
	}

	// Dispute-lifecycle rows may omit the trailing amount field.
	reader.csv.FieldsPerRecord = -1

	return reader, nil
}

// Read decodes the next transaction. It returns io.EOF when the stream is
// exhausted. An unrecognized type tag is not a decode error; it produces a
// transaction of the unknown kind, which the processor rejects.
func (r *Reader) Read() (ledger.Transaction, error) {
	record, err := r.csv.Read()
	if err != nil {
		if err == io.EOF {
			return ledger.Transaction{}, io.EOF
		}
		return ledger.Transaction{}, fmt.Errorf("reading record: %w", err)
	}
	r.line++

	client, err := strconv.ParseUint(r.field(record, r.client), 10, 16)
	if err != nil {
		return ledger.Transaction{}, fmt.Errorf("record %d: invalid client id: %w", r.line, err)
	}
	tx, err := strconv.ParseUint(r.field(record, r.tx), 10, 32)
	if err != nil {
		return ledger.Transaction{}, fmt.Errorf("record %d: invalid tx id: %w", r.line, err)
	}
	amount, err := money.Parse(r.field(record, r.amount))
	if err != nil {
		return ledger.Transaction{}, fmt.Errorf("record %d: %w", r.line, err)
	}

	return ledger.Transaction{
		Kind:   ledger.ParseKind(r.field(record, r.kind)),
		Client: uint16(client),
		Tx:     uint32(tx),
		Amount: amount,
	}, nil
}

// field returns the trimmed column value, or "" when the column is missing
// from the header or the row is short.
func (r *Reader) field(record []string, idx int) string {
	if idx < 0 || idx >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[idx])
}
