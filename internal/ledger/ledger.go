// Package ledger keeps an append-only CSV record of every payment the
// fund has issued: disbursements and growth bonuses. Rows are written
// only after the provider reports success.
package ledger

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/vendorfund-dev/vendorfund/internal/id"
)

// Kind distinguishes ledger entry types.
type Kind string

const (
	KindDisbursement Kind = "disbursement"
	KindBonus        Kind = "bonus"
)

// Entry is one row in the payment ledger.
type Entry struct {
	EntryID       string
	Timestamp     time.Time
	Vendor        string
	Kind          Kind
	Amount        decimal.Decimal
	Currency      string
	TransactionID string
	Memo          string
}

// Header is the CSV header for payments.csv.
const Header = "entry_id,timestamp,vendor,kind,amount,currency,transaction_id,memo"

const (
	numFields  = 8
	ledgerDir  = "ledger"
	ledgerFile = "ledger/payments.csv"
	colEntryID = 0
	colTime    = 1
	colVendor  = 2
	colKind    = 3
	colAmount  = 4
	colCcy     = 5
	colTxnID   = 6
	colMemo    = 7
)

// MarshalEntry converts an Entry to a CSV row.
func MarshalEntry(e Entry) []string {
	row := make([]string, numFields)
	row[colEntryID] = e.EntryID
	row[colTime] = e.Timestamp.Format(time.RFC3339)
	row[colVendor] = e.Vendor
	row[colKind] = string(e.Kind)
	row[colAmount] = e.Amount.StringFixed(2)
	row[colCcy] = e.Currency
	row[colTxnID] = e.TransactionID
	row[colMemo] = e.Memo
	return row
}

// UnmarshalEntry converts a CSV row to an Entry.
func UnmarshalEntry(record []string) (Entry, error) {
	if len(record) != numFields {
		return Entry{}, fmt.Errorf("expected %d fields, got %d", numFields, len(record))
	}

	ts, err := time.Parse(time.RFC3339, record[colTime])
	if err != nil {
		return Entry{}, fmt.Errorf("parsing timestamp %q: %w", record[colTime], err)
	}

	amount, err := decimal.NewFromString(record[colAmount])
	if err != nil {
		return Entry{}, fmt.Errorf("parsing amount %q: %w", record[colAmount], err)
	}

	return Entry{
		EntryID:       record[colEntryID],
		Timestamp:     ts,
		Vendor:        record[colVendor],
		Kind:          Kind(record[colKind]),
		Amount:        amount,
		Currency:      record[colCcy],
		TransactionID: record[colTxnID],
		Memo:          record[colMemo],
	}, nil
}

// NextEntryID returns the next entry ID for the given month based on
// the existing ledger contents.
func NextEntryID(dir string, now time.Time) (string, error) {
	entries, err := Read(dir)
	if err != nil {
		return "", err
	}

	maxSeq := 0
	for _, e := range entries {
		year, month, seq, err := id.ParseEntryID(e.EntryID)
		if err != nil {
			continue
		}
		if year == now.Year() && month == int(now.Month()) && seq > maxSeq {
			maxSeq = seq
		}
	}
	return id.FormatEntryID(now.Year(), int(now.Month()), maxSeq+1), nil
}

// Append writes entries to <dir>/ledger/payments.csv, creating the
// file and header if needed.
func Append(dir string, entries []Entry) error {
	if err := os.MkdirAll(filepath.Join(dir, ledgerDir), 0o755); err != nil {
		return fmt.Errorf("creating ledger dir: %w", err)
	}

	path := filepath.Join(dir, ledgerFile)
	needsHeader := false
	if _, err := os.Stat(path); os.IsNotExist(err) {
		needsHeader = true
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("opening ledger: %w", err)
	}
	defer f.Close()

	cw := csv.NewWriter(f)
	defer cw.Flush()

	if needsHeader {
		if err := cw.Write(strings.Split(Header, ",")); err != nil {
			return fmt.Errorf("writing header: %w", err)
		}
	}

	for i, e := range entries {
		if err := cw.Write(MarshalEntry(e)); err != nil {
			return fmt.Errorf("writing entry %d: %w", i, err)
		}
	}

	return cw.Error()
}

// Read returns all entries from <dir>/ledger/payments.csv. Returns an
// empty slice if the file does not exist.
func Read(dir string) ([]Entry, error) {
	f, err := os.Open(filepath.Join(dir, ledgerFile))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("opening ledger: %w", err)
	}
	defer f.Close()

	return readEntries(f)
}

func readEntries(r io.Reader) ([]Entry, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading ledger CSV: %w", err)
	}

	if len(records) <= 1 {
		return nil, nil
	}

	var entries []Entry
	for i, rec := range records[1:] {
		e, err := UnmarshalEntry(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		entries = append(entries, e)
	}
	return entries, nil
}
