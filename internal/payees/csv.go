package payees

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
)

// Header is the CSV header for payees.csv.
const Header = "reference,vendor_name,notes"

const (
	fileName  = "payees.csv"
	numFields = 3
	colRef    = 0
	colVendor = 1
	colNotes  = 2
)

// ReadPayees reads all payees from a payees.csv reader.
func ReadPayees(r io.Reader) ([]Payee, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading payees CSV: %w", err)
	}

	if len(records) <= 1 {
		return nil, nil
	}

	var list []Payee
	for i, rec := range records[1:] {
		if rec[colRef] == "" {
			return nil, fmt.Errorf("row %d: empty payee reference", i+2)
		}
		list = append(list, Payee{
			Reference:  rec[colRef],
			VendorName: rec[colVendor],
			Notes:      rec[colNotes],
		})
	}
	return list, nil
}

// WritePayees writes the header and all payees to w.
func WritePayees(w io.Writer, list []Payee) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(strings.Split(Header, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for i, p := range list {
		row := make([]string, numFields)
		row[colRef] = p.Reference
		row[colVendor] = p.VendorName
		row[colNotes] = p.Notes
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing payee %d: %w", i, err)
		}
	}
	return cw.Error()
}
