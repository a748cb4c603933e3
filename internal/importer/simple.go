package importer

import (
	"encoding/csv"
	"fmt"
	"io"
	"time"

	"github.com/shopspring/decimal"
)

// SimpleParser parses two-column "date,sales" CSV exports.
type SimpleParser struct{}

const (
	simpleDateFormat = "2006-01-02"
	simpleNumFields  = 2
	simpleColDate    = 0
	simpleColSales   = 1
)

// Format returns the parser name.
func (p *SimpleParser) Format() string { return "simple" }

// Parse reads a date,sales CSV and returns SalesDays.
func (p *SimpleParser) Parse(r io.Reader) ([]SalesDay, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = simpleNumFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading sales CSV: %w", err)
	}

	if len(records) <= 1 {
		return nil, nil
	}

	var days []SalesDay
	for i, rec := range records[1:] {
		day, err := parseSimpleRow(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		days = append(days, day)
	}
	return days, nil
}

func parseSimpleRow(rec []string) (SalesDay, error) {
	date, err := time.Parse(simpleDateFormat, rec[simpleColDate])
	if err != nil {
		return SalesDay{}, fmt.Errorf("parsing date %q: %w", rec[simpleColDate], err)
	}

	sales, err := decimal.NewFromString(rec[simpleColSales])
	if err != nil {
		return SalesDay{}, fmt.Errorf("parsing sales %q: %w", rec[simpleColSales], err)
	}
	if sales.IsNegative() {
		return SalesDay{}, fmt.Errorf("negative sales %s", sales)
	}

	return SalesDay{Date: date, Sales: sales}, nil
}
