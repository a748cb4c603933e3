// Package store persists the active vendor session between CLI
// invocations. One session per fund dir.
package store

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/vendorfund-dev/vendorfund/internal/model"
)

// FileName is the session file at the fund dir root.
const FileName = "session.yaml"

// sessionFile is the on-disk shape of a session. Decimal values
// round-trip as scalars via encoding.TextMarshaler.
type sessionFile struct {
	State             string          `yaml:"state"`
	VendorName        string          `yaml:"vendor_name"`
	DailySales        decimal.Decimal `yaml:"daily_sales"`
	BusinessType      string          `yaml:"business_type"`
	OperatingDays     int             `yaml:"operating_days"`
	RecommendedAmount decimal.Decimal `yaml:"recommended_amount"`
	IncentiveAmount   decimal.Decimal `yaml:"incentive_amount"`
	ConfirmedAmount   decimal.Decimal `yaml:"confirmed_amount"`
	PayeeReference    string          `yaml:"payee_reference"`
	CurrentBalance    decimal.Decimal `yaml:"current_balance"`
	TotalBonuses      decimal.Decimal `yaml:"total_bonuses"`
	DaysTracked       int             `yaml:"days_tracked"`
	LastMessage       string          `yaml:"last_message"`
}

// Load reads the session from a fund dir. A missing file yields a
// fresh initial session.
func Load(dir string) (model.Session, error) {
	data, err := os.ReadFile(filepath.Join(dir, FileName))
	if errors.Is(err, fs.ErrNotExist) {
		return model.NewSession(), nil
	}
	if err != nil {
		return model.Session{}, fmt.Errorf("reading session: %w", err)
	}

	var f sessionFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return model.Session{}, fmt.Errorf("parsing session: %w", err)
	}

	return model.Session{
		State:             model.State(f.State),
		VendorName:        f.VendorName,
		DailySales:        f.DailySales,
		BusinessType:      model.ParseBusinessType(f.BusinessType),
		OperatingDays:     f.OperatingDays,
		RecommendedAmount: f.RecommendedAmount,
		IncentiveAmount:   f.IncentiveAmount,
		ConfirmedAmount:   f.ConfirmedAmount,
		PayeeReference:    f.PayeeReference,
		CurrentBalance:    f.CurrentBalance,
		TotalBonuses:      f.TotalBonuses,
		DaysTracked:       f.DaysTracked,
		LastMessage:       f.LastMessage,
	}, nil
}

// Save writes the session to a fund dir.
func Save(dir string, s model.Session) error {
	f := sessionFile{
		State:             string(s.State),
		VendorName:        s.VendorName,
		DailySales:        s.DailySales,
		BusinessType:      string(s.BusinessType),
		OperatingDays:     s.OperatingDays,
		RecommendedAmount: s.RecommendedAmount,
		IncentiveAmount:   s.IncentiveAmount,
		ConfirmedAmount:   s.ConfirmedAmount,
		PayeeReference:    s.PayeeReference,
		CurrentBalance:    s.CurrentBalance,
		TotalBonuses:      s.TotalBonuses,
		DaysTracked:       s.DaysTracked,
		LastMessage:       s.LastMessage,
	}

	data, err := yaml.Marshal(f)
	if err != nil {
		return fmt.Errorf("marshaling session: %w", err)
	}
	if err := os.WriteFile(filepath.Join(dir, FileName), data, 0o644); err != nil {
		return fmt.Errorf("writing session: %w", err)
	}
	return nil
}
