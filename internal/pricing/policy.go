package pricing

import "github.com/shopspring/decimal"

// Tier is one band of the sales-based advance ladder. A daily-sales
// value prices into the first tier whose Below bound exceeds it; the
// final tier has Open set and catches everything at or above the last
// bound.
type Tier struct {
	Below  decimal.Decimal `yaml:"below"`
	Amount decimal.Decimal `yaml:"amount"`
	Open   bool            `yaml:"open,omitempty"`
}

// Policy is the data half of the pricing engine: tier ladder, bonuses
// and caps. Two divergent tables exist in this system's history (see
// DemoProfile and RupeeProfile), so none of these numbers are code.
type Policy struct {
	// SalesFloor is the minimum average daily sales for any advance.
	SalesFloor decimal.Decimal `yaml:"sales_floor"`
	// Tiers maps daily sales to a base advance amount, ascending.
	Tiers []Tier `yaml:"tiers"`
	// OperatingDaysMin is the weekly operating-days count at which the
	// flat OperatingDaysBonus is added.
	OperatingDaysMin   int             `yaml:"operating_days_min"`
	OperatingDaysBonus decimal.Decimal `yaml:"operating_days_bonus"`
	// MaxAdvance caps the recommendation.
	MaxAdvance decimal.Decimal `yaml:"max_advance"`
	// MinDisbursable collapses a too-small recommendation to zero.
	MinDisbursable decimal.Decimal `yaml:"min_disbursable"`
	// BonusThreshold and BonusAmount govern the post-disbursement
	// growth bonus on a recorded day's sales.
	BonusThreshold decimal.Decimal `yaml:"bonus_threshold"`
	BonusAmount    decimal.Decimal `yaml:"bonus_amount"`
}

// DemoProfile is the small-unit table used by the demo deployment.
func DemoProfile() Policy {
	return Policy{
		SalesFloor: decimal.NewFromInt(5),
		Tiers: []Tier{
			{Below: decimal.NewFromInt(10), Amount: decimal.NewFromInt(15)},
			{Below: decimal.NewFromInt(15), Amount: decimal.NewFromInt(25)},
			{Amount: decimal.NewFromInt(35), Open: true},
		},
		OperatingDaysMin:   6,
		OperatingDaysBonus: decimal.NewFromInt(10),
		MaxAdvance:         decimal.NewFromInt(600),
		MinDisbursable:     decimal.NewFromInt(10),
		BonusThreshold:     decimal.NewFromInt(50),
		BonusAmount:        decimal.NewFromInt(5),
	}
}

// RupeeProfile is the large-unit table from the earlier rupee-keyed
// ladder. That table predates sales tracking, so its bonus numbers
// scale the demo profile's by the same factor as the ladder.
func RupeeProfile() Policy {
	return Policy{
		SalesFloor: decimal.NewFromInt(500),
		Tiers: []Tier{
			{Below: decimal.NewFromInt(1000), Amount: decimal.NewFromInt(5000)},
			{Below: decimal.NewFromInt(2000), Amount: decimal.NewFromInt(10000)},
			{Amount: decimal.NewFromInt(15000), Open: true},
		},
		OperatingDaysMin:   6,
		OperatingDaysBonus: decimal.NewFromInt(2000),
		MaxAdvance:         decimal.NewFromInt(20000),
		MinDisbursable:     decimal.NewFromInt(10),
		BonusThreshold:     decimal.NewFromInt(500),
		BonusAmount:        decimal.NewFromInt(50),
	}
}

// ProfileByName resolves a named policy profile. Unknown names fall
// back to the demo profile.
func ProfileByName(name string) Policy {
	switch name {
	case "rupee":
		return RupeeProfile()
	default:
		return DemoProfile()
	}
}
