package pricing

import (
	"github.com/shopspring/decimal"

	"github.com/vendorfund-dev/vendorfund/internal/model"
)

// Business-type multipliers. These are fixed product behavior, unlike
// the tier ladder, which varies per deployment and lives in Policy.
var (
	foodMultiplier     = decimal.NewFromFloat(1.1)
	foodIncentiveRate  = decimal.NewFromFloat(0.1)
	clothingMultiplier = decimal.NewFromFloat(0.9)
)

// Engine recommends an advance amount from vendor details. It is pure:
// same inputs, same outputs, no side effects.
type Engine struct {
	policy Policy
}

// NewEngine creates an Engine over a policy table.
func NewEngine(policy Policy) *Engine {
	return &Engine{policy: policy}
}

// Policy returns the engine's policy table.
func (e *Engine) Policy() Policy {
	return e.policy
}

// Price maps (daily sales, business type, operating days) to a
// recommended advance amount and the business-type incentive portion.
// Both are truncated to whole currency units. (0, 0) means no advance.
func (e *Engine) Price(dailySales decimal.Decimal, businessType model.BusinessType, operatingDays int) (amount, incentive decimal.Decimal) {
	base := e.baseAmount(dailySales)
	if base.IsZero() {
		return decimal.Zero, decimal.Zero
	}

	adjusted := base
	incentive = decimal.Zero
	switch businessType {
	case model.BusinessFood:
		incentive = base.Mul(foodIncentiveRate)
		adjusted = adjusted.Mul(foodMultiplier)
	case model.BusinessClothing:
		adjusted = adjusted.Mul(clothingMultiplier)
	}

	if operatingDays >= e.policy.OperatingDaysMin {
		adjusted = adjusted.Add(e.policy.OperatingDaysBonus)
	}

	if adjusted.GreaterThan(e.policy.MaxAdvance) {
		adjusted = e.policy.MaxAdvance
	}

	// An advance too small to pay out is the same as no advance.
	if adjusted.LessThan(e.policy.MinDisbursable) {
		return decimal.Zero, decimal.Zero
	}

	return adjusted.Floor(), incentive.Floor()
}

// baseAmount resolves the sales-tier base. Banding is inclusive on the
// lower bound: a value equal to a tier boundary prices into the tier
// above it.
func (e *Engine) baseAmount(dailySales decimal.Decimal) decimal.Decimal {
	if dailySales.LessThan(e.policy.SalesFloor) {
		return decimal.Zero
	}
	for _, tier := range e.policy.Tiers {
		if tier.Open || dailySales.LessThan(tier.Below) {
			return tier.Amount
		}
	}
	return decimal.Zero
}
