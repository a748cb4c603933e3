package model

import (
	"strings"

	"github.com/shopspring/decimal"
)

// State is the lifecycle state of a vendor's advance.
type State string

const (
	// StateInitial covers data entry and advance calculation.
	StateInitial State = "initial"
	// StateRequested means the vendor confirmed the recommended advance.
	StateRequested State = "requested"
	// StateApproved means the advance is cleared for disbursement.
	StateApproved State = "approved"
	// StateTracking is the post-disbursement state; sales are recorded
	// day by day and bonuses issued. The session stays here.
	StateTracking State = "tracking"
)

// Action is a named vendor-facing operation on a session.
type Action string

const (
	ActionSubmitDetails Action = "submit_details"
	ActionCalculate     Action = "calculate"
	ActionConfirm       Action = "confirm"
	ActionApprove       Action = "approve"
	ActionSetPayee      Action = "set_payee"
	ActionDisburse      Action = "disburse"
	ActionRecordSales   Action = "record_sales"
)

// AllowedActions defines which actions are valid in each state.
var AllowedActions = map[State][]Action{
	StateInitial:   {ActionSubmitDetails, ActionCalculate, ActionConfirm},
	StateRequested: {ActionApprove},
	StateApproved:  {ActionSetPayee, ActionDisburse},
	StateTracking:  {ActionRecordSales},
}

// Allows reports whether action is valid in state.
func Allows(state State, action Action) bool {
	for _, a := range AllowedActions[state] {
		if a == action {
			return true
		}
	}
	return false
}

// BusinessType classifies a vendor's business for pricing adjustments.
type BusinessType string

const (
	BusinessFood     BusinessType = "food"
	BusinessClothing BusinessType = "clothing"
	BusinessOther    BusinessType = "other"
)

// ParseBusinessType matches a business type case-insensitively.
// Anything that is not food or clothing prices as other.
func ParseBusinessType(s string) BusinessType {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case string(BusinessFood):
		return BusinessFood
	case string(BusinessClothing):
		return BusinessClothing
	default:
		return BusinessOther
	}
}

// Session is the single mutable record for one vendor interaction.
// It is a value: every transition takes a Session and returns the
// updated copy, so there is no hidden shared state.
type Session struct {
	State         State
	VendorName    string
	DailySales    decimal.Decimal
	BusinessType  BusinessType
	OperatingDays int

	// RecommendedAmount is the pricing engine output; valid only while
	// the inputs above are unchanged.
	RecommendedAmount decimal.Decimal
	// IncentiveAmount is the business-type portion of the recommendation
	// (informational only).
	IncentiveAmount decimal.Decimal
	// ConfirmedAmount is frozen at confirmation and is the authoritative
	// disbursement amount. It is never recalculated.
	ConfirmedAmount decimal.Decimal

	PayeeReference string

	CurrentBalance decimal.Decimal
	TotalBonuses   decimal.Decimal
	DaysTracked    int

	LastMessage string
}

// NewSession returns a fresh session in the initial state.
func NewSession() Session {
	return Session{
		State:        StateInitial,
		BusinessType: BusinessFood,
		LastMessage:  "Welcome! Enter vendor details to calculate your advance.",
	}
}
