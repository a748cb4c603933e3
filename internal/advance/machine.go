// Package advance implements the vendor advance lifecycle state
// machine: data entry, advance calculation, confirmation, approval,
// disbursement, and post-disbursement sales tracking with bonuses.
//
// Every action takes a Session value and returns the updated copy with
// LastMessage set. Validation failures refuse the transition and leave
// the state unchanged; payment failures leave the session in its
// pre-payment state so the action can be retried.
package advance

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/vendorfund-dev/vendorfund/internal/model"
	"github.com/vendorfund-dev/vendorfund/internal/pricing"
)

// Machine orchestrates session transitions, the pricing engine, and
// the payment collaborator.
type Machine struct {
	engine   *pricing.Engine
	payer    model.Payer
	currency string
}

// NewMachine creates a Machine.
func NewMachine(engine *pricing.Engine, payer model.Payer, currency string) *Machine {
	return &Machine{engine: engine, payer: payer, currency: currency}
}

// Details are the vendor inputs to the pricing engine.
type Details struct {
	VendorName    string
	DailySales    decimal.Decimal
	BusinessType  model.BusinessType
	OperatingDays int
}

// SubmitDetails records vendor details on the session.
func (m *Machine) SubmitDetails(s model.Session, d Details) (model.Session, error) {
	if !model.Allows(s.State, model.ActionSubmitDetails) {
		return refuse(s, &TransitionError{State: s.State, Action: model.ActionSubmitDetails})
	}
	if d.VendorName == "" {
		s.LastMessage = "Please enter a vendor name."
		return s, &ValidationError{Action: model.ActionSubmitDetails, Reason: "vendor name is required"}
	}
	if d.DailySales.IsNegative() {
		s.LastMessage = "Daily sales cannot be negative."
		return s, &ValidationError{Action: model.ActionSubmitDetails, Reason: "daily sales must be non-negative"}
	}
	if d.OperatingDays < 1 || d.OperatingDays > 7 {
		s.LastMessage = "Operating days must be between 1 and 7."
		return s, &ValidationError{Action: model.ActionSubmitDetails, Reason: "operating days must be in 1..7"}
	}

	s.VendorName = d.VendorName
	s.DailySales = d.DailySales
	s.BusinessType = d.BusinessType
	s.OperatingDays = d.OperatingDays
	s.LastMessage = fmt.Sprintf("Details recorded for %s.", s.VendorName)
	return s, nil
}

// Calculate runs the pricing engine over the session's details and
// stores the recommendation. Repeated calls with unchanged inputs give
// identical results.
func (m *Machine) Calculate(s model.Session) (model.Session, error) {
	if !model.Allows(s.State, model.ActionCalculate) {
		return refuse(s, &TransitionError{State: s.State, Action: model.ActionCalculate})
	}
	if s.VendorName == "" {
		s.LastMessage = "Please enter a vendor name to calculate an advance."
		return s, &ValidationError{Action: model.ActionCalculate, Reason: "vendor name is required"}
	}

	floor := m.engine.Policy().SalesFloor
	if s.DailySales.LessThan(floor) {
		s.RecommendedAmount = decimal.Zero
		s.IncentiveAmount = decimal.Zero
		s.LastMessage = fmt.Sprintf("No advance if daily sales are below %s. Increase daily sales for a recommendation.", floor.StringFixed(2))
		return s, &ValidationError{Action: model.ActionCalculate, Reason: fmt.Sprintf("daily sales below floor %s", floor)}
	}

	s.RecommendedAmount, s.IncentiveAmount = m.engine.Price(s.DailySales, s.BusinessType, s.OperatingDays)
	if s.RecommendedAmount.IsZero() {
		s.LastMessage = "Based on your inputs, an advance is currently not recommended."
	} else {
		s.LastMessage = fmt.Sprintf("Based on your inputs, the recommended advance amount is %s.", s.RecommendedAmount.StringFixed(2))
	}
	return s, nil
}

// Confirm freezes the recommended amount as the confirmed advance and
// submits the request. Only valid while a positive recommendation
// stands.
func (m *Machine) Confirm(s model.Session) (model.Session, error) {
	if !model.Allows(s.State, model.ActionConfirm) {
		return refuse(s, &TransitionError{State: s.State, Action: model.ActionConfirm})
	}
	if !s.RecommendedAmount.IsPositive() {
		s.LastMessage = "No advance to confirm. Calculate a recommendation first."
		return s, &ValidationError{Action: model.ActionConfirm, Reason: "no positive recommended amount"}
	}

	s.ConfirmedAmount = s.RecommendedAmount
	s.State = model.StateRequested
	s.LastMessage = fmt.Sprintf("Advance request for %s (%s) confirmed and submitted. Awaiting approval...", s.VendorName, s.ConfirmedAmount.StringFixed(2))
	return s, nil
}

// Approve records the external approval signal.
func (m *Machine) Approve(s model.Session) (model.Session, error) {
	if !model.Allows(s.State, model.ActionApprove) {
		return refuse(s, &TransitionError{State: s.State, Action: model.ActionApprove})
	}
	s.State = model.StateApproved
	s.LastMessage = fmt.Sprintf("Advance for %s approved! Ready for disbursement.", s.VendorName)
	return s, nil
}

// SetPayee stores the payment destination reference.
func (m *Machine) SetPayee(s model.Session, reference string) (model.Session, error) {
	if !model.Allows(s.State, model.ActionSetPayee) {
		return refuse(s, &TransitionError{State: s.State, Action: model.ActionSetPayee})
	}
	if reference == "" {
		s.LastMessage = "Please provide the vendor's payee reference."
		return s, &ValidationError{Action: model.ActionSetPayee, Reason: "payee reference is required"}
	}
	s.PayeeReference = reference
	s.LastMessage = fmt.Sprintf("Payee reference set to %s.", reference)
	return s, nil
}

// Disburse transfers the confirmed amount to the vendor's payee
// reference. On success the session moves to tracking; on any failure
// it stays approved and the action may be retried.
func (m *Machine) Disburse(ctx context.Context, s model.Session) (model.Session, error) {
	if !model.Allows(s.State, model.ActionDisburse) {
		return refuse(s, &TransitionError{State: s.State, Action: model.ActionDisburse})
	}
	if s.PayeeReference == "" {
		s.LastMessage = "Please set the vendor's payee reference before disbursing."
		return s, &ValidationError{Action: model.ActionDisburse, Reason: "payee reference is required"}
	}

	memo := fmt.Sprintf("Micro-advance for %s's stall", s.VendorName)
	res := m.payer.SubmitPayment(ctx, s.PayeeReference, s.ConfirmedAmount, memo, m.currency)
	if res.Outcome != model.OutcomeSuccess {
		s.LastMessage = paymentFailureMessage(res)
		return s, &PaymentError{Stage: "disbursement", Result: res}
	}

	s.CurrentBalance = s.CurrentBalance.Add(s.ConfirmedAmount)
	s.State = model.StateTracking
	s.LastMessage = fmt.Sprintf("Advance of %s disbursed successfully! Transaction ID: %s", s.ConfirmedAmount.StringFixed(2), transactionID(res))
	return s, nil
}

// RecordSales records one tracked day's sales and issues a growth
// bonus when the day's sales reach the policy threshold. The day
// counter advances whether or not a bonus is due or succeeds.
func (m *Machine) RecordSales(ctx context.Context, s model.Session, sales decimal.Decimal) (model.Session, error) {
	if !model.Allows(s.State, model.ActionRecordSales) {
		return refuse(s, &TransitionError{State: s.State, Action: model.ActionRecordSales})
	}
	if sales.IsNegative() {
		s.LastMessage = "Daily sales cannot be negative."
		return s, &ValidationError{Action: model.ActionRecordSales, Reason: "daily sales must be non-negative"}
	}

	s.DaysTracked++
	s.DailySales = sales

	policy := m.engine.Policy()
	if sales.LessThan(policy.BonusThreshold) {
		s.LastMessage = fmt.Sprintf("Day %d sales recorded: %s. No bonus this time.", s.DaysTracked, sales.StringFixed(2))
		return s, nil
	}

	memo := fmt.Sprintf("Growth bonus for %s (sales performance)", s.VendorName)
	res := m.payer.SubmitPayment(ctx, s.PayeeReference, policy.BonusAmount, memo, m.currency)
	if res.Outcome != model.OutcomeSuccess {
		s.LastMessage = paymentFailureMessage(res)
		return s, &PaymentError{Stage: "bonus", Result: res}
	}

	s.CurrentBalance = s.CurrentBalance.Add(policy.BonusAmount)
	s.TotalBonuses = s.TotalBonuses.Add(policy.BonusAmount)
	s.LastMessage = fmt.Sprintf("Growth bonus of %s issued! Transaction ID: %s", policy.BonusAmount.StringFixed(2), transactionID(res))
	return s, nil
}

// Currency returns the currency code payments are issued in.
func (m *Machine) Currency() string {
	return m.currency
}

func refuse(s model.Session, err *TransitionError) (model.Session, error) {
	s.LastMessage = err.Error()
	return s, err
}

func paymentFailureMessage(res model.PaymentResult) string {
	if res.Outcome == model.OutcomeTransportError {
		return "Could not reach the payment provider. Please try again."
	}
	return fmt.Sprintf("Payment rejected by provider: %s", res.Reason)
}

func transactionID(res model.PaymentResult) string {
	if res.TransactionID == "" {
		return "N/A"
	}
	return res.TransactionID
}
