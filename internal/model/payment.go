package model

import (
	"context"

	"github.com/shopspring/decimal"
)

// PaymentOutcome is the three-way classification of a provider response.
type PaymentOutcome string

const (
	// OutcomeSuccess means the provider accepted the payment.
	OutcomeSuccess PaymentOutcome = "success"
	// OutcomeRejected means the provider explicitly declined the payment.
	OutcomeRejected PaymentOutcome = "rejected"
	// OutcomeTransportError means the provider could not be reached or
	// authentication failed; nothing is known about the payment.
	OutcomeTransportError PaymentOutcome = "transport_error"
)

// PaymentResult is what the state machine sees from the payment
// collaborator. All parsing of the provider's real response shape
// happens in the adapter; the core only handles these three cases.
type PaymentResult struct {
	Outcome       PaymentOutcome
	TransactionID string
	// Reason carries the provider's rejection reason or transport detail.
	Reason string
	// Raw is the provider response body, kept for the ledger and logs.
	Raw []byte
}

// Payer submits payments to the external provider.
type Payer interface {
	SubmitPayment(ctx context.Context, destination string, amount decimal.Decimal, memo, currency string) PaymentResult
}
