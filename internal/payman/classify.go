package payman

import (
	"encoding/json"
	"strings"

	"github.com/vendorfund-dev/vendorfund/internal/model"
)

// The provider's response shape is not pinned down: sometimes a
// structured object with a status field, sometimes free text from its
// agent interface. All of the guessing lives in this file so the rest
// of the system only ever sees the three-way PaymentResult.

var rejectionKeywords = []string{"rejected", "failed", "declined"}
var successKeywords = []string{"sent", "success", "completed"}

// Classify turns a raw provider response body into a PaymentResult.
//
// With strict false (the historical behavior), any response without an
// explicit rejection signal counts as success. With strict true, a
// response must carry a positive signal (a transaction id or a success
// keyword) or it is rejected as unconfirmed.
func Classify(body []byte, strict bool) model.PaymentResult {
	trimmed := strings.TrimSpace(string(body))

	var obj map[string]any
	if err := json.Unmarshal(body, &obj); err == nil && obj != nil {
		return classifyObject(obj, body, strict)
	}

	// Unwrap a JSON-encoded string, otherwise treat the body as text.
	var str string
	if err := json.Unmarshal(body, &str); err == nil {
		return classifyText(str, body, strict)
	}
	return classifyText(trimmed, body, strict)
}

func classifyObject(obj map[string]any, raw []byte, strict bool) model.PaymentResult {
	status := firstString(obj, "status", "state", "payment_status")
	reason := firstString(obj, "message", "error", "detail")

	if status != "" && containsAny(strings.ToLower(status), rejectionKeywords) {
		if reason == "" {
			reason = "status: " + status
		}
		return model.PaymentResult{Outcome: model.OutcomeRejected, Reason: reason, Raw: raw}
	}

	txID := firstString(obj, "transaction_id", "id")
	if strict && txID == "" && !containsAny(strings.ToLower(status), successKeywords) {
		return model.PaymentResult{
			Outcome: model.OutcomeRejected,
			Reason:  "no explicit success confirmation from provider",
			Raw:     raw,
		}
	}
	return model.PaymentResult{Outcome: model.OutcomeSuccess, TransactionID: txID, Raw: raw}
}

func classifyText(text string, raw []byte, strict bool) model.PaymentResult {
	lower := strings.ToLower(text)
	if containsAny(lower, rejectionKeywords) {
		return model.PaymentResult{Outcome: model.OutcomeRejected, Reason: text, Raw: raw}
	}

	if containsAny(lower, successKeywords) {
		return model.PaymentResult{
			Outcome:       model.OutcomeSuccess,
			TransactionID: "confirmed via provider response",
			Raw:           raw,
		}
	}

	if strict {
		return model.PaymentResult{
			Outcome: model.OutcomeRejected,
			Reason:  "no explicit success confirmation from provider",
			Raw:     raw,
		}
	}
	// No rejection signal: assume the payment went through.
	return model.PaymentResult{Outcome: model.OutcomeSuccess, Raw: raw}
}

func firstString(obj map[string]any, keys ...string) string {
	for _, k := range keys {
		if v, ok := obj[k].(string); ok && v != "" {
			return v
		}
	}
	return ""
}

func containsAny(s string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(s, k) {
			return true
		}
	}
	return false
}
