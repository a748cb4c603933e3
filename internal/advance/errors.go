package advance

import (
	"fmt"

	"github.com/vendorfund-dev/vendorfund/internal/model"
)

// TransitionError reports an action attempted in a state that does not
// allow it.
type TransitionError struct {
	State  model.State
	Action model.Action
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("action %s not allowed in state %s", e.Action, e.State)
}

// ValidationError reports a precondition failure on an otherwise
// allowed action. The transition is refused and the session state is
// unchanged.
type ValidationError struct {
	Action model.Action
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Action, e.Reason)
}

// PaymentError reports a failed disbursement or bonus payment. The
// session stays in its pre-payment state and the action may be retried.
type PaymentError struct {
	Stage  string // "disbursement" or "bonus"
	Result model.PaymentResult
}

func (e *PaymentError) Error() string {
	if e.Result.Outcome == model.OutcomeTransportError {
		return fmt.Sprintf("%s: could not reach payment provider: %s", e.Stage, e.Result.Reason)
	}
	return fmt.Sprintf("%s rejected: %s", e.Stage, e.Result.Reason)
}
