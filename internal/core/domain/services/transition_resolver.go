package services

import (
	"errors"

	"osonish/internal/core/domain/model/order"
)

// ErrOrderNotEligible is returned when an order's status admits no automatic
// transition. This occurs for orders already in a terminal state and for any
// status outside the two eligibility groups the cutoff engine acts on.
var ErrOrderNotEligible = errors.New("order is not eligible for an automatic transition")

// Transition identifies the automatic transition the cutoff engine should
// apply to an eligible order.
type Transition int

const (
	// TransitionNone means no transition applies.
	TransitionNone Transition = iota

	// TransitionComplete force-completes an order that was accepted
	// and is being worked on.
	TransitionComplete

	// TransitionCancel force-cancels an order that never reached
	// the in-progress stage.
	TransitionCancel
)

// String returns a human-readable name for logs and notifications.
func (t Transition) String() string {
	switch t {
	case TransitionComplete:
		return "complete"
	case TransitionCancel:
		return "cancel"
	default:
		return "none"
	}
}

// TransitionResolver is a domain service that decides, from an order's current
// status alone, which automatic transition the cutoff engine should apply.
//
// Resolution rules:
//   - InProgress orders are completed: work was accepted, the service day has
//     arrived, so the platform assumes it was carried out
//   - New and ResponseReceived orders are cancelled: nobody committed to the
//     work before its day came
//   - Every other status resolves to ErrOrderNotEligible
//
// The resolver is a pure function of status. Date eligibility is the
// selector's concern and idempotency is the aggregate's; keeping the three
// apart lets each be tested in isolation.
type TransitionResolver struct{}

// NewTransitionResolver creates a new TransitionResolver instance.
func NewTransitionResolver() TransitionResolver {
	return TransitionResolver{}
}

// Resolve returns the transition to apply for the given order.
//
// Returns ErrOrderNotEligible when the status admits no automatic transition,
// or a validation error when the order was not properly constructed.
func (r TransitionResolver) Resolve(o *order.Order) (Transition, error) {
	if err := o.Validate(); err != nil {
		return TransitionNone, err
	}

	switch o.Status() {
	case order.InProgress:
		return TransitionComplete, nil
	case order.New, order.ResponseReceived:
		return TransitionCancel, nil
	default:
		return TransitionNone, ErrOrderNotEligible
	}
}
