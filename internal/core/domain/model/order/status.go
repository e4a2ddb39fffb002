package order

import (
	"fmt"

	"osonish/internal/pkg/errs"
)

// Status represents the lifecycle state of a marketplace order.
// It implements a state machine with defined transitions to ensure
// orders follow the correct business workflow.
//
// State transitions:
//
//	New ──────────> ResponseReceived ──> InProgress ──> Completed
//	 │                     │
//	 └──> Cancelled <──────┘
//
// Completed and Cancelled are terminal: once reached they are never left,
// and an order never moves backward along the chain.
//
// Status is a value object that validates state transitions and provides
// string representations for persistence and display.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// New is the initial status when a customer posts an order.
	// No worker has responded yet.
	New

	// ResponseReceived indicates at least one worker applied to the order
	// but the customer has not accepted anyone yet.
	ResponseReceived

	// InProgress indicates the customer accepted a worker and the work
	// is underway on the scheduled service date.
	InProgress

	// Completed indicates the work was finished.
	// This is a terminal state with no further transitions allowed.
	Completed

	// Cancelled indicates the order was called off before any work started.
	// This is a terminal state with no further transitions allowed.
	Cancelled
)

// getStatusStrings returns a map of Status values to their string representations.
// The strings double as the persisted wire format, so they stay snake_case.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:          "unknown",
		New:              "new",
		ResponseReceived: "response_received",
		InProgress:       "in_progress",
		Completed:        "completed",
		Cancelled:        "cancelled",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		New:              "new",
		ResponseReceived: "response_received",
		InProgress:       "in_progress",
		Completed:        "completed",
		Cancelled:        "cancelled",
	}
}

// StatusFromString parses a persisted status string back into a Status.
// Returns an error for strings that do not name a valid status.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a valid status", s))
}

// Validate checks if the Status value is valid.
//
// Valid statuses are: New, ResponseReceived, InProgress, Completed, Cancelled.
// Unknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the persisted name of the status, e.g. "response_received".
// Returns "unknown" for invalid status values. Implements fmt.Stringer and is
// safe to call on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether the status is final.
// Completed and Cancelled orders are never re-entered by any flow.
func (s Status) IsTerminal() bool {
	return s == Completed || s == Cancelled
}

// Respond transitions the status to ResponseReceived.
//
// Valid transitions:
//   - New -> ResponseReceived (first worker application arrives)
//   - ResponseReceived -> ResponseReceived (further applications)
//
// Returns an error if the order is already in progress or terminal.
func (s Status) Respond() (Status, error) {
	if s != New && s != ResponseReceived {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to receive a response", s.String()),
		)
	}

	return ResponseReceived, nil
}

// Start transitions the status to InProgress.
//
// Valid transitions:
//   - ResponseReceived -> InProgress (customer accepted a worker)
//
// Returns an error for any other current status.
func (s Status) Start() (Status, error) {
	if s != ResponseReceived {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to start work", s.String()),
		)
	}

	return InProgress, nil
}

// Complete transitions the status to Completed.
//
// Valid transitions:
//   - InProgress -> Completed (work done, or cutoff auto-completion)
//
// Returns an error for any other current status. Completed is terminal.
func (s Status) Complete() (Status, error) {
	if s != InProgress {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to complete", s.String()),
		)
	}

	return Completed, nil
}

// Cancel transitions the status to Cancelled.
//
// Valid transitions:
//   - New -> Cancelled (no worker responded, or customer withdrew)
//   - ResponseReceived -> Cancelled (no worker accepted by the cutoff)
//
// Orders already in progress cannot be cancelled through this transition.
// Returns an error for any other current status. Cancelled is terminal.
func (s Status) Cancel() (Status, error) {
	if s != New && s != ResponseReceived {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to cancel", s.String()),
		)
	}

	return Cancelled, nil
}
