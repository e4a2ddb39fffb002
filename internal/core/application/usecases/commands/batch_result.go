package commands

import "osonish/internal/core/domain/model/kernel"

// OrderError records a single order the cutoff run could not transition.
// The run keeps going after recording it; one broken order never aborts
// the batch.
type OrderError struct {
	OrderID kernel.UUID
	Message string
}

// BatchResult summarizes one cutoff run. Counts cover only orders actually
// written: an order skipped by the idempotency guard lands in SkippedCount,
// and one that failed mid-update lands in Errors.
type BatchResult struct {
	// CompletedCount is the number of orders force-completed by this run.
	CompletedCount int

	// CancelledCount is the number of orders force-cancelled by this run.
	CancelledCount int

	// SkippedCount is the number of candidates that already carried an
	// auto-transition flag and were left untouched.
	SkippedCount int

	// Errors holds the per-order failures of this run.
	Errors []OrderError
}

// Processed returns the total number of candidates this run examined.
func (r BatchResult) Processed() int {
	return r.CompletedCount + r.CancelledCount + r.SkippedCount + len(r.Errors)
}

// HasErrors reports whether any order failed during the run.
func (r BatchResult) HasErrors() bool {
	return len(r.Errors) > 0
}
