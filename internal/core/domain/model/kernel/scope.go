package kernel

import (
	"osonish/internal/pkg/errs"
	"osonish/internal/pkg/guard"
)

// ErrScopeIsNotConstructed is returned when attempting to use an improperly
// initialized Scope. Scopes must be created using NewAllScope or
// NewRestrictedScope to ensure validity.
var ErrScopeIsNotConstructed = errs.NewValueIsRequiredError(
	"scope must be created via NewAllScope or NewRestrictedScope constructors")

// ErrScopeMarkerIsRequired is returned when a restricted scope is created
// without an identifying marker.
var ErrScopeMarkerIsRequired = errs.NewValueIsRequiredError("scope marker")

// Scope narrows which orders an engine run is allowed to touch. Production
// runs use the all scope; test harnesses use a restricted scope whose marker
// matches the titles of sandbox orders sharing the same store, so an isolated
// run never transitions real customer orders.
//
// Scope is an immutable value object. The zero value is invalid and will fail
// validation - use the constructors to create instances.
//
// Example:
//
//	all := kernel.NewAllScope()
//	sandbox, err := kernel.NewRestrictedScope("[TEST]")
//	if err != nil {
//	    // Handle validation error
//	}
type Scope struct { //nolint:recvcheck //using for validation
	restricted bool
	marker     string
	guard      guard.ConstructorGuard
}

// NewAllScope creates a scope that admits every eligible order.
// This is the scope of production cutoff runs.
func NewAllScope() Scope {
	return Scope{
		guard: guard.NewConstructorGuard(),
	}
}

// NewRestrictedScope creates a scope that admits only orders whose title
// contains the given marker. Returns ErrScopeMarkerIsRequired if the marker
// is empty, since an empty marker would silently widen a test run to the
// whole store.
func NewRestrictedScope(marker string) (Scope, error) {
	if marker == "" {
		return Scope{}, ErrScopeMarkerIsRequired
	}

	return Scope{
		restricted: true,
		marker:     marker,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// IsRestricted reports whether the scope narrows selection to marked orders.
func (s Scope) IsRestricted() bool {
	return s.restricted
}

// Marker returns the identifying title marker of a restricted scope.
// Empty for the all scope.
func (s Scope) Marker() string {
	return s.marker
}

// String returns a human-readable description of the scope for logging.
func (s Scope) String() string {
	if s.restricted {
		return "restricted(" + s.marker + ")"
	}
	return "all"
}

// Validate checks that the scope was created through a constructor.
// Returns ErrScopeIsNotConstructed for zero values.
func (s Scope) Validate() error {
	return s.guard.Validate(ErrScopeIsNotConstructed)
}
