package kernel

import (
	"time"

	"osonish/internal/pkg/errs"
	"osonish/internal/pkg/guard"
)

// ErrServiceDateIsNotConstructed is returned when attempting to use an improperly
// initialized ServiceDate. Service dates must be created using NewServiceDate or
// ServiceDateOf to ensure validity.
var ErrServiceDateIsNotConstructed = errs.NewValueIsRequiredError(
	"service date must be created via NewServiceDate or ServiceDateOf constructors")

// ServiceDate represents the calendar day an order's work is scheduled for.
// It is the eligibility anchor of the auto-transition engine: only orders whose
// service date equals the current business day are ever touched by a run.
//
// ServiceDate is an immutable value object holding a whole calendar day with no
// sub-day precision. The zero value is invalid and will fail validation - use
// the constructors to create instances.
//
// Example:
//
//	day, err := kernel.NewServiceDate(2025, time.September, 30)
//	if err != nil {
//	    // Handle validation error
//	}
//	fmt.Println(day) // Output: 2025-09-30
type ServiceDate struct { //nolint:recvcheck //using for validation
	year  int
	month time.Month
	day   int
	guard guard.ConstructorGuard
}

// NewServiceDate creates a ServiceDate from calendar components.
// The month must be a valid time.Month and the day must exist in that month
// of that year. Returns an error if the components do not name a real date.
//
// Example:
//
//	day, err := NewServiceDate(2025, time.February, 30)
//	// err: value is invalid: 30 is day, min value is 1, max value is 28
func NewServiceDate(year int, month time.Month, day int) (ServiceDate, error) {
	if month < time.January || month > time.December {
		return ServiceDate{}, errs.NewValueIsOutOfRangeError("month", int(month), int(time.January), int(time.December))
	}

	maxDay := daysIn(year, month)
	if day < 1 || day > maxDay {
		return ServiceDate{}, errs.NewValueIsOutOfRangeError("day", day, 1, maxDay)
	}

	return ServiceDate{
		year:  year,
		month: month,
		day:   day,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// ServiceDateOf derives the business day from a reference instant.
// The instant's calendar date in its own location is used; sub-day precision
// is discarded. This is how "now" handed to the engine becomes the canonical
// business day of a run.
//
// Example:
//
//	day := kernel.ServiceDateOf(time.Now())
func ServiceDateOf(t time.Time) ServiceDate {
	year, month, day := t.Date()
	return ServiceDate{
		year:  year,
		month: month,
		day:   day,
		guard: guard.NewConstructorGuard(),
	}
}

// Year returns the calendar year of the service date.
func (d ServiceDate) Year() int {
	return d.year
}

// Month returns the calendar month of the service date.
func (d ServiceDate) Month() time.Month {
	return d.month
}

// Day returns the day of month of the service date.
func (d ServiceDate) Day() int {
	return d.day
}

// Time returns the service date as midnight UTC.
// Used for persistence, where service dates are stored as date columns.
func (d ServiceDate) Time() time.Time {
	return time.Date(d.year, d.month, d.day, 0, 0, 0, 0, time.UTC)
}

// IsEqual reports whether two service dates name the same calendar day.
func (d ServiceDate) IsEqual(other ServiceDate) bool {
	return d.year == other.year && d.month == other.month && d.day == other.day
}

// String returns the date in ISO 8601 form, e.g. "2025-09-30".
// This matches the representation used in the order store.
func (d ServiceDate) String() string {
	return d.Time().Format("2006-01-02")
}

// Validate checks that the service date was created through a constructor.
// Returns ErrServiceDateIsNotConstructed for zero values.
func (d ServiceDate) Validate() error {
	return d.guard.Validate(ErrServiceDateIsNotConstructed)
}

// daysIn returns the number of days in the given month, accounting for leap years.
func daysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
