package calendar

import (
	"strings"

	"github.com/cockroachdb/errors"
)

// Sentinel errors. Conversion failures wrap one of these, so callers test
// with errors.Is.
var (
	// ErrOutOfRange is returned when a date falls outside the years
	// covered by the variant's table, or precedes the epoch.
	ErrOutOfRange = errors.New("date out of supported range")

	// ErrInvalidMonth is returned for a lunar month outside 1..12.
	ErrInvalidMonth = errors.New("invalid lunar month")

	// ErrInvalidDay is returned for a lunar day below 1 or beyond the
	// length of its month.
	ErrInvalidDay = errors.New("invalid lunar day")

	// ErrLeapMonthNotPresent is returned when a leap month is requested
	// for a month that has no leap month in that year.
	ErrLeapMonthNotPresent = errors.New("requested leap month not present")

	// ErrInvalidMonthTypeCode signals corrupt table data. It is never
	// caused by caller input and is marked as an assertion failure.
	ErrInvalidMonthTypeCode = errors.New("invalid month type code")

	// ErrInvalidSolarDate is returned for a Gregorian date that does not exist.
	ErrInvalidSolarDate = errors.New("invalid solar date")

	// ErrUnknownVariant is returned when a calendar name cannot be parsed.
	ErrUnknownVariant = errors.New("unknown calendar variant")
)

// ConversionError describes a failed conversion with enough context to
// diagnose it without consulting the tables.
type ConversionError struct {
	Err      error   // one of the sentinel errors above
	Variant  Variant // calendar table consulted
	Input    string  // the date that was being converted
	Boundary string  // which limit was violated, e.g. "before 1900-01-31"
}

func (e *ConversionError) Error() string {
	var b strings.Builder
	b.WriteString("convert ")
	b.WriteString(e.Input)
	b.WriteString(" (")
	b.WriteString(e.Variant.String())
	b.WriteString("): ")
	b.WriteString(e.Err.Error())
	if e.Boundary != "" {
		b.WriteString(": ")
		b.WriteString(e.Boundary)
	}
	return b.String()
}

// Unwrap returns the sentinel error.
func (e *ConversionError) Unwrap() error { return e.Err }

// IsTableCorruption reports whether err was caused by inconsistent table
// data rather than by the caller's input.
func IsTableCorruption(err error) bool {
	return errors.HasAssertionFailure(err) || errors.Is(err, ErrInvalidMonthTypeCode)
}
