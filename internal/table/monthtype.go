package table

import (
	"github.com/cockroachdb/errors"

	"github.com/golunar/lunardate/calendar"
)

// MonthType is the per-month code stored in a year encoding.
//
// Codes 1 and 2 are plain 29- and 30-day months. Codes 3..6 are a regular
// month immediately followed by its leap month.
type MonthType uint8

// Month type codes.
const (
	MonthShort          MonthType = 1 // 29
	MonthLong           MonthType = 2 // 30
	MonthShortLeapShort MonthType = 3 // 29 + leap 29
	MonthLongLeapShort  MonthType = 4 // 30 + leap 29
	MonthShortLeapLong  MonthType = 5 // 29 + leap 30
	MonthLongLeapLong   MonthType = 6 // 30 + leap 30
)

// monthDays holds (total, normal, leap) day counts indexed by code.
var monthDays = [...][3]int{
	MonthShort:          {29, 29, 0},
	MonthLong:           {30, 30, 0},
	MonthShortLeapShort: {58, 29, 29},
	MonthLongLeapShort:  {59, 30, 29},
	MonthShortLeapLong:  {59, 29, 30},
	MonthLongLeapLong:   {60, 30, 30},
}

// Valid reports whether t is one of the six defined codes.
func (t MonthType) Valid() bool {
	return t >= MonthShort && t <= MonthLongLeapLong
}

// HasLeap reports whether the month is followed by a leap month.
func (t MonthType) HasLeap() bool {
	return t >= MonthShortLeapShort && t <= MonthLongLeapLong
}

// Decode returns the day counts for the code: total days including any
// leap month, days of the regular month, and days of the leap month (0 if
// there is none). An undefined code means the table is corrupt.
func (t MonthType) Decode() (total, normal, leap int, err error) {
	if !t.Valid() {
		return 0, 0, 0, errors.WithAssertionFailure(
			errors.Wrapf(calendar.ErrInvalidMonthTypeCode, "code %d", t))
	}
	d := monthDays[t]
	return d[0], d[1], d[2], nil
}
