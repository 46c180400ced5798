// Package convert implements the table walks between day offsets and
// lunar dates.
//
// # Solar to lunar
//
// The solar date is turned into a day offset from the epoch. Whole years
// are subtracted while the offset is at least the year's length, then
// whole months (a month carrying a leap month counts both), and the
// remainder is the day. If the remainder lands past the regular part of
// a month with a leap month, the date is in the leap month.
//
// # Lunar to solar
//
// The reverse: sum the lengths of all preceding years and months, add the
// day, and shift by the regular month's length when the leap month is
// requested.
//
// Both walks are bounded by the table size and never touch shared mutable
// state.
package convert

import (
	"fmt"
	"log/slog"

	"github.com/cockroachdb/errors"

	"github.com/golunar/lunardate/calendar"
	"github.com/golunar/lunardate/internal/dayoffset"
	"github.com/golunar/lunardate/internal/table"
	"github.com/golunar/lunardate/internal/types"
)

// Converter runs conversions against a table. The zero value is usable
// and does not log.
type Converter struct {
	types.Logger
}

// New returns a Converter. If logger is nil, logging is disabled.
func New(logger *slog.Logger) *Converter {
	return &Converter{Logger: types.Logger{L: logger}}
}

// SolarToLunar converts a Gregorian date to a lunar date using t.
func (c *Converter) SolarToLunar(t *table.Table, d calendar.SolarDate) (calendar.LunarDate, error) {
	v := t.Variant()
	input := d.String()

	days := dayoffset.ToOffset(d.Year(), d.Month(), d.Day())
	if days < 0 {
		return calendar.LunarDate{}, newError(calendar.ErrOutOfRange, v, input, "before epoch "+epochString())
	}

	year := t.BaseYear()
	idx := 0
	for ; idx < t.Len(); idx++ {
		enc := t.At(idx)
		if days < enc.Total {
			break
		}
		if c.TraceEnabled() {
			c.Trace("skip year", slog.Int("year", year), slog.Int("year_days", enc.Total), slog.Int("offset", days))
		}
		days -= enc.Total
		year++
	}
	if idx == t.Len() {
		last := lastSolar(t)
		return calendar.LunarDate{}, newError(calendar.ErrOutOfRange, v, input, "after "+last)
	}

	enc := t.At(idx)
	month := 0
	leap := false
	matched := false
	for ; month < table.MonthsPerYear; month++ {
		total, normal, _, err := enc.Months[month].Decode()
		if err != nil {
			return calendar.LunarDate{}, newError(err, v, input, fmt.Sprintf("year %d month %d", year, month+1))
		}
		if days < total {
			if days >= normal {
				days -= normal
				leap = true
			}
			matched = true
			break
		}
		days -= total
	}
	if !matched {
		err := errors.WithAssertionFailure(
			errors.Wrapf(calendar.ErrInvalidMonthTypeCode, "month walk overran year %d", year))
		return calendar.LunarDate{}, newError(err, v, input, fmt.Sprintf("year %d total %d", year, enc.Total))
	}

	ld, err := calendar.NewLunarDate(year, month+1, days+1, leap)
	if err != nil {
		return calendar.LunarDate{}, newError(corrupt(err), v, input, fmt.Sprintf("year %d", year))
	}

	c.Log(slog.LevelDebug, "solar to lunar",
		slog.String("calendar", v.String()),
		slog.String("solar", input),
		slog.String("lunar", ld.String()))
	return ld, nil
}

// LunarToSolar converts a lunar date to a Gregorian date using t.
func (c *Converter) LunarToSolar(t *table.Table, d calendar.LunarDate) (calendar.SolarDate, error) {
	v := t.Variant()
	input := d.String()

	if !t.ContainsYear(d.Year()) {
		return calendar.SolarDate{}, newError(calendar.ErrOutOfRange, v, input,
			fmt.Sprintf("year %d not in %d..%d", d.Year(), t.BaseYear(), t.LastYear()))
	}
	if d.Month() < 1 || d.Month() > table.MonthsPerYear {
		return calendar.SolarDate{}, newError(calendar.ErrInvalidMonth, v, input,
			fmt.Sprintf("month %d not in 1..%d", d.Month(), table.MonthsPerYear))
	}

	days := 0
	idx := d.Year() - t.BaseYear()
	for i := 0; i < idx; i++ {
		days += t.At(i).Total
	}

	enc := t.At(idx)
	for m := 0; m < d.Month()-1; m++ {
		total, _, _, err := enc.Months[m].Decode()
		if err != nil {
			return calendar.SolarDate{}, newError(err, v, input, fmt.Sprintf("year %d month %d", d.Year(), m+1))
		}
		days += total
	}

	_, normal, leapDays, err := enc.Months[d.Month()-1].Decode()
	if err != nil {
		return calendar.SolarDate{}, newError(err, v, input, fmt.Sprintf("year %d month %d", d.Year(), d.Month()))
	}

	length := normal
	if d.IsLeapMonth() {
		if leapDays == 0 {
			return calendar.SolarDate{}, newError(calendar.ErrLeapMonthNotPresent, v, input,
				leapBoundary(enc, d.Year()))
		}
		days += normal
		length = leapDays
	}
	if d.Day() < 1 || d.Day() > length {
		return calendar.SolarDate{}, newError(calendar.ErrInvalidDay, v, input,
			fmt.Sprintf("month has %d days", length))
	}
	days += d.Day() - 1

	y, m, day := dayoffset.FromOffset(days)
	sd, err := calendar.NewSolarDate(y, m, day)
	if err != nil {
		return calendar.SolarDate{}, newError(corrupt(err), v, input, fmt.Sprintf("offset %d", days))
	}

	c.Log(slog.LevelDebug, "lunar to solar",
		slog.String("calendar", v.String()),
		slog.String("lunar", input),
		slog.String("solar", sd.String()))
	return sd, nil
}

// newError builds a ConversionError. err is a sentinel for input errors,
// or a wrapped ErrInvalidMonthTypeCode marked as an assertion failure for
// table corruption.
func newError(err error, v calendar.Variant, input, boundary string) error {
	return &calendar.ConversionError{
		Err:      err,
		Variant:  v,
		Input:    input,
		Boundary: boundary,
	}
}

// corrupt marks an impossible intermediate result as table corruption.
func corrupt(err error) error {
	return errors.WithAssertionFailure(errors.Mark(err, calendar.ErrInvalidMonthTypeCode))
}

func leapBoundary(enc table.YearEncoding, year int) string {
	if lm := enc.LeapMonth(); lm != 0 {
		return fmt.Sprintf("year %d has leap month %d only", year, lm)
	}
	return fmt.Sprintf("year %d has no leap month", year)
}

func epochString() string {
	return fmt.Sprintf("%04d-%02d-%02d", dayoffset.EpochYear, dayoffset.EpochMonth, dayoffset.EpochDay)
}

func lastSolar(t *table.Table) string {
	y, m, d := dayoffset.FromOffset(t.TotalDays() - 1)
	return fmt.Sprintf("%04d-%02d-%02d", y, m, d)
}
