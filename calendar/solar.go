package calendar

import (
	"cmp"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/golunar/lunardate/internal/dayoffset"
)

// Supported Gregorian year range for SolarDate values.
const (
	MinSolarYear = 1
	MaxSolarYear = 9999
)

// SolarDate is a proleptic Gregorian calendar date. The zero value is not
// a valid date; construct with NewSolarDate, SolarDateOf or ParseSolarDate.
type SolarDate struct {
	year, month, day int
}

// NewSolarDate validates and returns a Gregorian date.
func NewSolarDate(year, month, day int) (SolarDate, error) {
	if year < MinSolarYear || year > MaxSolarYear {
		return SolarDate{}, errors.Wrapf(ErrInvalidSolarDate, "year %d outside %d..%d", year, MinSolarYear, MaxSolarYear)
	}
	if month < 1 || month > 12 {
		return SolarDate{}, errors.Wrapf(ErrInvalidSolarDate, "month %d", month)
	}
	if n := dayoffset.DaysInMonth(year, month); day < 1 || day > n {
		return SolarDate{}, errors.Wrapf(ErrInvalidSolarDate, "day %d of %04d-%02d (has %d days)", day, year, month, n)
	}
	return SolarDate{year: year, month: month, day: day}, nil
}

// SolarDateOf returns the calendar date of t in t's location.
func SolarDateOf(t time.Time) SolarDate {
	y, m, d := t.Date()
	return SolarDate{year: y, month: int(m), day: d}
}

// ParseSolarDate parses an ISO date ("2006-01-02").
func ParseSolarDate(s string) (SolarDate, error) {
	y, m, d, ok := splitDate(strings.TrimSpace(s))
	if !ok {
		return SolarDate{}, errors.Wrapf(ErrInvalidSolarDate, "cannot parse %q, want YYYY-MM-DD", s)
	}
	return NewSolarDate(y, m, d)
}

// Year returns the Gregorian year.
func (d SolarDate) Year() int { return d.year }

// Month returns the month, 1..12.
func (d SolarDate) Month() int { return d.month }

// Day returns the day of the month.
func (d SolarDate) Day() int { return d.day }

// IsZero reports whether d is the zero value.
func (d SolarDate) IsZero() bool { return d == SolarDate{} }

// Time returns midnight of d in loc. A nil loc means UTC.
func (d SolarDate) Time(loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	return time.Date(d.year, time.Month(d.month), d.day, 0, 0, 0, 0, loc)
}

// AddDays returns the date n days after d (before, for negative n).
func (d SolarDate) AddDays(n int) SolarDate {
	y, m, day := dayoffset.FromOffset(dayoffset.ToOffset(d.year, d.month, d.day) + n)
	return SolarDate{year: y, month: m, day: day}
}

// Compare returns -1, 0 or +1 depending on whether d is before, equal to,
// or after other.
func (d SolarDate) Compare(other SolarDate) int {
	if c := cmp.Compare(d.year, other.year); c != 0 {
		return c
	}
	if c := cmp.Compare(d.month, other.month); c != 0 {
		return c
	}
	return cmp.Compare(d.day, other.day)
}

// Before reports whether d is strictly before other.
func (d SolarDate) Before(other SolarDate) bool { return d.Compare(other) < 0 }

// String returns the ISO form "YYYY-MM-DD".
func (d SolarDate) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.year, d.month, d.day)
}

// MarshalText implements encoding.TextMarshaler.
func (d SolarDate) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *SolarDate) UnmarshalText(text []byte) error {
	parsed, err := ParseSolarDate(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// splitDate parses "Y-M-D" into its numeric parts without range checks.
func splitDate(s string) (y, m, d int, ok bool) {
	parts := strings.Split(s, "-")
	if len(parts) != 3 {
		return 0, 0, 0, false
	}
	var nums [3]int
	for i, p := range parts {
		if p == "" {
			return 0, 0, 0, false
		}
		n, err := strconv.Atoi(p)
		if err != nil || n < 0 {
			return 0, 0, 0, false
		}
		nums[i] = n
	}
	return nums[0], nums[1], nums[2], true
}
