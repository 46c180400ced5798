package calendar

import (
	"cmp"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/cockroachdb/errors"
)

// MaxLunarDay is the longest possible lunar month.
const MaxLunarDay = 30

// LunarDate is a date in the lunisolar calendar. Values are immutable;
// construct with NewLunarDate or obtain one from a conversion.
//
// NewLunarDate only checks what can be checked without a calendar table.
// Whether the month really has a leap month, and whether the day fits
// the month, is verified when the date is converted.
type LunarDate struct {
	year  int
	month int
	day   int
	leap  bool
}

// NewLunarDate validates and returns a lunar date.
func NewLunarDate(year, month, day int, leap bool) (LunarDate, error) {
	if month < 1 || month > 12 {
		return LunarDate{}, errors.Wrapf(ErrInvalidMonth, "month %d not in 1..12", month)
	}
	if day < 1 || day > MaxLunarDay {
		return LunarDate{}, errors.Wrapf(ErrInvalidDay, "day %d not in 1..%d", day, MaxLunarDay)
	}
	return LunarDate{year: year, month: month, day: day, leap: leap}, nil
}

// ParseLunarDate parses "YYYY-MM-DD", with an optional trailing "L" marking
// a leap month (e.g. "2023-02-01L"). This is the format produced by String.
func ParseLunarDate(s string) (LunarDate, error) {
	s = strings.TrimSpace(s)
	leap := false
	if rest, ok := strings.CutSuffix(s, "L"); ok {
		s, leap = rest, true
	}
	y, m, d, ok := splitDate(s)
	if !ok {
		return LunarDate{}, errors.Newf("cannot parse lunar date %q, want YYYY-MM-DD[L]", s)
	}
	return NewLunarDate(y, m, d, leap)
}

// Year returns the lunar year.
func (d LunarDate) Year() int { return d.year }

// Month returns the lunar month, 1..12. A leap month carries the number
// of the regular month it follows.
func (d LunarDate) Month() int { return d.month }

// Day returns the day of the lunar month.
func (d LunarDate) Day() int { return d.day }

// IsLeapMonth reports whether the date falls in an intercalary month.
func (d LunarDate) IsLeapMonth() bool { return d.leap }

// Compare orders dates by year, month, leap flag (regular month first),
// then day.
func (d LunarDate) Compare(other LunarDate) int {
	if c := cmp.Compare(d.year, other.year); c != 0 {
		return c
	}
	if c := cmp.Compare(d.month, other.month); c != 0 {
		return c
	}
	if d.leap != other.leap {
		if d.leap {
			return 1
		}
		return -1
	}
	return cmp.Compare(d.day, other.day)
}

// String returns "YYYY-MM-DD", suffixed with "L" for a leap month.
func (d LunarDate) String() string {
	s := fmt.Sprintf("%04d-%02d-%02d", d.year, d.month, d.day)
	if d.leap {
		s += "L"
	}
	return s
}

// Compact returns the date as "YYYYMMDD". The leap flag is not encoded.
func (d LunarDate) Compact() string {
	return fmt.Sprintf("%4d%02d%02d", d.year, d.month, d.day)
}

// lunarFields is the serialized form of a LunarDate.
type lunarFields struct {
	Year  int  `json:"year" yaml:"year"`
	Month int  `json:"month" yaml:"month"`
	Day   int  `json:"day" yaml:"day"`
	Leap  bool `json:"leap" yaml:"leap"`
}

// MarshalJSON encodes the date as an object with year, month, day and leap.
func (d LunarDate) MarshalJSON() ([]byte, error) {
	return json.Marshal(lunarFields{Year: d.year, Month: d.month, Day: d.day, Leap: d.leap})
}

// MarshalYAML implements yaml.Marshaler with the same shape as MarshalJSON.
func (d LunarDate) MarshalYAML() (any, error) {
	return lunarFields{Year: d.year, Month: d.month, Day: d.day, Leap: d.leap}, nil
}
