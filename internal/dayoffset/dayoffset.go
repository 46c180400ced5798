// Package dayoffset converts proleptic Gregorian dates to and from a signed
// day count relative to the lunar table epoch (1900-01-31).
//
// Conversion goes through the Julian Day Number using the Fliegel and
// Van Flandern integer formulas, which are exact for every Gregorian date
// from 4713 BC onward. No table data is involved.
package dayoffset

// Epoch is the solar date that maps to offset 0.
const (
	EpochYear  = 1900
	EpochMonth = 1
	EpochDay   = 31
)

// epochJDN is the Julian Day Number of 1900-01-31.
const epochJDN = 2415051

// ToOffset returns the number of days between the epoch and the given date.
// Dates before the epoch yield negative offsets.
func ToOffset(year, month, day int) int {
	return julianDay(year, month, day) - epochJDN
}

// FromOffset is the inverse of ToOffset.
func FromOffset(offset int) (year, month, day int) {
	return civilDate(offset + epochJDN)
}

// julianDay returns the Julian Day Number for a proleptic Gregorian date.
func julianDay(year, month, day int) int {
	a := (14 - month) / 12
	y := year + 4800 - a
	m := month + 12*a - 3
	return day + (153*m+2)/5 + 365*y + y/4 - y/100 + y/400 - 32045
}

// civilDate converts a Julian Day Number back to year, month and day.
func civilDate(jdn int) (year, month, day int) {
	l := jdn + 68569
	n := 4 * l / 146097
	l = l - (146097*n+3)/4
	i := 4000 * (l + 1) / 1461001
	l = l - 1461*i/4 + 31
	j := 80 * l / 2447
	day = l - 2447*j/80
	l = j / 11
	month = j + 2 - 12*l
	year = 100*(n-49) + i + l
	return year, month, day
}

// IsLeapYear reports whether year is a Gregorian leap year.
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// DaysInMonth returns the length of a Gregorian month, or 0 for a month
// outside 1..12.
func DaysInMonth(year, month int) int {
	switch month {
	case 1, 3, 5, 7, 8, 10, 12:
		return 31
	case 4, 6, 9, 11:
		return 30
	case 2:
		if IsLeapYear(year) {
			return 29
		}
		return 28
	default:
		return 0
	}
}
