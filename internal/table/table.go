// Package table holds the lunisolar year encodings for each calendar
// variant and the month type decoder.
//
// Tables are parsed once from an embedded YAML asset (data/years.yaml)
// when the package initialises and are never modified afterwards, so they
// are safe for concurrent use without locking.
package table

import (
	"github.com/cockroachdb/errors"

	"github.com/golunar/lunardate/calendar"
)

// MonthsPerYear is the number of month type codes in a year encoding.
const MonthsPerYear = 12

// YearEncoding is one table row: the length of a lunar year and the type
// code of each of its twelve regular months.
type YearEncoding struct {
	Total  int
	Months [MonthsPerYear]MonthType
}

// LeapMonth returns the regular month (1..12) that is followed by a leap
// month, or 0 if the year has no leap month.
func (y YearEncoding) LeapMonth() int {
	for i, mt := range y.Months {
		if mt.HasLeap() {
			return i + 1
		}
	}
	return 0
}

// Table is the ordered sequence of year encodings for one variant.
type Table struct {
	variant   calendar.Variant
	baseYear  int
	years     []YearEncoding
	totalDays int
}

// New builds a table from rows without validating them. Callers outside
// this package use it to construct fixtures; the embedded tables are built
// by Parse.
func New(v calendar.Variant, baseYear int, years []YearEncoding) *Table {
	t := &Table{variant: v, baseYear: baseYear, years: years}
	for _, y := range years {
		t.totalDays += y.Total
	}
	return t
}

// Variant returns the calendar variant the table belongs to.
func (t *Table) Variant() calendar.Variant { return t.variant }

// BaseYear returns the lunar year of the first row.
func (t *Table) BaseYear() int { return t.baseYear }

// LastYear returns the lunar year of the last row.
func (t *Table) LastYear() int { return t.baseYear + len(t.years) - 1 }

// Len returns the number of years in the table.
func (t *Table) Len() int { return len(t.years) }

// TotalDays returns the number of days covered by all rows.
func (t *Table) TotalDays() int { return t.totalDays }

// At returns the encoding at row index i. It panics if i is out of range.
func (t *Table) At(i int) YearEncoding { return t.years[i] }

// Year returns the encoding for a lunar year.
func (t *Table) Year(year int) (YearEncoding, bool) {
	i := year - t.baseYear
	if i < 0 || i >= len(t.years) {
		return YearEncoding{}, false
	}
	return t.years[i], true
}

// ContainsYear reports whether the table has a row for year.
func (t *Table) ContainsYear(year int) bool {
	_, ok := t.Year(year)
	return ok
}

// Set is a parsed table asset: one table per variant.
type Set struct {
	version int
	tables  [2]*Table
}

// Version returns the asset version.
func (s *Set) Version() int { return s.version }

// For returns the table for v.
func (s *Set) For(v calendar.Variant) (*Table, error) {
	if !v.Valid() || int(v) >= len(s.tables) || s.tables[v] == nil {
		return nil, errors.Wrapf(calendar.ErrUnknownVariant, "%s", v)
	}
	return s.tables[v], nil
}

// For returns the embedded table for v.
func For(v calendar.Variant) (*Table, error) {
	return embedded.For(v)
}

// Default returns the embedded table set.
func Default() *Set { return embedded }
