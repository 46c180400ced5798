// Package lunardate converts dates between the Gregorian calendar and the
// Korean and Chinese lunisolar calendars for lunar years 1900..2050.
//
// Conversions are table driven: each supported lunar year is stored as its
// length and twelve month type codes, and a conversion walks those rows
// counting days from the epoch 1900-01-31. The calendar variant is always
// an explicit argument.
//
//	solar, _ := lunardate.NewSolarDate(2023, 1, 22)
//	lunar, err := lunardate.SolarToLunar(solar, lunardate.Korean)
//	// lunar == 2023-01-01
package lunardate

import "github.com/golunar/lunardate/calendar"

// Type aliases for public API - all types come from calendar subpackage.

// Variant selects the Korean or Chinese table.
type Variant = calendar.Variant

// SolarDate is a proleptic Gregorian date.
type SolarDate = calendar.SolarDate

// LunarDate is a lunisolar date with a leap-month flag.
type LunarDate = calendar.LunarDate

// ConversionError carries the input, variant and violated boundary of a
// failed conversion.
type ConversionError = calendar.ConversionError

// YearInfo describes the months of a lunar year.
type YearInfo = calendar.YearInfo

// MonthInfo describes one month of a lunar year.
type MonthInfo = calendar.MonthInfo

// Range describes the span covered by a calendar table.
type Range = calendar.Range

// Calendar variants.
const (
	Korean  = calendar.Korean
	Chinese = calendar.Chinese
)

// Errors.
var (
	ErrOutOfRange           = calendar.ErrOutOfRange
	ErrInvalidMonth         = calendar.ErrInvalidMonth
	ErrInvalidDay           = calendar.ErrInvalidDay
	ErrLeapMonthNotPresent  = calendar.ErrLeapMonthNotPresent
	ErrInvalidMonthTypeCode = calendar.ErrInvalidMonthTypeCode
	ErrInvalidSolarDate     = calendar.ErrInvalidSolarDate
	ErrUnknownVariant       = calendar.ErrUnknownVariant
)

// Constructors.
var (
	NewSolarDate   = calendar.NewSolarDate
	NewLunarDate   = calendar.NewLunarDate
	SolarDateOf    = calendar.SolarDateOf
	ParseSolarDate = calendar.ParseSolarDate
	ParseLunarDate = calendar.ParseLunarDate
	ParseVariant   = calendar.ParseVariant
)
