package lunardate

import (
	"log/slog"

	"github.com/golunar/lunardate/internal/convert"
	"github.com/golunar/lunardate/internal/table"
	"github.com/golunar/lunardate/internal/types"
)

// LevelTrace is a custom log level more verbose than Debug.
// Use for per-step table walk logging.
// Enable with: &slog.HandlerOptions{Level: slog.Level(-8)}
const LevelTrace = types.LevelTrace

// Option configures a Converter.
type Option func(*config)

type config struct {
	logger *slog.Logger
}

// WithLogger sets the logger for debug/trace output.
// If not set, no logging occurs (zero overhead).
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) { c.logger = logger }
}

// Converter converts dates between the solar and lunar calendars.
// A Converter is immutable and safe for concurrent use.
type Converter struct {
	conv *convert.Converter
}

// New returns a Converter.
//
// Example:
//
//	conv := lunardate.New(lunardate.WithLogger(slog.Default()))
//	ld, err := conv.SolarToLunar(solar, lunardate.Korean)
func New(opts ...Option) *Converter {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Converter{conv: convert.New(types.Component(cfg.logger, "convert"))}
}

var defaultConverter = New()

// SolarToLunar converts a Gregorian date to the lunar calendar of variant.
//
// It fails with ErrOutOfRange when the date precedes 1900-01-31 or lies
// past the last day of the variant's table.
func (c *Converter) SolarToLunar(d SolarDate, variant Variant) (LunarDate, error) {
	t, err := table.For(variant)
	if err != nil {
		return LunarDate{}, err
	}
	return c.conv.SolarToLunar(t, d)
}

// LunarToSolar converts a lunar date of variant to a Gregorian date.
//
// It fails with ErrOutOfRange for a year outside the variant's table,
// ErrInvalidMonth for a month outside 1..12, ErrLeapMonthNotPresent when
// a leap month is requested for a month that has none, and ErrInvalidDay
// when the day exceeds the month's length.
func (c *Converter) LunarToSolar(d LunarDate, variant Variant) (SolarDate, error) {
	t, err := table.For(variant)
	if err != nil {
		return SolarDate{}, err
	}
	return c.conv.LunarToSolar(t, d)
}

// YearInfo returns the month layout of a lunar year.
func (c *Converter) YearInfo(year int, variant Variant) (YearInfo, error) {
	t, err := table.For(variant)
	if err != nil {
		return YearInfo{}, err
	}
	return c.conv.YearInfo(t, year)
}

// LeapMonth returns the month that is followed by a leap month in year,
// or 0 if the year has no leap month.
func (c *Converter) LeapMonth(year int, variant Variant) (int, error) {
	info, err := c.YearInfo(year, variant)
	if err != nil {
		return 0, err
	}
	return info.LeapMonth, nil
}

// MonthDays returns the number of days in a lunar month. With leap set it
// returns the length of the leap month following month.
func (c *Converter) MonthDays(year, month int, leap bool, variant Variant) (int, error) {
	t, err := table.For(variant)
	if err != nil {
		return 0, err
	}
	return c.conv.MonthDays(t, year, month, leap)
}

// SolarToLunar converts using a converter without logging.
func SolarToLunar(d SolarDate, variant Variant) (LunarDate, error) {
	return defaultConverter.SolarToLunar(d, variant)
}

// LunarToSolar converts using a converter without logging.
func LunarToSolar(d LunarDate, variant Variant) (SolarDate, error) {
	return defaultConverter.LunarToSolar(d, variant)
}

// LookupYear returns the month layout of a lunar year.
func LookupYear(year int, variant Variant) (YearInfo, error) {
	return defaultConverter.YearInfo(year, variant)
}

// LeapMonth returns the month followed by a leap month in year, or 0.
func LeapMonth(year int, variant Variant) (int, error) {
	return defaultConverter.LeapMonth(year, variant)
}

// MonthDays returns the number of days in a lunar month.
func MonthDays(year, month int, leap bool, variant Variant) (int, error) {
	return defaultConverter.MonthDays(year, month, leap, variant)
}

// SupportedRange returns the lunar years and solar dates covered by
// variant's table.
func SupportedRange(variant Variant) (Range, error) {
	t, err := table.For(variant)
	if err != nil {
		return Range{}, err
	}
	return convert.Range(t), nil
}

// TableVersion returns the version of the embedded calendar tables.
func TableVersion() int {
	return table.Default().Version()
}
