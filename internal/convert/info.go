package convert

import (
	"fmt"

	"github.com/golunar/lunardate/calendar"
	"github.com/golunar/lunardate/internal/dayoffset"
	"github.com/golunar/lunardate/internal/table"
)

// YearInfo describes a lunar year of t.
func (c *Converter) YearInfo(t *table.Table, year int) (calendar.YearInfo, error) {
	v := t.Variant()
	enc, ok := t.Year(year)
	if !ok {
		return calendar.YearInfo{}, newError(calendar.ErrOutOfRange, v, fmt.Sprintf("year %d", year),
			fmt.Sprintf("year %d not in %d..%d", year, t.BaseYear(), t.LastYear()))
	}

	info := calendar.YearInfo{
		Variant:   v,
		Year:      year,
		Days:      enc.Total,
		LeapMonth: enc.LeapMonth(),
		Months:    make([]calendar.MonthInfo, 0, table.MonthsPerYear+1),
	}
	for i, mt := range enc.Months {
		_, normal, leap, err := mt.Decode()
		if err != nil {
			return calendar.YearInfo{}, newError(err, v, fmt.Sprintf("year %d", year), fmt.Sprintf("month %d", i+1))
		}
		info.Months = append(info.Months, calendar.MonthInfo{Month: i + 1, Days: normal})
		if leap > 0 {
			info.Months = append(info.Months, calendar.MonthInfo{Month: i + 1, Leap: true, Days: leap})
		}
	}

	first, err := calendar.NewLunarDate(year, 1, 1, false)
	if err != nil {
		return calendar.YearInfo{}, err
	}
	info.NewYear, err = c.LunarToSolar(t, first)
	if err != nil {
		return calendar.YearInfo{}, err
	}
	return info, nil
}

// MonthDays returns the length of a lunar month of t. With leap set, it
// returns the length of the leap month that follows month.
func (c *Converter) MonthDays(t *table.Table, year, month int, leap bool) (int, error) {
	v := t.Variant()
	input := fmt.Sprintf("%04d-%02d", year, month)
	if leap {
		input += "L"
	}

	enc, ok := t.Year(year)
	if !ok {
		return 0, newError(calendar.ErrOutOfRange, v, input,
			fmt.Sprintf("year %d not in %d..%d", year, t.BaseYear(), t.LastYear()))
	}
	if month < 1 || month > table.MonthsPerYear {
		return 0, newError(calendar.ErrInvalidMonth, v, input,
			fmt.Sprintf("month %d not in 1..%d", month, table.MonthsPerYear))
	}
	_, normal, leapDays, err := enc.Months[month-1].Decode()
	if err != nil {
		return 0, newError(err, v, input, fmt.Sprintf("year %d month %d", year, month))
	}
	if !leap {
		return normal, nil
	}
	if leapDays == 0 {
		return 0, newError(calendar.ErrLeapMonthNotPresent, v, input, leapBoundary(enc, year))
	}
	return leapDays, nil
}

// Range returns the years and solar dates covered by t.
func Range(t *table.Table) calendar.Range {
	first, _ := calendar.NewSolarDate(dayoffset.EpochYear, dayoffset.EpochMonth, dayoffset.EpochDay)
	y, m, d := dayoffset.FromOffset(t.TotalDays() - 1)
	last, _ := calendar.NewSolarDate(y, m, d)
	return calendar.Range{
		Variant:   t.Variant(),
		FirstYear: t.BaseYear(),
		LastYear:  t.LastYear(),
		First:     first,
		Last:      last,
	}
}
