package table

import (
	_ "embed"
	"fmt"

	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"

	"github.com/golunar/lunardate/calendar"
	"github.com/golunar/lunardate/internal/dayoffset"
)

// Limits on the length of a single lunar year.
const (
	MinYearDays = 354
	MaxYearDays = 385
)

// ErrCorruptAsset is returned by Parse for asset data that fails validation.
var ErrCorruptAsset = errors.New("corrupt calendar table asset")

//go:embed data/years.yaml
var yearsYAML []byte

var embedded = mustParse(yearsYAML)

// assetFile mirrors data/years.yaml.
type assetFile struct {
	Version   int                      `yaml:"version"`
	Epoch     string                   `yaml:"epoch"`
	Calendars map[string]assetCalendar `yaml:"calendars"`
}

type assetCalendar struct {
	BaseYear int     `yaml:"base_year"`
	Years    [][]int `yaml:"years"`
}

func mustParse(data []byte) *Set {
	s, err := Parse(data)
	if err != nil {
		panic(fmt.Sprintf("table: embedded asset: %v", err))
	}
	return s
}

// Parse decodes and validates a table asset. Every variant must be present,
// every row must have a year total and twelve valid month codes, and the
// total must equal the sum of the decoded month lengths.
func Parse(data []byte) (*Set, error) {
	var f assetFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, errors.Mark(errors.Wrap(err, "decode asset"), ErrCorruptAsset)
	}

	want := fmt.Sprintf("%04d-%02d-%02d", dayoffset.EpochYear, dayoffset.EpochMonth, dayoffset.EpochDay)
	if f.Epoch != want {
		return nil, errors.Wrapf(ErrCorruptAsset, "epoch %q, want %s", f.Epoch, want)
	}

	s := &Set{version: f.Version}
	for _, v := range calendar.Variants() {
		cal, ok := f.Calendars[v.String()]
		if !ok {
			return nil, errors.Wrapf(ErrCorruptAsset, "missing calendar %q", v)
		}
		t, err := buildTable(v, cal)
		if err != nil {
			return nil, err
		}
		s.tables[v] = t
	}
	return s, nil
}

func buildTable(v calendar.Variant, cal assetCalendar) (*Table, error) {
	if len(cal.Years) == 0 {
		return nil, errors.Wrapf(ErrCorruptAsset, "%s: no years", v)
	}
	years := make([]YearEncoding, 0, len(cal.Years))
	for i, row := range cal.Years {
		year := cal.BaseYear + i
		enc, err := decodeRow(row)
		if err != nil {
			return nil, errors.Wrapf(err, "%s year %d", v, year)
		}
		years = append(years, enc)
	}
	return New(v, cal.BaseYear, years), nil
}

func decodeRow(row []int) (YearEncoding, error) {
	var enc YearEncoding
	if len(row) != 1+MonthsPerYear {
		return enc, errors.Wrapf(ErrCorruptAsset, "row has %d values, want %d", len(row), 1+MonthsPerYear)
	}
	enc.Total = row[0]
	if enc.Total < MinYearDays || enc.Total > MaxYearDays {
		return enc, errors.Wrapf(ErrCorruptAsset, "year length %d outside %d..%d", enc.Total, MinYearDays, MaxYearDays)
	}

	sum, leaps := 0, 0
	for i, code := range row[1:] {
		if code < 0 || code > 255 {
			return enc, errors.Mark(errors.Wrapf(calendar.ErrInvalidMonthTypeCode, "month %d: code %d", i+1, code), ErrCorruptAsset)
		}
		mt := MonthType(code)
		total, _, _, err := mt.Decode()
		if err != nil {
			return enc, errors.Mark(errors.Wrapf(err, "month %d", i+1), ErrCorruptAsset)
		}
		if mt.HasLeap() {
			leaps++
		}
		enc.Months[i] = mt
		sum += total
	}
	if leaps > 1 {
		return enc, errors.Wrapf(ErrCorruptAsset, "%d leap months in one year", leaps)
	}
	if sum != enc.Total {
		return enc, errors.Wrapf(ErrCorruptAsset, "month lengths sum to %d, year total is %d", sum, enc.Total)
	}
	return enc, nil
}
