package calendar

// MonthInfo describes one month of a lunar year.
type MonthInfo struct {
	Month int  `json:"month" yaml:"month"`
	Leap  bool `json:"leap" yaml:"leap"`
	Days  int  `json:"days" yaml:"days"`
}

// YearInfo describes a lunar year as encoded in a calendar table.
type YearInfo struct {
	Variant   Variant     `json:"calendar" yaml:"calendar"`
	Year      int         `json:"year" yaml:"year"`
	Days      int         `json:"days" yaml:"days"`
	LeapMonth int         `json:"leap_month" yaml:"leap_month"` // 0 if the year has none
	Months    []MonthInfo `json:"months" yaml:"months"`         // in calendar order; 13 entries in a leap year
	NewYear   SolarDate   `json:"new_year" yaml:"new_year"`     // solar date of month 1, day 1
}

// HasLeapMonth reports whether the year contains an intercalary month.
func (y YearInfo) HasLeapMonth() bool { return y.LeapMonth != 0 }

// Range describes the span a calendar table covers.
type Range struct {
	Variant   Variant   `json:"calendar" yaml:"calendar"`
	FirstYear int       `json:"first_year" yaml:"first_year"` // first lunar year
	LastYear  int       `json:"last_year" yaml:"last_year"`   // last lunar year, inclusive
	First     SolarDate `json:"first" yaml:"first"`           // solar date of the first table day
	Last      SolarDate `json:"last" yaml:"last"`             // solar date of the last table day
}

// ContainsYear reports whether a lunar year is covered.
func (r Range) ContainsYear(year int) bool {
	return year >= r.FirstYear && year <= r.LastYear
}

// ContainsSolar reports whether a solar date is covered.
func (r Range) ContainsSolar(d SolarDate) bool {
	return !d.Before(r.First) && !r.Last.Before(d)
}
