// Package calendar defines the value types exchanged with the lunar
// calendar converter: Gregorian dates, lunar dates, calendar variants and
// the errors a conversion can fail with.
//
// All types are immutable values. Dates are built through validating
// constructors, so a LunarDate always has a month in 1..12 and a day in
// 1..30, and a SolarDate always names a real Gregorian day.
//
// # Epoch and table ranges
//
// Day offsets are counted from the solar date 1900-01-31, which is lunar
// 1900-01-01 in the Korean table. The Korean table covers lunar years
// 1900..2049 and the Chinese table lunar years 1901..2050. Both tables
// start at the same solar day; the Chinese rows are labelled one year
// later in the source data and that labelling is kept as published.
package calendar
