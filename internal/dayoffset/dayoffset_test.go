package dayoffset

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestToOffset(t *testing.T) {
	tests := []struct {
		name             string
		year, month, day int
		want             int
	}{
		{"epoch", 1900, 1, 31, 0},
		{"day before epoch", 1900, 1, 30, -1},
		{"first of 1900", 1900, 1, 1, -30},
		{"1900 is not leap", 1900, 3, 1, 29},
		{"lunar new year 2023", 2023, 1, 22, 44916},
		{"end of korean table", 2050, 1, 22, 54778},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ToOffset(tt.year, tt.month, tt.day)
			assert.Equal(t, tt.want, got)

			y, m, d := FromOffset(got)
			assert.Equal(t, []int{tt.year, tt.month, tt.day}, []int{y, m, d})
		})
	}
}

func TestOffsetMatchesTimePackage(t *testing.T) {
	epoch := time.Date(EpochYear, EpochMonth, EpochDay, 0, 0, 0, 0, time.UTC)
	start := time.Date(1, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(9999, 12, 31, 0, 0, 0, 0, time.UTC)

	prev := ToOffset(1, 1, 1) - 1
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		want := int((d.Unix() - epoch.Unix()) / 86400)
		got := ToOffset(d.Year(), int(d.Month()), d.Day())
		if got != want {
			t.Fatalf("ToOffset(%s) = %d, want %d", d.Format(time.DateOnly), got, want)
		}
		if got != prev+1 {
			t.Fatalf("offset at %s not consecutive: %d after %d", d.Format(time.DateOnly), got, prev)
		}
		prev = got

		y, m, day := FromOffset(got)
		if y != d.Year() || m != int(d.Month()) || day != d.Day() {
			t.Fatalf("FromOffset(%d) = %04d-%02d-%02d, want %s", got, y, m, day, d.Format(time.DateOnly))
		}
	}
}

func TestIsLeapYear(t *testing.T) {
	tests := []struct {
		year int
		want bool
	}{
		{1900, false},
		{2000, true},
		{2023, false},
		{2024, true},
		{2100, false},
		{2400, true},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, IsLeapYear(tt.year), "IsLeapYear(%d)", tt.year)
	}
}

func TestDaysInMonth(t *testing.T) {
	assert.Equal(t, 31, DaysInMonth(2023, 1))
	assert.Equal(t, 28, DaysInMonth(2023, 2))
	assert.Equal(t, 29, DaysInMonth(2024, 2))
	assert.Equal(t, 28, DaysInMonth(1900, 2))
	assert.Equal(t, 30, DaysInMonth(2023, 11))
	assert.Equal(t, 0, DaysInMonth(2023, 0))
	assert.Equal(t, 0, DaysInMonth(2023, 13))
}
