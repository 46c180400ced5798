package calendar

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSolarDate(t *testing.T) {
	tests := []struct {
		name             string
		year, month, day int
		wantErr          bool
	}{
		{"epoch", 1900, 1, 31, false},
		{"leap day", 2024, 2, 29, false},
		{"no leap day in 1900", 1900, 2, 29, true},
		{"no leap day in 2023", 2023, 2, 29, true},
		{"leap day in 2000", 2000, 2, 29, false},
		{"month zero", 2023, 0, 1, true},
		{"month thirteen", 2023, 13, 1, true},
		{"day zero", 2023, 1, 0, true},
		{"april 31", 2023, 4, 31, true},
		{"year zero", 0, 1, 1, true},
		{"year 10000", 10000, 1, 1, true},
		{"max", 9999, 12, 31, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := NewSolarDate(tt.year, tt.month, tt.day)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrInvalidSolarDate), "got %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.year, d.Year())
			assert.Equal(t, tt.month, d.Month())
			assert.Equal(t, tt.day, d.Day())
		})
	}
}

func TestParseSolarDate(t *testing.T) {
	d, err := ParseSolarDate("2023-01-22")
	require.NoError(t, err)
	assert.Equal(t, "2023-01-22", d.String())

	d, err = ParseSolarDate(" 2024-2-10 ")
	require.NoError(t, err)
	assert.Equal(t, "2024-02-10", d.String())

	for _, bad := range []string{"", "2023", "2023-01", "2023-01-22-1", "2023-xx-01", "2023--01", "2023-02-30", "-2023-01-01"} {
		_, err := ParseSolarDate(bad)
		assert.ErrorIs(t, err, ErrInvalidSolarDate, "ParseSolarDate(%q)", bad)
	}
}

func TestSolarDateOf(t *testing.T) {
	loc := time.FixedZone("KST", 9*3600)
	tm := time.Date(2023, 1, 22, 23, 30, 0, 0, loc)
	d := SolarDateOf(tm)
	assert.Equal(t, "2023-01-22", d.String())

	back := d.Time(loc)
	assert.Equal(t, time.Date(2023, 1, 22, 0, 0, 0, 0, loc), back)
	assert.Equal(t, time.UTC, d.Time(nil).Location())
}

func TestSolarDateCompare(t *testing.T) {
	a, _ := NewSolarDate(2023, 1, 22)
	b, _ := NewSolarDate(2023, 1, 23)
	c, _ := NewSolarDate(2024, 1, 1)

	assert.Equal(t, -1, a.Compare(b))
	assert.Equal(t, 1, b.Compare(a))
	assert.Equal(t, 0, a.Compare(a))
	assert.True(t, b.Before(c))
	assert.False(t, c.Before(b))
}

func TestSolarDateAddDays(t *testing.T) {
	d, _ := NewSolarDate(2023, 12, 31)
	assert.Equal(t, "2024-01-01", d.AddDays(1).String())
	assert.Equal(t, "2023-12-01", d.AddDays(-30).String())

	leap, _ := NewSolarDate(2024, 2, 28)
	assert.Equal(t, "2024-02-29", leap.AddDays(1).String())
}

func TestSolarDateZero(t *testing.T) {
	var d SolarDate
	assert.True(t, d.IsZero())
	d, _ = NewSolarDate(1900, 1, 31)
	assert.False(t, d.IsZero())
}

func TestSolarDateJSON(t *testing.T) {
	d, _ := NewSolarDate(2024, 2, 10)
	data, err := json.Marshal(struct {
		Date SolarDate `json:"date"`
	}{d})
	require.NoError(t, err)
	assert.JSONEq(t, `{"date":"2024-02-10"}`, string(data))

	var out struct {
		Date SolarDate `json:"date"`
	}
	require.NoError(t, json.Unmarshal(data, &out))
	assert.Equal(t, d, out.Date)

	err = json.Unmarshal([]byte(`{"date":"2024-02-30"}`), &out)
	assert.ErrorIs(t, err, ErrInvalidSolarDate)
}
