// Package testutil provides shared test fixtures.
package testutil

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/golunar/lunardate/calendar"
)

// KnownDate mirrors one case in testdata/known_dates.yaml.
type KnownDate struct {
	Name     string      `yaml:"name"`
	Calendar string      `yaml:"calendar"`
	Solar    string      `yaml:"solar"`
	Lunar    LunarFields `yaml:"lunar"`
}

// LunarFields is the expected lunar date of a KnownDate.
type LunarFields struct {
	Year  int  `yaml:"year"`
	Month int  `yaml:"month"`
	Day   int  `yaml:"day"`
	Leap  bool `yaml:"leap"`
}

type knownDatesFile struct {
	Cases []KnownDate `yaml:"cases"`
}

// TestdataPath returns the path of a file under the module's testdata
// directory, independent of the calling package's directory.
func TestdataPath(name string) string {
	_, file, _, _ := runtime.Caller(0)
	return filepath.Join(filepath.Dir(file), "..", "..", "testdata", name)
}

// LoadKnownDates loads testdata/known_dates.yaml.
func LoadKnownDates(t testing.TB) []KnownDate {
	t.Helper()
	path := TestdataPath("known_dates.yaml")
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read fixture %s: %v", path, err)
	}
	var f knownDatesFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		t.Fatalf("failed to parse fixture %s: %v", path, err)
	}
	if len(f.Cases) == 0 {
		t.Fatalf("fixture %s has no cases", path)
	}
	return f.Cases
}

// SolarDate parses the case's solar date.
func (k KnownDate) SolarDate(t testing.TB) calendar.SolarDate {
	t.Helper()
	d, err := calendar.ParseSolarDate(k.Solar)
	if err != nil {
		t.Fatalf("%s: bad solar date %q: %v", k.Name, k.Solar, err)
	}
	return d
}

// LunarDate builds the case's expected lunar date.
func (k KnownDate) LunarDate(t testing.TB) calendar.LunarDate {
	t.Helper()
	d, err := calendar.NewLunarDate(k.Lunar.Year, k.Lunar.Month, k.Lunar.Day, k.Lunar.Leap)
	if err != nil {
		t.Fatalf("%s: bad lunar date %+v: %v", k.Name, k.Lunar, err)
	}
	return d
}

// Variant parses the case's calendar name.
func (k KnownDate) Variant(t testing.TB) calendar.Variant {
	t.Helper()
	v, err := calendar.ParseVariant(k.Calendar)
	if err != nil {
		t.Fatalf("%s: bad calendar %q: %v", k.Name, k.Calendar, err)
	}
	return v
}

// MustSolar returns a SolarDate or fails the test.
func MustSolar(t testing.TB, year, month, day int) calendar.SolarDate {
	t.Helper()
	d, err := calendar.NewSolarDate(year, month, day)
	if err != nil {
		t.Fatalf("NewSolarDate(%d, %d, %d): %v", year, month, day, err)
	}
	return d
}

// MustLunar returns a LunarDate or fails the test.
func MustLunar(t testing.TB, year, month, day int, leap bool) calendar.LunarDate {
	t.Helper()
	d, err := calendar.NewLunarDate(year, month, day, leap)
	if err != nil {
		t.Fatalf("NewLunarDate(%d, %d, %d, %v): %v", year, month, day, leap, err)
	}
	return d
}
