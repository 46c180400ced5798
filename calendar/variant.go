package calendar

import (
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
)

// Variant selects which year-encoding table a conversion consults.
type Variant int

const (
	// Korean uses the Korean table, lunar years 1900..2049.
	Korean Variant = iota
	// Chinese uses the Chinese table, lunar years 1901..2050.
	Chinese
)

// Order matches the Variant iota constants.
var variantNames = [...]string{
	"korean",
	"chinese",
}

// String returns the lowercase variant name.
func (v Variant) String() string {
	if v >= 0 && int(v) < len(variantNames) {
		return variantNames[v]
	}
	return "variant(" + strconv.Itoa(int(v)) + ")"
}

// Valid reports whether v is a known variant.
func (v Variant) Valid() bool {
	return v >= 0 && int(v) < len(variantNames)
}

// Variants returns every known variant.
func Variants() []Variant {
	result := make([]Variant, len(variantNames))
	for i := range variantNames {
		result[i] = Variant(i)
	}
	return result
}

// ParseVariant parses a calendar name. Accepted (case-insensitive):
// "korean", "ko", "kr", "chinese", "cn", "zh".
func ParseVariant(s string) (Variant, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "korean", "ko", "kr":
		return Korean, nil
	case "chinese", "cn", "zh":
		return Chinese, nil
	}
	return 0, errors.Wrapf(ErrUnknownVariant, "%q", s)
}

// MarshalText implements encoding.TextMarshaler.
func (v Variant) MarshalText() ([]byte, error) {
	if !v.Valid() {
		return nil, errors.Wrapf(ErrUnknownVariant, "%d", int(v))
	}
	return []byte(v.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (v *Variant) UnmarshalText(text []byte) error {
	parsed, err := ParseVariant(string(text))
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}
