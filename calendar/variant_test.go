package calendar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseVariant(t *testing.T) {
	tests := []struct {
		input string
		want  Variant
	}{
		{"korean", Korean},
		{"KO", Korean},
		{"kr", Korean},
		{" Korean ", Korean},
		{"chinese", Chinese},
		{"cn", Chinese},
		{"ZH", Chinese},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseVariant(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := ParseVariant("japanese")
	assert.ErrorIs(t, err, ErrUnknownVariant)
}

func TestVariantString(t *testing.T) {
	assert.Equal(t, "korean", Korean.String())
	assert.Equal(t, "chinese", Chinese.String())
	assert.Equal(t, "variant(7)", Variant(7).String())
	assert.False(t, Variant(7).Valid())
	assert.False(t, Variant(-1).Valid())
	assert.Equal(t, []Variant{Korean, Chinese}, Variants())
}

func TestVariantText(t *testing.T) {
	text, err := Chinese.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "chinese", string(text))

	var v Variant
	require.NoError(t, v.UnmarshalText([]byte("ko")))
	assert.Equal(t, Korean, v)

	assert.ErrorIs(t, v.UnmarshalText([]byte("x")), ErrUnknownVariant)
	_, err = Variant(9).MarshalText()
	assert.ErrorIs(t, err, ErrUnknownVariant)
}
