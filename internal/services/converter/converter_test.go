package converter

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vadiminshakov/romanum/internal/domain"
)

func TestDecimalToRomanKnownValues(t *testing.T) {
	conv := NewConverter(true)

	cases := map[int]string{
		1:    "I",
		4:    "IV",
		9:    "IX",
		14:   "XIV",
		40:   "XL",
		90:   "XC",
		400:  "CD",
		900:  "CM",
		1994: "MCMXCIV",
		2024: "MMXXIV",
		3999: "MMMCMXCIX",
	}
	for n, want := range cases {
		got, err := conv.DecimalToRoman(n)
		require.NoError(t, err)
		assert.Equal(t, want, got, "encoding of %d", n)
	}
}

func TestDecimalToRomanOutOfRange(t *testing.T) {
	conv := NewConverter(true)

	for _, n := range []int{0, -1, 4000, 100000} {
		_, err := conv.DecimalToRoman(n)
		require.Error(t, err)

		var oor *OutOfRangeError
		require.ErrorAs(t, err, &oor, "value %d", n)
		assert.Equal(t, n, oor.Value)
	}
}

func TestRoundTripAllValues(t *testing.T) {
	conv := NewConverter(true)

	for n := MinDecimal; n <= MaxDecimal; n++ {
		roman, err := conv.DecimalToRoman(n)
		require.NoError(t, err)

		back, err := conv.RomanToDecimal(roman)
		require.NoError(t, err, "decoding %q", roman)
		require.Equal(t, n, back)

		again, err := conv.DecimalToRoman(back)
		require.NoError(t, err)
		require.Equal(t, roman, again)
	}
}

func TestRomanToDecimalInvalidSymbols(t *testing.T) {
	conv := NewConverter(true)

	for _, s := range []string{"", "ABC", "XIVQ", "M M"} {
		_, err := conv.RomanToDecimal(s)
		require.Error(t, err, "input %q", s)

		var invalid *InvalidSymbolError
		require.ErrorAs(t, err, &invalid, "input %q", s)
	}
}

func TestRomanToDecimalRejectsNonCanonicalForms(t *testing.T) {
	conv := NewConverter(true)

	for _, s := range []string{"IIII", "VX", "XXXX", "IC", "VIIII", "MMMM", "IXIX"} {
		_, err := conv.RomanToDecimal(s)
		require.Error(t, err, "input %q", s)

		var nonCanonical *NonCanonicalFormError
		require.ErrorAs(t, err, &nonCanonical, "input %q", s)
	}
}

func TestRomanToDecimalLowercasePolicy(t *testing.T) {
	lenient := NewConverter(true)
	got, err := lenient.RomanToDecimal("mcmxciv")
	require.NoError(t, err)
	assert.Equal(t, 1994, got)

	strict := NewConverter(false)
	_, err = strict.RomanToDecimal("mcmxciv")
	var invalid *InvalidSymbolError
	require.ErrorAs(t, err, &invalid)
}

func TestConvertDispatch(t *testing.T) {
	conv := NewConverter(true)

	rec, err := conv.Convert(domain.ConversionRequest{Direction: domain.DecimalToRoman, RawInput: " 1994 "})
	require.NoError(t, err)
	assert.Equal(t, domain.DecimalToRoman, rec.Direction)
	assert.Equal(t, "1994", rec.Input)
	assert.Equal(t, "MCMXCIV", rec.Output)
	assert.NotEmpty(t, rec.ID)

	rec, err = conv.Convert(domain.ConversionRequest{Direction: domain.RomanToDecimal, RawInput: "mcmxciv"})
	require.NoError(t, err)
	assert.Equal(t, "MCMXCIV", rec.Input)
	assert.Equal(t, "1994", rec.Output)
}

func TestConvertRejectsNonInteger(t *testing.T) {
	conv := NewConverter(true)

	_, err := conv.Convert(domain.ConversionRequest{Direction: domain.DecimalToRoman, RawInput: "12x"})
	var invalid *InvalidNumberError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "12x", invalid.Input)
}

func TestConvertIsAtomic(t *testing.T) {
	conv := NewConverter(true)

	rec, err := conv.Convert(domain.ConversionRequest{Direction: domain.RomanToDecimal, RawInput: "IIII"})
	require.Error(t, err)
	assert.Zero(t, rec, "no partial record on failure")
}

func TestConvertBoundaries(t *testing.T) {
	conv := NewConverter(true)

	for _, tc := range []struct {
		n    int
		want string
	}{
		{1, "I"},
		{3999, "MMMCMXCIX"},
	} {
		got, err := conv.DecimalToRoman(tc.n)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got)

		back, err := conv.RomanToDecimal(tc.want)
		require.NoError(t, err)
		assert.Equal(t, tc.n, back)
	}

	_, err := conv.Convert(domain.ConversionRequest{Direction: domain.DecimalToRoman, RawInput: strconv.Itoa(4000)})
	var oor *OutOfRangeError
	require.ErrorAs(t, err, &oor)
}
