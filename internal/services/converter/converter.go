// Package converter implements bidirectional conversion between decimal
// integers and Roman numerals. Both directions are total inverses of each
// other over [1, 3999]: decoding an encoded value (and re-encoding a decoded
// numeral) always returns the original.
package converter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/vadiminshakov/romanum/internal/domain"
)

// MinDecimal and MaxDecimal bound the representable range.
const (
	MinDecimal = 1
	MaxDecimal = 3999
)

type numeralPair struct {
	value  int
	symbol string
}

// numeralPairs is ordered by descending value. The subtractive pairs
// (CM, CD, XC, XL, IX, IV) are part of the table so the greedy encoding
// pass never needs to backtrack.
var numeralPairs = []numeralPair{
	{1000, "M"},
	{900, "CM"},
	{500, "D"},
	{400, "CD"},
	{100, "C"},
	{90, "XC"},
	{50, "L"},
	{40, "XL"},
	{10, "X"},
	{9, "IX"},
	{5, "V"},
	{4, "IV"},
	{1, "I"},
}

var symbolValues = map[rune]int{
	'I': 1,
	'V': 5,
	'X': 10,
	'L': 50,
	'C': 100,
	'D': 500,
	'M': 1000,
}

// Converter performs stateless conversions in both directions. A single
// instance can be shared freely.
type Converter struct {
	acceptLowercase bool
}

// NewConverter creates a Converter. When acceptLowercase is set, Roman input
// is normalized to uppercase before decoding; otherwise lowercase symbols
// are rejected as invalid.
func NewConverter(acceptLowercase bool) *Converter {
	return &Converter{acceptLowercase: acceptLowercase}
}

// DecimalToRoman encodes n as a canonical Roman numeral. Values outside
// [MinDecimal, MaxDecimal] fail with OutOfRangeError.
func (c *Converter) DecimalToRoman(n int) (string, error) {
	if n < MinDecimal || n > MaxDecimal {
		return "", &OutOfRangeError{Value: n}
	}

	var b strings.Builder
	remaining := n
	for _, p := range numeralPairs {
		for remaining >= p.value {
			b.WriteString(p.symbol)
			remaining -= p.value
		}
	}
	return b.String(), nil
}

// RomanToDecimal decodes s using subtractive-pair rules: a symbol strictly
// smaller than its successor is subtracted, every other symbol is added.
// The decoded value is re-encoded and compared against the normalized input,
// so non-canonical spellings like "IIII" or "VX" fail with
// NonCanonicalFormError even though their symbols are valid.
func (c *Converter) RomanToDecimal(s string) (int, error) {
	if s == "" {
		return 0, &InvalidSymbolError{Input: s}
	}

	normalized := s
	if c.acceptLowercase {
		normalized = strings.ToUpper(s)
	}

	values := make([]int, 0, len(normalized))
	for i, r := range normalized {
		v, ok := symbolValues[r]
		if !ok {
			return 0, &InvalidSymbolError{Input: s, Symbol: r, Position: i}
		}
		values = append(values, v)
	}

	total := 0
	for i, v := range values {
		if i+1 < len(values) && v < values[i+1] {
			total -= v
		} else {
			total += v
		}
	}

	canonical, err := c.DecimalToRoman(total)
	if err != nil {
		// decodable but beyond 3999, e.g. "MMMM"
		return 0, &NonCanonicalFormError{Input: normalized}
	}
	if canonical != normalized {
		return 0, &NonCanonicalFormError{Input: normalized, Canonical: canonical}
	}
	return total, nil
}

// Convert dispatches a request to the matching direction and returns a
// record of the conversion. Conversion is atomic: on any failure no record
// is produced. The caller is responsible for appending the record to the
// history log.
func (c *Converter) Convert(req domain.ConversionRequest) (domain.ConversionRecord, error) {
	raw := strings.TrimSpace(req.RawInput)

	switch req.Direction {
	case domain.DecimalToRoman:
		n, err := strconv.Atoi(raw)
		if err != nil {
			return domain.ConversionRecord{}, &InvalidNumberError{Input: req.RawInput}
		}
		roman, err := c.DecimalToRoman(n)
		if err != nil {
			return domain.ConversionRecord{}, err
		}
		return domain.NewConversionRecord(req.Direction, strconv.Itoa(n), roman), nil

	case domain.RomanToDecimal:
		n, err := c.RomanToDecimal(raw)
		if err != nil {
			return domain.ConversionRecord{}, err
		}
		return domain.NewConversionRecord(req.Direction, strings.ToUpper(raw), strconv.Itoa(n)), nil

	default:
		return domain.ConversionRecord{}, fmt.Errorf("unsupported direction: %d", req.Direction)
	}
}
