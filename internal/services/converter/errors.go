package converter

import "fmt"

// OutOfRangeError reports a decimal value outside the representable
// range [1, 3999].
type OutOfRangeError struct {
	Value int
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("number %d is out of range [%d, %d]", e.Value, MinDecimal, MaxDecimal)
}

// InvalidSymbolError reports an empty Roman numeral or a character outside
// the alphabet {I, V, X, L, C, D, M}.
type InvalidSymbolError struct {
	Input    string
	Symbol   rune
	Position int
}

func (e *InvalidSymbolError) Error() string {
	if e.Input == "" {
		return "roman numeral is empty"
	}
	return fmt.Sprintf("invalid symbol %q at position %d in %q", e.Symbol, e.Position, e.Input)
}

// NonCanonicalFormError reports a numeral built from valid symbols that is
// not the canonical encoding of any value, e.g. "IIII" or "VX".
type NonCanonicalFormError struct {
	Input     string
	Canonical string
}

func (e *NonCanonicalFormError) Error() string {
	if e.Canonical == "" {
		return fmt.Sprintf("%q does not encode a representable value", e.Input)
	}
	return fmt.Sprintf("%q is not a canonical roman numeral, expected %q", e.Input, e.Canonical)
}

// InvalidNumberError reports raw input that does not parse as a base-10
// integer.
type InvalidNumberError struct {
	Input string
}

func (e *InvalidNumberError) Error() string {
	return fmt.Sprintf("%q is not a decimal integer", e.Input)
}
