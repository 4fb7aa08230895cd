package domain

import "fmt"

// Direction represents the way a conversion goes.
type Direction int

const (
	DecimalToRoman Direction = iota
	RomanToDecimal
)

// direction string constants to avoid magic strings
const (
	directionStringDecimalToRoman = "decimal_to_roman"
	directionStringRomanToDecimal = "roman_to_decimal"
)

// String returns the string representation of the direction
func (d Direction) String() string {
	switch d {
	case DecimalToRoman:
		return directionStringDecimalToRoman
	case RomanToDecimal:
		return directionStringRomanToDecimal
	default:
		return "unknown"
	}
}

// ParseDirection parses the string representation of a direction.
func ParseDirection(s string) (Direction, error) {
	switch s {
	case directionStringDecimalToRoman:
		return DecimalToRoman, nil
	case directionStringRomanToDecimal:
		return RomanToDecimal, nil
	}
	return 0, fmt.Errorf("unknown direction: %q", s)
}

func (d Direction) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *Direction) UnmarshalText(text []byte) error {
	parsed, err := ParseDirection(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
