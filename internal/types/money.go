package types

import (
	"bytes"
	"fmt"

	"github.com/shopspring/decimal"
)

// MoneyPlaces is the number of decimal places every monetary value is quantized to.
const MoneyPlaces = 2

// Money is a monetary amount that is exchanged as a decimal string with two places,
// e.g. "800.00".
//
// The full precision of the decoded value is kept. Quantization happens on output
// and on comparison.
type Money struct {
	decimal.Decimal
}

// NewMoney wraps a decimal.
func NewMoney(d decimal.Decimal) Money {
	return Money{d}
}

// MoneyFromString parses a decimal string.
func MoneyFromString(s string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, fmt.Errorf("%q is not a valid amount: %w", s, err)
	}

	return Money{d}, nil
}

// MustMoney parses s and panics on error. Use for literals only.
func MustMoney(s string) Money {
	m, err := MoneyFromString(s)
	if err != nil {
		panic(err)
	}
	return m
}

// Round quantizes a decimal to two places.
func Round(d decimal.Decimal) decimal.Decimal {
	return d.Round(MoneyPlaces)
}

// Format renders a decimal as a two place string.
func Format(d decimal.Decimal) string {
	return d.StringFixed(MoneyPlaces)
}

// String returns the amount with exactly two decimal places.
func (m Money) String() string {
	return Format(m.Decimal)
}

// Rounded returns the amount quantized to two places.
func (m Money) Rounded() decimal.Decimal {
	return Round(m.Decimal)
}

// MarshalJSON implements the json.Marshaler interface.
func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(`"` + m.String() + `"`), nil
}

// UnmarshalJSON implements the json.Unmarshaler interface. Both JSON strings
// and JSON numbers are accepted.
func (m *Money) UnmarshalJSON(data []byte) error {
	value := bytes.Trim(data, `"`)
	if len(value) == 0 || string(value) == "null" {
		*m = Money{}
		return nil
	}

	d, err := decimal.NewFromString(string(value))
	if err != nil {
		return fmt.Errorf("%q is not a valid amount", value)
	}

	*m = Money{d}
	return nil
}
