// Package money provides exact minor-unit monetary arithmetic.
//
// All amounts are stored as int64 cents. Binary floating point is never
// used for money; decimal strings at the API boundary are parsed with
// shopspring/decimal and converted to cents immediately.
package money

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Amount is a monetary value in minor units (cents).
type Amount int64

// Epsilon is the threshold below which a balance is considered settled:
// anything smaller than one cent.
const Epsilon Amount = 1

var hundred = decimal.NewFromInt(100)

// FromMinorUnits wraps a raw cent count.
func FromMinorUnits(cents int64) Amount {
	return Amount(cents)
}

// FromDecimal converts a decimal value to cents, rounding half away from
// zero when the value carries more than two decimal places.
func FromDecimal(d decimal.Decimal) Amount {
	return Amount(d.Mul(hundred).Round(0).IntPart())
}

// Parse converts a fixed-point string such as "12.34" to an Amount.
func Parse(s string) (Amount, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	return FromDecimal(d), nil
}

// MinorUnits returns the raw cent count.
func (a Amount) MinorUnits() int64 {
	return int64(a)
}

// Decimal returns the amount as a two-decimal-place decimal value.
func (a Amount) Decimal() decimal.Decimal {
	return decimal.New(int64(a), -2)
}

// String renders the amount with exactly two decimal places, e.g. "3.34".
func (a Amount) String() string {
	return a.Decimal().StringFixed(2)
}

// Abs returns the magnitude of the amount.
func (a Amount) Abs() Amount {
	if a < 0 {
		return -a
	}
	return a
}

// IsZero reports whether the amount is exactly zero cents.
func (a Amount) IsZero() bool {
	return a == 0
}

// MarshalJSON renders the amount as a fixed-point string so that money
// never crosses the wire as binary floating point.
func (a Amount) MarshalJSON() ([]byte, error) {
	return []byte(`"` + a.String() + `"`), nil
}

// UnmarshalJSON accepts only a quoted fixed-point string. Bare JSON
// numbers are rejected so clients never send money as floating point.
func (a *Amount) UnmarshalJSON(data []byte) error {
	s := string(data)
	if len(s) < 2 || s[0] != '"' || s[len(s)-1] != '"' {
		return fmt.Errorf("invalid amount %s: must be a quoted decimal string", s)
	}
	parsed, err := Parse(s[1 : len(s)-1])
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}
