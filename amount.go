package stratapay

import (
	"fmt"
	"math"
	"strings"
)

// AmountPrecision is the number of decimal places of the base unit. All
// supported assets use 8 (satoshi-scale base units).
const AmountPrecision = 8

// amountScale is 10^AmountPrecision.
const amountScale = 100_000_000

// Amount is a currency quantity in base units. The API transmits amounts as
// base-unit integers; Amount provides the decimal-string conversion for
// display and input.
type Amount int64

// ParseAmount parses a decimal currency string such as "1.25" into base
// units. More than AmountPrecision fractional digits is an error rather
// than a silent truncation.
func ParseAmount(s string) (Amount, error) {
	s = strings.TrimSpace(s)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	if s == "" {
		return 0, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}

	whole, frac := s, ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		whole, frac = s[:i], s[i+1:]
	}
	if whole == "" && frac == "" {
		return 0, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}
	if len(frac) > AmountPrecision {
		return 0, fmt.Errorf("%w: more than %d decimal places", ErrInvalidAmount, AmountPrecision)
	}

	var units int64
	for _, c := range whole {
		if c < '0' || c > '9' {
			return 0, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
		}
		if units > (math.MaxInt64-9)/10 {
			return 0, fmt.Errorf("%w: %q out of range", ErrInvalidAmount, s)
		}
		units = units*10 + int64(c-'0')
	}

	var fracUnits int64
	scale := int64(amountScale / 10)
	for _, c := range frac {
		if c < '0' || c > '9' {
			return 0, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
		}
		fracUnits += int64(c-'0') * scale
		scale /= 10
	}

	if units > (math.MaxInt64-fracUnits)/amountScale {
		return 0, fmt.Errorf("%w: %q out of range", ErrInvalidAmount, s)
	}
	units = units*amountScale + fracUnits

	if neg {
		units = -units
	}
	return Amount(units), nil
}

// String renders the amount as a decimal string with trailing zeros
// trimmed, e.g. 125000000 base units as "1.25".
func (a Amount) String() string {
	units := int64(a)
	sign := ""
	if units < 0 {
		sign = "-"
		units = -units
	}

	whole := units / amountScale
	frac := units % amountScale
	if frac == 0 {
		return fmt.Sprintf("%s%d", sign, whole)
	}

	fracStr := strings.TrimRight(fmt.Sprintf("%08d", frac), "0")
	return fmt.Sprintf("%s%d.%s", sign, whole, fracStr)
}

// BaseUnits returns the amount as a raw base-unit integer.
func (a Amount) BaseUnits() int64 {
	return int64(a)
}
