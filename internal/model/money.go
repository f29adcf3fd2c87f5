package model

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrInvalidPrice is returned for prices that are negative or not a decimal.
var ErrInvalidPrice = errors.New("invalid price")

// Money is an amount in cents.
type Money struct {
	Cents int64
}

// Add returns the sum of two amounts.
func (m Money) Add(o Money) Money {
	return Money{Cents: m.Cents + o.Cents}
}

// CheckedAdd returns the sum of two amounts, or ErrInvalidPrice if the sum
// does not fit in an int64.
func (m Money) CheckedAdd(o Money) (Money, error) {
	if (o.Cents > 0 && m.Cents > math.MaxInt64-o.Cents) ||
		(o.Cents < 0 && m.Cents < math.MinInt64-o.Cents) {
		return Money{}, fmt.Errorf("%w: total overflows", ErrInvalidPrice)
	}
	return m.Add(o), nil
}

// String formats the amount with two decimals, e.g. 1250 -> "12.50".
func (m Money) String() string {
	return fmt.Sprintf("%d.%02d", m.Cents/100, m.Cents%100)
}

// ParsePrice converts a stored price into cents.
//
// Both "12.34" and "12,34" are accepted; the third decimal rounds half-up.
// An empty string is a zero price, since contacts without a price are common.
func ParsePrice(raw string) (Money, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return Money{}, nil
	}
	s = strings.ReplaceAll(s, ",", ".")
	s = strings.TrimPrefix(s, "$")
	if strings.HasPrefix(s, "+") || strings.HasPrefix(s, "-") {
		return Money{}, fmt.Errorf("%w: %q", ErrInvalidPrice, raw)
	}

	if s == "" || s == "." {
		return Money{}, fmt.Errorf("%w: %q", ErrInvalidPrice, raw)
	}

	parts := strings.Split(s, ".")
	if len(parts) > 2 {
		return Money{}, fmt.Errorf("%w: %q", ErrInvalidPrice, raw)
	}
	intPart := parts[0]
	fracPart := ""
	if len(parts) == 2 {
		fracPart = parts[1]
	}
	if intPart == "" {
		intPart = "0"
	}
	if !allDigits(intPart) || !allDigits(fracPart) {
		return Money{}, fmt.Errorf("%w: %q", ErrInvalidPrice, raw)
	}

	iv, err := strconv.ParseInt(intPart, 10, 64)
	if err != nil {
		return Money{}, fmt.Errorf("%w: %q", ErrInvalidPrice, raw)
	}
	const maxSafe = (math.MaxInt64 - 99) / 100
	if iv > maxSafe {
		return Money{}, fmt.Errorf("%w: %q", ErrInvalidPrice, raw)
	}

	var frac int64
	if len(fracPart) > 0 {
		frac = int64(fracPart[0]-'0') * 10
		if len(fracPart) > 1 {
			frac += int64(fracPart[1] - '0')
			if len(fracPart) > 2 && fracPart[2] >= '5' {
				frac++
			}
		}
	}
	return Money{Cents: iv*100 + frac}, nil
}

// allDigits reports whether s is made of ASCII digits only.
func allDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
