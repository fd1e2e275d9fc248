package model

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Money is an amount in minor currency units (kopecks).
type Money int64

// String renders the amount with two fraction digits, e.g. "1200.50".
func (m Money) String() string {
	sign := ""
	units := uint64(m)
	if m < 0 {
		sign = "-"
		units = uint64(-(m + 1)) + 1
	}
	return fmt.Sprintf("%s%d.%02d", sign, units/100, units%100)
}

// ParseMoney reads a decimal amount with at most two fraction digits.
func ParseMoney(s string) (Money, error) {
	digits, negative := strings.CutPrefix(s, "-")
	whole, frac, hasFrac := strings.Cut(digits, ".")
	if whole == "" || (hasFrac && (frac == "" || len(frac) > 2)) {
		return 0, fmt.Errorf("invalid amount %q", s)
	}

	units, err := strconv.ParseUint(whole, 10, 64)
	if err != nil || units > (math.MaxInt64-99)/100 {
		return 0, fmt.Errorf("invalid amount %q", s)
	}
	var cents uint64
	if hasFrac {
		if cents, err = strconv.ParseUint(frac, 10, 8); err != nil {
			return 0, fmt.Errorf("invalid amount %q", s)
		}
		if len(frac) == 1 {
			cents *= 10
		}
	}

	m := Money(units*100 + cents)
	if negative {
		m = -m
	}
	return m, nil
}
