// Package money converts between decimal price strings and integer cents.
// Prices are stored and computed as int64 cents; floats never touch money.
package money

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidAmount is returned for unparseable or negative amounts.
var ErrInvalidAmount = errors.New("invalid money amount")

// maxCents caps parsed amounts well below int64 overflow.
const maxCents = int64(9e16)

// ParseCents converts a user-entered decimal string (like "12.34") to cents.
// At most two fractional digits are accepted; negative amounts are rejected.
func ParseCents(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, ErrInvalidAmount
	}
	if strings.HasPrefix(s, "-") {
		return 0, fmt.Errorf("%w: negative", ErrInvalidAmount)
	}

	whole, frac := s, ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		whole, frac = s[:i], s[i+1:]
	}
	if whole == "" {
		whole = "0"
	}
	if len(frac) > 2 {
		return 0, fmt.Errorf("%w: more than two decimal places", ErrInvalidAmount)
	}
	// Right-pad fraction to exactly two digits ("5" -> "50").
	frac += strings.Repeat("0", 2-len(frac))

	units, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		return 0, ErrInvalidAmount
	}
	sub, err := strconv.ParseInt(frac, 10, 64)
	if err != nil {
		return 0, ErrInvalidAmount
	}

	// Bound before multiplying so units*100 cannot wrap int64.
	if units > maxCents/100 {
		return 0, fmt.Errorf("%w: too large", ErrInvalidAmount)
	}
	cents := units*100 + sub
	if cents > maxCents {
		return 0, fmt.Errorf("%w: too large", ErrInvalidAmount)
	}
	return cents, nil
}

// FormatCents renders cents as a decimal string with two places ("1234" cents
// becomes "12.34").
func FormatCents(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s%d.%02d", sign, cents/100, cents%100)
}
