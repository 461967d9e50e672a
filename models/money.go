package models

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Cents is a fixed-point money amount with two fractional digits, held as an
// integer number of cents so totals are exact. It serializes as a decimal
// string with exactly two fractional digits, e.g. "65.00".
type Cents int64

// priceRe matches the accepted wire format: up to six integer digits
// (decimal(8,2)) with at most two fractional digits.
var priceRe = regexp.MustCompile(`^\d{1,6}(\.\d{1,2})?$`)

// ParseCents parses a decimal price string into cents. It rejects negative
// values, more than two fractional digits, and amounts over 999999.99.
func ParseCents(s string) (Cents, error) {
	if !priceRe.MatchString(s) {
		return 0, fmt.Errorf("invalid price %q: must be a decimal with at most 2 fractional digits", s)
	}
	whole, frac, _ := strings.Cut(s, ".")
	n, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid price %q: %w", s, err)
	}
	cents := n * 100
	if frac != "" {
		// pad "5" to "50" so "65.5" means 65.50
		if len(frac) == 1 {
			frac += "0"
		}
		f, err := strconv.ParseInt(frac, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid price %q: %w", s, err)
		}
		cents += f
	}
	return Cents(cents), nil
}

// String renders the amount as a decimal with two fractional digits.
func (c Cents) String() string {
	sign := ""
	v := int64(c)
	if v < 0 {
		sign = "-"
		v = -v
	}
	return fmt.Sprintf("%s%d.%02d", sign, v/100, v%100)
}

func (c Cents) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(c.String())), nil
}

func (c *Cents) UnmarshalJSON(data []byte) error {
	s, err := strconv.Unquote(string(data))
	if err != nil {
		return fmt.Errorf("price must be a decimal string: %w", err)
	}
	parsed, err := ParseCents(s)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
