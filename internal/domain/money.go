package domain

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Cents is a money amount in integer cents. All balance and price arithmetic
// is exact; fractional dollars never touch floating point.
type Cents int64

// ParseCents parses a decimal dollar string ("9.99", "-25", "1000.5") into cents.
func ParseCents(s string) (Cents, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("%w: empty amount", ErrInvalidAmount)
	}

	negative := false
	switch s[0] {
	case '-':
		negative = true
		s = s[1:]
	case '+':
		s = s[1:]
	}

	dollars := s
	fraction := ""
	if idx := strings.IndexByte(s, '.'); idx != -1 {
		dollars = s[:idx]
		fraction = s[idx+1:]
	}
	if dollars == "" && fraction == "" {
		return 0, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}
	if len(fraction) > 2 {
		return 0, fmt.Errorf("%w: %q has sub-cent precision", ErrInvalidAmount, s)
	}
	// Pad "5" -> "50" so ".5" means fifty cents
	for len(fraction) < 2 {
		fraction += "0"
	}

	var whole int64
	if dollars != "" {
		var err error
		whole, err = strconv.ParseInt(dollars, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
		}
	}
	frac, err := strconv.ParseInt(fraction, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}

	total := whole*100 + frac
	if negative {
		total = -total
	}
	return Cents(total), nil
}

// MustParseCents is ParseCents for static literals; panics on bad input.
func MustParseCents(s string) Cents {
	c, err := ParseCents(s)
	if err != nil {
		panic(err)
	}
	return c
}

// String renders the amount as a decimal dollar string ("9.99").
func (c Cents) String() string {
	n := int64(c)
	sign := ""
	if n < 0 {
		sign = "-"
		n = -n
	}
	return fmt.Sprintf("%s%d.%02d", sign, n/100, n%100)
}

// MarshalJSON encodes the amount as a decimal string so API clients never see
// raw cent integers.
func (c Cents) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.String())
}

// UnmarshalJSON accepts a decimal string ("9.99").
func (c *Cents) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidAmount, data)
	}
	parsed, err := ParseCents(s)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
