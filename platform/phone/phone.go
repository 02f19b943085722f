// Package phone provides US phone number utilities.
// This is part of the platform layer and contains no business logic.
package phone

import (
	"strings"

	"github.com/nyaruka/phonenumbers"
)

const usRegion = "US"

// Classification is the best-effort result of classifying a raw phone input.
// It never signals failure: invalid input yields Valid=false and an empty
// E164 form, and the caller decides what that degrades.
type Classification struct {
	Digits string
	Valid  bool
	E164   string
}

// NormalizeDigits strips every non-digit character from the input.
func NormalizeDigits(raw string) string {
	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Classify normalizes and classifies a raw phone input. A number is valid
// when it has exactly 10 digits (US country code 1 assumed) or 11 digits
// with a leading "1". The canonical form is +1 plus the trailing 10 digits.
func Classify(raw string) Classification {
	digits := NormalizeDigits(raw)

	c := Classification{Digits: digits}
	switch {
	case len(digits) == 11 && strings.HasPrefix(digits, "1"):
		c.Valid = true
		c.E164 = "+" + digits
	case len(digits) == 10:
		c.Valid = true
		c.E164 = "+1" + digits
	}
	return c
}

// DisplayNational renders a canonical E.164 number in US national format
// for human-readable output. If parsing fails, it returns the input as-is.
func DisplayNational(e164 string) string {
	if e164 == "" {
		return e164
	}

	number, err := phonenumbers.Parse(e164, usRegion)
	if err != nil {
		return e164
	}

	return phonenumbers.Format(number, phonenumbers.NATIONAL)
}
