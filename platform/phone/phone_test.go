package phone

import "testing"

func TestNormalizeDigits(t *testing.T) {
	cases := map[string]string{
		"(305) 555-1234":   "3055551234",
		"+1 305 555 12 34": "13055551234",
		"abc":              "",
		"":                 "",
	}
	for input, want := range cases {
		if got := NormalizeDigits(input); got != want {
			t.Fatalf("NormalizeDigits(%q) = %q, want %q", input, got, want)
		}
	}
}

func TestClassifyTenDigits(t *testing.T) {
	c := Classify("305-555-1234")
	if !c.Valid {
		t.Fatalf("expected 10-digit number to be valid")
	}
	if c.E164 != "+13055551234" {
		t.Fatalf("expected +13055551234, got %q", c.E164)
	}
}

func TestClassifyElevenDigitsWithLeadingOne(t *testing.T) {
	c := Classify("1 (305) 555-1234")
	if !c.Valid {
		t.Fatalf("expected 11-digit number starting with 1 to be valid")
	}
	if c.E164 != "+13055551234" {
		t.Fatalf("expected +13055551234, got %q", c.E164)
	}
}

func TestClassifyInvalidLengths(t *testing.T) {
	for _, input := range []string{"123", "30555512", "23055551234", "130555512345", ""} {
		c := Classify(input)
		if c.Valid {
			t.Fatalf("expected %q to be invalid", input)
		}
		if c.E164 != "" {
			t.Fatalf("expected no canonical form for %q, got %q", input, c.E164)
		}
	}
}

func TestClassifyElevenDigitsWithoutLeadingOne(t *testing.T) {
	if c := Classify("23055551234"); c.Valid {
		t.Fatalf("11 digits without leading 1 must be invalid")
	}
}

func TestDisplayNationalFallsBackOnGarbage(t *testing.T) {
	if got := DisplayNational("not-a-number"); got != "not-a-number" {
		t.Fatalf("expected passthrough, got %q", got)
	}
	if got := DisplayNational(""); got != "" {
		t.Fatalf("expected empty passthrough, got %q", got)
	}
}
