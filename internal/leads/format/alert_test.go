package format

import (
	"strings"
	"testing"

	"leadgate_backend/internal/leads/domain"
)

func floatPtr(v float64) *float64 { return &v }
func boolPtr(v bool) *bool        { return &v }

func sampleLead() domain.Lead {
	return domain.Lead{
		ID:            "abc123",
		Name:          "Jane Doe",
		RawPhone:      "3055551234",
		PhoneValid:    true,
		E164:          "+13055551234",
		Service:       "roof repair",
		Zip:           "33101",
		Address:       "1 Ocean Dr",
		Budget:        floatPtr(1000),
		TimeframeDays: floatPtr(5),
		Insurance:     boolPtr(true),
	}
}

func sampleResult() domain.QualificationResult {
	return domain.QualificationResult{
		Score:   100,
		Tier:    domain.TierA,
		Reasons: []string{"Valid phone", "Service match (roof repair)"},
	}
}

func TestAlertHeaderAndFieldOrder(t *testing.T) {
	msg := Alert(sampleLead(), sampleResult(), 1500)
	lines := strings.Split(msg, "\n")

	if lines[0] != "New Lead #abc123 | Tier: A | Score: 100" {
		t.Fatalf("unexpected header: %q", lines[0])
	}
	if lines[1] != "Name: Jane Doe" {
		t.Fatalf("expected name line second, got %q", lines[1])
	}
	if !strings.HasPrefix(lines[2], "Phone: +13055551234") {
		t.Fatalf("expected canonical phone, got %q", lines[2])
	}
	last := lines[len(lines)-1]
	if last != "Reasons: Valid phone | Service match (roof repair)" {
		t.Fatalf("unexpected reasons line: %q", last)
	}
}

func TestAlertOmitsAbsentFields(t *testing.T) {
	lead := domain.Lead{ID: "x", Name: "Bob", RawPhone: "123"}
	msg := Alert(lead, domain.QualificationResult{Tier: domain.TierC}, 1500)

	for _, forbidden := range []string{"Service:", "Zip:", "Address:", "Insurance:", "Budget:", "Timeframe:", "Source:", "Notes:"} {
		if strings.Contains(msg, forbidden) {
			t.Fatalf("message contains line for absent field %q:\n%s", forbidden, msg)
		}
	}
	if strings.Contains(msg, "\n\n") {
		t.Fatalf("message contains blank line:\n%s", msg)
	}
	if !strings.Contains(msg, "Phone: 123") {
		t.Fatalf("expected raw phone fallback:\n%s", msg)
	}
}

func TestAlertThresholdHeader(t *testing.T) {
	qualified := true
	q := domain.QualificationResult{Score: 70, Qualified: &qualified}
	msg := Alert(domain.Lead{ID: "y"}, q, 1500)
	if !strings.HasPrefix(msg, "New Lead (QUALIFIED) #y | Score: 70") {
		t.Fatalf("unexpected threshold header: %q", msg)
	}
}

func TestTruncateLongMessage(t *testing.T) {
	max := 120
	lead := sampleLead()
	lead.Notes = strings.Repeat("very long notes ", 50)
	msg := Alert(lead, sampleResult(), max)

	if len(msg) != max {
		t.Fatalf("expected truncated length %d, got %d", max, len(msg))
	}
	if !strings.HasSuffix(msg, "...") {
		t.Fatalf("expected ellipsis suffix, got %q", msg[len(msg)-10:])
	}
}

func TestTruncateShortMessageUntouched(t *testing.T) {
	if got := Truncate("short", 100); got != "short" {
		t.Fatalf("short message must not be altered, got %q", got)
	}
	if got := Truncate("exact", 5); got != "exact" {
		t.Fatalf("message at the limit must not be altered, got %q", got)
	}
}

func TestAlertIsDeterministic(t *testing.T) {
	a := Alert(sampleLead(), sampleResult(), 1500)
	b := Alert(sampleLead(), sampleResult(), 1500)
	if a != b {
		t.Fatalf("formatting is not deterministic:\n%s\nvs\n%s", a, b)
	}
}
