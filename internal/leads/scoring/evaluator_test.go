package scoring

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"leadgate_backend/internal/leads/domain"
)

type testQualifyConfig struct {
	rulesFile string
}

func (c testQualifyConfig) GetQualifyServices() []string {
	return []string{"roof repair", "roof replacement", "leak repair", "inspection", "gutters", "insurance claim"}
}
func (c testQualifyConfig) GetQualifyZipPrefixes() []string { return []string{"330", "331", "342"} }
func (c testQualifyConfig) GetQualifyMinBudget() float64    { return 500 }
func (c testQualifyConfig) GetQualifyASAPDays() float64     { return 30 }
func (c testQualifyConfig) GetQualifyPolicy() string        { return "tiered" }
func (c testQualifyConfig) GetQualifyMinScore() int         { return 60 }
func (c testQualifyConfig) GetQualifyTierABound() int       { return 80 }
func (c testQualifyConfig) GetQualifyTierBBound() int       { return 60 }
func (c testQualifyConfig) GetQualifyValidationMode() string {
	return "strict"
}
func (c testQualifyConfig) GetRulesFile() string { return c.rulesFile }

func floatPtr(v float64) *float64 { return &v }
func boolPtr(v bool) *bool        { return &v }

func fullLead() domain.Lead {
	return domain.Lead{
		ID:            "test",
		Name:          "Jane Doe",
		Phone:         "3055551234",
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

func TestEvaluateFullLeadScoresOneHundred(t *testing.T) {
	rs, err := NewRuleSet(testQualifyConfig{})
	if err != nil {
		t.Fatalf("NewRuleSet: %v", err)
	}

	score, reasons := rs.Evaluate(fullLead())
	if score != 100 {
		t.Fatalf("expected score 100, got %d", score)
	}
	if len(reasons) != 7 {
		t.Fatalf("expected 7 reasons, got %d: %v", len(reasons), reasons)
	}
}

func TestEvaluateEmptyLeadProducesOneReasonPerEvaluatedRule(t *testing.T) {
	rs, err := NewRuleSet(testQualifyConfig{})
	if err != nil {
		t.Fatalf("NewRuleSet: %v", err)
	}

	score, reasons := rs.Evaluate(domain.Lead{})
	if score != 0 {
		t.Fatalf("expected score 0 for empty lead, got %d", score)
	}
	// Insurance was never supplied, so 6 of the 7 rules evaluate.
	if len(reasons) != 6 {
		t.Fatalf("expected 6 reasons for empty lead, got %d: %v", len(reasons), reasons)
	}
}

func TestEvaluatePartialBranches(t *testing.T) {
	rs, err := NewRuleSet(testQualifyConfig{})
	if err != nil {
		t.Fatalf("NewRuleSet: %v", err)
	}

	lead := domain.Lead{
		PhoneValid:    true,
		Service:       "fence painting", // unlisted
		Zip:           "90210",          // non-target
		TimeframeDays: floatPtr(90),     // slower than ASAP window
		Budget:        floatPtr(100),    // below minimum
		Insurance:     boolPtr(false),
	}

	score, reasons := rs.Evaluate(lead)
	// 25 + 5 + 5 + 5 + 0 + 0 + 0
	if score != 40 {
		t.Fatalf("expected score 40, got %d (reasons %v)", score, reasons)
	}
	if len(reasons) != 7 {
		t.Fatalf("expected 7 reasons, got %d", len(reasons))
	}
}

func TestEvaluateIsIdempotent(t *testing.T) {
	rs, err := NewRuleSet(testQualifyConfig{})
	if err != nil {
		t.Fatalf("NewRuleSet: %v", err)
	}

	lead := fullLead()
	score1, reasons1 := rs.Evaluate(lead)
	score2, reasons2 := rs.Evaluate(lead)
	if score1 != score2 {
		t.Fatalf("scores differ: %d vs %d", score1, score2)
	}
	if !reflect.DeepEqual(reasons1, reasons2) {
		t.Fatalf("reasons differ: %v vs %v", reasons1, reasons2)
	}
}

func TestServiceMatchIsCaseInsensitive(t *testing.T) {
	rs, err := NewRuleSet(testQualifyConfig{})
	if err != nil {
		t.Fatalf("NewRuleSet: %v", err)
	}

	lead := domain.Lead{Service: "Roof Repair"}
	score, _ := rs.Evaluate(lead)
	if score != 20 {
		t.Fatalf("expected 20 points for case-insensitive service match, got %d", score)
	}
}

func TestRulesFileOverridesWeightsAndDisablesRules(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "rules.yaml")
	doc := `
min_budget: 1000
rules:
  - name: phone_valid
    weight: 50
  - name: insurance_claim
    enabled: false
`
	if err := os.WriteFile(path, []byte(doc), 0o600); err != nil {
		t.Fatalf("write rules file: %v", err)
	}

	rs, err := NewRuleSet(testQualifyConfig{rulesFile: path})
	if err != nil {
		t.Fatalf("NewRuleSet: %v", err)
	}
	if rs.RuleCount() != 6 {
		t.Fatalf("expected 6 rules after disabling one, got %d", rs.RuleCount())
	}
	if rs.MinBudget != 1000 {
		t.Fatalf("expected min budget override 1000, got %g", rs.MinBudget)
	}

	lead := domain.Lead{PhoneValid: true, Insurance: boolPtr(true)}
	score, reasons := rs.Evaluate(lead)
	if score != 50 {
		t.Fatalf("expected 50 points from overridden phone rule, got %d", score)
	}
	// Disabled insurance rule must not produce a reason even when supplied.
	if len(reasons) != 5 {
		t.Fatalf("expected 5 reasons with insurance rule disabled, got %d: %v", len(reasons), reasons)
	}
}

func TestRulesFileRejectsUnknownRule(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "rules.yaml")
	doc := "rules:\n  - name: does_not_exist\n    weight: 1\n"
	if err := os.WriteFile(path, []byte(doc), 0o600); err != nil {
		t.Fatalf("write rules file: %v", err)
	}

	if _, err := NewRuleSet(testQualifyConfig{rulesFile: path}); err == nil {
		t.Fatalf("expected error for unknown rule name")
	}
}

func TestValidZip(t *testing.T) {
	valid := []string{"", "33101", "33101-1234", "  33101  "}
	for _, zip := range valid {
		if !ValidZip(zip) {
			t.Fatalf("expected %q to be valid", zip)
		}
	}
	invalid := []string{"3310", "331011", "33101-12", "abcde", "33101 1234"}
	for _, zip := range invalid {
		if ValidZip(zip) {
			t.Fatalf("expected %q to be invalid", zip)
		}
	}
}
