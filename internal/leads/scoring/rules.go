// Package scoring applies the weighted qualification rules to a normalized
// lead and maps the resulting score through the configured policy.
//
// Rules are data, not branches: each entry in the table carries a name, its
// full and partial weights, and a predicate. New rules are additive and
// weights are overridable from configuration without code changes.
package scoring

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"leadgate_backend/internal/leads/domain"
	"leadgate_backend/platform/config"

	"gopkg.in/yaml.v3"
)

type verdict int

const (
	// verdictPass awards the rule's full weight.
	verdictPass verdict = iota
	// verdictPartial awards the rule's partial weight (field present but
	// outside the configured target).
	verdictPartial
	// verdictMiss awards nothing but still contributes a reason.
	verdictMiss
	// verdictSkip means the rule was not evaluated at all: no points, no
	// reason. Only the insurance rule uses it, when the field was absent.
	verdictSkip
)

// rule is one entry of the scoring table.
type rule struct {
	name    string
	weight  int
	partial int
	eval    func(l domain.Lead, rs *RuleSet) (verdict, string)
}

// RuleSet is the active rule configuration: the ordered rule table plus the
// calibration values its predicates consult. It is immutable after
// construction, so concurrent evaluation needs no locking.
type RuleSet struct {
	Services    []string
	ZipPrefixes []string
	MinBudget   float64
	ASAPDays    float64

	rules []rule
}

// NewRuleSet builds the rule set from configuration, applying the optional
// YAML rules file on top of the compiled-in table.
func NewRuleSet(cfg config.QualifyConfig) (*RuleSet, error) {
	rs := &RuleSet{
		Services:    cfg.GetQualifyServices(),
		ZipPrefixes: cfg.GetQualifyZipPrefixes(),
		MinBudget:   cfg.GetQualifyMinBudget(),
		ASAPDays:    cfg.GetQualifyASAPDays(),
		rules:       defaultRules(),
	}

	if path := cfg.GetRulesFile(); path != "" {
		if err := rs.applyFile(path); err != nil {
			return nil, fmt.Errorf("rules file %s: %w", path, err)
		}
	}

	return rs, nil
}

// RuleCount returns the number of active rules.
func (rs *RuleSet) RuleCount() int {
	return len(rs.rules)
}

func defaultRules() []rule {
	return []rule{
		{
			name:   "phone_valid",
			weight: 25,
			eval: func(l domain.Lead, _ *RuleSet) (verdict, string) {
				if l.PhoneValid {
					return verdictPass, "Valid phone"
				}
				return verdictMiss, "Invalid/short phone"
			},
		},
		{
			name:    "service_match",
			weight:  20,
			partial: 5,
			eval: func(l domain.Lead, rs *RuleSet) (verdict, string) {
				svc := strings.ToLower(strings.TrimSpace(l.Service))
				if svc == "" {
					return verdictMiss, "No service selected"
				}
				for _, allowed := range rs.Services {
					if svc == allowed {
						return verdictPass, fmt.Sprintf("Service match (%s)", svc)
					}
				}
				return verdictPartial, fmt.Sprintf("Service unlisted (%s)", svc)
			},
		},
		{
			name:    "geography",
			weight:  15,
			partial: 5,
			eval: func(l domain.Lead, rs *RuleSet) (verdict, string) {
				zip := strings.TrimSpace(l.Zip)
				if zip == "" {
					return verdictMiss, "Missing zip"
				}
				for _, prefix := range rs.ZipPrefixes {
					if strings.HasPrefix(zip, prefix) {
						return verdictPass, fmt.Sprintf("Local zip (%s)", zip)
					}
				}
				return verdictPartial, fmt.Sprintf("Non-target zip (%s)", zip)
			},
		},
		{
			name:    "timeframe",
			weight:  15,
			partial: 5,
			eval: func(l domain.Lead, rs *RuleSet) (verdict, string) {
				if l.TimeframeDays == nil {
					return verdictMiss, "Unknown timeframe"
				}
				days := *l.TimeframeDays
				if days <= rs.ASAPDays {
					return verdictPass, fmt.Sprintf("ASAP timeframe (%gd)", days)
				}
				return verdictPartial, fmt.Sprintf("Later timeframe (%gd)", days)
			},
		},
		{
			name:   "budget",
			weight: 10,
			eval: func(l domain.Lead, rs *RuleSet) (verdict, string) {
				if l.Budget == nil {
					return verdictMiss, "No budget given"
				}
				budget := *l.Budget
				if budget >= rs.MinBudget {
					return verdictPass, fmt.Sprintf("Budget OK ($%g)", budget)
				}
				return verdictMiss, fmt.Sprintf("Low budget ($%g)", budget)
			},
		},
		{
			name:   "insurance_claim",
			weight: 10,
			eval: func(l domain.Lead, _ *RuleSet) (verdict, string) {
				if l.Insurance == nil {
					return verdictSkip, ""
				}
				if *l.Insurance {
					return verdictPass, "Insurance claim"
				}
				return verdictMiss, "No insurance claim"
			},
		},
		{
			name:   "address_present",
			weight: 5,
			eval: func(l domain.Lead, _ *RuleSet) (verdict, string) {
				if strings.TrimSpace(l.Address) != "" {
					return verdictPass, "Provided address"
				}
				return verdictMiss, "No address provided"
			},
		},
	}
}

// rulesFile is the YAML override document. Every field is optional; rule
// entries are matched by name against the compiled-in table.
type rulesFile struct {
	Services    []string `yaml:"services"`
	ZipPrefixes []string `yaml:"zip_prefixes"`
	MinBudget   *float64 `yaml:"min_budget"`
	ASAPDays    *float64 `yaml:"asap_days"`
	Rules       []struct {
		Name    string `yaml:"name"`
		Weight  *int   `yaml:"weight"`
		Partial *int   `yaml:"partial"`
		Enabled *bool  `yaml:"enabled"`
	} `yaml:"rules"`
}

func (rs *RuleSet) applyFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	var f rulesFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return err
	}

	if len(f.Services) > 0 {
		rs.Services = lowerAll(f.Services)
	}
	if len(f.ZipPrefixes) > 0 {
		rs.ZipPrefixes = f.ZipPrefixes
	}
	if f.MinBudget != nil {
		rs.MinBudget = *f.MinBudget
	}
	if f.ASAPDays != nil {
		rs.ASAPDays = *f.ASAPDays
	}

	for _, override := range f.Rules {
		idx := -1
		for i := range rs.rules {
			if rs.rules[i].name == override.Name {
				idx = i
				break
			}
		}
		if idx < 0 {
			return fmt.Errorf("unknown rule %q", override.Name)
		}
		if override.Enabled != nil && !*override.Enabled {
			rs.rules = append(rs.rules[:idx], rs.rules[idx+1:]...)
			continue
		}
		if override.Weight != nil {
			rs.rules[idx].weight = *override.Weight
		}
		if override.Partial != nil {
			rs.rules[idx].partial = *override.Partial
		}
	}

	return nil
}

func lowerAll(values []string) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = strings.ToLower(strings.TrimSpace(v))
	}
	return out
}

var zipRe = regexp.MustCompile(`^\d{5}(-\d{4})?$`)

// ValidZip reports whether a raw zip input is acceptable: empty counts as
// valid-but-absent, otherwise the input must be NNNNN or NNNNN-NNNN.
func ValidZip(raw string) bool {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return true
	}
	return zipRe.MatchString(raw)
}
