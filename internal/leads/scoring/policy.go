package scoring

import (
	"leadgate_backend/internal/leads/domain"
	"leadgate_backend/platform/config"
)

// Policy maps a score to the qualification outcome. It never re-derives the
// score: both shapes are pure, monotone mappings over the same input.
type Policy struct {
	Mode       string
	TierABound int
	TierBBound int
	MinScore   int
}

// NewPolicy builds the policy from configuration.
func NewPolicy(cfg config.QualifyConfig) Policy {
	return Policy{
		Mode:       cfg.GetQualifyPolicy(),
		TierABound: cfg.GetQualifyTierABound(),
		TierBBound: cfg.GetQualifyTierBBound(),
		MinScore:   cfg.GetQualifyMinScore(),
	}
}

// Apply produces the QualificationResult for a score and its reasons.
// Under the tiered policy the result carries a tier label; under the
// threshold policy it carries the qualified boolean instead.
func (p Policy) Apply(score int, reasons []string) domain.QualificationResult {
	result := domain.QualificationResult{
		Score:   score,
		Reasons: reasons,
	}

	if p.Mode == config.PolicyThreshold {
		qualified := score >= p.MinScore
		result.Qualified = &qualified
		return result
	}

	switch {
	case score >= p.TierABound:
		result.Tier = domain.TierA
	case score >= p.TierBBound:
		result.Tier = domain.TierB
	default:
		result.Tier = domain.TierC
	}
	return result
}
