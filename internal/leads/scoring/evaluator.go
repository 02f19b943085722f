package scoring

import "leadgate_backend/internal/leads/domain"

// Evaluate runs every active rule against the lead, in table order, and
// returns the additive score plus one reason per evaluated rule.
//
// Evaluation is pure: the same lead under the same rule set always yields
// the same score and reasons, and no state is shared between calls.
func (rs *RuleSet) Evaluate(l domain.Lead) (int, []string) {
	score := 0
	reasons := make([]string, 0, len(rs.rules))

	for _, r := range rs.rules {
		v, reason := r.eval(l, rs)
		switch v {
		case verdictPass:
			score += r.weight
		case verdictPartial:
			score += r.partial
		case verdictSkip:
			continue
		}
		reasons = append(reasons, reason)
	}

	return score, reasons
}
