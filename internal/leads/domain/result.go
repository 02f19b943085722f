package domain

// Tier is an ordinal qualification label derived from score.
type Tier string

const (
	TierA Tier = "A"
	TierB Tier = "B"
	TierC Tier = "C"
)

// QualificationResult is derived from a normalized Lead and the active rule
// configuration, and is immutable once computed. Exactly one of Tier or
// Qualified is populated, depending on the configured policy shape.
type QualificationResult struct {
	Score int

	// Tier is set under the tiered policy; empty otherwise.
	Tier Tier

	// Qualified is set under the threshold policy; nil otherwise.
	Qualified *bool

	// Reasons holds one human-readable entry per evaluated rule, in rule
	// order, regardless of pass or fail.
	Reasons []string
}

// Label returns the policy outcome as a short string for logs and the alert
// header: the tier letter, or QUALIFIED/REVIEW under the threshold policy.
func (q QualificationResult) Label() string {
	if q.Qualified != nil {
		if *q.Qualified {
			return "QUALIFIED"
		}
		return "REVIEW"
	}
	return string(q.Tier)
}

// Dispatch outcome states. SkipReason is empty for attempted dispatches.
const (
	SkipBelowThreshold      = "below_threshold"
	SkipGatewayUnconfigured = "gateway_unconfigured"
)

// DispatchOutcome records whether a notification attempt was made and how it
// ended. A dispatch failure is data here, never an error of the
// qualification step.
type DispatchOutcome struct {
	Attempted  bool   `json:"attempted"`
	Sent       bool   `json:"sent"`
	SkipReason string `json:"skipReason,omitempty"`
	MessageID  string `json:"messageId,omitempty"`
	Error      string `json:"error,omitempty"`
}
