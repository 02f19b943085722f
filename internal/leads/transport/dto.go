// Package transport defines the wire DTOs for the leads module. Forms in
// the wild send budgets and timeframes as numbers or strings and insurance
// as a boolean or "yes"/"no" text, so the flexible types here absorb that
// instead of rejecting the request.
package transport

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"leadgate_backend/internal/leads/domain"
)

// FlexFloat accepts a JSON number or a numeric string. A non-numeric value
// is not an error; it unmarshals as unknown, which the rule evaluator
// treats as the absent branch.
type FlexFloat struct {
	Value float64
	Known bool
}

// UnmarshalJSON implements json.Unmarshaler.
func (f *FlexFloat) UnmarshalJSON(data []byte) error {
	// Unmarshaling null into a float64 is a silent no-op, so catch it here
	// to keep the value unknown.
	if string(data) == "null" {
		return nil
	}

	var n float64
	if err := json.Unmarshal(data, &n); err == nil {
		f.Value = n
		f.Known = true
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		// ParseFloat accepts "NaN" and "Inf", which must stay unknown.
		if n, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err == nil && !math.IsNaN(n) && !math.IsInf(n, 0) {
			f.Value = n
			f.Known = true
		}
		return nil
	}

	// Other shapes (null, objects) degrade to unknown rather than failing
	// the whole submission.
	return nil
}

// FlexBool accepts a JSON bool or affirmative/negative text.
type FlexBool bool

// UnmarshalJSON implements json.Unmarshaler.
func (b *FlexBool) UnmarshalJSON(data []byte) error {
	var v bool
	if err := json.Unmarshal(data, &v); err == nil {
		*b = FlexBool(v)
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		switch strings.ToLower(strings.TrimSpace(s)) {
		case "yes", "true", "y", "1":
			*b = true
		default:
			*b = false
		}
		return nil
	}

	*b = false
	return nil
}

// SubmitLeadRequest is the inbound lead submission. Only name and phone are
// required; everything else degrades gracefully when absent.
type SubmitLeadRequest struct {
	Name          string     `json:"name" validate:"required,min=1,max=200"`
	Phone         string     `json:"phone" validate:"required,min=1,max=40"`
	Email         string     `json:"email" validate:"omitempty,max=254"`
	Service       string     `json:"service" validate:"omitempty,max=120"`
	Zip           string     `json:"zip" validate:"omitempty,max=12"`
	Address       string     `json:"address" validate:"omitempty,max=300"`
	Source        string     `json:"source" validate:"omitempty,max=120"`
	Message       string     `json:"message" validate:"omitempty,max=2000"`
	Budget        *FlexFloat `json:"budget"`
	TimeframeDays *FlexFloat `json:"timeframeDays"`
	Insurance     *FlexBool  `json:"insurance"`
}

// SubmitLeadResponse is returned for every scored lead. Tier and Qualified
// are mutually exclusive, mirroring the configured policy shape.
type SubmitLeadResponse struct {
	OK              bool                   `json:"ok"`
	ID              string                 `json:"id"`
	Score           int                    `json:"score"`
	Tier            string                 `json:"tier,omitempty"`
	Qualified       *bool                  `json:"qualified,omitempty"`
	Reasons         []string               `json:"reasons"`
	NormalizedPhone string                 `json:"normalizedPhone,omitempty"`
	Dispatch        domain.DispatchOutcome `json:"dispatch"`
	Notice          string                 `json:"notice,omitempty"`
}
