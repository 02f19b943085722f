// Package format renders the operator alert for a qualified lead. Rendering
// is pure and deterministic: the same lead and result always produce the
// same message.
package format

import (
	"fmt"
	"strings"

	"leadgate_backend/internal/leads/domain"
	"leadgate_backend/platform/phone"
)

const (
	reasonDelimiter    = " | "
	truncationMarker   = "..."
	truncationOverhead = len(truncationMarker)
)

// Alert builds the multi-line alert body: a leading identifier line, one
// line per present field in fixed order, and a trailing reasons line.
// Absent optional fields produce no line at all. The result is truncated to
// maxLen bytes with a trailing ellipsis marker when it would exceed it.
func Alert(l domain.Lead, q domain.QualificationResult, maxLen int) string {
	lines := make([]string, 0, 12)

	if q.Qualified != nil {
		lines = append(lines, fmt.Sprintf("New Lead (%s) #%s | Score: %d", q.Label(), l.ID, q.Score))
	} else {
		lines = append(lines, fmt.Sprintf("New Lead #%s | Tier: %s | Score: %d", l.ID, q.Tier, q.Score))
	}

	if l.Name != "" {
		lines = append(lines, "Name: "+l.Name)
	}
	if v := phoneLine(l); v != "" {
		lines = append(lines, "Phone: "+v)
	}
	if l.Service != "" {
		lines = append(lines, "Service: "+l.Service)
	}
	if l.Zip != "" {
		lines = append(lines, "Zip: "+l.Zip)
	}
	if l.Address != "" {
		lines = append(lines, "Address: "+l.Address)
	}
	if l.Insurance != nil {
		if *l.Insurance {
			lines = append(lines, "Insurance: yes")
		} else {
			lines = append(lines, "Insurance: no")
		}
	}
	if l.Budget != nil {
		lines = append(lines, fmt.Sprintf("Budget: $%g", *l.Budget))
	}
	if l.TimeframeDays != nil {
		lines = append(lines, fmt.Sprintf("Timeframe: %g days", *l.TimeframeDays))
	}
	if l.Source != "" {
		lines = append(lines, "Source: "+l.Source)
	}
	if l.Notes != "" {
		lines = append(lines, "Notes: "+l.Notes)
	}

	lines = append(lines, "Reasons: "+strings.Join(q.Reasons, reasonDelimiter))

	return Truncate(strings.Join(lines, "\n"), maxLen)
}

// phoneLine prefers the canonical E.164 form, annotated with the national
// rendering when it differs, and falls back to the raw input.
func phoneLine(l domain.Lead) string {
	if l.E164 == "" {
		return l.RawPhone
	}
	if national := phone.DisplayNational(l.E164); national != "" && national != l.E164 {
		return l.E164 + " (" + national + ")"
	}
	return l.E164
}

// Truncate caps a message at maxLen bytes, replacing the tail with the
// ellipsis marker when truncation occurs. The result is never longer than
// maxLen and, when truncated, is exactly maxLen bytes.
func Truncate(msg string, maxLen int) string {
	if maxLen <= 0 || len(msg) <= maxLen {
		return msg
	}
	if maxLen <= truncationOverhead {
		return truncationMarker[:maxLen]
	}
	return msg[:maxLen-truncationOverhead] + truncationMarker
}
