package domain

import "leadgate_backend/platform/events"

// Event names published by the leads module.
const (
	EventLeadQualified  = "lead.qualified"
	EventLeadDispatched = "lead.dispatched"
)

// LeadQualified is published after rule evaluation completes. Subscribers
// must not assume the lead still exists afterwards; it never does.
type LeadQualified struct {
	events.BaseEvent
	LeadID string
	Score  int
	Label  string
}

// EventName implements events.Event.
func (LeadQualified) EventName() string { return EventLeadQualified }

// LeadDispatched is published after the dispatch coordinator resolves,
// whatever the outcome.
type LeadDispatched struct {
	events.BaseEvent
	LeadID  string
	Outcome DispatchOutcome
}

// EventName implements events.Event.
func (LeadDispatched) EventName() string { return EventLeadDispatched }
