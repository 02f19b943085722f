// Package domain holds the lead qualification domain types. These are plain
// values with no transport or storage concerns: a Lead exists for exactly one
// request and is never persisted.
package domain

// Lead is a single structured business inquiry submitted for qualification.
// Fields other than Name and RawPhone are optional; absence is represented by
// the empty string or a nil pointer, never a sentinel value.
//
// A Lead is immutable after normalization: the only field rewritten by the
// pipeline is Phone (canonical digits) plus the derived PhoneValid/E164.
type Lead struct {
	// ID is the per-request correlation id. It exists to tie log lines and
	// the response together and has no durable meaning.
	ID string

	Name     string
	RawPhone string

	// Phone holds the digits-only form of RawPhone; E164 is the +1 canonical
	// form and is empty when the number is not a valid US number.
	Phone      string
	PhoneValid bool
	E164       string

	Email   string
	Service string
	Zip     string
	Address string
	Source  string
	Notes   string

	// Budget and TimeframeDays are nil when absent or non-numeric; the rule
	// evaluator treats both the same way (the "unknown" branch).
	Budget        *float64
	TimeframeDays *float64

	// Insurance is tri-state: nil means the field was never supplied and the
	// insurance rule is skipped entirely.
	Insurance *bool
}
