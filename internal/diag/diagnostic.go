package diag

import (
	"home/internal/source"
)

// Note attaches secondary context to a diagnostic ("value moved here").
type Note struct {
	Span source.Span
	Msg  string
}

// FixEdit is one concrete text replacement of a fix suggestion.
type FixEdit struct {
	Span    source.Span
	NewText string
}

// Fix is a suggested correction. Fixes are data-only; applying them is the
// driver's business.
type Fix struct {
	Title string
	Edits []FixEdit
}

// Diagnostic is one recorded finding of a pipeline phase.
type Diagnostic struct {
	Severity Severity
	Code     Code
	Message  string
	Primary  source.Span
	Notes    []Note
	Fixes    []Fix
}
