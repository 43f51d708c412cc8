// Package linter implements the cartridge validation engine: front-matter
// field rules, section structure rules, stack compliance scanning, and the
// section-specific content checks. Every expected schema or compliance
// condition becomes a Finding in the Report; the engine only returns Go
// errors for conditions that make validation itself impossible.
package linter

// Severity classifies a finding.
type Severity int

const (
	// SeverityError blocks validity.
	SeverityError Severity = iota
	// SeverityWarning is informational; the document stays valid.
	SeverityWarning
)

// Finding is one validation observation with an optional 1-based document
// line reference (0 when the finding has no specific location).
type Finding struct {
	Severity Severity `json:"-"`
	Message  string   `json:"message"`
	Line     int      `json:"line,omitempty"`
}

// Report is the result of validating one document. Errors and Warnings each
// preserve detection order.
type Report struct {
	Errors   []Finding `json:"errors"`
	Warnings []Finding `json:"warnings"`
}

// Valid reports whether the document passed: no errors (warnings allowed).
func (r *Report) Valid() bool {
	return len(r.Errors) == 0
}

// AddError records an error finding without a line reference.
func (r *Report) AddError(message string) {
	r.Errors = append(r.Errors, Finding{Severity: SeverityError, Message: message})
}

// AddErrorAt records an error finding at a document line.
func (r *Report) AddErrorAt(message string, line int) {
	r.Errors = append(r.Errors, Finding{Severity: SeverityError, Message: message, Line: line})
}

// AddWarning records a warning finding without a line reference.
func (r *Report) AddWarning(message string) {
	r.Warnings = append(r.Warnings, Finding{Severity: SeverityWarning, Message: message})
}

// AddWarningAt records a warning finding at a document line.
func (r *Report) AddWarningAt(message string, line int) {
	r.Warnings = append(r.Warnings, Finding{Severity: SeverityWarning, Message: message, Line: line})
}
