// Package cli implements the cartlint command surface: single-document and
// batch validation, the stack registry listing, and the machine-readable
// output formats. Validation logic stays in pkg/linter; this package only
// orchestrates and presents.
package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/cartforge/cartlint/pkg/console"
	"github.com/cartforge/cartlint/pkg/linter"
)

// DocumentResult pairs a validated document with its report. Err is set only
// when the document could not be validated at all (unreadable file).
type DocumentResult struct {
	Path   string         `json:"path"`
	Valid  bool           `json:"valid"`
	Report *linter.Report `json:"report,omitempty"`
	Err    error          `json:"-"`
}

// printReport writes one document's findings: errors first, then warnings,
// then a summary line. With quiet set, passing documents print nothing.
func printReport(w io.Writer, result DocumentResult, quiet bool) {
	if result.Err != nil {
		fmt.Fprintln(w, console.FormatErrorMessage(result.Err.Error()), console.FormatLocationMessage(result.Path, 0))
		return
	}

	report := result.Report
	if quiet && report.Valid() {
		return
	}

	for _, finding := range report.Errors {
		fmt.Fprintln(w, console.FormatErrorMessage(finding.Message), console.FormatLocationMessage(result.Path, finding.Line))
	}
	for _, finding := range report.Warnings {
		fmt.Fprintln(w, console.FormatWarningMessage(finding.Message), console.FormatLocationMessage(result.Path, finding.Line))
	}

	switch {
	case report.Valid() && len(report.Warnings) == 0:
		fmt.Fprintln(w, console.FormatSuccessMessage(fmt.Sprintf("%s: valid", result.Path)))
	case report.Valid():
		fmt.Fprintln(w, console.FormatSuccessMessage(fmt.Sprintf("%s: valid, %d warning(s)", result.Path, len(report.Warnings))))
	default:
		fmt.Fprintln(w, console.FormatErrorMessage(fmt.Sprintf("%s: %d error(s), %d warning(s)",
			result.Path, len(report.Errors), len(report.Warnings))))
	}
}

// printBatchSummary writes the aggregated pass/fail counts after a batch run.
func printBatchSummary(w io.Writer, results []DocumentResult) {
	passed, failed := 0, 0
	for _, result := range results {
		if result.Err == nil && result.Report.Valid() {
			passed++
		} else {
			failed++
		}
	}

	if failed == 0 {
		fmt.Fprintln(w, console.FormatSuccessMessage(fmt.Sprintf("%d document(s) validated, all passed", passed)))
		return
	}
	fmt.Fprintln(w, console.FormatErrorMessage(fmt.Sprintf("%d document(s) validated, %d failed", passed+failed, failed)))
}

// writeJSON writes the batch results as a JSON array.
func writeJSON(w io.Writer, results []DocumentResult) error {
	type jsonResult struct {
		Path     string           `json:"path"`
		Valid    bool             `json:"valid"`
		Errors   []linter.Finding `json:"errors"`
		Warnings []linter.Finding `json:"warnings"`
	}

	out := make([]jsonResult, 0, len(results))
	for _, result := range results {
		entry := jsonResult{
			Path:     result.Path,
			Valid:    result.Valid,
			Errors:   []linter.Finding{},
			Warnings: []linter.Finding{},
		}
		if result.Err != nil {
			entry.Errors = []linter.Finding{{Severity: linter.SeverityError, Message: result.Err.Error()}}
		} else {
			entry.Errors = append(entry.Errors, result.Report.Errors...)
			entry.Warnings = append(entry.Warnings, result.Report.Warnings...)
		}
		out = append(out, entry)
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(out)
}
