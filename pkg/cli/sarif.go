package cli

import (
	"fmt"
	"io"

	"github.com/owenrumney/go-sarif/v3/pkg/report/v210/sarif"

	"github.com/cartforge/cartlint/pkg/linter"
)

const toolInformationURI = "https://github.com/cartforge/cartlint"

// sarifLevel maps finding severities onto the SARIF level vocabulary.
func sarifLevel(severity linter.Severity) string {
	if severity == linter.SeverityError {
		return "error"
	}
	return "warning"
}

// writeSARIF renders the batch results as a SARIF 2.1.0 report with a single
// run. Every finding becomes a result; documents that could not be read
// surface as tool-level errors on their path.
func writeSARIF(w io.Writer, results []DocumentResult, version string) error {
	report := sarif.NewReport()
	run := sarif.NewRunWithInformationURI("cartlint", toolInformationURI)
	if version != "" {
		run.Tool.Driver.Version = &version
	}

	rule := sarif.NewReportingDescriptor().WithID("cartridge-validation")
	rule.WithName("Cartridge document validation")
	run.Tool.Driver.AddRule(rule)

	for _, docResult := range results {
		if docResult.Err != nil {
			appendSARIFResult(run, docResult.Path, linter.Finding{
				Severity: linter.SeverityError,
				Message:  docResult.Err.Error(),
			})
			continue
		}
		for _, finding := range docResult.Report.Errors {
			appendSARIFResult(run, docResult.Path, finding)
		}
		for _, finding := range docResult.Report.Warnings {
			appendSARIFResult(run, docResult.Path, finding)
		}
	}

	report.AddRun(run)
	if err := report.Write(w); err != nil {
		return fmt.Errorf("failed to write SARIF report: %w", err)
	}
	return nil
}

func appendSARIFResult(run *sarif.Run, path string, finding linter.Finding) {
	result := sarif.NewRuleResult("cartridge-validation")
	result.Message = sarif.NewTextMessage(finding.Message)
	result.Level = sarifLevel(finding.Severity)

	location := sarif.NewPhysicalLocation().
		WithArtifactLocation(sarif.NewArtifactLocation().WithURI(path))
	if finding.Line > 0 {
		location.WithRegion(sarif.NewRegion().WithStartLine(finding.Line))
	}
	result.Locations = []*sarif.Location{sarif.NewLocation().WithPhysicalLocation(location)}

	run.AddResult(result)
}
