package linter

import (
	"errors"
	"fmt"
	"os"

	"github.com/cartforge/cartlint/pkg/logger"
	"github.com/cartforge/cartlint/pkg/parser"
	"github.com/cartforge/cartlint/pkg/registry"
)

var linterLog = logger.New("linter:linter")

// Linter validates cartridge documents against a loaded stack registry.
// It holds no mutable state across documents: validating the same text twice
// produces identical reports, and one Linter may be shared by concurrent
// callers.
type Linter struct {
	registry *registry.Registry
}

// New creates a Linter over a loaded registry.
func New(reg *registry.Registry) *Linter {
	return &Linter{registry: reg}
}

// Lint validates one cartridge document and always returns exactly one
// Report. Expected schema and compliance conditions become findings; the
// document text itself can never fail Lint.
func (l *Linter) Lint(content string) *Report {
	report := &Report{}

	body := content
	lineOffset := 0
	var frontmatter map[string]any

	result, err := parser.ExtractFrontmatter(content)
	switch {
	case err == nil:
		frontmatter = result.Frontmatter
		body = result.Body
		lineOffset = result.BodyLineOffset
	case errors.Is(err, parser.ErrMissingFrontmatter):
		report.AddError("missing front matter")
	default:
		// Field-level checks are meaningless without a parsed header, but
		// the body checks still run over whatever split is available.
		report.AddError(err.Error())
		if result != nil {
			body = result.Body
			lineOffset = result.BodyLineOffset
		}
	}

	stackID := ""
	tier := ""
	if frontmatter != nil {
		stackID = validateFrontmatter(frontmatter, l.registry, report)
		if value, ok := frontmatter["tier"]; ok {
			tier = stringify(value)
		}
	}

	sections := parser.ScanSections(body)
	validateStructure(sections, lineOffset, report)

	// Compliance scanning needs a resolved profile; an unknown stack was
	// already reported and must not be scanned against a nil profile.
	if profile, ok := l.registry.Resolve(stackID); ok && stackID != "" {
		scanCompliance(body, profile, lineOffset, report)
	}

	checkQualityGates(sections, tier, report)
	checkExamples(sections, lineOffset, report)

	linterLog.Printf("Lint complete: errors=%d, warnings=%d", len(report.Errors), len(report.Warnings))
	return report
}

// LintFile reads and validates a cartridge document from disk. The read
// failure is the one condition that propagates as an error instead of a
// finding: a file that was supposed to exist could not be inspected at all.
func (l *Linter) LintFile(path string) (*Report, error) {
	linterLog.Printf("Linting file: %s", path)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read cartridge document: %w", err)
	}
	return l.Lint(string(data)), nil
}
