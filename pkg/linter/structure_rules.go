package linter

import (
	"fmt"
	"strings"

	"github.com/cartforge/cartlint/pkg/constants"
	"github.com/cartforge/cartlint/pkg/logger"
	"github.com/cartforge/cartlint/pkg/parser"
)

var structureRulesLog = logger.New("linter:structure_rules")

// validateStructure checks that every canonical section is present and that
// the recognized sections appear in canonical order. Missing sections are
// errors; out-of-order sections are warnings, since a reordered document is
// still usable. lineOffset converts body line numbers to document lines.
func validateStructure(sections *parser.Sections, lineOffset int, report *Report) {
	found := sections.All()
	structureRulesLog.Printf("Checking section structure: found=%d, required=%d", len(found), len(constants.RequiredSections))

	for _, required := range constants.RequiredSections {
		if _, ok := sections.Find(required); !ok {
			report.AddError(fmt.Sprintf("missing required section '## %s'", required))
		}
	}

	// Order check walks only the subsequence of recognized sections;
	// unrecognized extras never affect ordering. Duplicates of the same
	// canonical section are tolerated: only strict backward movement in
	// canonical position is flagged.
	runningMax := -1
	for _, section := range found {
		expected := canonicalIndex(section.Title)
		if expected == -1 {
			continue
		}
		if expected < runningMax {
			report.AddWarningAt(fmt.Sprintf(
				"section '## %s' is out of order (canonical order: %s)",
				section.Title, strings.Join(constants.RequiredSections, ", ")),
				section.Line+lineOffset)
			continue
		}
		runningMax = expected
	}
}

// canonicalIndex returns the canonical position of a section title via
// case-sensitive prefix match, or -1 for unrecognized titles.
func canonicalIndex(title string) int {
	for i, required := range constants.RequiredSections {
		if strings.HasPrefix(title, required) {
			return i
		}
	}
	return -1
}
