package linter

import (
	"fmt"
	"regexp"
	"slices"
	"strings"

	"github.com/cartforge/cartlint/pkg/constants"
	"github.com/cartforge/cartlint/pkg/logger"
	"github.com/cartforge/cartlint/pkg/parser"
)

var sectionChecksLog = logger.New("linter:section_checks")

var shellFencePattern = regexp.MustCompile(`(?m)^` + "```" + `(` + strings.Join(constants.ShellFenceLanguages, "|") + `)\s*$`)

// checkQualityGates verifies the Quality Gates section holds runnable
// commands: at least one shell-tagged code fence, and for the stricter tiers
// a mention of each conventional command family. A missing section is
// skipped silently; the structure validator already reported it.
func checkQualityGates(sections *parser.Sections, tier string, report *Report) {
	text, ok := sections.Extract(constants.QualityGatesSection)
	if !ok {
		return
	}
	sectionChecksLog.Printf("Checking quality gates: tier=%s, size=%d bytes", tier, len(text))

	if !shellFencePattern.MatchString(text) {
		report.AddError(fmt.Sprintf(
			"section '## %s' must include runnable commands in a shell code fence (%s)",
			constants.QualityGatesSection, strings.Join(constants.ShellFenceLanguages, ", ")))
	}

	if !slices.Contains(constants.StrictTiers, tier) {
		return
	}
	lower := strings.ToLower(text)
	for _, family := range constants.CommandFamilies {
		mentioned := false
		for _, sub := range family.Substrings {
			if strings.Contains(lower, sub) {
				mentioned = true
				break
			}
		}
		if !mentioned {
			report.AddWarning(fmt.Sprintf(
				"tier '%s' quality gates should include a %s command", tier, family.Name))
		}
	}
}

// checkExamples verifies the Examples section contains at least one code
// fence and warns about fences without a language tag. A missing section is
// skipped silently.
func checkExamples(sections *parser.Sections, lineOffset int, report *Report) {
	text, ok := sections.Extract(constants.ExamplesSection)
	if !ok {
		return
	}
	section, _ := sections.Find(constants.ExamplesSection)
	sectionChecksLog.Printf("Checking examples: size=%d bytes", len(text))

	fences := 0
	inFence := false
	for i, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimRight(line, "\r")
		if !strings.HasPrefix(trimmed, "```") {
			continue
		}
		if inFence {
			inFence = false
			continue
		}
		inFence = true
		fences++
		if strings.TrimSpace(strings.TrimPrefix(trimmed, "```")) == "" {
			report.AddWarningAt(fmt.Sprintf(
				"code fence in '## %s' has no language tag", constants.ExamplesSection),
				section.Line+i+1+lineOffset)
		}
	}

	if fences == 0 {
		report.AddError(fmt.Sprintf(
			"section '## %s' must contain at least one code fence", constants.ExamplesSection))
	}
}
