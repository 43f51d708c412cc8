package linter

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/cartforge/cartlint/pkg/logger"
	"github.com/cartforge/cartlint/pkg/registry"
)

var complianceRulesLog = logger.New("linter:compliance_rules")

// compliancePattern is one detection rule for a forbidden technology.
type compliancePattern struct {
	kind    string
	pattern *regexp.Regexp
}

// genericPatterns builds the three module-specifier detection rules for a
// forbidden token: import-style, require-call, and from-clause references,
// each matching the token loosely embedded in a quoted specifier.
func genericPatterns(token string) []compliancePattern {
	quoted := regexp.QuoteMeta(token)
	return []compliancePattern{
		{kind: "import", pattern: regexp.MustCompile(`(?i)import\s+[^\n]*['"][^'"]*` + quoted + `[^'"]*['"]`)},
		{kind: "require", pattern: regexp.MustCompile(`(?i)require\s*\(\s*['"][^'"]*` + quoted + `[^'"]*['"]`)},
		{kind: "from", pattern: regexp.MustCompile(`(?i)from\s+['"][^'"]*` + quoted + `[^'"]*['"]`)},
	}
}

// specializedPatterns layers technology-specific heuristics on top of the
// generic rules. Detection is additive across layers: one violating line may
// legitimately produce several findings, and that redundancy is kept.
var specializedPatterns = map[string][]compliancePattern{
	"vue": {
		{kind: "vue instantiation", pattern: regexp.MustCompile(`new\s+Vue\s*\(`)},
		{kind: "vue component file", pattern: regexp.MustCompile(`['"][^'"]*\.vue['"]`)},
	},
	"redux": {
		{kind: "redux hook", pattern: regexp.MustCompile(`use(Selector|Dispatch)\s*\(`)},
	},
	"react": {
		{kind: "react hook", pattern: regexp.MustCompile(`use(State|Effect)\s*\(`)},
	},
}

// versionSuffixSeparators split a technology descriptor from its trailing
// version ("Python 3.12", "fastapi@0.100").
const versionSuffixSeparators = " @"

// scanCompliance checks the body against the resolved stack profile:
// forbidden-technology references are errors, and core stack technologies
// that are never mentioned produce advisory warnings. The caller must skip
// this scan entirely when no profile resolved.
func scanCompliance(body string, profile *registry.StackProfile, lineOffset int, report *Report) {
	complianceRulesLog.Printf("Scanning stack compliance: stack=%s, forbidden=%d", profile.ID, len(profile.Forbidden))

	lines := strings.Split(body, "\n")
	for _, token := range profile.Forbidden {
		rules := genericPatterns(token)
		if extra, ok := specializedPatterns[strings.ToLower(token)]; ok {
			rules = append(rules, extra...)
		}
		for _, rule := range rules {
			for i, line := range lines {
				if rule.pattern.MatchString(line) {
					report.AddErrorAt(fmt.Sprintf(
						"forbidden technology '%s' referenced (%s), stack '%s' forbids it",
						token, rule.kind, profile.ID), i+1+lineOffset)
				}
			}
		}
	}

	lowerBody := strings.ToLower(body)
	for _, tech := range profile.RequiredTechnologies() {
		name := tech.Name
		if i := strings.IndexAny(name, versionSuffixSeparators); i > 0 {
			name = name[:i]
		}
		if !strings.Contains(lowerBody, strings.ToLower(name)) {
			report.AddWarning(fmt.Sprintf(
				"expected %s '%s' is not mentioned anywhere in the document", tech.Role, tech.Name))
		}
	}
}
