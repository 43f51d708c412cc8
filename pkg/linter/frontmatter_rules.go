package linter

import (
	"fmt"
	"regexp"
	"slices"
	"strings"

	"golang.org/x/mod/semver"

	"github.com/cartforge/cartlint/pkg/constants"
	"github.com/cartforge/cartlint/pkg/logger"
	"github.com/cartforge/cartlint/pkg/parser"
	"github.com/cartforge/cartlint/pkg/registry"
)

var frontmatterRulesLog = logger.New("linter:frontmatter_rules")

// versionPrefixPattern requires a major.minor.patch prefix; trailing
// annotation after the third segment is tolerated.
var versionPrefixPattern = regexp.MustCompile(`^(\d+\.\d+\.\d+)`)

// validateFrontmatter runs the field-level rules over a parsed header block
// and returns the resolved stack identifier, or "" when the stack field is
// absent or does not resolve. All rules are independent: a missing field
// never suppresses the checks of the others.
func validateFrontmatter(frontmatter map[string]any, reg *registry.Registry, report *Report) string {
	frontmatterRulesLog.Printf("Validating frontmatter fields: present=%d", len(frontmatter))

	for _, violation := range parser.ValidateFrontmatterShape(frontmatter) {
		report.AddError(violation)
	}

	for _, field := range constants.RequiredFrontmatterFields {
		if _, ok := frontmatter[field]; !ok {
			report.AddError(fmt.Sprintf("missing required front matter field '%s'", field))
		}
	}

	if value, ok := frontmatter["cartridge"]; ok {
		if marker, isBool := value.(bool); !isBool || !marker {
			report.AddError(fmt.Sprintf("field 'cartridge' must be true, got %v", value))
		}
	}

	if value, ok := frontmatter["tier"]; ok {
		tier := stringify(value)
		if !slices.Contains(constants.Tiers, tier) {
			report.AddError(fmt.Sprintf("invalid tier '%s' (allowed: %s)", tier, strings.Join(constants.Tiers, ", ")))
		}
	}

	if value, ok := frontmatter["version"]; ok {
		version := stringify(value)
		if m := versionPrefixPattern.FindStringSubmatch(version); m == nil {
			report.AddError(fmt.Sprintf("version '%s' must start with major.minor.patch", version))
		} else if !semver.IsValid("v" + m[1]) {
			// Catches shapes the prefix pattern tolerates but semver does
			// not, such as zero-padded segments.
			report.AddError(fmt.Sprintf("version '%s' has a malformed major.minor.patch prefix", version))
		} else {
			frontmatterRulesLog.Printf("Version prefix %s canonicalized as %s", m[1], semver.Canonical("v"+m[1]))
		}
	}

	if value, ok := frontmatter["status"]; ok {
		status := stringify(value)
		if !slices.Contains(constants.Statuses, status) {
			report.AddError(fmt.Sprintf("invalid status '%s' (allowed: %s)", status, strings.Join(constants.Statuses, ", ")))
		}
	}

	if value, ok := frontmatter["owner"]; ok {
		owner := stringify(value)
		if !strings.HasPrefix(owner, constants.OwnerSigil) {
			report.AddWarning(fmt.Sprintf("owner '%s' should start with '%s'", owner, constants.OwnerSigil))
		}
	}

	resolved := ""
	if value, ok := frontmatter["stack"]; ok {
		stackID := stringify(value)
		if _, found := reg.Resolve(stackID); found {
			resolved = stackID
		} else {
			report.AddError(fmt.Sprintf("unknown stack '%s' (available: %s)", stackID, strings.Join(reg.IDs(), ", ")))
		}
	}

	frontmatterRulesLog.Printf("Frontmatter field validation done: stack=%q, errors=%d, warnings=%d",
		resolved, len(report.Errors), len(report.Warnings))
	return resolved
}

// stringify renders a frontmatter scalar for rule checks and messages.
func stringify(value any) string {
	if s, ok := value.(string); ok {
		return s
	}
	return fmt.Sprintf("%v", value)
}
