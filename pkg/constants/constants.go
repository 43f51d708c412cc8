// Package constants defines the fixed contract values cartlint validates
// against: the frontmatter field set, the tier and status enums, and the
// canonical section list. Existing cartridge documents depend on these exact
// names and this exact order, so changes here are breaking changes.
package constants

// FrontmatterDelimiter is the line that opens and closes the header block.
const FrontmatterDelimiter = "---"

// CartridgeFileSuffix identifies cartridge documents during a batch walk.
const CartridgeFileSuffix = ".cartridge.md"

// OwnerSigil is the expected prefix of the owner handle.
const OwnerSigil = "@"

// RequiredFrontmatterFields are the seven header fields every cartridge
// must declare.
var RequiredFrontmatterFields = []string{
	"cartridge",
	"name",
	"tier",
	"stack",
	"version",
	"owner",
	"status",
}

// Tiers is the closed set of cartridge strictness levels.
var Tiers = []string{"prototype", "internal", "production"}

// StrictTiers are the tiers whose Quality Gates section must name the
// conventional lint, type-check, and test command families.
var StrictTiers = []string{"internal", "production"}

// Statuses is the closed set of cartridge lifecycle states.
var Statuses = []string{"draft", "stable", "deprecated"}

// RequiredSections lists the canonical level-2 sections of a cartridge body,
// in canonical order. Section matching is a case-sensitive prefix match, so
// headings may carry trailing annotation ("Examples (TypeScript)").
var RequiredSections = []string{
	"Intent",
	"Inputs",
	"Outputs",
	"Directory Layout",
	"Conventions",
	"Dependencies",
	"Quality Gates",
	"Examples",
	"Anti-Patterns",
	"Migration Notes",
	"References",
}

// QualityGatesSection and ExamplesSection name the two sections with
// dedicated content checks.
const (
	QualityGatesSection = "Quality Gates"
	ExamplesSection     = "Examples"
)

// ShellFenceLanguages are the fence tags accepted as runnable shell blocks
// in the Quality Gates section.
var ShellFenceLanguages = []string{"bash", "sh", "shell", "zsh"}

// CommandFamilies maps each quality-gate command family to the substrings
// that count as a mention of it.
var CommandFamilies = []struct {
	Name       string
	Substrings []string
}{
	{Name: "lint", Substrings: []string{"lint"}},
	{Name: "type check", Substrings: []string{"typecheck", "type-check", "tsc"}},
	{Name: "test", Substrings: []string{"test"}},
}
