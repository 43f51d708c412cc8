package linter

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cartforge/cartlint/pkg/registry"
)

func scan(t *testing.T, body string, profile *registry.StackProfile) *Report {
	t.Helper()
	report := &Report{}
	scanCompliance(body, profile, 0, report)
	return report
}

func TestGenericPatternKinds(t *testing.T) {
	profile := &registry.StackProfile{ID: "test-stack", Forbidden: []string{"angular"}}

	tests := []struct {
		name string
		line string
		kind string
	}{
		{
			name: "import style reference",
			line: `import { Component } from "@angular/core"`,
			kind: "import",
		},
		{
			name: "require call reference",
			line: `const ng = require("angular")`,
			kind: "require",
		},
		{
			name: "from clause reference",
			line: `export * from "angular-forms"`,
			kind: "from",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report := scan(t, tt.line, profile)
			found := false
			for _, f := range report.Errors {
				if strings.Contains(f.Message, "("+tt.kind+")") {
					found = true
					assert.Equal(t, 1, f.Line)
				}
			}
			assert.True(t, found, "expected a %s finding: %v", tt.kind, report.Errors)
		})
	}
}

func TestSpecializedPatternsRequireForbiddenToken(t *testing.T) {
	// The redux hook idiom only fires when redux is actually forbidden.
	body := "const items = useSelector(selectItems)"

	forbidding := &registry.StackProfile{ID: "s", Forbidden: []string{"redux"}}
	report := scan(t, body, forbidding)
	assert.NotEmpty(t, report.Errors)
	assert.Contains(t, report.Errors[0].Message, "redux hook")

	indifferent := &registry.StackProfile{ID: "s", Forbidden: []string{"vue"}}
	report = scan(t, body, indifferent)
	assert.Empty(t, report.Errors)
}

func TestSpecializedReactHooks(t *testing.T) {
	profile := &registry.StackProfile{ID: "s", Forbidden: []string{"react"}}
	report := scan(t, "const [n, setN] = useState(0)", profile)
	assert.NotEmpty(t, report.Errors)
	assert.Contains(t, report.Errors[0].Message, "react hook")
}

func TestForbiddenTokenCaseInsensitiveInSpecifier(t *testing.T) {
	profile := &registry.StackProfile{ID: "s", Forbidden: []string{"django"}}
	report := scan(t, `IMPORT settings FROM "Django.conf"`, profile)
	assert.NotEmpty(t, report.Errors)
}

func TestRequiredMentionStripsVersionSuffix(t *testing.T) {
	profile := &registry.StackProfile{
		ID:        "s",
		Framework: "FastAPI 0.110",
		Language:  "python@3.12",
	}

	report := scan(t, "We scaffold a fastapi app in Python.", profile)
	assert.Empty(t, report.Warnings)

	report = scan(t, "Nothing relevant here.", profile)
	assert.Len(t, report.Warnings, 2)
	assert.Contains(t, report.Warnings[0].Message, "framework 'FastAPI 0.110'")
}

func TestComplianceCleanBody(t *testing.T) {
	profile := &registry.StackProfile{ID: "s", Forbidden: []string{"vue", "prisma"}}
	report := scan(t, "Plain prose about the service.", profile)
	assert.Empty(t, report.Errors)
}
