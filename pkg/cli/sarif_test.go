package cli

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cartforge/cartlint/pkg/linter"
)

type sarifDocument struct {
	Version string `json:"version"`
	Runs    []struct {
		Tool struct {
			Driver struct {
				Name    string `json:"name"`
				Version string `json:"version"`
			} `json:"driver"`
		} `json:"tool"`
		Results []struct {
			RuleID  string `json:"ruleId"`
			Level   string `json:"level"`
			Message struct {
				Text string `json:"text"`
			} `json:"message"`
			Locations []struct {
				PhysicalLocation struct {
					ArtifactLocation struct {
						URI string `json:"uri"`
					} `json:"artifactLocation"`
					Region struct {
						StartLine int `json:"startLine"`
					} `json:"region"`
				} `json:"physicalLocation"`
			} `json:"locations"`
		} `json:"results"`
	} `json:"runs"`
}

func TestWriteSARIF(t *testing.T) {
	report := &linter.Report{}
	report.AddErrorAt("forbidden technology 'vue' referenced (import), stack 'react-fastapi' forbids it", 14)
	report.AddWarning("owner 'team' should start with '@'")

	var out strings.Builder
	require.NoError(t, writeSARIF(&out, []DocumentResult{
		{Path: "doc.cartridge.md", Report: report},
	}, "1.2.3"))

	var doc sarifDocument
	require.NoError(t, json.Unmarshal([]byte(out.String()), &doc))

	assert.Equal(t, "2.1.0", doc.Version)
	require.Len(t, doc.Runs, 1)
	run := doc.Runs[0]
	assert.Equal(t, "cartlint", run.Tool.Driver.Name)
	assert.Equal(t, "1.2.3", run.Tool.Driver.Version)

	require.Len(t, run.Results, 2)

	errResult := run.Results[0]
	assert.Equal(t, "cartridge-validation", errResult.RuleID)
	assert.Equal(t, "error", errResult.Level)
	assert.Contains(t, errResult.Message.Text, "forbidden technology 'vue'")
	require.Len(t, errResult.Locations, 1)
	assert.Equal(t, "doc.cartridge.md", errResult.Locations[0].PhysicalLocation.ArtifactLocation.URI)
	assert.Equal(t, 14, errResult.Locations[0].PhysicalLocation.Region.StartLine)

	warnResult := run.Results[1]
	assert.Equal(t, "warning", warnResult.Level)
	assert.Zero(t, warnResult.Locations[0].PhysicalLocation.Region.StartLine)
}

func TestWriteSARIFUnreadableDocument(t *testing.T) {
	var out strings.Builder
	require.NoError(t, writeSARIF(&out, []DocumentResult{
		{Path: "gone.cartridge.md", Err: assert.AnError},
	}, ""))

	var doc sarifDocument
	require.NoError(t, json.Unmarshal([]byte(out.String()), &doc))
	require.Len(t, doc.Runs, 1)
	require.Len(t, doc.Runs[0].Results, 1)
	assert.Equal(t, "error", doc.Runs[0].Results[0].Level)
}
