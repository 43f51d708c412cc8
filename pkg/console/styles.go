// Package console provides styled terminal output helpers: status message
// formatting and a plain table renderer. Validation logic keeps its messages
// as plain text; styling is applied only at the CLI boundary.
package console

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

var (
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "124", Dark: "196"})
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "136", Dark: "220"})
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "28", Dark: "42"})
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "33", Dark: "75"})
	dimStyle     = lipgloss.NewStyle().Faint(true)
)

// FormatErrorMessage formats an error message for console output.
func FormatErrorMessage(msg string) string {
	return errorStyle.Render("✗ " + msg)
}

// FormatWarningMessage formats a warning message for console output.
func FormatWarningMessage(msg string) string {
	return warningStyle.Render("⚠ " + msg)
}

// FormatSuccessMessage formats a success message for console output.
func FormatSuccessMessage(msg string) string {
	return successStyle.Render("✓ " + msg)
}

// FormatInfoMessage formats an informational message for console output.
func FormatInfoMessage(msg string) string {
	return infoStyle.Render("ℹ " + msg)
}

// FormatDimMessage formats secondary detail (line references, counts).
func FormatDimMessage(msg string) string {
	return dimStyle.Render(msg)
}

// FormatLocationMessage formats a file:line reference for appending to a
// finding message.
func FormatLocationMessage(path string, line int) string {
	if line > 0 {
		return FormatDimMessage(fmt.Sprintf("(%s:%d)", path, line))
	}
	return FormatDimMessage(fmt.Sprintf("(%s)", path))
}
