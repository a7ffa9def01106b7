// Package console formats user-facing terminal output and runs interactive
// prompts.
//
// Messages are styled with lipgloss when stderr is a terminal and returned as
// plain text otherwise, so callers can always write them to os.Stderr.
// Prompts are built on huh and refuse to run without a terminal.
package console

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/gh-dispatch/gh-dispatch/pkg/tty"
)

var (
	successStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#3FB950"))
	infoStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#58A6FF"))
	warningStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#D29922"))
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#F85149")).Bold(true)
	commandStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#BC8CFF"))
	verboseStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E7681")).Italic(true)
)

// applyStyle renders text with style only when stderr is a terminal.
func applyStyle(style lipgloss.Style, text string) string {
	if !tty.IsStderrTerminal() {
		return text
	}
	return style.Render(text)
}

// FormatSuccessMessage formats a success message.
func FormatSuccessMessage(message string) string {
	return applyStyle(successStyle, "✓ ") + message
}

// FormatInfoMessage formats an informational message.
func FormatInfoMessage(message string) string {
	return applyStyle(infoStyle, "ℹ ") + message
}

// FormatWarningMessage formats a warning message.
func FormatWarningMessage(message string) string {
	return applyStyle(warningStyle, "⚠ ") + message
}

// FormatErrorMessage formats an error message.
func FormatErrorMessage(message string) string {
	return applyStyle(errorStyle, "✗ ") + message
}

// FormatCommandMessage formats a shell command for display.
func FormatCommandMessage(command string) string {
	return applyStyle(commandStyle, "$ "+command)
}

// FormatVerboseMessage formats a message that is only shown in verbose mode.
func FormatVerboseMessage(message string) string {
	return applyStyle(verboseStyle, message)
}

// FormatErrorWithSuggestions formats an error followed by a bulleted list of suggestions.
func FormatErrorWithSuggestions(message string, suggestions []string) string {
	var b strings.Builder
	b.WriteString(FormatErrorMessage(message))
	if len(suggestions) > 0 {
		b.WriteString("\n\nSuggestions:")
		for _, s := range suggestions {
			fmt.Fprintf(&b, "\n  • %s", s)
		}
	}
	return b.String()
}

// LogVerbose writes message to stderr when verbose is set.
func LogVerbose(verbose bool, message string) {
	if verbose {
		fmt.Fprintln(os.Stderr, FormatVerboseMessage(message))
	}
}
