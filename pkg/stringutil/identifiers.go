// Package stringutil holds small string helpers shared by the CLI.
package stringutil

import (
	"path"
	"strings"
)

// WorkflowFileName returns the file name of a workflow path as reported by
// "gh workflow list".
//
// Examples:
//
//	WorkflowFileName(".github/workflows/deploy.yml")  // returns "deploy.yml"
//	WorkflowFileName("deploy.yaml")                   // returns "deploy.yaml"
//	WorkflowFileName("")                              // returns ""
func WorkflowFileName(workflowPath string) string {
	if workflowPath == "" {
		return ""
	}
	return path.Base(workflowPath)
}

// Truncate shortens s to at most maxLen runes, ending it with "..." when cut.
//
// Examples:
//
//	Truncate("environment=staging", 11)  // returns "environm..."
//	Truncate("short", 10)                // returns "short"
func Truncate(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return string(runes[:maxLen])
	}
	return strings.TrimSpace(string(runes[:maxLen-3])) + "..."
}
