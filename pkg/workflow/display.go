package workflow

import (
	"fmt"
	"strings"

	"github.com/gh-dispatch/gh-dispatch/pkg/constants"
)

// BuildDisplayInfo renders the summary shown before a workflow is dispatched.
func BuildDisplayInfo(workflowName, repo, branch string, inputs Inputs) string {
	lines := []string{
		"Running Workflow : " + workflowName,
		"Repository       : " + repo,
		"Branch           : " + branch,
		"",
		"Inputs:",
	}
	for _, input := range inputs {
		lines = append(lines, fmt.Sprintf("%*s : %s", constants.DisplayKeyWidth, input.Name, input.Value))
	}
	return strings.Join(lines, "\n")
}
