package workflow

import (
	"context"
	"fmt"
	"strings"

	"github.com/gh-dispatch/gh-dispatch/pkg/logger"
)

var runLog = logger.New("workflow:run")

// BuildRunArgs builds the "gh workflow run" argument vector. Each input adds a
// "-f name=value" pair in order; values are passed unquoted.
func BuildRunArgs(workflowName, repo, branch string, inputs Inputs) []string {
	args := []string{"workflow", "run", workflowName, "-R", repo, "--ref", branch}
	for _, input := range inputs {
		args = append(args, "-f", input.Name+"="+input.Value)
	}
	return args
}

// RunWorkflow dispatches a workflow with args built by BuildRunArgs and
// returns gh's trimmed stdout.
func (c *Client) RunWorkflow(ctx context.Context, args []string) (string, error) {
	runLog.Printf("Dispatching workflow: args=%v", args)

	out, err := c.runGH(ctx, "Triggering workflow...", args...)
	if err != nil {
		return "", fmt.Errorf("failed to run workflow: %w", err)
	}
	return strings.TrimSpace(string(out)), nil
}

// OpenInBrowser opens the workflow's page with "gh workflow view --web".
func (c *Client) OpenInBrowser(ctx context.Context, workflowName, repo string) error {
	runLog.Printf("Opening workflow in browser: workflow=%s, repo=%s", workflowName, repo)

	if err := c.exec.ExecInteractive(ctx, "workflow", "view", workflowName, "-R", repo, "--web"); err != nil {
		return fmt.Errorf("failed to open workflow '%s' in browser: %w", workflowName, err)
	}
	return nil
}
