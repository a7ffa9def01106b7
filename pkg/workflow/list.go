package workflow

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/gh-dispatch/gh-dispatch/pkg/constants"
	"github.com/gh-dispatch/gh-dispatch/pkg/logger"
	"github.com/gh-dispatch/gh-dispatch/pkg/sliceutil"
)

var listLog = logger.New("workflow:list")

// Summary describes a workflow as reported by "gh workflow list".
type Summary struct {
	Name  string `json:"name"`
	Path  string `json:"path"`
	ID    int64  `json:"id"`
	State string `json:"state"`
}

// IsActive reports whether the workflow is enabled.
func (s Summary) IsActive() bool {
	return s.State == constants.ActiveWorkflowState
}

// ListWorkflows returns every workflow of repo. Results are never cached.
func (c *Client) ListWorkflows(ctx context.Context, repo string) ([]Summary, error) {
	listLog.Printf("Listing workflows: repo=%s", repo)

	out, err := c.runGH(ctx, "Listing workflows...", "workflow", "list", "-R", repo, "--json", constants.WorkflowListFields)
	if err != nil {
		return nil, fmt.Errorf("failed to list workflows in repository '%s': %w", repo, err)
	}

	workflows, err := ParseWorkflowList(out)
	if err != nil {
		return nil, err
	}

	listLog.Printf("Found %d workflows in %s", len(workflows), repo)
	return workflows, nil
}

// ParseWorkflowList decodes the JSON array printed by "gh workflow list --json".
func ParseWorkflowList(content []byte) ([]Summary, error) {
	var workflows []Summary
	if err := json.Unmarshal(content, &workflows); err != nil {
		return nil, fmt.Errorf("failed to parse workflow list response: %w", err)
	}
	return workflows, nil
}

// FilterActive keeps active workflows in their original relative order.
func FilterActive(workflows []Summary) []Summary {
	return sliceutil.Filter(workflows, Summary.IsActive)
}
