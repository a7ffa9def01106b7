//go:build !integration

package workflow

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildRunArgs(t *testing.T) {
	t.Run("with inputs", func(t *testing.T) {
		args := BuildRunArgs("Deploy", "owner/repo", "main", Inputs{
			{Name: "environment", Value: "staging"},
			{Name: "version", Value: "2.0.0"},
		})

		assert.Equal(t, []string{
			"workflow", "run", "Deploy", "-R", "owner/repo", "--ref", "main",
			"-f", "environment=staging", "-f", "version=2.0.0",
		}, args, "Argument vector should match exactly")
	})

	t.Run("without inputs", func(t *testing.T) {
		args := BuildRunArgs("Deploy", "owner/repo", "main", nil)

		assert.Equal(t, []string{"workflow", "run", "Deploy", "-R", "owner/repo", "--ref", "main"}, args, "No -f pairs should be added")
	})

	t.Run("values are not quoted", func(t *testing.T) {
		args := BuildRunArgs("CI", "o/r", "feature/x", Inputs{{Name: "message", Value: "hello world=1"}})

		assert.Equal(t, "message=hello world=1", args[len(args)-1], "Value should be passed verbatim")
	})

	t.Run("input order is kept", func(t *testing.T) {
		args := BuildRunArgs("CI", "o/r", "main", Inputs{{Name: "z", Value: "1"}, {Name: "a", Value: "2"}})

		assert.Equal(t, []string{"-f", "z=1", "-f", "a=2"}, args[7:], "Inputs should follow their order")
	})
}

func TestRunWorkflow(t *testing.T) {
	args := BuildRunArgs("Deploy", "owner/repo", "main", nil)

	t.Run("success", func(t *testing.T) {
		exec := newFakeExecutor()
		exec.outputs["workflow run Deploy -R owner/repo --ref main"] = "https://github.com/owner/repo/actions/runs/1\n"

		out, err := NewClient(exec, false).RunWorkflow(context.Background(), args)
		require.NoError(t, err, "Run should succeed")
		assert.Equal(t, "https://github.com/owner/repo/actions/runs/1", out, "Output should be trimmed")
	})

	t.Run("failure", func(t *testing.T) {
		exec := newFakeExecutor()
		exec.errs["workflow run Deploy -R owner/repo --ref main"] = errors.New("HTTP 422: Workflow does not have 'workflow_dispatch' trigger")

		_, err := NewClient(exec, false).RunWorkflow(context.Background(), args)
		require.Error(t, err, "Run failure should propagate")
		assert.Contains(t, err.Error(), "workflow_dispatch", "Error should wrap gh's message")
	})
}

func TestOpenInBrowser(t *testing.T) {
	exec := newFakeExecutor()

	require.NoError(t, NewClient(exec, false).OpenInBrowser(context.Background(), "Deploy", "owner/repo"), "Opening should succeed")
	assert.Equal(t, [][]string{{"workflow", "view", "Deploy", "-R", "owner/repo", "--web"}}, exec.interactive, "Should run gh workflow view --web interactively")

	exec.errs["workflow view Deploy -R owner/repo --web"] = errors.New("no browser")
	err := NewClient(exec, false).OpenInBrowser(context.Background(), "Deploy", "owner/repo")
	require.Error(t, err, "Browser failure should propagate")
}
