//go:build !integration

package cli

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gh-dispatch/gh-dispatch/pkg/config"
	"github.com/gh-dispatch/gh-dispatch/pkg/workflow"
	"github.com/stretchr/testify/require"
)

// fakeGH answers gh invocations from canned output keyed by the joined args.
type fakeGH struct {
	outputs     map[string]string
	errs        map[string]error
	calls       []string
	interactive []string
}

func newFakeGH() *fakeGH {
	return &fakeGH{
		outputs: map[string]string{"auth status": ""},
		errs:    map[string]error{},
	}
}

func (f *fakeGH) Exec(_ context.Context, args ...string) ([]byte, error) {
	key := strings.Join(args, " ")
	f.calls = append(f.calls, key)
	if err, ok := f.errs[key]; ok {
		return nil, err
	}
	if out, ok := f.outputs[key]; ok {
		return []byte(out), nil
	}
	return nil, errors.New("unexpected gh invocation: " + key)
}

func (f *fakeGH) ExecInteractive(_ context.Context, args ...string) error {
	key := strings.Join(args, " ")
	f.interactive = append(f.interactive, key)
	return f.errs[key]
}

func (f *fakeGH) called(prefix string) bool {
	for _, call := range f.calls {
		if strings.HasPrefix(call, prefix) {
			return true
		}
	}
	return false
}

// fakePrompter answers prompts from its fields and records what it was shown.
type fakePrompter struct {
	repo         string
	repoErr      error
	branch       string
	branchErr    error
	selection    workflow.Selection
	selectionErr error
	values       map[string]string
	inputsErr    error
	confirms     map[string]bool
	nickname     string

	shownBookmarks []config.Bookmark
	shownWorkflows []workflow.Summary
	shownPrompts   []InputPrompt
	asked          []string
}

func (p *fakePrompter) SelectRepository(names []string) (string, error) {
	return p.repo, p.repoErr
}

func (p *fakePrompter) SelectBranch(branches []string) (string, error) {
	return p.branch, p.branchErr
}

func (p *fakePrompter) SelectTarget(bookmarks []config.Bookmark, workflows []workflow.Summary) (workflow.Selection, error) {
	p.shownBookmarks = bookmarks
	p.shownWorkflows = workflows
	return p.selection, p.selectionErr
}

func (p *fakePrompter) CollectInputs(_ context.Context, prompts []InputPrompt) (workflow.Inputs, error) {
	p.shownPrompts = prompts
	if p.inputsErr != nil {
		return nil, p.inputsErr
	}
	inputs := workflow.Inputs{}
	for _, prompt := range prompts {
		value := prompt.Default
		if v, ok := p.values[prompt.Name]; ok {
			value = v
		}
		inputs = append(inputs, workflow.Input{Name: prompt.Name, Value: value})
	}
	return inputs, nil
}

func (p *fakePrompter) Confirm(title, _ string) (bool, error) {
	p.asked = append(p.asked, title)
	return p.confirms[title], nil
}

func (p *fakePrompter) Nickname() (string, error) {
	return p.nickname, nil
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644), "Should write config fixture")
	return path
}
