package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/gh-dispatch/gh-dispatch/pkg/config"
	"github.com/gh-dispatch/gh-dispatch/pkg/console"
	"github.com/gh-dispatch/gh-dispatch/pkg/logger"
	"github.com/gh-dispatch/gh-dispatch/pkg/sliceutil"
	"github.com/gh-dispatch/gh-dispatch/pkg/stringutil"
	"github.com/gh-dispatch/gh-dispatch/pkg/workflow"
)

var prompterLog = logger.New("cli:prompter")

// Prompter asks the user for every decision of the dispatch flow.
// Aborted prompts return an error matching huh.ErrUserAborted.
type Prompter interface {
	SelectRepository(names []string) (string, error)
	SelectBranch(branches []string) (string, error)
	SelectTarget(bookmarks []config.Bookmark, workflows []workflow.Summary) (workflow.Selection, error)
	// CollectInputs runs prompts as one group, in order.
	CollectInputs(ctx context.Context, prompts []InputPrompt) (workflow.Inputs, error)
	Confirm(title, description string) (bool, error)
	Nickname() (string, error)
}

type terminalPrompter struct{}

// NewPrompter returns a Prompter that asks on the terminal.
func NewPrompter() Prompter {
	return terminalPrompter{}
}

func (terminalPrompter) SelectRepository(names []string) (string, error) {
	options := sliceutil.Map(names, func(name string) console.SelectOption {
		return console.SelectOption{Label: name, Value: name}
	})
	return console.PromptSelect("Select a repository", "", options)
}

func (terminalPrompter) SelectBranch(branches []string) (string, error) {
	options := sliceutil.Map(sliceutil.Deduplicate(branches), func(branch string) console.SelectOption {
		return console.SelectOption{Label: branch, Value: branch}
	})
	return console.PromptSelect("Select a branch", "", options)
}

func (terminalPrompter) SelectTarget(bookmarks []config.Bookmark, workflows []workflow.Summary) (workflow.Selection, error) {
	options := make([]huh.Option[workflow.Selection], 0, len(bookmarks)+len(workflows))
	for i, bm := range bookmarks {
		label := fmt.Sprintf("★ %s (%s @ %s)", bm.Nickname, bm.Workflow, bm.Branch)
		options = append(options, huh.NewOption(label, workflow.BookmarkSelection(i)))
	}
	for _, wf := range workflows {
		label := fmt.Sprintf("%s (%s)", wf.Name, stringutil.WorkflowFileName(wf.Path))
		options = append(options, huh.NewOption(label, workflow.WorkflowSelection(wf.ID)))
	}

	prompterLog.Printf("Offering %d bookmarks and %d workflows", len(bookmarks), len(workflows))
	return console.PromptSelectValue("Select a workflow or bookmark", "Bookmarks are marked with ★", options)
}

func (terminalPrompter) CollectInputs(ctx context.Context, prompts []InputPrompt) (workflow.Inputs, error) {
	if len(prompts) == 0 {
		return workflow.Inputs{}, nil
	}

	values := make([]string, len(prompts))
	fields := make([]huh.Field, len(prompts))
	for i, prompt := range prompts {
		values[i] = prompt.Default
		fields[i] = prompt.Build(&values[i])
	}

	if err := console.RunForm(ctx, fields...); err != nil {
		return nil, err
	}

	inputs := make(workflow.Inputs, len(prompts))
	for i, prompt := range prompts {
		inputs[i] = workflow.Input{Name: prompt.Name, Value: values[i]}
	}
	return inputs, nil
}

func (terminalPrompter) Confirm(title, description string) (bool, error) {
	return console.ConfirmAction(title, description)
}

func (terminalPrompter) Nickname() (string, error) {
	nickname, err := console.PromptInputWithValidation("Bookmark nickname", "Shown in the workflow list for this repository", "", validateNickname)
	return strings.TrimSpace(nickname), err
}

func validateNickname(s string) error {
	if strings.TrimSpace(s) == "" {
		return errors.New("nickname cannot be empty")
	}
	return nil
}
