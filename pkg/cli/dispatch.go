package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/charmbracelet/huh"
	"github.com/gh-dispatch/gh-dispatch/pkg/config"
	"github.com/gh-dispatch/gh-dispatch/pkg/console"
	"github.com/gh-dispatch/gh-dispatch/pkg/logger"
	"github.com/gh-dispatch/gh-dispatch/pkg/workflow"
)

var dispatchLog = logger.New("cli:dispatch")

// DispatchConfig holds the options of the interactive dispatch flow.
type DispatchConfig struct {
	ConfigPath string
	Verbose    bool
	// DryRun prints the final gh command instead of running it.
	DryRun bool
}

// dispatchTarget is what will be passed to "gh workflow run".
type dispatchTarget struct {
	workflowName string
	branch       string
	inputs       workflow.Inputs
}

// RunDispatch walks the user from repository selection to a dispatched
// workflow using the gh binary and terminal prompts. A deliberate
// cancellation returns nil.
func RunDispatch(ctx context.Context, cfg DispatchConfig) error {
	return runDispatch(ctx, cfg, workflow.NewClient(workflow.NewGHExecutor(), cfg.Verbose), NewPrompter())
}

func runDispatch(ctx context.Context, cfg DispatchConfig, client *workflow.Client, prompter Prompter) error {
	dispatchLog.Printf("Starting dispatch: config=%s, verbose=%v, dryRun=%v", cfg.ConfigPath, cfg.Verbose, cfg.DryRun)

	if !client.IsLoggedIn(ctx) {
		fmt.Fprintln(os.Stderr, console.FormatErrorWithSuggestions("GitHub CLI is not authenticated", []string{
			"Run 'gh auth login'",
			"Check that gh is installed, or point GH_PATH at it",
		}))
		return errors.New("not logged in to GitHub CLI, run 'gh auth login' first")
	}

	repoConfig, err := config.Load(cfg.ConfigPath)
	if err != nil {
		return err
	}

	names := repoConfig.ListRepoNames()
	if len(names) == 0 {
		return fmt.Errorf("no repositories configured in %s", cfg.ConfigPath)
	}
	repo, err := prompter.SelectRepository(names)
	if err != nil {
		return cancelledOr(err, "failed to select repository")
	}

	branches := repoConfig.BranchesFor(repo)
	if len(branches) == 0 {
		return fmt.Errorf("no branches configured for repository %s", repo)
	}
	branch, err := prompter.SelectBranch(branches)
	if err != nil {
		return cancelledOr(err, "failed to select branch")
	}
	dispatchLog.Printf("Selected repo=%s, branch=%s", repo, branch)

	workflows, err := client.ListWorkflows(ctx, repo)
	if err != nil {
		return err
	}
	active := workflow.FilterActive(workflows)
	bookmarks := repoConfig.BookmarksFor(repo)
	if len(active) == 0 && len(bookmarks) == 0 {
		return fmt.Errorf("no active workflows or bookmarks found for repository %s", repo)
	}

	selection, err := prompter.SelectTarget(bookmarks, active)
	if err != nil {
		return fmt.Errorf("no workflow or bookmark selected: %w", err)
	}
	dispatchLog.Printf("Selected %s", selection)

	var target dispatchTarget
	switch selection.Kind {
	case workflow.SelectionBookmark:
		if selection.BookmarkIndex < 0 || selection.BookmarkIndex >= len(bookmarks) {
			return fmt.Errorf("invalid selection: %s does not exist", selection)
		}
		bm := bookmarks[selection.BookmarkIndex]
		target = dispatchTarget{workflowName: bm.Workflow, branch: bm.Branch, inputs: replayInputs(bm.Inputs)}

	case workflow.SelectionWorkflow:
		wf, ok := workflow.FindWorkflow(active, selection.WorkflowID)
		if !ok {
			return fmt.Errorf("invalid selection: %s is not an active workflow", selection)
		}

		// The schema is fetched by ID, but the run, the browser and any saved
		// bookmark use the name. gh resolves that name itself, so two active
		// workflows sharing it can make the run target the other one.
		specs, err := client.FetchInputs(ctx, strconv.FormatInt(wf.ID, 10), repo, branch)
		if err != nil {
			return err
		}
		inputs, err := prompter.CollectInputs(ctx, BuildInputPrompts(specs))
		if err != nil {
			return cancelledOr(err, "failed to collect workflow inputs")
		}
		target = dispatchTarget{workflowName: wf.Name, branch: branch, inputs: inputs}

		offerBookmark(cfg.ConfigPath, repo, target, prompter)

	default:
		return fmt.Errorf("invalid selection: %s", selection)
	}

	fmt.Fprintln(os.Stderr, workflow.BuildDisplayInfo(target.workflowName, repo, target.branch, target.inputs))
	fmt.Fprintln(os.Stderr, "")

	args := workflow.BuildRunArgs(target.workflowName, repo, target.branch, target.inputs)
	if cfg.DryRun {
		fmt.Fprintln(os.Stderr, console.FormatInfoMessage("Dry run, the workflow was not dispatched:"))
		fmt.Fprintln(os.Stderr, console.FormatCommandMessage(workflow.FormatCommand(args)))
		return nil
	}

	run, err := confirm(prompter, "Run this workflow?", "")
	if err != nil {
		return err
	}
	if run {
		out, err := client.RunWorkflow(ctx, args)
		if err != nil {
			return err
		}
		fmt.Fprintln(os.Stderr, console.FormatSuccessMessage(fmt.Sprintf("Dispatched '%s' on %s@%s", target.workflowName, repo, target.branch)))
		if out != "" {
			fmt.Fprintln(os.Stderr, out)
		}
	} else {
		fmt.Fprintln(os.Stderr, console.FormatInfoMessage("Skipped running the workflow"))
	}

	open, err := confirm(prompter, "Open the workflow in your browser?", "")
	if err != nil {
		return err
	}
	if open {
		return client.OpenInBrowser(ctx, target.workflowName, repo)
	}
	return nil
}

// offerBookmark asks whether to save target as a bookmark. Failures are
// reported as warnings and never stop the dispatch.
func offerBookmark(configPath, repo string, target dispatchTarget, prompter Prompter) {
	save, err := confirm(prompter, "Save these inputs as a bookmark?", "")
	if err != nil || !save {
		return
	}

	nickname, err := prompter.Nickname()
	if err != nil {
		dispatchLog.Printf("Nickname prompt failed: %v", err)
		return
	}

	bookmark := config.Bookmark{
		Nickname: nickname,
		Workflow: target.workflowName,
		Branch:   target.branch,
		Inputs:   savedInputs(target.inputs),
	}
	if err := config.SaveBookmark(configPath, repo, bookmark); err != nil {
		fmt.Fprintln(os.Stderr, console.FormatWarningMessage(fmt.Sprintf("Could not save bookmark: %v", err)))
		return
	}
	fmt.Fprintln(os.Stderr, console.FormatSuccessMessage(fmt.Sprintf("Saved bookmark '%s'", nickname)))
}

// confirm treats an aborted confirmation as "no".
func confirm(prompter Prompter, title, description string) (bool, error) {
	ok, err := prompter.Confirm(title, description)
	if errors.Is(err, huh.ErrUserAborted) {
		return false, nil
	}
	return ok, err
}

// cancelledOr returns nil after telling the user they cancelled, or wraps err.
func cancelledOr(err error, msg string) error {
	if errors.Is(err, huh.ErrUserAborted) {
		dispatchLog.Print("Cancelled by user")
		fmt.Fprintln(os.Stderr, console.FormatInfoMessage("Cancelled"))
		return nil
	}
	return fmt.Errorf("%s: %w", msg, err)
}

// replayInputs turns saved bookmark inputs into dispatch inputs, keeping
// their saved order.
func replayInputs(saved config.Inputs) workflow.Inputs {
	inputs := make(workflow.Inputs, len(saved))
	for i, input := range saved {
		inputs[i] = workflow.Input(input)
	}
	return inputs
}

func savedInputs(inputs workflow.Inputs) config.Inputs {
	saved := make(config.Inputs, len(inputs))
	for i, input := range inputs {
		saved[i] = config.Input(input)
	}
	return saved
}
