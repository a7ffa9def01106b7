package workflow

import (
	"context"
	"fmt"
	"strings"

	gh "github.com/cli/go-gh/v2"
	"github.com/gh-dispatch/gh-dispatch/pkg/console"
	"github.com/gh-dispatch/gh-dispatch/pkg/logger"
)

var githubCLILog = logger.New("workflow:github_cli")

// Executor runs gh subcommands.
type Executor interface {
	// Exec runs gh with args and returns its stdout.
	Exec(ctx context.Context, args ...string) ([]byte, error)
	// ExecInteractive runs gh with args attached to the terminal.
	ExecInteractive(ctx context.Context, args ...string) error
}

type ghExecutor struct{}

// NewGHExecutor returns an Executor backed by the gh binary.
func NewGHExecutor() Executor {
	return ghExecutor{}
}

func (ghExecutor) Exec(ctx context.Context, args ...string) ([]byte, error) {
	stdout, stderr, err := gh.ExecContext(ctx, args...)
	if err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return nil, fmt.Errorf("%w: %s", err, msg)
		}
		return nil, err
	}
	return stdout.Bytes(), nil
}

func (ghExecutor) ExecInteractive(ctx context.Context, args ...string) error {
	return gh.ExecInteractive(ctx, args...)
}

// Client runs the gh invocations gh-dispatch needs.
type Client struct {
	exec    Executor
	verbose bool
}

// NewClient creates a Client. With verbose set every gh command is printed to
// stderr before it runs.
func NewClient(exec Executor, verbose bool) *Client {
	return &Client{exec: exec, verbose: verbose}
}

// runGH runs gh while showing a spinner with spinnerMessage.
func (c *Client) runGH(ctx context.Context, spinnerMessage string, args ...string) ([]byte, error) {
	if githubCLILog.Enabled() {
		githubCLILog.Printf("Running %s", FormatCommand(args))
	}
	console.LogVerbose(c.verbose, "Running: "+FormatCommand(args))

	spinner := console.NewSpinner(spinnerMessage)
	spinner.Start()
	out, err := c.exec.Exec(ctx, args...)
	spinner.Stop()

	if err != nil {
		githubCLILog.Printf("gh %s failed: %v", args[0], err)
	}
	return out, err
}

// IsLoggedIn reports whether "gh auth status" succeeds. A missing gh binary
// and an unauthenticated gh both report false.
func (c *Client) IsLoggedIn(ctx context.Context) bool {
	_, err := c.runGH(ctx, "Checking GitHub authentication...", "auth", "status")
	githubCLILog.Printf("Authentication check: loggedIn=%v", err == nil)
	return err == nil
}

// FormatCommand renders gh args as a shell-like command line for display.
func FormatCommand(args []string) string {
	return "gh " + strings.Join(args, " ")
}
