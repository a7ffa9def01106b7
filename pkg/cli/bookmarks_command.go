package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/gh-dispatch/gh-dispatch/pkg/config"
	"github.com/gh-dispatch/gh-dispatch/pkg/console"
	"github.com/gh-dispatch/gh-dispatch/pkg/logger"
	"github.com/gh-dispatch/gh-dispatch/pkg/stringutil"
	"github.com/spf13/cobra"
)

var bookmarksLog = logger.New("cli:bookmarks_command")

const maxInputsColumnWidth = 60

// NewBookmarksCommand creates the bookmarks command.
func NewBookmarksCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bookmarks [repository]",
		Short: "List saved bookmarks",
		Long: `List the bookmarks saved in the configuration file, for every repository
or only for the given one.`,
		Args:              cobra.MaximumNArgs(1),
		ValidArgsFunction: CompleteRepositoryNames,
		RunE: func(cmd *cobra.Command, args []string) error {
			configPath, _, err := resolveGlobalFlags(cmd)
			if err != nil {
				return err
			}
			repo := ""
			if len(args) == 1 {
				repo = args[0]
			}
			return RunBookmarks(configPath, repo, cmd.OutOrStdout())
		},
	}
	return cmd
}

// RunBookmarks writes a table of the saved bookmarks to w. An empty repo
// lists every repository.
func RunBookmarks(configPath, repo string, w io.Writer) error {
	bookmarksLog.Printf("Listing bookmarks: config=%s, repo=%q", configPath, repo)

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	repos := cfg.Repos
	if repo != "" {
		found := cfg.FindRepository(repo)
		if found == nil {
			return &config.RepositoryNotFoundError{Name: repo}
		}
		repos = []config.Repository{*found}
	}

	var rows [][]string
	for _, r := range repos {
		for _, bm := range r.Bookmarks {
			rows = append(rows, []string{r.Name, bm.Nickname, bm.Workflow, bm.Branch, formatBookmarkInputs(bm.Inputs)})
		}
	}

	if len(rows) == 0 {
		fmt.Fprintln(os.Stderr, console.FormatInfoMessage("No bookmarks saved"))
		return nil
	}

	fmt.Fprintln(w, console.RenderTable(console.TableConfig{
		Headers: []string{"Repository", "Nickname", "Workflow", "Branch", "Inputs"},
		Rows:    rows,
	}))
	return nil
}

func formatBookmarkInputs(inputs config.Inputs) string {
	pairs := make([]string, 0, len(inputs))
	for _, input := range inputs {
		pairs = append(pairs, input.Name+"="+input.Value)
	}
	return stringutil.Truncate(strings.Join(pairs, ", "), maxInputsColumnWidth)
}
