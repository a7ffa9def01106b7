package cli

import (
	"strings"

	"github.com/gh-dispatch/gh-dispatch/pkg/config"
	"github.com/gh-dispatch/gh-dispatch/pkg/logger"
	"github.com/spf13/cobra"
)

var completionsLog = logger.New("cli:completions")

// CompleteRepositoryNames completes repository names from the configuration
// file selected by --config.
func CompleteRepositoryNames(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	configPath, _, err := resolveGlobalFlags(cmd)
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		completionsLog.Printf("Failed to load config for completion: %v", err)
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	var names []string
	for _, name := range cfg.ListRepoNames() {
		if strings.HasPrefix(name, toComplete) {
			names = append(names, name)
		}
	}
	completionsLog.Printf("Found %d repository completions for %q", len(names), toComplete)
	return names, cobra.ShellCompDirectiveNoFileComp
}

// RegisterConfigFlagCompletion completes --config with YAML files.
func RegisterConfigFlagCompletion(cmd *cobra.Command) {
	_ = cmd.RegisterFlagCompletionFunc("config", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return []string{"yml", "yaml"}, cobra.ShellCompDirectiveFilterFileExt
	})
}
