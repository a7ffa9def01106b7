package cli

import (
	"fmt"

	"github.com/gh-dispatch/gh-dispatch/pkg/config"
	"github.com/gh-dispatch/gh-dispatch/pkg/constants"
	"github.com/gh-dispatch/gh-dispatch/pkg/logger"
	"github.com/spf13/cobra"
)

var commandsLog = logger.New("cli:commands")

var version = "dev"

// SetVersionInfo sets the version reported by the version command.
func SetVersionInfo(v string) {
	version = v
}

// NewRootCommand creates the gh-dispatch command. Without a subcommand it
// runs the interactive dispatch flow.
func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   constants.CLIName,
		Short: "Interactively dispatch GitHub Actions workflows",
		Long: `Pick a configured repository, a branch and a workflow_dispatch workflow
(or a saved bookmark), fill in the workflow inputs and run it with
'gh workflow run'.

Repositories, branches and bookmarks are read from a YAML file, by default
./config.yml or $` + constants.ConfigPathEnvVar + `.

Examples:
  ` + constants.CLIName + `                          # Start the interactive flow
  ` + constants.CLIName + ` -c ~/dispatch.yml        # Use another configuration file
  ` + constants.CLIName + ` --dry-run                # Print the gh command instead of running it
  ` + constants.CLIName + ` bookmarks owner/repo     # List saved bookmarks`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			configPath, verbose, err := resolveGlobalFlags(cmd)
			if err != nil {
				return err
			}
			dryRun, _ := cmd.Flags().GetBool("dry-run")

			return RunDispatch(cmd.Context(), DispatchConfig{
				ConfigPath: configPath,
				Verbose:    verbose,
				DryRun:     dryRun,
			})
		},
	}

	cmd.PersistentFlags().StringP("config", "c", "", "Configuration file (default: $"+constants.ConfigPathEnvVar+" or "+constants.DefaultConfigPath+")")
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Print gh commands before running them")
	cmd.Flags().Bool("dry-run", false, "Show the gh workflow run command without running it")

	RegisterConfigFlagCompletion(cmd)

	cmd.AddCommand(
		NewBookmarksCommand(),
		NewValidateCommand(),
		NewVersionCommand(),
	)

	return cmd
}

// NewVersionCommand creates the version command.
func NewVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show the " + constants.CLIName + " version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s version %s\n", constants.CLIName, version)
		},
	}
}

// resolveGlobalFlags merges the persistent flags with the environment
// settings. Flags win over the environment.
func resolveGlobalFlags(cmd *cobra.Command) (string, bool, error) {
	settings, err := config.LoadSettings()
	if err != nil {
		return "", false, err
	}

	configFlag, _ := cmd.Flags().GetString("config")
	verbose, _ := cmd.Flags().GetBool("verbose")
	configPath := settings.ResolveConfigPath(configFlag)

	commandsLog.Printf("Resolved flags: config=%s, verbose=%v", configPath, verbose || settings.Verbose)
	return configPath, verbose || settings.Verbose, nil
}
