package cli

import (
	"fmt"
	"os"

	"github.com/gh-dispatch/gh-dispatch/pkg/config"
	"github.com/gh-dispatch/gh-dispatch/pkg/console"
	"github.com/gh-dispatch/gh-dispatch/pkg/logger"
	"github.com/spf13/cobra"
)

var validateLog = logger.New("cli:validate_command")

// NewValidateCommand creates the validate command.
func NewValidateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Check the configuration file",
		Long: `Check the configuration file against its JSON schema and verify that every
repository is written as owner/repo. The interactive flow never validates the
file, so this is the place to catch typos.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			configPath, _, err := resolveGlobalFlags(cmd)
			if err != nil {
				return err
			}
			return RunValidate(configPath)
		},
	}
}

// RunValidate reports every problem of the configuration file at configPath
// and fails when there is at least one.
func RunValidate(configPath string) error {
	problems, err := config.Validate(configPath)
	if err != nil {
		return err
	}

	validateLog.Printf("Found %d problems in %s", len(problems), configPath)
	if len(problems) > 0 {
		for _, problem := range problems {
			fmt.Fprintln(os.Stderr, console.FormatErrorMessage(problem))
		}
		return fmt.Errorf("configuration %s has %d problem(s)", configPath, len(problems))
	}

	fmt.Fprintln(os.Stderr, console.FormatSuccessMessage(fmt.Sprintf("%s is valid", configPath)))
	return nil
}
