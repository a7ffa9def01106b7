// Package cli implements the gh-dispatch commands.
//
// The root command runs the interactive dispatch flow: check the gh login,
// load the configuration file, let the user pick a repository, a branch and
// a workflow or bookmark, collect the workflow inputs and run
// "gh workflow run". The bookmarks and validate subcommands inspect the
// configuration file without touching GitHub.
//
// Each command has a RunX function so it can be tested without cobra.
// User interaction goes through the Prompter interface and gh access
// through workflow.Client.
package cli
