// Package workflow talks to GitHub Actions workflows through the gh CLI.
//
// It lists a repository's workflows, reads the workflow_dispatch input schema
// of one workflow at a given ref, and builds the "gh workflow run" argument
// vector and the confirmation summary shown before dispatching.
//
// All gh access goes through an Executor. The default executor shells out to
// gh via go-gh, which honours GH_PATH; tests substitute a fake.
package workflow
