// Package constants holds names and fixed values shared across gh-dispatch packages.
package constants

// CLIName is the name of the executable. Installed as a gh extension it is
// invoked as "gh dispatch".
const CLIName = "gh-dispatch"

// DefaultConfigPath is the configuration file used when neither the --config
// flag nor GH_DISPATCH_CONFIG is set.
const DefaultConfigPath = "./config.yml"

// Environment variables read by gh-dispatch.
const (
	ConfigPathEnvVar = "GH_DISPATCH_CONFIG"
	NoSpinnerEnvVar  = "GH_DISPATCH_NO_SPINNER"
)

// ActiveWorkflowState is the only workflow state offered for dispatch.
const ActiveWorkflowState = "active"

// WorkflowListFields are the JSON fields requested from "gh workflow list".
const WorkflowListFields = "name,path,id,state"

// DisplayKeyWidth is the minimum width of input names in the confirmation summary.
const DisplayKeyWidth = 15

// Labels and values of the boolean input prompt.
const (
	BooleanTrueLabel  = "True"
	BooleanFalseLabel = "False"
	BooleanTrueValue  = "true"
	BooleanFalseValue = "false"
)
