package workflow

import (
	"context"
	"fmt"
	"strconv"

	"github.com/gh-dispatch/gh-dispatch/pkg/logger"
	"github.com/goccy/go-yaml"
)

var inputsLog = logger.New("workflow:inputs")

// InputKind is the recognized type of a workflow_dispatch input.
type InputKind int

const (
	InputKindUnknown InputKind = iota
	InputKindString
	InputKindNumber
	InputKindBoolean
	InputKindChoice
	InputKindEnvironment
)

func (k InputKind) String() string {
	switch k {
	case InputKindString:
		return "string"
	case InputKindNumber:
		return "number"
	case InputKindBoolean:
		return "boolean"
	case InputKindChoice:
		return "choice"
	case InputKindEnvironment:
		return "environment"
	default:
		return "unknown"
	}
}

// InputSpec is one declared workflow_dispatch input.
type InputSpec struct {
	Name string
	// Type is the declared type, copied verbatim.
	Type string
	// Default is the declared default as a string; "" when absent.
	Default string
	// Options is set only for choice inputs.
	Options []string
	// Required is advisory and never enforced before dispatch.
	Required bool
}

// Kind maps the declared type onto InputKind. An undeclared type is a string
// input, as on GitHub.
func (s InputSpec) Kind() InputKind {
	switch s.Type {
	case "string", "":
		return InputKindString
	case "number":
		return InputKindNumber
	case "boolean":
		return InputKindBoolean
	case "choice":
		return InputKindChoice
	case "environment":
		return InputKindEnvironment
	default:
		return InputKindUnknown
	}
}

// FetchInputs reads the dispatch inputs of a workflow as defined at ref, so
// the schema reflects that ref's file rather than the default branch.
// workflowRef may be a workflow ID, name or file name.
func (c *Client) FetchInputs(ctx context.Context, workflowRef, repo, ref string) ([]InputSpec, error) {
	inputsLog.Printf("Fetching inputs: workflow=%s, repo=%s, ref=%s", workflowRef, repo, ref)

	out, err := c.runGH(ctx, "Fetching workflow inputs...", "workflow", "view", workflowRef, "-R", repo, "--ref", ref, "--yaml")
	if err != nil {
		return nil, fmt.Errorf("failed to fetch workflow '%s' at ref '%s': %w", workflowRef, ref, err)
	}

	return ParseDispatchInputs(out)
}

// ParseDispatchInputs extracts on.workflow_dispatch.inputs from workflow YAML
// in declaration order. A workflow without that map has no inputs. Inputs with
// unrecognized types are kept.
func ParseDispatchInputs(content []byte) ([]InputSpec, error) {
	var doc yaml.MapSlice
	if err := yaml.UnmarshalWithOptions(content, &doc, yaml.UseOrderedMap()); err != nil {
		return nil, fmt.Errorf("failed to parse workflow YAML: %w", err)
	}

	specs := []InputSpec{}

	on, ok := lookup(doc, "on").(yaml.MapSlice)
	if !ok {
		inputsLog.Print("No 'on' mapping, workflow has no dispatch inputs")
		return specs, nil
	}
	dispatch, ok := lookup(on, "workflow_dispatch").(yaml.MapSlice)
	if !ok {
		inputsLog.Print("No workflow_dispatch mapping, workflow has no dispatch inputs")
		return specs, nil
	}
	inputs, ok := lookup(dispatch, "inputs").(yaml.MapSlice)
	if !ok {
		return specs, nil
	}

	for _, item := range inputs {
		definition, _ := item.Value.(yaml.MapSlice)
		specs = append(specs, parseInputSpec(fmt.Sprint(item.Key), definition))
	}

	inputsLog.Printf("Parsed %d dispatch inputs", len(specs))
	return specs, nil
}

func parseInputSpec(name string, definition yaml.MapSlice) InputSpec {
	spec := InputSpec{
		Name:    name,
		Type:    stringify(lookup(definition, "type")),
		Default: stringify(lookup(definition, "default")),
	}

	if required, ok := lookup(definition, "required").(bool); ok {
		spec.Required = required
	}

	if spec.Type == "choice" {
		spec.Options = []string{}
		if options, ok := lookup(definition, "options").([]any); ok {
			for _, opt := range options {
				spec.Options = append(spec.Options, stringify(opt))
			}
		}
	}

	return spec
}

func lookup(m yaml.MapSlice, key string) any {
	for _, item := range m {
		if k, ok := item.Key.(string); ok && k == key {
			return item.Value
		}
	}
	return nil
}

// stringify renders a scalar YAML value as text; nil becomes "".
func stringify(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case bool:
		return strconv.FormatBool(val)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	default:
		return fmt.Sprint(val)
	}
}
