package cli

import (
	"fmt"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/gh-dispatch/gh-dispatch/pkg/console"
	"github.com/gh-dispatch/gh-dispatch/pkg/constants"
	"github.com/gh-dispatch/gh-dispatch/pkg/logger"
	"github.com/gh-dispatch/gh-dispatch/pkg/workflow"
)

var inputPromptsLog = logger.New("cli:input_prompts")

// InputPrompt is a deferred prompt for one workflow input. Build binds the
// field to value, which already holds the input's default.
type InputPrompt struct {
	Name    string
	Default string
	Build   func(value *string) huh.Field
}

// BuildInputPrompts maps each input spec onto a prompt, keeping input order.
// Inputs of unsupported types get no prompt: a warning is printed and they
// are left out of the dispatch.
func BuildInputPrompts(specs []workflow.InputSpec) []InputPrompt {
	prompts := make([]InputPrompt, 0, len(specs))

	for _, spec := range specs {
		var build func(*string) huh.Field

		switch spec.Kind() {
		case workflow.InputKindString, workflow.InputKindNumber, workflow.InputKindEnvironment:
			build = textPrompt(spec)
		case workflow.InputKindBoolean:
			build = selectPrompt(spec, []huh.Option[string]{
				huh.NewOption(constants.BooleanTrueLabel, constants.BooleanTrueValue),
				huh.NewOption(constants.BooleanFalseLabel, constants.BooleanFalseValue),
			})
		case workflow.InputKindChoice:
			if len(spec.Options) == 0 {
				inputPromptsLog.Printf("Choice input %s has no options, using a text prompt", spec.Name)
				build = textPrompt(spec)
				break
			}
			options := make([]huh.Option[string], len(spec.Options))
			for i, opt := range spec.Options {
				options[i] = huh.NewOption(opt, opt)
			}
			build = selectPrompt(spec, options)
		default:
			inputPromptsLog.Printf("Skipping input %s with unsupported type %q", spec.Name, spec.Type)
			fmt.Fprintln(os.Stderr, console.FormatWarningMessage(
				fmt.Sprintf("Skipping input '%s': unsupported type '%s'", spec.Name, spec.Type)))
			continue
		}

		prompts = append(prompts, InputPrompt{Name: spec.Name, Default: spec.Default, Build: build})
	}

	inputPromptsLog.Printf("Built %d prompts for %d inputs", len(prompts), len(specs))
	return prompts
}

func textPrompt(spec workflow.InputSpec) func(*string) huh.Field {
	placeholder := "optional"
	if spec.Required {
		placeholder = "required"
	}
	return func(value *string) huh.Field {
		return huh.NewInput().
			Key(spec.Name).
			Title(spec.Name).
			Placeholder(placeholder).
			Value(value)
	}
}

func selectPrompt(spec workflow.InputSpec, options []huh.Option[string]) func(*string) huh.Field {
	return func(value *string) huh.Field {
		for i := range options {
			options[i] = options[i].Selected(options[i].Value == *value)
		}
		return huh.NewSelect[string]().
			Key(spec.Name).
			Title(spec.Name).
			Options(options...).
			Value(value)
	}
}
