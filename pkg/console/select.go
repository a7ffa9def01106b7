package console

import (
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/gh-dispatch/gh-dispatch/pkg/logger"
	"github.com/gh-dispatch/gh-dispatch/pkg/tty"
)

var selectLog = logger.New("console:select")

// SelectOption is one choice of a select prompt.
type SelectOption struct {
	Label string
	Value string
}

// PromptSelect asks the user to pick one of options and returns its value.
func PromptSelect(title, description string, options []SelectOption) (string, error) {
	selectLog.Printf("Prompting for selection: title=%s, options=%d", title, len(options))

	if len(options) == 0 {
		return "", fmt.Errorf("no options provided for selection")
	}

	if !tty.IsStderrTerminal() {
		return "", fmt.Errorf("interactive selection not available (not a TTY)")
	}

	huhOptions := make([]huh.Option[string], len(options))
	for i, opt := range options {
		huhOptions[i] = huh.NewOption(opt.Label, opt.Value)
	}

	var selected string
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title(title).
				Description(description).
				Options(huhOptions...).
				Value(&selected),
		),
	).WithAccessible(IsAccessibleMode())

	if err := form.Run(); err != nil {
		return "", err
	}
	return selected, nil
}

// PromptSelectValue is PromptSelect for arbitrary comparable values.
func PromptSelectValue[T comparable](title, description string, options []huh.Option[T]) (T, error) {
	var selected T
	selectLog.Printf("Prompting for typed selection: title=%s, options=%d", title, len(options))

	if len(options) == 0 {
		return selected, fmt.Errorf("no options provided for selection")
	}

	if !tty.IsStderrTerminal() {
		return selected, fmt.Errorf("interactive selection not available (not a TTY)")
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[T]().
				Title(title).
				Description(description).
				Options(options...).
				Value(&selected),
		),
	).WithAccessible(IsAccessibleMode())

	if err := form.Run(); err != nil {
		return selected, err
	}
	return selected, nil
}
