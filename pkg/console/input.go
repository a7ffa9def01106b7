package console

import (
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/gh-dispatch/gh-dispatch/pkg/logger"
	"github.com/gh-dispatch/gh-dispatch/pkg/tty"
)

var inputLog = logger.New("console:input")

// PromptInputWithValidation asks for a single line of text that must pass validate.
// A nil validate accepts anything.
func PromptInputWithValidation(title, description, placeholder string, validate func(string) error) (string, error) {
	inputLog.Printf("Prompting for input: title=%s", title)

	if !tty.IsStderrTerminal() {
		return "", fmt.Errorf("interactive input not available (not a TTY)")
	}

	var value string
	input := huh.NewInput().
		Title(title).
		Description(description).
		Placeholder(placeholder).
		Value(&value)
	if validate != nil {
		input = input.Validate(validate)
	}

	form := huh.NewForm(huh.NewGroup(input)).WithAccessible(IsAccessibleMode())
	if err := form.Run(); err != nil {
		return "", err
	}
	return value, nil
}
