package console

import (
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/gh-dispatch/gh-dispatch/pkg/tty"
)

// ConfirmAction asks a yes/no question. description may be empty.
func ConfirmAction(title, description string) (bool, error) {
	if !tty.IsStderrTerminal() {
		return false, fmt.Errorf("interactive confirmation not available (not a TTY)")
	}

	var confirmed bool
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(title).
				Description(description).
				Affirmative("Yes").
				Negative("No").
				Value(&confirmed),
		),
	).WithAccessible(IsAccessibleMode())

	if err := form.Run(); err != nil {
		return false, err
	}
	return confirmed, nil
}
