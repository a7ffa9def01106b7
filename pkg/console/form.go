package console

import (
	"context"
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/gh-dispatch/gh-dispatch/pkg/logger"
	"github.com/gh-dispatch/gh-dispatch/pkg/tty"
)

var formLog = logger.New("console:form")

// RunForm shows fields one at a time, in order, as a single form.
// Aborting any field aborts the whole form with huh.ErrUserAborted.
func RunForm(ctx context.Context, fields ...huh.Field) error {
	formLog.Printf("Running form with %d fields", len(fields))

	if len(fields) == 0 {
		return fmt.Errorf("no form fields provided")
	}

	if !tty.IsStderrTerminal() {
		return fmt.Errorf("interactive form not available (not a TTY)")
	}

	groups := make([]*huh.Group, len(fields))
	for i, field := range fields {
		groups[i] = huh.NewGroup(field)
	}

	form := huh.NewForm(groups...).WithAccessible(IsAccessibleMode())
	return form.RunWithContext(ctx)
}
