package console

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/gh-dispatch/gh-dispatch/pkg/tty"
)

// TableConfig describes a table to render.
type TableConfig struct {
	Headers []string
	Rows    [][]string
}

var (
	tableHeaderStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	tableCellStyle   = lipgloss.NewStyle().Padding(0, 1)
	tableBorderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E7681"))
)

// RenderTable renders config as a bordered table. Colors are only applied
// when stderr is a terminal.
func RenderTable(config TableConfig) string {
	if len(config.Headers) == 0 {
		return ""
	}

	styled := tty.IsStderrTerminal()
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(config.Headers...).
		Rows(config.Rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return tableHeaderStyle
			}
			return tableCellStyle
		})
	if styled {
		t = t.BorderStyle(tableBorderStyle)
	}

	return t.String()
}
