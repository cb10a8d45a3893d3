package console

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

var (
	colorPrimary = lipgloss.Color("#7C71F9")
	colorSuccess = lipgloss.Color("#34D399")
	colorError   = lipgloss.Color("#F87171")
	colorWarning = lipgloss.Color("#FBBF24")
	colorDim     = lipgloss.Color("#6B7280")
	colorAccent  = lipgloss.Color("#60A5FA")
)

type styles struct {
	banner  lipgloss.Style
	prompt  lipgloss.Style
	info    lipgloss.Style
	success lipgloss.Style
	warning lipgloss.Style
	err     lipgloss.Style
	dim     lipgloss.Style
	header  lipgloss.Style
	cell    lipgloss.Style
	number  lipgloss.Style
	title   lipgloss.Style
}

func newStyles(r *lipgloss.Renderer) styles {
	return styles{
		banner:  r.NewStyle().Bold(true).Foreground(colorPrimary),
		prompt:  r.NewStyle().Bold(true).Foreground(colorAccent),
		info:    r.NewStyle(),
		success: r.NewStyle().Foreground(colorSuccess),
		warning: r.NewStyle().Foreground(colorWarning),
		err:     r.NewStyle().Foreground(colorError),
		dim:     r.NewStyle().Foreground(colorDim),
		header:  r.NewStyle().Bold(true).Foreground(colorPrimary).PaddingRight(2),
		cell:    r.NewStyle().PaddingRight(2),
		number:  r.NewStyle().Foreground(colorAccent).PaddingRight(2),
		title:   r.NewStyle().Bold(true),
	}
}

// newTable returns a borderless table with an underlined header row.
// numbered makes the first column use the number style.
func (s styles) newTable(numbered bool, headers ...string) *table.Table {
	return table.New().
		Headers(headers...).
		BorderTop(false).
		BorderBottom(false).
		BorderLeft(false).
		BorderRight(false).
		BorderColumn(false).
		BorderHeader(true).
		Border(lipgloss.NormalBorder()).
		BorderStyle(s.dim).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return s.header
			case numbered && col == 0:
				return s.number
			default:
				return s.cell
			}
		})
}
