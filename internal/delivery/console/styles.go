package console

import "github.com/charmbracelet/lipgloss"

// styles groups the text styles of the game screens.
// Colors are dropped automatically when the output is not a color terminal.
type styles struct {
	header        lipgloss.Style
	divider       lipgloss.Style
	plain         lipgloss.Style
	explanation   lipgloss.Style
	example       lipgloss.Style
	prompt        lipgloss.Style
	notice        lipgloss.Style
	encouragement lipgloss.Style
	warning       lipgloss.Style
}

func newStyles(r *lipgloss.Renderer) styles {
	return styles{
		header:        r.NewStyle().Foreground(lipgloss.Color("14")).Bold(true),
		divider:       r.NewStyle().Foreground(lipgloss.Color("4")),
		plain:         r.NewStyle(),
		explanation:   r.NewStyle().Foreground(lipgloss.Color("7")),
		example:       r.NewStyle().Foreground(lipgloss.Color("5")),
		prompt:        r.NewStyle().Foreground(lipgloss.Color("2")),
		notice:        r.NewStyle().Foreground(lipgloss.Color("3")),
		encouragement: r.NewStyle().Foreground(lipgloss.Color("6")),
		warning:       r.NewStyle().Foreground(lipgloss.Color("1")),
	}
}
