package report

import "github.com/charmbracelet/lipgloss"

// role names what a piece of output is. The palette decides how it looks.
type role int

const (
	roleSuccess role = iota // "Built"
	roleTarget              // output path and section headers
	roleIcon                // icon class names
	roleMuted               // counts and source paths
	roleWarning
	roleFailure
)

// Lipgloss degrades these to whatever the terminal supports
var palette = map[role]lipgloss.Style{
	roleSuccess: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("2")),
	roleTarget:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6")),
	roleIcon:    lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
	roleMuted:   lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
	roleWarning: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("3")),
	roleFailure: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("1")),
}

// paint styles text for its role, or returns it unchanged without colors
func (r *Reporter) paint(ro role, text string) string {
	if !r.useColors {
		return text
	}
	return palette[ro].Render(text)
}
