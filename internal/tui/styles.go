package tui

import "github.com/charmbracelet/lipgloss"

var Styles = struct {
	Title      lipgloss.Style
	Selected   lipgloss.Style
	Normal     lipgloss.Style
	Error      lipgloss.Style
	Success    lipgloss.Style
	FieldName  lipgloss.Style
	FieldValue lipgloss.Style
	Help       lipgloss.Style
	Flash      lipgloss.Style
	Muted      lipgloss.Style
}{
	Title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#FFFFFF")).
		Background(lipgloss.Color("#7D56F4")),
	Selected: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#FFFFFF")).
		Background(lipgloss.Color("#F25D94")),
	Normal:  lipgloss.NewStyle().Foreground(lipgloss.Color("#FFFFFF")),
	Error:   lipgloss.NewStyle().Foreground(lipgloss.Color("#FF0000")),
	Success: lipgloss.NewStyle().Foreground(lipgloss.Color("#00FF00")),
	FieldName: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#7D56F4")).
		Bold(true),
	FieldValue: lipgloss.NewStyle().Foreground(lipgloss.Color("#CCCCCC")),
	Help:       lipgloss.NewStyle().Foreground(lipgloss.Color("#777777")),
	Flash: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#FFD700")),
	Muted: lipgloss.NewStyle().Foreground(lipgloss.Color("#888888")),
}
