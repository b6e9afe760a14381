package status

import "github.com/charmbracelet/lipgloss"

var (
	// https://github.com/muesli/termenv/blob/master/ansicolors.go
	red   = lipgloss.Color("9")
	green = lipgloss.Color("10")
	cyan  = lipgloss.Color("14")
	gray  = lipgloss.Color("242")

	titleStyle   = lipgloss.NewStyle().Foreground(cyan).Bold(true)
	labelStyle   = lipgloss.NewStyle().Foreground(gray)
	spinnerStyle = lipgloss.NewStyle().Foreground(cyan)
	helpStyle    = lipgloss.NewStyle().Foreground(gray)

	errorPanel     = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(red).Padding(0, 1)
	errorTextStyle = lipgloss.NewStyle().Foreground(red)

	successPanel     = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(green).Padding(0, 1)
	successTextStyle = lipgloss.NewStyle().Foreground(green).Bold(true)
)
