package tui

import "github.com/charmbracelet/lipgloss"

var (
	accent = lipgloss.Color("#00ADD8")
	muted  = lipgloss.Color("240")

	nameStyle    = lipgloss.NewStyle().Bold(true).Foreground(accent)
	taglineStyle = lipgloss.NewStyle().Foreground(muted)
	headingStyle = lipgloss.NewStyle().Bold(true).Foreground(accent).MarginTop(1)
	titleStyle   = lipgloss.NewStyle().Bold(true)
	metaStyle    = lipgloss.NewStyle().Foreground(muted)
	tagStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#F25D94"))
	helpStyle    = lipgloss.NewStyle().Foreground(muted)
)
