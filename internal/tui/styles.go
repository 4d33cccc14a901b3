package tui

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205")).
			MarginBottom(1)

	dayCardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Padding(1, 3).
			MarginBottom(1)

	dayNumberStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("86"))

	sectionTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("111"))

	sectionBodyStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("252")).
				MarginBottom(1)

	reasonStyle = lipgloss.NewStyle().
			Italic(true).
			Foreground(lipgloss.Color("179")).
			MarginBottom(1)

	reachedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("78"))
	upcomingStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	currentStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))

	errStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))

	helpHintStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			MarginTop(1)

	docStyle = lipgloss.NewStyle().Margin(1, 2)
)
