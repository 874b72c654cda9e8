package tui

import "github.com/charmbracelet/lipgloss"

var (
	colorAccent  = lipgloss.Color("81")
	colorMuted   = lipgloss.Color("243")
	colorError   = lipgloss.Color("203")
	colorSurface = lipgloss.Color("236")

	titleStyle = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)

	headerRowStyle = lipgloss.NewStyle().Foreground(colorMuted).Bold(true)

	sectionStyle  = lipgloss.NewStyle().Bold(true)
	subtotalStyle = lipgloss.NewStyle().Foreground(colorMuted)
	footerStyle   = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)

	activeCellStyle = lipgloss.NewStyle().Background(colorSurface).Bold(true)

	statusStyle    = lipgloss.NewStyle().Foreground(colorMuted)
	statusErrStyle = lipgloss.NewStyle().Foreground(colorError)

	helpStyle = lipgloss.NewStyle().Foreground(colorMuted)
)
