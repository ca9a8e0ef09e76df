package tui

import "github.com/charmbracelet/lipgloss"

var (
	colorText    lipgloss.Color = "#cdd6f4"
	colorMuted   lipgloss.Color = "#a6adc8"
	colorBg      lipgloss.Color = "#1e1e2e"
	colorAccent  lipgloss.Color = "#89b4fa"
	colorSuccess lipgloss.Color = "#a6e3a1"
	colorError   lipgloss.Color = "#f38ba8"
	colorTabOff  lipgloss.Color = "#7f849c"
	colorSurface lipgloss.Color = "#313244"
	colorMantle  lipgloss.Color = "#181825"
)

var (
	tabActiveStyle   = lipgloss.NewStyle().Foreground(colorAccent).Bold(true).Padding(0, 2)
	tabInactiveStyle = lipgloss.NewStyle().Foreground(colorTabOff).Padding(0, 2)
	titleStyle       = lipgloss.NewStyle().Foreground(colorText).Bold(true)
	mutedStyle       = lipgloss.NewStyle().Foreground(colorMuted)
	cursorStyle      = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
	doneStyle        = lipgloss.NewStyle().Foreground(colorSuccess)
	footerStyle      = lipgloss.NewStyle().Foreground(colorMuted).Background(colorMantle)
	footerKeyStyle   = lipgloss.NewStyle().Foreground(colorAccent).Bold(true).Background(colorMantle)
	statusBarStyle   = lipgloss.NewStyle().Foreground(colorText).Background(colorSurface)
	statusErrStyle   = lipgloss.NewStyle().Foreground(colorError).Bold(true).Background(colorSurface)
	inputStyle       = lipgloss.NewStyle().Foreground(colorText).Background(colorSurface).Padding(0, 1)
)
