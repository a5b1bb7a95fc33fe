package core

import "github.com/charmbracelet/lipgloss"

// Catppuccin Mocha.
const (
	mochaText     lipgloss.Color = "#cdd6f4"
	mochaSubtext  lipgloss.Color = "#a6adc8"
	mochaOverlay  lipgloss.Color = "#585b70"
	mochaBlue     lipgloss.Color = "#89b4fa"
	mochaGreen    lipgloss.Color = "#a6e3a1"
	mochaRed      lipgloss.Color = "#f38ba8"
	mochaMantle   lipgloss.Color = "#181825"
	mochaSurface0 lipgloss.Color = "#313244"
)

var (
	appStyle = lipgloss.NewStyle().Foreground(mochaText)

	barStyle    = lipgloss.NewStyle().Background(mochaMantle).Foreground(mochaText)
	brandStyle  = lipgloss.NewStyle().Background(mochaMantle).Foreground(mochaBlue).Bold(true)
	crumbStyle  = lipgloss.NewStyle().Background(mochaMantle).Foreground(mochaOverlay)
	statusStyle = lipgloss.NewStyle().Background(mochaSurface0).Foreground(mochaGreen)
	alertStyle  = lipgloss.NewStyle().Background(mochaSurface0).Foreground(mochaRed)
)
