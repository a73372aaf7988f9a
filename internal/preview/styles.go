package preview

import "github.com/charmbracelet/lipgloss"

var (
	orange = lipgloss.Color("208")
	pink   = lipgloss.Color("205")
	gray   = lipgloss.Color("245")
	dim    = lipgloss.Color("240")

	brandStyle    = lipgloss.NewStyle().Bold(true).Foreground(orange)
	navStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Padding(0, 1)
	navActive     = lipgloss.NewStyle().Foreground(orange).Bold(true).Underline(true).Padding(0, 1)
	navbarClear   = lipgloss.NewStyle().Padding(0, 1)
	navbarOpaque  = lipgloss.NewStyle().Padding(0, 1).Background(lipgloss.Color("235"))
	menuStyle     = lipgloss.NewStyle().Border(lipgloss.NormalBorder()).BorderForeground(orange).Padding(0, 1)
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(orange)
	accentStyle   = lipgloss.NewStyle().Foreground(pink)
	headingStyle  = lipgloss.NewStyle().Bold(true)
	bodyStyle     = lipgloss.NewStyle().Foreground(gray)
	yearStyle     = lipgloss.NewStyle().Foreground(orange)
	barFillStyle  = lipgloss.NewStyle().Foreground(orange)
	barEmptyStyle = lipgloss.NewStyle().Foreground(dim)
	helpStyle     = lipgloss.NewStyle().Foreground(dim)
)
