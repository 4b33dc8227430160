package browse

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/marcus/basket/internal/theme"
)

var (
	mutedColor   = lipgloss.Color("241")
	warningColor = lipgloss.Color("214")
	errorColor   = lipgloss.Color("196")
	successColor = lipgloss.Color("42")

	panelStyle       lipgloss.Style
	activePanelStyle lipgloss.Style
	panelTitleStyle  lipgloss.Style
	headerStyle      lipgloss.Style
	selectedStyle    lipgloss.Style

	subtleStyle  = lipgloss.NewStyle().Foreground(mutedColor)
	helpStyle    = lipgloss.NewStyle().Foreground(mutedColor)
	checkedStyle = lipgloss.NewStyle().Foreground(mutedColor).Strikethrough(true)
	doneStyle    = lipgloss.NewStyle().Foreground(successColor)
	errStyle     = lipgloss.NewStyle().Foreground(errorColor)

	denialStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(warningColor).
			Padding(1, 2)
)

func init() {
	applyPalette(theme.NewView().Palette())
}

// applyPalette derives the accent-bearing styles from the themed palette
func applyPalette(p theme.Palette) {
	panelStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	activePanelStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.Accent).
		Padding(0, 1)

	panelTitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(p.Accent)

	headerStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#ffffff")).
		Background(p.AccentDark).
		Padding(0, 1)

	selectedStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(p.Accent)

	subtleStyle = lipgloss.NewStyle().Foreground(p.Muted)
	helpStyle = lipgloss.NewStyle().Foreground(p.Muted)
	checkedStyle = lipgloss.NewStyle().Foreground(p.Muted).Strikethrough(true)

	if p.Compact {
		panelStyle = panelStyle.Padding(0)
		activePanelStyle = activePanelStyle.Padding(0)
	}
	if p.Large {
		panelStyle = panelStyle.Padding(1, 2)
		activePanelStyle = activePanelStyle.Padding(1, 2)
	}
}
