package core

import (
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
)

var (
	appStyle = lipgloss.NewStyle().Foreground(colorText)

	headerAppStyle = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
	headerBarStyle = lipgloss.NewStyle().
			Background(colorMantle).
			Foreground(colorText)
	headerMetaStyle = lipgloss.NewStyle().
			Background(colorMantle).
			Foreground(colorMuted)

	statusBarStyle = lipgloss.NewStyle().
			Foreground(colorSuccess).
			Background(colorSurface0)
	statusErrBarStyle = lipgloss.NewStyle().
				Foreground(colorError).
				Background(colorSurface0)
	statusNoteStyle = lipgloss.NewStyle().
			Foreground(colorWarn).
			Background(colorSurface0)
	footerStyle = lipgloss.NewStyle().
			Background(colorMantle)

	pagerStyle   = lipgloss.NewStyle().Foreground(colorMuted)
	spinnerStyle = lipgloss.NewStyle().Foreground(colorWarn)
)

func gridTableStyles() table.Styles {
	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		Foreground(colorAccent).
		Bold(true)
	styles.Selected = styles.Selected.
		Foreground(colorText).
		Background(colorSurface0).
		Bold(true)
	return styles
}
