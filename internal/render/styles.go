package render

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/formbuilder/internal/theme"
)

var (
	// Colors
	navColor     = lipgloss.Color("208") // Orange
	navTextColor = lipgloss.Color("231") // White
	panelColor   = lipgloss.Color("240") // Gray
	mutedColor   = lipgloss.Color("245")
	dangerColor  = lipgloss.Color("196") // Red

	navStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(navTextColor).
			Background(navColor).
			Padding(0, 1)

	sidePanelStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(panelColor).
			Padding(0, 1)

	entryStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	elementStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(panelColor).
			Padding(0, 1)

	labelStyle = lipgloss.NewStyle().Bold(true)

	inputStyle = lipgloss.NewStyle().Foreground(mutedColor)

	deleteStyle = lipgloss.NewStyle().
			Foreground(dangerColor).
			Bold(true)

	submitStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(navTextColor).
			Padding(0, 3)
)

// palette is the lipgloss rendition of a theme's terminal colours.
type palette struct {
	background lipgloss.Color
	foreground lipgloss.Color
	accent     lipgloss.Color
	border     lipgloss.Border
}

func newPalette(t theme.Terminal) palette {
	return palette{
		background: lipgloss.Color(t.Background),
		foreground: lipgloss.Color(t.Foreground),
		accent:     lipgloss.Color(t.Accent),
		border:     borderFor(t.Border),
	}
}

func borderFor(kind theme.BorderKind) lipgloss.Border {
	switch kind {
	case theme.BorderRounded:
		return lipgloss.RoundedBorder()
	case theme.BorderThick:
		return lipgloss.ThickBorder()
	case theme.BorderDouble:
		return lipgloss.DoubleBorder()
	default:
		return lipgloss.NormalBorder()
	}
}
