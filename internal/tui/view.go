package tui

import (
	"strings"

	"github.com/alexisbeaulieu97/formbuilder/internal/element"
)

// View renders the builder screen followed by the status line and key help.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.frame().Output)
	b.WriteString("\n")

	if status := m.statusLine(); status != "" {
		b.WriteString(footerStyle.Render(status))
		b.WriteString("\n")
	}
	b.WriteString(footerStyle.Render(m.help.View(m.keys)))
	return b.String()
}

func (m Model) statusLine() string {
	switch {
	case m.drag != nil:
		text := "Dragging " + m.drag.Get(element.TransferKey)
		if m.overDrop {
			text += ": release to add"
		} else {
			text += ": release over the form to add"
		}
		return dragStyle.Render(text)
	case m.notice == "":
		return ""
	case m.noticeErr:
		return errorStyle.Render("Error: " + m.notice)
	default:
		return noticeStyle.Render(m.notice)
	}
}
