package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

const noticeTTL = 3 * time.Second

// copyOutlineCmd writes the outline to the clipboard off the update loop.
func copyOutlineCmd(outline string, write func(string) error) tea.Cmd {
	return func() tea.Msg {
		if err := write(outline); err != nil {
			return ErrorMsg{Err: fmt.Errorf("copy outline: %w", err)}
		}
		return OutlineCopiedMsg{Lines: strings.Count(outline, "\n")}
	}
}

// clearNoticeCmd expires notice seq after noticeTTL.
func clearNoticeCmd(seq int) tea.Cmd {
	return tea.Tick(noticeTTL, func(time.Time) tea.Msg {
		return ClearNoticeMsg{Seq: seq}
	})
}
