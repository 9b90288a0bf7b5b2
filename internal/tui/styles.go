package tui

import "github.com/charmbracelet/lipgloss"

var (
	noticeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	dragStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("33")).Bold(true)
	footerStyle = lipgloss.NewStyle().PaddingLeft(1)
)
