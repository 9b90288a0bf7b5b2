package tui

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/formbuilder/internal/session"
	"github.com/alexisbeaulieu97/formbuilder/internal/uimode"
)

func TestViewRendersBuilderAndHelp(t *testing.T) {
	t.Parallel()

	m, _ := newTestModel(t)
	out := m.View()
	require.Contains(t, out, "Form Builder")
	require.Contains(t, out, "Add Element +")
	require.Contains(t, out, "Submit")
	require.Contains(t, out, "a palette")
	require.NotContains(t, out, "add element", "placing is hidden until the palette opens")

	m = send(m, runeKey("a"))
	out = m.View()
	require.Contains(t, out, "Close Sidebar -")
	require.Contains(t, out, "n/e/p add element")
}

func TestViewHelpToggle(t *testing.T) {
	t.Parallel()

	m, _ := newTestModel(t)
	require.NotContains(t, m.View(), "copy outline")

	m = send(m, runeKey("?"))
	require.Contains(t, m.View(), "copy outline")
}

func TestViewUsesSuppliedSession(t *testing.T) {
	t.Parallel()

	initial := uimode.Initial()
	initial.PreviewMode = true
	s := session.New(session.Options{Initial: &initial})

	m := NewModel(Options{Session: s})
	require.Same(t, s, m.Session())

	out := m.View()
	require.Contains(t, out, "Preview Form [x]")
	require.NotContains(t, out, "Add Element +")
	require.NotContains(t, out, "a palette")
}
