package render

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/formbuilder/internal/element"
	"github.com/alexisbeaulieu97/formbuilder/internal/session"
	"github.com/alexisbeaulieu97/formbuilder/internal/theme"
	"github.com/alexisbeaulieu97/formbuilder/internal/view"
)

func openSession(t *testing.T) *session.Session {
	t.Helper()

	s := session.New(session.Options{})
	s.TogglePalette()
	s.ToggleThemePanel()
	s.ToggleThemeList()
	_, ok := s.Place(element.FullName)
	require.True(t, ok)
	return s
}

func renderSession(s *session.Session, opts Options) Frame {
	return Render(s.Tree(), s.Style(), opts)
}

// textAt returns the cells covered by r on its first row.
func textAt(t *testing.T, f Frame, r Rect) string {
	t.Helper()

	lines := strings.Split(f.Output, "\n")
	require.Less(t, r.Y, len(lines))
	row := []rune(lines[r.Y])
	require.LessOrEqual(t, r.X+r.W, len(row))
	return string(row[r.X : r.X+r.W])
}

func singleZone(t *testing.T, f Frame, kind view.Kind) Zone {
	t.Helper()

	zones := f.ZonesOf(kind)
	require.Len(t, zones, 1, "zones of kind %s", kind)
	return zones[0]
}

func TestRenderZonesLineUpWithText(t *testing.T) {
	t.Parallel()

	f := renderSession(openSession(t), Options{Width: 100})

	require.Equal(t, 100, f.Width)
	require.Equal(t, "Preview Form [ ]", textAt(t, f, singleZone(t, f, view.KindPreviewSwitch).Rect))
	require.Equal(t, "[Close Sidebar -]", textAt(t, f, singleZone(t, f, view.KindPaletteToggle).Rect))
	require.Equal(t, "[Theme]", textAt(t, f, singleZone(t, f, view.KindThemePanelToggle).Rect))
	require.Equal(t, "[Close Themes -]", textAt(t, f, singleZone(t, f, view.KindThemeListToggle).Rect))
	require.Equal(t, "[x]", textAt(t, f, singleZone(t, f, view.KindDeleteButton).Rect))

	entries := f.ZonesOf(view.KindPaletteEntry)
	require.Len(t, entries, 3)
	require.Equal(t, "+ Full Name", strings.TrimSpace(textAt(t, f, entries[0].Rect)))
	require.Equal(t, "+ Email", strings.TrimSpace(textAt(t, f, entries[1].Rect)))
	require.Equal(t, "+ Phone", strings.TrimSpace(textAt(t, f, entries[2].Rect)))

	swatches := f.ZonesOf(view.KindThemeSwatch)
	require.Len(t, swatches, 3)
	require.Equal(t, "* Theme 1", textAt(t, f, swatches[0].Rect))
	require.Equal(t, "- Theme 2", textAt(t, f, swatches[1].Rect))
	require.Equal(t, "theme3", swatches[2].Key)
}

func TestRenderHitReturnsInnermostZone(t *testing.T) {
	t.Parallel()

	f := renderSession(openSession(t), Options{Width: 100})

	remove := singleZone(t, f, view.KindDeleteButton)
	z, ok := f.Hit(remove.Rect.X+1, remove.Rect.Y)
	require.True(t, ok)
	require.Equal(t, view.KindDeleteButton, z.Kind)
	require.Equal(t, "1", z.Key)

	canvas := singleZone(t, f, view.KindCanvas)
	z, ok = f.Hit(canvas.Rect.X+1, canvas.Rect.Y+canvas.Rect.H-2)
	require.True(t, ok)
	require.Equal(t, view.KindCanvas, z.Kind)

	entry := f.ZonesOf(view.KindPaletteEntry)[1]
	z, ok = f.Hit(entry.Rect.X+2, entry.Rect.Y)
	require.True(t, ok)
	require.Equal(t, "email", z.Key)

	_, ok = f.Hit(-1, -1)
	require.False(t, ok)
}

func TestRenderPreviewDropsEditingZones(t *testing.T) {
	t.Parallel()

	s := openSession(t)
	s.TogglePreview()
	f := renderSession(s, Options{Width: 100})

	require.Empty(t, f.ZonesOf(view.KindPaletteEntry))
	require.Empty(t, f.ZonesOf(view.KindPaletteToggle))
	require.Empty(t, f.ZonesOf(view.KindDeleteButton))
	require.Empty(t, f.ZonesOf(view.KindThemeSwatch))
	require.Equal(t, "Preview Form [x]", textAt(t, f, singleZone(t, f, view.KindPreviewSwitch).Rect))
	require.Contains(t, f.Output, "[First Name")
	require.Equal(t, 100, singleZone(t, f, view.KindCanvas).Rect.W)
}

func TestRenderCollapsedPanels(t *testing.T) {
	t.Parallel()

	s := session.New(session.Options{})
	f := renderSession(s, Options{Width: 80})

	require.Equal(t, "[Add Element +]", textAt(t, f, singleZone(t, f, view.KindPaletteToggle).Rect))
	require.Empty(t, f.ZonesOf(view.KindThemeListToggle))
	require.Equal(t, 80, f.Width)
}

func TestRenderDroppingAndSelection(t *testing.T) {
	t.Parallel()

	s := openSession(t)

	plain := renderSession(s, Options{Width: 100})
	require.NotContains(t, plain.Output, "(drop to add)")
	require.NotContains(t, plain.Output, "┏")

	f := renderSession(s, Options{Width: 100, Dropping: true, Selected: "1"})
	require.Contains(t, f.Output, "(drop to add)")
	require.Contains(t, f.Output, "╔")
	require.Contains(t, f.Output, "┏")
}

// Not parallel: the colour profile is package-global lipgloss state.
func TestRenderCanvasUsesThemeBackground(t *testing.T) {
	previous := lipgloss.ColorProfile()
	lipgloss.SetColorProfile(termenv.TrueColor)
	t.Cleanup(func() { lipgloss.SetColorProfile(previous) })

	s := openSession(t)
	builtin := theme.DefaultRegistry()
	custom := theme.NewRegistry(map[theme.ID]theme.Terminal{
		theme.Theme1: {Background: "#ff0000"},
	})

	plain := Render(s.Tree(), builtin.StyleFor(theme.Theme1), Options{Width: 100, Themes: builtin})
	tinted := Render(s.Tree(), custom.StyleFor(theme.Theme1), Options{Width: 100, Themes: custom})

	require.NotEqual(t, plain.Output, tinted.Output)
	require.Contains(t, tinted.Output, "48;2;255;0;0")
	require.NotContains(t, plain.Output, "48;2;255;0;0")
}

func TestRenderUnicodeGlyphs(t *testing.T) {
	t.Parallel()

	f := renderSession(openSession(t), Options{Width: 100, Unicode: true})
	require.Contains(t, f.Output, "📧 Email")
	require.Contains(t, f.Output, "[🎨]")
	require.Contains(t, f.Output, "● Theme 1")
}

func TestOutlineScenario(t *testing.T) {
	t.Parallel()

	s := session.New(session.Options{})
	s.Place(element.FullName)
	s.Place(element.Email)
	s.Remove(1)
	s.SelectTheme(theme.Theme2)

	want := "Form [bg-green-100 font-serif text-lg]\n" +
		"#2 Email: <email \"Enter your email\">\n" +
		"[Submit] bg-green-500\n"
	require.Equal(t, want, Outline(s.Tree()))
}

func TestOutlineEmptyTree(t *testing.T) {
	t.Parallel()

	require.Empty(t, Outline(view.Node{}))
}
