package uimode

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/formbuilder/internal/logger"
	"github.com/alexisbeaulieu97/formbuilder/internal/theme"
)

func TestInitialState(t *testing.T) {
	t.Parallel()

	c := NewController(Initial(), logger.Nop())
	require.Equal(t, State{ActiveTheme: theme.Theme1}, c.State())
}

func TestNewControllerRepairsInvalidTheme(t *testing.T) {
	t.Parallel()

	c := NewController(State{PaletteExpanded: true}, nil)
	require.Equal(t, theme.Theme1, c.State().ActiveTheme)
	require.True(t, c.State().PaletteExpanded)
}

func TestTogglePaletteHasNoSideEffects(t *testing.T) {
	t.Parallel()

	start := State{ThemePanelExpanded: true, ThemeListVisible: true, PreviewMode: true, ActiveTheme: theme.Theme3}
	c := NewController(start, logger.Nop())
	c.TogglePalette()

	want := start
	want.PaletteExpanded = true
	require.Equal(t, want, c.State())
}

func TestToggleThemePanelAlwaysHidesList(t *testing.T) {
	t.Parallel()

	for _, panel := range []bool{false, true} {
		for _, list := range []bool{false, true} {
			c := NewController(State{ThemePanelExpanded: panel, ThemeListVisible: list, ActiveTheme: theme.Theme1}, logger.Nop())
			c.ToggleThemePanel()
			require.False(t, c.State().ThemeListVisible, "panel=%v list=%v", panel, list)
			require.Equal(t, !panel, c.State().ThemePanelExpanded)
		}
	}
}

func TestToggleThemeListKeepsPanel(t *testing.T) {
	t.Parallel()

	c := NewController(Initial(), logger.Nop())
	c.ToggleThemePanel()
	c.ToggleThemeList()
	require.True(t, c.State().ThemeListVisible)

	c.ToggleThemeList()
	require.False(t, c.State().ThemeListVisible)
	require.True(t, c.State().ThemePanelExpanded)
}

func TestSelectThemeKeepsListOpen(t *testing.T) {
	t.Parallel()

	c := NewController(Initial(), logger.Nop())
	c.ToggleThemePanel()
	c.ToggleThemeList()
	c.SelectTheme(theme.Theme2)

	s := c.State()
	require.Equal(t, theme.Theme2, s.ActiveTheme)
	require.True(t, s.ThemePanelExpanded)
	require.True(t, s.ThemeListVisible)
}

func TestSelectThemeTokenIgnoresUnknown(t *testing.T) {
	t.Parallel()

	c := NewController(Initial(), logger.Nop())
	before := c.State()

	require.False(t, c.SelectThemeToken("sepia"))
	require.Equal(t, before, c.State())

	c.SelectTheme(theme.ID(0))
	require.Equal(t, before, c.State())

	require.True(t, c.SelectThemeToken("theme3"))
	require.Equal(t, theme.Theme3, c.State().ActiveTheme)
}

func TestPreviewDoesNotResetPanels(t *testing.T) {
	t.Parallel()

	c := NewController(Initial(), logger.Nop())
	c.TogglePalette()
	c.ToggleThemePanel()
	c.ToggleThemeList()
	before := c.State()

	c.TogglePreview()
	during := c.State()
	require.True(t, during.PreviewMode)
	require.False(t, during.PalettesVisible())
	require.False(t, during.SwatchesVisible())
	require.True(t, during.PaletteExpanded)
	require.True(t, during.ThemeListVisible)

	c.TogglePreview()
	require.Equal(t, before, c.State())
	require.True(t, c.State().SwatchesVisible())
}

func TestReducersArePure(t *testing.T) {
	t.Parallel()

	s := Initial()
	_ = TogglePalette(s)
	_ = ToggleThemePanel(s)
	_ = TogglePreview(s)
	_ = SelectTheme(s, theme.Theme3)
	require.Equal(t, Initial(), s)
}
