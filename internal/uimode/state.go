// Package uimode tracks panel expansion, theme selection and preview mode.
package uimode

import "github.com/alexisbeaulieu97/formbuilder/internal/theme"

// State holds the view-mode flags of a session. All flags are independent
// toggles except that toggling the theme panel always hides the theme list.
type State struct {
	PaletteExpanded    bool
	ThemePanelExpanded bool
	ThemeListVisible   bool
	PreviewMode        bool
	ActiveTheme        theme.ID
}

// Initial is the state a session starts in: everything collapsed, theme 1.
func Initial() State {
	return State{ActiveTheme: theme.Theme1}
}

// PalettesVisible reports whether side panels should be rendered at all.
// Preview suppresses them without touching their expansion flags.
func (s State) PalettesVisible() bool {
	return !s.PreviewMode
}

// SwatchesVisible reports whether theme swatches are reachable.
func (s State) SwatchesVisible() bool {
	return s.PalettesVisible() && s.ThemePanelExpanded && s.ThemeListVisible
}

// TogglePalette flips the element palette.
func TogglePalette(s State) State {
	s.PaletteExpanded = !s.PaletteExpanded
	return s
}

// ToggleThemePanel flips the theme panel and resets the theme list.
func ToggleThemePanel(s State) State {
	s.ThemePanelExpanded = !s.ThemePanelExpanded
	s.ThemeListVisible = false
	return s
}

// ToggleThemeList flips the theme list. The flag is kept even while the panel
// is collapsed; rendering decides whether it is shown.
func ToggleThemeList(s State) State {
	s.ThemeListVisible = !s.ThemeListVisible
	return s
}

// SelectTheme activates id without closing the list or panel.
func SelectTheme(s State, id theme.ID) State {
	s.ActiveTheme = id
	return s
}

// TogglePreview flips preview mode.
func TogglePreview(s State) State {
	s.PreviewMode = !s.PreviewMode
	return s
}
