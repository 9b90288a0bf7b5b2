package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"

	"github.com/alexisbeaulieu97/formbuilder/internal/element"
	"github.com/alexisbeaulieu97/formbuilder/internal/theme"
	"github.com/alexisbeaulieu97/formbuilder/internal/uimode"
)

// keyMap lists every binding of the builder screen. Bindings that the current
// UI state does not render are disabled, which hides them from help and makes
// key.Matches ignore them.
type keyMap struct {
	Palette    key.Binding
	Place      key.Binding
	ThemePanel key.Binding
	ThemeList  key.Binding
	Swatch     key.Binding
	Preview    key.Binding
	Up         key.Binding
	Down       key.Binding
	Remove     key.Binding
	Copy       key.Binding
	Cancel     key.Binding
	Help       key.Binding
	Quit       key.Binding
}

func newKeyMap(catalog *element.Catalog) keyMap {
	var shortcuts []string
	for _, tpl := range catalog.Entries() {
		if tpl.Shortcut != "" {
			shortcuts = append(shortcuts, tpl.Shortcut)
		}
	}

	swatches := make([]string, 0, len(theme.IDs()))
	for _, id := range theme.IDs() {
		swatches = append(swatches, string(rune('0'+int(id))))
	}

	return keyMap{
		Palette: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "palette"),
		),
		Place: key.NewBinding(
			key.WithKeys(shortcuts...),
			key.WithHelp(strings.Join(shortcuts, "/"), "add element"),
		),
		ThemePanel: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "theme panel"),
		),
		ThemeList: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "theme list"),
		),
		Swatch: key.NewBinding(
			key.WithKeys(swatches...),
			key.WithHelp(strings.Join(swatches, "/"), "select theme"),
		),
		Preview: key.NewBinding(
			key.WithKeys("v"),
			key.WithHelp("v", "preview"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Remove: key.NewBinding(
			key.WithKeys("x", "delete"),
			key.WithHelp("x", "remove"),
		),
		Copy: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "copy outline"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel drag"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// sync enables exactly the bindings whose affordance is on screen.
func (k *keyMap) sync(ui uimode.State, elements int, dragging bool) {
	editing := ui.PalettesVisible()
	k.Palette.SetEnabled(editing)
	k.Place.SetEnabled(editing && ui.PaletteExpanded)
	k.ThemePanel.SetEnabled(editing)
	k.ThemeList.SetEnabled(editing && ui.ThemePanelExpanded)
	k.Swatch.SetEnabled(ui.SwatchesVisible())
	k.Remove.SetEnabled(editing && elements > 0)
	k.Up.SetEnabled(elements > 1)
	k.Down.SetEnabled(elements > 1)
	k.Cancel.SetEnabled(dragging)
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Palette, k.Place, k.ThemePanel, k.Preview, k.Remove, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Palette, k.Place, k.Up, k.Down, k.Remove},
		{k.ThemePanel, k.ThemeList, k.Swatch},
		{k.Preview, k.Copy, k.Cancel, k.Help, k.Quit},
	}
}
