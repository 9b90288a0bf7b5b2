package uimode

import (
	"github.com/alexisbeaulieu97/formbuilder/internal/logger"
	"github.com/alexisbeaulieu97/formbuilder/internal/theme"
)

// Controller is the only mutation surface for a session's State.
type Controller struct {
	state State
	log   *logger.Logger
}

// NewController starts from initial.
func NewController(initial State, log *logger.Logger) *Controller {
	if log == nil {
		log = logger.Nop()
	}
	if !initial.ActiveTheme.Valid() {
		initial.ActiveTheme = theme.Theme1
	}
	return &Controller{state: initial, log: log.WithFields(map[string]any{"component": "uimode"})}
}

// State returns a copy of the current state.
func (c *Controller) State() State {
	return c.state
}

func (c *Controller) TogglePalette() {
	c.apply("toggle palette", TogglePalette)
}

func (c *Controller) ToggleThemePanel() {
	c.apply("toggle theme panel", ToggleThemePanel)
}

func (c *Controller) ToggleThemeList() {
	c.apply("toggle theme list", ToggleThemeList)
}

func (c *Controller) TogglePreview() {
	c.apply("toggle preview", TogglePreview)
}

// SelectTheme activates id. Invalid ids are ignored.
func (c *Controller) SelectTheme(id theme.ID) {
	if !id.Valid() {
		c.log.Debug("theme selection ignored", "theme", int(id))
		return
	}
	c.apply("select theme", func(s State) State { return SelectTheme(s, id) })
}

// SelectThemeToken activates the theme named by an untyped token. Unknown
// tokens leave the state unchanged and report false.
func (c *Controller) SelectThemeToken(token string) bool {
	id, err := theme.ParseID(token)
	if err != nil {
		c.log.Debug("theme selection ignored", "reason", err.Error())
		return false
	}
	c.SelectTheme(id)
	return true
}

func (c *Controller) apply(action string, reduce func(State) State) {
	c.state = reduce(c.state)
	c.log.Debug(action,
		"palette_expanded", c.state.PaletteExpanded,
		"theme_panel_expanded", c.state.ThemePanelExpanded,
		"theme_list_visible", c.state.ThemeListVisible,
		"preview", c.state.PreviewMode,
		"theme", c.state.ActiveTheme.String(),
	)
}
