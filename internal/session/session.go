// Package session owns the state of one form-building session and exposes the
// controller methods that are its only mutation surface.
package session

import (
	"github.com/google/uuid"

	"github.com/alexisbeaulieu97/formbuilder/internal/document"
	"github.com/alexisbeaulieu97/formbuilder/internal/dragdrop"
	"github.com/alexisbeaulieu97/formbuilder/internal/element"
	"github.com/alexisbeaulieu97/formbuilder/internal/logger"
	"github.com/alexisbeaulieu97/formbuilder/internal/theme"
	"github.com/alexisbeaulieu97/formbuilder/internal/uimode"
	"github.com/alexisbeaulieu97/formbuilder/internal/view"
)

// Options configures a new Session. Zero values select the built-in catalog,
// the built-in themes, the initial UI state and a discarding logger.
type Options struct {
	Catalog *element.Catalog
	Themes  *theme.Registry
	Initial *uimode.State
	Logger  *logger.Logger
}

// Session bundles the document, UI mode and drag/drop controllers of a single
// user session. It is driven from one event loop and is not safe for
// concurrent use.
type Session struct {
	id      string
	store   *document.Store
	ui      *uimode.Controller
	dnd     *dragdrop.Controller
	catalog *element.Catalog
	themes  *theme.Registry
	log     *logger.Logger
}

// New starts an empty session.
func New(opts Options) *Session {
	id := uuid.New().String()

	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}
	log = log.WithFields(map[string]any{"session_id": id})

	catalog := opts.Catalog
	if catalog == nil {
		catalog = element.DefaultCatalog()
	}
	themes := opts.Themes
	if themes == nil {
		themes = theme.DefaultRegistry()
	}
	initial := uimode.Initial()
	if opts.Initial != nil {
		initial = *opts.Initial
	}

	store := document.NewStore()
	s := &Session{
		id:      id,
		store:   store,
		ui:      uimode.NewController(initial, log),
		dnd:     dragdrop.NewController(store, log),
		catalog: catalog,
		themes:  themes,
		log:     log,
	}
	log.Info("session started", "theme", s.ui.State().ActiveTheme.String())
	return s
}

// ID returns the session's correlation id.
func (s *Session) ID() string {
	return s.id
}

func (s *Session) TogglePalette()    { s.ui.TogglePalette() }
func (s *Session) ToggleThemePanel() { s.ui.ToggleThemePanel() }
func (s *Session) ToggleThemeList()  { s.ui.ToggleThemeList() }
func (s *Session) TogglePreview()    { s.ui.TogglePreview() }

// SelectTheme activates id.
func (s *Session) SelectTheme(id theme.ID) {
	s.ui.SelectTheme(id)
}

// SelectThemeToken activates the theme named by an untyped token; unknown
// tokens are discarded and report false.
func (s *Session) SelectThemeToken(token string) bool {
	return s.ui.SelectThemeToken(token)
}

// DragStart encodes t for a drag leaving the palette.
func (s *Session) DragStart(t element.Type) dragdrop.Payload {
	return s.dnd.DragStart(t)
}

// DragOver reports whether the canvas accepts the hovering drag.
func (s *Session) DragOver(p dragdrop.Payload) bool {
	return s.dnd.DragOver(p)
}

// Drop completes a drag on the canvas.
func (s *Session) Drop(p dragdrop.Payload) (document.PlacedElement, bool) {
	return s.dnd.Drop(p)
}

// Place runs the full drag-start, drag-over, drop handshake for t in one step.
// Keyboard hosts use it in place of a pointer drag.
func (s *Session) Place(t element.Type) (document.PlacedElement, bool) {
	p := s.DragStart(t)
	if !s.DragOver(p) {
		return document.PlacedElement{}, false
	}
	return s.Drop(p)
}

// Remove deletes the element with the given id. Absent ids are a no-op.
func (s *Session) Remove(id document.ID) bool {
	removed := s.store.Remove(id)
	if removed {
		s.log.Info("element removed", "element_id", id.String())
	} else {
		s.log.Debug("remove ignored", "element_id", id.String())
	}
	return removed
}

// Elements returns the document in display order.
func (s *Session) Elements() []document.PlacedElement {
	return s.store.List()
}

// UI returns the current UI mode state.
func (s *Session) UI() uimode.State {
	return s.ui.State()
}

// Style returns the bundle of the active theme.
func (s *Session) Style() theme.Style {
	return s.themes.StyleFor(s.ui.State().ActiveTheme)
}

// Catalog returns the element catalog the session renders with.
func (s *Session) Catalog() *element.Catalog {
	return s.catalog
}

// Themes returns the theme registry the session renders with.
func (s *Session) Themes() *theme.Registry {
	return s.themes
}

// Tree derives the current visual tree.
func (s *Session) Tree() view.Node {
	return view.Build(view.Input{
		Elements: s.store.List(),
		UI:       s.ui.State(),
		Style:    s.Style(),
		Catalog:  s.catalog,
		Themes:   s.themes,
	})
}
