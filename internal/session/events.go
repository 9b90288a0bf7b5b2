package session

import (
	"fmt"

	"github.com/alexisbeaulieu97/formbuilder/internal/document"
	"github.com/alexisbeaulieu97/formbuilder/internal/dragdrop"
)

// Event is a discrete user interaction, applied with Session.Dispatch.
type Event interface {
	fmt.Stringer
	apply(s *Session) bool
}

// TogglePaletteEvent flips the element palette.
type TogglePaletteEvent struct{}

// ToggleThemePanelEvent flips the theme panel.
type ToggleThemePanelEvent struct{}

// ToggleThemeListEvent flips the theme list.
type ToggleThemeListEvent struct{}

// TogglePreviewEvent flips preview mode.
type TogglePreviewEvent struct{}

// SelectThemeEvent picks a theme by its raw token.
type SelectThemeEvent struct {
	Token string
}

// DropEvent drops a raw transfer token onto the canvas.
type DropEvent struct {
	Token string
}

// RemoveEvent clicks the delete affordance of an element.
type RemoveEvent struct {
	ID document.ID
}

func (TogglePaletteEvent) String() string    { return "toggle palette" }
func (ToggleThemePanelEvent) String() string { return "toggle theme panel" }
func (ToggleThemeListEvent) String() string  { return "toggle theme list" }
func (TogglePreviewEvent) String() string    { return "toggle preview" }
func (e SelectThemeEvent) String() string    { return fmt.Sprintf("select theme %q", e.Token) }
func (e DropEvent) String() string           { return fmt.Sprintf("drop %q", e.Token) }
func (e RemoveEvent) String() string         { return fmt.Sprintf("remove %s", e.ID) }

func (TogglePaletteEvent) apply(s *Session) bool    { s.TogglePalette(); return true }
func (ToggleThemePanelEvent) apply(s *Session) bool { s.ToggleThemePanel(); return true }
func (ToggleThemeListEvent) apply(s *Session) bool  { s.ToggleThemeList(); return true }
func (TogglePreviewEvent) apply(s *Session) bool    { s.TogglePreview(); return true }

func (e SelectThemeEvent) apply(s *Session) bool {
	return s.SelectThemeToken(e.Token)
}

func (e DropEvent) apply(s *Session) bool {
	p := dragdrop.RawPayload(e.Token)
	if !s.DragOver(p) {
		return false
	}
	_, ok := s.Drop(p)
	return ok
}

func (e RemoveEvent) apply(s *Session) bool {
	return s.Remove(e.ID)
}

// Dispatch applies ev and reports whether it was accepted. Events that
// carry unrecognised tokens or absent ids are absorbed and report false.
func (s *Session) Dispatch(ev Event) bool {
	if ev == nil {
		return false
	}
	return ev.apply(s)
}
