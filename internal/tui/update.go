package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/formbuilder/internal/document"
	"github.com/alexisbeaulieu97/formbuilder/internal/element"
	"github.com/alexisbeaulieu97/formbuilder/internal/render"
	"github.com/alexisbeaulieu97/formbuilder/internal/theme"
	"github.com/alexisbeaulieu97/formbuilder/internal/view"
)

// Update handles bubbletea messages and forwards user intent to the session.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	m.syncKeys()

	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width

	case tea.KeyMsg:
		m, cmd = m.handleKeyPress(msg)

	case tea.MouseMsg:
		m = m.handleMouse(msg)

	case OutlineCopiedMsg:
		m.log.Debug("outline copied", "lines", msg.Lines)
		cmd = m.setNotice(fmt.Sprintf("Copied form outline (%d lines)", msg.Lines), false)

	case ErrorMsg:
		m.log.Error(msg.Err, "side effect failed")
		cmd = m.setNotice(msg.Err.Error(), true)

	case ClearNoticeMsg:
		if msg.Seq == m.noticeSeq {
			m.notice = ""
			m.noticeErr = false
		}
	}

	m.syncKeys()
	return m, cmd
}

func (m Model) handleKeyPress(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll

	case key.Matches(msg, m.keys.Cancel):
		m.cancelDrag("escape")

	case key.Matches(msg, m.keys.Palette):
		m.session.TogglePalette()

	case key.Matches(msg, m.keys.Place):
		if tpl, ok := m.session.Catalog().ByShortcut(msg.String()); ok {
			m.place(tpl.Type)
		}

	case key.Matches(msg, m.keys.ThemePanel):
		m.session.ToggleThemePanel()

	case key.Matches(msg, m.keys.ThemeList):
		m.session.ToggleThemeList()

	case key.Matches(msg, m.keys.Swatch):
		ids := theme.IDs()
		if index := int(msg.String()[0] - '1'); index >= 0 && index < len(ids) {
			m.session.SelectTheme(ids[index])
		}

	case key.Matches(msg, m.keys.Preview):
		m.session.TogglePreview()

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.session.Elements())-1 {
			m.cursor++
		}

	case key.Matches(msg, m.keys.Remove):
		m.removeAt(m.cursor)

	case key.Matches(msg, m.keys.Copy):
		return m, copyOutlineCmd(render.Outline(m.session.Tree()), m.clipboard)
	}

	return m, nil
}

func (m Model) handleMouse(msg tea.MouseMsg) Model {
	frame := m.frame()

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return m
		}
		if zone, ok := frame.Hit(msg.X, msg.Y); ok {
			m.press(zone)
		}

	case tea.MouseActionMotion:
		if m.drag != nil {
			m.overDrop = inCanvas(frame, msg.X, msg.Y) && m.session.DragOver(*m.drag)
		}

	case tea.MouseActionRelease:
		if m.drag == nil {
			return m
		}
		if !inCanvas(frame, msg.X, msg.Y) {
			m.cancelDrag("released outside canvas")
			return m
		}
		payload := *m.drag
		m.drag = nil
		m.overDrop = false
		if m.session.DragOver(payload) {
			if _, ok := m.session.Drop(payload); ok {
				m.cursor = len(m.session.Elements()) - 1
			}
		}
	}

	return m
}

// press activates the interactive node under a left click.
func (m *Model) press(zone render.Zone) {
	switch zone.Kind {
	case view.KindPaletteToggle:
		m.session.TogglePalette()

	case view.KindPaletteEntry:
		t, err := element.ParseType(zone.Key)
		if err != nil {
			m.log.Debug("drag start ignored", "error", err.Error())
			return
		}
		payload := m.session.DragStart(t)
		m.drag = &payload
		m.overDrop = false

	case view.KindThemePanelToggle:
		m.session.ToggleThemePanel()

	case view.KindThemeListToggle:
		m.session.ToggleThemeList()

	case view.KindThemeSwatch:
		m.session.SelectThemeToken(zone.Key)

	case view.KindPreviewSwitch:
		m.session.TogglePreview()

	case view.KindDeleteButton:
		if id, ok := document.ParseID(zone.Key); ok {
			m.session.Remove(id)
			m.clampCursor()
		}

	case view.KindElement:
		for i, el := range m.session.Elements() {
			if el.ID.String() == zone.Key {
				m.cursor = i
				return
			}
		}
	}
}

func (m *Model) place(t element.Type) {
	payload := m.session.DragStart(t)
	if !m.session.DragOver(payload) {
		return
	}
	if _, ok := m.session.Drop(payload); ok {
		m.cursor = len(m.session.Elements()) - 1
	}
}

func (m *Model) removeAt(index int) {
	elements := m.session.Elements()
	if index < 0 || index >= len(elements) {
		return
	}
	m.session.Remove(elements[index].ID)
	m.clampCursor()
}

func (m *Model) cancelDrag(reason string) {
	if m.drag == nil {
		return
	}
	m.log.Debug("drag cancelled", "reason", reason, "payload", m.drag.Get(element.TransferKey))
	m.drag = nil
	m.overDrop = false
}

func inCanvas(frame render.Frame, x, y int) bool {
	for _, zone := range frame.ZonesOf(view.KindCanvas) {
		if zone.Rect.Contains(x, y) {
			return true
		}
	}
	return false
}
