// Package tui hosts a form-building session in a bubbletea program. Keyboard
// and mouse input are translated into session operations; the screen is the
// session's view tree drawn by the render package.
package tui

import (
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/formbuilder/internal/dragdrop"
	"github.com/alexisbeaulieu97/formbuilder/internal/logger"
	"github.com/alexisbeaulieu97/formbuilder/internal/render"
	"github.com/alexisbeaulieu97/formbuilder/internal/session"
)

// Options configures the builder screen.
type Options struct {
	Session *session.Session
	Logger  *logger.Logger
	// Unicode enables emoji and box glyphs in the palette and theme panel.
	Unicode bool
	// Clipboard replaces the system clipboard writer, mainly for tests.
	Clipboard func(string) error
}

// Model contains the bubbletea state of the builder screen. The document and
// UI flags live in the session; the model only tracks presentation state.
type Model struct {
	session *session.Session
	log     *logger.Logger

	keys keyMap
	help help.Model

	// Pointer drag in flight, started on a palette entry.
	drag     *dragdrop.Payload
	overDrop bool

	// Index into session.Elements() of the highlighted element.
	cursor int

	notice    string
	noticeErr bool
	noticeSeq int

	width   int
	height  int
	unicode bool

	clipboard func(string) error
	quitting  bool
}

// NewModel constructs the builder screen for opts.Session, starting a fresh
// session when none is supplied.
func NewModel(opts Options) Model {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}
	s := opts.Session
	if s == nil {
		s = session.New(session.Options{Logger: log})
	}
	write := opts.Clipboard
	if write == nil {
		write = clipboard.WriteAll
	}

	m := Model{
		session:   s,
		log:       log.WithFields(map[string]any{"component": "tui", "session_id": s.ID()}),
		keys:      newKeyMap(s.Catalog()),
		help:      help.New(),
		width:     render.DefaultWidth,
		unicode:   opts.Unicode,
		clipboard: write,
	}
	m.syncKeys()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Session exposes the hosted session.
func (m Model) Session() *session.Session {
	return m.session
}

// Dragging reports whether a pointer drag is in flight.
func (m Model) Dragging() bool {
	return m.drag != nil
}

// Cursor returns the index of the highlighted element.
func (m Model) Cursor() int {
	return m.cursor
}

// Notice returns the status line text.
func (m Model) Notice() string {
	return m.notice
}

func (m Model) frame() render.Frame {
	return render.Render(m.session.Tree(), m.session.Style(), render.Options{
		Width:    m.width,
		Unicode:  m.unicode,
		Selected: m.selectedKey(),
		Dropping: m.drag != nil && m.overDrop,
		Themes:   m.session.Themes(),
	})
}

func (m Model) selectedKey() string {
	elements := m.session.Elements()
	if m.cursor < 0 || m.cursor >= len(elements) {
		return ""
	}
	return elements[m.cursor].ID.String()
}

// clampCursor keeps the cursor on an existing element after removals.
func (m *Model) clampCursor() {
	n := len(m.session.Elements())
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m *Model) syncKeys() {
	m.keys.sync(m.session.UI(), len(m.session.Elements()), m.drag != nil)
}

func (m *Model) setNotice(text string, isErr bool) tea.Cmd {
	m.noticeSeq++
	m.notice = text
	m.noticeErr = isErr
	return clearNoticeCmd(m.noticeSeq)
}
