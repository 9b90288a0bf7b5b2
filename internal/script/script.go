// Package script decodes YAML replay scripts into session events so a form
// can be built headlessly.
//
//	name: contact form
//	events:
//	  - toggle: palette      # palette | theme_panel | theme_list | preview
//	  - drop: fullName       # raw transfer token
//	  - remove: 1            # element id
//	  - theme: theme2        # raw theme token
package script

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"

	"github.com/alexisbeaulieu97/formbuilder/internal/document"
	"github.com/alexisbeaulieu97/formbuilder/internal/session"
	fberrors "github.com/alexisbeaulieu97/formbuilder/pkg/errors"
)

// Toggle targets accepted by a toggle step.
const (
	TogglePalette    = "palette"
	ToggleThemePanel = "theme_panel"
	ToggleThemeList  = "theme_list"
	TogglePreview    = "preview"
)

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// Script is a decoded replay script.
type Script struct {
	Name  string `yaml:"name"`
	Steps []Step `yaml:"events" validate:"min=1,dive"`
}

// Step is one scripted interaction. Exactly one action field is set.
// Tokens are kept raw: unknown drop and theme tokens are valid script content
// and are absorbed by the session like any other unrecognised payload.
type Step struct {
	Toggle string  `yaml:"toggle,omitempty" validate:"omitempty,oneof=palette theme_panel theme_list preview"`
	Drop   *string `yaml:"drop,omitempty"`
	Remove *uint64 `yaml:"remove,omitempty"`
	Theme  *string `yaml:"theme,omitempty"`

	line int
}

// Line returns the 1-based source line of the step, or 0 when unknown.
func (s Step) Line() int {
	return s.line
}

func (s Step) actions() int {
	n := 0
	if s.Toggle != "" {
		n++
	}
	if s.Drop != nil {
		n++
	}
	if s.Remove != nil {
		n++
	}
	if s.Theme != nil {
		n++
	}
	return n
}

// Event converts the step to its session event.
func (s Step) Event() session.Event {
	switch {
	case s.Drop != nil:
		return session.DropEvent{Token: *s.Drop}
	case s.Theme != nil:
		return session.SelectThemeEvent{Token: *s.Theme}
	case s.Remove != nil:
		return session.RemoveEvent{ID: document.ID(*s.Remove)}
	}

	switch s.Toggle {
	case TogglePalette:
		return session.TogglePaletteEvent{}
	case ToggleThemePanel:
		return session.ToggleThemePanelEvent{}
	case ToggleThemeList:
		return session.ToggleThemeListEvent{}
	case TogglePreview:
		return session.TogglePreviewEvent{}
	}
	return nil
}

// Events converts every step in order.
func (s *Script) Events() []session.Event {
	events := make([]session.Event, 0, len(s.Steps))
	for _, step := range s.Steps {
		if ev := step.Event(); ev != nil {
			events = append(events, ev)
		}
	}
	return events
}

// Load reads and validates the script at path.
func Load(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fberrors.NewParseError(path, 0, err)
	}
	return Parse(path, data)
}

// Parse decodes and validates a script. path is only used in error messages.
func Parse(path string, data []byte) (*Script, error) {
	var s Script
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil && !errors.Is(err, io.EOF) {
		return nil, fberrors.NewParseError(path, extractLine(err), err)
	}
	attachLines(&s, data)

	if err := Validate(&s); err != nil {
		return nil, err
	}
	return &s, nil
}

// attachLines copies the source line of each events entry onto its step.
func attachLines(s *Script, data []byte) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil || len(root.Content) == 0 {
		return
	}
	doc := root.Content[0]
	if doc.Kind != yaml.MappingNode {
		return
	}
	for i := 0; i+1 < len(doc.Content); i += 2 {
		if doc.Content[i].Value != "events" {
			continue
		}
		for j, item := range doc.Content[i+1].Content {
			if j < len(s.Steps) {
				s.Steps[j].line = item.Line
			}
		}
	}
}

func extractLine(err error) int {
	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	if _, scanErr := fmt.Sscanf(matches[1], "%d", &line); scanErr != nil {
		return 0
	}
	return line
}
