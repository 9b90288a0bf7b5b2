// Package theme maps the closed set of theme identifiers to their style bundles.
package theme

import (
	"fmt"

	fberrors "github.com/alexisbeaulieu97/formbuilder/pkg/errors"
)

// Channel names the untyped channel theme tokens arrive on.
const Channel = "theme"

// ID enumerates the available themes. The zero value is not a valid theme.
type ID int

const (
	Theme1 ID = iota + 1
	Theme2
	Theme3
)

// IDs returns every theme in display order.
func IDs() []ID {
	return []ID{Theme1, Theme2, Theme3}
}

// String returns the token form, e.g. "theme2".
func (id ID) String() string {
	if !id.Valid() {
		return "unknown"
	}
	return fmt.Sprintf("theme%d", int(id))
}

// Label returns the swatch caption, e.g. "Theme 2".
func (id ID) Label() string {
	if !id.Valid() {
		return "Unknown"
	}
	return fmt.Sprintf("Theme %d", int(id))
}

// Valid reports whether id is one of the enumerated themes.
func (id ID) Valid() bool {
	return id >= Theme1 && id <= Theme3
}

// ParseID decodes a theme token; unknown tokens yield a *errors.DecodeError.
func ParseID(token string) (ID, error) {
	for _, id := range IDs() {
		if id.String() == token {
			return id, nil
		}
	}
	return 0, fberrors.NewDecodeError(Channel, token)
}

// BorderKind names a terminal border treatment.
type BorderKind string

const (
	BorderNormal  BorderKind = "normal"
	BorderRounded BorderKind = "rounded"
	BorderThick   BorderKind = "thick"
	BorderDouble  BorderKind = "double"
)

// Terminal holds the presentation of a theme in a terminal. Colours are
// lipgloss colour strings: ANSI codes ("22") or hex ("#22c55e").
type Terminal struct {
	Background string
	Foreground string
	Accent     string
	Border     BorderKind
}

// Style is the bundle a theme applies: the canvas layout/typography class and
// the submit-button accent, plus their terminal rendition.
type Style struct {
	LayoutClass  string
	ButtonAccent string
	Terminal     Terminal
}
