// Package view derives the declarative visual tree of the form builder from
// session state. Building a tree is a pure function: it never mutates its
// inputs and never triggers further state changes.
package view

// Kind identifies what a node represents.
type Kind string

const (
	KindRoot             Kind = "root"
	KindNav              Kind = "nav"
	KindTitle            Kind = "title"
	KindPreviewSwitch    Kind = "preview-switch"
	KindPalette          Kind = "palette"
	KindPaletteToggle    Kind = "palette-toggle"
	KindPaletteEntry     Kind = "palette-entry"
	KindCanvas           Kind = "canvas"
	KindForm             Kind = "form"
	KindHeading          Kind = "heading"
	KindElement          Kind = "element"
	KindLabel            Kind = "label"
	KindInput            Kind = "input"
	KindDeleteButton     Kind = "delete-button"
	KindSubmitButton     Kind = "submit-button"
	KindThemePanel       Kind = "theme-panel"
	KindThemePanelToggle Kind = "theme-panel-toggle"
	KindThemeListToggle  Kind = "theme-list-toggle"
	KindThemeList        Kind = "theme-list"
	KindThemeSwatch      Kind = "theme-swatch"
)

// Attribute names used on nodes.
const (
	AttrChecked     = "checked"
	AttrExpanded    = "expanded"
	AttrDraggable   = "draggable"
	AttrDroppable   = "droppable"
	AttrPayload     = "payload"
	AttrIcon        = "icon"
	AttrElementID   = "element-id"
	AttrElementType = "element-type"
	AttrInputType   = "type"
	AttrPlaceholder = "placeholder"
	AttrTheme       = "theme"
	AttrSelected    = "selected"
)

// Node is one element of the visual tree.
type Node struct {
	Kind     Kind
	Key      string
	Text     string
	Class    string
	Attrs    map[string]string
	Children []Node
}

// Attr returns the attribute value for key, or "".
func (n Node) Attr(key string) string {
	return n.Attrs[key]
}

// Walk visits n and its descendants depth-first. Returning false from fn
// skips the node's children.
func Walk(n Node, fn func(Node) bool) {
	if !fn(n) {
		return
	}
	for _, child := range n.Children {
		Walk(child, fn)
	}
}

// Find returns every node of the given kind in document order.
func Find(root Node, kind Kind) []Node {
	var out []Node
	Walk(root, func(n Node) bool {
		if n.Kind == kind {
			out = append(out, n)
		}
		return true
	})
	return out
}

// Count returns how many nodes of the given kind the tree contains.
func Count(root Node, kind Kind) int {
	return len(Find(root, kind))
}

// First returns the first node of the given kind.
func First(root Node, kind Kind) (Node, bool) {
	nodes := Find(root, kind)
	if len(nodes) == 0 {
		return Node{}, false
	}
	return nodes[0], true
}
