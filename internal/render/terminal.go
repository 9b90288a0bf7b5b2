package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/formbuilder/internal/theme"
	"github.com/alexisbeaulieu97/formbuilder/internal/view"
)

const (
	// DefaultWidth is used when Options.Width is unset.
	DefaultWidth = 100

	paletteCollapsedWidth = 19
	paletteExpandedWidth  = 26
	panelCollapsedWidth   = 9
	panelExpandedWidth    = 20
	minCanvasWidth        = 30
)

// Options tunes a render pass.
type Options struct {
	Width int
	// Unicode enables emoji icons and glyphs; when false, ASCII stand-ins are
	// used so every character occupies exactly one cell.
	Unicode bool
	// Selected is the element id to highlight.
	Selected string
	// Dropping marks the canvas as an active drop target.
	Dropping bool
	// Themes resolves swatch colours; nil uses the built-in registry.
	Themes *theme.Registry
}

type renderer struct {
	opts   Options
	colors palette
}

// Render draws root using the active theme style.
func Render(root view.Node, style theme.Style, opts Options) Frame {
	if opts.Width <= 0 {
		opts.Width = DefaultWidth
	}
	if opts.Themes == nil {
		opts.Themes = theme.DefaultRegistry()
	}
	r := renderer{opts: opts, colors: newPalette(style.Terminal)}

	var frame Frame
	nav := r.nav(childOf(root, view.KindNav), opts.Width)
	frame.Zones = append(frame.Zones, nav.offset(0, 0)...)
	bodyY := lipgloss.Height(nav.out)

	var left, right block
	if n, ok := findChild(root, view.KindPalette); ok {
		left = r.palette(n)
	}
	if n, ok := findChild(root, view.KindThemePanel); ok {
		right = r.themePanel(n)
	}
	canvasWidth := opts.Width - widthOf(left) - widthOf(right)
	if canvasWidth < minCanvasWidth {
		canvasWidth = minCanvasWidth
	}
	center := r.canvas(childOf(root, view.KindCanvas), canvasWidth)

	var columns []string
	x := 0
	for _, b := range []block{left, center, right} {
		if b.out == "" {
			continue
		}
		frame.Zones = append(frame.Zones, b.offset(x, bodyY)...)
		columns = append(columns, b.out)
		x += lipgloss.Width(b.out)
	}

	body := lipgloss.JoinHorizontal(lipgloss.Top, columns...)
	frame.Output = lipgloss.JoinVertical(lipgloss.Left, nav.out, body)
	frame.Width = lipgloss.Width(frame.Output)
	frame.Height = lipgloss.Height(frame.Output)
	return frame
}

func (r renderer) nav(n view.Node, width int) block {
	title := "Form Builder"
	sw := view.Node{Kind: view.KindPreviewSwitch, Key: "preview", Text: "Preview Form"}
	for _, c := range n.Children {
		switch c.Kind {
		case view.KindTitle:
			title = c.Text
		case view.KindPreviewSwitch:
			sw = c
		}
	}

	box := "[ ]"
	if sw.Attr(view.AttrChecked) == "true" {
		box = "[x]"
	}
	switchText := sw.Text + " " + box

	gap := width - 2 - lipgloss.Width(title) - lipgloss.Width(switchText)
	if gap < 1 {
		gap = 1
	}
	line := title + strings.Repeat(" ", gap) + switchText

	return block{
		out: navStyle.Width(width).Render(line),
		zones: []Zone{{
			Kind: view.KindPreviewSwitch,
			Key:  sw.Key,
			Rect: Rect{X: 1 + lipgloss.Width(title) + gap, Y: 0, W: lipgloss.Width(switchText), H: 1},
		}},
	}
}

func (r renderer) palette(n view.Node) block {
	width := paletteCollapsedWidth
	expanded := n.Attr(view.AttrExpanded) == "true"
	if expanded {
		width = paletteExpandedWidth
	}

	var lines []string
	var zones []Zone
	for _, c := range n.Children {
		switch c.Kind {
		case view.KindPaletteToggle:
			text := "[" + c.Text + "]"
			zones = append(zones, Zone{Kind: c.Kind, Key: c.Key, Rect: Rect{X: 2, Y: 1 + len(lines), W: lipgloss.Width(text), H: 1}})
			lines = append(lines, text)
			if expanded {
				lines = append(lines, "")
			}
		case view.KindPaletteEntry:
			text := c.Text
			if icon := c.Attr(view.AttrIcon); r.opts.Unicode && icon != "" {
				text = icon + " " + text
			} else {
				text = "+ " + text
			}
			zones = append(zones, Zone{Kind: c.Kind, Key: c.Key, Rect: Rect{X: 1, Y: 1 + len(lines), H: 1}})
			lines = append(lines, entryStyle.Render(text))
		}
	}

	out := sidePanelStyle.Width(width).Render(strings.Join(lines, "\n"))
	inner := lipgloss.Width(out) - 2
	for i := range zones {
		if zones[i].Kind == view.KindPaletteEntry {
			zones[i].Rect.W = inner
		}
	}
	return block{out: out, zones: zones}
}

func (r renderer) themePanel(n view.Node) block {
	width := panelCollapsedWidth
	if n.Attr(view.AttrExpanded) == "true" {
		width = panelExpandedWidth
	}

	var lines []string
	var zones []Zone
	addLine := func(c view.Node, text string) {
		zones = append(zones, Zone{Kind: c.Kind, Key: c.Key, Rect: Rect{X: 2, Y: 1 + len(lines), W: lipgloss.Width(text), H: 1}})
		lines = append(lines, text)
	}

	for _, c := range n.Children {
		switch c.Kind {
		case view.KindThemePanelToggle:
			addLine(c, "["+r.glyph(c.Text, "Theme")+"]")
		case view.KindThemeListToggle:
			lines = append(lines, "")
			addLine(c, "["+c.Text+"]")
		case view.KindThemeList:
			for _, swatch := range c.Children {
				addLine(swatch, r.swatch(swatch))
			}
		}
	}

	return block{out: sidePanelStyle.Width(width).Render(strings.Join(lines, "\n")), zones: zones}
}

func (r renderer) swatch(n view.Node) string {
	mark := r.glyph("○", "-")
	if n.Attr(view.AttrSelected) == "true" {
		mark = r.glyph("●", "*")
	}
	id, err := theme.ParseID(n.Attr(view.AttrTheme))
	if err != nil {
		return mark + " " + n.Text
	}
	accent := lipgloss.Color(r.opts.Themes.StyleFor(id).Terminal.Accent)
	return lipgloss.NewStyle().Foreground(accent).Bold(true).Render(mark + " " + n.Text)
}

func (r renderer) canvas(n view.Node, width int) block {
	border := r.colors.border
	if r.opts.Dropping {
		border = lipgloss.DoubleBorder()
	}
	style := lipgloss.NewStyle().
		BorderStyle(border).
		BorderForeground(r.colors.accent).
		Background(r.colors.background).
		Padding(1, 2)

	inner := width - 6
	const contentX, contentY = 3, 2

	var parts []string
	var zones []Zone
	y := 0
	form := childOf(n, view.KindForm)
	for _, c := range form.Children {
		switch c.Kind {
		case view.KindHeading:
			text := c.Text
			if r.opts.Dropping {
				text += r.glyph("  ⇣ drop to add", "  (drop to add)")
			}
			heading := lipgloss.NewStyle().Bold(true).Foreground(r.colors.foreground).Render(text)
			parts = append(parts, lipgloss.PlaceHorizontal(inner, lipgloss.Center, heading))
			y++
		case view.KindElement:
			parts = append(parts, "")
			y++
			el := r.element(c, inner)
			zones = append(zones, el.offset(contentX, contentY+y)...)
			parts = append(parts, el.out)
			y += lipgloss.Height(el.out)
		case view.KindSubmitButton:
			parts = append(parts, "")
			button := submitStyle.Background(r.colors.accent).Render(c.Text)
			parts = append(parts, lipgloss.PlaceHorizontal(inner, lipgloss.Center, button))
			y += 2
		}
	}

	out := style.Width(inner + 4).Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
	canvasZone := Zone{Kind: view.KindCanvas, Key: n.Key, Rect: Rect{W: lipgloss.Width(out), H: lipgloss.Height(out)}}
	return block{out: out, zones: append([]Zone{canvasZone}, zones...)}
}

func (r renderer) element(n view.Node, width int) block {
	contentWidth := width - 4

	var label string
	var inputs []view.Node
	var remove *view.Node
	for i, c := range n.Children {
		switch c.Kind {
		case view.KindLabel:
			label = labelStyle.Render(c.Text)
		case view.KindInput:
			inputs = append(inputs, c)
		case view.KindDeleteButton:
			remove = &n.Children[i]
		}
	}

	var zones []Zone
	head := label
	if remove != nil {
		button := deleteStyle.Render("[" + r.glyph(remove.Text, "x") + "]")
		gap := contentWidth - lipgloss.Width(label) - lipgloss.Width(button)
		if gap < 1 {
			gap = 1
		}
		head = label + strings.Repeat(" ", gap) + button
		zones = append(zones, Zone{
			Kind: view.KindDeleteButton,
			Key:  remove.Key,
			Rect: Rect{X: 2 + lipgloss.Width(label) + gap, Y: 1, W: lipgloss.Width(button), H: 1},
		})
	}

	style := elementStyle
	if n.Key == r.opts.Selected {
		style = style.BorderStyle(lipgloss.ThickBorder()).BorderForeground(r.colors.accent)
	}
	out := style.Width(width - 2).Render(head + "\n" + inputLine(inputs, contentWidth))

	elementZone := Zone{Kind: view.KindElement, Key: n.Key, Rect: Rect{W: lipgloss.Width(out), H: lipgloss.Height(out)}}
	return block{out: out, zones: append([]Zone{elementZone}, zones...)}
}

func inputLine(inputs []view.Node, width int) string {
	if len(inputs) == 0 {
		return ""
	}
	boxWidth := (width - (len(inputs) - 1)) / len(inputs)
	boxes := make([]string, 0, len(inputs))
	for _, in := range inputs {
		boxes = append(boxes, inputStyle.Render(inputBox(in.Attr(view.AttrPlaceholder), boxWidth)))
	}
	return strings.Join(boxes, " ")
}

func inputBox(placeholder string, width int) string {
	inner := width - 2
	if inner < 1 {
		inner = 1
	}
	if len(placeholder) > inner {
		placeholder = placeholder[:inner]
	}
	return fmt.Sprintf("[%-*s]", inner, placeholder)
}

func (r renderer) glyph(unicode, ascii string) string {
	if r.opts.Unicode {
		return unicode
	}
	return ascii
}

func findChild(n view.Node, kind view.Kind) (view.Node, bool) {
	for _, c := range n.Children {
		if c.Kind == kind {
			return c, true
		}
	}
	return view.Node{}, false
}

func childOf(n view.Node, kind view.Kind) view.Node {
	c, _ := findChild(n, kind)
	return c
}

func widthOf(b block) int {
	if b.out == "" {
		return 0
	}
	return lipgloss.Width(b.out)
}
