package render

import (
	"fmt"
	"strings"

	"github.com/alexisbeaulieu97/formbuilder/internal/view"
)

// Outline renders the canvas of root as plain text, one line per form part:
//
//	Form [bg-blue-100 font-sans text-base]
//	#1 Name: <text "First Name"> <text "Last Name">
//	[Submit] bg-blue-500
func Outline(root view.Node) string {
	var b strings.Builder
	canvas := childOf(root, view.KindCanvas)
	form := childOf(canvas, view.KindForm)

	for _, c := range form.Children {
		switch c.Kind {
		case view.KindHeading:
			fmt.Fprintf(&b, "%s [%s]\n", c.Text, canvas.Class)
		case view.KindElement:
			b.WriteString(outlineElement(c))
			b.WriteByte('\n')
		case view.KindSubmitButton:
			fmt.Fprintf(&b, "[%s] %s\n", c.Text, c.Class)
		}
	}
	return b.String()
}

func outlineElement(n view.Node) string {
	parts := []string{"#" + n.Key}
	for _, c := range n.Children {
		switch c.Kind {
		case view.KindLabel:
			parts = append(parts, c.Text+":")
		case view.KindInput:
			parts = append(parts, fmt.Sprintf("<%s %q>", c.Attr(view.AttrInputType), c.Attr(view.AttrPlaceholder)))
		}
	}
	return strings.Join(parts, " ")
}
