package view

import (
	"strconv"

	"github.com/alexisbeaulieu97/formbuilder/internal/document"
	"github.com/alexisbeaulieu97/formbuilder/internal/element"
	"github.com/alexisbeaulieu97/formbuilder/internal/theme"
	"github.com/alexisbeaulieu97/formbuilder/internal/uimode"
)

// Input is everything a render pass depends on.
type Input struct {
	Elements []document.PlacedElement
	UI       uimode.State
	Style    theme.Style
	Catalog  *element.Catalog
	Themes   *theme.Registry
}

// Build derives the visual tree. Side panels and delete affordances are left
// out entirely while preview mode is on.
func Build(in Input) Node {
	root := Node{Kind: KindRoot, Key: "root"}
	root.Children = append(root.Children, buildNav(in.UI))
	if in.UI.PalettesVisible() {
		root.Children = append(root.Children, buildPalette(in.UI, in.Catalog))
	}
	root.Children = append(root.Children, buildCanvas(in))
	if in.UI.PalettesVisible() {
		root.Children = append(root.Children, buildThemePanel(in.UI, in.Themes))
	}
	return root
}

func buildNav(ui uimode.State) Node {
	return Node{
		Kind: KindNav,
		Key:  "nav",
		Children: []Node{
			{Kind: KindTitle, Key: "title", Text: "Form Builder"},
			{
				Kind:  KindPreviewSwitch,
				Key:   "preview",
				Text:  "Preview Form",
				Attrs: map[string]string{AttrChecked: boolAttr(ui.PreviewMode)},
			},
		},
	}
}

func buildPalette(ui uimode.State, catalog *element.Catalog) Node {
	toggle := "Add Element +"
	if ui.PaletteExpanded {
		toggle = "Close Sidebar -"
	}

	palette := Node{
		Kind:  KindPalette,
		Key:   "palette",
		Attrs: map[string]string{AttrExpanded: boolAttr(ui.PaletteExpanded)},
		Children: []Node{
			{Kind: KindPaletteToggle, Key: "palette-toggle", Text: toggle},
		},
	}
	if !ui.PaletteExpanded || catalog == nil {
		return palette
	}

	for _, tpl := range catalog.Entries() {
		palette.Children = append(palette.Children, Node{
			Kind: KindPaletteEntry,
			Key:  tpl.Type.String(),
			Text: tpl.PaletteLabel,
			Attrs: map[string]string{
				AttrDraggable: "true",
				AttrPayload:   tpl.Type.String(),
				AttrIcon:      tpl.Icon,
			},
		})
	}
	return palette
}

func buildCanvas(in Input) Node {
	form := Node{
		Kind:     KindForm,
		Key:      "form",
		Children: []Node{{Kind: KindHeading, Key: "heading", Text: "Form"}},
	}

	for _, el := range in.Elements {
		node, ok := buildElement(el, in.Catalog, in.UI.PreviewMode)
		if !ok {
			continue
		}
		form.Children = append(form.Children, node)
	}

	form.Children = append(form.Children, Node{
		Kind:  KindSubmitButton,
		Key:   "submit",
		Text:  "Submit",
		Class: in.Style.ButtonAccent,
	})

	return Node{
		Kind:     KindCanvas,
		Key:      "canvas",
		Class:    in.Style.LayoutClass,
		Attrs:    map[string]string{AttrDroppable: "true"},
		Children: []Node{form},
	}
}

func buildElement(el document.PlacedElement, catalog *element.Catalog, preview bool) (Node, bool) {
	tpl, ok := catalog.Lookup(el.Type)
	if !ok {
		return Node{}, false
	}

	id := el.ID.String()
	node := Node{
		Kind: KindElement,
		Key:  id,
		Attrs: map[string]string{
			AttrElementID:   id,
			AttrElementType: el.Type.String(),
		},
		Children: []Node{{Kind: KindLabel, Key: id + "-label", Text: tpl.Label}},
	}
	for i, input := range tpl.Inputs {
		node.Children = append(node.Children, Node{
			Kind: KindInput,
			Key:  id + "-input-" + strconv.Itoa(i),
			Attrs: map[string]string{
				AttrInputType:   string(input.Kind),
				AttrPlaceholder: input.Placeholder,
			},
		})
	}
	if !preview {
		node.Children = append(node.Children, Node{
			Kind:  KindDeleteButton,
			Key:   id,
			Text:  "🗑",
			Attrs: map[string]string{AttrElementID: id},
		})
	}
	return node, true
}

func buildThemePanel(ui uimode.State, themes *theme.Registry) Node {
	panel := Node{
		Kind:     KindThemePanel,
		Key:      "theme-panel",
		Attrs:    map[string]string{AttrExpanded: boolAttr(ui.ThemePanelExpanded)},
		Children: []Node{{Kind: KindThemePanelToggle, Key: "theme-panel-toggle", Text: "🎨"}},
	}
	if !ui.ThemePanelExpanded {
		return panel
	}

	listToggle := "Themes +"
	if ui.ThemeListVisible {
		listToggle = "Close Themes -"
	}
	panel.Children = append(panel.Children, Node{Kind: KindThemeListToggle, Key: "theme-list-toggle", Text: listToggle})
	if !ui.ThemeListVisible {
		return panel
	}

	list := Node{Kind: KindThemeList, Key: "theme-list"}
	for _, id := range theme.IDs() {
		list.Children = append(list.Children, Node{
			Kind:  KindThemeSwatch,
			Key:   id.String(),
			Text:  id.Label(),
			Class: themes.StyleFor(id).ButtonAccent,
			Attrs: map[string]string{
				AttrTheme:    id.String(),
				AttrSelected: boolAttr(id == ui.ActiveTheme),
			},
		})
	}
	panel.Children = append(panel.Children, list)
	return panel
}

func boolAttr(b bool) string {
	if b {
		return "true"
	}
	return "false"
}
