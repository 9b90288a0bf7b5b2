package element

// InputKind is the HTML-style input kind rendered for a field.
type InputKind string

const (
	InputText  InputKind = "text"
	InputEmail InputKind = "email"
	InputTel   InputKind = "tel"
)

// Input is a single input control inside an element's group.
type Input struct {
	Kind        InputKind
	Placeholder string
}

// Template describes how an element type appears in the palette and on the canvas.
type Template struct {
	Type         Type
	Label        string
	PaletteLabel string
	Icon         string
	Shortcut     string
	Inputs       []Input
}

// Catalog is the read-only registry of element templates.
type Catalog struct {
	templates map[Type]Template
}

// DefaultCatalog returns the built-in catalog of full name, email and phone.
func DefaultCatalog() *Catalog {
	return newCatalog(
		Template{
			Type:         FullName,
			Label:        "Name",
			PaletteLabel: "Full Name",
			Icon:         "👤",
			Shortcut:     "n",
			Inputs: []Input{
				{Kind: InputText, Placeholder: "First Name"},
				{Kind: InputText, Placeholder: "Last Name"},
			},
		},
		Template{
			Type:         Email,
			Label:        "Email",
			PaletteLabel: "Email",
			Icon:         "📧",
			Shortcut:     "e",
			Inputs:       []Input{{Kind: InputEmail, Placeholder: "Enter your email"}},
		},
		Template{
			Type:         Phone,
			Label:        "Phone",
			PaletteLabel: "Phone",
			Icon:         "📞",
			Shortcut:     "p",
			Inputs:       []Input{{Kind: InputTel, Placeholder: "Enter your phone number"}},
		},
	)
}

func newCatalog(templates ...Template) *Catalog {
	c := &Catalog{templates: make(map[Type]Template, len(templates))}
	for _, tpl := range templates {
		c.templates[tpl.Type] = tpl
	}
	return c
}

// Lookup returns the template for t.
func (c *Catalog) Lookup(t Type) (Template, bool) {
	if c == nil {
		return Template{}, false
	}
	tpl, ok := c.templates[t]
	if !ok {
		return Template{}, false
	}
	tpl.Inputs = append([]Input(nil), tpl.Inputs...)
	return tpl, true
}

// Entries returns the palette entries in palette order.
func (c *Catalog) Entries() []Template {
	entries := make([]Template, 0, len(Types()))
	for _, t := range Types() {
		if tpl, ok := c.Lookup(t); ok {
			entries = append(entries, tpl)
		}
	}
	return entries
}

// ByShortcut finds the template bound to a palette key.
func (c *Catalog) ByShortcut(key string) (Template, bool) {
	for _, tpl := range c.Entries() {
		if tpl.Shortcut == key {
			return tpl, true
		}
	}
	return Template{}, false
}
