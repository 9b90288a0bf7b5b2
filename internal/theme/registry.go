package theme

// Registry is a fixed, total mapping from ID to Style. It is immutable after
// construction and safe to share.
type Registry struct {
	styles map[ID]Style
}

func builtinStyles() map[ID]Style {
	return map[ID]Style{
		Theme1: {
			LayoutClass:  "bg-blue-100 font-sans text-base",
			ButtonAccent: "bg-blue-500",
			Terminal: Terminal{
				Background: "#dbeafe",
				Foreground: "#1e3a8a",
				Accent:     "#3b82f6",
				Border:     BorderNormal,
			},
		},
		Theme2: {
			LayoutClass:  "bg-green-100 font-serif text-lg",
			ButtonAccent: "bg-green-500",
			Terminal: Terminal{
				Background: "#dcfce7",
				Foreground: "#14532d",
				Accent:     "#22c55e",
				Border:     BorderRounded,
			},
		},
		Theme3: {
			LayoutClass:  "bg-yellow-100 font-mono text-xl",
			ButtonAccent: "bg-yellow-500",
			Terminal: Terminal{
				Background: "#fef9c3",
				Foreground: "#713f12",
				Accent:     "#eab308",
				Border:     BorderDouble,
			},
		},
	}
}

// DefaultRegistry returns the built-in theme bundles.
func DefaultRegistry() *Registry {
	return &Registry{styles: builtinStyles()}
}

// NewRegistry builds a registry from the built-in bundles with terminal
// overrides applied. Empty override fields keep the built-in value; overrides
// for invalid ids are ignored. The layout class and button accent are fixed.
func NewRegistry(overrides map[ID]Terminal) *Registry {
	styles := builtinStyles()
	for id, o := range overrides {
		style, ok := styles[id]
		if !ok {
			continue
		}
		if o.Background != "" {
			style.Terminal.Background = o.Background
		}
		if o.Foreground != "" {
			style.Terminal.Foreground = o.Foreground
		}
		if o.Accent != "" {
			style.Terminal.Accent = o.Accent
		}
		if o.Border != "" {
			style.Terminal.Border = o.Border
		}
		styles[id] = style
	}
	return &Registry{styles: styles}
}

// StyleFor returns the bundle for id. Valid ids always resolve; an invalid id
// cannot be constructed through ParseID and resolves to the zero Style.
func (r *Registry) StyleFor(id ID) Style {
	if r == nil {
		return builtinStyles()[id]
	}
	return r.styles[id]
}
