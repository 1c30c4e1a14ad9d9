package menu

// Icon produces the current visual content of a button. Callers must not
// rely on the identity of the returned value; dynamic icons rebuild it on
// every call.
type Icon interface {
	Content() Content
}

// Static is an icon with fixed content.
type Static struct {
	content Content
}

// NewIcon returns a static icon showing one item of the given kind.
func NewIcon(kind string) Static {
	return Static{content: Item(kind)}
}

// IconOf wraps existing content in a static icon.
func IconOf(c Content) Static {
	return Static{content: c.Clone()}
}

// EmptyIcon renders as an empty slot.
func EmptyIcon() Static {
	return Static{}
}

// Content implements Icon.
func (s Static) Content() Content {
	return s.content.Clone()
}

// WithName returns a copy of the icon with the given display name.
func (s Static) WithName(name string) Static {
	s.content.Name = name
	return s
}

// WithLore returns a copy of the icon with the given lore lines.
func (s Static) WithLore(lines ...string) Static {
	s.content.Lore = append([]string(nil), lines...)
	return s
}

// WithGlint returns a copy of the icon with the enchantment glint set.
func (s Static) WithGlint(glint bool) Static {
	s.content.Glint = glint
	return s
}

// WithAmount returns a copy of the icon showing the given stack size.
func (s Static) WithAmount(amount int) Static {
	s.content.Amount = amount
	return s
}

// Dynamic regenerates its content on every call.
type Dynamic func() Content

// Content implements Icon.
func (d Dynamic) Content() Content {
	if d == nil {
		return Nothing
	}
	return d()
}
