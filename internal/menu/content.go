package menu

import "slices"

// Content is the visual value shown in one surface slot.
type Content struct {
	Kind   string
	Name   string
	Lore   []string
	Amount int
	Glint  bool
}

// Nothing is the empty slot content.
var Nothing = Content{}

// Item builds content of the given kind with an amount of one.
func Item(kind string) Content {
	return Content{Kind: kind, Amount: 1}
}

// IsEmpty reports whether the content represents an empty slot.
func (c Content) IsEmpty() bool {
	return c.Kind == "" || c.Amount <= 0
}

// Similar reports whether both contents belong to the same stack class.
// Amount is ignored; every other attribute must match.
func (c Content) Similar(other Content) bool {
	if c.IsEmpty() || other.IsEmpty() {
		return false
	}
	return c.Kind == other.Kind &&
		c.Name == other.Name &&
		c.Glint == other.Glint &&
		slices.Equal(c.Lore, other.Lore)
}

// Equal reports whether both contents render identically.
func (c Content) Equal(other Content) bool {
	if c.IsEmpty() && other.IsEmpty() {
		return true
	}
	return c.Amount == other.Amount && c.Similar(other)
}

// Clone returns a copy that shares no backing storage with c.
func (c Content) Clone() Content {
	c.Lore = slices.Clone(c.Lore)
	return c
}

// Label returns the display name, falling back to the kind.
func (c Content) Label() string {
	if c.Name != "" {
		return c.Name
	}
	return c.Kind
}
