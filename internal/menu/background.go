package menu

// Background supplies a default button for slots the menu did not
// populate. Each lookup returns a freshly owned Button, or nil.
type Background interface {
	Lookup(slot int) *Button
}

// BackgroundFunc adapts a function to the Background interface.
type BackgroundFunc func(slot int) *Button

// Lookup implements Background.
func (f BackgroundFunc) Lookup(slot int) *Button {
	if f == nil {
		return nil
	}
	return f(slot)
}

// Fill returns a background that places a silent, inert button showing the
// given icon on every slot.
func Fill(icon Icon) Background {
	return BackgroundFunc(func(int) *Button {
		return NewButton(icon).SetSilent()
	})
}

// Border returns a background that fills only the outer ring of a grid
// with the given number of columns.
func Border(size, columns int, icon Icon) Background {
	rows := 0
	if columns > 0 {
		rows = size / columns
	}
	return BackgroundFunc(func(slot int) *Button {
		if columns <= 0 {
			return nil
		}
		row, col := slot/columns, slot%columns
		if row == 0 || row == rows-1 || col == 0 || col == columns-1 {
			return NewButton(icon).SetSilent()
		}
		return nil
	})
}
