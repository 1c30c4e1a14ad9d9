package menu

// Columns is the width of every menu grid.
const Columns = 9

// MaxRows is the largest supported menu height.
const MaxRows = 6

// Rows returns the size of a menu with the given number of rows.
func Rows(n int) int {
	if n < 1 || n > MaxRows {
		violate("rows", "row count %d outside 1..%d", n, MaxRows)
	}
	return n * Columns
}

// Menu describes a menu that can be opened any number of times. Each open
// produces an independent Session.
type Menu struct {
	Title      string
	Size       int
	Background Background
	Validator  Validator

	// Setup places the buttons for the viewing user before the surface is
	// shown.
	Setup   func(s *Session)
	OnOpen  func(s *Session)
	OnClose func(s *Session)
}

func (m *Menu) validator() Validator {
	if m.Validator != nil {
		return m.Validator
	}
	return StaticValidator{}
}
