package menu

// ClickContext is handed to a button action when its slot is clicked.
type ClickContext struct {
	User    User
	Session *Session
	Slot    int
	Event   *ClickEvent
}

// Action runs when a button is clicked.
type Action interface {
	Invoke(ClickContext)
}

// ActionFunc adapts a function to the Action interface.
type ActionFunc func(ClickContext)

// Invoke implements Action.
func (f ActionFunc) Invoke(ctx ClickContext) {
	if f != nil {
		f(ctx)
	}
}

// Button binds an icon and an interaction policy to one grid slot.
type Button struct {
	Icon    Icon
	Movable bool
	Silent  bool
	OnClick Action

	slot int
}

// NewButton returns an immovable button showing the given icon.
func NewButton(icon Icon) *Button {
	return &Button{Icon: icon, slot: -1}
}

// Empty returns a button with an empty icon and no action.
func Empty() *Button {
	return NewButton(EmptyIcon())
}

// Slot returns the grid slot the button occupies, or -1 before placement.
func (b *Button) Slot() int {
	return b.slot
}

// Do sets the click action.
func (b *Button) Do(action func(ClickContext)) *Button {
	b.OnClick = ActionFunc(action)
	return b
}

// SetMovable lets the user take the button's content off the surface.
func (b *Button) SetMovable() *Button {
	b.Movable = true
	return b
}

// SetSilent suppresses the host's click feedback for this button.
func (b *Button) SetSilent() *Button {
	b.Silent = true
	return b
}

// Content returns the current icon content.
func (b *Button) Content() Content {
	if b == nil || b.Icon == nil {
		return Nothing
	}
	return b.Icon.Content()
}

func (b *Button) invoke(ctx ClickContext) {
	if b.OnClick == nil {
		return
	}
	b.OnClick.Invoke(ctx)
}
