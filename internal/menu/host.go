package menu

// Host is the application that owns surfaces and delivers events.
type Host interface {
	// CreateSurface allocates a new, not yet visible surface.
	CreateSurface(title string, size int) Handle
	// SetSlotContent writes one slot; empty content clears it.
	SetSlotContent(h Handle, slot int, c Content)
	// Show makes the surface visible to the user.
	Show(h Handle, user User)
	// CloseSurface takes the surface off screen. Hosts usually report the
	// closure back through Registry.NotifyClosed.
	CloseSurface(h Handle)
}

// FeedbackHost is implemented by hosts that can acknowledge a click, for
// example with a sound.
type FeedbackHost interface {
	Feedback(user User, slot int)
}

type surfaceWriter struct {
	host   Host
	handle Handle
}

func (w surfaceWriter) SetSlotContent(slot int, c Content) {
	w.host.SetSlotContent(w.handle, slot, c)
}
