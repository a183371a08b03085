package triangle

// Key represents a keyboard key the program reacts to.
type Key int

const (
	KeyNone Key = iota
	KeyEscape
)

// Action is the state change reported with a key event.
type Action int

const (
	Release Action = iota
	Press
	Repeat
)

// KeyHandler receives key events from the window system.
type KeyHandler func(key Key, action Action)

// CloseOnEscape returns a KeyHandler that requests w to close when Escape
// is pressed. Repeats and releases are ignored.
func CloseOnEscape(w Window) KeyHandler {
	return func(key Key, action Action) {
		if key == KeyEscape && action == Press {
			w.SetShouldClose(true)
		}
	}
}
