package main

// MenuState is the mobile navigation overlay. Closed is the zero value.
type MenuState int

const (
	MenuClosed MenuState = iota
	MenuOpen
)

// Toggle flips the overlay.
func (s MenuState) Toggle() MenuState {
	if s == MenuOpen {
		return MenuClosed
	}
	return MenuOpen
}

// Select is what picking a nav entry does: the overlay always ends closed.
func (s MenuState) Select() MenuState {
	return MenuClosed
}

func (s MenuState) IsOpen() bool {
	return s == MenuOpen
}

func (s MenuState) String() string {
	if s == MenuOpen {
		return "open"
	}
	return "closed"
}
