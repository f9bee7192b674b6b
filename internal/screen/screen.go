package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/romatype/internal/ui/layout"
)

// Screen defines the interface for all application screens.
type Screen interface {
	// Init returns an initial command when the screen is first pushed.
	Init() tea.Cmd

	// Update handles messages and returns updated screen + command.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the screen content (excluding header/footer).
	View(width, height int) string

	// Title returns the screen name for the header.
	Title() string
}

// KeyHintProvider is an optional interface that screens can implement
// to provide custom footer key hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}

// StatusProvider is an optional interface for screens that show a short
// status on the right side of the header.
type StatusProvider interface {
	Status() string
}

// EscapeHandler is implemented by screens that handle esc themselves instead
// of letting the app pop them.
type EscapeHandler interface {
	HandlesEscape() bool
}

// Leaver is implemented by screens that need to release resources when they
// are popped off the stack.
type Leaver interface {
	Leave()
}
