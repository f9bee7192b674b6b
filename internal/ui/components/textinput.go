package components

import (
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/romatype/internal/ui/theme"
)

// RomajiInput wraps bubbles/textinput for romaji entry. Printable keys that
// cannot appear in romaji are dropped before they reach the buffer.
type RomajiInput struct {
	Model    textinput.Model
	MaxWidth int
	onTrack  bool
}

// NewRomajiInput creates a focused romaji input.
func NewRomajiInput(placeholder string, maxWidth int) RomajiInput {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Prompt = ""
	ti.Focus()

	if maxWidth > 0 {
		ti.CharLimit = maxWidth
	}

	return RomajiInput{
		Model:    ti,
		MaxWidth: maxWidth,
		onTrack:  true,
	}
}

// Init returns the initial command.
func (t RomajiInput) Init() tea.Cmd {
	return t.Model.Focus()
}

// Update handles messages.
func (t RomajiInput) Update(msg tea.Msg) (RomajiInput, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		if text := kmsg.Key().Text; text != "" && !isRomajiText(text) {
			return t, nil
		}
	}

	var cmd tea.Cmd
	t.Model, cmd = t.Model.Update(msg)
	return t, cmd
}

func isRomajiText(s string) bool {
	for _, r := range s {
		if (r < 'a' || r > 'z') && r != '-' {
			return false
		}
	}
	return true
}

// View renders the buffer, green while on track and red once it diverges.
func (t RomajiInput) View() string {
	if t.Model.Value() == "" {
		return theme.Hint.Render(t.Model.Placeholder) + cursor()
	}
	style := theme.Correct
	if !t.onTrack {
		style = theme.Incorrect
	}
	return style.Render(t.Model.Value()) + cursor()
}

func cursor() string {
	return lipgloss.NewStyle().Foreground(theme.TextDim).Render("▏")
}

// Value returns the current input value.
func (t RomajiInput) Value() string {
	return t.Model.Value()
}

// SetValue replaces the buffer, keeping the cursor at the end.
func (t *RomajiInput) SetValue(s string) {
	t.Model.SetValue(s)
	t.Model.CursorEnd()
}

// SetOnTrack sets the colouring used by View.
func (t *RomajiInput) SetOnTrack(ok bool) {
	t.onTrack = ok
}
