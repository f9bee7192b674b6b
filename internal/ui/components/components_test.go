package components

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func TestRomajiInput_FiltersNonRomaji(t *testing.T) {
	in := NewRomajiInput("type", 20)
	for _, r := range "su1sHi-!" {
		in, _ = in.Update(keyPress(r))
	}
	if got := in.Value(); got != "susi-" {
		t.Errorf("expected filtered value %q, got %q", "susi-", got)
	}
}

func TestRomajiInput_Backspace(t *testing.T) {
	in := NewRomajiInput("type", 20)
	in.SetValue("sus")
	in, _ = in.Update(tea.KeyPressMsg{Code: tea.KeyBackspace})
	if got := in.Value(); got != "su" {
		t.Errorf("expected %q after backspace, got %q", "su", got)
	}
}

func TestMenu_SkipsDisabled(t *testing.T) {
	var picked string
	item := func(label string, disabled bool) MenuItem {
		return MenuItem{Label: label, Disabled: disabled, Action: func() tea.Cmd {
			picked = label
			return nil
		}}
	}
	m := NewMenu([]MenuItem{item("a", true), item("b", false), item("c", true), item("d", false)})
	if m.Selected != 1 {
		t.Fatalf("expected first enabled item selected, got %d", m.Selected)
	}

	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	if m.Selected != 3 {
		t.Errorf("expected down to skip disabled item, got %d", m.Selected)
	}
	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if picked != "d" {
		t.Errorf("expected action of d, got %q", picked)
	}
}

func TestTimerBar_Width(t *testing.T) {
	for _, f := range []float64{-1, 0, 0.25, 0.5, 1, 2} {
		bar := NewTimerBar("word", f, "1.5s", 40).View()
		if w := lipgloss.Width(bar); w != 40 {
			t.Errorf("fraction %v: expected width 40, got %d", f, w)
		}
		if !strings.Contains(bar, "1.5s") {
			t.Errorf("fraction %v: suffix missing", f)
		}
	}
}
