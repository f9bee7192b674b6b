package menu

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/romatype/internal/router"
	"github.com/abhisek/romatype/internal/screens/play"
	"github.com/abhisek/romatype/internal/vocab"
)

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func TestNew_PreselectsPreferredTier(t *testing.T) {
	m := New(play.Deps{}, vocab.Hard)
	if got := m.selected(); got != vocab.Hard {
		t.Errorf("expected hard preselected, got %q", got)
	}
}

func TestEnter_PushesPlayScreen(t *testing.T) {
	m := New(play.Deps{}, vocab.Easy)

	m.Update(specialKey(tea.KeyDown))
	_, cmd := m.Update(specialKey(tea.KeyEnter))
	if cmd == nil {
		t.Fatal("expected a command on enter")
	}

	push, ok := cmd().(router.PushScreenMsg)
	if !ok {
		t.Fatalf("expected PushScreenMsg, got %T", cmd())
	}
	ps, ok := push.Screen.(*play.PlayScreen)
	if !ok {
		t.Fatalf("expected *play.PlayScreen, got %T", push.Screen)
	}
	if ps.Title() != vocab.Normal.DisplayName() {
		t.Errorf("expected normal play screen, got %q", ps.Title())
	}
}

func TestQuitEntry(t *testing.T) {
	m := New(play.Deps{}, vocab.Easy)
	for range vocab.AllDifficulties() {
		m.Update(specialKey(tea.KeyDown))
	}
	if m.selected() != "" {
		t.Fatalf("expected cursor on quit, got %q", m.selected())
	}

	_, cmd := m.Update(specialKey(tea.KeyEnter))
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Errorf("expected tea.QuitMsg")
	}
}

func TestView_ShowsTiersAndTimings(t *testing.T) {
	m := New(play.Deps{}, vocab.Normal)
	view := m.View(80, 30)
	for _, want := range []string{"EASY", "NORMAL", "HARD", "QUIT", "8s / word", vocab.Blurb(vocab.Normal)} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}
