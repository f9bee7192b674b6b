// Package play is the screen that runs one game: the playing phase and the
// result screen that follows it.
package play

import (
	"fmt"
	"math/rand/v2"

	tea "charm.land/bubbletea/v2"
	"github.com/rs/zerolog"

	"github.com/abhisek/romatype/internal/game"
	"github.com/abhisek/romatype/internal/notify"
	"github.com/abhisek/romatype/internal/router"
	"github.com/abhisek/romatype/internal/screen"
	"github.com/abhisek/romatype/internal/ui/components"
	"github.com/abhisek/romatype/internal/ui/layout"
	"github.com/abhisek/romatype/internal/vocab"
)

// Deps are the collaborators shared by every play screen.
type Deps struct {
	Timings vocab.Timings
	Sink    notify.Sink
	Logger  zerolog.Logger

	// Rand builds the shuffle source for a new screen. Nil seeds randomly.
	Rand func() *rand.Rand
}

// PlayScreen implements screen.Screen for one game.
type PlayScreen struct {
	game       *game.Game
	difficulty vocab.Difficulty
	input      components.RomajiInput
	feedback   *feedback
}

var _ screen.Screen = (*PlayScreen)(nil)
var _ screen.KeyHintProvider = (*PlayScreen)(nil)
var _ screen.StatusProvider = (*PlayScreen)(nil)
var _ screen.EscapeHandler = (*PlayScreen)(nil)
var _ screen.Leaver = (*PlayScreen)(nil)

// New creates a PlayScreen that starts a session at d when pushed.
func New(deps Deps, d vocab.Difficulty) *PlayScreen {
	fb := &feedback{}
	var rng *rand.Rand
	if deps.Rand != nil {
		rng = deps.Rand()
	}
	log := deps.Logger
	g := game.New(game.Options{
		Timings: deps.Timings,
		Sink:    notify.NewFanout(log, fb, deps.Sink),
		Logger:  &log,
		Rand:    rng,
	})
	return &PlayScreen{
		game:       g,
		difficulty: d,
		input:      components.NewRomajiInput("romaji...", 32),
		feedback:   fb,
	}
}

func (s *PlayScreen) Init() tea.Cmd {
	return s.armed(s.game.Start(s.difficulty))
}

// armed resets the input for a fresh session and schedules both timers.
func (s *PlayScreen) armed(t game.Timers, ok bool) tea.Cmd {
	if !ok {
		return nil
	}
	s.syncInput()
	return tea.Batch(sessionTick(t.Epoch), wordTick(t.Epoch))
}

func (s *PlayScreen) Title() string {
	return s.difficulty.DisplayName()
}

func (s *PlayScreen) Status() string {
	if s.game.Phase() != game.PhasePlaying {
		return ""
	}
	snap := s.game.Snapshot()
	return fmt.Sprintf("%d pts  x%d", snap.Total, snap.Combo)
}

func (s *PlayScreen) HandlesEscape() bool { return true }

// Leave discards the session when the screen is popped.
func (s *PlayScreen) Leave() {
	s.game.Abort()
	s.game.Menu()
}

func (s *PlayScreen) KeyHints() []layout.KeyHint {
	if s.game.Phase() == game.PhaseResult {
		return []layout.KeyHint{
			{Key: "Enter/R", Description: "Play again"},
			{Key: "Esc/M", Description: "Menu"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
	return []layout.KeyHint{
		{Key: "a-z", Description: "Type"},
		{Key: "Enter", Description: "Skip"},
		{Key: "Esc", Description: "End"},
	}
}

func (s *PlayScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case sessionTickMsg:
		if s.game.SessionTick(msg.epoch) {
			return s, sessionTick(msg.epoch)
		}
		return s, nil

	case wordTickMsg:
		rearm := s.game.WordTick(msg.epoch)
		s.syncInput()
		if rearm {
			return s, wordTick(msg.epoch)
		}
		return s, nil

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	return s, nil
}

func (s *PlayScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	switch s.game.Phase() {
	case game.PhasePlaying:
		switch key {
		case "esc":
			s.game.Abort()
			return s, nil
		case "enter":
			s.game.Skip()
			s.syncInput()
			return s, nil
		}

		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		if v := s.input.Value(); v != s.game.Snapshot().Input {
			s.game.InputChange(v)
		}
		s.syncInput()
		return s, cmd

	case game.PhaseResult:
		switch key {
		case "enter", "r":
			return s, s.armed(s.game.Replay())
		case "esc", "m":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}

	return s, nil
}

// syncInput mirrors the game's buffer into the text input. The game clears
// the buffer whenever a word resolves.
func (s *PlayScreen) syncInput() {
	snap := s.game.Snapshot()
	if s.input.Value() != snap.Input {
		s.input.SetValue(snap.Input)
	}
	s.input.SetOnTrack(snap.OnTrack)
}
