package play

import (
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/romatype/internal/game"
)

// sessionTickMsg fires once per second while a session is live.
type sessionTickMsg struct {
	epoch uint64
}

// wordTickMsg fires every game.WordTickInterval while a session is live.
type wordTickMsg struct {
	epoch uint64
}

func sessionTick(epoch uint64) tea.Cmd {
	return tea.Tick(game.SessionTickInterval, func(time.Time) tea.Msg {
		return sessionTickMsg{epoch: epoch}
	})
}

func wordTick(epoch uint64) tea.Cmd {
	return tea.Tick(game.WordTickInterval, func(time.Time) tea.Msg {
		return wordTickMsg{epoch: epoch}
	})
}
