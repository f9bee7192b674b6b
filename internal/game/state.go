package game

import (
	"time"

	"github.com/abhisek/romatype/internal/romaji"
	"github.com/abhisek/romatype/internal/scoring"
	"github.com/abhisek/romatype/internal/vocab"
	"github.com/abhisek/romatype/internal/wordseq"
)

// Phase is the lifecycle stage of the game.
type Phase int

const (
	PhaseMenu    Phase = iota // Choosing a difficulty
	PhasePlaying              // Timers running, accepting input
	PhaseResult               // Session over, showing results
)

func (p Phase) String() string {
	switch p {
	case PhaseMenu:
		return "menu"
	case PhasePlaying:
		return "playing"
	case PhaseResult:
		return "result"
	default:
		return "unknown"
	}
}

// EndReason records why a session left the playing phase.
type EndReason int

const (
	EndNone    EndReason = iota // Still playing
	EndCleared                  // Every word was resolved before time ran out
	EndTimeUp                   // Session timer reached zero
	EndAborted                  // Player quit mid-session
)

func (r EndReason) String() string {
	switch r {
	case EndNone:
		return "none"
	case EndCleared:
		return "cleared"
	case EndTimeUp:
		return "time_up"
	case EndAborted:
		return "aborted"
	default:
		return "unknown"
	}
}

// State is the mutable data of one play-through. A fresh State is built on
// every start and dropped when the player returns to the menu.
type State struct {
	// ID identifies the session in logs and events.
	ID string

	// Difficulty is the tier being played.
	Difficulty vocab.Difficulty

	// Timing is the clock budget, copied at start.
	Timing vocab.Timing

	seq     *wordseq.Sequencer
	current vocab.Word
	input   string
	tracker scoring.Tracker

	// sessionLeft is whole seconds remaining in the session.
	sessionLeft int

	// wordTicks counts elapsed word-timer ticks for the current word.
	// Time left is derived from it so no rounding error accumulates.
	wordTicks      int
	wordLimitTicks int

	// wordExpired guards the expiry handler so it fires once per word.
	wordExpired bool

	perfectClear bool

	// comboBreakTicks counts down the combo-break display window in word ticks.
	comboBreakTicks int

	end EndReason
}

func (s *State) wordTimeLeft() time.Duration {
	left := s.Timing.PerWord - time.Duration(s.wordTicks)*WordTickInterval
	if left < 0 {
		return 0
	}
	return left
}

// Snapshot is a read-only projection of the game for rendering.
type Snapshot struct {
	Phase      Phase
	SessionID  string
	Difficulty vocab.Difficulty

	Word    vocab.Word
	Input   string
	OnTrack bool

	Score      int
	Errors     int
	Combo      int
	MaxCombo   int
	BonusScore int
	Total      int
	Accuracy   int

	// ComboBonus is the bonus the current combo earned, for the "+N" banner.
	ComboBonus int

	SessionTimeLeft int
	WordTimeLeft    time.Duration
	PerWord         time.Duration

	TotalWords     int
	RemainingWords int

	PerfectClear bool
	ComboBreak   bool
	End          EndReason
}

// WordFraction returns the share of the per-word time still left, in [0, 1].
func (s Snapshot) WordFraction() float64 {
	if s.PerWord <= 0 {
		return 0
	}
	return float64(s.WordTimeLeft) / float64(s.PerWord)
}

func (s *State) snapshot(phase Phase) Snapshot {
	t := &s.tracker
	total := s.seq.Total()
	return Snapshot{
		Phase:           phase,
		SessionID:       s.ID,
		Difficulty:      s.Difficulty,
		Word:            s.current,
		Input:           s.input,
		OnTrack:         romaji.OnTrack(s.input, s.current.Input),
		Score:           t.Score(),
		Errors:          t.Errors(),
		Combo:           t.Combo(),
		MaxCombo:        t.MaxCombo(),
		BonusScore:      t.BonusScore(),
		Total:           t.Total(),
		Accuracy:        t.Accuracy(),
		ComboBonus:      scoring.ComboBonus(t.Combo()),
		SessionTimeLeft: s.sessionLeft,
		WordTimeLeft:    s.wordTimeLeft(),
		PerWord:         s.Timing.PerWord,
		TotalWords:      total,
		RemainingWords:  total - t.Score() - t.Errors(),
		PerfectClear:    s.perfectClear,
		ComboBreak:      s.comboBreakTicks > 0,
		End:             s.end,
	}
}
