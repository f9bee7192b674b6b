// Package game implements the typing session state machine: menu, playing
// and result phases, the session and per-word timers, and input matching.
//
// A Game is not safe for concurrent use. All calls are expected to come from
// one event loop (the Bubble Tea update loop in the terminal UI).
package game

import (
	"math/rand/v2"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/abhisek/romatype/internal/notify"
	"github.com/abhisek/romatype/internal/romaji"
	"github.com/abhisek/romatype/internal/vocab"
	"github.com/abhisek/romatype/internal/wordseq"
)

// Options configures a Game. Zero values fall back to defaults.
type Options struct {
	// Timings overrides the bundled per-tier timing.
	Timings vocab.Timings

	// Sink receives game events. Nil discards them.
	Sink notify.Sink

	// Logger receives debug logs for transitions.
	Logger *zerolog.Logger

	// Rand drives the word shuffle. Nil uses a randomly seeded source.
	Rand *rand.Rand

	// NewID generates session IDs. Nil uses uuid.NewString.
	NewID func() string
}

// Game owns the phase, the current session and its timers.
type Game struct {
	timings vocab.Timings
	sink    notify.Sink
	log     zerolog.Logger
	rng     *rand.Rand
	newID   func() string

	phase      Phase
	difficulty vocab.Difficulty
	state      *State

	// epoch identifies the live set of timers. It changes on every phase
	// exit, which turns any tick already in flight into a no-op.
	epoch uint64
}

// New creates a Game in the menu phase.
func New(opts Options) *Game {
	g := &Game{
		timings: opts.Timings,
		rng:     opts.Rand,
		newID:   opts.NewID,
		phase:   PhaseMenu,
	}
	if g.timings == nil {
		g.timings = vocab.DefaultTimings()
	}
	if g.rng == nil {
		g.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	if g.newID == nil {
		g.newID = uuid.NewString
	}
	if opts.Logger != nil {
		g.log = opts.Logger.With().Str("component", "game").Logger()
	} else {
		g.log = zerolog.Nop()
	}
	g.sink = notify.Guard(g.log, opts.Sink)
	return g
}

// Phase returns the current phase.
func (g *Game) Phase() Phase { return g.phase }

// Difficulty returns the tier of the current or most recent session.
func (g *Game) Difficulty() vocab.Difficulty { return g.difficulty }

// Timing returns the timing that a session at d would use.
func (g *Game) Timing(d vocab.Difficulty) vocab.Timing { return g.timings.For(d) }

// Snapshot returns a projection of the current state for rendering.
func (g *Game) Snapshot() Snapshot {
	if g.state == nil {
		return Snapshot{Phase: g.phase, Difficulty: g.difficulty}
	}
	return g.state.snapshot(g.phase)
}

// Start begins a fresh session at d. It is valid from the menu and from the
// result screen; anywhere else it is ignored and ok is false. The returned
// Timers must be armed by the caller.
func (g *Game) Start(d vocab.Difficulty) (t Timers, ok bool) {
	if g.phase != PhaseMenu && g.phase != PhaseResult {
		g.log.Debug().Stringer("phase", g.phase).Msg("start ignored")
		return Timers{}, false
	}
	words := vocab.Words(d)
	if len(words) == 0 {
		g.log.Warn().Str("difficulty", string(d)).Msg("start ignored: no words for difficulty")
		return Timers{}, false
	}

	// Cancel the previous session's timers before anything else changes.
	g.cancelTimers()

	timing := g.timings.For(d)
	seq := wordseq.New(words, g.rng)
	first, _ := seq.Next()

	g.difficulty = d
	g.state = &State{
		ID:             g.newID(),
		Difficulty:     d,
		Timing:         timing,
		seq:            seq,
		current:        first,
		sessionLeft:    timing.SessionSeconds(),
		wordLimitTicks: wordLimitTicks(timing),
	}
	g.phase = PhasePlaying

	g.log.Debug().
		Str("session_id", g.state.ID).
		Str("difficulty", string(d)).
		Int("words", seq.Total()).
		Msg("session started")
	g.emit(notify.SessionStart)

	return g.Timers(), true
}

// Replay starts a new session at the same difficulty from the result phase.
func (g *Game) Replay() (Timers, bool) {
	if g.phase != PhaseResult {
		return Timers{}, false
	}
	return g.Start(g.difficulty)
}

// Menu leaves the result phase and discards the session.
func (g *Game) Menu() bool {
	if g.phase != PhaseResult {
		g.log.Debug().Stringer("phase", g.phase).Msg("menu ignored")
		return false
	}
	g.cancelTimers()
	g.state = nil
	g.phase = PhaseMenu
	return true
}

// Abort ends a running session early and moves to the result phase.
func (g *Game) Abort() bool {
	if g.phase != PhasePlaying {
		return false
	}
	g.finish(EndAborted)
	return true
}

// InputChange handles a new value of the input buffer.
//
// A forward keystroke is classified before the buffer is updated, and the
// buffer is updated before the correctness check.
func (g *Game) InputChange(value string) {
	if g.phase != PhasePlaying {
		g.log.Debug().Stringer("phase", g.phase).Msg("input ignored")
		return
	}
	s := g.state
	answer := s.current.Input

	if utf8.RuneCountInString(value) > utf8.RuneCountInString(s.input) {
		switch {
		case !romaji.OnTrack(value, answer):
			g.emit(notify.MissType)
		case !romaji.Equivalent(value, answer):
			g.emit(notify.Keystroke)
		}
	}

	s.input = value

	if romaji.Equivalent(value, answer) {
		g.resolveCorrect()
	}
}

// Skip gives up on the current word and counts it as a miss. It does nothing
// when the buffer already matches the answer.
func (g *Game) Skip() {
	if g.phase != PhasePlaying {
		g.log.Debug().Stringer("phase", g.phase).Msg("skip ignored")
		return
	}
	if romaji.Equivalent(g.state.input, g.state.current.Input) {
		return
	}
	g.miss()
}

func (g *Game) resolveCorrect() {
	s := g.state
	word := s.current
	bonus := s.tracker.RecordCorrect()
	g.emitEvent(notify.Event{
		Kind:  notify.Correct,
		Word:  word,
		Combo: s.tracker.Combo(),
		Bonus: bonus,
	})
	s.input = ""
	g.advance()
}

// miss handles both an explicit skip and a per-word timeout.
func (g *Game) miss() {
	s := g.state
	g.emitEvent(notify.Event{Kind: notify.Error, Word: s.current})
	broken := s.tracker.RecordMiss()
	s.input = ""
	if broken {
		s.comboBreakTicks = comboBreakTicks
		g.emit(notify.ComboBreak)
	}
	g.advance()
}

// advance moves to the next word, or ends the session when none are left.
func (g *Game) advance() {
	s := g.state
	next, ok := s.seq.Next()
	if !ok {
		s.perfectClear = true
		g.finish(EndCleared)
		return
	}
	s.current = next
	s.wordTicks = 0
	s.wordExpired = false
}

// finish leaves the playing phase for the result phase.
func (g *Game) finish(reason EndReason) {
	s := g.state
	g.cancelTimers()
	s.end = reason
	s.comboBreakTicks = 0
	g.phase = PhaseResult

	g.log.Debug().
		Str("session_id", s.ID).
		Str("difficulty", string(s.Difficulty)).
		Stringer("reason", reason).
		Int("score", s.tracker.Score()).
		Int("errors", s.tracker.Errors()).
		Int("bonus", s.tracker.BonusScore()).
		Int("max_combo", s.tracker.MaxCombo()).
		Bool("perfect_clear", s.perfectClear).
		Msg("session ended")
	g.emit(notify.SessionEnd)
}

func (g *Game) emit(kind notify.Kind) {
	g.emitEvent(notify.Event{Kind: kind})
}

func (g *Game) emitEvent(e notify.Event) {
	if s := g.state; s != nil {
		e.SessionID = s.ID
		e.Difficulty = s.Difficulty
		if e.Kind != notify.Correct {
			e.Combo = s.tracker.Combo()
		}
	}
	g.sink.Notify(e)
}
