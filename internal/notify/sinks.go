package notify

import (
	"io"
	"slices"

	"github.com/rs/zerolog"
)

// Fanout delivers each event to every sink in order. A sink that panics is
// logged and skipped so the caller never sees the failure.
type Fanout struct {
	sinks []Sink
	log   zerolog.Logger
}

// NewFanout returns a Fanout over the non-nil sinks.
func NewFanout(log zerolog.Logger, sinks ...Sink) *Fanout {
	f := &Fanout{log: log}
	for _, s := range sinks {
		f.Add(s)
	}
	return f
}

// Guard returns s as a Fanout, reusing it when it already is one so events
// pass through a single recover layer.
func Guard(log zerolog.Logger, s Sink) *Fanout {
	if f, ok := s.(*Fanout); ok && f != nil {
		return f
	}
	return NewFanout(log, s)
}

// Add appends a sink. Nil sinks are ignored.
func (f *Fanout) Add(s Sink) {
	if s == nil {
		return
	}
	f.sinks = append(f.sinks, s)
}

// Len returns the number of sinks.
func (f *Fanout) Len() int { return len(f.sinks) }

func (f *Fanout) Notify(e Event) {
	for _, s := range f.sinks {
		f.deliver(s, e)
	}
}

func (f *Fanout) deliver(s Sink, e Event) {
	defer func() {
		if r := recover(); r != nil {
			f.log.Error().
				Interface("panic", r).
				Stringer("event", e.Kind).
				Msg("notification sink panicked")
		}
	}()
	s.Notify(e)
}

// LogSink writes events to a zerolog logger. High-frequency kinds
// (keystroke, tick) go to trace level, the rest to debug.
type LogSink struct {
	log zerolog.Logger
}

// NewLogSink returns a LogSink writing to log.
func NewLogSink(log zerolog.Logger) *LogSink {
	return &LogSink{log: log.With().Str("component", "notify").Logger()}
}

func (l *LogSink) Notify(e Event) {
	ev := l.log.Debug()
	if e.Kind == Keystroke || e.Kind == Tick {
		ev = l.log.Trace()
	}
	ev = ev.Stringer("event", e.Kind).
		Str("session_id", e.SessionID).
		Str("difficulty", string(e.Difficulty))
	if e.Word.Input != "" {
		ev = ev.Str("word", e.Word.Input)
	}
	if e.Kind == Correct {
		ev = ev.Int("combo", e.Combo).Int("bonus", e.Bonus)
	}
	ev.Msg("game event")
}

// bel is the ASCII bell.
const bel = "\a"

// DefaultBellKinds are the events that ring the terminal bell by default.
var DefaultBellKinds = []Kind{Error, MissType, SessionEnd}

// BellSink rings the terminal bell for a chosen set of events. It stands in
// for audio feedback in a terminal.
type BellSink struct {
	w     io.Writer
	kinds []Kind
}

// NewBellSink returns a BellSink writing to w for the given kinds, or for
// DefaultBellKinds when none are given.
func NewBellSink(w io.Writer, kinds ...Kind) *BellSink {
	if len(kinds) == 0 {
		kinds = DefaultBellKinds
	}
	return &BellSink{w: w, kinds: slices.Clone(kinds)}
}

func (b *BellSink) Notify(e Event) {
	if !slices.Contains(b.kinds, e.Kind) {
		return
	}
	_, _ = io.WriteString(b.w, bel)
}
