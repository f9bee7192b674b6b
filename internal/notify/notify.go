// Package notify defines the events the game emits for feedback rendering
// and a few sinks that consume them.
package notify

import (
	"fmt"

	"github.com/abhisek/romatype/internal/vocab"
)

// Kind identifies a game event.
type Kind int

const (
	Correct Kind = iota
	Error
	MissType
	Keystroke
	SessionStart
	SessionEnd
	Tick
	ComboBreak
)

var kindNames = [...]string{
	Correct:      "correct",
	Error:        "error",
	MissType:     "miss_type",
	Keystroke:    "keystroke",
	SessionStart: "session_start",
	SessionEnd:   "session_end",
	Tick:         "tick",
	ComboBreak:   "combo_break",
}

func (k Kind) String() string {
	if k >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// ParseKind converts a kind name such as "miss_type" back to a Kind.
func ParseKind(s string) (Kind, error) {
	for i, name := range kindNames {
		if name == s {
			return Kind(i), nil
		}
	}
	return 0, fmt.Errorf("unknown event kind %q", s)
}

// AllKinds returns every event kind.
func AllKinds() []Kind {
	return []Kind{Correct, Error, MissType, Keystroke, SessionStart, SessionEnd, Tick, ComboBreak}
}

// Event is a single notification. Only Kind is always set; the other fields
// carry context where it exists.
type Event struct {
	Kind       Kind
	SessionID  string
	Difficulty vocab.Difficulty
	Word       vocab.Word
	// Combo is the combo after a Correct. Error carries the combo it broke,
	// since it is emitted before the miss is recorded.
	Combo int
	Bonus int // bonus applied, for Correct
}

// Sink receives events. Implementations must not block.
type Sink interface {
	Notify(Event)
}

// SinkFunc adapts a function to a Sink.
type SinkFunc func(Event)

func (f SinkFunc) Notify(e Event) { f(e) }

// Nop discards every event.
var Nop Sink = SinkFunc(func(Event) {})
