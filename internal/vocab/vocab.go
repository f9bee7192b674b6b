// Package vocab holds the bundled word lists and per-difficulty timing.
// All tables are read-only and shared between sessions.
package vocab

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"
)

// ErrUnknownDifficulty is returned by ParseDifficulty for unrecognised names.
var ErrUnknownDifficulty = errors.New("unknown difficulty")

// Word is a single prompt: what is shown and what must be typed.
type Word struct {
	Display string // kana shown to the player
	Input   string // lowercase romaji answer
}

// Difficulty names a tier.
type Difficulty string

const (
	Easy   Difficulty = "easy"
	Normal Difficulty = "normal"
	Hard   Difficulty = "hard"
)

// AllDifficulties returns all tiers in menu order.
func AllDifficulties() []Difficulty {
	return []Difficulty{Easy, Normal, Hard}
}

// ParseDifficulty maps a case-insensitive name to a Difficulty.
func ParseDifficulty(s string) (Difficulty, error) {
	d := Difficulty(strings.ToLower(strings.TrimSpace(s)))
	if slices.Contains(AllDifficulties(), d) {
		return d, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownDifficulty, s)
}

// DisplayName returns the menu label for a tier.
func (d Difficulty) DisplayName() string {
	switch d {
	case Easy:
		return "Easy"
	case Normal:
		return "Normal"
	case Hard:
		return "Hard"
	default:
		return string(d)
	}
}

// Timing is the clock budget for a tier.
type Timing struct {
	PerWord time.Duration // time allowed for each word
	Session time.Duration // time allowed for the whole session
}

// SessionSeconds returns the session budget in whole seconds.
func (t Timing) SessionSeconds() int {
	return int(t.Session / time.Second)
}

// tier bundles a word list with its default timing.
type tier struct {
	difficulty Difficulty
	blurb      string
	timing     Timing
	words      []Word
}

func lookup(d Difficulty) (tier, bool) {
	for _, t := range tiers {
		if t.difficulty == d {
			return t, true
		}
	}
	return tier{}, false
}

// Words returns a copy of the tier's word list, or nil for an unknown tier.
func Words(d Difficulty) []Word {
	t, ok := lookup(d)
	if !ok {
		return nil
	}
	return slices.Clone(t.words)
}

// DefaultTiming returns the bundled timing for a tier.
func DefaultTiming(d Difficulty) Timing {
	t, _ := lookup(d)
	return t.timing
}

// Blurb returns a short description of the tier's words.
func Blurb(d Difficulty) string {
	t, _ := lookup(d)
	return t.blurb
}

// Timings is a per-tier timing table.
type Timings map[Difficulty]Timing

// DefaultTimings returns a fresh table of the bundled timings.
func DefaultTimings() Timings {
	out := make(Timings, len(tiers))
	for _, t := range tiers {
		out[t.difficulty] = t.timing
	}
	return out
}

// For returns the timing for d, falling back to the bundled default.
func (ts Timings) For(d Difficulty) Timing {
	if t, ok := ts[d]; ok {
		return t
	}
	return DefaultTiming(d)
}
