// Package wordseq yields a shuffled, non-repeating traversal of a word list.
package wordseq

import (
	"math/rand/v2"

	"github.com/abhisek/romatype/internal/vocab"
)

// Sequencer hands out words one at a time from a private shuffled copy.
type Sequencer struct {
	order []vocab.Word
	next  int
}

// New returns a Sequencer over a Fisher–Yates shuffle of words. The source
// slice is copied and never modified.
func New(words []vocab.Word, rng *rand.Rand) *Sequencer {
	order := make([]vocab.Word, len(words))
	copy(order, words)
	for i := len(order) - 1; i > 0; i-- {
		j := rng.IntN(i + 1)
		order[i], order[j] = order[j], order[i]
	}
	return &Sequencer{order: order}
}

// Next returns the next pending word. ok is false once every word has been
// handed out, and stays false on every later call.
func (s *Sequencer) Next() (w vocab.Word, ok bool) {
	if s.next >= len(s.order) {
		return vocab.Word{}, false
	}
	w = s.order[s.next]
	s.next++
	return w, true
}

// Remaining returns how many words have not been handed out yet.
func (s *Sequencer) Remaining() int {
	return len(s.order) - s.next
}

// Total returns the length of the traversal.
func (s *Sequencer) Total() int {
	return len(s.order)
}
