// Package scoring keeps the per-session tallies: correct words, misses,
// the running combo and the bonus points it earns.
package scoring

import "math"

// ComboBonus returns the bonus points earned by reaching the given combo.
func ComboBonus(combo int) int {
	switch {
	case combo < 3:
		return 0
	case combo < 5:
		return 1
	case combo < 10:
		return 2
	case combo < 20:
		return 3
	default:
		return 5
	}
}

// Tracker is pure bookkeeping; it has no notion of time.
type Tracker struct {
	score      int
	errors     int
	combo      int
	maxCombo   int
	bonusScore int
}

// RecordCorrect counts a correct word and returns the combo bonus applied.
func (t *Tracker) RecordCorrect() int {
	t.score++
	t.combo++
	if t.combo > t.maxCombo {
		t.maxCombo = t.combo
	}
	bonus := ComboBonus(t.combo)
	if bonus > 0 {
		t.bonusScore += bonus
	}
	return bonus
}

// RecordMiss counts a miss and resets the combo. It reports whether a
// running combo was broken.
func (t *Tracker) RecordMiss() (broken bool) {
	t.errors++
	broken = t.combo > 0
	t.combo = 0
	return broken
}

// Accuracy returns the percentage of attempts that were correct, rounded to
// the nearest integer, or 0 before any attempt.
func (t *Tracker) Accuracy() int {
	return Accuracy(t.score, t.errors)
}

// Accuracy computes round(score / (score+errors) * 100), or 0 when there
// were no attempts.
func Accuracy(score, errors int) int {
	attempts := score + errors
	if attempts <= 0 {
		return 0
	}
	return int(math.Round(float64(score) / float64(attempts) * 100))
}

func (t *Tracker) Score() int      { return t.score }
func (t *Tracker) Errors() int     { return t.errors }
func (t *Tracker) Combo() int      { return t.combo }
func (t *Tracker) MaxCombo() int   { return t.maxCombo }
func (t *Tracker) BonusScore() int { return t.bonusScore }

// Total is the score plus combo bonus.
func (t *Tracker) Total() int { return t.score + t.bonusScore }
