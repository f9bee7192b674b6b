package vocab

import (
	"fmt"
	"strings"

	"github.com/samber/lo"

	"github.com/abhisek/romatype/internal/romaji"
)

// Validate checks the bundled tables.
func Validate() error {
	return validateTiers(tiers)
}

// validateTiers performs all structural checks on the given tiers.
// Returns a combined error describing all problems found, or nil if valid.
func validateTiers(ts []tier) error {
	var errs []string

	seen := make(map[Difficulty]bool, len(ts))
	for _, t := range ts {
		if seen[t.difficulty] {
			errs = append(errs, fmt.Sprintf("duplicate tier: %q", t.difficulty))
		}
		seen[t.difficulty] = true

		if len(t.words) == 0 {
			errs = append(errs, fmt.Sprintf("tier %q has no words", t.difficulty))
		}
		if t.timing.PerWord <= 0 || t.timing.Session <= 0 {
			errs = append(errs, fmt.Sprintf("tier %q: timing must be positive, got %+v", t.difficulty, t.timing))
		}

		for _, w := range lo.FindDuplicatesBy(t.words, func(w Word) string { return w.Input }) {
			errs = append(errs, fmt.Sprintf("tier %q: duplicate input %q", t.difficulty, w.Input))
		}
		for _, w := range lo.FindDuplicatesBy(t.words, func(w Word) string { return romaji.Normalize(w.Input) }) {
			errs = append(errs, fmt.Sprintf("tier %q: input %q collides with another word after normalization", t.difficulty, w.Input))
		}

		for _, w := range t.words {
			if w.Display == "" {
				errs = append(errs, fmt.Sprintf("tier %q: input %q has no display form", t.difficulty, w.Input))
			}
			if !isRomaji(w.Input) {
				errs = append(errs, fmt.Sprintf("tier %q: input %q must be lowercase a-z or '-'", t.difficulty, w.Input))
			}
		}
	}

	for _, d := range AllDifficulties() {
		if !seen[d] {
			errs = append(errs, fmt.Sprintf("tier %q is missing", d))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("vocabulary validation failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}

func isRomaji(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if (r < 'a' || r > 'z') && r != '-' {
			return false
		}
	}
	return true
}
