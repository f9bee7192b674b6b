// Package romaji folds alternate romanizations of the same mora onto one
// canonical spelling so typed input can be compared against an answer.
package romaji

import "strings"

// Rule is a single substring substitution.
type Rule struct {
	From string
	To   string
}

// rules is applied in order; later rules may match text produced by earlier ones.
var rules = []Rule{
	{"shi", "si"},
	{"chi", "ti"},
	{"tsu", "tu"},
	{"fu", "hu"},
	{"ja", "zya"},
	{"ju", "zyu"},
	{"jo", "zyo"},
	{"sha", "sya"},
	{"shu", "syu"},
	{"sho", "syo"},
	{"cha", "tya"},
	{"chu", "tyu"},
	{"cho", "tyo"},
}

// Rules returns a copy of the substitution table in application order.
func Rules() []Rule {
	out := make([]Rule, len(rules))
	copy(out, rules)
	return out
}

// Normalize returns the canonical form of s.
//
// The rule table is applied as one ordered pass, repeated until the string no
// longer changes. Every rule removes one of f, h, j, c or s, so the loop ends.
func Normalize(s string) string {
	for {
		next := applyRules(s)
		if next == s {
			return s
		}
		s = next
	}
}

func applyRules(s string) string {
	for _, r := range rules {
		s = strings.ReplaceAll(s, r.From, r.To)
	}
	return s
}

// Equivalent reports whether a and b spell the same thing.
func Equivalent(a, b string) bool {
	return Normalize(a) == Normalize(b)
}

// OnTrack reports whether partial is still a prefix of answer once both are
// normalized. An empty partial is always on track.
func OnTrack(partial, answer string) bool {
	return strings.HasPrefix(Normalize(answer), Normalize(partial))
}
