package vocab

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/abhisek/romatype/internal/romaji"
)

func TestValidate_BundledTablesPass(t *testing.T) {
	if err := Validate(); err != nil {
		t.Fatalf("bundled vocabulary validation failed: %v", err)
	}
}

func TestWords_EveryTierHasTwentyWords(t *testing.T) {
	for _, d := range AllDifficulties() {
		if got := len(Words(d)); got != 20 {
			t.Errorf("len(Words(%s)) = %d, want 20", d, got)
		}
	}
}

func TestWords_ReturnsCopy(t *testing.T) {
	w := Words(Easy)
	w[0] = Word{"x", "x"}
	if Words(Easy)[0].Input == "x" {
		t.Error("Words should return a copy")
	}
}

func TestWords_UnknownTier(t *testing.T) {
	if Words("impossible") != nil {
		t.Error("expected nil for unknown tier")
	}
}

func TestWords_SelfEquivalentAndOnTrack(t *testing.T) {
	for _, d := range AllDifficulties() {
		for _, w := range Words(d) {
			if !romaji.Equivalent(w.Input, w.Input) {
				t.Errorf("%s: %q not equivalent to itself", d, w.Input)
			}
			if !romaji.OnTrack(w.Input, w.Input) {
				t.Errorf("%s: %q not on track against itself", d, w.Input)
			}
			if !romaji.OnTrack("", w.Input) {
				t.Errorf("%s: empty input not on track for %q", d, w.Input)
			}
		}
	}
}

func TestDefaultTiming(t *testing.T) {
	tests := []struct {
		d       Difficulty
		perWord time.Duration
	}{
		{Easy, 8 * time.Second},
		{Normal, 5 * time.Second},
		{Hard, 3 * time.Second},
	}
	for _, tt := range tests {
		got := DefaultTiming(tt.d)
		if got.PerWord != tt.perWord {
			t.Errorf("DefaultTiming(%s).PerWord = %v, want %v", tt.d, got.PerWord, tt.perWord)
		}
		if got.SessionSeconds() != 60 {
			t.Errorf("DefaultTiming(%s).SessionSeconds() = %d, want 60", tt.d, got.SessionSeconds())
		}
	}
}

func TestTimings_For(t *testing.T) {
	ts := Timings{Hard: {PerWord: time.Second, Session: 30 * time.Second}}
	if got := ts.For(Hard).PerWord; got != time.Second {
		t.Errorf("override PerWord = %v, want 1s", got)
	}
	if got := ts.For(Easy).PerWord; got != 8*time.Second {
		t.Errorf("fallback PerWord = %v, want 8s", got)
	}
}

func TestParseDifficulty(t *testing.T) {
	for _, in := range []string{"easy", "Normal", " HARD "} {
		if _, err := ParseDifficulty(in); err != nil {
			t.Errorf("ParseDifficulty(%q) error: %v", in, err)
		}
	}
	_, err := ParseDifficulty("expert")
	if !errors.Is(err, ErrUnknownDifficulty) {
		t.Errorf("ParseDifficulty(expert) err = %v, want ErrUnknownDifficulty", err)
	}
}

func TestValidateTiers_DetectsProblems(t *testing.T) {
	good := func(d Difficulty) tier {
		return tier{
			difficulty: d,
			timing:     Timing{PerWord: time.Second, Session: time.Minute},
			words:      []Word{{"す", "su"}},
		}
	}

	tests := []struct {
		name    string
		tiers   []tier
		wantMsg string
	}{
		{
			name:    "empty list",
			tiers:   []tier{{difficulty: Easy, timing: Timing{time.Second, time.Minute}}, good(Normal), good(Hard)},
			wantMsg: "has no words",
		},
		{
			name: "duplicate input",
			tiers: []tier{
				{difficulty: Easy, timing: Timing{time.Second, time.Minute}, words: []Word{{"す", "su"}, {"ス", "su"}}},
				good(Normal), good(Hard),
			},
			wantMsg: "duplicate input",
		},
		{
			name: "normalization collision",
			tiers: []tier{
				{difficulty: Easy, timing: Timing{time.Second, time.Minute}, words: []Word{{"し", "shi"}, {"シ", "si"}}},
				good(Normal), good(Hard),
			},
			wantMsg: "after normalization",
		},
		{
			name: "uppercase input",
			tiers: []tier{
				{difficulty: Easy, timing: Timing{time.Second, time.Minute}, words: []Word{{"す", "Su"}}},
				good(Normal), good(Hard),
			},
			wantMsg: "lowercase",
		},
		{
			name:    "missing tier",
			tiers:   []tier{good(Easy), good(Normal)},
			wantMsg: `tier "hard" is missing`,
		},
		{
			name: "zero timing",
			tiers: []tier{
				{difficulty: Easy, words: []Word{{"す", "su"}}},
				good(Normal), good(Hard),
			},
			wantMsg: "timing must be positive",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateTiers(tt.tiers)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("error %q should contain %q", err, tt.wantMsg)
			}
		})
	}
}
