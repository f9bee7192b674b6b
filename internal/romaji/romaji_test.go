package romaji

import (
	"math/rand/v2"
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"sushi", "susi"},
		{"susi", "susi"},
		{"chawanmushi", "tyawanmusi"},
		{"tyawanmusi", "tyawanmusi"},
		{"tonkatsu", "tonkatu"},
		{"fune", "hune"},
		{"nikujaga", "nikuzyaga"},
		{"shabushabu", "syabusyabu"},
		{"chokore-to", "tyokore-to"},
		{"monjayaki", "monzyayaki"},
		{"ebifurai", "ebihurai"},
		// fu folds to hu, which then completes "shu".
		{"sfu", "syu"},
	}

	for _, tt := range tests {
		got := Normalize(tt.in)
		if got != tt.want {
			t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	alphabet := []byte("aeiouschtfjkmnrwyz-")
	rng := rand.New(rand.NewPCG(1, 2))

	for i := 0; i < 5000; i++ {
		n := rng.IntN(12)
		buf := make([]byte, n)
		for j := range buf {
			buf[j] = alphabet[rng.IntN(len(alphabet))]
		}
		s := string(buf)
		once := Normalize(s)
		if twice := Normalize(once); twice != once {
			t.Fatalf("Normalize not idempotent for %q: %q then %q", s, once, twice)
		}
	}
}

func TestEquivalent(t *testing.T) {
	tests := []struct {
		a, b string
		want bool
	}{
		{"shi", "si", true},
		{"si", "shi", true},
		{"sushi", "susi", true},
		{"chi", "ti", true},
		{"tsu", "tu", true},
		{"fu", "hu", true},
		{"ja", "zya", true},
		{"sha", "sya", true},
		{"cho", "tyo", true},
		{"sushi", "sushi", true},
		{"sushi", "sashi", false},
		{"", "", true},
		{"a", "", false},
	}

	for _, tt := range tests {
		if got := Equivalent(tt.a, tt.b); got != tt.want {
			t.Errorf("Equivalent(%q, %q) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestOnTrack(t *testing.T) {
	tests := []struct {
		partial, answer string
		want            bool
	}{
		{"", "sushi", true},
		{"s", "sushi", true},
		{"su", "sushi", true},
		{"susi", "sushi", true},
		{"sushi", "sushi", true},
		{"sa", "sushi", false},
		{"sushix", "sushi", false},
		{"ti", "chizu", true},
		{"chi", "tizu", true},
		// "sh" is not yet a prefix of the canonical "si".
		{"sush", "sushi", false},
	}

	for _, tt := range tests {
		if got := OnTrack(tt.partial, tt.answer); got != tt.want {
			t.Errorf("OnTrack(%q, %q) = %v, want %v", tt.partial, tt.answer, got, tt.want)
		}
	}
}

func TestRules_ReturnsCopy(t *testing.T) {
	r := Rules()
	r[0] = Rule{"x", "y"}
	if Rules()[0].From != "shi" {
		t.Error("Rules() should not expose the internal table")
	}
}
