package scoring

import "testing"

func TestComboBonus(t *testing.T) {
	tests := []struct {
		combo int
		want  int
	}{
		{0, 0},
		{1, 0},
		{2, 0},
		{3, 1},
		{4, 1},
		{5, 2},
		{9, 2},
		{10, 3},
		{19, 3},
		{20, 5},
		{100, 5},
	}

	for _, tt := range tests {
		got := ComboBonus(tt.combo)
		if got != tt.want {
			t.Errorf("ComboBonus(%d) = %d, want %d", tt.combo, got, tt.want)
		}
	}
}

func TestAccuracy(t *testing.T) {
	tests := []struct {
		score, errors int
		want          int
	}{
		{0, 0, 0},
		{7, 3, 70},
		{1, 2, 33},
		{2, 1, 67},
		{5, 0, 100},
		{0, 4, 0},
	}

	for _, tt := range tests {
		got := Accuracy(tt.score, tt.errors)
		if got != tt.want {
			t.Errorf("Accuracy(%d, %d) = %d, want %d", tt.score, tt.errors, got, tt.want)
		}
	}
}

func TestTracker_RecordCorrect(t *testing.T) {
	var tr Tracker
	wantBonus := []int{0, 0, 1, 1, 2}
	for i, want := range wantBonus {
		if got := tr.RecordCorrect(); got != want {
			t.Errorf("correct #%d bonus = %d, want %d", i+1, got, want)
		}
	}
	if tr.Score() != 5 || tr.Combo() != 5 || tr.MaxCombo() != 5 {
		t.Errorf("score/combo/max = %d/%d/%d, want 5/5/5", tr.Score(), tr.Combo(), tr.MaxCombo())
	}
	if tr.BonusScore() != 4 {
		t.Errorf("BonusScore = %d, want 4", tr.BonusScore())
	}
	if tr.Total() != 9 {
		t.Errorf("Total = %d, want 9", tr.Total())
	}
}

func TestTracker_RecordMiss(t *testing.T) {
	var tr Tracker
	if tr.RecordMiss() {
		t.Error("miss with no combo should not report a break")
	}

	tr.RecordCorrect()
	tr.RecordCorrect()
	if !tr.RecordMiss() {
		t.Error("miss after combo 2 should report a break")
	}
	if tr.Combo() != 0 {
		t.Errorf("Combo = %d, want 0", tr.Combo())
	}
	if tr.MaxCombo() != 2 {
		t.Errorf("MaxCombo = %d, want 2", tr.MaxCombo())
	}
	if tr.Errors() != 2 {
		t.Errorf("Errors = %d, want 2", tr.Errors())
	}
	if tr.Accuracy() != 50 {
		t.Errorf("Accuracy = %d, want 50", tr.Accuracy())
	}
}

func TestTracker_MaxComboSurvivesBreak(t *testing.T) {
	var tr Tracker
	for i := 0; i < 4; i++ {
		tr.RecordCorrect()
	}
	tr.RecordMiss()
	tr.RecordCorrect()
	if tr.MaxCombo() != 4 {
		t.Errorf("MaxCombo = %d, want 4", tr.MaxCombo())
	}
	if tr.Combo() != 1 {
		t.Errorf("Combo = %d, want 1", tr.Combo())
	}
}
