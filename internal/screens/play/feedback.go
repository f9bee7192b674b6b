package play

import (
	"fmt"

	"github.com/abhisek/romatype/internal/notify"
	"github.com/abhisek/romatype/internal/ui/theme"
	"github.com/abhisek/romatype/internal/vocab"
)

// feedback keeps the last resolved word for the status line.
type feedback struct {
	kind  notify.Kind
	word  vocab.Word
	bonus int
	set   bool
}

func (f *feedback) Notify(e notify.Event) {
	switch e.Kind {
	case notify.Correct, notify.Error:
		f.kind, f.word, f.bonus, f.set = e.Kind, e.Word, e.Bonus, true
	case notify.SessionStart:
		*f = feedback{}
	}
}

func (f *feedback) view() string {
	if !f.set {
		return theme.Hint.Render("type the romaji, enter to skip")
	}
	if f.kind == notify.Error {
		return theme.Incorrect.Render(fmt.Sprintf("✗ %s", f.word.Display)) +
			theme.Hint.Render(fmt.Sprintf("  was %s", f.word.Input))
	}
	line := theme.Correct.Render(fmt.Sprintf("✓ %s", f.word.Display))
	if f.bonus > 0 {
		line += theme.Bonus.Render(fmt.Sprintf("  +%d", f.bonus))
	}
	return line
}
