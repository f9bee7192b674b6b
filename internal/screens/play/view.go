package play

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/romatype/internal/game"
	"github.com/abhisek/romatype/internal/ui/components"
	"github.com/abhisek/romatype/internal/ui/layout"
	"github.com/abhisek/romatype/internal/ui/theme"
)

const maxCardWidth = 60

func (s *PlayScreen) View(width, height int) string {
	switch s.game.Phase() {
	case game.PhasePlaying:
		return s.renderPlaying(width, height)
	case game.PhaseResult:
		return s.renderResult(width, height)
	}
	return ""
}

func cardWidth(width int) int {
	return max(min(width-8, maxCardWidth), 20)
}

func (s *PlayScreen) renderPlaying(width, height int) string {
	snap := s.game.Snapshot()
	cw := cardWidth(width)
	compact := layout.IsCompactHeight(height)

	lines := []string{renderStats(snap, cw), ""}
	lines = append(lines, theme.Word.Render(snap.Word.Display))
	if !compact {
		lines = append(lines, theme.Hint.Render(snap.Word.Input))
	}
	lines = append(lines, "", s.input.View(), "")

	bar := components.NewTimerBar("word", snap.WordFraction(),
		fmt.Sprintf("%.2fs", snap.WordTimeLeft.Seconds()), cw)
	lines = append(lines, bar.View(), renderCombo(snap), s.feedback.view())

	content := lipgloss.JoinVertical(lipgloss.Center, lines...)
	return layout.Center(theme.Card.Render(content), width, height)
}

func renderStats(snap game.Snapshot, width int) string {
	timeStyle := theme.Body
	if snap.SessionTimeLeft <= 10 {
		timeStyle = theme.Incorrect
	}
	parts := []string{
		theme.Hint.Render("TIME ") + timeStyle.Render(fmt.Sprintf("%ds", snap.SessionTimeLeft)),
		theme.Hint.Render("LEFT ") + theme.Body.Render(fmt.Sprint(snap.RemainingWords)),
		theme.Hint.Render("SCORE ") + theme.Correct.Render(fmt.Sprint(snap.Score)),
		theme.Hint.Render("MISS ") + theme.Incorrect.Render(fmt.Sprint(snap.Errors)),
	}
	return lipgloss.NewStyle().Width(width).Align(lipgloss.Center).Render(strings.Join(parts, "   "))
}

func renderCombo(snap game.Snapshot) string {
	switch {
	case snap.ComboBreak:
		return theme.Incorrect.Render("COMBO BREAK!")
	case snap.ComboBonus > 0:
		return theme.Bonus.Render(fmt.Sprintf("%d COMBO  +%d per word", snap.Combo, snap.ComboBonus))
	case snap.Combo > 0:
		return theme.Hint.Render(fmt.Sprintf("%d combo", snap.Combo))
	}
	return ""
}

func endHeading(snap game.Snapshot) string {
	if snap.PerfectClear {
		return theme.Bonus.Render("★ PERFECT CLEAR! ★")
	}
	switch snap.End {
	case game.EndTimeUp:
		return theme.Title.Render("Time up!")
	case game.EndAborted:
		return theme.Title.Render("Session ended")
	}
	return theme.Title.Render("Finished")
}

func (s *PlayScreen) renderResult(width, height int) string {
	snap := s.game.Snapshot()

	row := func(label, value string) string {
		return lipgloss.NewStyle().Width(14).Foreground(theme.TextDim).Render(label) + value
	}

	lines := []string{
		endHeading(snap),
		theme.Subtitle.Render(s.difficulty.DisplayName()),
		"",
		row("Score", theme.Body.Render(fmt.Sprint(snap.Score))),
		row("Combo bonus", theme.Bonus.Render(fmt.Sprintf("+%d", snap.BonusScore))),
		row("Total", theme.Selected.Render(fmt.Sprint(snap.Total))),
		"",
		row("Correct", theme.Correct.Render(fmt.Sprint(snap.Score))),
		row("Misses", theme.Incorrect.Render(fmt.Sprint(snap.Errors))),
		row("Accuracy", theme.Body.Render(fmt.Sprintf("%d%%", snap.Accuracy))),
		row("Max combo", theme.Body.Render(fmt.Sprint(snap.MaxCombo))),
	}

	content := lipgloss.JoinVertical(lipgloss.Left, lines...)
	return layout.Center(theme.Card.Render(content), width, height)
}
