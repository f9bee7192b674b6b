package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/romatype/internal/ui/theme"
)

// lowFraction is the share of time left below which a timer bar turns red.
const lowFraction = 0.3

// TimerBar displays the remaining share of a countdown as a horizontal bar.
type TimerBar struct {
	Label    string
	Fraction float64
	Suffix   string
	Width    int
}

// NewTimerBar creates a new timer bar.
func NewTimerBar(label string, fraction float64, suffix string, width int) TimerBar {
	return TimerBar{
		Label:    label,
		Fraction: fraction,
		Suffix:   suffix,
		Width:    width,
	}
}

// View renders the timer bar.
func (p TimerBar) View() string {
	var result string

	if p.Label != "" {
		result += lipgloss.NewStyle().Foreground(theme.Text).Render(p.Label) + "  "
	}

	suffix := ""
	if p.Suffix != "" {
		suffix = lipgloss.NewStyle().Foreground(theme.TextDim).Render(fmt.Sprintf("  %s", p.Suffix))
	}

	barWidth := p.Width - lipgloss.Width(result) - lipgloss.Width(suffix)
	if barWidth < 4 {
		barWidth = 4
	}

	filled := int(float64(barWidth) * p.Fraction)
	filled = min(max(filled, 0), barWidth)
	empty := barWidth - filled

	fill := theme.ProgressFilled
	if p.Fraction < lowFraction {
		fill = theme.ProgressLow
	}

	result += fill.Render(strings.Repeat(" ", filled)) +
		theme.ProgressEmpty.Render(strings.Repeat(" ", empty)) +
		suffix

	return result
}
