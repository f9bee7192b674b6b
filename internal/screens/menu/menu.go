// Package menu is the difficulty selection screen at the bottom of the
// screen stack.
package menu

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/romatype/internal/router"
	"github.com/abhisek/romatype/internal/screen"
	"github.com/abhisek/romatype/internal/screens/play"
	"github.com/abhisek/romatype/internal/ui/components"
	"github.com/abhisek/romatype/internal/ui/layout"
	"github.com/abhisek/romatype/internal/ui/theme"
	"github.com/abhisek/romatype/internal/vocab"
)

// MenuScreen lists the difficulty tiers and a quit entry.
type MenuScreen struct {
	menu  components.Menu
	tiers []vocab.Difficulty
}

var _ screen.Screen = (*MenuScreen)(nil)
var _ screen.KeyHintProvider = (*MenuScreen)(nil)

// New creates the menu. The cursor starts on the preferred tier.
func New(deps play.Deps, preferred vocab.Difficulty) *MenuScreen {
	tiers := vocab.AllDifficulties()
	timings := deps.Timings
	if timings == nil {
		timings = vocab.DefaultTimings()
	}

	items := make([]components.MenuItem, 0, len(tiers)+1)
	for _, d := range tiers {
		t := timings.For(d)
		items = append(items, components.MenuItem{
			Label:  strings.ToUpper(d.DisplayName()),
			Detail: fmt.Sprintf("%gs / word · %ds", t.PerWord.Seconds(), t.SessionSeconds()),
			Action: func() tea.Cmd {
				return func() tea.Msg {
					return router.PushScreenMsg{Screen: play.New(deps, d)}
				}
			},
		})
	}
	items = append(items, components.MenuItem{Label: "QUIT", Action: func() tea.Cmd {
		return tea.Quit
	}})

	m := &MenuScreen{menu: components.NewMenu(items), tiers: tiers}
	for i, d := range tiers {
		if d == preferred {
			m.menu.Select(i)
		}
	}
	return m
}

func (m *MenuScreen) Init() tea.Cmd {
	return nil
}

func (m *MenuScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	m.menu, cmd = m.menu.Update(msg)
	return m, cmd
}

func (m *MenuScreen) Title() string {
	return "Select difficulty"
}

func (m *MenuScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Play"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

// selected returns the highlighted tier, or "" on the quit entry.
func (m *MenuScreen) selected() vocab.Difficulty {
	if m.menu.Selected < len(m.tiers) {
		return m.tiers[m.menu.Selected]
	}
	return ""
}

func (m *MenuScreen) View(width, height int) string {
	sections := []string{
		theme.Title.Render("ローマ字 TYPING"),
		theme.Subtitle.Render("type the romaji before the word timer runs out"),
		"",
		m.menu.View(),
	}
	if d := m.selected(); d != "" {
		sections = append(sections, theme.Hint.Render(vocab.Blurb(d)))
	}

	content := lipgloss.JoinVertical(lipgloss.Center, sections...)
	return layout.Center(theme.Card.Render(content), width, height)
}
