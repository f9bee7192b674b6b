package app

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/rs/zerolog"

	"github.com/abhisek/romatype/internal/notify"
	"github.com/abhisek/romatype/internal/router"
	"github.com/abhisek/romatype/internal/screen"
	"github.com/abhisek/romatype/internal/screens/menu"
	"github.com/abhisek/romatype/internal/screens/play"
	"github.com/abhisek/romatype/internal/ui/layout"
	"github.com/abhisek/romatype/internal/vocab"
)

// Options configures the terminal UI.
type Options struct {
	Timings vocab.Timings
	Sink    notify.Sink
	Logger  zerolog.Logger

	// Difficulty is the tier preselected in the menu.
	Difficulty vocab.Difficulty

	// AutoStart skips the menu and starts a session at Difficulty.
	AutoStart bool

	// Seed fixes the word order when non-nil.
	Seed *uint64
}

func (o Options) deps() play.Deps {
	d := play.Deps{
		Timings: o.Timings,
		Sink:    o.Sink,
		Logger:  o.Logger,
	}
	if o.Seed != nil {
		seed := *o.Seed
		d.Rand = func() *rand.Rand { return rand.New(rand.NewPCG(seed, seed)) }
	}
	return d
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	opts   Options
	width  int
	height int
}

// newAppModel creates a new AppModel with the menu screen at the bottom.
func newAppModel(opts Options) AppModel {
	return AppModel{
		router: router.New(menu.New(opts.deps(), opts.Difficulty), opts.Logger),
		opts:   opts,
	}
}

func (m AppModel) Init() tea.Cmd {
	if !m.opts.AutoStart {
		return nil
	}
	s := play.New(m.opts.deps(), m.opts.Difficulty)
	return func() tea.Msg { return router.PushScreenMsg{Screen: s} }
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if h, ok := m.router.Active().(screen.EscapeHandler); ok && h.HandlesEscape() {
				break
			}
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}
	v.SetContent(m.frame())
	return v
}

// frame renders header, active screen and footer for the current size.
func (m AppModel) frame() string {
	if layout.IsTooSmall(m.width, m.height) {
		return layout.RenderMinSizeMessage(m.width, m.height)
	}

	active := m.router.Active()
	title, status := "", ""
	if active != nil {
		title = active.Title()
		if sp, ok := active.(screen.StatusProvider); ok {
			status = sp.Status()
		}
	}

	header := layout.RenderHeader(title, status, m.width)

	var footerHints []layout.KeyHint
	if hp, ok := active.(screen.KeyHintProvider); ok {
		footerHints = hp.KeyHints()
	} else if m.router.Depth() > 1 {
		footerHints = []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}

	footer := layout.RenderFooter(footerHints, m.width)

	contentHeight := m.height - lipgloss.Height(header) - lipgloss.Height(footer)
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	return layout.RenderFrame(header, content, footer, m.width, m.height)
}

// Run starts the Bubble Tea program and blocks until it exits or ctx is
// cancelled. Cancellation is a clean exit.
func Run(ctx context.Context, opts Options, progOpts ...tea.ProgramOption) error {
	progOpts = append([]tea.ProgramOption{tea.WithContext(ctx)}, progOpts...)
	p := tea.NewProgram(newAppModel(opts), progOpts...)
	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		opts.Logger.Debug().Err(ctx.Err()).Msg("program stopped by context")
		return nil
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
