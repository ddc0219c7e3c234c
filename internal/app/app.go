package app

import (
	"context"
	"fmt"

	tea "charm.land/bubbletea/v2"

	"github.com/jeffreywbertke/DC/internal/circuit"
	"github.com/jeffreywbertke/DC/internal/router"
	"github.com/jeffreywbertke/DC/internal/screen"
	"github.com/jeffreywbertke/DC/internal/screens/home"
	"github.com/jeffreywbertke/DC/internal/screens/welcome"
	"github.com/jeffreywbertke/DC/internal/ui/layout"
)

// Options configures the TUI.
type Options struct {
	Home home.Deps

	// Topology is preselected on the home menu.
	Topology circuit.Topology

	// SkipSplash starts on the home screen.
	SkipSplash bool
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	width  int
	height int
}

// newAppModel creates a new AppModel starting at the splash or home screen.
func newAppModel(opts Options) AppModel {
	homeFactory := func() screen.Screen {
		return home.New(opts.Home, opts.Topology)
	}

	var initial screen.Screen = welcome.New(homeFactory)
	if opts.SkipSplash {
		initial = homeFactory()
	}
	return AppModel{
		router: router.New(initial),
	}
}

func (m AppModel) Init() tea.Cmd {
	return m.router.Active().Init()
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
			if bh, ok := m.router.Active().(screen.BackHandler); ok {
				return m, bh.Back()
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

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	chrome := layout.Chrome{Title: active.Title(), Hints: m.footerHints(active)}
	if sp, ok := active.(screen.ScoreProvider); ok {
		chrome.Score = sp.Score()
	}

	v.SetContent(layout.Compose(chrome, m.width, m.height, m.router.View))
	return v
}

var quitHint = layout.KeyHint{Key: "Ctrl+C", Description: "Quit"}

// footerHints prefers the screen's own hints; otherwise it shows menu
// navigation at the root and Back above it.
func (m AppModel) footerHints(active screen.Screen) []layout.KeyHint {
	var hints []layout.KeyHint
	switch hp, ok := active.(screen.KeyHintProvider); {
	case ok:
		hints = hp.KeyHints()
	case m.router.Depth() > 1:
		hints = []layout.KeyHint{{Key: "Esc", Description: "Back"}}
	default:
		hints = []layout.KeyHint{{Key: "↑↓", Description: "Navigate"}, {Key: "Enter", Description: "Select"}}
	}
	return append(hints, quitHint)
}

// Run blocks until the user quits or ctx is cancelled.
func Run(ctx context.Context, opts Options) error {
	if _, err := tea.NewProgram(newAppModel(opts), tea.WithContext(ctx)).Run(); err != nil {
		return fmt.Errorf("run TUI: %w", err)
	}
	return nil
}
