// Package practice is the interactive problem screen: schematic, question,
// answer entry and the tutor panel.
package practice

import (
	"context"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/jeffreywbertke/DC/internal/circuit"
	sess "github.com/jeffreywbertke/DC/internal/practice"
	"github.com/jeffreywbertke/DC/internal/router"
	"github.com/jeffreywbertke/DC/internal/screen"
	"github.com/jeffreywbertke/DC/internal/screens/summary"
	"github.com/jeffreywbertke/DC/internal/tutor"
	"github.com/jeffreywbertke/DC/internal/ui/components"
	"github.com/jeffreywbertke/DC/internal/ui/layout"
)

const spinnerInterval = 120 * time.Millisecond

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// PracticeScreen implements screen.Screen for a practice session.
type PracticeScreen struct {
	session   *sess.Session
	explainer tutor.Explainer
	tabs      components.Tabs
	input     components.TextInput
	notice    string
	spinner   int
}

var _ screen.Screen = (*PracticeScreen)(nil)
var _ screen.KeyHintProvider = (*PracticeScreen)(nil)
var _ screen.BackHandler = (*PracticeScreen)(nil)
var _ screen.ScoreProvider = (*PracticeScreen)(nil)

// New creates a PracticeScreen over session. explainer may be a tutor
// without a provider; it then answers with the offline message.
func New(session *sess.Session, explainer tutor.Explainer) *PracticeScreen {
	labels := make([]string, len(circuit.Topologies))
	for i, t := range circuit.Topologies {
		labels[i] = strings.ToUpper(t.String())
	}
	return &PracticeScreen{
		session:   session,
		explainer: explainer,
		tabs:      components.NewTabs(labels, int(session.Topology())),
		input:     components.NewTextInput("Type your answer...", true, 16),
	}
}

func (s *PracticeScreen) Init() tea.Cmd {
	return s.input.Init()
}

func (s *PracticeScreen) Title() string {
	return "Practice"
}

func (s *PracticeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Check"},
		{Key: "Ctrl+N", Description: "New"},
		{Key: "Tab", Description: "Topology"},
		{Key: "Ctrl+E", Description: "Tutor"},
		{Key: "Esc", Description: "Finish"},
	}
}

// Score reports the running tally for the header.
func (s *PracticeScreen) Score() layout.Score {
	st := s.session.Stats()
	return layout.Score{Correct: st.Correct, Attempted: st.Attempted, Streak: st.Streak}
}

// Back ends the session by swapping in the summary screen.
func (s *PracticeScreen) Back() tea.Cmd {
	stats := s.session.Stats()
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: summary.New(stats)}
	}
}

func (s *PracticeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case explanationMsg:
		s.session.SetExplanation(msg.RoundID, msg.Text)
		return s, nil

	case spinnerTickMsg:
		if !s.session.Round().Explaining {
			return s, nil
		}
		s.spinner = (s.spinner + 1) % len(spinnerFrames)
		return s, spinnerTick()

	case tea.KeyMsg:
		key := msg.String()
		for _, b := range s.buttons() {
			if strings.EqualFold(b.Shortcut, key) {
				return s, b.Press()
			}
		}
		switch key {
		case "tab":
			return s, s.switchTopology(s.tabs.Next())
		case "shift+tab":
			return s, s.switchTopology(s.tabs.Prev())
		}
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

// buttons returns the action row. Each shortcut doubles as the key binding.
func (s *PracticeScreen) buttons() []components.Button {
	explain := components.NewButton("Ask Tutor", "Ctrl+E", s.explain)
	explain.Active = !s.session.Round().Explaining
	return []components.Button{
		components.NewButton("Check Answer", "Enter", s.check),
		components.NewButton("New Problem", "Ctrl+N", s.newProblem),
		explain,
	}
}

func (s *PracticeScreen) newProblem() tea.Cmd {
	s.session.NewProblem()
	s.resetInput()
	return nil
}

func (s *PracticeScreen) check() tea.Cmd {
	fb, ok := s.session.Submit(s.input.Value())
	if !ok {
		s.notice = "Enter a number first."
		return nil
	}
	s.notice = ""
	s.input.Submit(fb.Correct)
	return nil
}

func (s *PracticeScreen) switchTopology(tabs components.Tabs) tea.Cmd {
	s.tabs = tabs
	s.session.SetTopology(circuit.Topologies[tabs.Active])
	s.resetInput()
	return nil
}

func (s *PracticeScreen) resetInput() {
	s.input.Reset()
	s.notice = ""
}

func (s *PracticeScreen) explain() tea.Cmd {
	roundID, problem := s.session.BeginExplain()
	explainer := s.explainer
	return tea.Batch(
		func() tea.Msg {
			return explanationMsg{RoundID: roundID, Text: explainer.Explain(context.Background(), problem)}
		},
		spinnerTick(),
	)
}

func spinnerTick() tea.Cmd {
	return tea.Tick(spinnerInterval, func(t time.Time) tea.Msg {
		return spinnerTickMsg(t)
	})
}

func (s *PracticeScreen) View(width, height int) string {
	return s.render(width, height)
}
