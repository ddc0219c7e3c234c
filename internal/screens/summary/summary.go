package summary

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/jeffreywbertke/DC/internal/practice"
	"github.com/jeffreywbertke/DC/internal/router"
	"github.com/jeffreywbertke/DC/internal/screen"
	"github.com/jeffreywbertke/DC/internal/ui/components"
	"github.com/jeffreywbertke/DC/internal/ui/layout"
	"github.com/jeffreywbertke/DC/internal/ui/theme"
)

// SummaryScreen displays the totals of a finished practice session.
type SummaryScreen struct {
	stats practice.Stats
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)
var _ screen.ScoreProvider = (*SummaryScreen)(nil)

// New creates a new SummaryScreen.
func New(stats practice.Stats) *SummaryScreen {
	return &SummaryScreen{stats: stats}
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Title() string {
	return "Session Summary"
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Continue"},
		{Key: "Esc", Description: "Home"},
	}
}

func (s *SummaryScreen) Score() layout.Score {
	return layout.Score{Correct: s.stats.Correct, Attempted: s.stats.Attempted, Streak: s.stats.Streak}
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "enter", "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

func (s *SummaryScreen) View(width, height int) string {
	st := s.stats
	cw := components.ContentWidth(width, 60)
	center := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)

	var b strings.Builder

	b.WriteString(center.Foreground(theme.Primary).Bold(true).Render("Session complete!"))
	b.WriteString("\n\n")

	if st.Attempted == 0 {
		b.WriteString(center.Foreground(theme.TextDim).Render("No answers checked this time."))
		return b.String()
	}

	b.WriteString(center.Foreground(theme.Text).Render(fmt.Sprintf(
		"Answered: %d        Correct: %d        Best streak: %d",
		st.Attempted, st.Correct, st.BestStreak)))
	b.WriteString("\n\n")

	bar := components.NewProgressBar("Accuracy", st.Accuracy(), true, cw)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, bar.View()))
	b.WriteString("\n\n")

	b.WriteString(center.Render(verdict(st)))
	return b.String()
}

func verdict(st practice.Stats) string {
	switch acc := st.Accuracy(); {
	case acc >= 0.9:
		return theme.Correct.Render("Ohm would be proud.")
	case acc >= 0.5:
		return lipgloss.NewStyle().Foreground(theme.Accent).Render("Solid work. Keep reducing those networks.")
	default:
		return theme.Hint.Render("Try asking the tutor to walk through a few.")
	}
}
