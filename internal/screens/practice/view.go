package practice

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/jeffreywbertke/DC/internal/schematic"
	"github.com/jeffreywbertke/DC/internal/ui/components"
	"github.com/jeffreywbertke/DC/internal/ui/theme"
)

func (s *PracticeScreen) render(width, height int) string {
	cw := components.ContentWidth(width, 72)
	round := s.session.Round()
	c := round.Problem.Circuit

	var sections []string

	sections = append(sections, s.tabs.View(), "")

	diagram := theme.Schematic.Render(strings.TrimRight(schematic.Render(c), "\n"))
	sections = append(sections,
		components.Card("", diagram+"\n\n"+theme.Hint.Render(schematic.Summarize(c).String()), cw),
		"",
	)

	sections = append(sections, lipgloss.NewStyle().
		Foreground(theme.Text).
		Bold(true).
		Render(round.Question()))

	unit := lipgloss.NewStyle().Foreground(theme.TextDim).Render(round.Problem.Target.Unit())
	sections = append(sections, s.input.View()+" "+unit)

	switch {
	case s.notice != "":
		sections = append(sections, theme.Hint.Render(s.notice))
	case round.Feedback != nil && round.Feedback.Correct:
		sections = append(sections, theme.Correct.Render("✓ "+round.Feedback.Message))
	case round.Feedback != nil:
		sections = append(sections, theme.Incorrect.Render("✗ "+round.Feedback.Message))
	default:
		sections = append(sections, "")
	}
	sections = append(sections, "")

	sections = append(sections, components.ButtonRow(s.buttons()...), "")

	switch {
	case round.Explaining:
		sections = append(sections, lipgloss.NewStyle().
			Foreground(theme.Accent).
			Render(spinnerFrames[s.spinner]+" Consulting..."))
	case round.Explanation != "":
		sections = append(sections, components.Card("AI TUTOR", round.Explanation, cw))
	}

	content := lipgloss.JoinVertical(lipgloss.Left, sections...)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Top, content)
}
