package home

import (
	"charm.land/lipgloss/v2"

	"github.com/jeffreywbertke/DC/internal/ui/components"
	"github.com/jeffreywbertke/DC/internal/ui/theme"
)

const titleFull = `██████╗  ██████╗
██╔══██╗██╔════╝
██║  ██║██║
██║  ██║██║
██████╔╝╚██████╗
╚═════╝  ╚═════╝`

const titleCompact = "D · C"

// renderTitle returns the block title or its compact fallback.
func renderTitle(cw int, compact bool) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	art := titleFull
	if compact {
		art = titleCompact
	}

	subtitle := lipgloss.NewStyle().
		Foreground(theme.Danger).
		Bold(true).
		Render("CIRCUIT MASTER")

	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(style.Render(art) + "\n" + subtitle)
}

// renderTutorStatus shows which model backs the tutor, or how to enable it.
func renderTutorStatus(model string, cw int) string {
	if model == "" {
		return components.Banner(
			"⚠ AI tutor offline: set an LLM API key (dcmaster --help)",
			lipgloss.NewStyle().Foreground(theme.Accent), cw)
	}
	return components.Banner("AI tutor: "+model, lipgloss.NewStyle().Foreground(theme.TextDim), cw)
}

// renderMenu renders the topology menu inside a card.
func renderMenu(m components.Menu, cw int) string {
	return components.Card("CHOOSE A CIRCUIT", m.View(), cw)
}
