// Package theme is the bench-lab palette: blue wiring, amber battery and
// red resistors on slate.
package theme

import "charm.land/lipgloss/v2"

var (
	Primary   = lipgloss.Color("#2563EB") // wiring
	Secondary = lipgloss.Color("#38BDF8")
	Accent    = lipgloss.Color("#F59E0B") // battery
	Danger    = lipgloss.Color("#DC2626") // resistors
	Success   = lipgloss.Color("#22C55E")
	Error     = lipgloss.Color("#EF4444")
	Text      = lipgloss.Color("#F8FAFC")
	TextDim   = lipgloss.Color("#94A3B8")
	BgCard    = lipgloss.Color("#1E293B")
	Border    = lipgloss.Color("#334155")
)

var (
	Hint      = lipgloss.NewStyle().Foreground(TextDim).Italic(true)
	Schematic = lipgloss.NewStyle().Foreground(Secondary)

	Selected   = lipgloss.NewStyle().Foreground(Primary).Bold(true)
	Unselected = lipgloss.NewStyle().Foreground(Text)

	// Answer feedback.
	Correct   = lipgloss.NewStyle().Foreground(Success).Bold(true)
	Incorrect = lipgloss.NewStyle().Foreground(Error).Bold(true)

	ProgressFilled = lipgloss.NewStyle().Background(Secondary)
	ProgressEmpty  = lipgloss.NewStyle().Background(Border)
)

// Buttons and topology tabs share a pill shape; the active one is filled.
var (
	pill = lipgloss.NewStyle().Padding(0, 2)

	ButtonActive   = pill.Background(Primary).Foreground(Text).Bold(true)
	ButtonInactive = pill.Foreground(TextDim).Border(lipgloss.RoundedBorder()).BorderForeground(Border)

	TabActive   = pill.Background(Primary).Foreground(Text).Bold(true)
	TabInactive = pill.Foreground(TextDim)
)
