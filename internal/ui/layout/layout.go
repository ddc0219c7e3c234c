// Package layout draws the chrome around every screen: a header bar with
// the running score and a footer bar with key hints.
package layout

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/jeffreywbertke/DC/internal/ui/theme"
)

// The combination schematic plus question, input and tutor card needs
// roughly this much room.
const (
	MinWidth  = 80
	MinHeight = 30
)

const appName = "DC Circuit Master"

type KeyHint struct {
	Key         string
	Description string
}

// Score is the running tally shown on the right of the header.
type Score struct {
	Correct   int
	Attempted int
	Streak    int
}

// Chrome is what the header and footer show for the active screen.
type Chrome struct {
	Title string
	Score Score
	Hints []KeyHint
}

var bar = lipgloss.NewStyle().
	Background(theme.BgCard).
	Border(lipgloss.RoundedBorder()).
	BorderForeground(theme.Border)

func IsTooSmall(width, height int) bool {
	return width < MinWidth || height < MinHeight
}

func RenderMinSizeMessage(width, height int) string {
	msg := fmt.Sprintf("Terminal too small for the schematic.\n\nResize to at least %d x %d\n\nCurrent: %d x %d",
		MinWidth, MinHeight, width, height)
	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Render(msg)
}

// RenderHeader puts the app name on the left, the title centred and the
// score on the right.
func RenderHeader(title string, score Score, width int) string {
	name := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render("  " + appName)
	center := lipgloss.NewStyle().Foreground(theme.Text).Render(title)
	tally := lipgloss.NewStyle().Foreground(theme.Success).Render(fmt.Sprintf("✓ %d/%d", score.Correct, score.Attempted)) +
		"   " +
		lipgloss.NewStyle().Foreground(theme.Accent).Render(fmt.Sprintf("⚡ %d streak", score.Streak))

	inner := max(width-4, 0)
	nw, cw, tw := lipgloss.Width(name), lipgloss.Width(center), lipgloss.Width(tally)
	gapL := max((inner-cw)/2-nw, 1)
	gapR := max(inner-nw-gapL-cw-tw, 1)

	return bar.Width(width).Render(name + strings.Repeat(" ", gapL) + center + strings.Repeat(" ", gapR) + tally)
}

func RenderFooter(hints []KeyHint, width int) string {
	key := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	desc := lipgloss.NewStyle().Foreground(theme.TextDim)

	var b strings.Builder
	b.WriteString(" ")
	for _, h := range hints {
		b.WriteString("  ")
		b.WriteString(key.Render(h.Key))
		b.WriteString(" ")
		b.WriteString(desc.Render(h.Description))
		b.WriteString(" ")
	}
	return bar.Width(width).Render(strings.TrimRight(b.String(), " "))
}

// Compose renders the header and footer for c, then asks body for content
// that fits the height left between them.
func Compose(c Chrome, width, height int, body func(width, height int) string) string {
	header := RenderHeader(c.Title, c.Score, width)
	footer := RenderFooter(c.Hints, width)

	h := max(height-lipgloss.Height(header)-lipgloss.Height(footer), 0)
	content := lipgloss.NewStyle().Width(width).Height(h).Render(body(width, h))

	return lipgloss.JoinVertical(lipgloss.Left, header, content, footer)
}
