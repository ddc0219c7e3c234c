package components

import (
	"charm.land/lipgloss/v2"

	"github.com/jeffreywbertke/DC/internal/ui/theme"
)

// ContentWidth returns the uniform inner width used for stacked sections
// so their borders line up.
func ContentWidth(frameWidth, maxWidth int) int {
	// cabinet border (2) + inner padding (4)
	return min(max(frameWidth-6, 20), maxWidth)
}

// Frame wraps content in a double-border panel centered in the given
// dimensions.
func Frame(content string, width, height int) string {
	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Primary).
		Width(width-2).
		Height(height-2).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}

// Card wraps content in a rounded-border card at the given width.
func Card(title, content string, cw int) string {
	body := content
	if title != "" {
		body = lipgloss.NewStyle().Foreground(theme.TextDim).Bold(true).Render(title) + "\n" + content
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Width(cw-2).
		Padding(0, 1).
		Render(body)
}

// Banner renders a single highlighted line across the card width, used for
// verdicts and notices.
func Banner(text string, style lipgloss.Style, cw int) string {
	return style.
		Width(cw).
		Align(lipgloss.Center).
		Render(text)
}
