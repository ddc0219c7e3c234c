package welcome

import (
	"charm.land/lipgloss/v2"

	"github.com/jeffreywbertke/DC/internal/ui/theme"
)

const bannerArt = `
 ██████╗  ██████╗
 ██╔══██╗██╔════╝
 ██║  ██║██║
 ██║  ██║██║
 ██████╔╝╚██████╗
 ╚═════╝  ╚═════╝`

const bannerCompact = "D · C"

// RenderBanner returns the DC banner in the primary color, falling back to
// a single line for terminals narrower than 24 columns.
func RenderBanner(width int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	if width < 24 {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerArt)
}
