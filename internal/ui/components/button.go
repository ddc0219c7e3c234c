package components

import (
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/jeffreywbertke/DC/internal/ui/theme"
)

// Button is a styled button with an optional shortcut shown beside it.
type Button struct {
	Label    string
	Shortcut string
	Active   bool
	OnPress  func() tea.Cmd
}

// NewButton creates a new button.
func NewButton(label, shortcut string, onPress func() tea.Cmd) Button {
	return Button{
		Label:    label,
		Shortcut: shortcut,
		Active:   true,
		OnPress:  onPress,
	}
}

// Press runs the button action, if any.
func (b Button) Press() tea.Cmd {
	if !b.Active || b.OnPress == nil {
		return nil
	}
	return b.OnPress()
}

// View renders the button.
func (b Button) View() string {
	label := b.Label
	if b.Shortcut != "" {
		label += " [" + b.Shortcut + "]"
	}
	if b.Active {
		return theme.ButtonActive.Render(label)
	}
	return theme.ButtonInactive.Render(label)
}

// ButtonRow renders buttons side by side separated by a gap.
func ButtonRow(buttons ...Button) string {
	parts := make([]string, 0, len(buttons))
	for _, b := range buttons {
		parts = append(parts, b.View())
	}
	return strings.Join(parts, "  ")
}
