package components

import (
	"strconv"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/jeffreywbertke/DC/internal/ui/theme"
)

type MenuItem struct {
	Label  string
	Detail string // dimmed text after the label
	Action func() tea.Cmd
}

// Menu is a vertical list with a cursor. Up/down wrap around, Enter runs
// the item under the cursor and the digits 1-9 run an item directly.
type Menu struct {
	Items    []MenuItem
	Selected int
}

func NewMenu(items []MenuItem) Menu {
	return Menu{Items: items}
}

func (m Menu) Update(msg tea.Msg) (Menu, tea.Cmd) {
	key, ok := msg.(tea.KeyPressMsg)
	if !ok || len(m.Items) == 0 {
		return m, nil
	}

	n := len(m.Items)
	switch k := key.String(); k {
	case "up", "k":
		m.Selected = (m.Selected - 1 + n) % n
	case "down", "j":
		m.Selected = (m.Selected + 1) % n
	case "enter":
		return m, m.run(m.Selected)
	default:
		if i, err := strconv.Atoi(k); err == nil && i >= 1 && i <= n {
			m.Selected = i - 1
			return m, m.run(m.Selected)
		}
	}
	return m, nil
}

func (m Menu) run(i int) tea.Cmd {
	if i < 0 || i >= len(m.Items) || m.Items[i].Action == nil {
		return nil
	}
	return m.Items[i].Action()
}

func (m Menu) View() string {
	detail := lipgloss.NewStyle().Foreground(theme.TextDim)

	var b strings.Builder
	for i, item := range m.Items {
		style, marker := theme.Unselected, "    "
		if i == m.Selected {
			style, marker = theme.Selected, "  ▸ "
		}
		b.WriteString(style.Render(marker + item.Label))
		if item.Detail != "" {
			b.WriteString(detail.Render("  " + item.Detail))
		}
		b.WriteByte('\n')
	}
	return b.String()
}
