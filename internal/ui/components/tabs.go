package components

import (
	"strings"

	"github.com/jeffreywbertke/DC/internal/ui/theme"
)

// Tabs is a horizontal, single-selection tab strip.
type Tabs struct {
	Labels []string
	Active int
}

// NewTabs creates a tab strip with the given tab active.
func NewTabs(labels []string, active int) Tabs {
	return Tabs{Labels: labels, Active: active}
}

// Next moves to the following tab, wrapping at the end.
func (t Tabs) Next() Tabs {
	if len(t.Labels) > 0 {
		t.Active = (t.Active + 1) % len(t.Labels)
	}
	return t
}

// Prev moves to the preceding tab, wrapping at the start.
func (t Tabs) Prev() Tabs {
	if n := len(t.Labels); n > 0 {
		t.Active = (t.Active - 1 + n) % n
	}
	return t
}

// View renders the tab strip.
func (t Tabs) View() string {
	parts := make([]string, 0, len(t.Labels))
	for i, label := range t.Labels {
		if i == t.Active {
			parts = append(parts, theme.TabActive.Render(label))
		} else {
			parts = append(parts, theme.TabInactive.Render(label))
		}
	}
	return strings.Join(parts, " ")
}
