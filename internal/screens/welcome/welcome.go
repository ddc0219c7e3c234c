// Package welcome is the splash shown at start-up: the circuit is drawn,
// current starts to flow around the loop, then the banner appears.
package welcome

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/jeffreywbertke/DC/internal/router"
	"github.com/jeffreywbertke/DC/internal/screen"
	"github.com/jeffreywbertke/DC/internal/ui/theme"
)

const (
	frameInterval = 100 * time.Millisecond

	currentFrom = 5  // frames before current flows
	bannerFrom  = 15 // frames before the banner shows
	lastFrame   = 30
)

// loop is a battery driving R1. The current pulse runs clockwise along the
// cells listed in path.
var loop = []string{
	"┌─────┤R1├─────┐",
	"│              │",
	"+              │",
	"═══            │",
	"─              │",
	"│              │",
	"└──────────────┘",
}

type cell struct{ row, col int }

var path = buildPath()

// buildPath walks the top rail left to right, down the right side, and
// back along the bottom, skipping the resistor label.
func buildPath() []cell {
	var p []cell
	top, bottom := []rune(loop[0]), []rune(loop[len(loop)-1])
	right := len(top) - 1
	for c := 1; c < right; c++ {
		if top[c] == '─' {
			p = append(p, cell{0, c})
		}
	}
	for r := 1; r < len(loop)-1; r++ {
		p = append(p, cell{r, right})
	}
	for c := right - 1; c > 0; c-- {
		if bottom[c] == '─' {
			p = append(p, cell{len(loop) - 1, c})
		}
	}
	return p
}

// arrowAt returns the direction glyph for a pulse at cell c.
func arrowAt(c cell) string {
	switch {
	case c.row == 0:
		return "→"
	case c.row == len(loop)-1:
		return "←"
	default:
		return "↓"
	}
}

type frameMsg time.Time

// WelcomeScreen replaces itself with the home screen after lastFrame or on
// the first key press.
type WelcomeScreen struct {
	next  func() screen.Screen
	frame int
	done  bool
}

var _ screen.Screen = (*WelcomeScreen)(nil)

func New(next func() screen.Screen) *WelcomeScreen {
	return &WelcomeScreen{next: next}
}

func (w *WelcomeScreen) Title() string { return "" }

func (w *WelcomeScreen) Init() tea.Cmd { return nextFrame() }

func nextFrame() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg { return frameMsg(t) })
}

func (w *WelcomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg.(type) {
	case frameMsg:
		if w.done {
			return w, nil
		}
		w.frame++
		if w.frame >= lastFrame {
			return w, w.finish()
		}
		return w, nextFrame()
	case tea.KeyPressMsg:
		return w, w.finish()
	}
	return w, nil
}

// finish hands over to the home screen once; later calls return nil.
func (w *WelcomeScreen) finish() tea.Cmd {
	if w.done {
		return nil
	}
	w.done = true
	home := w.next()
	return func() tea.Msg { return router.ReplaceScreenMsg{Screen: home} }
}

func (w *WelcomeScreen) View(width, height int) string {
	grid := make([][]string, len(loop))
	for r, line := range loop {
		for _, ch := range line {
			grid[r] = append(grid[r], string(ch))
		}
	}

	if w.frame >= currentFrom {
		// Two pulses half a loop apart.
		arrow := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)
		for _, offset := range []int{0, len(path) / 2} {
			c := path[(w.frame+offset)%len(path)]
			grid[c.row][c.col] = arrow.Render(arrowAt(c))
		}
	}

	wire := lipgloss.NewStyle().Foreground(theme.Secondary)
	rows := make([]string, len(grid))
	for r, cells := range grid {
		for i, s := range cells {
			if len([]rune(s)) == 1 {
				cells[i] = wire.Render(s)
			}
		}
		rows[r] = strings.Join(cells, "")
	}

	parts := []string{strings.Join(rows, "\n")}
	if w.frame >= bannerFrom {
		parts = append(parts,
			"",
			RenderBanner(width),
			"",
			lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render("Circuit Master"),
			"",
			theme.Hint.Render("press any key to continue"),
		)
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center, parts...))
}
