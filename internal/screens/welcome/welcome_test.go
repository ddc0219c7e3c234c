package welcome

import (
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/jeffreywbertke/DC/internal/router"
	"github.com/jeffreywbertke/DC/internal/screen"
)

// stubScreen is a minimal screen implementation for testing.
type stubScreen struct{}

func (s *stubScreen) Init() tea.Cmd                           { return nil }
func (s *stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (s *stubScreen) View(int, int) string                    { return "home" }
func (s *stubScreen) Title() string                           { return "Home" }

func newTestWelcome() (*WelcomeScreen, *int) {
	callCount := 0
	factory := func() screen.Screen {
		callCount++
		return &stubScreen{}
	}
	return New(factory), &callCount
}

func sendFrames(w *WelcomeScreen, n int) tea.Cmd {
	var cmd tea.Cmd
	for range n {
		_, cmd = w.Update(frameMsg(time.Now()))
	}
	return cmd
}

func hasArrow(view string) bool {
	return strings.ContainsAny(view, "→↓←")
}

func containsBanner(view string) bool {
	return strings.Contains(view, "██████╔╝") || strings.Contains(view, "D · C")
}

func TestPhaseTransitions(t *testing.T) {
	w, _ := newTestWelcome()

	start := w.View(80, 30)
	if containsBanner(start) || hasArrow(start) {
		t.Error("only the circuit should be drawn at start")
	}

	sendFrames(w, currentFrom)
	if view := w.View(80, 30); !hasArrow(view) || containsBanner(view) {
		t.Error("expected current to flow before the banner")
	}

	sendFrames(w, bannerFrom-currentFrom)
	if !containsBanner(w.View(80, 30)) {
		t.Error("banner should be visible")
	}
}

func TestKeypressSkipsAnimation(t *testing.T) {
	w, callCount := newTestWelcome()
	sendFrames(w, 3)

	_, cmd := w.Update(tea.KeyPressMsg{Code: ' '})
	if cmd == nil {
		t.Fatal("keypress during animation should trigger transition")
	}
	msg, ok := cmd().(router.ReplaceScreenMsg)
	if !ok {
		t.Fatalf("expected ReplaceScreenMsg, got %T", cmd())
	}
	if msg.Screen == nil {
		t.Error("replace screen should not be nil")
	}
	if *callCount != 1 {
		t.Errorf("factory should be called once, got %d", *callCount)
	}
}

func TestAnimationEndTransitionsOnce(t *testing.T) {
	w, callCount := newTestWelcome()

	cmd := sendFrames(w, lastFrame)
	if cmd == nil {
		t.Fatal("expected transition when animation ends")
	}
	if _, ok := cmd().(router.ReplaceScreenMsg); !ok {
		t.Fatal("expected ReplaceScreenMsg at end of animation")
	}

	if _, cmd := w.Update(tea.KeyPressMsg{Code: ' '}); cmd != nil {
		t.Error("second transition should be a no-op")
	}
	if cmd := sendFrames(w, 1); cmd != nil {
		t.Error("ticks after transition should stop")
	}
	if *callCount != 1 {
		t.Errorf("factory should be called once, got %d", *callCount)
	}
}

func TestPathFollowsWires(t *testing.T) {
	for _, c := range path {
		ch := []rune(loop[c.row])[c.col]
		if ch != '─' && ch != '│' {
			t.Errorf("path cell %v is %q, not a wire", c, ch)
		}
	}
	if len(path) < 20 {
		t.Errorf("path too short: %d cells", len(path))
	}
}

func TestNarrowBanner(t *testing.T) {
	if !strings.Contains(RenderBanner(20), "D · C") {
		t.Error("expected compact banner for narrow terminals")
	}
}
