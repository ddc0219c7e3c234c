package home

import (
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/jeffreywbertke/DC/internal/circuit"
	sess "github.com/jeffreywbertke/DC/internal/practice"
	"github.com/jeffreywbertke/DC/internal/router"
	"github.com/jeffreywbertke/DC/internal/screen"
	practicescreen "github.com/jeffreywbertke/DC/internal/screens/practice"
	"github.com/jeffreywbertke/DC/internal/tutor"
	"github.com/jeffreywbertke/DC/internal/ui/components"
)

// Deps are the collaborators the home screen hands to each practice session.
type Deps struct {
	// NewSession starts a practice session on a topology.
	NewSession func(circuit.Topology) *sess.Session
	Explainer  tutor.Explainer
	// TutorModel names the model behind Explainer; empty when offline.
	TutorModel string
}

// HomeScreen is the main home screen of the application.
type HomeScreen struct {
	menu       components.Menu
	tutorModel string
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen with the initial topology preselected.
func New(deps Deps, initial circuit.Topology) *HomeScreen {
	items := make([]components.MenuItem, 0, len(circuit.Topologies)+1)
	for _, t := range circuit.Topologies {
		items = append(items, components.MenuItem{
			Label:  strings.ToUpper(t.String()) + " CIRCUIT",
			Detail: loadsDetail(t),
			Action: func() tea.Cmd {
				return func() tea.Msg {
					return router.PushScreenMsg{
						Screen: practicescreen.New(deps.NewSession(t), deps.Explainer),
					}
				}
			},
		})
	}
	items = append(items, components.MenuItem{
		Label:  "QUIT",
		Action: func() tea.Cmd { return tea.Quit },
	})

	menu := components.NewMenu(items)
	menu.Selected = int(initial)

	return &HomeScreen{
		menu:       menu,
		tutorModel: deps.TutorModel,
	}
}

func loadsDetail(t circuit.Topology) string {
	switch t {
	case circuit.Series:
		return "R1 + R2 + R3"
	case circuit.Parallel:
		return "R1 || R2"
	default:
		return "R1 + (R2 || R3)"
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	compact := height < 24 || width < 100
	cw := components.ContentWidth(width, 60)

	sections := []string{
		renderTitle(cw, compact),
		renderTutorStatus(h.tutorModel, cw),
		renderMenu(h.menu, cw),
	}

	return components.Frame(strings.Join(sections, "\n\n"), width, height)
}

func (h *HomeScreen) Title() string {
	return "Home"
}
