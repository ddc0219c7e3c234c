package schematic

import (
	"strings"
	"testing"

	"github.com/jeffreywbertke/DC/internal/circuit"
)

func circ(topo circuit.Topology, volts float64, rs ...float64) circuit.Circuit {
	c := circuit.Circuit{Topology: topo, Voltage: volts}
	for i, r := range rs {
		n := string(rune('1' + i))
		c.Components = append(c.Components, circuit.Component{ID: "r" + n, Label: "R" + n, Resistance: r})
	}
	return c
}

func TestRender_Series(t *testing.T) {
	got := Render(circ(circuit.Series, 12, 10, 20, 30))
	want := strings.Join([]string{
		"    ┌────[R1 10Ω]────[R2 20Ω]────[R3 30Ω]────┐",
		"    │                                        │",
		"   (+)                                       │",
		"   12V                                       │",
		"   (-)                                       │",
		"    │                                        │",
		"    └────────────────────────────────────────┘",
	}, "\n")
	if got != want {
		t.Errorf("series schematic mismatch\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestRender_Combination(t *testing.T) {
	got := Render(circ(circuit.Combination, 24, 30, 20, 20))
	want := strings.Join([]string{
		"    ┌────[R1 30Ω]────┬───────────┐",
		"    │                │           │",
		"   (+)              [R2]        [R3]",
		"   24V              20Ω         20Ω",
		"   (-)               │           │",
		"    │                │           │",
		"    └────────────────┴───────────┘",
	}, "\n")
	if got != want {
		t.Errorf("combination schematic mismatch\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestRender_Parallel(t *testing.T) {
	got := Render(circ(circuit.Parallel, 9, 45, 15))
	lines := strings.Split(got, "\n")
	if len(lines) != height {
		t.Fatalf("got %d lines, want %d", len(lines), height)
	}
	for _, want := range []string{"[R1]", "[R2]", "45Ω", "15Ω", "9V", "┬", "┴"} {
		if !strings.Contains(got, want) {
			t.Errorf("parallel schematic missing %q:\n%s", want, got)
		}
	}
	if strings.Contains(got, "[R3") {
		t.Errorf("parallel schematic should only draw two resistors:\n%s", got)
	}
}

func TestRender_GeneratedCircuitsShowEveryResistor(t *testing.T) {
	for _, topo := range circuit.Topologies {
		rng := circuit.NewSeededSource(1)
		for range 50 {
			c := circuit.Generate(topo, rng).Circuit
			out := Render(c)
			for _, comp := range c.Components {
				if !strings.Contains(out, comp.Label) || !strings.Contains(out, Ohms(comp.Resistance)) {
					t.Fatalf("%s schematic missing %s %s:\n%s", topo, comp.Label, Ohms(comp.Resistance), out)
				}
			}
			if !strings.Contains(out, Volts(c.Voltage)) {
				t.Fatalf("schematic missing source voltage:\n%s", out)
			}
		}
	}
}

func TestSummarize(t *testing.T) {
	s := Summarize(circ(circuit.Combination, 12, 10, 20, 30))
	if s.Source != "12V" || s.Type != "COMBINATION" || s.Loads != "3" {
		t.Errorf("unexpected summary %+v", s)
	}
	if got := s.String(); got != "Source 12V | Type COMBINATION | Loads 3" {
		t.Errorf("String() = %q", got)
	}
}
