package circuit

import (
	"fmt"
	"strings"
)

// Topology identifies one of the fixed circuit templates.
type Topology int

const (
	// Series places every resistor on a single current path.
	Series Topology = iota

	// Parallel connects every resistor across the source.
	Parallel

	// Combination puts R1 in series with the parallel pair R2 || R3.
	Combination
)

// Topologies lists every topology in display order.
var Topologies = []Topology{Series, Parallel, Combination}

func (t Topology) String() string {
	switch t {
	case Series:
		return "series"
	case Parallel:
		return "parallel"
	case Combination:
		return "combination"
	default:
		return fmt.Sprintf("topology(%d)", int(t))
	}
}

// ComponentCount returns how many resistors a circuit of this topology holds.
func (t Topology) ComponentCount() int {
	switch t {
	case Parallel:
		return 2
	default:
		return 3
	}
}

// Next returns the topology after t, wrapping around.
func (t Topology) Next() Topology {
	return Topologies[(int(t)+1)%len(Topologies)]
}

// ParseTopology parses a topology name (case-insensitive).
func ParseTopology(s string) (Topology, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "series":
		return Series, nil
	case "parallel":
		return Parallel, nil
	case "combination", "combo":
		return Combination, nil
	default:
		return 0, fmt.Errorf("unknown topology %q: must be series, parallel or combination", s)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (t Topology) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *Topology) UnmarshalText(b []byte) error {
	parsed, err := ParseTopology(string(b))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Component is a single resistor.
type Component struct {
	ID         string  `json:"id"`
	Label      string  `json:"label"`
	Resistance float64 `json:"resistance"` // ohms
}

// Circuit is a complete problem circuit: a DC source driving resistors
// arranged by Topology. Circuits are replaced, never mutated.
type Circuit struct {
	Topology   Topology    `json:"topology"`
	Voltage    float64     `json:"voltage"` // volts
	Components []Component `json:"components"`
}

// Resistances returns the component resistances in order.
func (c Circuit) Resistances() []float64 {
	out := make([]float64, len(c.Components))
	for i, comp := range c.Components {
		out[i] = comp.Resistance
	}
	return out
}

// Target is the quantity the learner is asked for.
type Target string

const (
	TargetResistance Target = "ohms"
	TargetCurrent    Target = "amps"

	// TargetVoltage is accepted by CheckAnswer but never chosen by Generate.
	TargetVoltage Target = "volts"
)

// Unit returns the display symbol for the target's unit.
func (t Target) Unit() string {
	switch t {
	case TargetResistance:
		return "Ω"
	case TargetCurrent:
		return "A"
	case TargetVoltage:
		return "V"
	default:
		return ""
	}
}

// Quantity returns the upper-case name used in question text.
func (t Target) Quantity() string {
	switch t {
	case TargetResistance:
		return "RESISTANCE"
	case TargetCurrent:
		return "CURRENT"
	case TargetVoltage:
		return "VOLTAGE"
	default:
		return strings.ToUpper(string(t))
	}
}

// SolvedResult holds the values derived from a Circuit.
type SolvedResult struct {
	TotalResistance float64 `json:"total_resistance"`
	TotalCurrent    float64 `json:"total_current"`

	// Voltages and Currents are keyed by Component.ID.
	Voltages map[string]float64 `json:"voltages"`
	Currents map[string]float64 `json:"currents"`
}

// Value returns the quantity selected by target.
func (r SolvedResult) Value(target Target) float64 {
	switch target {
	case TargetResistance:
		return r.TotalResistance
	case TargetCurrent:
		return r.TotalCurrent
	case TargetVoltage:
		return r.TotalCurrent * r.TotalResistance
	default:
		return 0
	}
}

// Problem is one generated round: the circuit, its solution and the
// quantity the learner must supply.
type Problem struct {
	Circuit Circuit      `json:"circuit"`
	Result  SolvedResult `json:"result"`
	Target  Target       `json:"target"`
}
