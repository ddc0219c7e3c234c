package circuit

import (
	"fmt"
	"math"
	"math/rand/v2"
)

// RandomSource supplies uniform floats in [0, 1). *rand.Rand satisfies it.
type RandomSource interface {
	Float64() float64
}

// NewSeededSource returns a reproducible RandomSource.
func NewSeededSource(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

const (
	minVoltage     = 5
	voltageSpan    = 20
	minResistance  = 10
	resistanceSpan = 50
	resistorDraws  = 3
)

// generatedTargets is the target space Generate draws from. TargetVoltage
// is deliberately absent.
var generatedTargets = []Target{TargetResistance, TargetCurrent}

// Generate samples a new problem for topology. Draws happen in a fixed
// order (voltage, R1, R2, R3, target) for every topology so a seeded
// source yields the same values regardless of which resistors are used.
func Generate(topology Topology, rng RandomSource) Problem {
	voltage := draw(rng, voltageSpan) + minVoltage

	resistors := make([]Component, resistorDraws)
	for i := range resistors {
		resistors[i] = Component{
			ID:         fmt.Sprintf("r%d", i+1),
			Label:      fmt.Sprintf("R%d", i+1),
			Resistance: float64(draw(rng, resistanceSpan) + minResistance),
		}
	}

	n := topology.ComponentCount()
	c := Circuit{
		Topology:   topology,
		Voltage:    float64(voltage),
		Components: resistors[:n:n],
	}

	target := generatedTargets[draw(rng, len(generatedTargets))]

	return Problem{
		Circuit: c,
		Result:  mustSolve(c),
		Target:  target,
	}
}

// draw returns floor(r*n), clamped to n-1 for sources that return 1.
func draw(rng RandomSource, n int) int {
	v := int(math.Floor(rng.Float64() * float64(n)))
	if v >= n {
		v = n - 1
	}
	if v < 0 {
		v = 0
	}
	return v
}
