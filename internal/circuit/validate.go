package circuit

import (
	"errors"
	"fmt"
	"math"
)

var (
	ErrComponentCount = errors.New("wrong component count for topology")
	ErrNonPositive    = errors.New("value must be positive and finite")
	ErrTopology       = errors.New("unknown topology")
)

// Validate reports whether c satisfies the circuit invariants.
func (c Circuit) Validate() error {
	switch c.Topology {
	case Series, Parallel, Combination:
	default:
		return fmt.Errorf("%w: %d", ErrTopology, int(c.Topology))
	}

	if want := c.Topology.ComponentCount(); len(c.Components) != want {
		return fmt.Errorf("%w: %s needs %d, got %d", ErrComponentCount, c.Topology, want, len(c.Components))
	}

	if !positive(c.Voltage) {
		return fmt.Errorf("voltage %v: %w", c.Voltage, ErrNonPositive)
	}

	for _, comp := range c.Components {
		if !positive(comp.Resistance) {
			return fmt.Errorf("%s resistance %v: %w", comp.Label, comp.Resistance, ErrNonPositive)
		}
	}
	return nil
}

func positive(v float64) bool {
	return v > 0 && !math.IsInf(v, 0) && !math.IsNaN(v)
}
