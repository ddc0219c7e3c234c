package circuit

import "fmt"

// Solve computes the equivalent resistance, total current and the
// per-component breakdown of c. It returns an error if c violates the
// circuit invariants.
func Solve(c Circuit) (SolvedResult, error) {
	if err := c.Validate(); err != nil {
		return SolvedResult{}, fmt.Errorf("solve: %w", err)
	}

	r := c.Resistances()

	var req float64
	switch c.Topology {
	case Series:
		req = SeriesReduce(r...)
	case Parallel:
		req = ParallelReduce(r...)
	case Combination:
		req = r[0] + ParallelReduce(r[1], r[2])
	}

	total := c.Voltage / req
	result := SolvedResult{
		TotalResistance: req,
		TotalCurrent:    total,
		Voltages:        make(map[string]float64, len(c.Components)),
		Currents:        make(map[string]float64, len(c.Components)),
	}
	breakdown(c, total, &result)
	return result, nil
}

// mustSolve is Solve for circuits that are valid by construction.
func mustSolve(c Circuit) SolvedResult {
	result, err := Solve(c)
	if err != nil {
		panic(err)
	}
	return result
}

// SeriesReduce returns the equivalent resistance of resistors in series.
func SeriesReduce(r ...float64) float64 {
	var sum float64
	for _, v := range r {
		sum += v
	}
	return sum
}

// ParallelReduce returns the equivalent resistance of resistors in parallel:
// the reciprocal of the summed conductances.
func ParallelReduce(r ...float64) float64 {
	var g float64
	for _, v := range r {
		g += 1 / v
	}
	return 1 / g
}

// breakdown fills the per-component voltage drops and currents.
func breakdown(c Circuit, total float64, res *SolvedResult) {
	comps := c.Components
	switch c.Topology {
	case Series:
		for _, comp := range comps {
			res.Currents[comp.ID] = total
			res.Voltages[comp.ID] = total * comp.Resistance
		}
	case Parallel:
		for _, comp := range comps {
			res.Voltages[comp.ID] = c.Voltage
			res.Currents[comp.ID] = c.Voltage / comp.Resistance
		}
	case Combination:
		head := comps[0]
		res.Currents[head.ID] = total
		res.Voltages[head.ID] = total * head.Resistance

		// The pair shares whatever the series element leaves over.
		shared := c.Voltage - res.Voltages[head.ID]
		for _, comp := range comps[1:] {
			res.Voltages[comp.ID] = shared
			res.Currents[comp.ID] = shared / comp.Resistance
		}
	}
}
