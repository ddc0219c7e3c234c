package nodal

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/jeffreywbertke/DC/internal/circuit"
)

// ErrMismatch is returned by Verify when the two solvers disagree.
var ErrMismatch = errors.New("nodal and closed-form results disagree")

// Solution is the operating point of a network.
type Solution struct {
	// NodeVoltages is indexed by NodeID; NodeVoltages[Ground] is 0.
	NodeVoltages []float64

	TotalCurrent         float64
	EquivalentResistance float64

	Voltages map[string]float64
	Currents map[string]float64
}

// Result converts s into the closed-form result type.
func (s Solution) Result() circuit.SolvedResult {
	return circuit.SolvedResult{
		TotalResistance: s.EquivalentResistance,
		TotalCurrent:    s.TotalCurrent,
		Voltages:        s.Voltages,
		Currents:        s.Currents,
	}
}

// Solve stamps the conductance matrix plus one row for the voltage source
// and solves A·x = z. The unknowns are the non-ground node voltages
// followed by the source current.
func (n Network) Solve() (Solution, error) {
	size := n.Nodes + 1
	a := mat.NewDense(size, size, nil)
	z := mat.NewVecDense(size, nil)

	stamp := func(i, j NodeID, v float64) {
		if i == Ground || j == Ground {
			return
		}
		r, c := int(i)-1, int(j)-1
		a.Set(r, c, a.At(r, c)+v)
	}

	for _, br := range n.Branches {
		g := 1 / br.Resistance
		stamp(br.From, br.From, g)
		stamp(br.To, br.To, g)
		stamp(br.From, br.To, -g)
		stamp(br.To, br.From, -g)
	}

	// Source between node 1 (+) and ground.
	vs := size - 1
	a.Set(int(positive)-1, vs, 1)
	a.Set(vs, int(positive)-1, 1)
	z.SetVec(vs, n.Voltage)

	var x mat.VecDense
	if err := x.SolveVec(a, z); err != nil {
		return Solution{}, fmt.Errorf("solve node equations: %w", err)
	}

	sol := Solution{
		NodeVoltages: make([]float64, n.Nodes+1),
		Voltages:     make(map[string]float64, len(n.Branches)),
		Currents:     make(map[string]float64, len(n.Branches)),
	}
	for i := 1; i <= n.Nodes; i++ {
		sol.NodeVoltages[i] = x.AtVec(i - 1)
	}

	for _, br := range n.Branches {
		drop := sol.NodeVoltages[br.From] - sol.NodeVoltages[br.To]
		sol.Voltages[br.ID] = drop
		sol.Currents[br.ID] = drop / br.Resistance
	}

	// x[vs] is the current flowing into the + terminal; the source delivers
	// the opposite.
	sol.TotalCurrent = -x.AtVec(vs)
	if sol.TotalCurrent <= 0 {
		return Solution{}, fmt.Errorf("solve node equations: non-positive source current %v", sol.TotalCurrent)
	}
	sol.EquivalentResistance = n.Voltage / sol.TotalCurrent
	return sol, nil
}

// Analyze builds and solves the network for c.
func Analyze(c circuit.Circuit) (Solution, error) {
	n, err := Build(c)
	if err != nil {
		return Solution{}, err
	}
	return n.Solve()
}

// Verify solves c both ways and reports whether the totals and every
// per-component value agree within a relative tolerance of 1e-9.
func Verify(c circuit.Circuit) error {
	closed, err := circuit.Solve(c)
	if err != nil {
		return err
	}
	sol, err := Analyze(c)
	if err != nil {
		return err
	}

	check := func(what string, want, got float64) error {
		if !near(want, got) {
			return fmt.Errorf("%w: %s closed-form %v, nodal %v", ErrMismatch, what, want, got)
		}
		return nil
	}

	if err := check("equivalent resistance", closed.TotalResistance, sol.EquivalentResistance); err != nil {
		return err
	}
	if err := check("total current", closed.TotalCurrent, sol.TotalCurrent); err != nil {
		return err
	}
	for _, comp := range c.Components {
		if err := check(comp.Label+" voltage", closed.Voltages[comp.ID], sol.Voltages[comp.ID]); err != nil {
			return err
		}
		if err := check(comp.Label+" current", closed.Currents[comp.ID], sol.Currents[comp.ID]); err != nil {
			return err
		}
	}
	return nil
}

func near(a, b float64) bool {
	scale := math.Max(math.Abs(a), math.Abs(b))
	return math.Abs(a-b) <= 1e-9*math.Max(scale, 1)
}
