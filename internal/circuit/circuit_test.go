package circuit

import (
	"errors"
	"math"
	"strings"
	"testing"
)

const epsilon = 1e-9

// seqSource replays a fixed sequence of draws.
type seqSource struct {
	values []float64
	i      int
}

func (s *seqSource) Float64() float64 {
	v := s.values[s.i%len(s.values)]
	s.i++
	return v
}

func approx(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

func resistors(values ...float64) []Component {
	out := make([]Component, len(values))
	for i, v := range values {
		out[i] = Component{
			ID:         "r" + string(rune('1'+i)),
			Label:      "R" + string(rune('1'+i)),
			Resistance: v,
		}
	}
	return out
}

func TestTopology_ParseAndString(t *testing.T) {
	tests := []struct {
		input string
		want  Topology
	}{
		{"series", Series},
		{"Parallel", Parallel},
		{" COMBINATION ", Combination},
		{"combo", Combination},
	}
	for _, tt := range tests {
		got, err := ParseTopology(tt.input)
		if err != nil {
			t.Fatalf("ParseTopology(%q): unexpected error: %v", tt.input, err)
		}
		if got != tt.want {
			t.Errorf("ParseTopology(%q) = %v, want %v", tt.input, got, tt.want)
		}
		if back, _ := ParseTopology(got.String()); back != got {
			t.Errorf("round trip of %v gave %v", got, back)
		}
	}

	if _, err := ParseTopology("bridge"); err == nil {
		t.Error("expected error for unknown topology")
	}
}

func TestTopology_Next(t *testing.T) {
	if Series.Next() != Parallel || Parallel.Next() != Combination || Combination.Next() != Series {
		t.Error("Next should cycle series -> parallel -> combination -> series")
	}
}

func TestGenerate_Invariants(t *testing.T) {
	for _, topo := range Topologies {
		for seed := uint64(0); seed < 500; seed++ {
			p := Generate(topo, NewSeededSource(seed))
			c := p.Circuit

			if err := c.Validate(); err != nil {
				t.Fatalf("%s seed %d: invalid circuit: %v", topo, seed, err)
			}
			if c.Topology != topo {
				t.Fatalf("topology = %v, want %v", c.Topology, topo)
			}
			if len(c.Components) != topo.ComponentCount() {
				t.Fatalf("%s: %d components, want %d", topo, len(c.Components), topo.ComponentCount())
			}
			if c.Voltage < 5 || c.Voltage > 24 || c.Voltage != math.Trunc(c.Voltage) {
				t.Fatalf("voltage %v out of range", c.Voltage)
			}
			for i, comp := range c.Components {
				if comp.Resistance < 10 || comp.Resistance > 59 || comp.Resistance != math.Trunc(comp.Resistance) {
					t.Fatalf("%s resistance %v out of range", comp.Label, comp.Resistance)
				}
				if comp.Label != "R"+string(rune('1'+i)) || comp.ID != "r"+string(rune('1'+i)) {
					t.Fatalf("component %d labelled %s/%s", i, comp.ID, comp.Label)
				}
			}
			if p.Target != TargetResistance && p.Target != TargetCurrent {
				t.Fatalf("unexpected target %q", p.Target)
			}
		}
	}
}

func TestGenerate_DrawOrder(t *testing.T) {
	draws := []float64{0.5, 0.0, 0.999, 0.45, 0.7}

	series := Generate(Series, &seqSource{values: draws})
	if series.Circuit.Voltage != 15 {
		t.Errorf("voltage = %v, want 15", series.Circuit.Voltage)
	}
	want := []float64{10, 59, 32}
	for i, r := range series.Circuit.Resistances() {
		if r != want[i] {
			t.Errorf("R%d = %v, want %v", i+1, r, want[i])
		}
	}
	if series.Target != TargetCurrent {
		t.Errorf("target = %q, want %q", series.Target, TargetCurrent)
	}

	// Parallel consumes the same draws and drops the third resistor.
	parallel := Generate(Parallel, &seqSource{values: draws})
	if got := parallel.Circuit.Resistances(); len(got) != 2 || got[0] != 10 || got[1] != 59 {
		t.Errorf("parallel resistances = %v, want [10 59]", got)
	}
	if parallel.Target != TargetCurrent {
		t.Errorf("parallel target = %q, want %q", parallel.Target, TargetCurrent)
	}
}

func TestGenerate_Reproducible(t *testing.T) {
	a := Generate(Combination, NewSeededSource(42))
	b := Generate(Combination, NewSeededSource(42))
	if a.Circuit.Voltage != b.Circuit.Voltage || a.Target != b.Target {
		t.Fatal("same seed produced different problems")
	}
	for i := range a.Circuit.Components {
		if a.Circuit.Components[i] != b.Circuit.Components[i] {
			t.Fatalf("component %d differs: %+v vs %+v", i, a.Circuit.Components[i], b.Circuit.Components[i])
		}
	}
}

func TestGenerate_NeverSelectsVoltage(t *testing.T) {
	seen := map[Target]int{}
	rng := NewSeededSource(7)
	for range 1000 {
		seen[Generate(Series, rng).Target]++
	}
	if seen[TargetVoltage] != 0 {
		t.Errorf("voltage target selected %d times", seen[TargetVoltage])
	}
	if seen[TargetResistance] == 0 || seen[TargetCurrent] == 0 {
		t.Errorf("expected both targets, got %v", seen)
	}
}

func TestSolve_Series(t *testing.T) {
	c := Circuit{Topology: Series, Voltage: 12, Components: resistors(10, 20, 30)}
	res, err := Solve(c)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !approx(res.TotalResistance, 60) {
		t.Errorf("Req = %v, want 60", res.TotalResistance)
	}
	if !approx(res.TotalCurrent, 0.2) {
		t.Errorf("I = %v, want 0.2", res.TotalCurrent)
	}
}

func TestSolve_Parallel(t *testing.T) {
	c := Circuit{Topology: Parallel, Voltage: 10, Components: resistors(10, 10)}
	res, err := Solve(c)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.TotalResistance != 5.0 {
		t.Errorf("Req = %v, want 5", res.TotalResistance)
	}
	if res.TotalCurrent != 2.0 {
		t.Errorf("I = %v, want 2", res.TotalCurrent)
	}
}

func TestSolve_Combination(t *testing.T) {
	c := Circuit{Topology: Combination, Voltage: 10, Components: resistors(10, 20, 20)}
	res, err := Solve(c)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !approx(res.TotalResistance, 20) {
		t.Errorf("Req = %v, want 20", res.TotalResistance)
	}
	if !approx(res.TotalCurrent, 0.5) {
		t.Errorf("I = %v, want 0.5", res.TotalCurrent)
	}
}

func TestSolve_OhmsLawEveryTopology(t *testing.T) {
	for _, topo := range Topologies {
		for seed := uint64(0); seed < 100; seed++ {
			p := Generate(topo, NewSeededSource(seed))
			want := p.Circuit.Voltage / p.Result.TotalResistance
			if !approx(p.Result.TotalCurrent, want) {
				t.Fatalf("%s seed %d: I = %v, want V/Req = %v", topo, seed, p.Result.TotalCurrent, want)
			}
		}
	}
}

func TestSolve_Idempotent(t *testing.T) {
	c := Generate(Combination, NewSeededSource(3)).Circuit
	a, _ := Solve(c)
	b, _ := Solve(c)
	if a.TotalResistance != b.TotalResistance || a.TotalCurrent != b.TotalCurrent {
		t.Fatalf("Solve not idempotent: %+v vs %+v", a, b)
	}
	for id, v := range a.Voltages {
		if b.Voltages[id] != v || b.Currents[id] != a.Currents[id] {
			t.Fatalf("breakdown for %s differs", id)
		}
	}
}

func TestSolve_Breakdown(t *testing.T) {
	t.Run("series drops sum to source", func(t *testing.T) {
		c := Circuit{Topology: Series, Voltage: 12, Components: resistors(10, 20, 30)}
		res, _ := Solve(c)
		var sum float64
		for _, comp := range c.Components {
			sum += res.Voltages[comp.ID]
			if !approx(res.Currents[comp.ID], res.TotalCurrent) {
				t.Errorf("%s current = %v, want %v", comp.ID, res.Currents[comp.ID], res.TotalCurrent)
			}
		}
		if !approx(sum, c.Voltage) {
			t.Errorf("sum of drops = %v, want %v", sum, c.Voltage)
		}
		if !approx(res.Voltages["r3"], 6) {
			t.Errorf("V(r3) = %v, want 6", res.Voltages["r3"])
		}
	})

	t.Run("parallel branch currents sum to total", func(t *testing.T) {
		c := Circuit{Topology: Parallel, Voltage: 12, Components: resistors(30, 60)}
		res, _ := Solve(c)
		if !approx(res.Currents["r1"]+res.Currents["r2"], res.TotalCurrent) {
			t.Errorf("branch currents %v + %v != %v", res.Currents["r1"], res.Currents["r2"], res.TotalCurrent)
		}
		if res.Voltages["r1"] != 12 || res.Voltages["r2"] != 12 {
			t.Errorf("parallel branches should see the full source voltage")
		}
	})

	t.Run("combination obeys KVL and KCL", func(t *testing.T) {
		c := Circuit{Topology: Combination, Voltage: 10, Components: resistors(10, 20, 20)}
		res, _ := Solve(c)
		if !approx(res.Voltages["r1"], 5) || !approx(res.Voltages["r2"], 5) || !approx(res.Voltages["r3"], 5) {
			t.Errorf("unexpected voltages %v", res.Voltages)
		}
		if !approx(res.Currents["r2"]+res.Currents["r3"], res.Currents["r1"]) {
			t.Errorf("pair currents do not sum to series current: %v", res.Currents)
		}
	})
}

func TestSolve_RejectsDegenerateCircuits(t *testing.T) {
	tests := []struct {
		name string
		c    Circuit
		want error
	}{
		{"zero resistance", Circuit{Topology: Series, Voltage: 5, Components: resistors(10, 0, 10)}, ErrNonPositive},
		{"negative resistance", Circuit{Topology: Parallel, Voltage: 5, Components: resistors(10, -3)}, ErrNonPositive},
		{"zero voltage", Circuit{Topology: Series, Voltage: 0, Components: resistors(10, 10, 10)}, ErrNonPositive},
		{"infinite resistance", Circuit{Topology: Parallel, Voltage: 5, Components: resistors(10, math.Inf(1))}, ErrNonPositive},
		{"parallel with three", Circuit{Topology: Parallel, Voltage: 5, Components: resistors(10, 10, 10)}, ErrComponentCount},
		{"series with two", Circuit{Topology: Series, Voltage: 5, Components: resistors(10, 10)}, ErrComponentCount},
		{"unknown topology", Circuit{Topology: Topology(9), Voltage: 5, Components: resistors(10, 10, 10)}, ErrTopology},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Solve(tt.c)
			if !errors.Is(err, tt.want) {
				t.Fatalf("Solve error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestReducers(t *testing.T) {
	if got := ParallelReduce(10, 10); got != 5 {
		t.Errorf("ParallelReduce(10, 10) = %v, want 5", got)
	}
	if got := ParallelReduce(30, 30, 30); !approx(got, 10) {
		t.Errorf("ParallelReduce(30, 30, 30) = %v, want 10", got)
	}
	if got := SeriesReduce(1, 2, 3); got != 6 {
		t.Errorf("SeriesReduce(1, 2, 3) = %v, want 6", got)
	}
}

func TestCheckAnswer(t *testing.T) {
	result := SolvedResult{TotalResistance: 20.0, TotalCurrent: 0.75}

	tests := []struct {
		input  string
		target Target
		want   bool
	}{
		{"20.3", TargetResistance, true},
		{"20", TargetResistance, true},
		{" 19.7 ", TargetResistance, true},
		{"21.0", TargetResistance, false},
		{"20.5", TargetResistance, false}, // difference exactly 0.5
		{"19.5", TargetResistance, false},
		{"abc", TargetResistance, false},
		{"", TargetResistance, false},
		{"NaN", TargetResistance, false},
		{"Inf", TargetResistance, false},
		{"20 ohms", TargetResistance, true},
		{"20Ω", TargetResistance, true},
		{"0.8", TargetCurrent, true},
		{"0.8 A", TargetCurrent, true},
		{"0.8 ohm", TargetCurrent, false},
		{"15", TargetVoltage, true},
	}

	for _, tc := range tests {
		got := CheckAnswer(tc.input, tc.target, result)
		if got.Correct != tc.want {
			t.Errorf("CheckAnswer(%q, %s) = %v, want %v", tc.input, tc.target, got.Correct, tc.want)
		}
	}
}

func TestCheckAnswer_Messages(t *testing.T) {
	result := SolvedResult{TotalResistance: 20.0, TotalCurrent: 0.5}

	ok := CheckAnswer("20.3", TargetResistance, result)
	if ok.Message != "Excellent! You've mastered Ohm's Law for this circuit." {
		t.Errorf("unexpected success message %q", ok.Message)
	}

	bad := CheckAnswer("21.0", TargetResistance, result)
	if !strings.Contains(bad.Message, "20.00") {
		t.Errorf("failure message %q should contain 20.00", bad.Message)
	}
	if bad.Expected != 20.0 {
		t.Errorf("Expected = %v, want 20", bad.Expected)
	}

	garbage := CheckAnswer("abc", TargetCurrent, result)
	if garbage.Correct || !strings.Contains(garbage.Message, "0.50") {
		t.Errorf("unparseable input should fail with the target value, got %+v", garbage)
	}
}

func TestSolvedResult_Value(t *testing.T) {
	r := SolvedResult{TotalResistance: 20, TotalCurrent: 0.6}
	if r.Value(TargetResistance) != 20 || r.Value(TargetCurrent) != 0.6 {
		t.Error("Value returned the wrong field")
	}
	if !approx(r.Value(TargetVoltage), 12) {
		t.Errorf("voltage = %v, want 12", r.Value(TargetVoltage))
	}
}
