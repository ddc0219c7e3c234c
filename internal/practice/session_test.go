package practice

import (
	"fmt"
	"sync"
	"testing"

	"github.com/jeffreywbertke/DC/internal/circuit"
)

func newSession(t circuit.Topology) *Session {
	return New(t, circuit.NewSeededSource(7))
}

func correctAnswer(r Round) string {
	return fmt.Sprintf("%.4f", r.Problem.Result.Value(r.Problem.Target))
}

func TestNew(t *testing.T) {
	s := newSession(circuit.Combination)
	r := s.Round()

	if r.ID == "" {
		t.Fatal("expected round ID")
	}
	if r.Problem.Circuit.Topology != circuit.Combination {
		t.Fatalf("topology = %v", r.Problem.Circuit.Topology)
	}
	if r.Answered() || r.Explanation != "" || r.Explaining {
		t.Fatalf("fresh round should be blank: %+v", r)
	}
	if s.Stats() != (Stats{}) {
		t.Fatalf("fresh stats should be zero: %+v", s.Stats())
	}
}

func TestNewProblem_ResetsRound(t *testing.T) {
	s := newSession(circuit.Series)
	first := s.Round()

	s.Submit("1")
	id, _ := s.BeginExplain()
	s.SetExplanation(id, "walkthrough")

	next := s.NewProblem()
	if next.ID == first.ID {
		t.Fatal("expected a new round ID")
	}
	if next.Answer != "" || next.Feedback != nil || next.Explanation != "" || next.Explaining {
		t.Fatalf("new round should be blank: %+v", next)
	}
	if s.Stats().Attempted != 1 {
		t.Fatal("stats must survive a new problem")
	}
}

func TestSetTopology(t *testing.T) {
	s := newSession(circuit.Series)
	r := s.SetTopology(circuit.Parallel)

	if s.Topology() != circuit.Parallel {
		t.Fatalf("Topology() = %v", s.Topology())
	}
	if r.Problem.Circuit.Topology != circuit.Parallel || len(r.Problem.Circuit.Components) != 2 {
		t.Fatalf("unexpected circuit %+v", r.Problem.Circuit)
	}
	if s.NewProblem().Problem.Circuit.Topology != circuit.Parallel {
		t.Fatal("later problems should keep the new topology")
	}
}

func TestSubmit(t *testing.T) {
	s := newSession(circuit.Combination)

	if _, ok := s.Submit("   "); ok {
		t.Fatal("blank answer should be ignored")
	}
	if s.Round().Answered() || s.Stats().Attempted != 0 {
		t.Fatal("blank answer must not change state")
	}

	fb, ok := s.Submit(correctAnswer(s.Round()))
	if !ok || !fb.Correct {
		t.Fatalf("expected correct, got %+v", fb)
	}
	if fb.Message != "Excellent! You've mastered Ohm's Law for this circuit." {
		t.Fatalf("unexpected message %q", fb.Message)
	}

	s.NewProblem()
	s.Submit(correctAnswer(s.Round()))
	if got := s.Stats(); got.Streak != 2 || got.BestStreak != 2 {
		t.Fatalf("stats = %+v", got)
	}

	fb, _ = s.Submit("-1000")
	if fb.Correct {
		t.Fatal("expected incorrect")
	}
	r := s.Round()
	if r.Answer != "-1000" || r.Feedback == nil || r.Feedback.Correct {
		t.Fatalf("round not updated: %+v", r)
	}

	want := Stats{Attempted: 3, Correct: 2, Streak: 0, BestStreak: 2}
	if got := s.Stats(); got != want {
		t.Fatalf("stats = %+v, want %+v", got, want)
	}
	if acc := s.Stats().Accuracy(); acc < 0.66 || acc > 0.67 {
		t.Fatalf("accuracy = %v", acc)
	}
}

func TestSubmit_Unparseable(t *testing.T) {
	s := newSession(circuit.Series)
	fb, ok := s.Submit("twelve")
	if !ok || fb.Correct {
		t.Fatalf("expected a graded incorrect answer, got %+v ok=%v", fb, ok)
	}
}

func TestExplanation_StaleRoundDropped(t *testing.T) {
	s := newSession(circuit.Series)

	id, p := s.BeginExplain()
	if p.Circuit.Topology != circuit.Series {
		t.Fatalf("unexpected problem %+v", p)
	}
	if !s.Round().Explaining {
		t.Fatal("expected round to be explaining")
	}

	s.NewProblem()
	if s.SetExplanation(id, "late answer") {
		t.Fatal("explanation for a replaced round must be dropped")
	}
	if s.Round().Explanation != "" {
		t.Fatal("stale explanation leaked into the new round")
	}

	id, _ = s.BeginExplain()
	if !s.SetExplanation(id, "fresh") {
		t.Fatal("expected explanation to be stored")
	}
	r := s.Round()
	if r.Explanation != "fresh" || r.Explaining {
		t.Fatalf("round = %+v", r)
	}
}

func TestQuestion(t *testing.T) {
	tests := []struct {
		target circuit.Target
		want   string
	}{
		{circuit.TargetResistance, "What is the TOTAL RESISTANCE (Ω) of the entire system?"},
		{circuit.TargetCurrent, "What is the TOTAL CURRENT (A) of the entire system?"},
		{circuit.TargetVoltage, "What is the TOTAL VOLTAGE (V) of the entire system?"},
	}
	for _, tt := range tests {
		if got := Question(tt.target); got != tt.want {
			t.Errorf("Question(%s) = %q, want %q", tt.target, got, tt.want)
		}
	}
}

func TestSession_Concurrent(t *testing.T) {
	s := newSession(circuit.Parallel)

	var wg sync.WaitGroup
	for i := range 20 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if i%5 == 0 {
				s.NewProblem()
			}
			s.Submit("1")
			_ = s.Round()
		}()
	}
	wg.Wait()

	if got := s.Stats().Attempted; got != 20 {
		t.Fatalf("Attempted = %d, want 20", got)
	}
}
