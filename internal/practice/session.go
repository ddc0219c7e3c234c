// Package practice owns the current problem of a practice session and the
// learner's progress through it.
package practice

import (
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/jeffreywbertke/DC/internal/circuit"
)

// Round is one generated problem and everything the learner has done
// with it.
type Round struct {
	ID      string          `json:"id"`
	Problem circuit.Problem `json:"problem"`

	Answer      string            `json:"answer,omitempty"`
	Feedback    *circuit.Feedback `json:"feedback,omitempty"`
	Explanation string            `json:"explanation,omitempty"`
	Explaining  bool              `json:"explaining"`
}

// Answered reports whether the learner has submitted an answer.
func (r Round) Answered() bool {
	return r.Feedback != nil
}

// Question returns the prompt shown for the round's target.
func (r Round) Question() string {
	return Question(r.Problem.Target)
}

// Question returns the prompt for target.
func Question(target circuit.Target) string {
	return fmt.Sprintf("What is the TOTAL %s (%s) of the entire system?", target.Quantity(), target.Unit())
}

// Stats are running totals for a session.
type Stats struct {
	Attempted  int `json:"attempted"`
	Correct    int `json:"correct"`
	Streak     int `json:"streak"`
	BestStreak int `json:"best_streak"`
}

// Accuracy returns Correct/Attempted, or 0 before the first answer.
func (s Stats) Accuracy() float64 {
	if s.Attempted == 0 {
		return 0
	}
	return float64(s.Correct) / float64(s.Attempted)
}

// Session holds the current round for one learner. It is safe for
// concurrent use.
type Session struct {
	mu       sync.Mutex
	topology circuit.Topology
	rng      circuit.RandomSource
	round    Round
	stats    Stats
}

// New starts a session on topology and generates its first problem.
func New(topology circuit.Topology, rng circuit.RandomSource) *Session {
	s := &Session{topology: topology, rng: rng}
	s.regenerate()
	return s
}

// Topology returns the topology new problems are drawn from.
func (s *Session) Topology() circuit.Topology {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.topology
}

// Round returns a copy of the current round.
func (s *Session) Round() Round {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.round
}

// Stats returns the running totals.
func (s *Session) Stats() Stats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stats
}

// NewProblem replaces the current round. Answer, feedback and explanation
// start empty.
func (s *Session) NewProblem() Round {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.regenerate()
	return s.round
}

// SetTopology switches topology and starts a fresh problem on it.
func (s *Session) SetTopology(t circuit.Topology) Round {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.topology = t
	s.regenerate()
	return s.round
}

func (s *Session) regenerate() {
	s.round = Round{
		ID:      uuid.NewString(),
		Problem: circuit.Generate(s.topology, s.rng),
	}
}

// Submit checks answer against the current round. Blank answers are
// ignored and report false. A round can be answered more than once; every
// attempt counts toward the stats.
func (s *Session) Submit(answer string) (circuit.Feedback, bool) {
	answer = strings.TrimSpace(answer)
	if answer == "" {
		return circuit.Feedback{}, false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	p := s.round.Problem
	fb := circuit.CheckAnswer(answer, p.Target, p.Result)

	s.round.Answer = answer
	s.round.Feedback = &fb

	s.stats.Attempted++
	if fb.Correct {
		s.stats.Correct++
		s.stats.Streak++
		s.stats.BestStreak = max(s.stats.BestStreak, s.stats.Streak)
	} else {
		s.stats.Streak = 0
	}
	return fb, true
}

// BeginExplain marks the current round as waiting for an explanation and
// returns its ID and problem for the tutor call.
func (s *Session) BeginExplain() (string, circuit.Problem) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.round.Explaining = true
	s.round.Explanation = ""
	return s.round.ID, s.round.Problem
}

// SetExplanation stores text for roundID. It returns false and discards
// the text if the round has since been replaced.
func (s *Session) SetExplanation(roundID, text string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.round.ID != roundID {
		return false
	}
	s.round.Explanation = text
	s.round.Explaining = false
	return true
}
