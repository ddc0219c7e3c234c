package circuit

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Tolerance is the absolute difference below which an answer is accepted.
const Tolerance = 0.5

const correctMessage = "Excellent! You've mastered Ohm's Law for this circuit."

// Feedback is the outcome of checking a learner's answer.
type Feedback struct {
	Correct  bool    `json:"correct"`
	Message  string  `json:"message"`
	Expected float64 `json:"expected"`
}

// CheckAnswer compares the learner's input with the value result holds for
// target. Input that does not parse as a number is simply incorrect.
//
// Normalization rules:
// - Whitespace is trimmed
// - A trailing unit for the target is ignored ("20 ohms", "0.5A", "12 V")
func CheckAnswer(input string, target Target, result SolvedResult) Feedback {
	expected := result.Value(target)

	parsed, err := parseAnswer(input, target)
	if err == nil && math.Abs(parsed-expected) < Tolerance {
		return Feedback{Correct: true, Message: correctMessage, Expected: expected}
	}

	return Feedback{
		Correct:  false,
		Message:  fmt.Sprintf("Not quite. The correct answer was approximately %.2f.", expected),
		Expected: expected,
	}
}

// unitSuffixes lists accepted lower-case unit spellings per target,
// longest first.
var unitSuffixes = map[Target][]string{
	TargetResistance: {"ohms", "ohm", "ω"},
	TargetCurrent:    {"amps", "amp", "a"},
	TargetVoltage:    {"volts", "volt", "v"},
}

// parseAnswer parses a learner answer as float64.
func parseAnswer(input string, target Target) (float64, error) {
	s := strings.ToLower(strings.TrimSpace(input))
	for _, suffix := range unitSuffixes[target] {
		if strings.HasSuffix(s, suffix) {
			s = strings.TrimSpace(strings.TrimSuffix(s, suffix))
			break
		}
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid number: %w", err)
	}
	return f, nil
}
