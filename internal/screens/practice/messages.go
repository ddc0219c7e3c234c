package practice

import "time"

// explanationMsg carries tutor output for the round it was requested for.
type explanationMsg struct {
	RoundID string
	Text    string
}

// spinnerTickMsg animates the "Consulting..." indicator.
type spinnerTickMsg time.Time
