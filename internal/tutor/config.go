package tutor

import "time"

// Config holds explanation request settings.
type Config struct {
	MaxTokens   int
	Temperature float64

	// Timeout bounds one Explain call including retries. Zero leaves the
	// caller's deadline in charge.
	Timeout time.Duration

	// Structured asks the model for the four steps as JSON. When false the
	// model's plain text is passed through.
	Structured bool
}

// DefaultConfig returns the defaults used by every host.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   600,
		Temperature: 0.4,
		Timeout:     30 * time.Second,
		Structured:  true,
	}
}
