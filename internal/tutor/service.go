// Package tutor produces step-by-step explanations of circuit problems
// using an LLM. It never fails: every error becomes a fallback message.
package tutor

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/jeffreywbertke/DC/internal/circuit"
	"github.com/jeffreywbertke/DC/internal/llm"
)

// Fallback messages shown in place of an explanation.
const (
	OfflineMessage = "The AI Tutor is currently offline. Please check your network connection or try a different problem."
	TroubleMessage = "I'm sorry, I had trouble calculating that. Please try again."
)

// Explainer turns a problem into tutor text.
type Explainer interface {
	Explain(ctx context.Context, p circuit.Problem) string
}

// Explanation is the structured form of a tutor answer.
type Explanation struct {
	Given       string `json:"given"`
	Formula     string `json:"formula"`
	Calculation string `json:"calculation"`
	Result      string `json:"result"`
}

// String renders the four steps as numbered lines. Blank steps are skipped.
func (e Explanation) String() string {
	steps := []struct{ label, text string }{
		{"GIVEN", e.Given},
		{"FORMULA", e.Formula},
		{"CALCULATION", e.Calculation},
		{"RESULT", e.Result},
	}

	var lines []string
	for i, s := range steps {
		text := strings.TrimSpace(s.text)
		if text == "" {
			continue
		}
		// Models sometimes repeat the label inside the field.
		if rest, ok := cutPrefixFold(text, s.label+":"); ok {
			text = strings.TrimSpace(rest)
		}
		lines = append(lines, fmt.Sprintf("%d. %s: %s", i+1, s.label, text))
	}
	return strings.Join(lines, "\n")
}

func cutPrefixFold(s, prefix string) (string, bool) {
	if len(s) >= len(prefix) && strings.EqualFold(s[:len(prefix)], prefix) {
		return s[len(prefix):], true
	}
	return s, false
}

// Service is the LLM-backed Explainer.
type Service struct {
	provider llm.Provider
	cfg      Config
	logger   *zap.Logger
}

var _ Explainer = (*Service)(nil)

// NewService creates a tutor. provider may be nil, in which case every
// explanation is the offline message.
func NewService(provider llm.Provider, cfg Config, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{provider: provider, cfg: cfg, logger: logger}
}

// Available reports whether a provider is configured.
func (s *Service) Available() bool {
	return s.provider != nil
}

// Explain asks the model to walk through p.
func (s *Service) Explain(ctx context.Context, p circuit.Problem) string {
	if s.provider == nil {
		return OfflineMessage
	}

	text, err := s.explain(ctx, p)
	if err != nil {
		s.logger.Warn("tutor explanation failed",
			zap.String("topology", p.Circuit.Topology.String()),
			zap.String("target", string(p.Target)),
			zap.Error(err))
		return OfflineMessage
	}
	if strings.TrimSpace(text) == "" {
		s.logger.Info("tutor returned empty explanation")
		return TroubleMessage
	}
	return text
}

func (s *Service) explain(ctx context.Context, p circuit.Problem) (string, error) {
	ctx = llm.WithPurpose(ctx, llm.PurposeExplanation)
	if s.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.cfg.Timeout)
		defer cancel()
	}

	userMsg, err := buildUserMessage(p)
	if err != nil {
		return "", fmt.Errorf("build explanation prompt: %w", err)
	}

	req := llm.Request{
		System:      systemPrompt,
		Messages:    llm.UserMessage(userMsg),
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	}
	if s.cfg.Structured {
		req.Schema = ExplanationSchema
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return "", fmt.Errorf("explanation request: %w", err)
	}

	if !s.cfg.Structured {
		return strings.TrimSpace(resp.Text()), nil
	}

	var out Explanation
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return "", fmt.Errorf("parse explanation response: %w", err)
	}
	return out.String(), nil
}
