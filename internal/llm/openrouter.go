package llm

import "fmt"

const defaultOpenRouterBaseURL = "https://openrouter.ai/api/v1"

// OpenRouterProvider targets OpenRouter through its OpenAI-compatible API.
// Model IDs are vendor-qualified ("google/gemini-2.5-flash") and pass
// through unmapped.
type OpenRouterProvider struct {
	*OpenAIProvider
	baseURL string
}

// NewOpenRouterProvider creates a provider targeting the OpenRouter API.
func NewOpenRouterProvider(cfg OpenRouterConfig) (*OpenRouterProvider, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("openrouter API key is required")
	}
	if cfg.Model == "" {
		return nil, fmt.Errorf("openrouter model is required")
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultOpenRouterBaseURL
	}

	return &OpenRouterProvider{
		OpenAIProvider: newOpenAICompatible(cfg.APIKey, baseURL, cfg.Model),
		baseURL:        baseURL,
	}, nil
}

// BaseURL returns the endpoint requests are sent to.
func (p *OpenRouterProvider) BaseURL() string {
	return p.baseURL
}
